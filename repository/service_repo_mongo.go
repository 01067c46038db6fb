package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"roshanservice/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const mongoDatabase = "roshanservice"

type MongoServiceRepo struct {
	DB *mongo.Client
}

func NewMongoServiceRepo(db *mongo.Client) *MongoServiceRepo {
	return &MongoServiceRepo{DB: db}
}

func (r *MongoServiceRepo) collection() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("service_record")
}

func (r *MongoServiceRepo) GetAllServices(ctx context.Context) ([]models.ServiceRecord, error) {
	cur, err := r.collection().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.ServiceRecord
	for cur.Next(ctx) {
		var rec models.ServiceRecord
		if err := cur.Decode(&rec); err != nil {
			return nil, err
		}
		normalizeRecord(&rec)
		out = append(out, rec)
	}
	return out, cur.Err()
}

func (r *MongoServiceRepo) GetServiceByID(ctx context.Context, serviceID string) (*models.ServiceRecord, error) {
	var rec models.ServiceRecord
	err := r.collection().FindOne(ctx, bson.M{"_id": serviceID}).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	normalizeRecord(&rec)
	return &rec, nil
}

func (r *MongoServiceRepo) LastSlipNumber(ctx context.Context) (int64, error) {
	cur, err := r.collection().Find(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	defer cur.Close(ctx)

	var last int64
	for cur.Next(ctx) {
		var doc struct {
			SlipNo string `bson:"slip_no"`
		}
		if err := cur.Decode(&doc); err != nil {
			return 0, err
		}
		n, err := strconv.ParseInt(strings.TrimSpace(doc.SlipNo), 10, 64)
		if err != nil {
			continue
		}
		if n > last {
			last = n
		}
	}
	return last, cur.Err()
}

func (r *MongoServiceRepo) CreateService(ctx context.Context, rec *models.ServiceRecord) error {
	if rec.ServiceID == "" {
		rec.ServiceID = uuid.NewString()
	}
	if rec.ServiceStatus == "" {
		rec.ServiceStatus = models.StatusNew
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	_, err := r.collection().InsertOne(ctx, rec)
	return err
}

func (r *MongoServiceRepo) UpdateService(ctx context.Context, rec *models.ServiceRecord) error {
	now := time.Now().UTC()
	res, err := r.collection().UpdateOne(ctx,
		bson.M{"_id": rec.ServiceID},
		bson.M{"$set": bson.M{
			"date":                    rec.Date,
			"service_type":            rec.ServiceType,
			"warranty_status":         rec.WarrantyStatus,
			"estimate_amount":         rec.EstimateAmount,
			"warranty_invoice_number": rec.WarrantyInvoiceNumber,
			"warranty_date":           rec.WarrantyDate,
			"image_url":               rec.ImageURL,
			"service_status":          rec.ServiceStatus,
			"serviceman_name":         rec.ServicemanName,
			"serviceman_amount":       rec.ServicemanAmount,
			"customer_paid_amount":    rec.CustomerPaidAmount,
			"invoice_number":          rec.InvoiceNumber,
			"updated_at":              now,
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	rec.UpdatedAt = &now
	return nil
}

func (r *MongoServiceRepo) UpdateSlipPdf(ctx context.Context, serviceID, pdfURL string) error {
	_, err := r.collection().UpdateOne(ctx,
		bson.M{"_id": serviceID},
		bson.M{"$set": bson.M{
			"slip_pdf_url":        pdfURL,
			"slip_pdf_created_at": time.Now().UTC(),
		}},
	)
	return err
}
