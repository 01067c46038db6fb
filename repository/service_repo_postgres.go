package repository

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"
	"time"

	"roshanservice/models"

	"github.com/google/uuid"
)

type PostgresServiceRepo struct {
	DB *sql.DB
}

func NewPostgresServiceRepo(db *sql.DB) *PostgresServiceRepo {
	return &PostgresServiceRepo{DB: db}
}

const serviceColumns = `
	service_id, slip_no, date, customer_name, contact, product_name, brand,
	color_and_size, service_type, warranty_status, estimate_amount,
	warranty_invoice_number, warranty_date, image_url, service_status,
	serviceman_name, serviceman_amount, customer_paid_amount, invoice_number,
	slip_pdf_url, slip_pdf_created_at, created_at, updated_at`

func scanService(row interface{ Scan(...interface{}) error }) (*models.ServiceRecord, error) {
	rec := &models.ServiceRecord{}
	err := row.Scan(
		&rec.ServiceID, &rec.SlipNo, &rec.Date, &rec.CustomerName, &rec.Contact,
		&rec.ProductName, &rec.Brand, &rec.ColorAndSize, &rec.ServiceType,
		&rec.WarrantyStatus, &rec.EstimateAmount, &rec.WarrantyInvoiceNumber,
		&rec.WarrantyDate, &rec.ImageURL, &rec.ServiceStatus,
		&rec.ServicemanName, &rec.ServicemanAmount, &rec.CustomerPaidAmount,
		&rec.InvoiceNumber, &rec.SlipPdfURL, &rec.SlipPdfCreatedAt,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	normalizeRecord(rec)
	return rec, nil
}

// GetAllServices returns the full record snapshot in creation order.
func (r *PostgresServiceRepo) GetAllServices(ctx context.Context) ([]models.ServiceRecord, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+serviceColumns+`
		FROM service_record
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.ServiceRecord
	for rows.Next() {
		rec, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	return out, rows.Err()
}

func (r *PostgresServiceRepo) GetServiceByID(ctx context.Context, serviceID string) (*models.ServiceRecord, error) {
	rec, err := scanService(r.DB.QueryRowContext(ctx, `
		SELECT `+serviceColumns+`
		FROM service_record
		WHERE service_id=$1
	`, serviceID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

// LastSlipNumber scans the stored slip numbers and returns the highest
// numeric value, 0 when the store is empty. Non-numeric values (stray header
// rows, blanks) are skipped rather than failing the fetch.
func (r *PostgresServiceRepo) LastSlipNumber(ctx context.Context) (int64, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT slip_no FROM service_record`)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var last int64
	for rows.Next() {
		var slipNo string
		if err := rows.Scan(&slipNo); err != nil {
			return 0, err
		}
		n, err := strconv.ParseInt(strings.TrimSpace(slipNo), 10, 64)
		if err != nil {
			continue
		}
		if n > last {
			last = n
		}
	}
	return last, rows.Err()
}

// CreateService inserts a new record, assigning its opaque identifier.
func (r *PostgresServiceRepo) CreateService(ctx context.Context, rec *models.ServiceRecord) error {
	if rec.ServiceID == "" {
		rec.ServiceID = uuid.NewString()
	}
	if rec.ServiceStatus == "" {
		rec.ServiceStatus = models.StatusNew
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO service_record (
			service_id, slip_no, date, customer_name, contact, product_name,
			brand, color_and_size, service_type, warranty_status,
			estimate_amount, warranty_invoice_number, warranty_date, image_url,
			service_status, serviceman_name, serviceman_amount,
			customer_paid_amount, invoice_number, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20)
	`, rec.ServiceID, rec.SlipNo, rec.Date, rec.CustomerName, rec.Contact,
		rec.ProductName, rec.Brand, rec.ColorAndSize, rec.ServiceType,
		rec.WarrantyStatus, rec.EstimateAmount, rec.WarrantyInvoiceNumber,
		rec.WarrantyDate, rec.ImageURL, rec.ServiceStatus, rec.ServicemanName,
		rec.ServicemanAmount, rec.CustomerPaidAmount, rec.InvoiceNumber,
		rec.CreatedAt)
	return err
}

// UpdateService writes the editable fields of an existing record. Identity
// and product fields, the slip number and the creation date column stay as
// created.
func (r *PostgresServiceRepo) UpdateService(ctx context.Context, rec *models.ServiceRecord) error {
	now := time.Now().UTC()
	res, err := r.DB.ExecContext(ctx, `
		UPDATE service_record SET
			date=$1, service_type=$2, warranty_status=$3, estimate_amount=$4,
			warranty_invoice_number=$5, warranty_date=$6, image_url=$7,
			service_status=$8, serviceman_name=$9, serviceman_amount=$10,
			customer_paid_amount=$11, invoice_number=$12, updated_at=$13
		WHERE service_id=$14
	`, rec.Date, rec.ServiceType, rec.WarrantyStatus, rec.EstimateAmount,
		rec.WarrantyInvoiceNumber, rec.WarrantyDate, rec.ImageURL,
		rec.ServiceStatus, rec.ServicemanName, rec.ServicemanAmount,
		rec.CustomerPaidAmount, rec.InvoiceNumber, now, rec.ServiceID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	rec.UpdatedAt = &now
	return nil
}

// UpdateSlipPdf records the hosted slip document for a record.
func (r *PostgresServiceRepo) UpdateSlipPdf(ctx context.Context, serviceID, pdfURL string) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE service_record SET slip_pdf_url=$1, slip_pdf_created_at=$2
		WHERE service_id=$3
	`, pdfURL, time.Now().UTC(), serviceID)
	return err
}
