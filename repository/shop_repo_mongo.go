package repository

import (
	"context"
	"errors"
	"time"

	"roshanservice/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoShopRepo struct {
	DB *mongo.Client
}

func NewMongoShopRepo(db *mongo.Client) *MongoShopRepo {
	return &MongoShopRepo{DB: db}
}

func (r *MongoShopRepo) SaveShopProfile(ctx context.Context, profile *models.ShopProfile) error {
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = time.Now().UTC()
	}
	// Numeric _id keeps the shape identical across both backends.
	if profile.ID == 0 {
		profile.ID = time.Now().UnixNano()
	}

	_, err := r.DB.Database(mongoDatabase).Collection("shop_profile").
		ReplaceOne(ctx, bson.M{"_id": profile.ID}, profile, options.Replace().SetUpsert(true))
	return err
}

func (r *MongoShopRepo) GetShopProfile(ctx context.Context) (*models.ShopProfile, error) {
	var profile models.ShopProfile
	err := r.DB.Database(mongoDatabase).Collection("shop_profile").
		FindOne(ctx, bson.M{}, options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})).
		Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}
