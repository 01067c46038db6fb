package repository

import (
	"context"

	"roshanservice/models"
)

type ShopRepository interface {
	SaveShopProfile(ctx context.Context, profile *models.ShopProfile) error
	GetShopProfile(ctx context.Context) (*models.ShopProfile, error)
}
