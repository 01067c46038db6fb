package repository

import (
	"context"

	"roshanservice/models"
)

// SlipRepository provides the data a slip document is rendered from.
type SlipRepository struct {
	ServiceRepo ServiceRepository
	ShopRepo    ShopRepository
}

func NewSlipRepository(serviceRepo ServiceRepository, shopRepo ShopRepository) *SlipRepository {
	return &SlipRepository{
		ServiceRepo: serviceRepo,
		ShopRepo:    shopRepo,
	}
}

// GetServiceForSlip fetches the record a slip is being produced for.
func (r *SlipRepository) GetServiceForSlip(ctx context.Context, serviceID string) (*models.ServiceRecord, error) {
	return r.ServiceRepo.GetServiceByID(ctx, serviceID)
}

// GetShopForSlip fetches the header block; a deployment with no saved profile
// gets an empty header rather than a failed render.
func (r *SlipRepository) GetShopForSlip(ctx context.Context) (*models.ShopProfile, error) {
	profile, err := r.ShopRepo.GetShopProfile(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		profile = &models.ShopProfile{}
	}
	return profile, nil
}
