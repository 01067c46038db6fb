package repository

import (
	"context"
	"errors"

	"roshanservice/models"
)

// ErrNotFound is returned when a record lookup matches nothing.
var ErrNotFound = errors.New("service record not found")

// ServiceRepository is the record-store boundary: it supplies the full record
// snapshot, the last assigned slip number, and accepts create/update
// submissions. Implementations normalize loosely-typed stored data into the
// strict ServiceRecord shape before it leaves this package.
type ServiceRepository interface {
	GetAllServices(ctx context.Context) ([]models.ServiceRecord, error)
	GetServiceByID(ctx context.Context, serviceID string) (*models.ServiceRecord, error)
	LastSlipNumber(ctx context.Context) (int64, error)
	CreateService(ctx context.Context, rec *models.ServiceRecord) error
	UpdateService(ctx context.Context, rec *models.ServiceRecord) error
	UpdateSlipPdf(ctx context.Context, serviceID, pdfURL string) error
}
