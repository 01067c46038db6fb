package handlers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"roshanservice/lifecycle"
	"roshanservice/models"
	"roshanservice/query"
	"roshanservice/repository"
	"roshanservice/sequence"

	"go.uber.org/zap"
)

// ObjectUploader hosts uploaded files and returns their public URLs.
type ObjectUploader interface {
	Upload(ctx context.Context, fileBytes []byte, filename, contentType string) (string, error)
	Delete(ctx context.Context, fileURL string) error
}

type ServiceHandler struct {
	Repo     repository.ServiceRepository
	Uploader ObjectUploader
	Logger   *zap.Logger
}

// GetAllServices returns the record snapshot, optionally run through the
// query pipeline when filter/search/sort parameters are present.
func (h *ServiceHandler) GetAllServices(w http.ResponseWriter, r *http.Request) {
	records, err := h.Repo.GetAllServices(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to fetch services: " + err.Error(),
		})
		return
	}
	if records == nil {
		records = []models.ServiceRecord{}
	}

	q := r.URL.Query()
	params := query.Params{
		Status:    q.Get("status"),
		StartDate: q.Get("startDate"),
		EndDate:   q.Get("endDate"),
		Search:    q.Get("search"),
		Sort: query.Sort{
			Key:       q.Get("sortKey"),
			Direction: query.Direction(q.Get("sortDir")),
		},
	}

	records, err = query.Apply(records, params)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: records})
}

// CreateService handles intake of a new service request.
func (h *ServiceHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	var payload models.ServicePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}

	normalized, fieldErrs := lifecycle.Validate(payload, lifecycle.Create)
	if len(fieldErrs) > 0 {
		// Local precondition failed: nothing reaches the store.
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Validation failed",
			Fields:  fieldErrs,
		})
		return
	}

	imageBytes, err := base64.StdEncoding.DecodeString(normalized.Image)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Validation failed",
			Fields:  []lifecycle.FieldError{{Field: "image", Reason: "image payload is not valid base64"}},
		})
		return
	}

	imageURL, err := h.Uploader.Upload(r.Context(), imageBytes, uploadName(normalized), normalized.ImageMimeType)
	if err != nil {
		writeJSON(w, http.StatusBadGateway, ApiResponse{
			Success: false,
			Message: "Failed to store product image: " + err.Error(),
		})
		return
	}

	rec := recordFromPayload(normalized)
	rec.ImageURL = imageURL
	rec.ServiceStatus = models.StatusNew

	if err := h.Repo.CreateService(r.Context(), rec); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to create service: " + err.Error(),
		})
		return
	}

	h.Logger.Info("service created",
		zap.String("serviceId", rec.ServiceID),
		zap.String("slipNo", rec.SlipNo),
	)
	writeJSON(w, http.StatusCreated, ApiResponse{
		Success: true,
		Message: "Service request submitted successfully",
		Data:    rec,
	})
}

// UpdateService edits status, billing and warranty fields of an existing
// record. Identity and product fields stay as created.
func (h *ServiceHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	var payload models.ServicePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}
	if payload.ServiceID == "" {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "serviceId is required",
		})
		return
	}

	normalized, fieldErrs := lifecycle.Validate(payload, lifecycle.Update)
	if len(fieldErrs) > 0 {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Validation failed",
			Fields:  fieldErrs,
		})
		return
	}

	existing, err := h.Repo.GetServiceByID(r.Context(), normalized.ServiceID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, ApiResponse{
				Success: false,
				Message: "Service record not found",
			})
			return
		}
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to fetch service: " + err.Error(),
		})
		return
	}

	imageURL := existing.ImageURL
	if normalized.Image != "" {
		imageBytes, err := base64.StdEncoding.DecodeString(normalized.Image)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ApiResponse{
				Success: false,
				Message: "Validation failed",
				Fields:  []lifecycle.FieldError{{Field: "image", Reason: "image payload is not valid base64"}},
			})
			return
		}
		newURL, err := h.Uploader.Upload(r.Context(), imageBytes, uploadName(normalized), normalized.ImageMimeType)
		if err != nil {
			writeJSON(w, http.StatusBadGateway, ApiResponse{
				Success: false,
				Message: "Failed to store product image: " + err.Error(),
			})
			return
		}
		// Best effort: the old object is unreferenced once the update lands.
		if existing.ImageURL != "" {
			if err := h.Uploader.Delete(r.Context(), existing.ImageURL); err != nil {
				h.Logger.Warn("failed to delete replaced image",
					zap.String("serviceId", existing.ServiceID),
					zap.Error(err),
				)
			}
		}
		imageURL = newURL
	} else if normalized.ImageURLExisting != "" {
		imageURL = normalized.ImageURLExisting
	}

	rec := recordFromPayload(normalized)
	rec.ServiceID = existing.ServiceID
	rec.SlipNo = existing.SlipNo
	rec.CustomerName = existing.CustomerName
	rec.Contact = existing.Contact
	rec.ProductName = existing.ProductName
	rec.Brand = existing.Brand
	rec.ColorAndSize = existing.ColorAndSize
	rec.ImageURL = imageURL
	rec.CreatedAt = existing.CreatedAt

	if err := h.Repo.UpdateService(r.Context(), rec); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, ApiResponse{
				Success: false,
				Message: "Service record not found",
			})
			return
		}
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to update service: " + err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Service updated successfully",
		Data:    rec,
	})
}

// LastSlipNumber reports the highest assigned slip number together with the
// provisional next one. The proposal is valid only as of this fetch: intake
// clients must re-fetch after every submission, successful or not, so a second
// submission in the same session never reuses a stale value.
func (h *ServiceHandler) LastSlipNumber(w http.ResponseWriter, r *http.Request) {
	last, err := h.Repo.LastSlipNumber(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to fetch last slip number: " + err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Data: map[string]int64{
			"lastSlipNumber": last,
			"nextSlipNumber": sequence.Next(last),
		},
	})
}

// ServiceTypes serves the predefined service-description catalog.
func (h *ServiceHandler) ServiceTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: models.ServiceTypeOptions})
}

func recordFromPayload(p models.ServicePayload) *models.ServiceRecord {
	return &models.ServiceRecord{
		ServiceID:             p.ServiceID,
		SlipNo:                p.SlipNo,
		Date:                  repository.NormalizeDate(p.Date),
		CustomerName:          p.CustomerName,
		Contact:               p.Contact,
		ProductName:           p.ProductName,
		Brand:                 p.Brand,
		ColorAndSize:          p.ColorAndSize,
		ServiceType:           p.ServiceType,
		WarrantyStatus:        p.WarrantyStatus,
		EstimateAmount:        p.EstimateAmount,
		WarrantyInvoiceNumber: p.WarrantyInvoiceNumber,
		WarrantyDate:          repository.NormalizeDate(p.WarrantyDate),
		ServiceStatus:         p.ServiceStatus,
		ServicemanName:        p.ServicemanName,
		ServicemanAmount:      p.ServicemanAmount,
		CustomerPaidAmount:    p.CustomerPaidAmount,
		InvoiceNumber:         p.InvoiceNumber,
	}
}

func uploadName(p models.ServicePayload) string {
	if p.ImageName != "" {
		return fmt.Sprintf("%d_%s", time.Now().Unix(), p.ImageName)
	}
	return fmt.Sprintf("service_%d.jpg", time.Now().Unix())
}
