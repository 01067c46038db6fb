package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"roshanservice/models"
	"roshanservice/repository"
	"roshanservice/slip"
	"roshanservice/utils"

	"go.uber.org/zap"
)

// SlipRenderer produces the slip document for a record.
type SlipRenderer interface {
	Render(ctx context.Context, data *models.SlipData, f slip.Format) (*slip.Document, error)
}

type SlipHandler struct {
	Repo     *repository.SlipRepository
	Renderer SlipRenderer
	Uploader ObjectUploader
	Logger   *zap.Logger
}

// ServiceSlipPDF renders a record's slip at the requested page format and
// streams it as a download. A copy is mirrored to object storage before the
// bytes go out; a mirror failure is logged and never aborts the download.
func (h *SlipHandler) ServiceSlipPDF(w http.ResponseWriter, r *http.Request) {
	serviceID := r.URL.Query().Get("id")
	if serviceID == "" {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "missing service id",
		})
		return
	}

	format, err := slip.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	rec, err := h.Repo.GetServiceForSlip(r.Context(), serviceID)
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

	shop, err := h.Repo.GetShopForSlip(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to fetch shop profile: " + err.Error(),
		})
		return
	}

	doc, err := h.Renderer.Render(r.Context(), slipData(shop, rec), format)
	if err != nil {
		if errors.Is(err, slip.ErrSnapshotUnavailable) {
			writeJSON(w, http.StatusServiceUnavailable, ApiResponse{
				Success: false,
				Message: "Slip is not ready to render: " + err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to generate slip: " + err.Error(),
		})
		return
	}

	if url, upErr := h.Uploader.Upload(r.Context(), doc.Content, doc.Filename, "application/pdf"); upErr != nil {
		h.Logger.Warn("failed to mirror slip pdf", zap.String("serviceId", serviceID), zap.Error(upErr))
	} else if dbErr := h.Repo.ServiceRepo.UpdateSlipPdf(r.Context(), serviceID, url); dbErr != nil {
		h.Logger.Warn("failed to record slip pdf url", zap.String("serviceId", serviceID), zap.Error(dbErr))
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, doc.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc.Content)
}

// slipData assembles the template input for one record.
func slipData(shop *models.ShopProfile, rec *models.ServiceRecord) *models.SlipData {
	contacts := ""
	for _, p := range shop.Phones {
		if p.Label != "" {
			contacts += p.Number + "(" + p.Label + "), "
		} else {
			contacts += p.Number + ", "
		}
	}
	contacts = strings.TrimSuffix(contacts, ", ")

	var types []string
	for _, t := range strings.Split(rec.ServiceType, ",") {
		if t = strings.TrimSpace(t); t != "" {
			types = append(types, t)
		}
	}

	words := ""
	if rec.WarrantyStatus == models.WarrantyClassNonWarranty {
		words = utils.AmountInWords(rec.EstimateAmount)
	}

	return &models.SlipData{
		Shop:          shop,
		Record:        rec,
		Contacts:      contacts,
		Date:          rec.Date,
		ServiceTypes:  types,
		EstimateWords: words,
	}
}
