package handlers

import (
	"encoding/json"
	"net/http"

	"roshanservice/models"
	"roshanservice/repository"
)

type ShopHandler struct {
	Repo repository.ShopRepository
}

func (h *ShopHandler) SaveShopProfile(w http.ResponseWriter, r *http.Request) {
	var profile models.ShopProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}

	if err := h.Repo.SaveShopProfile(r.Context(), &profile); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to save shop profile: " + err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusCreated, ApiResponse{Success: true, Data: profile})
}

func (h *ShopHandler) GetShopProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.Repo.GetShopProfile(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to fetch shop profile: " + err.Error(),
		})
		return
	}
	if profile == nil {
		writeJSON(w, http.StatusNotFound, ApiResponse{
			Success: false,
			Message: "Shop profile not found",
		})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: profile})
}
