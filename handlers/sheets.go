package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"p9e.in/sheets/config"
	"p9e.in/sheets/models"
)

type sheetPayload struct {
	Name  string `json:"name"`
	Hours string `json:"hours"`
}

// GetSheets returns every sheet with entry references resolved for display.
func GetSheets(w http.ResponseWriter, r *http.Request) {
	var sheets []models.Sheet
	if err := config.DB.Order("created_at").Find(&sheets).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Error fetching sheets", err)
		return
	}

	views, err := models.NewResolver(config.DB).ResolveSheets(sheets)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error fetching sheets", err)
		return
	}
	respondJSON(w, http.StatusOK, views)
}

func CreateSheet(w http.ResponseWriter, r *http.Request) {
	var body sheetPayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	name := strings.TrimSpace(body.Name)
	if name == "" {
		respondError(w, http.StatusBadRequest, "Sheet name is required and must be a non-empty string", nil)
		return
	}

	sheet := models.Sheet{
		Name:  name,
		Hours: body.Hours,
		Date:  time.Now(),
		Data:  datatypes.JSONSlice[models.Entry]{},
	}
	if err := config.DB.Create(&sheet).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Error creating sheet", err)
		return
	}
	respondJSON(w, http.StatusCreated, sheet)
}

func UpdateSheet(w http.ResponseWriter, r *http.Request) {
	sheetID, err := uuid.Parse(mux.Vars(r)["sheetId"])
	if err != nil {
		respondError(w, http.StatusNotFound, "Sheet not found", nil)
		return
	}

	var body sheetPayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	name := strings.TrimSpace(body.Name)
	if name == "" {
		respondError(w, http.StatusBadRequest, "Sheet name is required and must be a non-empty string", nil)
		return
	}

	var sheet models.Sheet
	if err := config.DB.First(&sheet, "id = ?", sheetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(w, http.StatusNotFound, "Sheet not found", nil)
		} else {
			respondError(w, http.StatusInternalServerError, "Error updating sheet", err)
		}
		return
	}

	sheet.Name = name
	if body.Hours != "" {
		sheet.Hours = body.Hours
	}
	if err := config.DB.Save(&sheet).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Error updating sheet", err)
		return
	}
	respondJSON(w, http.StatusOK, sheet)
}

func DeleteSheet(w http.ResponseWriter, r *http.Request) {
	sheetID, err := uuid.Parse(mux.Vars(r)["sheetId"])
	if err != nil {
		respondError(w, http.StatusNotFound, "Sheet not found", nil)
		return
	}

	result := config.DB.Delete(&models.Sheet{}, "id = ?", sheetID)
	if result.Error != nil {
		respondError(w, http.StatusInternalServerError, "Error deleting sheet", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondError(w, http.StatusNotFound, "Sheet not found", nil)
		return
	}
	respondMessage(w, http.StatusOK, "Sheet deleted successfully")
}
