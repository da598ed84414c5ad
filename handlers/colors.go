package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"p9e.in/sheets/config"
	"p9e.in/sheets/models"
)

type colorPayload struct {
	Name    string `json:"name"`
	HexCode string `json:"hexCode"`
}

func GetColors(w http.ResponseWriter, r *http.Request) {
	colors := []models.Color{}
	if err := config.DB.Order("name").Find(&colors).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Error fetching colors", err)
		return
	}
	respondJSON(w, http.StatusOK, colors)
}

func AddColor(w http.ResponseWriter, r *http.Request) {
	var body colorPayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	name := strings.TrimSpace(body.Name)
	hexCode := strings.TrimSpace(body.HexCode)
	if name == "" || hexCode == "" {
		respondError(w, http.StatusBadRequest, "Color name and hex code are required", nil)
		return
	}
	if !models.ValidHexCode(hexCode) {
		respondError(w, http.StatusBadRequest, hexCode+" is not a valid hex color code! Use format #RRGGBB or #RGB.", nil)
		return
	}

	color := models.Color{Name: name, HexCode: hexCode}
	if err := config.DB.Create(&color).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Error adding color", err)
		return
	}
	respondJSON(w, http.StatusCreated, color)
}

func UpdateColor(w http.ResponseWriter, r *http.Request) {
	colorID, err := uuid.Parse(mux.Vars(r)["colorId"])
	if err != nil {
		respondError(w, http.StatusNotFound, "Color not found", nil)
		return
	}

	var body colorPayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	name := strings.TrimSpace(body.Name)
	hexCode := strings.TrimSpace(body.HexCode)
	if name == "" || hexCode == "" {
		respondError(w, http.StatusBadRequest, "Color name and hex code are required", nil)
		return
	}
	if !models.ValidHexCode(hexCode) {
		respondError(w, http.StatusBadRequest, hexCode+" is not a valid hex color code! Use format #RRGGBB or #RGB.", nil)
		return
	}

	var color models.Color
	if err := config.DB.First(&color, "id = ?", colorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(w, http.StatusNotFound, "Color not found", nil)
		} else {
			respondError(w, http.StatusInternalServerError, "Error updating color", err)
		}
		return
	}

	color.Name = name
	color.HexCode = hexCode
	if err := config.DB.Save(&color).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Error updating color", err)
		return
	}
	respondJSON(w, http.StatusOK, color)
}

// DeleteColor removes a color and clears the reference from every sheet entry
// that used it. The fan-out updates one sheet row at a time with no umbrella
// transaction, so a crash partway can leave later sheets pointing at the gone
// color; those references resolve to null on read.
func DeleteColor(w http.ResponseWriter, r *http.Request) {
	colorID, err := uuid.Parse(mux.Vars(r)["colorId"])
	if err != nil {
		respondError(w, http.StatusNotFound, "Color not found", nil)
		return
	}

	result := config.DB.Delete(&models.Color{}, "id = ?", colorID)
	if result.Error != nil {
		respondError(w, http.StatusInternalServerError, "Error deleting color", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondError(w, http.StatusNotFound, "Color not found", nil)
		return
	}

	if models.CascadeNullOnDelete[models.RefColor] {
		if err := models.NullEntryRefs(config.DB, models.RefColor, colorID); err != nil {
			log.Printf("Error clearing color references: %v", err)
		}
	}

	respondMessage(w, http.StatusOK, "Color deleted successfully")
}
