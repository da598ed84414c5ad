package handlers

import (
	"net/http"

	"p9e.in/sheets/config"
	"p9e.in/sheets/models"
)

// GetDropdownData returns the name lists the entry form's competitor-analysis
// pickers are populated from.
func GetDropdownData(w http.ResponseWriter, r *http.Request) {
	competitors := []models.Competitor{}
	if err := config.DB.Select("id", "name").Order("name").Find(&competitors).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Error fetching dropdown data", err)
		return
	}
	items := []models.Item{}
	if err := config.DB.Select("id", "name", "image").Order("name").Find(&items).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Error fetching dropdown data", err)
		return
	}
	colors := []models.Color{}
	if err := config.DB.Select("id", "name", "hex_code").Order("name").Find(&colors).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Error fetching dropdown data", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"competitors": competitors,
		"items":       items,
		"colors":      colors,
	})
}
