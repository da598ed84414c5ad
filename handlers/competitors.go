package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"p9e.in/sheets/config"
	"p9e.in/sheets/models"
)

type competitorPayload struct {
	Name     string            `json:"name"`
	Address  string            `json:"address"`
	Contacts *[]models.Contact `json:"contacts"`
	Website  string            `json:"website"`
	Notes    string            `json:"notes"`
}

func GetAllCompetitors(w http.ResponseWriter, r *http.Request) {
	competitors := []models.Competitor{}
	if err := config.DB.Order("created_at").Find(&competitors).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Error fetching competitors", err)
		return
	}
	respondJSON(w, http.StatusOK, competitors)
}

func CreateCompetitor(w http.ResponseWriter, r *http.Request) {
	var body competitorPayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if body.Name == "" || body.Address == "" {
		respondError(w, http.StatusBadRequest, "Name and address are required", nil)
		return
	}

	competitor := models.Competitor{
		Name:     body.Name,
		Address:  body.Address,
		Contacts: datatypes.JSONSlice[models.Contact]{},
		Website:  body.Website,
		Notes:    body.Notes,
	}
	if body.Contacts != nil {
		competitor.Contacts = datatypes.JSONSlice[models.Contact](*body.Contacts)
	}

	if err := config.DB.Create(&competitor).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Error creating competitor", err)
		return
	}
	respondJSON(w, http.StatusCreated, competitor)
}

// UpdateCompetitor merges supplied fields over the stored record; omitted
// fields keep their previous values.
func UpdateCompetitor(w http.ResponseWriter, r *http.Request) {
	competitorID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusNotFound, "Competitor not found", nil)
		return
	}

	var competitor models.Competitor
	if err := config.DB.First(&competitor, "id = ?", competitorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(w, http.StatusNotFound, "Competitor not found", nil)
		} else {
			respondError(w, http.StatusInternalServerError, "Error updating competitor", err)
		}
		return
	}

	var body competitorPayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if body.Name != "" {
		competitor.Name = body.Name
	}
	if body.Address != "" {
		competitor.Address = body.Address
	}
	if body.Contacts != nil {
		competitor.Contacts = datatypes.JSONSlice[models.Contact](*body.Contacts)
	}
	if body.Website != "" {
		competitor.Website = body.Website
	}
	if body.Notes != "" {
		competitor.Notes = body.Notes
	}

	if err := config.DB.Save(&competitor).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Error updating competitor", err)
		return
	}
	respondJSON(w, http.StatusOK, competitor)
}

func DeleteCompetitor(w http.ResponseWriter, r *http.Request) {
	competitorID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusNotFound, "Competitor not found", nil)
		return
	}

	result := config.DB.Delete(&models.Competitor{}, "id = ?", competitorID)
	if result.Error != nil {
		respondError(w, http.StatusInternalServerError, "Error deleting competitor", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondError(w, http.StatusNotFound, "Competitor not found", nil)
		return
	}

	// Entry references to a deleted competitor are left in place on purpose;
	// see models.CascadeNullOnDelete.
	if models.CascadeNullOnDelete[models.RefCompetitor] {
		if err := models.NullEntryRefs(config.DB, models.RefCompetitor, competitorID); err != nil {
			log.Printf("Error clearing competitor references: %v", err)
		}
	}

	respondMessage(w, http.StatusOK, "Competitor deleted successfully")
}
