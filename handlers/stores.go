package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"p9e.in/sheets/config"
	"p9e.in/sheets/models"
)

type storePayload struct {
	StoreName string            `json:"storeName"`
	Address1  string            `json:"address1"`
	Address2  string            `json:"address2"`
	Personnel *[]string         `json:"personnel"`
	Contacts  *[]models.Contact `json:"contacts"`
	Building  string            `json:"building"`
	City      string            `json:"city"`
	State     string            `json:"state"`
	Zip       string            `json:"zip"`
	Country   string            `json:"country"`
}

// validate returns the 400 message for a bad store payload, or "".
func (p *storePayload) validate() string {
	if p.StoreName == "" || p.Address1 == "" {
		return "Store name and primary address are required"
	}
	if p.Contacts != nil {
		for _, c := range *p.Contacts {
			if c.PersonName == "" {
				return "Contact personName is required for all contacts"
			}
		}
	}
	return ""
}

func GetStores(w http.ResponseWriter, r *http.Request) {
	stores := []models.Store{}
	if err := config.DB.Order("created_at").Find(&stores).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Error fetching stores", err)
		return
	}
	respondJSON(w, http.StatusOK, stores)
}

func AddStore(w http.ResponseWriter, r *http.Request) {
	var body storePayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if msg := body.validate(); msg != "" {
		respondError(w, http.StatusBadRequest, msg, nil)
		return
	}

	store := models.Store{
		StoreName: body.StoreName,
		Address1:  body.Address1,
		Address2:  body.Address2,
		Personnel: datatypes.JSONSlice[string]{},
		Contacts:  datatypes.JSONSlice[models.Contact]{},
		Building:  body.Building,
		City:      body.City,
		State:     body.State,
		Zip:       body.Zip,
		Country:   body.Country,
	}
	if body.Personnel != nil {
		store.Personnel = datatypes.JSONSlice[string](models.FilterPersonnel(*body.Personnel))
	}
	if body.Contacts != nil {
		store.Contacts = datatypes.JSONSlice[models.Contact](*body.Contacts)
	}

	if err := config.DB.Create(&store).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Error adding store", err)
		return
	}
	respondJSON(w, http.StatusCreated, store)
}

func UpdateStore(w http.ResponseWriter, r *http.Request) {
	storeID, err := uuid.Parse(mux.Vars(r)["storeId"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid store ID", nil)
		return
	}

	var body storePayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if msg := body.validate(); msg != "" {
		respondError(w, http.StatusBadRequest, msg, nil)
		return
	}

	var store models.Store
	if err := config.DB.First(&store, "id = ?", storeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(w, http.StatusNotFound, "Store not found", nil)
		} else {
			respondError(w, http.StatusInternalServerError, "Error updating store", err)
		}
		return
	}

	store.StoreName = body.StoreName
	store.Address1 = body.Address1
	if body.Address2 != "" {
		store.Address2 = body.Address2
	}
	if body.Personnel != nil {
		store.Personnel = datatypes.JSONSlice[string](models.FilterPersonnel(*body.Personnel))
	}
	if body.Contacts != nil {
		store.Contacts = datatypes.JSONSlice[models.Contact](*body.Contacts)
	}
	if body.Building != "" {
		store.Building = body.Building
	}
	if body.City != "" {
		store.City = body.City
	}
	if body.State != "" {
		store.State = body.State
	}
	if body.Zip != "" {
		store.Zip = body.Zip
	}
	if body.Country != "" {
		store.Country = body.Country
	}

	if err := config.DB.Save(&store).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Error updating store", err)
		return
	}
	respondJSON(w, http.StatusOK, store)
}

func DeleteStore(w http.ResponseWriter, r *http.Request) {
	storeID, err := uuid.Parse(mux.Vars(r)["storeId"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid store ID", nil)
		return
	}

	result := config.DB.Delete(&models.Store{}, "id = ?", storeID)
	if result.Error != nil {
		respondError(w, http.StatusInternalServerError, "Error deleting store", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondError(w, http.StatusNotFound, "Store not found", nil)
		return
	}
	respondMessage(w, http.StatusOK, "Store deleted successfully")
}
