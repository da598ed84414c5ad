package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"p9e.in/sheets/config"
	"p9e.in/sheets/models"
)

type analysisPayload struct {
	Competitor string `json:"competitor"`
	Item       string `json:"item"`
	Color      string `json:"color"`
	Name       string `json:"name"`
}

type entryPayload struct {
	StoreName          string            `json:"storeName"`
	Address            string            `json:"address"`
	Personnel          string            `json:"personnel"`
	Insight            string            `json:"insight"`
	CompetitorAnalysis *analysisPayload  `json:"competitorAnalysis"`
	Validation         string            `json:"validation"`
	Files              *[]models.FileRef `json:"files"`
	ValidationNotes    string            `json:"validationNotes"`
}

// patch converts the wire payload into a models.EntryPatch, checking that
// every supplied reference id parses. A non-empty second return is the 400
// message for the caller.
func (p *entryPayload) patch() (models.EntryPatch, string) {
	out := models.EntryPatch{
		StoreName:       p.StoreName,
		Address:         p.Address,
		Personnel:       p.Personnel,
		Insight:         p.Insight,
		Validation:      p.Validation,
		ValidationNotes: p.ValidationNotes,
		Files:           p.Files,
	}
	if p.CompetitorAnalysis == nil {
		return out, ""
	}

	a := &models.AnalysisPatch{Name: p.CompetitorAnalysis.Name}
	if s := p.CompetitorAnalysis.Competitor; s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return out, "Invalid competitor ID"
		}
		a.Competitor = &id
	}
	if s := p.CompetitorAnalysis.Item; s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return out, "Invalid item ID"
		}
		a.Item = &id
	}
	if s := p.CompetitorAnalysis.Color; s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return out, "Invalid color ID"
		}
		a.Color = &id
	}
	out.Analysis = a
	return out, ""
}

// itemImageLookup resolves an item's current image inside tx. An item that
// does not exist yields an empty snapshot, never an error.
func itemImageLookup(tx *gorm.DB) models.ImageLookup {
	return func(itemID uuid.UUID) models.Image {
		var item models.Item
		if err := tx.First(&item, "id = ?", itemID).Error; err != nil {
			return models.Image{}
		}
		return item.Image.Data()
	}
}

// lockSheet reads the sheet row with a FOR UPDATE lock so concurrent entry
// mutations against the same sheet serialize and order numbers stay
// contiguous.
func lockSheet(tx *gorm.DB, sheetID uuid.UUID) (*models.Sheet, error) {
	var sheet models.Sheet
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&sheet, "id = ?", sheetID).Error
	if err != nil {
		return nil, err
	}
	return &sheet, nil
}

// AddEntry appends a store-visit entry to a sheet and returns it resolved.
func AddEntry(w http.ResponseWriter, r *http.Request) {
	sheetID, err := uuid.Parse(mux.Vars(r)["sheetId"])
	if err != nil {
		respondError(w, http.StatusNotFound, "Sheet not found", nil)
		return
	}

	var body entryPayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if body.StoreName == "" {
		respondError(w, http.StatusBadRequest, "Store name is required", nil)
		return
	}
	patch, msg := body.patch()
	if msg != "" {
		respondError(w, http.StatusBadRequest, msg, nil)
		return
	}

	var sheet models.Sheet
	var entryID uuid.UUID
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		locked, err := lockSheet(tx, sheetID)
		if err != nil {
			return err
		}
		entry := locked.AppendEntry(models.NewEntry(patch, itemImageLookup(tx)))
		entryID = entry.ID
		if err := tx.Model(locked).Update("data", locked.Data).Error; err != nil {
			return err
		}
		sheet = *locked
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(w, http.StatusNotFound, "Sheet not found", nil)
		} else {
			respondError(w, http.StatusInternalServerError, "Error adding entry", err)
		}
		return
	}

	view, err := models.NewResolver(config.DB).ResolveEntry(&sheet, entryID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error adding entry", err)
		return
	}
	respondJSON(w, http.StatusCreated, view)
}

// UpdateEntry rewrites an entry in place. Text fields omitted from the body
// reset to empty, matching what the UI has always relied on; references and
// files merge with the stored values.
func UpdateEntry(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sheetID, err := uuid.Parse(vars["sheetId"])
	if err != nil {
		respondError(w, http.StatusNotFound, "Sheet not found", nil)
		return
	}
	entryID, err := uuid.Parse(vars["entryId"])
	if err != nil {
		respondError(w, http.StatusNotFound, "Entry not found", nil)
		return
	}

	var body entryPayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if body.StoreName == "" {
		respondError(w, http.StatusBadRequest, "Store name is required", nil)
		return
	}
	patch, msg := body.patch()
	if msg != "" {
		respondError(w, http.StatusBadRequest, msg, nil)
		return
	}

	var sheet models.Sheet
	errEntry := errors.New("entry not found")
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		locked, err := lockSheet(tx, sheetID)
		if err != nil {
			return err
		}
		entry := locked.FindEntry(entryID)
		if entry == nil {
			return errEntry
		}
		entry.ApplyPatch(patch, itemImageLookup(tx))
		if err := tx.Model(locked).Update("data", locked.Data).Error; err != nil {
			return err
		}
		sheet = *locked
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			respondError(w, http.StatusNotFound, "Sheet not found", nil)
		case errors.Is(err, errEntry):
			respondError(w, http.StatusNotFound, "Entry not found", nil)
		default:
			respondError(w, http.StatusInternalServerError, "Error updating entry", err)
		}
		return
	}

	view, err := models.NewResolver(config.DB).ResolveEntry(&sheet, entryID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error updating entry", err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// DeleteEntry removes an entry and renumbers the rest so order stays a
// contiguous 1-based sequence.
func DeleteEntry(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sheetID, err := uuid.Parse(vars["sheetId"])
	if err != nil {
		respondError(w, http.StatusNotFound, "Sheet not found", nil)
		return
	}
	entryID, err := uuid.Parse(vars["entryId"])
	if err != nil {
		respondError(w, http.StatusNotFound, "Entry not found", nil)
		return
	}

	errEntry := errors.New("entry not found")
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		locked, err := lockSheet(tx, sheetID)
		if err != nil {
			return err
		}
		if !locked.RemoveEntry(entryID) {
			return errEntry
		}
		return tx.Model(locked).Update("data", locked.Data).Error
	})
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			respondError(w, http.StatusNotFound, "Sheet not found", nil)
		case errors.Is(err, errEntry):
			respondError(w, http.StatusNotFound, "Entry not found", nil)
		default:
			respondError(w, http.StatusInternalServerError, "Error deleting entry", err)
		}
		return
	}
	respondMessage(w, http.StatusOK, "Entry deleted successfully")
}
