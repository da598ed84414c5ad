package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"p9e.in/sheets/config"
	"p9e.in/sheets/models"
)

// maxItemFormMemory caps in-memory multipart parsing for item forms.
const maxItemFormMemory = 10 << 20

func GetAllItems(w http.ResponseWriter, r *http.Request) {
	items := []models.Item{}
	if err := config.DB.Order("name").Find(&items).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Error fetching items", err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

// CreateItem accepts a multipart form with the item fields plus an optional
// "image" file, which goes to blob storage before the row is written.
func CreateItem(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxItemFormMemory); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid form data", err)
		return
	}

	name := r.FormValue("name")
	priceText := r.FormValue("price")
	if name == "" || priceText == "" {
		respondError(w, http.StatusBadRequest, "Name and price are required", nil)
		return
	}
	price, err := strconv.ParseFloat(priceText, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Name and price are required", nil)
		return
	}
	stock := 0
	if s := r.FormValue("stock"); s != "" {
		stock, err = strconv.Atoi(s)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid stock value", nil)
			return
		}
	}

	image := models.Image{}
	if obj, uploaded, err := saveFormImage(r); err != nil {
		respondError(w, http.StatusInternalServerError, "Error uploading image", err)
		return
	} else if uploaded {
		image = models.Image{URL: obj.URL, StorageID: obj.StorageID}
	}

	item := models.Item{
		Name:        name,
		Description: r.FormValue("description"),
		Category:    r.FormValue("category"),
		Price:       price,
		Stock:       stock,
		Image:       datatypes.NewJSONType(image),
	}
	if err := config.DB.Create(&item).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Error creating item", err)
		return
	}
	respondJSON(w, http.StatusCreated, item)
}

func UpdateItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusNotFound, "Item not found", nil)
		return
	}

	if err := r.ParseMultipartForm(maxItemFormMemory); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid form data", err)
		return
	}

	name := r.FormValue("name")
	priceText := r.FormValue("price")
	if name == "" || priceText == "" {
		respondError(w, http.StatusBadRequest, "Name and price are required", nil)
		return
	}
	price, err := strconv.ParseFloat(priceText, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Name and price are required", nil)
		return
	}

	var item models.Item
	if err := config.DB.First(&item, "id = ?", itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(w, http.StatusNotFound, "Item not found", nil)
		} else {
			respondError(w, http.StatusInternalServerError, "Error updating item", err)
		}
		return
	}

	// A fresh image replaces the stored one; otherwise it is kept. Entries
	// that snapshotted the old image keep their copy either way.
	if obj, uploaded, err := saveFormImage(r); err != nil {
		respondError(w, http.StatusInternalServerError, "Error uploading image", err)
		return
	} else if uploaded {
		item.Image = datatypes.NewJSONType(models.Image{URL: obj.URL, StorageID: obj.StorageID})
	}

	item.Name = name
	item.Price = price
	if v := r.FormValue("description"); v != "" {
		item.Description = v
	}
	if v := r.FormValue("category"); v != "" {
		item.Category = v
	}
	if v := r.FormValue("stock"); v != "" {
		stock, err := strconv.Atoi(v)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid stock value", nil)
			return
		}
		item.Stock = stock
	}

	if err := config.DB.Save(&item).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Error updating item", err)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

func DeleteItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusNotFound, "Item not found", nil)
		return
	}

	result := config.DB.Delete(&models.Item{}, "id = ?", itemID)
	if result.Error != nil {
		respondError(w, http.StatusInternalServerError, "Error deleting item", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondError(w, http.StatusNotFound, "Item not found", nil)
		return
	}

	// Entry snapshots keep the deleted item's image; the reference itself
	// stays and resolves to null on read. See models.CascadeNullOnDelete.
	if models.CascadeNullOnDelete[models.RefItem] {
		if err := models.NullEntryRefs(config.DB, models.RefItem, itemID); err != nil {
			log.Printf("Error clearing item references: %v", err)
		}
	}

	respondMessage(w, http.StatusOK, "Item deleted successfully")
}
