package routes

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"p9e.in/sheets/handlers"
	"p9e.in/sheets/pkg/blob"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/", handleRoot).Methods("GET")

	// Local uploads are served straight off disk; GCS objects carry their
	// own public URLs.
	if !blob.UseGCS() {
		r.PathPrefix("/uploads/").Handler(
			http.StripPrefix("/uploads/", http.FileServer(http.Dir("./uploads"))),
		)
	}

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", handleHealth).Methods("GET")
	api.HandleFunc("/upload", handlers.UploadFile).Methods("POST")

	registerSheetRoutes(api)
	registerReferenceRoutes(api)

	return r
}

// registerSheetRoutes wires the sheet aggregate: sheet CRUD, the embedded
// entry lifecycle, exports, the store directory and the dropdown feeds.
// Fixed segments go in before the {sheetId} patterns that would swallow them.
func registerSheetRoutes(api *mux.Router) {
	s := api.PathPrefix("/sheets").Subrouter()

	s.HandleFunc("/export/all", handlers.ExportAllSheets).Methods("GET")
	s.HandleFunc("/dropdown-data", handlers.GetDropdownData).Methods("GET")
	s.HandleFunc("/competitor-analysis-options", handlers.GetDropdownData).Methods("GET")

	s.HandleFunc("/stores", handlers.GetStores).Methods("GET")
	s.HandleFunc("/stores", handlers.AddStore).Methods("POST")
	s.HandleFunc("/stores/{storeId}", handlers.UpdateStore).Methods("PUT")
	s.HandleFunc("/stores/{storeId}", handlers.DeleteStore).Methods("DELETE")

	s.HandleFunc("", handlers.GetSheets).Methods("GET")
	s.HandleFunc("", handlers.CreateSheet).Methods("POST")
	s.HandleFunc("/{sheetId}", handlers.UpdateSheet).Methods("PUT")
	s.HandleFunc("/{sheetId}", handlers.DeleteSheet).Methods("DELETE")
	s.HandleFunc("/{sheetId}/export", handlers.ExportSheet).Methods("GET")
	s.HandleFunc("/{sheetId}/entries", handlers.AddEntry).Methods("POST")
	s.HandleFunc("/{sheetId}/entries/{entryId}", handlers.UpdateEntry).Methods("PUT")
	s.HandleFunc("/{sheetId}/entries/{entryId}", handlers.DeleteEntry).Methods("DELETE")
}

func registerReferenceRoutes(api *mux.Router) {
	api.HandleFunc("/competitors", handlers.GetAllCompetitors).Methods("GET")
	api.HandleFunc("/competitors", handlers.CreateCompetitor).Methods("POST")
	api.HandleFunc("/competitors/{id}", handlers.UpdateCompetitor).Methods("PUT")
	api.HandleFunc("/competitors/{id}", handlers.DeleteCompetitor).Methods("DELETE")

	api.HandleFunc("/items", handlers.GetAllItems).Methods("GET")
	api.HandleFunc("/items", handlers.CreateItem).Methods("POST")
	api.HandleFunc("/items/{id}", handlers.UpdateItem).Methods("PUT")
	api.HandleFunc("/items/{id}", handlers.DeleteItem).Methods("DELETE")

	api.HandleFunc("/colors", handlers.GetColors).Methods("GET")
	api.HandleFunc("/colors", handlers.AddColor).Methods("POST")
	api.HandleFunc("/colors/{colorId}", handlers.UpdateColor).Methods("PUT")
	api.HandleFunc("/colors/{colorId}", handlers.DeleteColor).Methods("DELETE")
}

func handleRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Welcome to the Sales Summary Report API",
		"status":  "OK",
		"endpoints": map[string]string{
			"health":      "/api/health",
			"sheets":      "/api/sheets",
			"items":       "/api/items",
			"competitors": "/api/competitors",
			"colors":      "/api/colors",
			"upload":      "/api/upload",
		},
	})
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "OK"})
}
