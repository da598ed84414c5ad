package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"p9e.in/sheets/config"
	"p9e.in/sheets/models"
)

var exportHeaders = []string{
	"Order",
	"Store Name",
	"Address",
	"Personnel",
	"Insight",
	"Competitor",
	"Item",
	"Image URL",
	"Name",
	"Color",
	"Validation",
	"Files",
	"Validation Notes",
}

var (
	filenameSanitizer = regexp.MustCompile(`[^a-zA-Z0-9]`)
	tabNameSanitizer  = regexp.MustCompile(`[/?*\[\]]`)
)

// entryRow flattens a resolved entry into the export column order.
func entryRow(e models.EntryView) []interface{} {
	competitor := ""
	if e.CompetitorAnalysis.Competitor != nil {
		competitor = e.CompetitorAnalysis.Competitor.Name
	}
	item := ""
	if e.CompetitorAnalysis.Item != nil {
		item = e.CompetitorAnalysis.Item.Name
	}
	color := ""
	if e.CompetitorAnalysis.Color != nil {
		color = fmt.Sprintf("%s (%s)", e.CompetitorAnalysis.Color.Name, e.CompetitorAnalysis.Color.HexCode)
	}
	names := make([]string, len(e.Files))
	for i, f := range e.Files {
		names[i] = f.Name
	}

	return []interface{}{
		e.Order,
		e.StoreName,
		e.Address,
		e.Personnel,
		e.Insight,
		competitor,
		item,
		e.CompetitorAnalysis.Image.URL,
		e.CompetitorAnalysis.Name,
		color,
		e.Validation,
		strings.Join(names, ";"),
		e.ValidationNotes,
	}
}

// buildSheetCSV renders one resolved sheet as CSV text: a report/hours
// preamble, a blank line, the header row, then one row per entry. Every field
// is wrapped in double quotes, which is the shape downstream spreadsheets
// already parse.
func buildSheetCSV(s models.SheetView) string {
	lines := []string{
		"Report: " + s.Name,
		"Hours: " + s.Hours,
		"",
		strings.Join(exportHeaders, ","),
	}
	for _, e := range s.Data {
		fields := make([]string, 0, len(exportHeaders))
		for _, v := range entryRow(e) {
			fields = append(fields, fmt.Sprintf("%q", fmt.Sprint(v)))
		}
		lines = append(lines, strings.Join(fields, ","))
	}
	return strings.Join(lines, "\n")
}

// sanitizeTabName makes a sheet name legal as a workbook tab: at most 31
// characters with the characters Excel forbids removed.
func sanitizeTabName(name string) string {
	runes := []rune(name)
	if len(runes) > 31 {
		runes = runes[:31]
	}
	return tabNameSanitizer.ReplaceAllString(string(runes), "")
}

// buildWorkbook renders every resolved sheet as one tab of an xlsx workbook,
// with the same layout as the CSV export offset so data starts at row 4.
func buildWorkbook(sheets []models.SheetView) (*excelize.File, error) {
	f := excelize.NewFile()
	for i, s := range sheets {
		tab := sanitizeTabName(s.Name)
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), tab); err != nil {
				return nil, err
			}
		} else if _, err := f.NewSheet(tab); err != nil {
			return nil, err
		}

		f.SetCellValue(tab, "A1", "Report: "+s.Name)
		f.SetCellValue(tab, "A2", "Hours: "+s.Hours)
		for col, h := range exportHeaders {
			cell, _ := excelize.CoordinatesToCellName(col+1, 4)
			f.SetCellValue(tab, cell, h)
		}
		for rowIdx, e := range s.Data {
			for col, v := range entryRow(e) {
				cell, _ := excelize.CoordinatesToCellName(col+1, rowIdx+5)
				f.SetCellValue(tab, cell, v)
			}
		}
	}
	return f, nil
}

// ExportSheet downloads one sheet as CSV.
func ExportSheet(w http.ResponseWriter, r *http.Request) {
	sheetID, err := uuid.Parse(mux.Vars(r)["sheetId"])
	if err != nil {
		respondError(w, http.StatusNotFound, "Sheet not found", nil)
		return
	}

	var sheet models.Sheet
	if err := config.DB.First(&sheet, "id = ?", sheetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(w, http.StatusNotFound, "Sheet not found", nil)
		} else {
			respondError(w, http.StatusInternalServerError, "Error exporting sheet", err)
		}
		return
	}

	views, err := models.NewResolver(config.DB).ResolveSheets([]models.Sheet{sheet})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error exporting sheet", err)
		return
	}
	csvContent := buildSheetCSV(views[0])

	filename := filenameSanitizer.ReplaceAllString(sheet.Name, "_") + ".csv"
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(csvContent))
}

// ExportAllSheets downloads every sheet as one xlsx workbook, one tab per
// sheet. No sheets at all is a 404, not an empty workbook.
func ExportAllSheets(w http.ResponseWriter, r *http.Request) {
	var sheets []models.Sheet
	if err := config.DB.Order("created_at").Find(&sheets).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Error exporting all sheets", err)
		return
	}
	if len(sheets) == 0 {
		respondError(w, http.StatusNotFound, "No sheets found", nil)
		return
	}

	views, err := models.NewResolver(config.DB).ResolveSheets(sheets)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error exporting all sheets", err)
		return
	}

	workbook, err := buildWorkbook(views)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error exporting all sheets", err)
		return
	}
	buffer, err := workbook.WriteToBuffer()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error exporting all sheets", err)
		return
	}

	w.Header().Set("Content-Disposition", "attachment; filename=All_Sheets.xlsx")
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Length", fmt.Sprintf("%d", buffer.Len()))
	w.WriteHeader(http.StatusOK)
	w.Write(buffer.Bytes())
}
