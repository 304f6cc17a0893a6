package handler

import (
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"github.com/Dadssi/Calendrier-Editoriel/internal/models"
	"github.com/Dadssi/Calendrier-Editoriel/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExportHandler produces downloadable snapshots of the calendar.
type ExportHandler struct {
	DB *gorm.DB
}

func NewExportHandler(db *gorm.DB) *ExportHandler {
	return &ExportHandler{DB: db}
}

var exportHeaders = []string{"Date", "Time", "Title", "Platforms", "Format", "Genre", "Sub-genre", "Status", "Description"}

func (h *ExportHandler) exportRows() ([][]string, error) {
	var contents []models.Content
	if err := h.DB.Order("date ASC, time ASC").Find(&contents).Error; err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(contents))
	for i := range contents {
		ct := &contents[i]
		rows = append(rows, []string{
			ct.Date,
			normalizeTime(ct.Time),
			ct.Title,
			strings.Join(decodePlatforms(ct.Platforms), ", "),
			ct.Format,
			ct.Genre,
			ct.SubGenre,
			ct.Status,
			ct.Description,
		})
	}
	return rows, nil
}

// ExportCSV streams the whole calendar as CSV.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	rows, err := h.exportRows()
	if err != nil {
		util.ServerError(c)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"calendar_%s.csv\"",
		time.Now().Format("20060102")))

	// UTF-8 BOM so spreadsheet apps pick the right encoding
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write(exportHeaders)
	for _, row := range rows {
		writer.Write(row)
	}
}

// ExportXLSX streams the whole calendar as an XLSX workbook.
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	rows, err := h.exportRows()
	if err != nil {
		util.ServerError(c)
		return
	}

	f := excelize.NewFile()
	sheetName := "Calendar"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.ServerError(c)
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for i, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}
	for r, row := range rows {
		for i, value := range row {
			cell, _ := excelize.CoordinatesToCellName(i+1, r+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	f.SetColWidth(sheetName, "A", "B", 12)
	f.SetColWidth(sheetName, "C", "C", 30)
	f.SetColWidth(sheetName, "D", "H", 15)
	f.SetColWidth(sheetName, "I", "I", 40)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"calendar_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.ServerError(c)
	}
}
