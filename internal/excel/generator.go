package excel

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/nurpe/printhub-api/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate writes both submission collections into one workbook, a sheet per
// collection.
func (g *Generator) Generate(export model.SubmissionExport) ([]byte, error) {
	file := excelize.NewFile()

	contactSheet := "Contact Submissions"
	file.SetSheetName("Sheet1", contactSheet)
	if err := g.writeContacts(file, contactSheet, export); err != nil {
		return nil, err
	}

	uploadSheet := "File Uploads"
	if _, err := file.NewSheet(uploadSheet); err != nil {
		return nil, err
	}
	if err := g.writeFileUploads(file, uploadSheet, export); err != nil {
		return nil, err
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeContacts(file *excelize.File, sheet string, export model.SubmissionExport) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Exported at")
	set("B1", formatDateTime(export.GeneratedAt))
	set("A2", "Total submissions")
	set("B2", len(export.Contacts))

	tableRow := 4
	headers := []string{"Submitted at", "Name", "Phone", "Email", "Service", "Message"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, tableRow)
		set(cell, header)
	}

	for i, sub := range export.Contacts {
		row := tableRow + 1 + i
		set(fmt.Sprintf("A%d", row), formatDateTime(sub.SubmittedAt))
		set(fmt.Sprintf("B%d", row), sub.Name)
		set(fmt.Sprintf("C%d", row), sub.Phone)
		set(fmt.Sprintf("D%d", row), sub.Email)
		set(fmt.Sprintf("E%d", row), sub.Service)
		set(fmt.Sprintf("F%d", row), sub.Message)
	}

	_ = file.SetColWidth(sheet, "A", "A", 20)
	_ = file.SetColWidth(sheet, "B", "B", 24)
	_ = file.SetColWidth(sheet, "C", "D", 26)
	_ = file.SetColWidth(sheet, "E", "E", 22)
	_ = file.SetColWidth(sheet, "F", "F", 60)
	return nil
}

func (g *Generator) writeFileUploads(file *excelize.File, sheet string, export model.SubmissionExport) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Exported at")
	set("B1", formatDateTime(export.GeneratedAt))
	set("A2", "Total uploads")
	set("B2", len(export.FileUploads))

	tableRow := 4
	headers := []string{"Uploaded at", "Customer", "Phone", "Email", "Service", "File name", "File size", "File type", "Notes"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, tableRow)
		set(cell, header)
	}

	for i, upload := range export.FileUploads {
		row := tableRow + 1 + i
		set(fmt.Sprintf("A%d", row), formatDateTime(upload.UploadedAt))
		set(fmt.Sprintf("B%d", row), upload.CustomerName)
		set(fmt.Sprintf("C%d", row), upload.CustomerPhone)
		set(fmt.Sprintf("D%d", row), upload.CustomerEmail)
		set(fmt.Sprintf("E%d", row), upload.ServiceType)
		set(fmt.Sprintf("F%d", row), upload.FileName)
		set(fmt.Sprintf("G%d", row), upload.FileSize)
		set(fmt.Sprintf("H%d", row), upload.FileType)
		set(fmt.Sprintf("I%d", row), upload.Notes)
	}

	_ = file.SetColWidth(sheet, "A", "A", 20)
	_ = file.SetColWidth(sheet, "B", "B", 24)
	_ = file.SetColWidth(sheet, "C", "D", 26)
	_ = file.SetColWidth(sheet, "E", "F", 28)
	_ = file.SetColWidth(sheet, "G", "H", 14)
	_ = file.SetColWidth(sheet, "I", "I", 40)
	return nil
}

func formatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}
