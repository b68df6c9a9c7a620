package reporting

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/SanjayD11/NourishNet-sub001/internal/core/domain"
)

// PDFExporter renders a widget's preview history as a PDF document.
type PDFExporter struct{}

// NewPDFExporter creates a new PDF exporter instance.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// ExportWidgetHistory generates a PDF with the widget's current state and its
// recorded transitions, newest first.
func (e *PDFExporter) ExportWidgetHistory(snap domain.Snapshot, events []domain.PreviewEvent) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	e.addHeader(pdf, snap)
	e.addSummary(pdf, snap)
	e.addEventTable(pdf, events)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return buf.Bytes(), nil
}

func (e *PDFExporter) addHeader(pdf *gofpdf.Fpdf, snap domain.Snapshot) {
	pdf.SetFont("Arial", "B", 20)
	pdf.SetTextColor(0, 51, 102)
	title := "Location Preview Report"
	if snap.Label != "" {
		title = fmt.Sprintf("Location Preview Report - %s", snap.Label)
	}
	pdf.CellFormat(0, 12, title, "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 6, fmt.Sprintf("Widget %s", snap.WidgetID), "", 1, "L", false, 0, "")
	pdf.Ln(4)
}

func (e *PDFExporter) addSummary(pdf *gofpdf.Fpdf, snap domain.Snapshot) {
	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 8, "Current State", "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	coordinate := "not set"
	if snap.Coordinate != nil {
		coordinate = snap.Coordinate.String()
	}
	rows := [][2]string{
		{"Phase", string(snap.Phase)},
		{"Coordinate", coordinate},
		{"Generation", fmt.Sprintf("%d", snap.Generation)},
	}
	if snap.LastError != "" {
		rows = append(rows, [2]string{"Last error", snap.LastError})
	}
	for _, row := range rows {
		pdf.CellFormat(40, 7, row[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, row[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}

func (e *PDFExporter) addEventTable(pdf *gofpdf.Fpdf, events []domain.PreviewEvent) {
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Transition History", "", 1, "L", false, 0, "")

	if len(events) == 0 {
		pdf.SetFont("Arial", "I", 10)
		pdf.CellFormat(0, 7, "No transitions recorded.", "", 1, "L", false, 0, "")
		return
	}

	// Table header
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(38, 7, "Time", "1", 0, "L", true, 0, "")
	pdf.CellFormat(16, 7, "Gen", "1", 0, "C", true, 0, "")
	pdf.CellFormat(44, 7, "Transition", "1", 0, "L", true, 0, "")
	pdf.CellFormat(42, 7, "Coordinate", "1", 0, "L", true, 0, "")
	pdf.CellFormat(50, 7, "Error", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 8)
	for _, ev := range events {
		errText := ev.Error
		if len(errText) > 40 {
			errText = errText[:37] + "..."
		}
		pdf.CellFormat(38, 6, ev.Timestamp.Format("2006-01-02 15:04:05"), "1", 0, "L", false, 0, "")
		pdf.CellFormat(16, 6, fmt.Sprintf("%d", ev.Generation), "1", 0, "C", false, 0, "")
		pdf.CellFormat(44, 6, fmt.Sprintf("%s -> %s", ev.FromPhase, ev.ToPhase), "1", 0, "L", false, 0, "")
		pdf.CellFormat(42, 6, ev.Coordinate, "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 6, errText, "1", 1, "L", false, 0, "")
	}
}
