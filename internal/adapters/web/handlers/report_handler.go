package handlers

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/SanjayD11/NourishNet-sub001/internal/adapters/reporting"
	"github.com/SanjayD11/NourishNet-sub001/internal/core/ports"
)

const reportEventLimit = 200

// ReportHandler serves PDF downloads of a widget's preview history.
type ReportHandler struct {
	Service  ports.PreviewService
	Exporter *reporting.PDFExporter
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(service ports.PreviewService, exporter *reporting.PDFExporter) *ReportHandler {
	return &ReportHandler{
		Service:  service,
		Exporter: exporter,
	}
}

// HandleDownload generates and streams the PDF report for one widget.
func (h *ReportHandler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	snap, err := h.Service.GetWidget(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	events, err := h.Service.Events(id, reportEventLimit)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	data, err := h.Exporter.ExportWidgetHistory(snap, events)
	if err != nil {
		http.Error(w, "Failed to generate report: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=preview-%s.pdf", id))
	w.Write(data)
}
