package service

import (
	"fmt"

	"github.com/pvpit/gatepass-api/internal/models"
	"github.com/pvpit/gatepass-api/pkg/export"
	appErrors "github.com/pvpit/gatepass-api/pkg/errors"
)

var registerHeaders = []string{
	"id", "name", "prn_number", "department", "wing",
	"status", "pass_type", "created_at", "updated_at",
}

// ExportService turns gate pass records into downloadable documents.
type ExportService struct {
	pdf *export.PDFExporter
	csv *export.CSVExporter
}

// NewExportService constructs the export service.
func NewExportService(pdf *export.PDFExporter, csv *export.CSVExporter) *ExportService {
	return &ExportService{pdf: pdf, csv: csv}
}

// GatePassPDF renders the printable pass and names the attachment.
func (s *ExportService) GatePassPDF(pass *models.GatePass) ([]byte, string, error) {
	data, err := s.pdf.Render(pass)
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render gate pass pdf")
	}
	return data, fmt.Sprintf("gate_pass_%s.pdf", pass.ID), nil
}

// RegisterCSV renders the watchman preview rows as a CSV register.
func (s *ExportService) RegisterCSV(previews []models.GatePassPreview) ([]byte, string, error) {
	rows := make([]map[string]string, 0, len(previews))
	for _, p := range previews {
		rows = append(rows, map[string]string{
			"id":         p.ID,
			"name":       p.Name,
			"prn_number": p.PRNNumber,
			"department": p.Department,
			"wing":       p.Wing,
			"status":     p.Status,
			"pass_type":  p.PassType,
			"created_at": p.CreatedAt,
			"updated_at": p.UpdatedAt,
		})
	}

	data, err := s.csv.Render(export.Dataset{Headers: registerHeaders, Rows: rows})
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render gate pass register")
	}
	return data, "gate_pass_register.csv", nil
}
