package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/pvpit/gatepass-api/internal/models"
)

// PDFExporter renders a single gate pass into a printable A4 document. The
// document is produced entirely in memory; nothing touches the filesystem.
type PDFExporter struct {
	institution string
}

// NewPDFExporter constructs a PDF exporter stamped with the institution name.
func NewPDFExporter(institution string) *PDFExporter {
	return &PDFExporter{institution: institution}
}

// Render produces the fixed-layout gate pass page: institution header, a
// colored banner naming the pass type, every record field as a label/value
// row, the rejection reason when rejected, and two signature placeholders.
func (e *PDFExporter) Render(pass *models.GatePass) ([]byte, error) {
	if pass == nil {
		return nil, fmt.Errorf("pdf requires a gate pass record")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, e.institution, "", 1, "C", false, 0, "")

	passType := strings.ToUpper(pass.PassType)
	if pass.PassType == models.PassTypeLocal {
		pdf.SetFillColor(135, 206, 250) // light blue
	} else {
		pdf.SetFillColor(144, 238, 144) // light green
	}
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(190, 10, fmt.Sprintf("%s GATE PASS", passType), "", 1, "C", true, 0, "")
	pdf.Ln(5)

	details := []struct {
		label string
		value string
	}{
		{"Gate Pass ID", pass.ID},
		{"Pass Type", passType},
		{"Name", pass.Name},
		{"PRN Number", pass.PRNNumber},
		{"Department", pass.Department},
		{"Wing", pass.Wing},
		{"Room Number", pass.RoomNumber},
		{"Reason", pass.Reason},
		{"Proposed Visit", pass.ProposedVisit},
		{"Outing Dates", pass.OutingDates},
		{"Phone Number", pass.PhoneNo},
		{"Status", pass.Status},
		{"Created At", orNA(pass.CreatedAt)},
		{"Last Updated", orNA(pass.UpdatedAt)},
	}

	pdf.SetFont("Arial", "", 12)
	for _, row := range details {
		pdf.CellFormat(190, 10, fmt.Sprintf("%s: %s", row.label, row.value), "", 1, "", false, 0, "")
	}

	if pass.Status == models.StatusRejected {
		pdf.Ln(5)
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(190, 10, "Rejection Reason:", "", 1, "", false, 0, "")
		pdf.SetFont("Arial", "", 12)
		reason := pass.RejectionReason
		if reason == "" {
			reason = "No reason provided"
		}
		pdf.MultiCell(0, 10, reason, "", "", false)
	}

	pdf.Ln(20)
	pdf.CellFormat(95, 10, "Student's Signature", "", 0, "C", false, 0, "")
	pdf.CellFormat(95, 10, "Authority's Signature", "", 1, "C", false, 0, "")

	pdf.Ln(10)
	pdf.SetFont("Arial", "", 8)
	pdf.CellFormat(190, 5, fmt.Sprintf("Officially Verified by %s", e.institution), "", 1, "R", false, 0, "")
	pdf.CellFormat(190, 5, fmt.Sprintf("Generated on: %s", time.Now().UTC().Format(time.RFC3339)), "", 1, "R", false, 0, "")

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
