package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pvpit/gatepass-api/internal/models"
	"github.com/pvpit/gatepass-api/pkg/export"
)

func TestExportServiceGatePassPDF(t *testing.T) {
	svc := NewExportService(export.NewPDFExporter("P.V.P.I.T BUDHGAON"), export.NewCSVExporter())

	pass := &models.GatePass{
		ID:       "abc-123",
		PassType: models.PassTypeLocal,
		Name:     "A",
		Status:   models.StatusPending,
	}

	data, filename, err := svc.GatePassPDF(pass)
	require.NoError(t, err)
	assert.Equal(t, "gate_pass_abc-123.pdf", filename)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}

func TestExportServiceRegisterCSV(t *testing.T) {
	svc := NewExportService(export.NewPDFExporter(""), export.NewCSVExporter())

	previews := []models.GatePassPreview{
		{ID: "p1", Name: "A", PRNNumber: "123", Status: models.StatusPending, PassType: "local"},
		{ID: "p2", Name: "B", PRNNumber: "456", Status: models.StatusApproved, PassType: "leave"},
	}

	data, filename, err := svc.RegisterCSV(previews)
	require.NoError(t, err)
	assert.Equal(t, "gate_pass_register.csv", filename)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id,name,prn_number,department,wing,status,pass_type,created_at,updated_at", lines[0])
	assert.Contains(t, lines[1], "p1")
	assert.Contains(t, lines[2], "p2")
}

func TestExportServiceRegisterCSVEmpty(t *testing.T) {
	svc := NewExportService(export.NewPDFExporter(""), export.NewCSVExporter())

	data, _, err := svc.RegisterCSV(nil)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 1)
}
