package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pvpit/gatepass-api/internal/models"
)

func samplePass() *models.GatePass {
	return &models.GatePass{
		ID:            "id-1",
		PassType:      models.PassTypeLocal,
		PRNNumber:     "123",
		Department:    "CS",
		Name:          "A",
		Wing:          "W1",
		RoomNumber:    "101",
		Reason:        "home",
		PhoneNo:       "999",
		ProposedVisit: "2024-01-01",
		OutingDates:   "2024-01-01",
		Status:        models.StatusPending,
		CreatedAt:     "2024-01-01T00:00:00Z",
		UpdatedAt:     "2024-01-01T00:00:00Z",
	}
}

func TestPDFExporterRender(t *testing.T) {
	exporter := NewPDFExporter("P.V.P.I.T BUDHGAON")

	data, err := exporter.Render(samplePass())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
	assert.Greater(t, len(data), 500)
}

func TestPDFExporterRenderRejectedPass(t *testing.T) {
	exporter := NewPDFExporter("P.V.P.I.T BUDHGAON")

	pass := samplePass()
	pass.PassType = models.PassTypeLeave
	pass.Status = models.StatusRejected
	pass.RejectionReason = "exams in progress"

	data, err := exporter.Render(pass)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}

func TestPDFExporterRejectsNil(t *testing.T) {
	exporter := NewPDFExporter("")

	_, err := exporter.Render(nil)
	require.Error(t, err)
}

func TestCSVExporterRequiresHeaders(t *testing.T) {
	exporter := NewCSVExporter()

	_, err := exporter.Render(Dataset{})
	require.Error(t, err)
}

func TestCSVExporterRender(t *testing.T) {
	exporter := NewCSVExporter()

	data, err := exporter.Render(Dataset{
		Headers: []string{"id", "status"},
		Rows: []map[string]string{
			{"id": "p1", "status": "Pending"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "id,status\np1,Pending\n", string(data))
}
