package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pvpit/gatepass-api/internal/models"
	"github.com/pvpit/gatepass-api/internal/service"
	appErrors "github.com/pvpit/gatepass-api/pkg/errors"
	"github.com/pvpit/gatepass-api/pkg/response"
)

type gatePassService interface {
	Submit(ctx context.Context, req service.SubmitGatePassRequest) (*models.GatePass, error)
	List(ctx context.Context, typeFilter string) ([]models.GatePass, error)
	ListPreview(ctx context.Context, typeFilter string) ([]models.GatePassPreview, error)
	Get(ctx context.Context, id string) (*models.GatePass, error)
	StatusByPRN(ctx context.Context, prn string) ([]models.GatePass, error)
	UpdateStatus(ctx context.Context, id string, req service.UpdateStatusRequest) (string, error)
}

type exportService interface {
	GatePassPDF(pass *models.GatePass) ([]byte, string, error)
	RegisterCSV(previews []models.GatePassPreview) ([]byte, string, error)
}

// GatePassHandler exposes the gate pass endpoints.
type GatePassHandler struct {
	passes  gatePassService
	exports exportService
}

// NewGatePassHandler constructs GatePassHandler.
func NewGatePassHandler(passes gatePassService, exports exportService) *GatePassHandler {
	return &GatePassHandler{passes: passes, exports: exports}
}

// RegisterRoutes wires the gate pass routes. Submission and the student
// status lookup stay open; everything watchman-facing goes behind the guard.
func (h *GatePassHandler) RegisterRoutes(r *gin.Engine, guard gin.HandlerFunc) {
	r.POST("/submit_gate_pass", h.Submit)
	r.GET("/get_gate_pass_status/:prn_number", h.StatusByPRN)

	protected := r.Group("", guard)
	protected.GET("/get_gate_passes", h.List)
	protected.POST("/update_gate_pass/:id", h.UpdateStatus)
	protected.GET("/watchmen/gate_passes", h.Preview)
	protected.GET("/watchmen/gate_passes/export", h.ExportCSV)
	protected.GET("/watchmen/gate_pass/:id", h.Detail)
	protected.GET("/download_pdf/:id", h.DownloadPDF)
}

// Submit godoc
// @Summary Submit a gate pass request
// @Tags Gate Passes
// @Accept json
// @Produce json
// @Param payload body service.SubmitGatePassRequest true "Gate pass payload"
// @Success 201 {object} map[string]string
// @Router /submit_gate_pass [post]
func (h *GatePassHandler) Submit(c *gin.Context) {
	var req service.SubmitGatePassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "no data provided"))
		return
	}

	pass, err := h.passes.Submit(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, gin.H{
		"message": "Gate Pass Submitted",
		"id":      pass.ID,
		"type":    pass.PassType,
	})
}

// List godoc
// @Summary List all gate passes
// @Tags Gate Passes
// @Produce json
// @Param type query string false "Filter by pass type (local or leave)"
// @Success 200 {array} models.GatePass
// @Router /get_gate_passes [get]
func (h *GatePassHandler) List(c *gin.Context) {
	passes, err := h.passes.List(c.Request.Context(), c.Query("type"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, passes)
}

// StatusByPRN godoc
// @Summary List a student's gate passes by PRN
// @Tags Gate Passes
// @Produce json
// @Param prn_number path string true "Student PRN"
// @Success 200 {array} models.GatePass
// @Router /get_gate_pass_status/{prn_number} [get]
func (h *GatePassHandler) StatusByPRN(c *gin.Context) {
	passes, err := h.passes.StatusByPRN(c.Request.Context(), c.Param("prn_number"))
	if err != nil {
		appErr := appErrors.FromError(err)
		if appErr.Status == http.StatusInternalServerError {
			response.ErrorWithDetails(c, err)
			return
		}
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, passes)
}

// UpdateStatus godoc
// @Summary Approve or reject a gate pass
// @Tags Gate Passes
// @Accept json
// @Produce json
// @Param id path string true "Gate pass ID"
// @Param payload body service.UpdateStatusRequest true "Decision payload"
// @Success 200 {object} map[string]string
// @Router /update_gate_pass/{id} [post]
func (h *GatePassHandler) UpdateStatus(c *gin.Context) {
	var req service.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "no data provided"))
		return
	}

	id := c.Param("id")
	updatedAt, err := h.passes.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{
		"message":    fmt.Sprintf("Gate Pass %s", req.Status),
		"id":         id,
		"updated_at": updatedAt,
	})
}

// Preview godoc
// @Summary List gate passes projected for watchman review
// @Tags Watchmen
// @Produce json
// @Param type query string false "Filter by pass type (local or leave)"
// @Success 200 {array} models.GatePassPreview
// @Router /watchmen/gate_passes [get]
func (h *GatePassHandler) Preview(c *gin.Context) {
	previews, err := h.passes.ListPreview(c.Request.Context(), c.Query("type"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, previews)
}

// Detail godoc
// @Summary Get one gate pass in full
// @Tags Watchmen
// @Produce json
// @Param id path string true "Gate pass ID"
// @Success 200 {object} models.GatePass
// @Router /watchmen/gate_pass/{id} [get]
func (h *GatePassHandler) Detail(c *gin.Context) {
	pass, err := h.passes.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, pass)
}

// DownloadPDF godoc
// @Summary Download a gate pass as PDF
// @Tags Watchmen
// @Produce application/pdf
// @Param id path string true "Gate pass ID"
// @Success 200 {file} binary
// @Router /download_pdf/{id} [get]
func (h *GatePassHandler) DownloadPDF(c *gin.Context) {
	pass, err := h.passes.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	data, filename, err := h.exports.GatePassPDF(pass)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}

// ExportCSV godoc
// @Summary Download the gate pass register as CSV
// @Tags Watchmen
// @Produce text/csv
// @Param type query string false "Filter by pass type (local or leave)"
// @Success 200 {file} binary
// @Router /watchmen/gate_passes/export [get]
func (h *GatePassHandler) ExportCSV(c *gin.Context) {
	previews, err := h.passes.ListPreview(c.Request.Context(), c.Query("type"))
	if err != nil {
		response.Error(c, err)
		return
	}

	data, filename, err := h.exports.RegisterCSV(previews)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", data)
}
