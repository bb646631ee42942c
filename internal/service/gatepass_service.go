package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pvpit/gatepass-api/internal/models"
	"github.com/pvpit/gatepass-api/internal/repository"
	appErrors "github.com/pvpit/gatepass-api/pkg/errors"
)

type gatePassRepository interface {
	Create(ctx context.Context, pass *models.GatePass) error
	List(ctx context.Context, typeFilter string) ([]models.GatePass, error)
	FindByID(ctx context.Context, id string) (*models.GatePass, error)
	FindByPRN(ctx context.Context, prn string) ([]models.GatePass, error)
	UpdateStatus(ctx context.Context, id string, update models.StatusUpdate) error
}

// SubmitGatePassRequest holds the student submission payload. Every field is
// mandatory; values beyond the pass type enum are accepted as-is.
type SubmitGatePassRequest struct {
	PassType      string `json:"pass_type" validate:"required,oneof=local leave"`
	PRNNumber     string `json:"prn_number" validate:"required"`
	Department    string `json:"department" validate:"required"`
	Name          string `json:"name" validate:"required"`
	Wing          string `json:"wing" validate:"required"`
	RoomNumber    string `json:"room_number" validate:"required"`
	Reason        string `json:"reason" validate:"required"`
	PhoneNo       string `json:"phone_no" validate:"required"`
	ProposedVisit string `json:"proposed_visit" validate:"required"`
	OutingDates   string `json:"outing_dates" validate:"required"`
}

// UpdateStatusRequest holds the watchman decision payload.
type UpdateStatusRequest struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

// GatePassService owns the gate pass lifecycle: submission, listing,
// lookups and the approval decision.
type GatePassService struct {
	repo      gatePassRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewGatePassService constructs the gate pass service.
func NewGatePassService(repo gatePassRepository, validate *validator.Validate, logger *zap.Logger) *GatePassService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	registerJSONTagNames(validate)
	return &GatePassService{repo: repo, validator: validate, logger: logger}
}

// Submit validates the request, assigns a fresh identifier and timestamps,
// and persists the pass in Pending state.
func (s *GatePassService) Submit(ctx context.Context, req SubmitGatePassRequest) (*models.GatePass, error) {
	if err := s.validator.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return nil, appErrors.Clone(appErrors.ErrValidation, validationMessage(fieldErrs[0]))
		}
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}

	now := time.Now().UTC().Format(time.RFC3339)
	pass := &models.GatePass{
		ID:            uuid.NewString(),
		PassType:      req.PassType,
		PRNNumber:     req.PRNNumber,
		Department:    req.Department,
		Name:          req.Name,
		Wing:          req.Wing,
		RoomNumber:    req.RoomNumber,
		Reason:        req.Reason,
		PhoneNo:       req.PhoneNo,
		ProposedVisit: req.ProposedVisit,
		OutingDates:   req.OutingDates,
		Status:        models.StatusPending,
		Timestamp:     now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, pass); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to submit gate pass")
	}

	s.logger.Info("gate pass submitted",
		zap.String("id", pass.ID),
		zap.String("pass_type", pass.PassType),
		zap.String("prn_number", pass.PRNNumber),
	)
	return pass, nil
}

// List returns all passes, optionally filtered by type, newest first. Store
// read failures degrade to an empty result rather than surfacing.
func (s *GatePassService) List(ctx context.Context, typeFilter string) ([]models.GatePass, error) {
	passes, err := s.repo.List(ctx, typeFilter)
	if err != nil {
		s.logger.Warn("gate pass list query failed", zap.Error(err))
		return []models.GatePass{}, nil
	}
	if passes == nil {
		passes = []models.GatePass{}
	}
	return passes, nil
}

// ListPreview returns the watchman projection of List.
func (s *GatePassService) ListPreview(ctx context.Context, typeFilter string) ([]models.GatePassPreview, error) {
	passes, err := s.List(ctx, typeFilter)
	if err != nil {
		return nil, err
	}
	previews := make([]models.GatePassPreview, 0, len(passes))
	for _, pass := range passes {
		previews = append(previews, pass.Preview())
	}
	return previews, nil
}

// Get returns the full record for one pass.
func (s *GatePassService) Get(ctx context.Context, id string) (*models.GatePass, error) {
	pass, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "gate pass not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load gate pass")
	}
	return pass, nil
}

// StatusByPRN returns every pass a student has filed, newest first. A PRN
// with no passes is an empty slice, never an error.
func (s *GatePassService) StatusByPRN(ctx context.Context, prn string) ([]models.GatePass, error) {
	if strings.TrimSpace(prn) == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid PRN number")
	}

	passes, err := s.repo.FindByPRN(ctx, prn)
	if err != nil {
		s.logger.Warn("gate pass PRN query failed", zap.String("prn_number", prn), zap.Error(err))
		return []models.GatePass{}, nil
	}
	if passes == nil {
		passes = []models.GatePass{}
	}
	return passes, nil
}

// UpdateStatus applies a watchman decision and returns the new updated_at
// stamp. Only Approved and Rejected are accepted; a rejection always
// persists a reason, defaulting to the empty string. Re-deciding a pass that
// is already terminal is allowed.
func (s *GatePassService) UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (string, error) {
	if req.Status != models.StatusApproved && req.Status != models.StatusRejected {
		return "", appErrors.Clone(appErrors.ErrValidation, "invalid status")
	}

	update := models.StatusUpdate{
		Status:    req.Status,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if req.Status == models.StatusRejected {
		update.SetRejection = true
		update.RejectionReason = req.Reason
	}

	if err := s.repo.UpdateStatus(ctx, id, update); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", appErrors.Clone(appErrors.ErrNotFound, "gate pass not found")
		}
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update gate pass")
	}

	s.logger.Info("gate pass decided",
		zap.String("id", id),
		zap.String("status", req.Status),
	)
	return update.UpdatedAt, nil
}

// registerJSONTagNames makes validator report json field names, so error
// messages match the wire payload.
func registerJSONTagNames(validate *validator.Validate) {
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func validationMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("missing field: %s", fieldErr.Field())
	case "oneof":
		return "invalid pass type, must be 'local' or 'leave'"
	default:
		return fmt.Sprintf("invalid field: %s", fieldErr.Field())
	}
}
