package loading

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/vfg2006/revenue-intelligence-api/internal/domain"
	"github.com/vfg2006/revenue-intelligence-api/pkg/period"
	"github.com/vfg2006/revenue-intelligence-api/pkg/utils"
)

// Registros no formato dos arquivos de carga, antes da normalização

type accountRecord struct {
	AccountID string  `json:"account_id" validate:"required"`
	Name      string  `json:"name" validate:"required"`
	Industry  *string `json:"industry"`
	Segment   *string `json:"segment"`
}

type repRecord struct {
	RepID string `json:"rep_id" validate:"required"`
	Name  string `json:"name" validate:"required"`
}

type dealRecord struct {
	DealID    string   `json:"deal_id" validate:"required"`
	AccountID string   `json:"account_id" validate:"required"`
	RepID     string   `json:"rep_id" validate:"required"`
	Stage     string   `json:"stage" validate:"required"`
	Amount    *float64 `json:"amount" validate:"omitempty,gte=0"`
	CreatedAt string   `json:"created_at" validate:"required,date"`
	ClosedAt  *string  `json:"closed_at" validate:"omitempty,date"`
}

type activityRecord struct {
	ActivityID string `json:"activity_id" validate:"required"`
	DealID     string `json:"deal_id" validate:"required"`
	Type       string `json:"type" validate:"required"`
	Timestamp  string `json:"timestamp" validate:"required,date"`
}

type targetRecord struct {
	Month  string   `json:"month" validate:"required,month"`
	Target *float64 `json:"target" validate:"required,gte=0"`
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		_, err := utils.ParseDate(fl.Field().String())
		return err == nil
	})

	_ = v.RegisterValidation("month", func(fl validator.FieldLevel) bool {
		_, err := period.ParseMonthKey(fl.Field().String())
		return err == nil
	})

	return v
}

func (r *accountRecord) toDomain() (*domain.Account, error) {
	return &domain.Account{
		ID:       r.AccountID,
		Name:     r.Name,
		Industry: r.Industry,
		Segment:  r.Segment,
	}, nil
}

func (r *repRecord) toDomain() (*domain.Rep, error) {
	return &domain.Rep{ID: r.RepID, Name: r.Name}, nil
}

// toDomain aplica as regras entre campos: closed_at existe se e somente se o estágio é terminal
func (r *dealRecord) toDomain() (*domain.Deal, error) {
	createdAt, err := utils.ParseDate(r.CreatedAt)
	if err != nil {
		return nil, err
	}

	var closedAt *time.Time
	if r.ClosedAt != nil {
		if closedAt, err = utils.ParseDate(*r.ClosedAt); err != nil {
			return nil, err
		}
	}

	closed := domain.IsClosedStage(r.Stage)
	switch {
	case closed && closedAt == nil:
		return nil, fmt.Errorf("negócio %s no estágio %q sem closed_at", r.DealID, r.Stage)
	case !closed && closedAt != nil:
		return nil, fmt.Errorf("negócio %s aberto com closed_at preenchido", r.DealID)
	case closedAt != nil && closedAt.Before(period.Day(*createdAt)):
		return nil, fmt.Errorf("negócio %s fechado antes de ser criado", r.DealID)
	}

	deal := &domain.Deal{
		ID:        r.DealID,
		AccountID: r.AccountID,
		RepID:     r.RepID,
		Stage:     r.Stage,
		CreatedAt: period.Day(*createdAt),
		ClosedAt:  closedAt,
	}

	if closedAt != nil {
		day := period.Day(*closedAt)
		deal.ClosedAt = &day
	}

	if r.Amount != nil {
		deal.Amount = *r.Amount
	}

	return deal, nil
}

func (r *activityRecord) toDomain() (*domain.Activity, error) {
	timestamp, err := utils.ParseDate(r.Timestamp)
	if err != nil {
		return nil, err
	}

	return &domain.Activity{
		ID:        r.ActivityID,
		DealID:    r.DealID,
		Type:      r.Type,
		Timestamp: *timestamp,
	}, nil
}

func (r *targetRecord) toDomain() (*domain.Target, error) {
	return &domain.Target{Month: r.Month, Target: *r.Target}, nil
}
