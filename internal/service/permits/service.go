package permits

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kirinyoku/smartpark/internal/domain"
	"github.com/kirinyoku/smartpark/internal/latency"
	"github.com/kirinyoku/smartpark/internal/repository"
	"github.com/kirinyoku/smartpark/internal/repository/static"
	"github.com/shopspring/decimal"
)

// ProcessingFee is the flat fee added to every permit purchase.
var ProcessingFee = decimal.New(250, -2)

type Config struct {
	ProcessingDelay time.Duration
}

type Service struct {
	store *static.Store
	cfg   Config
}

type Summary struct {
	Permit        domain.PermitType `json:"permit"`
	Subtotal      decimal.Decimal   `json:"subtotal"`
	ProcessingFee decimal.Decimal   `json:"processing_fee"`
	Total         decimal.Decimal   `json:"total"`
}

type PurchaseResult struct {
	State  domain.FormState
	Form   domain.PurchaseForm
	Toasts []domain.Toast
}

func New(store *static.Store, cfg Config) *Service {
	if cfg.ProcessingDelay < 0 {
		cfg.ProcessingDelay = 0
	}

	return &Service{store: store, cfg: cfg}
}

// Catalog returns the permit types in display order.
func (s *Service) Catalog(ctx context.Context) ([]domain.PermitType, error) {
	const op = "service.permits.Catalog"

	permits, err := s.store.PermitTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return permits, nil
}

// Summary builds the order summary panel for the selected permit.
//
// Parameters:
//   - ctx: request-scoped context.
//   - permitID: id of the selected catalog entry.
//
// Returns:
//   - Summary: price, flat processing fee and their total.
//   - error: permits.ErrPermitNotFound if the id is not in the catalog.
func (s *Service) Summary(ctx context.Context, permitID string) (Summary, error) {
	const op = "service.permits.Summary"

	p, err := s.store.PermitType(ctx, permitID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return Summary{}, fmt.Errorf("%s: %w", op, ErrPermitNotFound)
		}

		return Summary{}, fmt.Errorf("%s: %w", op, err)
	}

	return Summary{
		Permit:        p,
		Subtotal:      p.Price,
		ProcessingFee: ProcessingFee,
		Total:         p.Price.Add(ProcessingFee),
	}, nil
}

// Purchase validates the purchase form and simulates the payment round trip.
// Nothing is charged or stored; once validation passes the purchase always
// succeeds unless ctx ends during the simulated processing delay.
//
// Returns:
//   - PurchaseResult: resulting form state, the normalised form and the toasts to show.
//   - error: permits.ErrPermitNotFound for an unknown permit id, or the
//     context error if the request was cancelled while processing.
func (s *Service) Purchase(ctx context.Context, permitID string, form domain.PurchaseForm) (PurchaseResult, error) {
	const op = "service.permits.Purchase"

	form.LicensePlate = strings.ToUpper(form.LicensePlate)
	res := PurchaseResult{Form: form}

	if strings.TrimSpace(permitID) == "" {
		res.State = domain.FormInvalid
		res.Toasts = append(res.Toasts, domain.Alert("Please select a permit type", ""))
		return res, nil
	}

	if _, err := s.Summary(ctx, permitID); err != nil {
		return res, fmt.Errorf("%s: %w", op, err)
	}

	if blank(form.LicensePlate) || blank(form.Email) {
		res.State = domain.FormInvalid
		res.Toasts = append(res.Toasts, domain.Alert(
			"Please fill in required fields",
			"License plate and email are required",
		))
		return res, nil
	}

	res.State = domain.FormSubmitting
	res.Toasts = append(res.Toasts, domain.Notice(
		"Payment Processing",
		"Redirecting to secure payment gateway...",
	))

	if err := latency.Wait(ctx, s.cfg.ProcessingDelay); err != nil {
		return res, fmt.Errorf("%s: %w", op, err)
	}

	res.State = domain.FormSubmitted
	res.Toasts = append(res.Toasts, domain.Notice(
		"Permit Purchased Successfully!",
		"Your parking permit has been activated. Check your email for details.",
	))

	return res, nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
