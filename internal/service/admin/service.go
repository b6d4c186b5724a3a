package admin

import (
	"context"
	"fmt"
	"strings"

	"github.com/kirinyoku/smartpark/internal/domain"
	"github.com/kirinyoku/smartpark/internal/repository/static"
)

type Service struct {
	store *static.Store
}

func New(store *static.Store) *Service {
	return &Service{store: store}
}

// Dashboard is everything the admin page renders.
type Dashboard struct {
	Stats        []domain.AdminStat
	Alerts       []domain.SecurityAlert
	Transactions []domain.Transaction
	Search       string
	// Total is the number of transactions before the search was applied.
	Total int
}

// Filtered reports whether the search hid any transactions.
func (d Dashboard) Filtered() bool {
	return len(d.Transactions) < d.Total
}

// Dashboard collects stats, recent alerts and recent transactions.
//
// Parameters:
//   - ctx: request-scoped context.
//   - search: optional term; when non-blank only transactions whose type,
//     amount, customer, license or status contain it are kept.
//
// Returns:
//   - error: the context error if the request was cancelled.
func (s *Service) Dashboard(ctx context.Context, search string) (Dashboard, error) {
	const op = "service.admin.Dashboard"

	if err := ctx.Err(); err != nil {
		return Dashboard{}, fmt.Errorf("%s: %w", op, err)
	}

	all := s.store.Transactions()
	search = strings.TrimSpace(search)

	kept := make([]domain.Transaction, 0, len(all))
	for _, t := range all {
		if t.Matches(search) {
			kept = append(kept, t)
		}
	}

	return Dashboard{
		Stats:        s.store.AdminStats(),
		Alerts:       s.store.SecurityAlerts(),
		Transactions: kept,
		Search:       search,
		Total:        len(all),
	}, nil
}
