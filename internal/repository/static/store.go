package static

import (
	"context"
	"fmt"
	"slices"

	"github.com/kirinyoku/smartpark/internal/domain"
	"github.com/kirinyoku/smartpark/internal/repository"
	"github.com/shopspring/decimal"
)

// AdminEmail is the demo login that switches the account view to the admin panel.
const AdminEmail = "admin@smartpark.com"

// Store serves the hardcoded datasets rendered by the site. Every accessor
// returns a copy so callers may mutate what they get back.
type Store struct {
	garages      []domain.Garage
	permits      []domain.PermitType
	legend       []domain.LegendEntry
	stats        []domain.AdminStat
	alerts       []domain.SecurityAlert
	transactions []domain.Transaction
	channels     []domain.ContactChannel
	categories   []domain.ContactCategory
	faq          []domain.FAQItem
	features     []domain.Feature
	benefits     []string
	account      domain.Account
}

func NewStore() *Store {
	return &Store{
		garages: []domain.Garage{
			{
				Name:     "Main Campus Garage",
				Location: "University District",
				Levels: []domain.Level{
					{Label: "Level 1", Available: 12, Total: 50, Status: domain.LevelLimited},
					{Label: "Level 2", Available: 28, Total: 50, Status: domain.LevelAvailable},
					{Label: "Level 3", Available: 3, Total: 50, Status: domain.LevelNearlyFull},
					{Label: "Level 4", Available: 45, Total: 50, Status: domain.LevelAvailable},
				},
			},
			{
				Name:     "Downtown Plaza",
				Location: "Business District",
				Levels: []domain.Level{
					{Label: "Level 1", Available: 0, Total: 40, Status: domain.LevelFull},
					{Label: "Level 2", Available: 8, Total: 40, Status: domain.LevelLimited},
					{Label: "Level 3", Available: 22, Total: 40, Status: domain.LevelAvailable},
				},
			},
		},
		permits: []domain.PermitType{
			{
				ID:          "daily",
				Name:        "Daily Permit",
				Price:       decimal.NewFromInt(15),
				Duration:    "24 hours",
				Description: "Perfect for visitors and occasional users",
				Features:    []string{"24-hour access", "Any available spot", "Mobile notifications"},
			},
			{
				ID:          "weekly",
				Name:        "Weekly Permit",
				Price:       decimal.NewFromInt(75),
				Duration:    "7 days",
				Description: "Great for short-term projects or extended visits",
				Features:    []string{"7-day access", "Priority parking", "Mobile notifications", "Refund available"},
			},
			{
				ID:          "monthly",
				Name:        "Monthly Permit",
				Price:       decimal.NewFromInt(250),
				Duration:    "30 days",
				Description: "Best value for regular commuters",
				Features:    []string{"30-day access", "Reserved spot option", "Mobile notifications", "Transfer privileges"},
				Popular:     true,
			},
			{
				ID:          "semester",
				Name:        "Semester Permit",
				Price:       decimal.NewFromInt(450),
				Duration:    "120 days",
				Description: "Ideal for students and long-term staff",
				Features:    []string{"120-day access", "Guaranteed spot", "Mobile notifications", "Guest passes included"},
			},
		},
		legend: []domain.LegendEntry{
			{Status: domain.LevelAvailable, Description: "25+ spots available"},
			{Status: domain.LevelLimited, Description: "10-24 spots available"},
			{Status: domain.LevelNearlyFull, Description: "1-9 spots available"},
			{Status: domain.LevelFull, Description: "No spots available"},
		},
		stats: []domain.AdminStat{
			{Title: "Total Active Permits", Value: "1,247", Change: "+12%", Trend: domain.TrendUp},
			{Title: "Current Occupancy", Value: "68%", Change: "+5%", Trend: domain.TrendUp},
			{Title: "Security Alerts", Value: "3", Change: "-2", Trend: domain.TrendDown},
			{Title: "Revenue (Monthly)", Value: "$48,250", Change: "+18%", Trend: domain.TrendUp},
		},
		alerts: []domain.SecurityAlert{
			{ID: 1, Type: "Unauthorized Vehicle", Location: "Level 2, Spot A-15", Time: "2 minutes ago", License: "XYZ-789", Severity: domain.SeverityHigh},
			{ID: 2, Type: "Overstay Detected", Location: "Level 1, Spot B-8", Time: "15 minutes ago", License: "ABC-123", Severity: domain.SeverityMedium},
			{ID: 3, Type: "System Maintenance", Location: "Level 3 Camera Array", Time: "1 hour ago", License: "N/A", Severity: domain.SeverityLow},
		},
		transactions: []domain.Transaction{
			{ID: 1, Type: "Monthly Permit", Amount: "$250.00", Customer: "john.doe@email.com", License: "ABC-1234", Status: domain.TransactionCompleted, Time: "10 minutes ago"},
			{ID: 2, Type: "Daily Permit", Amount: "$15.00", Customer: "jane.smith@email.com", License: "DEF-5678", Status: domain.TransactionCompleted, Time: "25 minutes ago"},
			{ID: 3, Type: "Weekly Permit", Amount: "$75.00", Customer: "mike.wilson@email.com", License: "GHI-9012", Status: domain.TransactionPending, Time: "1 hour ago"},
		},
		channels: []domain.ContactChannel{
			{Title: "Phone Support", Details: "+1 (555) 123-4567", Availability: "Mon-Fri, 8AM-6PM EST"},
			{Title: "Email Support", Details: "support@smartpark.com", Availability: "24/7 Response"},
			{Title: "Office Location", Details: "123 Innovation Drive, Tech City, TC 12345", Availability: "Mon-Fri, 9AM-5PM EST"},
			{Title: "Emergency Support", Details: "+1 (555) 999-HELP", Availability: "24/7 Available"},
		},
		categories: []domain.ContactCategory{
			{Value: "technical", Label: "Technical Support"},
			{Value: "billing", Label: "Billing & Payments"},
			{Value: "permits", Label: "Permit Issues"},
			{Value: "security", Label: "Security Concerns"},
			{Value: "feedback", Label: "General Feedback"},
			{Value: "other", Label: "Other"},
		},
		faq: []domain.FAQItem{
			{
				Question: "How do I register my vehicle in the system?",
				Answer:   "You can register your vehicle when purchasing a permit through our website. Enter your license plate number and vehicle details during checkout.",
			},
			{
				Question: "What happens if I can't find a parking spot?",
				Answer:   "Our real-time system shows available spots across all levels. If all spots are full, the system will notify you and suggest alternative nearby garages.",
			},
			{
				Question: "Can I transfer my parking permit to another vehicle?",
				Answer:   "Monthly and semester permits include transfer privileges. Contact support to update your vehicle information.",
			},
			{
				Question: "How does the license plate recognition work?",
				Answer:   "Our LPR cameras automatically scan and verify your license plate against our permit database when you enter and exit the garage.",
			},
		},
		features: []domain.Feature{
			{Title: "Real-Time Updates", Description: "Get live parking availability updates before you arrive at the garage."},
			{Title: "Smart Navigation", Description: "LED indicators and digital signage guide you to available spots quickly."},
			{Title: "License Plate Recognition", Description: "Advanced security with automatic permit validation and unauthorized vehicle alerts."},
			{Title: "Save Time & Fuel", Description: "Reduce time spent circling garages and decrease unnecessary fuel consumption."},
		},
		benefits: []string{
			"Reduce parking search time by up to 60%",
			"Lower fuel consumption and emissions",
			"Enhanced security with automated monitoring",
			"Seamless permit purchase and management",
			"Real-time availability across all garage levels",
		},
		account: domain.Account{
			Name:          "John Doe",
			Email:         "john.doe@example.com",
			LicenseNumber: "ABC123",
			Permits: []domain.AccountPermit{
				{ID: 1, Type: "Monthly", StartDate: "2024-07-01", EndDate: "2024-07-31", Status: "active", Vehicle: "Toyota Camry - ABC123"},
			},
		},
	}
}

func (s *Store) Garages(ctx context.Context) ([]domain.Garage, error) {
	out := make([]domain.Garage, len(s.garages))
	for i, g := range s.garages {
		g.Levels = slices.Clone(g.Levels)
		out[i] = g
	}

	return out, ctx.Err()
}

func (s *Store) PermitTypes(ctx context.Context) ([]domain.PermitType, error) {
	out := make([]domain.PermitType, len(s.permits))
	for i, p := range s.permits {
		p.Features = slices.Clone(p.Features)
		out[i] = p
	}

	return out, ctx.Err()
}

// PermitType looks a catalog entry up by id.
//
// Returns:
//   - repository.ErrNotFound if no entry has the given id.
func (s *Store) PermitType(ctx context.Context, id string) (domain.PermitType, error) {
	const op = "repository.static.PermitType"

	if err := ctx.Err(); err != nil {
		return domain.PermitType{}, fmt.Errorf("%s: %w", op, err)
	}

	for _, p := range s.permits {
		if p.ID == id {
			p.Features = slices.Clone(p.Features)
			return p, nil
		}
	}

	return domain.PermitType{}, fmt.Errorf("%s: permit %q: %w", op, id, repository.ErrNotFound)
}

func (s *Store) Legend() []domain.LegendEntry {
	return slices.Clone(s.legend)
}

func (s *Store) AdminStats() []domain.AdminStat {
	return slices.Clone(s.stats)
}

func (s *Store) SecurityAlerts() []domain.SecurityAlert {
	return slices.Clone(s.alerts)
}

func (s *Store) Transactions() []domain.Transaction {
	return slices.Clone(s.transactions)
}

func (s *Store) ContactChannels() []domain.ContactChannel {
	return slices.Clone(s.channels)
}

func (s *Store) ContactCategories() []domain.ContactCategory {
	return slices.Clone(s.categories)
}

func (s *Store) FAQ() []domain.FAQItem {
	return slices.Clone(s.faq)
}

func (s *Store) Features() []domain.Feature {
	return slices.Clone(s.features)
}

func (s *Store) Benefits() []string {
	return slices.Clone(s.benefits)
}

func (s *Store) Account() domain.Account {
	a := s.account
	a.Permits = slices.Clone(a.Permits)
	return a
}
