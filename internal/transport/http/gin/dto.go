package httpgin

import (
	"time"

	"github.com/kirinyoku/smartpark/internal/domain"
	"github.com/kirinyoku/smartpark/internal/service/account"
	"github.com/kirinyoku/smartpark/internal/service/admin"
	"github.com/kirinyoku/smartpark/internal/service/contact"
	"github.com/kirinyoku/smartpark/internal/service/home"
	"github.com/kirinyoku/smartpark/internal/service/parking"
	"github.com/kirinyoku/smartpark/internal/service/permits"
)

// --- JSON ---

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

// --- Forms ---

// PurchaseRequest is the purchase form. Permit is set by the clicked permit
// card; Selected carries the current choice as a hidden field.
type PurchaseRequest struct {
	domain.PurchaseForm
	Permit   string `form:"permit"`
	Selected string `form:"selected"`
	Action   string `form:"action"`
}

type AdminQuery struct {
	Search string `form:"q"`
}

type AuthQuery struct {
	Tab string `form:"tab"`
}

// --- Pages ---

type navLink struct {
	Path  string
	Label string
}

// Layout is shared by every page: title, navigation and the toasts raised
// while handling the request.
type Layout struct {
	Title     string
	Path      string
	Nav       []navLink
	Toasts    []domain.Toast
	RequestID string
}

type HomePage struct {
	Layout
	Garages []parking.GarageView
	home.Page
}

type StatusPage struct {
	Layout
	Overview    parking.Overview
	Legend      []domain.LegendEntry
	Garages     []parking.GarageView
	LastUpdated time.Time
}

type PurchasePage struct {
	Layout
	Catalog  []domain.PermitType
	Selected string
	// Summary is nil until a permit is selected.
	Summary *permits.Summary
	Form    domain.PurchaseForm
	State   domain.FormState
}

type AdminPage struct {
	Layout
	admin.Dashboard
}

type ContactPage struct {
	Layout
	contact.Page
	Form  domain.ContactForm
	State domain.FormState
}

type AuthPage struct {
	Layout
	Session account.View
}

type NotFoundPage struct {
	Layout
}

type ErrorPage struct {
	Layout
	Status  int
	Message string
}
