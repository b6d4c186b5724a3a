package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

type LevelStatus string

const (
	LevelAvailable  LevelStatus = "available"
	LevelLimited    LevelStatus = "limited"
	LevelNearlyFull LevelStatus = "nearly-full"
	LevelFull       LevelStatus = "full"
)

// Label returns the badge text shown next to a level.
func (s LevelStatus) Label() string {
	switch s {
	case LevelAvailable:
		return "Available"
	case LevelLimited:
		return "Limited"
	case LevelNearlyFull:
		return "Nearly Full"
	case LevelFull:
		return "Full"
	default:
		return "Unknown"
	}
}

type Garage struct {
	Name     string  `json:"name"`
	Location string  `json:"location"`
	Levels   []Level `json:"levels"`
}

// Level carries an authored status; it is never derived from the counts.
type Level struct {
	Label     string      `json:"label"`
	Available int         `json:"available"`
	Total     int         `json:"total"`
	Status    LevelStatus `json:"status"`
}

type LegendEntry struct {
	Status      LevelStatus
	Description string
}

type PermitType struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Duration    string          `json:"duration"`
	Description string          `json:"description"`
	Features    []string        `json:"features"`
	Popular     bool            `json:"popular"`
}

type PurchaseForm struct {
	LicensePlate string `form:"licensePlate"`
	VehicleMake  string `form:"vehicleMake"`
	VehicleModel string `form:"vehicleModel"`
	Email        string `form:"email"`
	Phone        string `form:"phone"`
}

func (f PurchaseForm) IsEmpty() bool {
	return f == PurchaseForm{}
}

type ContactForm struct {
	Name     string `form:"name"`
	Email    string `form:"email"`
	Phone    string `form:"phone"`
	Subject  string `form:"subject"`
	Message  string `form:"message"`
	Category string `form:"category"`
}

func (f ContactForm) IsEmpty() bool {
	return f == ContactForm{}
}

type ContactCategory struct {
	Value string
	Label string
}

type ContactChannel struct {
	Title        string
	Details      string
	Availability string
}

type FAQItem struct {
	Question string
	Answer   string
}

type Feature struct {
	Title       string
	Description string
}

type LoginForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

type RegisterForm struct {
	Name            string `form:"name"`
	Email           string `form:"email"`
	Password        string `form:"password"`
	ConfirmPassword string `form:"confirmPassword"`
	LicenseNumber   string `form:"licenseNumber"`
}

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type AccountPermit struct {
	ID        int
	Type      string
	StartDate string
	EndDate   string
	Status    string
	Vehicle   string
}

type Account struct {
	Name          string
	Email         string
	LicenseNumber string
	Permits       []AccountPermit
}

type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
)

type AdminStat struct {
	Title  string
	Value  string
	Change string
	Trend  Trend
}

type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

type SecurityAlert struct {
	ID       int
	Type     string
	Location string
	Time     string
	License  string
	Severity Severity
}

// HasLicense reports whether the alert is tied to a vehicle.
func (a SecurityAlert) HasLicense() bool {
	return a.License != "" && a.License != "N/A"
}

type TransactionStatus string

const (
	TransactionCompleted TransactionStatus = "completed"
	TransactionPending   TransactionStatus = "pending"
	TransactionFailed    TransactionStatus = "failed"
)

type Transaction struct {
	ID       int
	Type     string
	Amount   string
	Customer string
	License  string
	Status   TransactionStatus
	Time     string
}

// Matches reports whether term occurs in any displayed column, ignoring case.
func (t Transaction) Matches(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}

	for _, field := range []string{t.Type, t.Amount, t.Customer, t.License, string(t.Status)} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}

	return false
}

type ToastVariant string

const (
	ToastDefault     ToastVariant = "default"
	ToastDestructive ToastVariant = "destructive"
)

type Toast struct {
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Variant     ToastVariant `json:"variant"`
}

func Notice(title, description string) Toast {
	return Toast{Title: title, Description: description, Variant: ToastDefault}
}

func Alert(title, description string) Toast {
	return Toast{Title: title, Description: description, Variant: ToastDestructive}
}

type FormState string

const (
	FormEmpty      FormState = "empty"
	FormEditing    FormState = "editing"
	FormInvalid    FormState = "invalid"
	FormSubmitting FormState = "submitting"
	FormSubmitted  FormState = "submitted"
)
