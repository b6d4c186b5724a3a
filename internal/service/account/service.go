package account

import (
	"context"
	"strings"

	"github.com/kirinyoku/smartpark/internal/domain"
	"github.com/kirinyoku/smartpark/internal/repository/static"
)

const (
	TabLogin    = "login"
	TabRegister = "register"
)

// View is the state of the account page after one interaction. The role is
// picked by comparing the login email with a single demo literal; it grants
// nothing and is never remembered past the response.
type View struct {
	LoggedIn bool
	Role     domain.Role
	Tab      string
	Account  domain.Account
	Login    domain.LoginForm
	Register domain.RegisterForm
	State    domain.FormState
	Toasts   []domain.Toast
}

func (v View) IsAdmin() bool {
	return v.LoggedIn && v.Role == domain.RoleAdmin
}

type Service struct {
	store *static.Store
}

func New(store *static.Store) *Service {
	return &Service{store: store}
}

// Anonymous is the signed-out page with the given tab active.
func (s *Service) Anonymous(tab string) View {
	if tab != TabRegister {
		tab = TabLogin
	}

	return View{Role: domain.RoleUser, Tab: tab, State: domain.FormEmpty}
}

func (s *Service) Login(_ context.Context, form domain.LoginForm) View {
	v := s.Anonymous(TabLogin)
	v.Login = form

	if blank(form.Email) || blank(form.Password) {
		v.State = domain.FormInvalid
		v.Toasts = []domain.Toast{domain.Alert("Please fill in all fields", "")}
		return v
	}

	v.Role = domain.RoleUser
	if form.Email == static.AdminEmail {
		v.Role = domain.RoleAdmin
	}

	return s.signedIn(v, domain.Notice("Login Successful!", "Welcome back!"))
}

func (s *Service) Register(_ context.Context, form domain.RegisterForm) View {
	v := s.Anonymous(TabRegister)
	v.Register = form

	if blank(form.Name) || blank(form.Email) || blank(form.Password) || blank(form.LicenseNumber) {
		v.State = domain.FormInvalid
		v.Toasts = []domain.Toast{domain.Alert("Please fill in all fields", "")}
		return v
	}

	if form.Password != form.ConfirmPassword {
		v.State = domain.FormInvalid
		v.Toasts = []domain.Toast{domain.Alert("Passwords don't match", "")}
		return v
	}

	v.Role = domain.RoleUser

	return s.signedIn(v, domain.Notice("Registration Successful!", "Welcome to SmartPark!"))
}

// Logout returns the signed-out page with every form cleared.
func (s *Service) Logout(_ context.Context) View {
	v := s.Anonymous(TabLogin)
	v.Toasts = []domain.Toast{domain.Notice("Logged out successfully", "")}
	return v
}

func (s *Service) signedIn(v View, toast domain.Toast) View {
	v.LoggedIn = true
	v.State = domain.FormSubmitted
	v.Account = s.store.Account()
	v.Login = domain.LoginForm{}
	v.Register = domain.RegisterForm{}
	v.Toasts = []domain.Toast{toast}
	return v
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
