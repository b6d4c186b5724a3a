package contact

import (
	"context"
	"strings"

	"github.com/kirinyoku/smartpark/internal/domain"
	"github.com/kirinyoku/smartpark/internal/repository/static"
)

type Service struct {
	store *static.Store
}

type Page struct {
	Channels   []domain.ContactChannel
	Categories []domain.ContactCategory
	FAQ        []domain.FAQItem
}

type SubmitResult struct {
	State  domain.FormState
	Form   domain.ContactForm
	Toasts []domain.Toast
}

func New(store *static.Store) *Service {
	return &Service{store: store}
}

// Page returns the static support channels, message categories and FAQ.
func (s *Service) Page() Page {
	return Page{
		Channels:   s.store.ContactChannels(),
		Categories: s.store.ContactCategories(),
		FAQ:        s.store.FAQ(),
	}
}

// Submit checks that name, email and message are present. A valid message is
// accepted immediately and the form comes back cleared; an invalid one is
// returned untouched with a destructive toast.
func (s *Service) Submit(_ context.Context, form domain.ContactForm) SubmitResult {
	if blank(form.Name) || blank(form.Email) || blank(form.Message) {
		return SubmitResult{
			State: domain.FormInvalid,
			Form:  form,
			Toasts: []domain.Toast{domain.Alert(
				"Please fill in required fields",
				"Name, email, and message are required",
			)},
		}
	}

	return SubmitResult{
		State: domain.FormSubmitted,
		Form:  domain.ContactForm{},
		Toasts: []domain.Toast{domain.Notice(
			"Message Sent Successfully!",
			"We'll get back to you within 24 hours.",
		)},
	}
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
