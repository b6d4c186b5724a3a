package contact_test

import (
	"context"
	"testing"

	"github.com/kirinyoku/smartpark/internal/domain"
	"github.com/kirinyoku/smartpark/internal/repository/static"
	"github.com/kirinyoku/smartpark/internal/service/contact"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmit_SuccessResetsEveryField(t *testing.T) {
	t.Parallel()

	svc := contact.New(static.NewStore())
	res := svc.Submit(context.Background(), domain.ContactForm{
		Name:     "Jane Smith",
		Email:    "jane@example.com",
		Phone:    "(555) 123-4567",
		Subject:  "Refund",
		Message:  "Please refund my weekly permit.",
		Category: "billing",
	})

	assert.Equal(t, domain.FormSubmitted, res.State)
	assert.True(t, res.Form.IsEmpty())
	require.Len(t, res.Toasts, 1)
	assert.Equal(t, "Message Sent Successfully!", res.Toasts[0].Title)
	assert.Equal(t, domain.ToastDefault, res.Toasts[0].Variant)
}

func TestSubmit_MissingRequired(t *testing.T) {
	t.Parallel()

	full := domain.ContactForm{Name: "Jane", Email: "jane@example.com", Message: "Hi"}

	tests := []struct {
		name   string
		mutate func(f *domain.ContactForm)
	}{
		{name: "name", mutate: func(f *domain.ContactForm) { f.Name = "" }},
		{name: "email", mutate: func(f *domain.ContactForm) { f.Email = "" }},
		{name: "message", mutate: func(f *domain.ContactForm) { f.Message = "  " }},
	}

	svc := contact.New(static.NewStore())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := full
			form.Subject = "kept"
			tt.mutate(&form)

			res := svc.Submit(context.Background(), form)
			assert.Equal(t, domain.FormInvalid, res.State)
			assert.Equal(t, form, res.Form)
			require.Len(t, res.Toasts, 1)
			assert.Equal(t, domain.ToastDestructive, res.Toasts[0].Variant)
			assert.Equal(t, "Name, email, and message are required", res.Toasts[0].Description)
		})
	}
}

func TestPage(t *testing.T) {
	t.Parallel()

	page := contact.New(static.NewStore()).Page()
	assert.Len(t, page.Channels, 4)
	assert.Len(t, page.Categories, 6)
	assert.Len(t, page.FAQ, 4)
	assert.Equal(t, "technical", page.Categories[0].Value)
}
