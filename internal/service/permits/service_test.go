package permits_test

import (
	"context"
	"testing"
	"time"

	"github.com/kirinyoku/smartpark/internal/domain"
	"github.com/kirinyoku/smartpark/internal/repository/static"
	"github.com/kirinyoku/smartpark/internal/service/permits"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(delay time.Duration) *permits.Service {
	return permits.New(static.NewStore(), permits.Config{ProcessingDelay: delay})
}

func TestSummary_TotalIsPricePlusFee(t *testing.T) {
	t.Parallel()

	svc := newService(0)
	catalog, err := svc.Catalog(context.Background())
	require.NoError(t, err)
	require.Len(t, catalog, 4)

	want := map[string]string{
		"daily":    "17.50",
		"weekly":   "77.50",
		"monthly":  "252.50",
		"semester": "452.50",
	}

	for _, p := range catalog {
		sum, err := svc.Summary(context.Background(), p.ID)
		require.NoError(t, err, p.ID)

		assert.True(t, sum.Total.Equal(p.Price.Add(permits.ProcessingFee)), p.ID)
		assert.Equal(t, want[p.ID], sum.Total.StringFixed(2), p.ID)
		assert.Equal(t, "2.50", sum.ProcessingFee.StringFixed(2))
		assert.True(t, sum.Subtotal.Equal(p.Price))
		assert.Equal(t, p.Name, sum.Permit.Name)
	}
}

func TestSummary_UnknownPermit(t *testing.T) {
	t.Parallel()

	_, err := newService(0).Summary(context.Background(), "lifetime")
	require.ErrorIs(t, err, permits.ErrPermitNotFound)
}

func TestCatalog_OnlyMonthlyIsPopular(t *testing.T) {
	t.Parallel()

	catalog, err := newService(0).Catalog(context.Background())
	require.NoError(t, err)

	for _, p := range catalog {
		assert.Equal(t, p.ID == "monthly", p.Popular, p.ID)
	}
}

func TestPurchase_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		permitID  string
		form      domain.PurchaseForm
		wantTitle string
	}{
		{
			name:      "no permit selected",
			form:      domain.PurchaseForm{LicensePlate: "ABC-1234", Email: "a@b.c"},
			wantTitle: "Please select a permit type",
		},
		{
			name:      "missing license plate",
			permitID:  "daily",
			form:      domain.PurchaseForm{Email: "a@b.c"},
			wantTitle: "Please fill in required fields",
		},
		{
			name:      "missing email",
			permitID:  "weekly",
			form:      domain.PurchaseForm{LicensePlate: "ABC-1234"},
			wantTitle: "Please fill in required fields",
		},
		{
			name:      "blank email",
			permitID:  "weekly",
			form:      domain.PurchaseForm{LicensePlate: "ABC-1234", Email: "   "},
			wantTitle: "Please fill in required fields",
		},
	}

	svc := newService(time.Hour)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Purchase(context.Background(), tt.permitID, tt.form)
			require.NoError(t, err)

			assert.Equal(t, domain.FormInvalid, res.State)
			require.Len(t, res.Toasts, 1)
			assert.Equal(t, tt.wantTitle, res.Toasts[0].Title)
			assert.Equal(t, domain.ToastDestructive, res.Toasts[0].Variant)
			for _, toast := range res.Toasts {
				assert.NotEqual(t, "Permit Purchased Successfully!", toast.Title)
			}
		})
	}
}

func TestPurchase_Success(t *testing.T) {
	t.Parallel()

	svc := newService(5 * time.Millisecond)
	res, err := svc.Purchase(context.Background(), "monthly", domain.PurchaseForm{
		LicensePlate: "abc-1234",
		Email:        "driver@example.com",
		VehicleMake:  "Toyota",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.FormSubmitted, res.State)
	assert.Equal(t, "ABC-1234", res.Form.LicensePlate)
	assert.Equal(t, "Toyota", res.Form.VehicleMake)
	require.Len(t, res.Toasts, 2)
	assert.Equal(t, "Payment Processing", res.Toasts[0].Title)
	assert.Equal(t, "Permit Purchased Successfully!", res.Toasts[1].Title)
	assert.Equal(t, domain.ToastDefault, res.Toasts[1].Variant)
}

func TestPurchase_UnknownPermit(t *testing.T) {
	t.Parallel()

	_, err := newService(0).Purchase(context.Background(), "hourly", domain.PurchaseForm{
		LicensePlate: "ABC",
		Email:        "a@b.c",
	})
	require.ErrorIs(t, err, permits.ErrPermitNotFound)
}

func TestPurchase_CancelledWhileProcessing(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	res, err := newService(time.Hour).Purchase(ctx, "daily", domain.PurchaseForm{
		LicensePlate: "ABC",
		Email:        "a@b.c",
	})
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, domain.FormSubmitting, res.State)
	require.Len(t, res.Toasts, 1)
	assert.Equal(t, "Payment Processing", res.Toasts[0].Title)
}
