package admin_test

import (
	"context"
	"testing"

	"github.com/kirinyoku/smartpark/internal/domain"
	"github.com/kirinyoku/smartpark/internal/repository/static"
	"github.com/kirinyoku/smartpark/internal/service/admin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboard_NoSearch(t *testing.T) {
	t.Parallel()

	d, err := admin.New(static.NewStore()).Dashboard(context.Background(), "")
	require.NoError(t, err)

	assert.Len(t, d.Stats, 4)
	assert.Len(t, d.Alerts, 3)
	assert.Len(t, d.Transactions, 3)
	assert.Equal(t, 3, d.Total)
	assert.False(t, d.Filtered())
	assert.Equal(t, "Total Active Permits", d.Stats[0].Title)
	assert.Equal(t, domain.SeverityHigh, d.Alerts[0].Severity)
	assert.False(t, d.Alerts[2].HasLicense())
}

func TestDashboard_Search(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		search  string
		wantIDs []int
	}{
		{name: "by customer", search: "jane", wantIDs: []int{2}},
		{name: "by license ignoring case", search: "ghi-9012", wantIDs: []int{3}},
		{name: "by status", search: "COMPLETED", wantIDs: []int{1, 2}},
		{name: "by amount", search: "$75", wantIDs: []int{3}},
		{name: "padded term", search: "  monthly ", wantIDs: []int{1}},
		{name: "no match", search: "semester", wantIDs: []int{}},
	}

	svc := admin.New(static.NewStore())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := svc.Dashboard(context.Background(), tt.search)
			require.NoError(t, err)

			ids := make([]int, 0, len(d.Transactions))
			for _, tr := range d.Transactions {
				ids = append(ids, tr.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, 3, d.Total)
		})
	}
}

func TestDashboard_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := admin.New(static.NewStore()).Dashboard(ctx, "")
	require.ErrorIs(t, err, context.Canceled)
}
