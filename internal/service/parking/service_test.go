package parking_test

import (
	"context"
	"testing"
	"time"

	"github.com/kirinyoku/smartpark/internal/domain"
	redisrepo "github.com/kirinyoku/smartpark/internal/repository/redis"
	"github.com/kirinyoku/smartpark/internal/repository/static"
	"github.com/kirinyoku/smartpark/internal/service/parking"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(cfg parking.Config) *parking.Service {
	return parking.New(static.NewStore(), nil, cfg)
}

func TestAvailability_TotalsAreLevelSums(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := static.NewStore()
	svc := parking.New(store, nil, parking.Config{})

	garages, err := store.Garages(ctx)
	require.NoError(t, err)

	views, err := svc.Availability(ctx)
	require.NoError(t, err)
	require.Len(t, views, len(garages))

	for i, g := range garages {
		sum := 0
		for _, l := range g.Levels {
			sum += l.Available
		}
		assert.Equal(t, sum, views[i].TotalAvailable, g.Name)
		assert.Equal(t, g.Name, views[i].Name)
		assert.Equal(t, g.Location, views[i].Location)
	}

	assert.Equal(t, 88, views[0].TotalAvailable)
	assert.Equal(t, 30, views[1].TotalAvailable)
}

func TestAvailability_EchoesAuthoredStatus(t *testing.T) {
	t.Parallel()

	views, err := newService(parking.Config{}).Availability(context.Background())
	require.NoError(t, err)

	// Level 2 of the main garage is 28/50 and Downtown Level 2 is 8/40;
	// their badges come from the data, not from any threshold.
	main := views[0].Levels[1]
	assert.Equal(t, 28, main.Available)
	assert.Equal(t, domain.LevelAvailable, main.Status)

	downtown := views[1].Levels[1]
	assert.Equal(t, 8, downtown.Available)
	assert.Equal(t, domain.LevelLimited, downtown.Status)

	assert.Equal(t, domain.LevelFull, views[1].Levels[0].Status)
}

func TestFillPercent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		level domain.Level
		want  float64
	}{
		{name: "partial", level: domain.Level{Available: 12, Total: 50}, want: 24},
		{name: "full", level: domain.Level{Available: 0, Total: 40}, want: 0},
		{name: "empty garage level", level: domain.Level{Available: 10, Total: 0}, want: 0},
		{name: "all free", level: domain.Level{Available: 40, Total: 40}, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, parking.FillPercent(tt.level), 0.0001)
		})
	}
}

func TestOverview(t *testing.T) {
	t.Parallel()

	ov, err := newService(parking.Config{}).Overview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, parking.Overview{
		TotalAvailable: 118,
		TotalOccupied:  202,
		OccupancyRate:  63,
		ActiveGarages:  2,
	}, ov)
}

func TestSummarize_NoGarages(t *testing.T) {
	t.Parallel()

	assert.Equal(t, parking.Overview{}, parking.Summarize(nil))
}

func TestRefresh(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2024, 7, 1, 9, 30, 0, 0, time.UTC)

	t.Run("returns new timestamp after delay", func(t *testing.T) {
		t.Parallel()
		svc := newService(parking.Config{
			RefreshDelay: 10 * time.Millisecond,
			Now:          func() time.Time { return fixed },
		})

		start := time.Now()
		got, err := svc.Refresh(context.Background())
		require.NoError(t, err)
		assert.Equal(t, fixed, got)
		assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
	})

	t.Run("unreachable cache keeps timestamp and reports stale data", func(t *testing.T) {
		t.Parallel()
		rdb := goredis.NewClient(&goredis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
		t.Cleanup(func() { _ = rdb.Close() })

		svc := parking.New(static.NewStore(), redisrepo.New(rdb), parking.Config{
			Now: func() time.Time { return fixed },
		})

		got, err := svc.Refresh(context.Background())
		require.ErrorIs(t, err, parking.ErrStaleCache)
		assert.Equal(t, fixed, got)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		svc := newService(parking.Config{RefreshDelay: time.Hour})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := svc.Refresh(ctx)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestLegend(t *testing.T) {
	t.Parallel()

	legend := newService(parking.Config{}).Legend()
	require.Len(t, legend, 4)
	assert.Equal(t, domain.LevelAvailable, legend[0].Status)
	assert.Equal(t, "No spots available", legend[3].Description)
}
