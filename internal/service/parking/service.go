package parking

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/kirinyoku/smartpark/internal/domain"
	"github.com/kirinyoku/smartpark/internal/latency"
	redisrepo "github.com/kirinyoku/smartpark/internal/repository/redis"
	"github.com/kirinyoku/smartpark/internal/repository/static"
)

type Config struct {
	AvailabilityTTL time.Duration
	RefreshDelay    time.Duration
	Now             func() time.Time
}

type Service struct {
	store *static.Store
	cache *redisrepo.Cache
	cfg   Config
}

// LevelView is a level as the availability widget draws it.
type LevelView struct {
	domain.Level
	FillPercent float64 `json:"fill_percent"`
}

// GarageView is a garage with its per-level views and the sum of free spots.
type GarageView struct {
	Name           string      `json:"name"`
	Location       string      `json:"location"`
	TotalAvailable int         `json:"total_available"`
	Levels         []LevelView `json:"levels"`
}

type Overview struct {
	TotalAvailable int `json:"total_available"`
	TotalOccupied  int `json:"total_occupied"`
	OccupancyRate  int `json:"occupancy_rate"`
	ActiveGarages  int `json:"active_garages"`
}

func New(store *static.Store, cache *redisrepo.Cache, cfg Config) *Service {
	if cfg.AvailabilityTTL <= 0 {
		cfg.AvailabilityTTL = 15 * time.Second
	}

	if cfg.RefreshDelay < 0 {
		cfg.RefreshDelay = 0
	}

	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &Service{
		store: store,
		cache: cache,
		cfg:   cfg,
	}
}

// Availability returns every garage with the total of available spots
// across its levels and each level's fill ratio. Level statuses are echoed
// exactly as authored.
func (s *Service) Availability(ctx context.Context) ([]GarageView, error) {
	const op = "service.parking.Availability"

	views, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		redisrepo.KeyGarageAvailability(),
		s.cfg.AvailabilityTTL,
		func(ctx context.Context) ([]GarageView, error) {
			garages, err := s.store.Garages(ctx)
			if err != nil {
				return nil, err
			}

			return BuildViews(garages), nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return views, nil
}

// Overview aggregates the status dashboard cards over all garages.
func (s *Service) Overview(ctx context.Context) (Overview, error) {
	const op = "service.parking.Overview"

	ov, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		redisrepo.KeyParkingOverview(),
		s.cfg.AvailabilityTTL,
		func(ctx context.Context) (Overview, error) {
			garages, err := s.store.Garages(ctx)
			if err != nil {
				return Overview{}, err
			}

			return Summarize(garages), nil
		},
	)
	if err != nil {
		return Overview{}, fmt.Errorf("%s: %w", op, err)
	}

	return ov, nil
}

// Refresh simulates re-polling the garages. It waits the configured refresh
// delay, drops cached projections and returns the new "last updated" time.
//
// Returns:
//   - error: the context error if the wait was cut short, or ErrStaleCache
//     wrapping the cache error if the projections could not be dropped. The
//     returned time is valid in the ErrStaleCache case.
func (s *Service) Refresh(ctx context.Context) (time.Time, error) {
	const op = "service.parking.Refresh"

	if err := latency.Wait(ctx, s.cfg.RefreshDelay); err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", op, err)
	}

	now := s.cfg.Now()

	if err := s.cache.InvalidateParking(ctx); err != nil {
		return now, fmt.Errorf("%s: %w: %w", op, ErrStaleCache, err)
	}

	return now, nil
}

func (s *Service) Legend() []domain.LegendEntry {
	return s.store.Legend()
}

func (s *Service) Now() time.Time {
	return s.cfg.Now()
}

func BuildViews(garages []domain.Garage) []GarageView {
	views := make([]GarageView, 0, len(garages))
	for _, g := range garages {
		v := GarageView{
			Name:     g.Name,
			Location: g.Location,
			Levels:   make([]LevelView, 0, len(g.Levels)),
		}
		for _, l := range g.Levels {
			v.TotalAvailable += l.Available
			v.Levels = append(v.Levels, LevelView{Level: l, FillPercent: FillPercent(l)})
		}
		views = append(views, v)
	}

	return views
}

func Summarize(garages []domain.Garage) Overview {
	var ov Overview
	total := 0
	for _, g := range garages {
		for _, l := range g.Levels {
			ov.TotalAvailable += l.Available
			total += l.Total
		}
	}

	ov.ActiveGarages = len(garages)
	ov.TotalOccupied = total - ov.TotalAvailable
	if total > 0 {
		ov.OccupancyRate = int(math.Round(float64(ov.TotalOccupied) / float64(total) * 100))
	}

	return ov
}

// FillPercent is available/total as a percentage, 0 for an empty level.
func FillPercent(l domain.Level) float64 {
	if l.Total <= 0 {
		return 0
	}

	return float64(l.Available) / float64(l.Total) * 100
}
