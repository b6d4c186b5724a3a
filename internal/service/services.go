package service

import (
	redis "github.com/kirinyoku/smartpark/internal/repository/redis"
	"github.com/kirinyoku/smartpark/internal/repository/static"
	"github.com/kirinyoku/smartpark/internal/service/account"
	"github.com/kirinyoku/smartpark/internal/service/admin"
	"github.com/kirinyoku/smartpark/internal/service/contact"
	"github.com/kirinyoku/smartpark/internal/service/home"
	"github.com/kirinyoku/smartpark/internal/service/parking"
	"github.com/kirinyoku/smartpark/internal/service/permits"
)

type Services struct {
	Home    *home.Service
	Parking *parking.Service
	Permits *permits.Service
	Contact *contact.Service
	Account *account.Service
	Admin   *admin.Service
}

type Config struct {
	Parking parking.Config
	Permits permits.Config
}

// NewServices wires every page service to the shared store. cache may be nil.
func NewServices(
	store *static.Store,
	cache *redis.Cache,
	cfg Config,
) *Services {
	return &Services{
		Home:    home.New(store),
		Parking: parking.New(store, cache, cfg.Parking),
		Permits: permits.New(store, cfg.Permits),
		Contact: contact.New(store),
		Account: account.New(store),
		Admin:   admin.New(store),
	}
}
