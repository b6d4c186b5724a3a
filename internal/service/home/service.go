package home

import (
	"github.com/kirinyoku/smartpark/internal/domain"
	"github.com/kirinyoku/smartpark/internal/repository/static"
)

type Service struct {
	store *static.Store
}

type Page struct {
	Features []domain.Feature
	Benefits []string
}

func New(store *static.Store) *Service {
	return &Service{store: store}
}

func (s *Service) Page() Page {
	return Page{
		Features: s.store.Features(),
		Benefits: s.store.Benefits(),
	}
}
