// service/static_data_service.go
package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/scoutdesk/backoffice/config"
	logger "github.com/scoutdesk/backoffice/logging"
	"github.com/scoutdesk/backoffice/model"
)

// IStaticDataService serves the global option dictionary
type IStaticDataService interface {
	Lists(ctx context.Context) (model.StaticLists, error)
	Refresh(ctx context.Context) error
}

// StaticDataService owns the global option dictionary: populated once at
// first use, read-only between explicit refreshes. Option sentinels on
// attributes point into these lists instead of copying them.
type StaticDataService struct {
	mu           sync.RWMutex
	lists        model.StaticLists
	loaded       bool
	cacheService ICacheService
}

var _ IStaticDataService = &StaticDataService{}

func NewStaticDataService(cacheService ICacheService) *StaticDataService {
	return &StaticDataService{cacheService: cacheService}
}

// Lists returns the dictionary, loading it on first use.
func (s *StaticDataService) Lists(ctx context.Context) (model.StaticLists, error) {
	s.mu.RLock()
	if s.loaded {
		defer s.mu.RUnlock()
		return s.lists, nil
	}
	s.mu.RUnlock()

	// Another instance may have refreshed already; prefer its copy.
	if s.cacheService != nil {
		if cached, err := s.cacheService.GetStaticLists(ctx); err == nil && cached != nil {
			s.mu.Lock()
			s.lists = *cached
			s.loaded = true
			s.mu.Unlock()
			return *cached, nil
		}
	}

	if err := s.Refresh(ctx); err != nil {
		return model.StaticLists{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lists, nil
}

// Refresh repopulates the dictionary from configuration (falling back to
// the built-in lists) and pushes the result to the shared cache. This is
// the only mutation the dictionary supports.
func (s *StaticDataService) Refresh(ctx context.Context) error {
	lists := model.StaticLists{
		Countries: config.GetStringSlice("staticdata.countries"),
		Languages: config.GetStringSlice("staticdata.languages"),
	}
	if len(lists.Countries) == 0 {
		lists.Countries = defaultCountries
	}
	if len(lists.Languages) == 0 {
		lists.Languages = defaultLanguages
	}

	s.mu.Lock()
	s.lists = lists
	s.loaded = true
	s.mu.Unlock()

	if s.cacheService != nil {
		if err := s.cacheService.SetStaticLists(ctx, lists); err != nil {
			logger.Warn("Failed to cache static lists", zap.Error(err))
		}
	}

	logger.Info("Static lists refreshed",
		zap.Int("countries", len(lists.Countries)),
		zap.Int("languages", len(lists.Languages)))
	return nil
}
