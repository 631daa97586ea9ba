package services

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"gigaleverage/internal/events"
	"gigaleverage/internal/models"
	"gigaleverage/internal/registry"
	"gigaleverage/internal/repositories"
)

// LeverageService is the single owner of the leverage registry. Bound
// methods are serialized so commands apply in arrival order.
type LeverageService interface {
	Startup(ctx context.Context) error
	ListProviders() []models.Provider
	SelectProvider(providerID string) []models.DataStream
	ListLeverages() []models.Leverage
	CreateLeverage(providerID, dataStreamID, dataStreamName string) []models.Leverage
	EditLeverage(leverageID string) []models.DataStream
	UpdateLeverage(leverageID, providerID, dataStreamID, dataStreamName string) []models.Leverage
	DeleteLeverage(leverageID string) []models.Leverage
}

type leverageService struct {
	mu       sync.Mutex
	ctx      context.Context
	catalog  ProviderCatalog
	registry *registry.Registry
	repo     repositories.LeverageRepository
	log      *zap.Logger
}

// NewLeverageService builds the service. repo may be nil, in which case the
// list lives only in memory.
func NewLeverageService(catalog ProviderCatalog, repo repositories.LeverageRepository, log *zap.Logger) LeverageService {
	if log == nil {
		log = zap.NewNop()
	}
	return &leverageService{
		ctx:      context.Background(),
		catalog:  catalog,
		registry: registry.New(catalog),
		repo:     repo,
		log:      log.Named("leverages"),
	}
}

// Startup restores the last persisted snapshot.
func (s *leverageService) Startup(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ctx = ctx

	if s.repo == nil {
		return nil
	}
	records, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("restore leverages: %w", err)
	}

	restored := make([]models.Leverage, 0, len(records))
	for _, rec := range records {
		provider, ok := s.catalog.Provider(rec.ProviderID)
		if !ok {
			provider = models.Provider{ID: rec.ProviderID, Name: rec.ProviderID}
		}
		restored = append(restored, models.Leverage{
			ID:       rec.ID,
			Provider: provider,
			DataStream: models.DataStream{
				ID:   rec.DataStreamID,
				Name: rec.DataStreamName,
			},
		})
	}
	s.registry.Restore(restored)
	s.log.Info("restored leverages", zap.Int("count", len(restored)))
	return nil
}

func (s *leverageService) ListProviders() []models.Provider {
	return s.catalog.ListProviders()
}

func (s *leverageService) SelectProvider(providerID string) []models.DataStream {
	return s.catalog.ListDataStreams(providerID)
}

func (s *leverageService) ListLeverages() []models.Leverage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.List()
}

func (s *leverageService) CreateLeverage(providerID, dataStreamID, dataStreamName string) []models.Leverage {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.checkPairing(providerID, dataStreamID)
	lev := s.registry.Create(providerID, dataStreamID, dataStreamName)
	s.log.Info("leverage created",
		zap.String("id", lev.ID),
		zap.String("provider", providerID),
		zap.String("dataStream", dataStreamID))
	return s.commit()
}

// EditLeverage returns the stream choices for the leverage's provider, or an
// empty list when the id is unknown.
func (s *leverageService) EditLeverage(leverageID string) []models.DataStream {
	s.mu.Lock()
	defer s.mu.Unlock()

	streams, ok := s.registry.Edit(leverageID)
	if !ok {
		s.log.Debug("edit ignored, leverage not found", zap.String("id", leverageID))
		return []models.DataStream{}
	}
	return streams
}

func (s *leverageService) UpdateLeverage(leverageID, providerID, dataStreamID, dataStreamName string) []models.Leverage {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.checkPairing(providerID, dataStreamID)
	if !s.registry.Update(leverageID, providerID, dataStreamID, dataStreamName) {
		s.log.Debug("update ignored, leverage not found", zap.String("id", leverageID))
		return s.registry.List()
	}
	s.log.Info("leverage updated",
		zap.String("id", leverageID),
		zap.String("provider", providerID),
		zap.String("dataStream", dataStreamID))
	return s.commit()
}

func (s *leverageService) DeleteLeverage(leverageID string) []models.Leverage {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.registry.Delete(leverageID) {
		s.log.Debug("delete ignored, leverage not found", zap.String("id", leverageID))
		return s.registry.List()
	}
	s.log.Info("leverage deleted", zap.String("id", leverageID))
	return s.commit()
}

// commit persists and broadcasts the current list. Persistence failures are
// logged; the in-memory list stays authoritative. Callers hold s.mu.
func (s *leverageService) commit() []models.Leverage {
	list := s.registry.List()
	if s.repo != nil {
		if err := s.repo.ReplaceAll(s.ctx, list); err != nil {
			s.log.Error("failed to persist leverages", zap.Error(err))
		}
	}
	events.EmitLeverages(s.ctx, list)
	return list
}

func (s *leverageService) checkPairing(providerID, dataStreamID string) {
	if !s.catalog.HasDataStream(providerID, dataStreamID) {
		s.log.Warn("data stream does not belong to provider",
			zap.String("provider", providerID),
			zap.String("dataStream", dataStreamID))
	}
}
