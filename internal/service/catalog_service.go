package service

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/route_order_bot/internal/model"
	"github.com/Freeeeeet/route_order_bot/internal/repository"
	"go.uber.org/zap"
)

// CatalogService управление машинами или маршрутами
type CatalogService struct {
	repo   *repository.CatalogRepository
	logger *zap.Logger
}

func NewCatalogService(repo *repository.CatalogRepository, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		repo:   repo,
		logger: logger,
	}
}

func (s *CatalogService) List(ctx context.Context) ([]*model.CatalogEntry, error) {
	return s.repo.List(ctx)
}

func (s *CatalogService) GetOrCreate(ctx context.Context, name string) (*model.CatalogEntry, bool, error) {
	entry, created, err := s.repo.GetOrCreate(ctx, name)
	if err != nil {
		return nil, false, err
	}
	if created {
		s.logger.Info("Catalog entry added",
			zap.String("catalog", string(s.repo.Catalog())),
			zap.String("name", name))
	}
	return entry, created, nil
}

func (s *CatalogService) GetByExactName(ctx context.Context, name string) (*model.CatalogEntry, error) {
	return s.repo.GetByExactName(ctx, name)
}

func (s *CatalogService) Delete(ctx context.Context, entry *model.CatalogEntry) error {
	if err := s.repo.Delete(ctx, entry); err != nil {
		return err
	}
	s.logger.Info("Catalog entry deleted",
		zap.String("catalog", string(s.repo.Catalog())),
		zap.String("name", entry.Name))
	return nil
}

// Seed добавляет значения по умолчанию, существующие пропускает.
// Возвращает количество добавленных записей.
func (s *CatalogService) Seed(ctx context.Context, names []string) (int, error) {
	added := 0
	for _, name := range names {
		_, created, err := s.GetOrCreate(ctx, name)
		if err != nil {
			return added, fmt.Errorf("seed %s %q: %w", s.repo.Catalog(), name, err)
		}
		if created {
			added++
		}
	}
	return added, nil
}
