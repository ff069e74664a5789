package services

import (
	"context"
	"time"

	apperrors "rentsight-backend/internal/errors"
	"rentsight-backend/internal/models"
	"rentsight-backend/internal/query"
	"rentsight-backend/internal/repositories"
	"rentsight-backend/internal/utils"
	"rentsight-backend/pkg/cache"
	"rentsight-backend/pkg/config"
	"rentsight-backend/pkg/logger"
)

const (
	defaultSearchLimit = 20
	maxSearchLimit     = 100
)

// PropertySearchService answers filtered property searches, serving
// repeated queries out of the cache.
type PropertySearchService struct {
	repo        repositories.PropertyRepository
	searchCache repositories.SearchCache
	cfg         config.Search
}

func NewPropertySearchService(repo repositories.PropertyRepository, searchCache repositories.SearchCache, cfg config.Search) *PropertySearchService {
	return &PropertySearchService{
		repo:        repo,
		searchCache: searchCache,
		cfg:         cfg,
	}
}

// Search validates the filters, builds the predicate set and returns one
// page of matching properties. Invalid filters fail before any query runs.
func (s *PropertySearchService) Search(ctx context.Context, filters models.PropertyFilters) (*models.PropertiesPage, error) {
	if filters.City == "" {
		filters.City = s.cfg.DefaultCity
	}
	if filters.Limit <= 0 {
		filters.Limit = defaultSearchLimit
	}
	if filters.Limit > maxSearchLimit {
		filters.Limit = maxSearchLimit
	}
	if filters.Offset < 0 {
		filters.Offset = 0
	}
	if filters.PropertyType != "" {
		propertyType, ok := models.ParsePropertyType(filters.PropertyType)
		if !ok {
			return nil, apperrors.NewInvalidPropertyTypeError(filters.PropertyType)
		}
		filters.PropertyType = string(propertyType)
	}

	conditions, err := query.BuildConditions(&filters)
	if err != nil {
		return nil, err
	}

	cacheKey := cache.PropertySearchKey(filters.Fingerprint())
	if page, err := s.searchCache.GetPage(ctx, cacheKey); err != nil {
		logger.GlobalLogger.Errorf("search cache lookup failed: %v", err)
	} else if page != nil {
		return page, nil
	}

	properties, err := s.repo.FindByFilters(ctx, conditions, filters.Limit, filters.Offset)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.CountByFilters(ctx, conditions)
	if err != nil {
		return nil, err
	}

	page := utils.NewPropertiesPage(properties, total, filters.Offset, filters.Limit)

	ttl := time.Duration(s.cfg.CacheTTLSeconds) * time.Second
	if err := s.searchCache.SetPage(ctx, cacheKey, page, ttl); err != nil {
		logger.GlobalLogger.Errorf("failed to cache search results: %v", err)
	}

	return page, nil
}
