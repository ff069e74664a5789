package repositories

import (
	"context"
	"time"

	"rentsight-backend/internal/models"
	"rentsight-backend/internal/query"
)

// PropertyRepository is the listing store port. It accepts prebuilt
// conditions; ordering is fixed to name descending.
type PropertyRepository interface {
	FindByFilters(ctx context.Context, conds []query.Condition, limit, offset int) ([]models.Property, error)
	CountByFilters(ctx context.Context, conds []query.Condition) (int64, error)
}

// SearchCache stores rendered result pages for repeated filter queries.
type SearchCache interface {
	GetPage(ctx context.Context, key string) (*models.PropertiesPage, error)
	SetPage(ctx context.Context, key string, page *models.PropertiesPage, expiration time.Duration) error
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByVerificationToken(ctx context.Context, token string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	MarkEmailVerified(ctx context.Context, id string) error
	UpdateVerificationToken(ctx context.Context, email, token string, expiry time.Time) error
}
