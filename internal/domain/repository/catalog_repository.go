package repository

import (
	"context"
	"errors"

	"goeco/internal/domain/entity"
)

// Catalog sentinel errors. Unknown type names are rejected before any
// activity event is created.
var (
	ErrMealTypeNotFound      = errors.New("meal type not found")
	ErrTransportTypeNotFound = errors.New("transport type not found")
)

// CatalogRepository provides read access to the static emission reference
// tables. The catalog is seeded externally and never written by the service.
type CatalogRepository interface {
	// FindMealType looks up a meal type by its unique name.
	FindMealType(ctx context.Context, typeName string) (*entity.MealType, error)

	// FindTransportType looks up a transport type by its unique name.
	FindTransportType(ctx context.Context, typeName string) (*entity.TransportType, error)
}
