package postgres

import (
	"context"

	"goeco/internal/domain/entity"
	"goeco/internal/domain/repository"
	"goeco/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// catalogRepository implements the domain.CatalogRepository interface using GORM.
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{db: db}
}

// FindMealType looks up a meal type by its unique name.
func (repo *catalogRepository) FindMealType(ctx context.Context, typeName string) (*entity.MealType, error) {
	var typeM model.MealTypeModel
	if err := repo.db.WithContext(ctx).
		Where("type = ?", typeName).
		First(&typeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMealTypeNotFound
		}

		return nil, errors.Wrap(err, "failed to find meal type")
	}

	return &entity.MealType{
		ID:             typeM.ID,
		Type:           typeM.Type,
		EmissionFactor: typeM.EmissionFactor,
	}, nil
}

// FindTransportType looks up a transport type by its unique name.
func (repo *catalogRepository) FindTransportType(ctx context.Context, typeName string) (*entity.TransportType, error) {
	var typeM model.TransportTypeModel
	if err := repo.db.WithContext(ctx).
		Where("type = ?", typeName).
		First(&typeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTransportTypeNotFound
		}

		return nil, errors.Wrap(err, "failed to find transport type")
	}

	return &entity.TransportType{
		ID:             typeM.ID,
		Type:           typeM.Type,
		EmissionFactor: typeM.EmissionFactor,
	}, nil
}
