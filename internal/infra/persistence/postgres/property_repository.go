package postgres

import (
	"context"

	"shop/internal/domain/entity"
	"shop/internal/domain/repository"
	"shop/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// propertyRepository implements the repository.PropertyRepository interface.
type propertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository is the constructor for propertyRepository.
func NewPropertyRepository(db *gorm.DB) repository.PropertyRepository {
	return &propertyRepository{
		db: db,
	}
}

// Create persists a new property and fills in its assigned identity.
func (repo *propertyRepository) Create(ctx context.Context, property *entity.Property) error {
	propertyM := fromPropertyDomain(property)

	if err := repo.db.WithContext(ctx).Create(propertyM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(err, "invalid product reference")
		}
		if isNotNullConstraintViolation(err) {
			return errors.Wrap(err, "missing required property field")
		}

		return errors.Wrap(err, "failed to create property")
	}

	property.ID = propertyM.ID

	return nil
}

// FindByProduct retrieves all properties owned by a product.
func (repo *propertyRepository) FindByProduct(ctx context.Context, productID int64) ([]*entity.Property, error) {
	var propertyModels []*model.PropertyModel

	if err := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("id ASC").
		Find(&propertyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find properties by product")
	}

	return toPropertyDomainSlice(propertyModels), nil
}

// FindByProductKeyValue retrieves the properties of a product matching
// the exact key/value pair, oldest first.
func (repo *propertyRepository) FindByProductKeyValue(ctx context.Context, productID int64, key, value string) ([]*entity.Property, error) {
	var propertyModels []*model.PropertyModel

	if err := repo.db.WithContext(ctx).
		Where("product_id = ? AND key = ? AND value = ?", productID, key, value).
		Order("id ASC").
		Find(&propertyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find properties by key/value")
	}

	return toPropertyDomainSlice(propertyModels), nil
}

// Delete removes a single property by its ID.
func (repo *propertyRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PropertyModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete property")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPropertyNotFound
	}

	return nil
}

// DeleteByProduct removes every property owned by a product; deleting
// from a product without properties is a no-op, not an error.
func (repo *propertyRepository) DeleteByProduct(ctx context.Context, productID int64) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Delete(&model.PropertyModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete properties by product")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func toPropertyDomain(data *model.PropertyModel) *entity.Property {
	if data == nil {
		return nil
	}

	return &entity.Property{
		ID:        data.ID,
		Key:       data.Key,
		Value:     data.Value,
		ProductID: data.ProductID,
	}
}

func toPropertyDomainSlice(data []*model.PropertyModel) []*entity.Property {
	properties := make([]*entity.Property, 0, len(data))
	for _, propertyM := range data {
		properties = append(properties, toPropertyDomain(propertyM))
	}

	return properties
}

func fromPropertyDomain(data *entity.Property) *model.PropertyModel {
	if data == nil {
		return nil
	}

	return &model.PropertyModel{
		ID:        data.ID,
		Key:       data.Key,
		Value:     data.Value,
		ProductID: data.ProductID,
	}
}
