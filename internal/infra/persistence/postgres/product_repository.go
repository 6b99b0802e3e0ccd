package postgres

import (
	"context"

	"shop/internal/domain/entity"
	"shop/internal/domain/repository"
	"shop/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// Create persists a new product and fills in its assigned identity.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return errors.Wrap(err, "missing required product field")
		}

		return errors.Wrap(err, "failed to create product")
	}

	product.ID = productM.ID

	return nil
}

// FindByID retrieves a product by its unique ID with properties loaded.
func (repo *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Properties").
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// Save updates an existing product record.
func (repo *productRepository) Save(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)
	// Properties are owned rows managed by the property repository;
	// saving the product must not upsert them.
	productM.Properties = nil

	if err := repo.db.WithContext(ctx).Save(productM).Error; err != nil {
		return errors.Wrap(err, "failed to save product")
	}

	return nil
}

// Delete removes a product by its ID.
func (repo *productRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	product := &entity.Product{
		ID:                  data.ID,
		Name:                data.Name,
		PriceBeforeDiscount: data.PriceBeforeDiscount,
		PriceAfterDiscount:  data.PriceAfterDiscount,
		Quantity:            data.Quantity,
		Description:         data.Description,
		Discount:            data.Discount,
		ProductType:         entity.ProductType(data.ProductType),
	}

	for i := range data.Properties {
		product.Properties = append(product.Properties, toPropertyDomain(&data.Properties[i]))
	}

	return product
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	productM := &model.ProductModel{
		ID:                  data.ID,
		Name:                data.Name,
		PriceBeforeDiscount: data.PriceBeforeDiscount,
		PriceAfterDiscount:  data.PriceAfterDiscount,
		Quantity:            data.Quantity,
		Description:         data.Description,
		Discount:            data.Discount,
		ProductType:         data.ProductType.String(),
	}

	for _, property := range data.Properties {
		productM.Properties = append(productM.Properties, *fromPropertyDomain(property))
	}

	return productM
}
