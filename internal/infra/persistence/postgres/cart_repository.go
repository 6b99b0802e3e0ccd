package postgres

import (
	"context"

	"shop/internal/domain/entity"
	"shop/internal/domain/repository"
	"shop/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// cartRepository implements the repository.CartRepository interface.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{
		db: db,
	}
}

// Create persists a new cart and fills in its assigned identity.
func (repo *cartRepository) Create(ctx context.Context, cart *entity.ShoppingCart) error {
	cartM := fromCartDomain(cart)
	// The customer must already exist; only its foreign key is written.
	cartM.Customer = nil
	cartM.Products = nil

	if err := repo.db.WithContext(ctx).Create(cartM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(err, "invalid customer reference")
		}
		if isNotNullConstraintViolation(err) {
			return errors.Wrap(err, "missing required cart field")
		}

		return errors.Wrap(err, "failed to create cart")
	}

	cart.ID = cartM.ID

	return nil
}

// FindByID retrieves a cart with its customer (and the customer's
// address) and product set loaded.
func (repo *cartRepository) FindByID(ctx context.Context, id int64) (*entity.ShoppingCart, error) {
	var cartM model.ShoppingCartModel

	if err := repo.db.WithContext(ctx).
		Preload("Customer").
		Preload("Customer.Address").
		Preload("Products").
		Where("id = ?", id).
		First(&cartM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart by ID")
	}

	return toCartDomain(&cartM), nil
}

// Save updates the cart's scalar columns and customer foreign key. The
// product join is maintained exclusively via AddProduct/RemoveProduct.
func (repo *cartRepository) Save(ctx context.Context, cart *entity.ShoppingCart) error {
	cartM := fromCartDomain(cart)
	cartM.Customer = nil
	cartM.Products = nil

	if err := repo.db.WithContext(ctx).Save(cartM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(err, "invalid customer reference")
		}

		return errors.Wrap(err, "failed to save cart")
	}

	return nil
}

// Delete removes a cart and its join rows.
func (repo *cartRepository) Delete(ctx context.Context, id int64) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.ShoppingCartModel{ID: id}).
		Association("Products").
		Clear(); err != nil {
		return errors.Wrap(err, "failed to clear cart products")
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ShoppingCartModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete cart")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCartNotFound
	}

	return nil
}

// AddProduct inserts a join row linking the cart and the product.
func (repo *cartRepository) AddProduct(ctx context.Context, cartID, productID int64) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.ShoppingCartModel{ID: cartID}).
		Association("Products").
		Append(&model.ProductModel{ID: productID}); err != nil {
		return errors.Wrap(err, "failed to link product to cart")
	}

	return nil
}

// RemoveProduct deletes the join row; the product row itself is untouched.
func (repo *cartRepository) RemoveProduct(ctx context.Context, cartID, productID int64) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.ShoppingCartModel{ID: cartID}).
		Association("Products").
		Delete(&model.ProductModel{ID: productID}); err != nil {
		return errors.Wrap(err, "failed to unlink product from cart")
	}

	return nil
}

// --- Mapper Functions ---

// toCartDomain converts a GORM ShoppingCartModel to a domain entity.
// Products are mapped shallow (no nested carts).
func toCartDomain(data *model.ShoppingCartModel) *entity.ShoppingCart {
	if data == nil {
		return nil
	}

	cart := &entity.ShoppingCart{
		ID:             data.ID,
		DateOfPurchase: data.DateOfPurchase,
		TotalPrice:     data.TotalPrice,
		Status:         entity.Status(data.Status),
	}

	if data.Customer != nil {
		cart.Customer = toCustomerDomain(data.Customer)
		cart.Customer.Carts = append(cart.Customer.Carts, cart)
	}

	for i := range data.Products {
		product := toProductDomain(&data.Products[i])
		product.Carts = append(product.Carts, cart)
		cart.Products = append(cart.Products, product)
	}

	return cart
}

// fromCartDomain converts a domain ShoppingCart entity to a GORM model.
func fromCartDomain(data *entity.ShoppingCart) *model.ShoppingCartModel {
	if data == nil {
		return nil
	}

	return &model.ShoppingCartModel{
		ID:             data.ID,
		DateOfPurchase: data.DateOfPurchase,
		TotalPrice:     data.TotalPrice,
		Status:         data.Status.String(),
		CustomerID:     data.CustomerID(),
	}
}
