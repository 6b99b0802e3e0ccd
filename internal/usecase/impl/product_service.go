// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "shop/internal/delivery/context"
	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// productService implements the ProductUsecase interface.
type productService struct {
	txManager   repository.TransactionManager
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for the product service, injected by Fx.
type ProductServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		txManager:   params.TxManager,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back
// to the service's logger.
func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddProduct validates the candidate against the catalog acceptance
// predicate and persists it in one transaction.
func (srv *productService) AddProduct(ctx context.Context, product *entity.Product) (int64, error) {
	if err := entity.ValidateProduct(product); err != nil {
		return 0, domainerrors.NewInvalidInput(err.Error())
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ProductRepo().Create(ctx, product); err != nil {
			return errors.Wrap(err, "failed to create product")
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	srv.log(ctx).Info("Product added",
		slog.Int64("productID", product.ID),
		slog.String("name", product.Name),
	)

	return product.ID, nil
}

// GetProductByID returns the product with the given identity.
func (srv *productService) GetProductByID(ctx context.Context, id int64) (*entity.Product, error) {
	if id <= 0 {
		return nil, domainerrors.NewInvalidInput("product id must be positive")
	}

	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return product, nil
}

// RemoveProduct cascades away the product's properties and deletes the
// product itself. Both steps run within a single transaction.
func (srv *productService) RemoveProduct(ctx context.Context, id int64) error {
	if id <= 0 {
		return domainerrors.NewInvalidInput("product id must be positive")
	}

	var removedProperties int64
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		if _, err := productRepo.FindByID(ctx, id); err != nil {
			return errors.Wrap(err, "failed to find product by id")
		}

		removed, err := repoFactory.PropertyRepo().DeleteByProduct(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to remove product properties")
		}
		removedProperties = removed

		if err := productRepo.Delete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete product")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Product removed",
		slog.Int64("productID", id),
		slog.Int64("removedProperties", removedProperties),
	)

	return nil
}

// BuyProduct decrements stock by qty inside a single transaction. Two
// concurrent buyers of the same product can still both observe the same
// pre-decrement quantity; no row versioning is applied.
func (srv *productService) BuyProduct(ctx context.Context, id int64, qty int) error {
	if qty <= 0 {
		return domainerrors.NewInvalidInput("purchase quantity must be positive")
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		product, err := productRepo.FindByID(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to find product by id")
		}

		if !product.InStock(qty) {
			return domainerrors.NewInvalidInput("purchase quantity exceeds available stock")
		}

		product.Quantity -= qty
		if err := productRepo.Save(ctx, product); err != nil {
			return errors.Wrap(err, "failed to save product")
		}

		return nil
	})
}

// AddKeyValueProperty attaches a key/value property to the product and
// keeps the product's in-memory property collection in sync.
func (srv *productService) AddKeyValueProperty(ctx context.Context, productID int64, key, value string) error {
	if err := entity.ValidatePropertyKV(key, value); err != nil {
		return domainerrors.NewInvalidInput(err.Error())
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		product, err := repoFactory.ProductRepo().FindByID(ctx, productID)
		if err != nil {
			return errors.Wrap(err, "failed to find product by id")
		}

		property := &entity.Property{
			Key:       key,
			Value:     value,
			ProductID: product.ID,
		}
		if err := repoFactory.PropertyRepo().Create(ctx, property); err != nil {
			return errors.Wrap(err, "failed to create property")
		}

		// Owning side is the stored row; mirror it on the in-memory collection.
		product.Properties = append(product.Properties, property)

		return nil
	})
}

// RemoveKeyValueProperty detaches the first stored property matching the
// key/value pair. A pair with no match yields ErrPropertyNotFound.
func (srv *productService) RemoveKeyValueProperty(ctx context.Context, productID int64, key, value string) error {
	if err := entity.ValidatePropertyKV(key, value); err != nil {
		return domainerrors.NewInvalidInput(err.Error())
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		product, err := repoFactory.ProductRepo().FindByID(ctx, productID)
		if err != nil {
			return errors.Wrap(err, "failed to find product by id")
		}

		propertyRepo := repoFactory.PropertyRepo()
		matches, err := propertyRepo.FindByProductKeyValue(ctx, product.ID, key, value)
		if err != nil {
			return errors.Wrap(err, "failed to find matching properties")
		}
		if len(matches) == 0 {
			return errors.Wrap(repository.ErrPropertyNotFound, "no property matches the key/value pair")
		}

		first := matches[0]
		if err := propertyRepo.Delete(ctx, first.ID); err != nil {
			return errors.Wrap(err, "failed to delete property")
		}

		for i, p := range product.Properties {
			if p.ID == first.ID {
				product.Properties = append(product.Properties[:i], product.Properties[i+1:]...)

				break
			}
		}

		return nil
	})
}

// UpdateName replaces the product name.
func (srv *productService) UpdateName(ctx context.Context, id int64, name string) error {
	return srv.updateProduct(ctx, id, func(p *entity.Product) {
		p.Name = name
	})
}

// UpdatePrice replaces the pre-discount price.
func (srv *productService) UpdatePrice(ctx context.Context, id int64, price float64) error {
	return srv.updateProduct(ctx, id, func(p *entity.Product) {
		p.PriceBeforeDiscount = price
	})
}

// UpdateQuantity replaces the stock quantity.
func (srv *productService) UpdateQuantity(ctx context.Context, id int64, quantity int) error {
	return srv.updateProduct(ctx, id, func(p *entity.Product) {
		p.Quantity = quantity
	})
}

// UpdateDescription replaces the description.
func (srv *productService) UpdateDescription(ctx context.Context, id int64, description string) error {
	return srv.updateProduct(ctx, id, func(p *entity.Product) {
		p.Description = description
	})
}

// UpdateDiscount replaces the discount fraction.
func (srv *productService) UpdateDiscount(ctx context.Context, id int64, discount float64) error {
	return srv.updateProduct(ctx, id, func(p *entity.Product) {
		p.Discount = discount
	})
}

// updateProduct fetches the product, applies the mutation and persists
// the whole entity within one transaction.
func (srv *productService) updateProduct(ctx context.Context, id int64, mutate func(*entity.Product)) error {
	if id <= 0 {
		return domainerrors.NewInvalidInput("product id must be positive")
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		product, err := productRepo.FindByID(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to find product by id")
		}

		mutate(product)
		if err := productRepo.Save(ctx, product); err != nil {
			return errors.Wrap(err, "failed to save product")
		}

		return nil
	})
}
