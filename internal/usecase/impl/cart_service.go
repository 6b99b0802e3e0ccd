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

// cartService implements the CartUsecase interface.
type cartService struct {
	txManager repository.TransactionManager
	cartRepo  repository.CartRepository
	logger    *slog.Logger
}

// CartServiceParams holds dependencies for the cart service, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	CartRepo  repository.CartRepository
	Logger    *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		txManager: params.TxManager,
		cartRepo:  params.CartRepo,
		logger:    params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddCart persists the cart and mirrors it onto the customer
// back-reference within the same transaction.
func (srv *cartService) AddCart(ctx context.Context, cart *entity.ShoppingCart) (int64, error) {
	if cart == nil {
		return 0, domainerrors.NewInvalidInput("shopping cart must not be nil")
	}
	if cart.Customer == nil {
		return 0, domainerrors.NewInvalidInput("shopping cart customer is mandatory")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.CartRepo().Create(ctx, cart); err != nil {
			return errors.Wrap(err, "failed to create shopping cart")
		}

		cart.Customer.Carts = append(cart.Customer.Carts, cart)

		return nil
	})
	if err != nil {
		return 0, err
	}

	srv.log(ctx).Info("Shopping cart added",
		slog.Int64("cartID", cart.ID),
		slog.Int64("customerID", cart.CustomerID()),
	)

	return cart.ID, nil
}

// GetCartByID returns the cart with the given identity.
func (srv *cartService) GetCartByID(ctx context.Context, id int64) (*entity.ShoppingCart, error) {
	if id <= 0 {
		return nil, domainerrors.NewInvalidInput("cart id must be positive")
	}

	cart, err := srv.cartRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cart by id")
	}

	return cart, nil
}

// RemoveCart deletes the cart; the store cascades its join rows.
func (srv *cartService) RemoveCart(ctx context.Context, id int64) error {
	if id <= 0 {
		return domainerrors.NewInvalidInput("cart id must be positive")
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		if _, err := cartRepo.FindByID(ctx, id); err != nil {
			return errors.Wrap(err, "failed to find cart by id")
		}

		if err := cartRepo.Delete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete cart")
		}

		return nil
	})
}

// AddProductToCart links the product on both sides of the relation and
// raises the derived total by the product's discounted price. Join row
// and price delta become durable in the same transaction.
func (srv *cartService) AddProductToCart(ctx context.Context, cartID int64, product *entity.Product) error {
	if product == nil {
		return domainerrors.NewInvalidInput("product must not be nil")
	}
	if cartID <= 0 {
		return domainerrors.NewInvalidInput("cart id must be positive")
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		cart, err := cartRepo.FindByID(ctx, cartID)
		if err != nil {
			return errors.Wrap(err, "failed to find cart by id")
		}

		// Sync the in-memory relation on both sides before touching the store.
		cart.Products = append(cart.Products, product)
		product.Carts = append(product.Carts, cart)

		if err := cartRepo.AddProduct(ctx, cart.ID, product.ID); err != nil {
			return errors.Wrap(err, "failed to link product to cart")
		}

		cart.TotalPrice += product.PriceAfterDiscount
		if err := cartRepo.Save(ctx, cart); err != nil {
			return errors.Wrap(err, "failed to save cart")
		}

		return nil
	})
}

// RemoveProductFromCart unlinks the product and lowers the derived total
// by the product's PRE-discount price, deliberately not the discounted
// price the add path uses. Removing a discounted product therefore does
// not restore the previous total.
func (srv *cartService) RemoveProductFromCart(ctx context.Context, cartID int64, product *entity.Product) error {
	if product == nil {
		return domainerrors.NewInvalidInput("product must not be nil")
	}
	if cartID <= 0 {
		return domainerrors.NewInvalidInput("cart id must be positive")
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		cart, err := cartRepo.FindByID(ctx, cartID)
		if err != nil {
			return errors.Wrap(err, "failed to find cart by id")
		}

		cart.TotalPrice -= product.PriceBeforeDiscount

		for i, p := range cart.Products {
			if p.ID == product.ID {
				cart.Products = append(cart.Products[:i], cart.Products[i+1:]...)

				break
			}
		}
		for i, c := range product.Carts {
			if c.ID == cart.ID {
				product.Carts = append(product.Carts[:i], product.Carts[i+1:]...)

				break
			}
		}

		if err := cartRepo.RemoveProduct(ctx, cart.ID, product.ID); err != nil {
			return errors.Wrap(err, "failed to unlink product from cart")
		}

		if err := cartRepo.Save(ctx, cart); err != nil {
			return errors.Wrap(err, "failed to save cart")
		}

		return nil
	})
}

// UpdateCartCustomer reassigns the cart's customer with match-or-create
// dedup on all scalar fields plus the address identity, mirroring the
// address dedup idiom.
func (srv *cartService) UpdateCartCustomer(ctx context.Context, cartID int64, customer *entity.Customer) error {
	if err := entity.ValidateCustomerScalars(customer); err != nil {
		return domainerrors.NewInvalidInput(err.Error())
	}
	if cartID <= 0 {
		return domainerrors.NewInvalidInput("cart id must be positive")
	}

	var reused bool
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		cart, err := cartRepo.FindByID(ctx, cartID)
		if err != nil {
			return errors.Wrap(err, "failed to find cart by id")
		}

		customerRepo := repoFactory.CustomerRepo()
		matches, err := customerRepo.FindByValue(ctx, customer)
		if err != nil {
			return errors.Wrap(err, "failed to scan for matching customers")
		}

		if len(matches) == 1 {
			cart.Customer = matches[0]
			reused = true
		} else {
			if err := customerRepo.Create(ctx, customer); err != nil {
				return errors.Wrap(err, "failed to create customer")
			}
			cart.Customer = customer
		}

		cart.Customer.Carts = append(cart.Customer.Carts, cart)

		if err := cartRepo.Save(ctx, cart); err != nil {
			return errors.Wrap(err, "failed to save cart")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Cart customer updated",
		slog.Int64("cartID", cartID),
		slog.Bool("reusedExisting", reused),
	)

	return nil
}
