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

// customerService implements the CustomerUsecase interface.
type customerService struct {
	txManager    repository.TransactionManager
	customerRepo repository.CustomerRepository
	logger       *slog.Logger
}

// CustomerServiceParams holds dependencies for the customer service, injected by Fx.
type CustomerServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CustomerRepo repository.CustomerRepository
	Logger       *slog.Logger
}

// NewCustomerService is the constructor for customerService.
func NewCustomerService(params CustomerServiceParams) usecase.CustomerUsecase {
	return &customerService{
		txManager:    params.TxManager,
		customerRepo: params.CustomerRepo,
		logger:       params.Logger,
	}
}

func (srv *customerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddCustomer persists the customer and mirrors it onto the address
// back-reference within the same transaction.
func (srv *customerService) AddCustomer(ctx context.Context, customer *entity.Customer) (int64, error) {
	if customer == nil {
		return 0, domainerrors.NewInvalidInput("customer must not be nil")
	}
	if customer.Address == nil {
		return 0, domainerrors.NewInvalidInput("customer address is mandatory")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.CustomerRepo().Create(ctx, customer); err != nil {
			return errors.Wrap(err, "failed to create customer")
		}

		// Keep both sides of the relation consistent in memory; the store
		// only holds the owning foreign key.
		customer.Address.Customers = append(customer.Address.Customers, customer)

		return nil
	})
	if err != nil {
		return 0, err
	}

	srv.log(ctx).Info("Customer added",
		slog.Int64("customerID", customer.ID),
		slog.Int64("addressID", customer.AddressID()),
	)

	return customer.ID, nil
}

// GetCustomerByID returns the customer with the given identity.
func (srv *customerService) GetCustomerByID(ctx context.Context, id int64) (*entity.Customer, error) {
	if id <= 0 {
		return nil, domainerrors.NewInvalidInput("customer id must be positive")
	}

	customer, err := srv.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find customer by id")
	}

	return customer, nil
}

// RemoveCustomer deletes the customer. The address keeps existing; its
// back-reference set is recomputed from the store relation on load.
func (srv *customerService) RemoveCustomer(ctx context.Context, id int64) error {
	if id <= 0 {
		return domainerrors.NewInvalidInput("customer id must be positive")
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customerRepo := repoFactory.CustomerRepo()

		if _, err := customerRepo.FindByID(ctx, id); err != nil {
			return errors.Wrap(err, "failed to find customer by id")
		}

		if err := customerRepo.Delete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete customer")
		}

		return nil
	})
}

// UpdateEmail replaces the email after checking the "@" requirement.
func (srv *customerService) UpdateEmail(ctx context.Context, id int64, email string) error {
	if err := entity.ValidateEmail(email); err != nil {
		return domainerrors.NewInvalidInput(err.Error())
	}

	return srv.updateCustomer(ctx, id, func(c *entity.Customer) {
		c.Email = email
	})
}

// UpdatePassword replaces the password; an empty candidate is rejected.
func (srv *customerService) UpdatePassword(ctx context.Context, id int64, password string) error {
	if password == "" {
		return domainerrors.NewInvalidInput("password must not be empty")
	}

	return srv.updateCustomer(ctx, id, func(c *entity.Customer) {
		c.Password = password
	})
}

// UpdateIsAdmin replaces the admin flag.
func (srv *customerService) UpdateIsAdmin(ctx context.Context, id int64, isAdmin bool) error {
	return srv.updateCustomer(ctx, id, func(c *entity.Customer) {
		c.IsAdmin = isAdmin
	})
}

// UpdateAddress reassigns the customer's address with match-or-create
// dedup on the full natural key. Exactly one stored match is reused;
// zero matches insert the candidate. More than one match falls through
// to insert as well; see domainerrors.ErrAmbiguousMatch for why that
// case stays undecided.
func (srv *customerService) UpdateAddress(ctx context.Context, customerID int64, address *entity.Address) error {
	if err := entity.ValidateAddress(address); err != nil {
		return domainerrors.NewInvalidInput(err.Error())
	}
	if customerID <= 0 {
		return domainerrors.NewInvalidInput("customer id must be positive")
	}

	var reused bool
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customerRepo := repoFactory.CustomerRepo()

		customer, err := customerRepo.FindByID(ctx, customerID)
		if err != nil {
			return errors.Wrap(err, "failed to find customer by id")
		}

		addressRepo := repoFactory.AddressRepo()
		matches, err := addressRepo.FindByFields(ctx, address)
		if err != nil {
			return errors.Wrap(err, "failed to scan for matching addresses")
		}

		if len(matches) == 1 {
			customer.Address = matches[0]
			reused = true
		} else {
			if err := addressRepo.Create(ctx, address); err != nil {
				return errors.Wrap(err, "failed to create address")
			}
			customer.Address = address
		}

		customer.Address.Customers = append(customer.Address.Customers, customer)

		if err := customerRepo.Save(ctx, customer); err != nil {
			return errors.Wrap(err, "failed to save customer")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Customer address updated",
		slog.Int64("customerID", customerID),
		slog.Bool("reusedExisting", reused),
	)

	return nil
}

func (srv *customerService) updateCustomer(ctx context.Context, id int64, mutate func(*entity.Customer)) error {
	if id <= 0 {
		return domainerrors.NewInvalidInput("customer id must be positive")
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customerRepo := repoFactory.CustomerRepo()

		customer, err := customerRepo.FindByID(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to find customer by id")
		}

		mutate(customer)
		if err := customerRepo.Save(ctx, customer); err != nil {
			return errors.Wrap(err, "failed to save customer")
		}

		return nil
	})
}
