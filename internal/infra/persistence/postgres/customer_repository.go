package postgres

import (
	"context"

	"shop/internal/domain/entity"
	"shop/internal/domain/repository"
	"shop/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// customerRepository implements the repository.CustomerRepository interface.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{
		db: db,
	}
}

// Create persists a new customer. When the referenced address carries no
// identity yet, GORM inserts the address row in the same statement batch
// and both IDs are written back to the entities.
func (repo *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	customerM := fromCustomerDomain(customer)

	if err := repo.db.WithContext(ctx).Create(customerM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(err, "invalid address reference")
		}
		if isNotNullConstraintViolation(err) {
			return errors.Wrap(err, "missing required customer field")
		}

		return errors.Wrap(err, "failed to create customer")
	}

	customer.ID = customerM.ID
	if customer.Address != nil && customerM.Address != nil {
		customer.Address.ID = customerM.Address.ID
	}

	return nil
}

// FindByID retrieves a customer by its unique ID with the address loaded.
func (repo *customerRepository) FindByID(ctx context.Context, id int64) (*entity.Customer, error) {
	var customerM model.CustomerModel

	if err := repo.db.WithContext(ctx).
		Preload("Address").
		Where("id = ?", id).
		First(&customerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by ID")
	}

	return toCustomerDomain(&customerM), nil
}

// FindByValue retrieves every customer matching all scalar fields plus
// the address identity of the candidate. Backs the cart-customer dedup.
func (repo *customerRepository) FindByValue(ctx context.Context, customer *entity.Customer) ([]*entity.Customer, error) {
	var customerModels []*model.CustomerModel

	if err := repo.db.WithContext(ctx).
		Preload("Address").
		Where("name = ? AND surname = ? AND email = ? AND date_of_birth = ? AND password = ? AND is_admin = ? AND address_id = ?",
			customer.Name, customer.Surname, customer.Email, customer.DateOfBirth,
			customer.Password, customer.IsAdmin, customer.AddressID()).
		Order("id ASC").
		Find(&customerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find customers by value")
	}

	customers := make([]*entity.Customer, 0, len(customerModels))
	for _, customerM := range customerModels {
		customers = append(customers, toCustomerDomain(customerM))
	}

	return customers, nil
}

// Save updates an existing customer record.
func (repo *customerRepository) Save(ctx context.Context, customer *entity.Customer) error {
	customerM := fromCustomerDomain(customer)
	// Persist the scalar columns and the address foreign key only; the
	// address row itself is managed by the address repository.
	customerM.Address = nil

	if err := repo.db.WithContext(ctx).Save(customerM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(err, "invalid address reference")
		}

		return errors.Wrap(err, "failed to save customer")
	}

	return nil
}

// Delete removes a customer by its ID.
func (repo *customerRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CustomerModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete customer")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toCustomerDomain converts a GORM CustomerModel to a domain Customer
// entity, including the referenced address.
func toCustomerDomain(data *model.CustomerModel) *entity.Customer {
	if data == nil {
		return nil
	}

	customer := toCustomerDomainShallow(data)
	if data.Address != nil {
		customer.Address = toAddressDomain(data.Address)
	}

	return customer
}

// toCustomerDomainShallow maps the scalar columns only; relations are
// left for the caller to wire, keeping the mappers cycle-free.
func toCustomerDomainShallow(data *model.CustomerModel) *entity.Customer {
	return &entity.Customer{
		ID:          data.ID,
		Name:        data.Name,
		Surname:     data.Surname,
		Email:       data.Email,
		DateOfBirth: data.DateOfBirth,
		Password:    data.Password,
		IsAdmin:     data.IsAdmin,
	}
}

// fromCustomerDomain converts a domain Customer entity to a GORM CustomerModel.
func fromCustomerDomain(data *entity.Customer) *model.CustomerModel {
	if data == nil {
		return nil
	}

	customerM := &model.CustomerModel{
		ID:          data.ID,
		Name:        data.Name,
		Surname:     data.Surname,
		Email:       data.Email,
		DateOfBirth: data.DateOfBirth,
		Password:    data.Password,
		IsAdmin:     data.IsAdmin,
		AddressID:   data.AddressID(),
		Address:     fromAddressDomain(data.Address),
	}

	return customerM
}
