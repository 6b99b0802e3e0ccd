// Package postgres contains the concrete implementation of the
// persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"shop/internal/domain/entity"
	"shop/internal/domain/repository"
	"shop/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// addressRepository implements the repository.AddressRepository interface.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{
		db: db,
	}
}

// Create persists a new address and fills in its assigned identity.
func (repo *addressRepository) Create(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return errors.Wrap(err, "missing required address field")
		}

		return errors.Wrap(err, "failed to create address")
	}

	address.ID = addressM.ID

	return nil
}

// FindByID retrieves an address by its unique ID.
func (repo *addressRepository) FindByID(ctx context.Context, id int64) (*entity.Address, error) {
	var addressM model.AddressModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&addressM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address by ID")
	}

	return toAddressDomain(&addressM), nil
}

// FindByFields retrieves every address matching the full natural key of
// the candidate. Backs the match-or-create dedup of the customer service.
func (repo *addressRepository) FindByFields(ctx context.Context, address *entity.Address) ([]*entity.Address, error) {
	var addressModels []*model.AddressModel

	if err := repo.db.WithContext(ctx).
		Where("country = ? AND zip_code = ? AND city = ? AND street = ? AND home_number = ?",
			address.Country, address.ZipCode, address.City, address.Street, address.HomeNumber).
		Order("id ASC").
		Find(&addressModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find addresses by fields")
	}

	addresses := make([]*entity.Address, 0, len(addressModels))
	for _, addressM := range addressModels {
		addresses = append(addresses, toAddressDomain(addressM))
	}

	return addresses, nil
}

// --- Mapper Functions ---

// toAddressDomain converts a GORM AddressModel to a domain Address entity.
// The customer back-reference set is mapped shallow to avoid cycles.
func toAddressDomain(data *model.AddressModel) *entity.Address {
	if data == nil {
		return nil
	}

	address := &entity.Address{
		ID:         data.ID,
		Country:    data.Country,
		ZipCode:    data.ZipCode,
		City:       data.City,
		Street:     data.Street,
		HomeNumber: data.HomeNumber,
	}

	for i := range data.Customers {
		customer := toCustomerDomainShallow(&data.Customers[i])
		customer.Address = address
		address.Customers = append(address.Customers, customer)
	}

	return address
}

// fromAddressDomain converts a domain Address entity to a GORM AddressModel.
func fromAddressDomain(data *entity.Address) *model.AddressModel {
	if data == nil {
		return nil
	}

	return &model.AddressModel{
		ID:         data.ID,
		Country:    data.Country,
		ZipCode:    data.ZipCode,
		City:       data.City,
		Street:     data.Street,
		HomeNumber: data.HomeNumber,
	}
}
