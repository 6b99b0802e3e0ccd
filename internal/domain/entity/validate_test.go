package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateProduct_EitherRuleSetSuffices(t *testing.T) {
	catalogOnly := &Product{
		Name:                "Leather Tote",
		PriceBeforeDiscount: 120,
		Description:         "Full-grain leather tote bag",
		Discount:            0.1,
		// No product type, quantity zero: the stock rule set fails.
	}
	assert.NoError(t, ValidateProduct(catalogOnly))

	stockOnly := &Product{
		ProductType: ProductTypeShoes,
		Quantity:    3,
		// No name, description or price: the catalog rule set fails.
	}
	assert.NoError(t, ValidateProduct(stockOnly))
}

func TestValidateProduct_BothRuleSetsViolated(t *testing.T) {
	product := &Product{
		Name:                "Overpriced",
		PriceBeforeDiscount: 15000,
		Quantity:            20000,
		Description:         "no valid type either",
		Discount:            0.5,
	}

	err := ValidateProduct(product)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PriceBeforeDiscount")
}

func TestValidateProduct_BoundaryValues(t *testing.T) {
	// The price bounds are exclusive on both ends.
	atUpperBound := &Product{
		Name:                "Edge",
		PriceBeforeDiscount: 10000,
		Description:         "price exactly at the excluded bound",
		Discount:            0,
	}
	assert.Error(t, ValidateProduct(atUpperBound))

	// A full discount of 1 is still inside the allowed range.
	justInside := &Product{
		Name:                "Edge",
		PriceBeforeDiscount: 9999.99,
		Description:         "inside both bounds",
		Discount:            1,
	}
	assert.NoError(t, ValidateProduct(justInside))
}

func TestValidateProduct_Nil(t *testing.T) {
	assert.Error(t, ValidateProduct(nil))
}

func TestValidateAddress(t *testing.T) {
	address := &Address{
		Country:    "Poland",
		ZipCode:    "00-001",
		City:       "Warsaw",
		Street:     "Main",
		HomeNumber: "12a",
	}
	assert.NoError(t, ValidateAddress(address))

	address.Street = ""
	err := ValidateAddress(address)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Street")

	assert.Error(t, ValidateAddress(nil))
}

func TestValidateCustomerScalars_SurnameNotRequired(t *testing.T) {
	customer := &Customer{
		Name:        "Anna",
		Email:       "anna@example.com",
		DateOfBirth: time.Date(1990, time.April, 2, 0, 0, 0, 0, time.UTC),
		Password:    "secret",
		// Surname left empty on purpose.
	}
	assert.NoError(t, ValidateCustomerScalars(customer))

	customer.Email = "missing-at-sign"
	assert.Error(t, ValidateCustomerScalars(customer))

	assert.Error(t, ValidateCustomerScalars(nil))
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("anna@example.com"))
	assert.Error(t, ValidateEmail(""))
	assert.Error(t, ValidateEmail("plain-string"))
}

func TestValidatePropertyKV(t *testing.T) {
	assert.NoError(t, ValidatePropertyKV("color", "black"))
	assert.Error(t, ValidatePropertyKV("", "black"))
	assert.Error(t, ValidatePropertyKV("color", ""))
}

func TestProductTypeIsValid(t *testing.T) {
	assert.True(t, ProductTypeBag.IsValid())
	assert.True(t, ProductTypeElectronics.IsValid())
	assert.False(t, ProductType("FURNITURE").IsValid())
	assert.False(t, ProductType("").IsValid())
}

func TestStatusIsValid(t *testing.T) {
	assert.True(t, StatusUnpaid.IsValid())
	assert.True(t, StatusCollected.IsValid())
	assert.False(t, Status("REFUNDED").IsValid())
	assert.False(t, Status("").IsValid())
}

func TestSameLocation(t *testing.T) {
	a := &Address{Country: "PL", ZipCode: "00-001", City: "Warsaw", Street: "Main", HomeNumber: "12a"}
	b := &Address{Country: "PL", ZipCode: "00-001", City: "Warsaw", Street: "Main", HomeNumber: "12a"}
	assert.True(t, a.SameLocation(b))

	b.HomeNumber = "13"
	assert.False(t, a.SameLocation(b))
	assert.False(t, a.SameLocation(nil))
}
