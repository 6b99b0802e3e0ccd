package entity

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Shared validator instance for the entity rules declared via struct tags.
// Each entity kind gets exactly one validation entry point here so the
// services never repeat ad hoc field checks.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Field groups of the product acceptance predicate. The predicate accepts
// a product when EITHER group passes in full; the groups are not combined
// with AND. This disjunction is deliberate, so e.g. a product with an
// empty description is still accepted when its type and quantity are
// in range.
var (
	productCatalogFields = []string{"Name", "Description", "Discount", "PriceBeforeDiscount"}
	productStockFields   = []string{"ProductType", "Quantity"}
)

// ValidateProduct applies the product acceptance predicate. It returns
// nil when either partial rule set is satisfied; otherwise it reports
// the violations of the catalog rule set.
func ValidateProduct(p *Product) error {
	if p == nil {
		return fmt.Errorf("product must not be nil")
	}

	catalogErr := validate.StructPartial(p, productCatalogFields...)
	if catalogErr == nil {
		return nil
	}
	if stockErr := validate.StructPartial(p, productStockFields...); stockErr == nil {
		return nil
	}

	return describeViolations(catalogErr)
}

// ValidateAddress requires all five natural-key fields to be present.
func ValidateAddress(a *Address) error {
	if a == nil {
		return fmt.Errorf("address must not be nil")
	}

	if err := validate.StructPartial(a, "Country", "ZipCode", "City", "Street", "HomeNumber"); err != nil {
		return describeViolations(err)
	}

	return nil
}

// ValidateCustomerScalars checks the scalar fields the cart-customer
// dedup operation requires: name, email, date of birth and password.
// Surname is intentionally not required here.
func ValidateCustomerScalars(c *Customer) error {
	if c == nil {
		return fmt.Errorf("customer must not be nil")
	}

	if err := validate.StructPartial(c, "Name", "Email", "DateOfBirth", "Password"); err != nil {
		return describeViolations(err)
	}

	return nil
}

// ValidateEmail checks a standalone email candidate.
func ValidateEmail(email string) error {
	if err := validate.Var(email, "required,contains=@"); err != nil {
		return fmt.Errorf("email must be non-empty and contain '@'")
	}

	return nil
}

// ValidatePropertyKV checks a property key/value pair before it is
// attached to or detached from a product.
func ValidatePropertyKV(key, value string) error {
	if err := validate.Var(key, "required"); err != nil {
		return fmt.Errorf("property key must not be empty")
	}
	if err := validate.Var(value, "required"); err != nil {
		return fmt.Errorf("property value must not be empty")
	}

	return nil
}

// describeViolations flattens validator.ValidationErrors into a single
// human-readable message naming every violated constraint.
func describeViolations(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s violates %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			parts = append(parts, fmt.Sprintf("%s violates %s", fe.Field(), fe.Tag()))
		}
	}

	return fmt.Errorf("invalid fields: %s", strings.Join(parts, ", "))
}
