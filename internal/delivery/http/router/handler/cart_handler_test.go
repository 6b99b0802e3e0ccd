package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shop/internal/domain/entity"
	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCartUsecase struct {
	usecase.CartUsecase

	updateCartCustomer func(ctx context.Context, cartID int64, customer *entity.Customer) error
}

func (s *stubCartUsecase) UpdateCartCustomer(ctx context.Context, cartID int64, customer *entity.Customer) error {
	return s.updateCartCustomer(ctx, cartID, customer)
}

func TestCartHandler_UpdateCustomer_CarriesAddressIdentity(t *testing.T) {
	var capturedCartID int64
	var captured *entity.Customer
	uc := &stubCartUsecase{
		updateCartCustomer: func(_ context.Context, cartID int64, customer *entity.Customer) error {
			capturedCartID = cartID
			captured = customer

			return nil
		},
	}
	handler := NewCartHandler(uc, nil, slog.New(slog.DiscardHandler))

	body := `{
		"name": "Anna",
		"surname": "Kowalska",
		"email": "anna@example.com",
		"dateOfBirth": "1990-04-02T00:00:00Z",
		"password": "secret",
		"address": {
			"id": 7,
			"country": "Poland",
			"zipCode": "00-001",
			"city": "Warsaw",
			"street": "Main",
			"homeNumber": "12a"
		}
	}`

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/carts/5/customer", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("5")

	err := handler.UpdateCustomer(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, int64(5), capturedCartID)
	require.NotNil(t, captured)
	require.NotNil(t, captured.Address)
	// The customer dedup matches on address_id, so the stored address
	// identity must reach the use case intact.
	assert.Equal(t, int64(7), captured.AddressID())
	assert.Equal(t, "Warsaw", captured.Address.City)
	assert.Equal(t, "anna@example.com", captured.Email)
}
