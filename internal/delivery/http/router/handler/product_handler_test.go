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

// stubProductUsecase overrides only the operations a test exercises;
// calling anything else panics through the embedded nil interface.
type stubProductUsecase struct {
	usecase.ProductUsecase

	addProduct func(ctx context.Context, product *entity.Product) (int64, error)
}

func (s *stubProductUsecase) AddProduct(ctx context.Context, product *entity.Product) (int64, error) {
	return s.addProduct(ctx, product)
}

func TestProductHandler_Create_CarriesBothPrices(t *testing.T) {
	var captured *entity.Product
	uc := &stubProductUsecase{
		addProduct: func(_ context.Context, product *entity.Product) (int64, error) {
			captured = product

			return 1, nil
		},
	}
	handler := NewProductHandler(uc, slog.New(slog.DiscardHandler))

	body := `{
		"name": "Leather Tote",
		"priceBeforeDiscount": 100,
		"priceAfterDiscount": 90,
		"quantity": 5,
		"description": "Full-grain leather tote bag",
		"discount": 0.1,
		"productType": "BAG"
	}`

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Create(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	require.NotNil(t, captured)
	assert.Equal(t, "Leather Tote", captured.Name)
	assert.Equal(t, 100.0, captured.PriceBeforeDiscount)
	// The discounted price drives the cart total on the add path, so it
	// must survive the request binding.
	assert.Equal(t, 90.0, captured.PriceAfterDiscount)
	assert.Equal(t, 5, captured.Quantity)
	assert.Equal(t, entity.ProductTypeBag, captured.ProductType)
}
