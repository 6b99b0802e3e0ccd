// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"shop/internal/delivery/http/response"
	"shop/internal/domain/entity"
	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for product-related handlers.
type ProductHandler struct {
	uc     usecase.ProductUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

type createProductRequest struct {
	Name                string  `json:"name"`
	PriceBeforeDiscount float64 `json:"priceBeforeDiscount"`
	PriceAfterDiscount  float64 `json:"priceAfterDiscount"`
	Quantity            int     `json:"quantity"`
	Description         string  `json:"description"`
	Discount            float64 `json:"discount"`
	ProductType         string  `json:"productType"`
}

type productResponse struct {
	ID                  int64              `json:"id"`
	Name                string             `json:"name"`
	PriceBeforeDiscount float64            `json:"priceBeforeDiscount"`
	PriceAfterDiscount  float64            `json:"priceAfterDiscount"`
	Quantity            int                `json:"quantity"`
	Description         string             `json:"description"`
	Discount            float64            `json:"discount"`
	ProductType         string             `json:"productType"`
	Properties          []propertyResponse `json:"properties,omitempty"`
}

type propertyResponse struct {
	ID    int64  `json:"id"`
	Key   string `json:"key"`
	Value string `json:"value"`
}

func toProductResponse(product *entity.Product) productResponse {
	resp := productResponse{
		ID:                  product.ID,
		Name:                product.Name,
		PriceBeforeDiscount: product.PriceBeforeDiscount,
		PriceAfterDiscount:  product.PriceAfterDiscount,
		Quantity:            product.Quantity,
		Description:         product.Description,
		Discount:            product.Discount,
		ProductType:         product.ProductType.String(),
	}

	for _, prop := range product.Properties {
		resp.Properties = append(resp.Properties, propertyResponse{
			ID:    prop.ID,
			Key:   prop.Key,
			Value: prop.Value,
		})
	}

	return resp
}

// Create handles the product creation request.
func (h *ProductHandler) Create(c echo.Context) error {
	var input createProductRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	product := &entity.Product{
		Name:                input.Name,
		PriceBeforeDiscount: input.PriceBeforeDiscount,
		PriceAfterDiscount:  input.PriceAfterDiscount,
		Quantity:            input.Quantity,
		Description:         input.Description,
		Discount:            input.Discount,
		ProductType:         entity.ProductType(input.ProductType),
	}

	id, err := h.uc.AddProduct(c.Request().Context(), product)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]int64{"id": id}, "Product created successfully")
}

// Get handles the product retrieval request.
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	product, err := h.uc.GetProductByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product), "")
}

// Delete handles the product deletion request.
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.RemoveProduct(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}

// Buy handles the stock purchase request.
func (h *ProductHandler) Buy(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid purchase input")
	}

	if err := h.uc.BuyProduct(c.Request().Context(), id, input.Quantity); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Purchase completed successfully")
}

type propertyRequest struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// AddProperty attaches a key/value property to the product.
func (h *ProductHandler) AddProperty(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var input propertyRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid property input")
	}

	if err := h.uc.AddKeyValueProperty(c.Request().Context(), id, input.Key, input.Value); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Property added successfully")
}

// RemoveProperty detaches a key/value property from the product.
func (h *ProductHandler) RemoveProperty(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var input propertyRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid property input")
	}

	if err := h.uc.RemoveKeyValueProperty(c.Request().Context(), id, input.Key, input.Value); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Property removed successfully")
}

// UpdateName replaces the product name.
func (h *ProductHandler) UpdateName(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var input struct {
		Name string `json:"name"`
	}
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid name input")
	}

	if err := h.uc.UpdateName(c.Request().Context(), id, input.Name); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product name updated successfully")
}

// UpdatePrice replaces the pre-discount price.
func (h *ProductHandler) UpdatePrice(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var input struct {
		Price float64 `json:"price"`
	}
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid price input")
	}

	if err := h.uc.UpdatePrice(c.Request().Context(), id, input.Price); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product price updated successfully")
}

// UpdateQuantity replaces the stock quantity.
func (h *ProductHandler) UpdateQuantity(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity input")
	}

	if err := h.uc.UpdateQuantity(c.Request().Context(), id, input.Quantity); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product quantity updated successfully")
}

// UpdateDescription replaces the description.
func (h *ProductHandler) UpdateDescription(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var input struct {
		Description string `json:"description"`
	}
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid description input")
	}

	if err := h.uc.UpdateDescription(c.Request().Context(), id, input.Description); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product description updated successfully")
}

// UpdateDiscount replaces the discount fraction.
func (h *ProductHandler) UpdateDiscount(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var input struct {
		Discount float64 `json:"discount"`
	}
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid discount input")
	}

	if err := h.uc.UpdateDiscount(c.Request().Context(), id, input.Discount); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product discount updated successfully")
}

// parseIDParam extracts a positive integer path parameter.
func parseIDParam(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name+" parameter")
	}

	return id, nil
}
