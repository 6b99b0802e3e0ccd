package handler

import (
	"log/slog"
	"net/http"
	"time"

	"shop/internal/delivery/http/response"
	"shop/internal/domain/entity"
	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler holds dependencies for shopping-cart-related handlers.
// Product lookups go through the product use case so the cart endpoints
// operate on fully loaded products.
type CartHandler struct {
	uc        usecase.CartUsecase
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, productUC usecase.ProductUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		uc:        uc,
		productUC: productUC,
		logger:    logger,
	}
}

type createCartRequest struct {
	CustomerID     int64     `json:"customerId"`
	DateOfPurchase time.Time `json:"dateOfPurchase"`
	Status         string    `json:"status"`
}

type cartResponse struct {
	ID             int64             `json:"id"`
	DateOfPurchase time.Time         `json:"dateOfPurchase"`
	TotalPrice     float64           `json:"totalPrice"`
	Status         string            `json:"status"`
	Customer       *customerResponse `json:"customer,omitempty"`
	Products       []productResponse `json:"products,omitempty"`
}

func toCartResponse(cart *entity.ShoppingCart) cartResponse {
	resp := cartResponse{
		ID:             cart.ID,
		DateOfPurchase: cart.DateOfPurchase,
		TotalPrice:     cart.TotalPrice,
		Status:         cart.Status.String(),
	}

	if cart.Customer != nil {
		customer := toCustomerResponse(cart.Customer)
		resp.Customer = &customer
	}

	for _, product := range cart.Products {
		resp.Products = append(resp.Products, toProductResponse(product))
	}

	return resp
}

// Create handles the cart creation request.
func (h *CartHandler) Create(c echo.Context) error {
	var input createCartRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}

	status := entity.Status(input.Status)
	if !status.IsValid() {
		return response.BadRequest(c, "INVALID_INPUT", "Unknown cart status")
	}

	cart := &entity.ShoppingCart{
		DateOfPurchase: input.DateOfPurchase,
		Status:         status,
		Customer:       &entity.Customer{ID: input.CustomerID},
	}

	id, err := h.uc.AddCart(c.Request().Context(), cart)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]int64{"id": id}, "Cart created successfully")
}

// Get handles the cart retrieval request.
func (h *CartHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	cart, err := h.uc.GetCartByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCartResponse(cart), "")
}

// Delete handles the cart deletion request.
func (h *CartHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.RemoveCart(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cart deleted successfully")
}

// AddProduct links a product into the cart.
func (h *CartHandler) AddProduct(c echo.Context) error {
	cartID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	productID, err := parseIDParam(c, "productId")
	if err != nil {
		return err
	}

	ctx := c.Request().Context()

	product, err := h.productUC.GetProductByID(ctx, productID)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.AddProductToCart(ctx, cartID, product); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product added to cart successfully")
}

// RemoveProduct unlinks a product from the cart.
func (h *CartHandler) RemoveProduct(c echo.Context) error {
	cartID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	productID, err := parseIDParam(c, "productId")
	if err != nil {
		return err
	}

	ctx := c.Request().Context()

	product, err := h.productUC.GetProductByID(ctx, productID)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.RemoveProductFromCart(ctx, cartID, product); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product removed from cart successfully")
}

// UpdateCustomer reassigns the cart's customer.
func (h *CartHandler) UpdateCustomer(c echo.Context) error {
	cartID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var input createCustomerRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid customer input")
	}

	customer := &entity.Customer{
		Name:        input.Name,
		Surname:     input.Surname,
		Email:       input.Email,
		DateOfBirth: input.DateOfBirth,
		Password:    input.Password,
		IsAdmin:     input.IsAdmin,
	}
	if input.Address != nil {
		customer.Address = input.Address.toEntity()
	}

	if err := h.uc.UpdateCartCustomer(c.Request().Context(), cartID, customer); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cart customer updated successfully")
}
