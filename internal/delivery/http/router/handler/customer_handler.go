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

// CustomerHandler holds dependencies for customer-related handlers.
type CustomerHandler struct {
	uc     usecase.CustomerUsecase
	logger *slog.Logger
}

// NewCustomerHandler is the constructor for CustomerHandler, injected by Fx.
func NewCustomerHandler(uc usecase.CustomerUsecase, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{
		uc:     uc,
		logger: logger,
	}
}

// addressRequest carries an optional id so callers can reference an
// already stored address; the customer dedup matches on the address
// identity, not the address value.
type addressRequest struct {
	ID         int64  `json:"id"`
	Country    string `json:"country"`
	ZipCode    string `json:"zipCode"`
	City       string `json:"city"`
	Street     string `json:"street"`
	HomeNumber string `json:"homeNumber"`
}

func (r addressRequest) toEntity() *entity.Address {
	return &entity.Address{
		ID:         r.ID,
		Country:    r.Country,
		ZipCode:    r.ZipCode,
		City:       r.City,
		Street:     r.Street,
		HomeNumber: r.HomeNumber,
	}
}

type createCustomerRequest struct {
	Name        string          `json:"name"`
	Surname     string          `json:"surname"`
	Email       string          `json:"email"`
	DateOfBirth time.Time       `json:"dateOfBirth"`
	Password    string          `json:"password"`
	IsAdmin     bool            `json:"isAdmin"`
	Address     *addressRequest `json:"address"`
}

type addressResponse struct {
	ID         int64  `json:"id"`
	Country    string `json:"country"`
	ZipCode    string `json:"zipCode"`
	City       string `json:"city"`
	Street     string `json:"street"`
	HomeNumber string `json:"homeNumber"`
}

type customerResponse struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Surname     string           `json:"surname"`
	Email       string           `json:"email"`
	DateOfBirth time.Time        `json:"dateOfBirth"`
	IsAdmin     bool             `json:"isAdmin"`
	Address     *addressResponse `json:"address,omitempty"`
}

func toCustomerResponse(customer *entity.Customer) customerResponse {
	// The password never leaves the service.
	resp := customerResponse{
		ID:          customer.ID,
		Name:        customer.Name,
		Surname:     customer.Surname,
		Email:       customer.Email,
		DateOfBirth: customer.DateOfBirth,
		IsAdmin:     customer.IsAdmin,
	}

	if customer.Address != nil {
		resp.Address = &addressResponse{
			ID:         customer.Address.ID,
			Country:    customer.Address.Country,
			ZipCode:    customer.Address.ZipCode,
			City:       customer.Address.City,
			Street:     customer.Address.Street,
			HomeNumber: customer.Address.HomeNumber,
		}
	}

	return resp
}

// Create handles the customer creation request.
func (h *CustomerHandler) Create(c echo.Context) error {
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

	id, err := h.uc.AddCustomer(c.Request().Context(), customer)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]int64{"id": id}, "Customer created successfully")
}

// Get handles the customer retrieval request.
func (h *CustomerHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	customer, err := h.uc.GetCustomerByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCustomerResponse(customer), "")
}

// Delete handles the customer deletion request.
func (h *CustomerHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.RemoveCustomer(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Customer deleted successfully")
}

// UpdateEmail replaces the customer's email.
func (h *CustomerHandler) UpdateEmail(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var input struct {
		Email string `json:"email"`
	}
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid email input")
	}

	if err := h.uc.UpdateEmail(c.Request().Context(), id, input.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Customer email updated successfully")
}

// UpdatePassword replaces the customer's password.
func (h *CustomerHandler) UpdatePassword(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var input struct {
		Password string `json:"password"`
	}
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password input")
	}

	if err := h.uc.UpdatePassword(c.Request().Context(), id, input.Password); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Customer password updated successfully")
}

// UpdateIsAdmin replaces the customer's admin flag.
func (h *CustomerHandler) UpdateIsAdmin(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var input struct {
		IsAdmin bool `json:"isAdmin"`
	}
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid admin flag input")
	}

	if err := h.uc.UpdateIsAdmin(c.Request().Context(), id, input.IsAdmin); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Customer admin flag updated successfully")
}

// UpdateAddress reassigns the customer's address.
func (h *CustomerHandler) UpdateAddress(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var input addressRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}

	if err := h.uc.UpdateAddress(c.Request().Context(), id, input.toEntity()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Customer address updated successfully")
}
