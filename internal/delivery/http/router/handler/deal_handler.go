package handler

import (
	"log/slog"
	"net/http"
	"time"

	"inndoor/config"
	"inndoor/internal/delivery/http/middleware"
	"inndoor/internal/delivery/http/response"
	"inndoor/internal/domain/entity"
	"inndoor/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DealHandlerParams holds dependencies for DealHandler, injected by Fx.
type DealHandlerParams struct {
	fx.In

	DealUC usecase.DealUsecase
	Config *config.Config
	Logger *slog.Logger
}

// DealHandler holds dependencies for deal ledger handlers.
type DealHandler struct {
	dealUC usecase.DealUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewDealHandler is the constructor for DealHandler.
func NewDealHandler(params DealHandlerParams) *DealHandler {
	return &DealHandler{
		dealUC: params.DealUC,
		cfg:    params.Config,
		logger: params.Logger,
	}
}

// InitiateDealRequest represents the request body for opening a deal.
type InitiateDealRequest struct {
	PropertyID uuid.UUID  `json:"property_id" validate:"required"`
	AgentID    *uuid.UUID `json:"agent_id,omitempty"`

	RentAmount       float64 `json:"rent_amount" validate:"required,gt=0"`
	CommissionAmount float64 `json:"commission_amount" validate:"required,gte=0"`

	OwnerCommission *float64 `json:"owner_commission,omitempty"`
	AgentCommission *float64 `json:"agent_commission,omitempty"`

	LeaseStartDate *time.Time `json:"lease_start_date,omitempty"`
	LeaseEndDate   *time.Time `json:"lease_end_date,omitempty"`
}

// UpdateDealStatusRequest represents a lifecycle transition request.
type UpdateDealStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// MarkPaidRequest represents the body for recording an external payment.
type MarkPaidRequest struct {
	PaymentReference string     `json:"payment_reference" validate:"required"`
	PaidAt           *time.Time `json:"paid_at,omitempty"`
}

// Initiate handles opening a deal. The caller becomes the tenant.
func (h *DealHandler) Initiate(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req InitiateDealRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid deal input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	deal, err := h.dealUC.Initiate(c.Request().Context(), userID, &usecase.InitiateDealInput{
		PropertyID:       req.PropertyID,
		AgentID:          req.AgentID,
		RentAmount:       req.RentAmount,
		CommissionAmount: req.CommissionAmount,
		OwnerCommission:  req.OwnerCommission,
		AgentCommission:  req.AgentCommission,
		LeaseStartDate:   req.LeaseStartDate,
		LeaseEndDate:     req.LeaseEndDate,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newDealResponse(deal), "Deal initiated successfully")
}

// List handles retrieval of the caller's deals.
func (h *DealHandler) List(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	propertyID, err := queryUUID(c, "property_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid property ID")
	}

	tenantID, err := queryUUID(c, "tenant_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid tenant ID")
	}

	ownerID, err := queryUUID(c, "owner_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid owner ID")
	}

	agentID, err := queryUUID(c, "agent_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid agent ID")
	}

	input := &usecase.ListDealsInput{
		Status:     entity.DealStatus(c.QueryParam("status")),
		PropertyID: propertyID,
		TenantID:   tenantID,
		OwnerID:    ownerID,
		AgentID:    agentID,
	}
	input.Limit, input.Offset = pagination(c, h.cfg)

	deals, err := h.dealUC.List(c.Request().Context(), userID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newDealResponses(deals), "Deals retrieved successfully")
}

// Get handles retrieval of a single deal.
func (h *DealHandler) Get(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	dealID, err := pathID(c, "dealId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid deal ID")
	}

	deal, err := h.dealUC.Get(c.Request().Context(), userID, dealID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newDealResponse(deal), "Deal retrieved successfully")
}

// UpdateStatus applies a lifecycle transition to a deal.
func (h *DealHandler) UpdateStatus(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	dealID, err := pathID(c, "dealId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid deal ID")
	}

	var req UpdateDealStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	deal, err := h.dealUC.UpdateStatus(c.Request().Context(), userID, dealID, &usecase.UpdateDealStatusInput{
		Status: entity.DealStatus(req.Status),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newDealResponse(deal), "Deal status updated successfully")
}

// MarkPaid records an external payment against a deal.
func (h *DealHandler) MarkPaid(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	dealID, err := pathID(c, "dealId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid deal ID")
	}

	var req MarkPaidRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	deal, err := h.dealUC.MarkPaid(c.Request().Context(), userID, dealID, &usecase.MarkDealPaidInput{
		PaymentReference: req.PaymentReference,
		PaidAt:           req.PaidAt,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newDealResponse(deal), "Payment recorded successfully")
}
