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

// InspectionHandlerParams holds dependencies for InspectionHandler, injected by Fx.
type InspectionHandlerParams struct {
	fx.In

	InspectionUC usecase.InspectionUsecase
	Config       *config.Config
	Logger       *slog.Logger
}

// InspectionHandler holds dependencies for viewing scheduler handlers.
type InspectionHandler struct {
	inspectionUC usecase.InspectionUsecase
	cfg          *config.Config
	logger       *slog.Logger
}

// NewInspectionHandler is the constructor for InspectionHandler.
func NewInspectionHandler(params InspectionHandlerParams) *InspectionHandler {
	return &InspectionHandler{
		inspectionUC: params.InspectionUC,
		cfg:          params.Config,
		logger:       params.Logger,
	}
}

// RequestInspectionRequest represents the request body for booking a viewing.
type RequestInspectionRequest struct {
	PropertyID     uuid.UUID  `json:"property_id" validate:"required"`
	AgentID        *uuid.UUID `json:"agent_id,omitempty"`
	PreferredDate  time.Time  `json:"preferred_date" validate:"required"`
	PreferredTime  string     `json:"preferred_time" validate:"required"`
	RequesterNotes string     `json:"requester_notes,omitempty"`
}

// UpdateInspectionRequest represents the request body for inspection updates.
type UpdateInspectionRequest struct {
	Status         *string    `json:"status,omitempty"`
	PreferredDate  *time.Time `json:"preferred_date,omitempty"`
	PreferredTime  *string    `json:"preferred_time,omitempty"`
	RequesterNotes *string    `json:"requester_notes,omitempty"`
	AgentNotes     *string    `json:"agent_notes,omitempty"`
}

// AssignAgentRequest represents the privileged agent assignment body.
type AssignAgentRequest struct {
	AgentID uuid.UUID `json:"agent_id" validate:"required"`
}

// Request handles booking a viewing. The caller becomes the requester.
func (h *InspectionHandler) Request(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req RequestInspectionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid inspection input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	inspection, err := h.inspectionUC.Request(c.Request().Context(), userID, &usecase.RequestInspectionInput{
		PropertyID:     req.PropertyID,
		AgentID:        req.AgentID,
		PreferredDate:  req.PreferredDate,
		PreferredTime:  req.PreferredTime,
		RequesterNotes: req.RequesterNotes,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newInspectionResponse(inspection), "Inspection requested successfully")
}

// List handles retrieval of the caller's inspections.
func (h *InspectionHandler) List(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	propertyID, err := queryUUID(c, "property_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid property ID")
	}

	agentID, err := queryUUID(c, "agent_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid agent ID")
	}

	input := &usecase.ListInspectionsInput{
		Status:     entity.InspectionStatus(c.QueryParam("status")),
		PropertyID: propertyID,
		AgentID:    agentID,
	}
	if raw := c.QueryParam("preferred_date"); raw != "" {
		date, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid preferred date, expected YYYY-MM-DD")
		}
		input.PreferredDate = &date
	}
	input.Limit, input.Offset = pagination(c, h.cfg)

	inspections, err := h.inspectionUC.List(c.Request().Context(), userID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newInspectionResponses(inspections), "Inspections retrieved successfully")
}

// Get handles retrieval of a single inspection.
func (h *InspectionHandler) Get(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	inspectionID, err := pathID(c, "inspectionId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid inspection ID")
	}

	inspection, err := h.inspectionUC.Get(c.Request().Context(), userID, inspectionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newInspectionResponse(inspection), "Inspection retrieved successfully")
}

// Update handles party updates to an inspection.
func (h *InspectionHandler) Update(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	inspectionID, err := pathID(c, "inspectionId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid inspection ID")
	}

	var req UpdateInspectionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid inspection input")
	}

	input := &usecase.UpdateInspectionInput{
		PreferredDate:  req.PreferredDate,
		PreferredTime:  req.PreferredTime,
		RequesterNotes: req.RequesterNotes,
		AgentNotes:     req.AgentNotes,
	}
	if req.Status != nil {
		status := entity.InspectionStatus(*req.Status)
		input.Status = &status
	}

	inspection, err := h.inspectionUC.Update(c.Request().Context(), userID, inspectionID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newInspectionResponse(inspection), "Inspection updated successfully")
}

// Confirm records the caller's side of the two-party confirmation handshake.
func (h *InspectionHandler) Confirm(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	inspectionID, err := pathID(c, "inspectionId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid inspection ID")
	}

	inspection, err := h.inspectionUC.Confirm(c.Request().Context(), userID, inspectionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newInspectionResponse(inspection), "Inspection confirmation recorded")
}

// AssignAgent handles the privileged agent assignment.
func (h *InspectionHandler) AssignAgent(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	inspectionID, err := pathID(c, "inspectionId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid inspection ID")
	}

	var req AssignAgentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid assignment input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	inspection, err := h.inspectionUC.AssignAgent(c.Request().Context(), userID, inspectionID, req.AgentID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newInspectionResponse(inspection), "Agent assigned successfully")
}

// Delete handles inspection removal by its requester.
func (h *InspectionHandler) Delete(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	inspectionID, err := pathID(c, "inspectionId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid inspection ID")
	}

	if err := h.inspectionUC.Delete(c.Request().Context(), userID, inspectionID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Inspection deleted"}, "Inspection deleted successfully")
}
