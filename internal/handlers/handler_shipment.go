package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dpackchain/package_tracking_app/internal/apperrors"
	portssvc "github.com/dpackchain/package_tracking_app/internal/core/ports/services"
	"github.com/dpackchain/package_tracking_app/internal/dto"
	"github.com/dpackchain/package_tracking_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// shipmentHandler handles HTTP requests related to shipments.
type shipmentHandler struct {
	shipmentService portssvc.ShipmentSvcFacade
}

// newShipmentHandler creates a new shipmentHandler.
func newShipmentHandler(ss portssvc.ShipmentSvcFacade) *shipmentHandler {
	return &shipmentHandler{
		shipmentService: ss,
	}
}

// RegisterShipmentRoutes registers routes related to shipments.
func RegisterShipmentRoutes(rg *gin.RouterGroup, shipmentService portssvc.ShipmentSvcFacade) {
	h := newShipmentHandler(shipmentService)

	shipments := rg.Group("/shipments")
	{
		shipments.POST("", h.registerShipment)
		shipments.GET("", h.listShipments)
		shipments.GET("/count", h.countShipments)
		shipments.GET("/:trackingID", h.getShipment)
		shipments.PATCH("/:trackingID/status", h.updateStatus)
		shipments.POST("/:trackingID/delivery", h.confirmDelivery)
	}
}

// registerShipment godoc
// @Summary Register a new shipment
// @Description Registers a new shipment owned by the authenticated actor and returns its tracking ID
// @Tags shipments
// @Accept  json
// @Produce  json
// @Param   shipment body dto.RegisterShipmentRequest true "Shipment details"
// @Success 201 {object} dto.RegisterShipmentResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Tracking ID already exists"
// @Failure 500 {object} map[string]string "Failed to register shipment"
// @Security BearerAuth
// @Router /shipments [post]
func (h *shipmentHandler) registerShipment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RegisterShipment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		logger.Error("Actor identity not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	shipment, err := h.shipmentService.RegisterShipment(c.Request.Context(), req, actor)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error registering shipment", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrDuplicate):
			logger.Warn("Duplicate tracking ID", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": "Tracking ID already exists"})
		default:
			logger.Error("Failed to register shipment in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register shipment"})
		}
		return
	}

	logger.Info("Shipment registered successfully", slog.String("tracking_id", shipment.TrackingID))
	c.JSON(http.StatusCreated, dto.RegisterShipmentResponse{TrackingID: shipment.TrackingID})
}

// getShipment godoc
// @Summary Get a shipment by tracking ID
// @Description Retrieves a shipment and its full status history
// @Tags shipments
// @Produce  json
// @Param   trackingID path string true "Tracking ID"
// @Success 200 {object} dto.TrackingResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Shipment not found"
// @Failure 500 {object} map[string]string "Failed to retrieve shipment"
// @Security BearerAuth
// @Router /shipments/{trackingID} [get]
func (h *shipmentHandler) getShipment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	trackingID := c.Param("trackingID")

	shipment, history, err := h.shipmentService.GetShipment(c.Request.Context(), trackingID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Shipment not found", slog.String("tracking_id", trackingID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Shipment not found"})
		} else {
			logger.Error("Failed to get shipment from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve shipment"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTrackingResponse(shipment, history))
}

// updateStatus godoc
// @Summary Update a shipment's status
// @Description Moves a shipment to a forward status; only the shipment's sender may call this
// @Tags shipments
// @Accept  json
// @Produce  json
// @Param   trackingID path string true "Tracking ID"
// @Param   update body dto.UpdateStatusRequest true "Status update details"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Actor is not the sender"
// @Failure 404 {object} map[string]string "Shipment not found"
// @Failure 409 {object} map[string]string "Invalid status transition"
// @Failure 500 {object} map[string]string "Failed to update status"
// @Security BearerAuth
// @Router /shipments/{trackingID}/status [patch]
func (h *shipmentHandler) updateStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	trackingID := c.Param("trackingID")

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		logger.Error("Actor identity not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("tracking_id", trackingID))

	err := h.shipmentService.UpdateShipmentStatus(c.Request.Context(), trackingID, req, actor)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Shipment not found for status update")
			c.JSON(http.StatusNotFound, gin.H{"error": "Shipment not found"})
		case errors.Is(err, apperrors.ErrForbidden):
			logger.Warn("Status update forbidden", slog.String("error", err.Error()))
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrInvalidTransition):
			logger.Warn("Invalid status transition", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update shipment status in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		}
		return
	}

	logger.Info("Shipment status updated successfully")
	c.Status(http.StatusNoContent)
}

// confirmDelivery godoc
// @Summary Confirm delivery of a shipment
// @Description Marks a shipment delivered; only the shipment's receiver may call this
// @Tags shipments
// @Produce  json
// @Param   trackingID path string true "Tracking ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Actor is not the receiver"
// @Failure 404 {object} map[string]string "Shipment not found"
// @Failure 409 {object} map[string]string "Already delivered or terminal"
// @Failure 500 {object} map[string]string "Failed to confirm delivery"
// @Security BearerAuth
// @Router /shipments/{trackingID}/delivery [post]
func (h *shipmentHandler) confirmDelivery(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	trackingID := c.Param("trackingID")

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		logger.Error("Actor identity not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("tracking_id", trackingID))

	err := h.shipmentService.ConfirmDelivery(c.Request.Context(), trackingID, actor)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Shipment not found for delivery confirmation")
			c.JSON(http.StatusNotFound, gin.H{"error": "Shipment not found"})
		case errors.Is(err, apperrors.ErrForbidden):
			logger.Warn("Delivery confirmation forbidden", slog.String("error", err.Error()))
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrAlreadyDelivered):
			logger.Warn("Shipment already delivered")
			c.JSON(http.StatusConflict, gin.H{"error": "Shipment already delivered"})
		case errors.Is(err, apperrors.ErrInvalidTransition):
			logger.Warn("Invalid delivery confirmation", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to confirm delivery in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to confirm delivery"})
		}
		return
	}

	logger.Info("Delivery confirmed successfully")
	c.Status(http.StatusNoContent)
}

// listShipments godoc
// @Summary List tracking IDs by party
// @Description Returns tracking IDs for a sender or receiver in registration order; exactly one of the two query params must be set
// @Tags shipments
// @Produce  json
// @Param   sender query string false "Sender identity"
// @Param   receiver query string false "Receiver identity"
// @Success 200 {object} dto.ListShipmentsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list shipments"
// @Security BearerAuth
// @Router /shipments [get]
func (h *shipmentHandler) listShipments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sender := c.Query("sender")
	receiver := c.Query("receiver")

	if (sender == "") == (receiver == "") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Exactly one of sender or receiver must be provided"})
		return
	}

	var (
		ids []string
		err error
	)
	if sender != "" {
		ids, err = h.shipmentService.ListShipmentsBySender(c.Request.Context(), sender)
	} else {
		ids, err = h.shipmentService.ListShipmentsByReceiver(c.Request.Context(), receiver)
	}
	if err != nil {
		logger.Error("Failed to list shipments from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list shipments"})
		return
	}

	c.JSON(http.StatusOK, dto.ListShipmentsResponse{TrackingIDs: ids})
}

// countShipments godoc
// @Summary Get total number of shipments
// @Description Returns the total number of shipments ever registered
// @Tags shipments
// @Produce  json
// @Success 200 {object} dto.CountShipmentsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to count shipments"
// @Security BearerAuth
// @Router /shipments/count [get]
func (h *shipmentHandler) countShipments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	total, err := h.shipmentService.TotalShipments(c.Request.Context())
	if err != nil {
		logger.Error("Failed to count shipments from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count shipments"})
		return
	}

	c.JSON(http.StatusOK, dto.CountShipmentsResponse{Total: total})
}
