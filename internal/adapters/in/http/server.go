// Package http is the inbound HTTP adapter. Handlers are thin: they parse
// the request, build a command or query, call its handler and translate the
// result to a status code. No business logic lives here.
package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"ordertrack/internal/core/application/usecases/commands"
	"ordertrack/internal/core/application/usecases/queries"
	"ordertrack/internal/core/domain/model/delivery"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/notification"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	confirmOrderHandler      commands.ConfirmOrderCommandHandler
	startDeliveryHandler     commands.StartOrderDeliveryCommandHandler
	confirmDeliveryHandler   commands.ConfirmDeliveryCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler
	updateDescriptionHandler commands.UpdateOrderDescriptionCommandHandler
	updateAddressHandler     commands.UpdateOrderDeliveryAddressCommandHandler
	deleteOrderHandler       commands.DeleteOrderCommandHandler
	markNotificationRead     commands.MarkNotificationReadCommandHandler
	markNotificationUnread   commands.MarkNotificationUnreadCommandHandler
	markAllNotificationsRead commands.MarkAllNotificationsReadCommandHandler

	// Query handlers
	listOrdersHandler       queries.ListOrdersQueryHandler
	getNotificationsHandler queries.GetNotificationsQueryHandler
	getUnreadCountHandler   queries.GetUnreadNotificationCountQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	confirmOrderHandler commands.ConfirmOrderCommandHandler,
	startDeliveryHandler commands.StartOrderDeliveryCommandHandler,
	confirmDeliveryHandler commands.ConfirmDeliveryCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	updateDescriptionHandler commands.UpdateOrderDescriptionCommandHandler,
	updateAddressHandler commands.UpdateOrderDeliveryAddressCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	markNotificationRead commands.MarkNotificationReadCommandHandler,
	markNotificationUnread commands.MarkNotificationUnreadCommandHandler,
	markAllNotificationsRead commands.MarkAllNotificationsReadCommandHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getNotificationsHandler queries.GetNotificationsQueryHandler,
	getUnreadCountHandler queries.GetUnreadNotificationCountQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		confirmOrderHandler:      confirmOrderHandler,
		startDeliveryHandler:     startDeliveryHandler,
		confirmDeliveryHandler:   confirmDeliveryHandler,
		cancelOrderHandler:       cancelOrderHandler,
		updateDescriptionHandler: updateDescriptionHandler,
		updateAddressHandler:     updateAddressHandler,
		deleteOrderHandler:       deleteOrderHandler,
		markNotificationRead:     markNotificationRead,
		markNotificationUnread:   markNotificationUnread,
		markAllNotificationsRead: markAllNotificationsRead,
		listOrdersHandler:        listOrdersHandler,
		getNotificationsHandler:  getNotificationsHandler,
		getUnreadCountHandler:    getUnreadCountHandler,
	}
}

// RegisterRoutes mounts every endpoint on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.POST("/orders/:orderId/confirm", s.ConfirmOrder)
	api.POST("/orders/:orderId/start-delivery", s.StartDelivery)
	api.POST("/orders/:orderId/confirm-delivery", s.ConfirmDelivery)
	api.POST("/orders/:orderId/cancel", s.CancelOrder)
	api.PATCH("/orders/:orderId/description", s.UpdateDescription)
	api.PATCH("/orders/:orderId/address", s.UpdateAddress)
	api.DELETE("/orders/:orderId", s.DeleteOrder)

	api.GET("/users/:userId/notifications", s.GetNotifications)
	api.GET("/users/:userId/notifications/unread-count", s.GetUnreadNotificationCount)
	api.POST("/users/:userId/notifications/read-all", s.MarkAllNotificationsRead)
	api.POST("/users/:userId/notifications/:notificationId/read", s.MarkNotificationRead)
	api.POST("/users/:userId/notifications/:notificationId/unread", s.MarkNotificationUnread)
}

// ErrorResponse is the JSON error body returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}

// writeDomainError maps application and domain errors to HTTP status codes.
func writeDomainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrConflict),
		errors.Is(err, order.ErrCancelOrderInTransit),
		errors.Is(err, order.ErrCancelOrderDelivered),
		errors.Is(err, order.ErrOrderIsNotPending),
		errors.Is(err, order.ErrStatusUnchanged),
		errors.Is(err, delivery.ErrOrderIsNotInTransit),
		errors.Is(err, notification.ErrAlreadyRead),
		errors.Is(err, notification.ErrAlreadyUnread):
		return errorJSON(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	default:
		return errorJSON(ctx, http.StatusInternalServerError, err.Error())
	}
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	UserID        string `json:"user_id"`
	Description   string `json:"description"`
	Value         string `json:"value"`
	CEP           string `json:"cep"`
	AddressNumber string `json:"address_number"`
	Complement    string `json:"complement"`
}

// CreateOrderResponse returns the id assigned to the new order.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid user id: "+err.Error())
	}

	value, err := decimal.NewFromString(req.Value)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order value: "+err.Error())
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, userID, req.Description, value, req.CEP, req.AddressNumber, req.Complement)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeDomainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// ListOrders handles GET /api/v1/orders with optional user_id, status,
// cursor and limit query parameters.
func (s *Server) ListOrders(ctx echo.Context) error {
	var userID *kernel.UUID
	if raw := ctx.QueryParam("user_id"); raw != "" {
		parsed, err := kernel.UUIDFromString(raw)
		if err != nil {
			return errorJSON(ctx, http.StatusBadRequest, "Invalid user id: "+err.Error())
		}
		userID = &parsed
	}

	var status *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := order.StatusFromString(raw)
		if err != nil {
			return errorJSON(ctx, http.StatusBadRequest, "Invalid status: "+err.Error())
		}
		status = &parsed
	}

	limit := 0
	if raw := ctx.QueryParam("limit"); raw != "" {
		if err := echo.QueryParamsBinder(ctx).Int("limit", &limit).BindError(); err != nil {
			return errorJSON(ctx, http.StatusBadRequest, "Invalid limit")
		}
	}

	query, err := queries.NewListOrdersQuery(userID, status, ctx.QueryParam("cursor"), limit)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	page, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, page)
}

func (s *Server) ConfirmOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewConfirmOrderCommand(orderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	if handleErr := s.confirmOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeDomainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) StartDelivery(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewStartOrderDeliveryCommand(orderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	if handleErr := s.startDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeDomainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmDeliveryRequest is the body of POST /api/v1/orders/:orderId/confirm-delivery.
type ConfirmDeliveryRequest struct {
	DelivererID string `json:"deliverer_id"`
}

func (s *Server) ConfirmDelivery(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	var req ConfirmDeliveryRequest
	if err = ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	delivererID, err := kernel.UUIDFromString(req.DelivererID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid deliverer id: "+err.Error())
	}

	cmd, err := commands.NewConfirmDeliveryCommand(orderID, delivererID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	if handleErr := s.confirmDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeDomainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeDomainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateDescriptionRequest is the body of PATCH /api/v1/orders/:orderId/description.
type UpdateDescriptionRequest struct {
	Description string `json:"description"`
}

func (s *Server) UpdateDescription(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	var req UpdateDescriptionRequest
	if err = ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewUpdateOrderDescriptionCommand(orderID, req.Description)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	if handleErr := s.updateDescriptionHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeDomainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateAddressRequest is the body of PATCH /api/v1/orders/:orderId/address.
type UpdateAddressRequest struct {
	CEP           string `json:"cep"`
	AddressNumber string `json:"address_number"`
	Complement    string `json:"complement"`
}

func (s *Server) UpdateAddress(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	var req UpdateAddressRequest
	if err = ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewUpdateOrderDeliveryAddressCommand(orderID, req.CEP, req.AddressNumber, req.Complement)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	if handleErr := s.updateAddressHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeDomainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	if handleErr := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeDomainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetNotifications handles GET /api/v1/users/:userId/notifications.
// Pass unread_only=true to restrict the listing to unread notifications.
func (s *Server) GetNotifications(ctx echo.Context) error {
	userID, err := pathUUID(ctx, "userId")
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid user id: "+err.Error())
	}

	unreadOnly := ctx.QueryParam("unread_only") == "true"

	query, err := queries.NewGetNotificationsQuery(userID, unreadOnly)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	notifications, err := s.getNotificationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, notifications)
}

// UnreadCountResponse is the body of GET /api/v1/users/:userId/notifications/unread-count.
type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

func (s *Server) GetUnreadNotificationCount(ctx echo.Context) error {
	userID, err := pathUUID(ctx, "userId")
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid user id: "+err.Error())
	}

	query, err := queries.NewGetUnreadNotificationCountQuery(userID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	count, err := s.getUnreadCountHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, UnreadCountResponse{Count: count})
}

// MarkAllReadResponse reports how many notifications the sweep touched.
type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}

func (s *Server) MarkAllNotificationsRead(ctx echo.Context) error {
	userID, err := pathUUID(ctx, "userId")
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid user id: "+err.Error())
	}

	cmd, err := commands.NewMarkAllNotificationsReadCommand(userID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	updated, err := s.markAllNotificationsRead.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, MarkAllReadResponse{Updated: updated})
}

func (s *Server) MarkNotificationRead(ctx echo.Context) error {
	userID, err := pathUUID(ctx, "userId")
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid user id: "+err.Error())
	}

	notificationID, err := pathUUID(ctx, "notificationId")
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid notification id: "+err.Error())
	}

	cmd, err := commands.NewMarkNotificationReadCommand(notificationID, userID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	if handleErr := s.markNotificationRead.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeDomainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) MarkNotificationUnread(ctx echo.Context) error {
	userID, err := pathUUID(ctx, "userId")
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid user id: "+err.Error())
	}

	notificationID, err := pathUUID(ctx, "notificationId")
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid notification id: "+err.Error())
	}

	cmd, err := commands.NewMarkNotificationUnreadCommand(notificationID, userID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	if handleErr := s.markNotificationUnread.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeDomainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}
