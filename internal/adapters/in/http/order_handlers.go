package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/application/presenter"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/application/usecases/commands"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/application/usecases/queries"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/model/kernel"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/model/order"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/model/user"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/pkg/errs"
)

func toItemInputs(items []itemRequest) []commands.ItemInput {
	inputs := make([]commands.ItemInput, 0, len(items))
	for _, item := range items {
		inputs = append(inputs, commands.ItemInput{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}
	return inputs
}

// CreateOrder handles POST /api/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "invalid request body"})
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		toItemInputs(req.Items),
		req.PrepTime,
		commands.CustomerInput{
			Name:    req.CustomerInfo.Name,
			Phone:   req.CustomerInfo.Phone,
			Address: req.CustomerInfo.Address,
		},
		principal(c).ID,
	)
	if err != nil {
		return respondError(c, err)
	}

	created, err := s.createOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, presenter.OrderToView(created))
}

// GetOrders handles GET /api/orders - paginated, role-scoped listing.
func (s *Server) GetOrders(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	p := principal(c)
	query, err := queries.NewGetOrdersQuery(p.ID, p.Role, page, limit, c.QueryParam("status"))
	if err != nil {
		return respondError(c, err)
	}

	result, err := s.getOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// GetOrder handles GET /api/orders/:id. A delivery partner may only read an
// order bound to them.
func (s *Server) GetOrder(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "invalid order id"})
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(c, err)
	}

	resp, err := s.getOrderHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	p := principal(c)
	if p.Role == user.DeliveryPartner {
		if resp.PartnerID == nil || *resp.PartnerID != p.ID.String() {
			return respondError(c, errs.NewForbiddenError("order is assigned to a different delivery partner"))
		}
	}

	return c.JSON(http.StatusOK, resp)
}

// UpdateOrder handles PUT /api/orders/:id - pre-pickup edits.
func (s *Server) UpdateOrder(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "invalid order id"})
	}

	var req updateOrderRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "invalid request body"})
	}

	cmd, err := commands.NewUpdateOrderCommand(
		orderID,
		toItemInputs(req.Items),
		req.PrepTime,
		commands.CustomerInput{
			Name:    req.CustomerInfo.Name,
			Phone:   req.CustomerInfo.Phone,
			Address: req.CustomerInfo.Address,
		},
	)
	if err != nil {
		return respondError(c, err)
	}

	updated, err := s.updateOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, presenter.OrderToView(updated))
}

// DeleteOrder handles DELETE /api/orders/:id - pre-pickup deletion.
func (s *Server) DeleteOrder(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "invalid order id"})
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.deleteOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// AssignPartner handles POST /api/orders/:id/assign.
func (s *Server) AssignPartner(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "invalid order id"})
	}

	var req assignPartnerRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "invalid request body"})
	}

	partnerID, err := kernel.UUIDFromString(req.DeliveryPartnerID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "invalid partner id"})
	}

	cmd, err := commands.NewAssignPartnerCommand(orderID, partnerID)
	if err != nil {
		return respondError(c, err)
	}

	assigned, err := s.assignPartnerHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, presenter.OrderToView(assigned))
}

// UpdateOrderStatus handles PUT /api/orders/:id/status. The request carries
// the external vocabulary; unmapped names are rejected here, before any
// command is built.
func (s *Server) UpdateOrderStatus(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "invalid order id"})
	}

	var req updateStatusRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "invalid request body"})
	}

	target, err := order.StatusFromExternal(req.Status)
	if err != nil {
		return respondError(c, err)
	}

	p := principal(c)
	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, target, p.ID, p.Role)
	if err != nil {
		return respondError(c, err)
	}

	updated, err := s.updateOrderStatusHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, presenter.OrderToView(updated))
}

// GetDashboardStats handles GET /api/orders/stats.
func (s *Server) GetDashboardStats(c echo.Context) error {
	stats, err := s.getDashboardHandler.Handle(c.Request().Context(), queries.NewGetDashboardStatsQuery())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, stats)
}
