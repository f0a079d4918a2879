package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/application/presenter"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/application/usecases/commands"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/application/usecases/queries"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/model/order"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/pkg/errs"
)

// GetCurrentOrder handles GET /api/delivery/current-order - the partner's
// non-terminal order, or null when they are idle.
func (s *Server) GetCurrentOrder(c echo.Context) error {
	query, err := queries.NewGetCurrentOrderQuery(principal(c).ID)
	if err != nil {
		return respondError(c, err)
	}

	resp, err := s.getCurrentOrderHandler.Handle(c.Request().Context(), query)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return c.JSON(http.StatusOK, map[string]any{"order": nil})
	}
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{"order": resp})
}

// GetOrderHistory handles GET /api/delivery/order-history - the partner's
// completed deliveries, paginated.
func (s *Server) GetOrderHistory(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	p := principal(c)
	query, err := queries.NewGetOrdersQuery(p.ID, p.Role, page, limit, order.Delivered.External())
	if err != nil {
		return respondError(c, err)
	}

	result, err := s.getOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// GetPartnerStats handles GET /api/delivery/stats - the partner's own
// delivery counters.
func (s *Server) GetPartnerStats(c echo.Context) error {
	query, err := queries.NewGetPartnerStatsQuery(principal(c).ID)
	if err != nil {
		return respondError(c, err)
	}

	stats, err := s.getPartnerStatsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, stats)
}

// UpdateAvailability handles PUT /api/delivery/availability - the partner's
// own readiness toggle.
func (s *Server) UpdateAvailability(c echo.Context) error {
	var req updateAvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "invalid request body"})
	}

	cmd, err := commands.NewUpdateAvailabilityCommand(principal(c).ID, req.IsAvailable)
	if err != nil {
		return respondError(c, err)
	}

	updated, err := s.updateAvailabilityHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, presenter.UserToView(updated))
}

// GetAvailablePartners handles GET /api/delivery/available - the candidate
// pool for assignment: available partners with no current order.
func (s *Server) GetAvailablePartners(c echo.Context) error {
	partners, err := s.getPartnersHandler.Handle(c.Request().Context(), queries.NewGetPartnersQuery(true))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, partners)
}

// GetWorkload handles GET /api/delivery/workload - per-partner active order
// counts and today's deliveries.
func (s *Server) GetWorkload(c echo.Context) error {
	workload, err := s.getWorkloadHandler.Handle(c.Request().Context(), queries.NewGetWorkloadQuery())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, workload)
}
