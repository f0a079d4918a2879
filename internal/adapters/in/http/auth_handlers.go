package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/application/presenter"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/application/usecases/commands"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/application/usecases/queries"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/model/kernel"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/model/user"
)

// authResponse is returned by register and login: the session token plus the
// user it identifies.
type authResponse struct {
	Token string `json:"token"`
	User  any    `json:"user"`
}

// Register handles POST /api/auth/register - self-service signup.
func (s *Server) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "invalid request body"})
	}

	role, err := user.RoleFromString(req.Role)
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewRegisterUserCommand(
		kernel.NewUUID(),
		req.Username,
		req.Email,
		req.Password,
		role,
		req.EstimatedDeliveryTime,
	)
	if err != nil {
		return respondError(c, err)
	}

	created, err := s.registerUserHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}

	token, err := s.issuer.Issue(created.ID().String(), created.Role().String())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, authResponse{
		Token: token,
		User:  presenter.UserToView(created),
	})
}

// Login handles POST /api/auth/login - credential verification and token issue.
func (s *Server) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "invalid request body"})
	}

	query, err := queries.NewAuthenticateQuery(req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	authenticated, err := s.authenticateHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	token, err := s.issuer.Issue(authenticated.ID, authenticated.Role)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, authResponse{
		Token: token,
		User:  authenticated,
	})
}

// GetProfile handles GET /api/auth/profile - the authenticated user's profile.
func (s *Server) GetProfile(c echo.Context) error {
	query, err := queries.NewGetProfileQuery(principal(c).ID)
	if err != nil {
		return respondError(c, err)
	}

	profile, err := s.getProfileHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, profile)
}

// UpdateProfile handles PUT /api/auth/profile - username and, for partners,
// ETA updates on the caller's own account.
func (s *Server) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "invalid request body"})
	}

	cmd, err := commands.NewUpdatePartnerCommand(principal(c).ID, req.Username, req.EstimatedDeliveryTime)
	if err != nil {
		return respondError(c, err)
	}

	updated, err := s.updatePartnerHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, presenter.UserToView(updated))
}

// GetPartners handles GET /api/auth/delivery-partners - the full roster.
func (s *Server) GetPartners(c echo.Context) error {
	partners, err := s.getPartnersHandler.Handle(c.Request().Context(), queries.NewGetPartnersQuery(false))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, partners)
}

// CreatePartner handles POST /api/auth/delivery-partners - manager-issued
// partner accounts.
func (s *Server) CreatePartner(c echo.Context) error {
	var req createPartnerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "invalid request body"})
	}

	cmd, err := commands.NewRegisterUserCommand(
		kernel.NewUUID(),
		req.Username,
		req.Email,
		req.Password,
		user.DeliveryPartner,
		req.EstimatedDeliveryTime,
	)
	if err != nil {
		return respondError(c, err)
	}

	created, err := s.registerUserHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, presenter.UserToView(created))
}

// UpdatePartner handles PUT /api/auth/delivery-partners/:id.
func (s *Server) UpdatePartner(c echo.Context) error {
	partnerID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "invalid partner id"})
	}

	var req updatePartnerRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "invalid request body"})
	}

	cmd, err := commands.NewUpdatePartnerCommand(partnerID, req.Username, req.EstimatedDeliveryTime)
	if err != nil {
		return respondError(c, err)
	}

	updated, err := s.updatePartnerHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, presenter.UserToView(updated))
}

// DeletePartner handles DELETE /api/auth/delivery-partners/:id.
func (s *Server) DeletePartner(c echo.Context) error {
	partnerID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "invalid partner id"})
	}

	cmd, err := commands.NewDeletePartnerCommand(partnerID)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.deletePartnerHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
