// Package http is the inbound REST adapter. Handlers translate requests into
// commands and queries, map application errors onto status codes, and emit
// externalized views; no business rule lives here.
package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/application/usecases/commands"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/application/usecases/queries"
)

// tokenIssuer signs session tokens after successful authentication.
type tokenIssuer interface {
	Issue(userID, role string) (string, error)
}

// Server wires the HTTP routes to the application's command and query
// handlers.
type Server struct {
	issuer   tokenIssuer
	verifier tokenVerifier

	// Command handlers
	registerUserHandler       commands.RegisterUserCommandHandler
	createOrderHandler        commands.CreateOrderCommandHandler
	updateOrderHandler        commands.UpdateOrderCommandHandler
	deleteOrderHandler        commands.DeleteOrderCommandHandler
	assignPartnerHandler      commands.AssignPartnerCommandHandler
	updateOrderStatusHandler  commands.UpdateOrderStatusCommandHandler
	updatePartnerHandler      commands.UpdatePartnerCommandHandler
	deletePartnerHandler      commands.DeletePartnerCommandHandler
	updateAvailabilityHandler commands.UpdateAvailabilityCommandHandler

	// Query handlers
	authenticateHandler    queries.AuthenticateQueryHandler
	getProfileHandler      queries.GetProfileQueryHandler
	getOrdersHandler       queries.GetOrdersQueryHandler
	getOrderHandler        queries.GetOrderQueryHandler
	getCurrentOrderHandler queries.GetCurrentOrderQueryHandler
	getPartnersHandler     queries.GetPartnersQueryHandler
	getPartnerStatsHandler queries.GetPartnerStatsQueryHandler
	getWorkloadHandler     queries.GetWorkloadQueryHandler
	getDashboardHandler    queries.GetDashboardStatsQueryHandler
}

// Dependencies bundles everything the server needs. Grouping them spares the
// constructor a two-dozen-parameter signature.
type Dependencies struct {
	Issuer   tokenIssuer
	Verifier tokenVerifier

	RegisterUser       commands.RegisterUserCommandHandler
	CreateOrder        commands.CreateOrderCommandHandler
	UpdateOrder        commands.UpdateOrderCommandHandler
	DeleteOrder        commands.DeleteOrderCommandHandler
	AssignPartner      commands.AssignPartnerCommandHandler
	UpdateOrderStatus  commands.UpdateOrderStatusCommandHandler
	UpdatePartner      commands.UpdatePartnerCommandHandler
	DeletePartner      commands.DeletePartnerCommandHandler
	UpdateAvailability commands.UpdateAvailabilityCommandHandler

	Authenticate    queries.AuthenticateQueryHandler
	GetProfile      queries.GetProfileQueryHandler
	GetOrders       queries.GetOrdersQueryHandler
	GetOrder        queries.GetOrderQueryHandler
	GetCurrentOrder queries.GetCurrentOrderQueryHandler
	GetPartners     queries.GetPartnersQueryHandler
	GetPartnerStats queries.GetPartnerStatsQueryHandler
	GetWorkload     queries.GetWorkloadQueryHandler
	GetDashboard    queries.GetDashboardStatsQueryHandler
}

// NewServer creates the HTTP server from its dependencies.
func NewServer(deps Dependencies) *Server {
	return &Server{
		issuer:                    deps.Issuer,
		verifier:                  deps.Verifier,
		registerUserHandler:       deps.RegisterUser,
		createOrderHandler:        deps.CreateOrder,
		updateOrderHandler:        deps.UpdateOrder,
		deleteOrderHandler:        deps.DeleteOrder,
		assignPartnerHandler:      deps.AssignPartner,
		updateOrderStatusHandler:  deps.UpdateOrderStatus,
		updatePartnerHandler:      deps.UpdatePartner,
		deletePartnerHandler:      deps.DeletePartner,
		updateAvailabilityHandler: deps.UpdateAvailability,
		authenticateHandler:       deps.Authenticate,
		getProfileHandler:         deps.GetProfile,
		getOrdersHandler:          deps.GetOrders,
		getOrderHandler:           deps.GetOrder,
		getCurrentOrderHandler:    deps.GetCurrentOrder,
		getPartnersHandler:        deps.GetPartners,
		getPartnerStatsHandler:    deps.GetPartnerStats,
		getWorkloadHandler:        deps.GetWorkload,
		getDashboardHandler:       deps.GetDashboard,
	}
}

// RegisterRoutes mounts the API under /api.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	api := e.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/register", s.Register)
	authGroup.POST("/login", s.Login)

	profile := authGroup.Group("", authenticate(s.verifier))
	profile.GET("/profile", s.GetProfile)
	profile.PUT("/profile", s.UpdateProfile)

	partners := authGroup.Group("/delivery-partners", authenticate(s.verifier))
	partners.GET("", s.GetPartners, require(capPartnersRead))
	partners.POST("", s.CreatePartner, require(capPartnersManage))
	partners.PUT("/:id", s.UpdatePartner, require(capPartnersManage))
	partners.DELETE("/:id", s.DeletePartner, require(capPartnersManage))

	orders := api.Group("/orders", authenticate(s.verifier))
	orders.POST("", s.CreateOrder, require(capOrdersCreate))
	orders.GET("", s.GetOrders, require(capOrdersRead))
	orders.GET("/stats", s.GetDashboardStats, require(capOrdersStats))
	orders.GET("/:id", s.GetOrder, require(capOrdersRead))
	orders.PUT("/:id", s.UpdateOrder, require(capOrdersUpdate))
	orders.DELETE("/:id", s.DeleteOrder, require(capOrdersDelete))
	orders.POST("/:id/assign", s.AssignPartner, require(capOrdersAssign))
	orders.PUT("/:id/status", s.UpdateOrderStatus, require(capOrdersAdvance))

	delivery := api.Group("/delivery", authenticate(s.verifier))
	delivery.GET("/current-order", s.GetCurrentOrder, require(capDeliverySelf))
	delivery.GET("/order-history", s.GetOrderHistory, require(capDeliverySelf))
	delivery.GET("/stats", s.GetPartnerStats, require(capDeliverySelf))
	delivery.PUT("/availability", s.UpdateAvailability, require(capDeliverySelf))
	delivery.GET("/available", s.GetAvailablePartners, require(capPartnersRead))
	delivery.GET("/workload", s.GetWorkload, require(capPartnersRead))
}
