package cmd

import (
	"log/slog"
	"time"

	"gorm.io/gorm"

	httpadapter "github.com/harshitg927/Zomato-Ops-Pro/internal/adapters/in/http"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/adapters/out/postgres"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/adapters/ws"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/application/usecases/commands"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/application/usecases/queries"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/jobs"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/pkg/auth"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory

	hasher       auth.PasswordHasher
	tokenManager auth.TokenManager

	hub    *ws.Hub
	logger *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, tokenTTL time.Duration, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:       gormDB,
		uowFactory:   postgres.NewGormUnitOfWorkFactory(gormDB),
		hasher:       auth.NewPasswordHasher(0),
		tokenManager: auth.NewTokenManager(configs.JWTSecret, tokenTTL),
		hub:          ws.NewHub(logger),
		logger:       logger,
	}
}

func (c *CompositionRoot) Hub() *ws.Hub {
	return c.hub
}

func (c *CompositionRoot) CreateWebSocketHandler() *ws.Handler {
	return ws.NewHandler(c.hub, c.tokenManager)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Dependencies{
		Issuer:   c.tokenManager,
		Verifier: c.tokenManager,

		RegisterUser:       commands.NewRegisterUserCommandHandler(c.userUoWFactory(), c.hasher, c.hub),
		CreateOrder:        commands.NewCreateOrderCommandHandler(c.crossUoWFactory(), c.hub),
		UpdateOrder:        commands.NewUpdateOrderCommandHandler(c.crossUoWFactory(), c.hub),
		DeleteOrder:        commands.NewDeleteOrderCommandHandler(c.crossUoWFactory(), c.hub),
		AssignPartner:      commands.NewAssignPartnerCommandHandler(c.crossUoWFactory(), c.hub),
		UpdateOrderStatus:  commands.NewUpdateOrderStatusCommandHandler(c.crossUoWFactory(), c.hub),
		UpdatePartner:      commands.NewUpdatePartnerCommandHandler(c.crossUoWFactory(), c.hub),
		DeletePartner:      commands.NewDeletePartnerCommandHandler(c.userUoWFactory(), c.hub),
		UpdateAvailability: commands.NewUpdateAvailabilityCommandHandler(c.userUoWFactory(), c.hub),

		Authenticate:    queries.NewAuthenticateQueryHandler(c.gormDB, c.hasher),
		GetProfile:      queries.NewGetProfileQueryHandler(c.gormDB),
		GetOrders:       queries.NewGetOrdersQueryHandler(c.gormDB),
		GetOrder:        queries.NewGetOrderQueryHandler(c.gormDB),
		GetCurrentOrder: queries.NewGetCurrentOrderQueryHandler(c.gormDB),
		GetPartners:     queries.NewGetPartnersQueryHandler(c.gormDB),
		GetPartnerStats: queries.NewGetPartnerStatsQueryHandler(c.gormDB),
		GetWorkload:     queries.NewGetWorkloadQueryHandler(c.gormDB),
		GetDashboard:    queries.NewGetDashboardStatsQueryHandler(c.gormDB),
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	reconcileHandler := commands.NewReconcileAvailabilityCommandHandler(c.crossUoWFactory(), c.hub)
	return jobs.NewJobManager(reconcileHandler, c.logger)
}

func (c *CompositionRoot) crossUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}
