package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/mentorly/mentorly_backend/config"
	"github.com/mentorly/mentorly_backend/internal/api/http/handler"
	"github.com/mentorly/mentorly_backend/internal/api/http/middleware"
	"github.com/mentorly/mentorly_backend/internal/service/auth"
	"github.com/mentorly/mentorly_backend/internal/service/booking"
	"github.com/mentorly/mentorly_backend/internal/service/offering"
	"github.com/mentorly/mentorly_backend/internal/service/schedule"
	"github.com/mentorly/mentorly_backend/internal/service/user"
	pasetotoken "github.com/mentorly/mentorly_backend/pkg/paseto"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg         *config.Config
	Redis       *redis.Client
	UserSvc     user.Service
	AuthSvc     auth.Service
	OfferingSvc offering.Service
	ScheduleSvc schedule.Service
	BookingSvc  booking.Service
	PasetoMgr   *pasetotoken.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health probes
	r.registerSystemRoutes(app)

	// 2. Middlewares
	authRequired := middleware.AuthRequired(r.p.PasetoMgr, r.p.Redis)
	mentorOnly := middleware.RequireRole("mentor")

	// 3. Handlers
	authH := handler.NewAuthHandler(r.p.AuthSvc)
	userH := handler.NewUserHandler(r.p.UserSvc)
	offeringH := handler.NewOfferingHandler(r.p.OfferingSvc, r.p.BookingSvc)
	availabilityH := handler.NewAvailabilityHandler(r.p.ScheduleSvc)
	bookingH := handler.NewBookingHandler(r.p.BookingSvc)

	api := app.Group("/api/v1")

	// 4. Delegate to sub-files
	r.registerAuthRoutes(api, authH, authRequired)
	r.registerUserRoutes(api, userH, authRequired)
	r.registerOfferingRoutes(api, offeringH, authRequired, mentorOnly)
	r.registerAvailabilityRoutes(api, availabilityH, authRequired, mentorOnly)
	r.registerBookingRoutes(api, bookingH, authRequired)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New())
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())
}
