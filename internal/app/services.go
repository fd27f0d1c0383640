package app

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/mentorly/mentorly_backend/config"
	"github.com/mentorly/mentorly_backend/internal/repo"
	"github.com/mentorly/mentorly_backend/internal/service/auth"
	"github.com/mentorly/mentorly_backend/internal/service/booking"
	"github.com/mentorly/mentorly_backend/internal/service/offering"
	"github.com/mentorly/mentorly_backend/internal/service/schedule"
	"github.com/mentorly/mentorly_backend/internal/service/user"
	pasetotoken "github.com/mentorly/mentorly_backend/pkg/paseto"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideUserService,
		ProvideAuthService,
		ProvideOfferingService,
		ProvideScheduleService,
		ProvideBookingService,
		ProvidePasetoManager,
	),
)

func ProvideUserService(db *repo.Client) user.Service {
	return user.New(db)
}

func ProvideAuthService(
	db *repo.Client,
	rdb *redis.Client,
	paseto *pasetotoken.Manager,
	cfg *config.Config,
) auth.Service {
	return auth.New(db, rdb, paseto, cfg)
}

func ProvideOfferingService(db *repo.Client) offering.Service {
	return offering.New(db)
}

func ProvideScheduleService(db *repo.Client) schedule.Service {
	return schedule.New(db)
}

func ProvideBookingService(db *repo.Client, cfg *config.Config) booking.Service {
	return booking.New(db, cfg.Booking.HorizonDays)
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}
