package bootstrap

import (
	"shalean-booking-api/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.CORSConfig { return cfg.CORS },
		func(cfg config.Config) config.LogConfig { return cfg.Log },
		func(cfg config.Config) config.CookieConfig { return cfg.Cookie },
		func(cfg config.Config) config.JWTConfig { return cfg.JWT },
		func(cfg config.Config) config.BookingConfig { return cfg.Booking },
		func(cfg config.Config) config.PaymentConfig { return cfg.Payment },
		func(cfg config.Config) config.MailConfig { return cfg.Mail },
	),
)
