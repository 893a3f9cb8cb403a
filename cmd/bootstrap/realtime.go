package bootstrap

import (
	"log/slog"

	"booking-system/internal/pkg/config"
	"booking-system/internal/realtime"
	"booking-system/internal/usecase/commands"

	"go.uber.org/fx"
)

var RealtimeModule = fx.Module("realtime",
	fx.Provide(
		fx.Annotate(
			NewHub,
			fx.As(fx.Self()),
			fx.As(new(commands.BookingNotifier)),
		),
	),
)

func NewHub(cfg config.Config, logger *slog.Logger) *realtime.Hub {
	return realtime.NewHub(cfg.Realtime.SubscriberBuffer, logger)
}
