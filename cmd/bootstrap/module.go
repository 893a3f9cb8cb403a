package bootstrap

import (
	"booking-system/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	RealtimeModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
