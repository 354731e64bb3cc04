package bootstrap

import (
	"gin-jewelry-b2b/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// Module assembles the whole pricing engine. Infrastructure comes first;
// components wires storage, use cases and HTTP handlers on top of it.
var Module = fx.Options(
	FxLogger,
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	MetricsModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
