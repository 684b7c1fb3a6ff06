package bootstrap

import (
	"github.com/chateudechevrole/tutor-app-yp/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	RedisModule,
	PushModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
	FeedModule,
)
