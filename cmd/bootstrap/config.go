package bootstrap

import (
	"github.com/chateudechevrole/tutor-app-yp/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)
