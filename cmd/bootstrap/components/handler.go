package components

import (
	"go.uber.org/fx"

	"github.com/chateudechevrole/tutor-app-yp/internal/handler"
	"github.com/chateudechevrole/tutor-app-yp/internal/handler/api"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
	),
	fx.Invoke(handler.NewRouter),
)
