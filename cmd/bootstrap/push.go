package bootstrap

import (
	"context"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/fx"

	"github.com/chateudechevrole/tutor-app-yp/internal/infra/push"
	"github.com/chateudechevrole/tutor-app-yp/internal/pkg/config"
)

var PushModule = fx.Module("push",
	fx.Provide(
		NewPushClient,
	),
)

func NewPushClient(cfg config.Config) (*messaging.Client, error) {
	return push.NewMessagingClient(context.Background(), cfg.Push)
}
