package bootstrap

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/chateudechevrole/tutor-app-yp/internal/infra/feed"
	"github.com/chateudechevrole/tutor-app-yp/internal/pkg/config"
)

var FeedModule = fx.Module("feed",
	fx.Provide(
		NewFeedConsumer,
	),
	fx.Invoke(
		RunFeedConsumer,
	),
)

func NewFeedConsumer(cfg config.Config, handlers []feed.Handler, logger *slog.Logger) *feed.Consumer {
	return feed.NewConsumer(cfg.Feed, handlers, logger)
}

// RunFeedConsumer ties the consumer to the fx lifecycle: connect and start
// consuming on start, cancel and close on stop.
func RunFeedConsumer(lc fx.Lifecycle, consumer *feed.Consumer, logger *slog.Logger) {
	runCtx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			if err := consumer.Connect(); err != nil {
				cancel()
				return err
			}
			go func() {
				if err := consumer.Run(runCtx); err != nil {
					logger.Error("feed consumer stopped", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			consumer.Close()
			return nil
		},
	})
}
