package components

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/chateudechevrole/tutor-app-yp/internal/infra/feed"
	"github.com/chateudechevrole/tutor-app-yp/internal/pkg/clock"
	"github.com/chateudechevrole/tutor-app-yp/internal/pkg/config"
	"github.com/chateudechevrole/tutor-app-yp/internal/usecase/lifecycle"
	"github.com/chateudechevrole/tutor-app-yp/internal/usecase/queries"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		lifecycle.NewSnapshotInitializer,
		lifecycle.NewTransitionGuard,
		lifecycle.NewDeadlineRefresher,
		newNotificationDispatcher,
		newFeedHandlers,
		queries.NewBookingQueries,
	),
)

func newNotificationDispatcher(
	users lifecycle.UserSource,
	pusher lifecycle.Pusher,
	once lifecycle.OnceGuard,
	cfg config.Config,
	logger *slog.Logger,
) *lifecycle.NotificationDispatcher {
	return lifecycle.NewNotificationDispatcher(users, pusher, once, cfg.Push.DedupTTL, logger)
}

// The four lifecycle handlers are independent; the feed runs all of them
// for every change event.
func newFeedHandlers(
	initializer *lifecycle.SnapshotInitializer,
	guard *lifecycle.TransitionGuard,
	refresher *lifecycle.DeadlineRefresher,
	dispatcher *lifecycle.NotificationDispatcher,
) []feed.Handler {
	return []feed.Handler{initializer, guard, refresher, dispatcher}
}
