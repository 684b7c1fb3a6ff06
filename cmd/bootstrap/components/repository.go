package components

import (
	"context"

	"go.uber.org/fx"

	"github.com/chateudechevrole/tutor-app-yp/internal/infra/dedup"
	"github.com/chateudechevrole/tutor-app-yp/internal/infra/push"
	"github.com/chateudechevrole/tutor-app-yp/internal/infra/store"
	"github.com/chateudechevrole/tutor-app-yp/internal/usecase/lifecycle"
	"github.com/chateudechevrole/tutor-app-yp/internal/usecase/queries"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		store.NewDocuments,
		store.NewBookings,
		// Bookings serves both the lifecycle write side and the ops read side.
		func(b *store.Bookings) lifecycle.BookingStore { return b },
		func(b *store.Bookings) queries.BookingReadStore { return b },
		fx.Annotate(
			store.NewTutorProfiles,
			fx.As(new(lifecycle.TutorSource)),
		),
		fx.Annotate(
			store.NewUsers,
			fx.As(new(lifecycle.UserSource)),
		),
		fx.Annotate(
			dedup.NewOnceGuard,
			fx.As(new(lifecycle.OnceGuard)),
		),
		fx.Annotate(
			push.NewFCM,
			fx.As(new(lifecycle.Pusher)),
		),
	),
	fx.Invoke(EnsureSchema),
)

func EnsureSchema(lc fx.Lifecycle, docs *store.Documents) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return docs.EnsureSchema(ctx)
		},
	})
}
