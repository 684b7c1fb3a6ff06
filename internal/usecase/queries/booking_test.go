//go:build unit

package queries_test

import (
	"context"
	"testing"

	"github.com/chateudechevrole/tutor-app-yp/internal/domain/booking"
	"github.com/chateudechevrole/tutor-app-yp/internal/pkg/errs"
	"github.com/chateudechevrole/tutor-app-yp/internal/usecase/queries"
	"github.com/chateudechevrole/tutor-app-yp/tests/common/builder"
	queriesmock "github.com/chateudechevrole/tutor-app-yp/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookingQueries_GetByID(t *testing.T) {
	t.Run("存在する予約はビューに射影される", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		q := queries.NewBookingQueries(store)

		b := builder.NewBookingBuilder().WithStatus(booking.StatusAccepted).Build()
		store.EXPECT().Find(gomock.Any(), "bk-1").Return(b, nil)

		view, err := q.GetByID(context.Background(), "bk-1")
		require.NoError(t, err)
		assert.Equal(t, "bk-1", view.ID)
		assert.Equal(t, b.StudentID, view.StudentID)
		assert.Equal(t, b.TutorName, view.TutorName)
		assert.Equal(t, b.HourlyRate, view.HourlyRate)
		assert.Equal(t, "accepted", view.Status)
		assert.Equal(t, b.AcceptDeadline, view.AcceptDeadline)
	})

	t.Run("存在しない予約はErrBookingNotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		q := queries.NewBookingQueries(store)

		store.EXPECT().Find(gomock.Any(), "missing").Return(nil, nil)

		view, err := q.GetByID(context.Background(), "missing")
		assert.Nil(t, view)
		assert.ErrorIs(t, err, errs.ErrBookingNotFound)
	})

	t.Run("ストア障害はそのまま伝播する", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		q := queries.NewBookingQueries(store)

		store.EXPECT().Find(gomock.Any(), "bk-1").Return(nil, assert.AnError)

		view, err := q.GetByID(context.Background(), "bk-1")
		assert.Nil(t, view)
		assert.ErrorIs(t, err, assert.AnError)
	})
}
