package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chateudechevrole/tutor-app-yp/internal/pkg/errs"
	"github.com/chateudechevrole/tutor-app-yp/internal/usecase/queries"
)

// BookingHandler is the read-only ops surface over booking records. All
// writes go through the change feed and the lifecycle handlers; nothing
// here can bypass the transition guard.
type BookingHandler struct {
	bookingQueries queries.BookingQueries
}

func NewBookingHandler(bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingQueries: bookingQueries,
	}
}

func (h *BookingHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "booking id required"}})
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"message": "Booking not found"}})
		default:
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Internal server error"}})
		}
		return
	}

	c.JSON(http.StatusOK, view)
}
