package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	models "github.com/mwenda/events-platform-go/models"
	repository "github.com/mwenda/events-platform-go/repository"
)

// ---------------- CREATE ----------------
// CreateBooking stores a registration against an event. The eventId is
// taken verbatim; whether it points at a real event is not checked.
func CreateBooking(repo repository.BookingRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			EventID string `json:"eventId" binding:"required"`
			Slug    string `json:"slug" binding:"required"`
			Email   string `json:"email" binding:"required"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}

		booking, err := repo.Create(c.Request.Context(), &models.Booking{
			EventID: input.EventID,
			Slug:    input.Slug,
			Email:   input.Email,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"success": true, "booking": booking})
	}
}
