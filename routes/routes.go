package routes

import (
	"github.com/gin-gonic/gin"

	controllers "github.com/mwenda/events-platform-go/controllers"
	repository "github.com/mwenda/events-platform-go/repository"
	utils "github.com/mwenda/events-platform-go/utils"
)

func SetupRoutes(r *gin.Engine, events repository.EventRepository, bookings repository.BookingRepository, up utils.Uploader) {
	ev := r.Group("/events")
	{
		ev.POST("", controllers.CreateEvent(events, up))
		ev.GET("", controllers.ListEvents(events))
		ev.GET("/:slug", controllers.GetEventBySlug(events))
		ev.GET("/:slug/similar", controllers.SimilarEvents(events))
	}

	r.POST("/bookings", controllers.CreateBooking(bookings))
}
