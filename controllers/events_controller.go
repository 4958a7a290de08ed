package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	models "github.com/mwenda/events-platform-go/models"
	repository "github.com/mwenda/events-platform-go/repository"
	utils "github.com/mwenda/events-platform-go/utils"
)

type eventInput struct {
	Title       string `form:"title" binding:"required"`
	Slug        string `form:"slug" binding:"required"`
	Description string `form:"description" binding:"required"`
	Date        string `form:"date" binding:"required"`
	Time        string `form:"time" binding:"required"`
	Location    string `form:"location" binding:"required"`
	Tags        string `form:"tags"`
	Agenda      string `form:"agenda"`
}

func (in *eventInput) toEvent(imageURL string) *models.Event {
	return &models.Event{
		Title:       in.Title,
		Slug:        in.Slug,
		Description: in.Description,
		Date:        in.Date,
		Time:        in.Time,
		Location:    in.Location,
		Image:       imageURL,
		Tags:        models.SplitList(in.Tags),
		Agenda:      models.SplitList(in.Agenda),
	}
}

// ---------------- CREATE ----------------
// CreateEvent handles the canonical creation route: the image part is
// mandatory and is uploaded before the event is assembled and stored.
func CreateEvent(repo repository.EventRepository, up utils.Uploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		// --- Bind form fields ---
		var input eventInput
		if err := c.ShouldBind(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid form data", "error": err.Error()})
			return
		}

		// --- Handle file upload ---
		fileHeader, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Image is required"})
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Event Creation Failed", "error": "failed to open image"})
			return
		}
		defer file.Close()

		imageURL, err := up.Upload(c.Request.Context(), file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Event Creation Failed", "error": err.Error()})
			return
		}

		// --- Save event ---
		event, err := repo.Create(c.Request.Context(), input.toEvent(imageURL))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Event Creation Failed", "error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Event Created Successfully", "event": event})
	}
}

// CreateEventOptionalImage is the variant that accepts creations without
// artwork: an absent image part is not an error, the event is simply stored
// without an image URL.
func CreateEventOptionalImage(repo repository.EventRepository, up utils.Uploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input eventInput
		if err := c.ShouldBind(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid form data", "error": err.Error()})
			return
		}

		var imageURL string
		if fileHeader, err := c.FormFile("image"); err == nil {
			file, err := fileHeader.Open()
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Event Creation Failed", "error": "failed to open image"})
				return
			}
			defer file.Close()

			imageURL, err = up.Upload(c.Request.Context(), file)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Event Creation Failed", "error": err.Error()})
				return
			}
		}

		event, err := repo.Create(c.Request.Context(), input.toEvent(imageURL))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Event Creation Failed", "error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Event Created Successfully", "event": event})
	}
}

// ---------------- LIST ----------------
// ListEvents returns every event, most recent first.
func ListEvents(repo repository.EventRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		events, err := repo.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching events", "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Events have been found", "events": events})
	}
}

// ---------------- GET ----------------
func GetEventBySlug(repo repository.EventRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")
		if slug == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Slug is required"})
			return
		}

		event, err := repo.FindBySlug(c.Request.Context(), slug)
		if err == repository.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "Event not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching event", "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Event has been found", "event": event})
	}
}

// ---------------- SIMILAR ----------------
// SimilarEvents lists other events sharing a tag with the given one. The
// underlying query never fails; an unknown slug or a store error both come
// back as an empty list.
func SimilarEvents(repo repository.EventRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		events := repo.FindSimilar(c.Request.Context(), c.Param("slug"))
		c.JSON(http.StatusOK, gin.H{"message": "Similar events have been found", "events": events})
	}
}
