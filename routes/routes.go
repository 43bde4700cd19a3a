package routes

import (
	"net/http"
	"time"

	"petsit/handlers"
	"petsit/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterSlotRoutes registers the sitter availability endpoints. Reads are
// public (requesters browse availability); writes require the sitter's own
// token.
func RegisterSlotRoutes(r *gin.Engine, sh *handlers.SlotHandler) {
	api := r.Group("/api/sitters")
	{
		api.GET("/:id/slots", sh.ListSlotsHandler)
		api.GET("/:id/availability", sh.AvailabilityHandler)

		protected := api.Group("")
		protected.Use(middleware.RequireAuth())
		protected.PUT("/:id/slots", sh.ReconcileSlotsHandler)
		protected.POST("/:id/slotgrid", sh.EditGridHandler)
	}
}

// RegisterBookingRoutes registers all endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, bh *handlers.BookingHandler) {
	api := r.Group("/api/bookings")
	api.Use(middleware.RequireAuth())
	{
		api.POST("", bh.CreateBookingHandler)
		api.GET("", bh.ListBookingsHandler)
		api.GET("/:id", bh.GetBookingHandler)
		api.PATCH("/:id/status", bh.PatchStatusHandler)
		api.POST("/:id/read", bh.MarkReadHandler)
		api.POST("/:id/review", bh.CloseReviewHandler)

		// Draft session flow (requester form).
		api.POST("/draft", bh.InitiateDraftHandler)
		api.PUT("/draft/:sessionID", bh.UpdateDraftHandler)
		api.POST("/draft/:sessionID/confirm", bh.ConfirmDraftHandler)
		api.DELETE("/draft/:sessionID", bh.CancelDraftHandler)
	}

	pets := r.Group("/api/petpasses")
	pets.Use(middleware.RequireAuth())
	pets.GET("", bh.ListPetPassesHandler)
}

// RegisterRoutes wires CORS, the health probe and every endpoint group.
func RegisterRoutes(r *gin.Engine, sh *handlers.SlotHandler, bh *handlers.BookingHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	RegisterSlotRoutes(r, sh)
	RegisterBookingRoutes(r, bh)
}
