package routes

import (
	"swiftride/internal/handlers"
	"swiftride/internal/middleware"
	"swiftride/internal/session"

	"github.com/gin-gonic/gin"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Vehicles   *handlers.VehicleHandler
	Bookings   *handlers.BookingHandler
	Auth       *handlers.AuthHandler
	Newsletter *handlers.NewsletterHandler
}

// Setup mounts the full API surface under /api/v1.
func Setup(r *gin.RouterGroup, h *Handlers, sessions *session.Store) {
	authRequired := middleware.SessionRequired(sessions)

	vehicles := r.Group("/vehicles")
	{
		vehicles.GET("", h.Vehicles.ListVehicles)
		vehicles.GET("/:id", h.Vehicles.GetVehicle)
		vehicles.POST("/filter", h.Vehicles.FilterVehicles)
	}

	r.GET("/quotes", h.Vehicles.QuoteRental)

	drafts := r.Group("/bookings/drafts")
	drafts.Use(authRequired)
	{
		drafts.POST("", h.Bookings.OpenDraft)
		drafts.GET("/:id", h.Bookings.GetDraft)
		drafts.PUT("/:id/details", h.Bookings.SetDraftDetails)
		drafts.POST("/:id/payment", h.Bookings.SubmitDraft)
		drafts.DELETE("/:id/payment", h.Bookings.CancelDraftPayment)
		drafts.DELETE("/:id", h.Bookings.DiscardDraft)
	}

	bookings := r.Group("/bookings")
	bookings.Use(authRequired)
	{
		bookings.GET("", h.Bookings.ListBookings)
		bookings.GET("/:id", h.Bookings.GetBooking)
		bookings.PUT("/:id/cancel", h.Bookings.CancelBooking)
	}

	auth := r.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/logout", authRequired, h.Auth.Logout)
		auth.GET("/me", authRequired, h.Auth.Me)
		auth.PUT("/profile", authRequired, h.Auth.UpdateProfile)
		auth.POST("/forgot-password", h.Auth.ForgotPassword)
		auth.POST("/verify-otp", h.Auth.VerifyOTP)
		auth.POST("/reset-password", h.Auth.ResetPassword)
	}

	r.POST("/newsletter/subscribe", h.Newsletter.Subscribe)
}
