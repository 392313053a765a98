package routes

import (
	"net/http"
	"time"

	"doctorsportal/handlers"
	"doctorsportal/middleware"
	"doctorsportal/services/authz"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterServiceRoutes registers the public catalog and availability endpoints.
func RegisterServiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/services", hb.Booking.GetServices)
	r.GET("/available", hb.Booking.GetAvailable)
}

// RegisterBookingRoutes registers booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	auth := middleware.JWTAuthMiddleware(hb.Tokens)

	booking := r.Group("/booking")
	{
		booking.POST("", hb.Booking.CreateBooking)

		// Protected routes (Require Authentication)
		booking.GET("", auth, middleware.Require(hb.Authorizer, authz.PermSelf, middleware.QueryTarget("patient")), hb.Booking.GetPatientBookings)
		booking.GET("/:id", auth, hb.Booking.GetBooking)
		booking.PATCH("/:id", auth, hb.Booking.MarkPaid)
	}
}

// RegisterUserRoutes registers user and admin role endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	auth := middleware.JWTAuthMiddleware(hb.Tokens)
	admin := middleware.Require(hb.Authorizer, authz.PermAdmin, middleware.NoTarget)

	r.PUT("/user/:email", hb.User.UpsertUser)
	r.GET("/user", auth, hb.User.GetAllUsers)
	r.GET("/admin/:email", hb.Admin.CheckAdmin)
	r.PUT("/user/admin/:email", auth, admin, hb.Admin.MakeAdmin)
}

// RegisterDoctorRoutes registers doctor management endpoints.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	auth := middleware.JWTAuthMiddleware(hb.Tokens)
	admin := middleware.Require(hb.Authorizer, authz.PermAdmin, middleware.NoTarget)

	r.GET("/doctor", auth, admin, hb.Doctor.GetDoctors)
	r.POST("/doctor", auth, admin, hb.Doctor.AddDoctor)
	r.DELETE("/doctor/:email", hb.Doctor.DeleteDoctor)
}

// RegisterPaymentRoutes registers the payment-intent endpoint.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/create-payment-intent", middleware.JWTAuthMiddleware(hb.Tokens), hb.Payment.CreatePaymentIntent)
}

// RegisterHealthRoutes registers liveness, health and metrics endpoints.
func RegisterHealthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/", hb.Health.Liveness)
	r.GET("/health", hb.Health.Health)
	if hb.Metrics != nil {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:    []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:   []string{"Content-Length", "X-Request-ID"},
		MaxAge:          12 * time.Hour,
	}))
	if hb.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(hb.Metrics))
	}

	RegisterServiceRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterDoctorRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterHealthRoutes(r, hb)
}
