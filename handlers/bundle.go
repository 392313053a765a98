package handlers

import (
	"doctorsportal/middleware"
	"doctorsportal/services/authz"
)

// HandlerBundle groups the endpoint handlers and the auth collaborators routes need.
type HandlerBundle struct {
	Tokens     middleware.TokenVerifier
	Authorizer authz.Authorizer
	Metrics    *middleware.Metrics

	Booking *BookingHandler
	User    *UserHandler
	Admin   *AdminHandler
	Doctor  *DoctorHandler
	Payment *PaymentHandler
	Health  *HealthHandler
}
