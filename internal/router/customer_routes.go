package router

import (
	"github.com/iliyamo/laser-clinic-reservation/internal/handler"
	"github.com/iliyamo/laser-clinic-reservation/internal/middleware"
	"github.com/labstack/echo/v4"
)

// RegisterCustomer registers customer-scoped endpoints under /v1.  All routes
// require a valid JWT and the CUSTOMER role.  Customers can book
// reservations, record payments, apply discount codes, leave comments
// and maintain their own profile.  Every lookup is scoped to the
// authenticated user, so foreign rows answer 404.
func RegisterCustomer(e *echo.Echo, h *handler.CustomerHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("CUSTOMER"),
	)

	// Reservations.  Creation stamps the user from the token and links
	// the chosen area schedules in the same transaction.
	g.POST("/reservations", h.CreateReservation)
	g.GET("/reservations", h.ListReservations)
	g.GET("/reservations/:id", h.GetReservation)

	// Pre-reservations are created by staff on the customer's behalf;
	// customers only read them.
	g.GET("/pre-reservations", h.ListPreReservations)
	g.GET("/pre-reservations/:id", h.GetPreReservation)

	// Payments, including the transactional discount application.
	g.POST("/payments", h.CreatePayment)
	g.GET("/payments", h.ListPayments)
	g.GET("/payments/:id", h.GetPayment)
	g.POST("/payments/:id/apply-discount", h.ApplyDiscount)

	// Comments start life unreviewed; moderation happens on the admin
	// surface.
	g.POST("/comments", h.CreateComment)
	g.GET("/comments", h.ListComments)
	g.GET("/comments/:id", h.GetComment)

	// Customer profile.  There is no list route; a customer addresses
	// their single profile row directly by id.
	g.GET("/customer-profiles/:id", h.GetCustomerProfile)
	g.PATCH("/customer-profiles/:id", h.UpdateCustomerProfile)
}
