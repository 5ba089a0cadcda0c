package router // router defines how HTTP routes are registered for the API

import (
	"github.com/iliyamo/laser-clinic-reservation/internal/handler"    // admin handlers
	"github.com/iliyamo/laser-clinic-reservation/internal/middleware" // JWT + role middlewares
	"github.com/labstack/echo/v4"
)

// RegisterAdmin registers ADMIN-scoped endpoints under /v1/admin.
// All routes require a valid JWT and ADMIN role.  Every entity family
// gets full CRUD; PATCH is registered alongside PUT on each update
// handler for clients that prefer partial-update semantics.
func RegisterAdmin(e *echo.Echo, h *handler.AdminHandler, jwtSecret string) {
	// Attach middlewares at group construction time for clarity.
	g := e.Group(
		"/v1/admin",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("ADMIN"),
	)

	// ---- Users ----
	g.GET("/users", h.ListUsers)
	g.GET("/users/:id", h.GetUser)
	g.POST("/users", h.CreateUser)
	g.PUT("/users/:id", h.UpdateUser)
	g.PATCH("/users/:id", h.UpdateUser)
	g.DELETE("/users/:id", h.DeleteUser)

	// ---- Staff attendance ----
	// The static /active route must not collide with :id lookups; Echo
	// prefers static segments, so both can coexist.
	g.GET("/staff-attendance", h.ListAttendance)
	g.GET("/staff-attendance/active", h.ListActiveAttendance)
	g.GET("/staff-attendance/:id", h.GetAttendance)
	g.POST("/staff-attendance", h.CreateAttendance)
	g.PUT("/staff-attendance/:id", h.UpdateAttendance)
	g.PATCH("/staff-attendance/:id", h.UpdateAttendance)
	g.DELETE("/staff-attendance/:id", h.DeleteAttendance)

	// ---- Customer profiles ----
	g.GET("/customer-profiles", h.ListCustomerProfiles)
	g.GET("/customer-profiles/:id", h.GetCustomerProfile)
	g.POST("/customer-profiles", h.CreateCustomerProfile)
	g.PUT("/customer-profiles/:id", h.UpdateCustomerProfile)
	g.PATCH("/customer-profiles/:id", h.UpdateCustomerProfile)
	g.DELETE("/customer-profiles/:id", h.DeleteCustomerProfile)

	// ---- Comments ----
	g.GET("/comments", h.ListComments)
	g.GET("/comments/unreviewed", h.ListUnreviewedComments)
	g.GET("/comments/:id", h.GetComment)
	g.POST("/comments", h.CreateComment)
	g.PUT("/comments/:id", h.UpdateComment)
	g.PATCH("/comments/:id", h.UpdateComment)
	g.DELETE("/comments/:id", h.DeleteComment)

	// ---- Laser areas ----
	// Areas are addressed by their unique name rather than a numeric id.
	g.GET("/laser-areas", h.ListAreas)
	g.GET("/laser-areas/:name", h.GetArea)
	g.POST("/laser-areas", h.CreateArea)
	g.PUT("/laser-areas/:name", h.UpdateArea)
	g.PATCH("/laser-areas/:name", h.UpdateArea)
	g.DELETE("/laser-areas/:name", h.DeleteArea)

	// ---- Area schedules ----
	g.GET("/area-schedules", h.ListAreaSchedules)
	g.GET("/area-schedules/:id", h.GetAreaSchedule)
	g.POST("/area-schedules", h.CreateAreaSchedule)
	g.PUT("/area-schedules/:id", h.UpdateAreaSchedule)
	g.PATCH("/area-schedules/:id", h.UpdateAreaSchedule)
	g.DELETE("/area-schedules/:id", h.DeleteAreaSchedule)

	// ---- Shifts ----
	g.GET("/shifts", h.ListShifts)
	g.GET("/shifts/:id", h.GetShift)
	g.POST("/shifts", h.CreateShift)
	g.PUT("/shifts/:id", h.UpdateShift)
	g.PATCH("/shifts/:id", h.UpdateShift)
	g.DELETE("/shifts/:id", h.DeleteShift)

	// ---- Slots ----
	g.GET("/slots", h.ListSlots)
	g.GET("/slots/:id", h.GetSlot)
	g.POST("/slots", h.CreateSlot)
	g.PUT("/slots/:id", h.UpdateSlot)
	g.PATCH("/slots/:id", h.UpdateSlot)
	g.DELETE("/slots/:id", h.DeleteSlot)

	// ---- Reservations ----
	g.GET("/reservations", h.ListReservations)
	g.GET("/reservations/unpaid", h.ListUnpaidReservations)
	g.GET("/reservations/:id", h.GetReservation)
	g.POST("/reservations", h.CreateReservation)
	g.PUT("/reservations/:id", h.UpdateReservation)
	g.PATCH("/reservations/:id", h.UpdateReservation)
	g.DELETE("/reservations/:id", h.DeleteReservation)

	// ---- Pre-reservations ----
	g.GET("/pre-reservations", h.ListPreReservations)
	g.GET("/pre-reservations/:id", h.GetPreReservation)
	g.POST("/pre-reservations", h.CreatePreReservation)
	g.PUT("/pre-reservations/:id", h.UpdatePreReservation)
	g.PATCH("/pre-reservations/:id", h.UpdatePreReservation)
	g.DELETE("/pre-reservations/:id", h.DeletePreReservation)

	// ---- Payments ----
	g.GET("/payments", h.ListPayments)
	g.GET("/payments/pending", h.ListPendingPayments)
	g.GET("/payments/:id", h.GetPayment)
	g.POST("/payments", h.CreatePayment)
	g.PUT("/payments/:id", h.UpdatePayment)
	g.PATCH("/payments/:id", h.UpdatePayment)
	g.DELETE("/payments/:id", h.DeletePayment)

	// ---- Discount codes ----
	// Codes are addressed by their code string rather than a numeric id.
	g.GET("/discount-codes", h.ListDiscountCodes)
	g.GET("/discount-codes/:code", h.GetDiscountCode)
	g.POST("/discount-codes", h.CreateDiscountCode)
	g.PUT("/discount-codes/:code", h.UpdateDiscountCode)
	g.PATCH("/discount-codes/:code", h.UpdateDiscountCode)
	g.DELETE("/discount-codes/:code", h.DeleteDiscountCode)

	// ---- Cancellation periods ----
	g.GET("/cancellation-periods", h.ListCancellationPeriods)
	g.GET("/cancellation-periods/:id", h.GetCancellationPeriod)
	g.POST("/cancellation-periods", h.CreateCancellationPeriod)
	g.PUT("/cancellation-periods/:id", h.UpdateCancellationPeriod)
	g.PATCH("/cancellation-periods/:id", h.UpdateCancellationPeriod)
	g.DELETE("/cancellation-periods/:id", h.DeleteCancellationPeriod)
}
