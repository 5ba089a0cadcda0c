package router

// This file registers staff-specific routes.  The routes defined here let
// operators review their own attendance records, work the reservations
// booked into their slots and consult their shift plan.  They are
// separate from the admin routes to keep concerns isolated.

import (
    "github.com/iliyamo/laser-clinic-reservation/internal/handler"
    "github.com/iliyamo/laser-clinic-reservation/internal/middleware"
    "github.com/labstack/echo/v4"
)

// RegisterOperator registers routes that allow staff members to work
// their day.  Most routes are mounted under /v1/operator and require a
// JWT token as well as the STAFF role.  Shift reads live at /v1/shifts
// to match the booking clients.  The provided handler supplies the
// business logic; every query it runs is scoped to the authenticated
// operator, so records of other staff answer 404.
func RegisterOperator(e *echo.Echo, h *handler.OperatorHandler, jwtSecret string) {
    g := e.Group(
        "/v1/operator",
        middleware.JWTAuth(jwtSecret),
        middleware.RequireRole("STAFF"),
    )
    // Attendance records of the authenticated operator
    g.GET("/staff-attendance", h.ListAttendance)
    g.GET("/staff-attendance/:id", h.GetAttendance)
    // Reservations booked into the operator's slots
    g.GET("/reservations", h.ListReservations)
    g.GET("/reservations/:id", h.GetReservation)
    // Mark a reservation resolved once the session took place
    g.PATCH("/reservations/:id/mark-complete", h.MarkComplete)

    // Shift reads live outside the /operator prefix.  /active must be
    // registered before the parameterised sibling conceptually, though
    // Echo resolves static segments first regardless of order.
    s := e.Group(
        "/v1/shifts",
        middleware.JWTAuth(jwtSecret),
        middleware.RequireRole("STAFF"),
    )
    s.GET("", h.ListShifts)
    s.GET("/active", h.ListActiveShifts)
    s.GET("/:id", h.GetShift)
}
