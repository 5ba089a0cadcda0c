package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/laser-clinic-reservation/internal/handler"    // import the handlers that implement business logic
	"github.com/iliyamo/laser-clinic-reservation/internal/middleware" // import middleware for JWT authentication and role enforcement
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Map the GET request at path "/healthz" to the Health handler.  This
	// endpoint can be used by load balancers or monitoring systems to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers all authentication-related routes and applies the
// necessary middleware.  Unauthenticated operations live under /v1/auth,
// while protected endpoints live under /v1.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	// Create a route group under the /v1/auth prefix for operations that do
	// not require an existing session.  Each of these handlers is
	// responsible for generating or exchanging tokens.
	g := e.Group("/v1/auth")
	// Register a POST endpoint to handle account creation at /v1/auth/signup.
	// New accounts always start with the CUSTOMER role.
	g.POST("/signup", a.Signup)
	// Register a POST endpoint to handle user login at /v1/auth/login.
	g.POST("/login", a.Login)
	// Password recovery endpoints.  Both validate their input and answer
	// with a fixed message; no mail is sent from this service.
	g.POST("/forgot-password", a.ForgotPassword)
	g.POST("/reset-password", a.ResetPassword)
	// Register a POST endpoint to refresh access tokens at /v1/auth/refresh. This rotates the refresh token.
	g.POST("/refresh", a.Refresh)
	// Register a POST endpoint to issue a new access token without rotating the refresh token.
	g.POST("/refresh-access", a.RefreshAccess)
	// Register a POST endpoint to log out using a refresh token.  The
	// handler accepts a JSON body containing a `refresh_token` and will
	// invalidate that token.  If the token is valid, a 204 response is
	// returned; otherwise 400/401/500 are possible depending on the error.
	g.POST("/logout", a.Logout)

	// Create another group for routes that require a valid access token.
	// All handlers registered on this group will execute the JWTAuth
	// middleware before being invoked.  Every known role is accepted; the
	// middleware still rejects requests with missing or unknown roles.
	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.Use(middleware.RequireRole("ADMIN", "STAFF", "CUSTOMER"))
	// Register a GET endpoint at /v1/me that returns the authenticated user's information.
	auth.GET("/me", a.Me)
	// Self-service account profile.  The handler compares the path id
	// against the token identity and answers 403 on a mismatch, so these
	// routes never leak whether a foreign account exists.
	auth.GET("/users/profile/:id", a.GetUserProfile)
	auth.PATCH("/users/profile/:id", a.UpdateUserProfile)

	// Additionally map POST /v1/logout to the same handler.  This route
	// lives at the top level (outside of the protected group) so it does
	// not require a JWT.  Clients can therefore call either
	// /v1/auth/logout or /v1/logout with a valid refresh token in the
	// body to terminate a session.
	e.POST("/v1/logout", a.Logout)
}

// RegisterCatalog registers the read-only browse endpoints shared by every
// authenticated role.  The provided CatalogHandler returns sanitized data
// for laser areas, schedules, slots, discount codes and cancellation
// windows.  Static subroutes are registered before their parameterised
// siblings for readability; Echo matches static segments first either way.
func RegisterCatalog(e *echo.Echo, h *handler.CatalogHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("ADMIN", "STAFF", "CUSTOMER"),
	)

	// Active laser areas, looked up by their unique name.
	g.GET("/laser-areas", h.GetLaserAreas)
	g.GET("/laser-areas/:name", h.GetLaserAreaByName)

	// Published schedules.  The /active alias mirrors the original API.
	g.GET("/area-schedules", h.GetAreaSchedules)
	g.GET("/area-schedules/active", h.GetAreaSchedules)

	// Slots, plus the per-date availability view used by the booking UI.
	g.GET("/slots", h.GetSlots)
	g.GET("/slots/available", h.GetAvailableSlots)

	// Discount codes that can still be applied.  Lookup is by code string.
	g.GET("/discount-codes", h.GetDiscountCodes)
	g.GET("/discount-codes/valid", h.GetDiscountCodes)
	g.GET("/discount-codes/:code", h.GetDiscountCodeByCode)

	// Cancellation windows.
	g.GET("/cancellation-periods", h.GetCancellationPeriods)
	g.GET("/cancellation-periods/active", h.GetActiveCancellationPeriods)
}
