package routers

import (
	"carelink-service/internal/app/delivery/http/controllers"
	"carelink-service/internal/app/delivery/http/middlewares"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	rateLimit func(next http.Handler) http.Handler,
	authController *controllers.AuthController,
	accountController *controllers.AccountController,
) {
	// The API key has to be checked first so the limiter sees the superadmin flag.
	router.Group(func(r chi.Router) {
		r.Use(middlewares.RequireSuperadminAPIKey, rateLimit)
		r.Post("/add-user", accountController.CreateUser)
		r.Delete("/delete-user/{id}", accountController.DeleteUser)
	})

	router.Group(func(r chi.Router) {
		r.Use(rateLimit)

		r.Post("/signup", authController.Signup)
		r.Post("/signin", authController.Signin)
		r.Get("/validate-token", authController.ValidateToken)

		r.Get("/all-patients", accountController.GetPatients)
		r.Get("/all-practitioners", accountController.GetPractitioners)
		r.Get("/{id}", accountController.GetProfile)

		r.Group(func(r chi.Router) {
			r.Use(middlewares.Authenticate)
			r.Put("/edit-user/{id}", accountController.UpdateProfile)
			r.Put("/add-available-dates/{id}", accountController.AddAvailableDates)
			r.Put("/reserve-date/{id}", accountController.ReserveDate)
			r.Put("/rate-practitioner/{id}", accountController.RatePractitioner)
			r.Delete("/delete-history/{userId}/{historyId}", accountController.DeleteHistory)
		})
	})
}
