package routers

import (
	"carelink-service/internal/app/config"
	"carelink-service/internal/app/delivery/http/controllers"
	"carelink-service/internal/app/delivery/http/middlewares"
	"fmt"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *controllers.AuthController,
	accountController *controllers.AccountController,
	inquiryController *controllers.InquiryController,
	historyController *controllers.HistoryController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   strings.Split(internalConfig.App.AllowedOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID", "x-api-key"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.Instrument)
	router.Use(middlewares.BodyLimit)

	if middlewares.Metrics != nil {
		router.Method("GET", "/metrics", middlewares.Metrics.Handler())
	}

	rateLimit := middlewares.ConditionalRateLimit(middlewares.CreateRateLimiters())

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/users", func(r chi.Router) {
				attachUserRoutes(r, middlewares, rateLimit, authController, accountController)
			})

			r.Route("/inquiry", func(r chi.Router) {
				r.Use(rateLimit)
				attachInquiryRoutes(r, middlewares, inquiryController)
			})

			r.Route("/history", func(r chi.Router) {
				r.Use(rateLimit)
				attachHistoryRoutes(r, middlewares, historyController)
			})
		})
	})
}
