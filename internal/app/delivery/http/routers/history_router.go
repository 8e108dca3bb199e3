package routers

import (
	"carelink-service/internal/app/delivery/http/controllers"
	"carelink-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachHistoryRoutes(router chi.Router, middlewares *middlewares.Middlewares, historyController *controllers.HistoryController) {
	router.Get("/all-histories", historyController.ListHistories)
	router.Get("/history/{id}", historyController.GetHistory)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticate)
		r.Post("/add-history/{patientId}", historyController.CreateHistory)
		r.Post("/upload-media", historyController.UploadMedia)
		r.Put("/update-history/{id}", historyController.UpdateHistory)
		r.Delete("/delete-history/{id}", historyController.DeleteHistory)
	})
}
