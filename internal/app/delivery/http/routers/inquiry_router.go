package routers

import (
	"carelink-service/internal/app/delivery/http/controllers"
	"carelink-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachInquiryRoutes(router chi.Router, middlewares *middlewares.Middlewares, inquiryController *controllers.InquiryController) {
	router.Get("/all-inquiries", inquiryController.ListInquiries)
	router.Get("/{id}", inquiryController.GetInquiry)
	router.With(middlewares.Authenticate).Post("/add-inquiry", inquiryController.CreateInquiry)
	router.With(middlewares.Authenticate).Post("/add-comment/{id}", inquiryController.AddComment)
	router.With(middlewares.Authenticate).Put("/update-inquiry/{id}", inquiryController.UpdateInquiry)
	router.With(middlewares.Authenticate).Delete("/delete-inquiry/{id}", inquiryController.DeleteInquiry)
}
