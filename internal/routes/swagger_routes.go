package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"showbook/docs"
)

const swaggerIndex = "/swagger/index.html"

// RegisterSwaggerRoutes serves the API document and the Swagger UI with
// every tag collapsed.
func RegisterSwaggerRoutes(r chi.Router) {
	toIndex := func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, swaggerIndex, http.StatusMovedPermanently)
	}
	r.Get("/swagger", toIndex)
	r.Get("/swagger/", toIndex)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.InstanceName(docs.SwaggerInfo.InstanceName()),
		httpSwagger.DeepLinking(false),
		httpSwagger.DocExpansion("none"),
		httpSwagger.DomID("swagger-ui"),
		httpSwagger.PersistAuthorization(true),
	))
}
