package swagger

import (
	"net/http"

	"github.com/go-chi/chi"
	httpSwagger "github.com/swaggo/http-swagger"
)

const DocumentPath = "/openapi.yml"

// Mount publishes the API document and a Swagger UI that reads it.
func Mount(r chi.Router, document []byte) {
	r.Get(DocumentPath, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(document)
	})
	r.Handle("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(DocumentPath),
	))
}
