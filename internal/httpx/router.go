package httpx

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(app *AppCtx) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	r.HandleFunc("/api/lynt", HandleLynt(app)).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/api/upload", HandleUpload(app)).Methods(http.MethodPost)

	return CORS(r)
}
