package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"local.dev/lyntr-backend/internal/auth"
	"local.dev/lyntr-backend/internal/blob"
	"local.dev/lyntr-backend/internal/chain"
	"local.dev/lyntr-backend/internal/ids"
	"local.dev/lyntr-backend/internal/messaging"
	"local.dev/lyntr-backend/internal/models"
	"local.dev/lyntr-backend/internal/store"
)

// ChainCache stores resolved ancestor chains. A hit with an empty chain is
// still a hit; the second return value carries presence, not emptiness.
type ChainCache interface {
	GetChain(ctx context.Context, viewerID, parentID string) ([]models.LyntView, bool)
	SetChain(ctx context.Context, viewerID, parentID string, views []models.LyntView) error
}

// authCookieName matches the session cookie the web client sets.
const authCookieName = "_TOKEN__DO_NOT_SHARE"

type ctxKey string

const uidKey ctxKey = "uid"

type AppCtx struct {
	Store    store.LyntStore
	Blob     blob.Store
	IDs      *ids.Generator
	Verifier auth.Verifier
	Chains   *chain.Resolver
	Cache    ChainCache           // optional
	Events   *messaging.Publisher // optional
	Log      zerolog.Logger
}

func currentUID(r *http.Request) string {
	if v := r.Context().Value(uidKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func WithAuth(app *AppCtx, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie(authCookieName)
		if err != nil || c.Value == "" {
			writeError(w, http.StatusUnauthorized, "Missing authentication")
			return
		}
		uid, err := app.Verifier.Verify(r.Context(), c.Value)
		if err != nil || uid == "" {
			writeError(w, http.StatusUnauthorized, "Authentication failed")
			return
		}
		ctx := context.WithValue(r.Context(), uidKey, uid)
		next(w, r.WithContext(ctx))
	}
}

func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	errorResponses.WithLabelValues(strconv.Itoa(status)).Inc()
	writeJSON(w, status, map[string]string{"error": msg})
}
