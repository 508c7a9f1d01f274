package httpx

import (
	"errors"
	"io"
	"net/http"
	"unicode/utf8"

	"local.dev/lyntr-backend/internal/media"
	"local.dev/lyntr-backend/internal/models"
	"local.dev/lyntr-backend/internal/sanitize"
	"local.dev/lyntr-backend/internal/store"
)

const (
	maxRequestBytes   = 20 << 20
	multipartMemBytes = 25 << 20
)

// HandleLynt serves /api/lynt: POST creates a lynt, GET reads one.
func HandleLynt(app *AppCtx) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			WithAuth(app, createLynt(app))(w, r)
		case http.MethodGet:
			WithAuth(app, readLynt(app))(w, r)
		default:
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		}
	}
}

func createLynt(app *AppCtx) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := currentUID(r)

		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)
		if err := r.ParseMultipartForm(multipartMemBytes); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid content")
			return
		}

		content := r.FormValue("content")
		if utf8.RuneCountInString(content) > models.MaxContentLength {
			writeError(w, http.StatusBadRequest, "Invalid content")
			return
		}
		content = sanitize.Clean(content)

		id := app.IDs.Next()
		lynt, err := models.NewLynt(id, uid, content)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid content")
			return
		}

		if repostedID := r.FormValue("reposted"); repostedID != "" {
			parentID, err := app.Store.ResolveRepostTarget(r.Context(), repostedID)
			if err != nil {
				if errors.Is(err, store.ErrNotFound) {
					writeError(w, http.StatusBadRequest, "Invalid reposted lynt ID")
					return
				}
				app.Log.Error().Err(err).Str("reposted_id", repostedID).Msg("repost target lookup failed")
				writeError(w, http.StatusInternalServerError, "Failed to create lynt")
				return
			}
			lynt = lynt.AsRepostOf(parentID)
		}

		if file, _, err := r.FormFile("image"); err == nil {
			defer file.Close()
			raw, err := io.ReadAll(file)
			if err != nil {
				app.Log.Error().Err(err).Str("lynt_id", id).Str("step", "read").Msg("lynt image handling failed")
				writeError(w, http.StatusInternalServerError, "Failed to create lynt")
				return
			}
			resized, err := media.Transcode(raw)
			if err != nil {
				app.Log.Error().Err(err).Str("lynt_id", id).Str("step", "transcode").Msg("lynt image handling failed")
				writeError(w, http.StatusInternalServerError, "Failed to create lynt")
				return
			}
			if err := app.Blob.Put(r.Context(), id+media.Ext, resized, media.ContentType); err != nil {
				app.Log.Error().Err(err).Str("lynt_id", id).Str("step", "store").Msg("lynt image handling failed")
				writeError(w, http.StatusInternalServerError, "Failed to create lynt")
				return
			}
			lynt = lynt.WithImage()
		}

		created, err := app.Store.Create(r.Context(), lynt)
		if err != nil {
			// The image blob, if any, is already written at this point.
			app.Log.Error().Err(err).Str("lynt_id", id).Bool("has_image", lynt.HasImage).
				Msg("lynt record write failed after side effects")
			writeError(w, http.StatusInternalServerError, "Failed to create lynt")
			return
		}

		if app.Events != nil {
			if err := app.Events.PublishLyntCreated(created); err != nil {
				app.Log.Warn().Err(err).Str("lynt_id", id).Msg("lynt.created publish failed")
			}
		}

		lyntsCreated.Inc()
		writeJSON(w, http.StatusCreated, created)
	}
}

type readLyntResponse struct {
	models.LyntView
	ReferencedLynts []models.LyntView `json:"referencedLynts"`
}

func readLynt(app *AppCtx) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := currentUID(r)

		id := r.URL.Query().Get("id")
		if id == "" {
			writeError(w, http.StatusBadRequest, "Missing lynt ID")
			return
		}

		view, err := app.Store.FetchForRead(r.Context(), id, uid)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				writeError(w, http.StatusNotFound, "Lynt not found")
				return
			}
			app.Log.Error().Err(err).Str("lynt_id", id).Msg("lynt fetch failed")
			writeError(w, http.StatusInternalServerError, "Failed to fetch lynt")
			return
		}

		// Best effort. A failed counter bump never fails the read.
		if err := app.Store.IncrementViews(r.Context(), id); err != nil {
			app.Log.Warn().Err(err).Str("lynt_id", id).Msg("view increment failed")
		}

		referenced := []models.LyntView{}
		if view.Parent != nil && *view.Parent != "" {
			cacheHit := false
			if app.Cache != nil {
				if cached, ok := app.Cache.GetChain(r.Context(), uid, *view.Parent); ok {
					referenced = cached
					cacheHit = true
				}
			}
			if !cacheHit {
				referenced = app.Chains.Resolve(r.Context(), uid, view.Parent)
				// Empty chains are cached too; re-resolving a chain of
				// dead ancestors on every read gains nothing.
				if app.Cache != nil {
					if err := app.Cache.SetChain(r.Context(), uid, *view.Parent, referenced); err != nil {
						app.Log.Debug().Err(err).Str("parent_id", *view.Parent).Msg("chain cache write failed")
					}
				}
			}
		}
		if referenced == nil {
			referenced = []models.LyntView{}
		}

		lyntReads.Inc()
		writeJSON(w, http.StatusOK, readLyntResponse{LyntView: view, ReferencedLynts: referenced})
	}
}
