package httpx

import (
	"io"
	"net/http"

	"local.dev/lyntr-backend/internal/media"
)

// HandleUpload serves POST /api/upload: replaces the caller's avatar.
// The blob key is the user ID, so re-uploading overwrites in place.
func HandleUpload(app *AppCtx) http.HandlerFunc {
	return WithAuth(app, func(w http.ResponseWriter, r *http.Request) {
		uid := currentUID(r)

		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)
		if err := r.ParseMultipartForm(multipartMemBytes); err != nil {
			writeError(w, http.StatusBadRequest, "No file uploaded")
			return
		}

		file, _, err := r.FormFile("file")
		if err != nil {
			writeError(w, http.StatusBadRequest, "No file uploaded")
			return
		}
		defer file.Close()

		raw, err := io.ReadAll(file)
		if err != nil {
			app.Log.Error().Err(err).Str("user_id", uid).Str("step", "read").Msg("avatar upload failed")
			writeError(w, http.StatusInternalServerError, "File upload failed")
			return
		}

		resized, err := media.Transcode(raw)
		if err != nil {
			app.Log.Error().Err(err).Str("user_id", uid).Str("step", "transcode").Msg("avatar upload failed")
			writeError(w, http.StatusInternalServerError, "File upload failed")
			return
		}

		if err := app.Blob.Put(r.Context(), uid, resized, media.ContentType); err != nil {
			app.Log.Error().Err(err).Str("user_id", uid).Str("step", "store").Msg("avatar upload failed")
			writeError(w, http.StatusInternalServerError, "File upload failed")
			return
		}

		avatarUploads.Inc()
		writeJSON(w, http.StatusOK, map[string]string{"message": "File uploaded successfully"})
	})
}
