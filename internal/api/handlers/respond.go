package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/uptraa/platform/internal/api/middleware"
	"github.com/uptraa/platform/internal/api/types"
	"github.com/uptraa/platform/internal/media"
	appErr "github.com/uptraa/platform/pkg/errors"
	"github.com/uptraa/platform/pkg/logger"
)

const (
	maxJSONBytes   = 1 << 20
	maxUploadBytes = 10 << 20
	fileField      = "file"
	msgBadBody     = "Invalid request body"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respond(w http.ResponseWriter, status int, message string, payload map[string]any) {
	writeJSON(w, status, types.OK(message, payload))
}

// respondError is the single place where errors become HTTP statuses.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := types.FromError(err)
	if status >= http.StatusInternalServerError {
		logger.L().Error("request failed",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.String("path", r.URL.Path),
			zap.Error(err))
	}
	writeJSON(w, status, body)
}

// decodeJSON reads a JSON object body. An empty body is an empty object.
func decodeJSON(w http.ResponseWriter, r *http.Request) (map[string]any, error) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxJSONBytes))
	if err != nil {
		return nil, appErr.Invalid(msgBadBody)
	}
	payload := map[string]any{}
	if len(bytes.TrimSpace(raw)) == 0 {
		return payload, nil
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, appErr.Invalid(msgBadBody)
	}
	return payload, nil
}

// decodePayload accepts JSON, urlencoded and multipart bodies.
func decodePayload(w http.ResponseWriter, r *http.Request) (map[string]any, error) {
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch ct {
	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			return nil, appErr.Invalid(msgBadBody)
		}
		return formValues(r.MultipartForm.Value), nil
	case "application/x-www-form-urlencoded":
		r.Body = http.MaxBytesReader(w, r.Body, maxJSONBytes)
		if err := r.ParseForm(); err != nil {
			return nil, appErr.Invalid(msgBadBody)
		}
		return formValues(r.PostForm), nil
	}
	return decodeJSON(w, r)
}

func formValues(values url.Values) map[string]any {
	out := make(map[string]any, len(values))
	for k, v := range values {
		if len(v) > 0 {
			out[k] = v[0]
		}
	}
	return out
}

// formFile returns the uploaded file, or nil when the request carries none.
func formFile(r *http.Request) (*media.File, error) {
	if r.MultipartForm == nil {
		ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if ct != "multipart/form-data" {
			return nil, nil
		}
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			return nil, appErr.Invalid("Invalid file")
		}
	}

	f, hdr, err := r.FormFile(fileField)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, appErr.Invalid("Invalid file")
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, appErr.Invalid("Invalid file")
	}
	return &media.File{Name: hdr.Filename, Content: content}, nil
}
