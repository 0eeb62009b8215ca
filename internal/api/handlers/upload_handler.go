package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/uptraa/platform/internal/api/types"
	"github.com/uptraa/platform/internal/media"
	"github.com/uptraa/platform/pkg/logger"
)

const maxRelayBytes = 50 << 20

// UploadHandler stores relayed files on the media host.
type UploadHandler struct {
	store media.Store
}

func NewUploadHandler(store media.Store) *UploadHandler {
	return &UploadHandler{store: store}
}

// Upload takes {buffer, public_id} and answers {url, public_id}. The asset
// named by public_id, if any, is destroyed first.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	var req media.UploadRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRelayBytes)).Decode(&req); err != nil {
		h.fail(w, err)
		return
	}
	if req.Buffer == "" {
		h.fail(w, errors.New("buffer is required"))
		return
	}

	asset, err := media.Replace(r.Context(), h.store, req.Buffer, req.PublicID)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, asset)
}

func (h *UploadHandler) fail(w http.ResponseWriter, err error) {
	logger.L().Error("upload failed", zap.Error(err))
	writeJSON(w, http.StatusInternalServerError, types.ErrorBody{Error: types.InternalServerError, Stack: err.Error()})
}
