// Package media moves uploaded files to the asset host, either directly
// (packages service) or through the packages service's upload endpoint.
package media

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"

	appErr "github.com/uptraa/platform/pkg/errors"
)

// File is an uploaded file held in memory.
type File struct {
	Name    string
	Content []byte
}

// Asset is a stored file: its public URL and the host's id for it.
type Asset struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

// UploadRequest is the body of POST /api/packages/upload.
type UploadRequest struct {
	Buffer   string `json:"buffer"`
	PublicID string `json:"public_id,omitempty"`
}

// Uploader stores a file, replacing the asset named by previousID when set.
type Uploader interface {
	Upload(ctx context.Context, f File, previousID string) (*Asset, error)
}

// DataURI encodes f as data:<mime>;base64,<content>. The mime type comes from
// the file extension.
func DataURI(f File) string {
	mt := mime.TypeByExtension(filepath.Ext(f.Name))
	if mt == "" {
		mt = "application/octet-stream"
	}
	return "data:" + mt + ";base64," + base64.StdEncoding.EncodeToString(f.Content)
}

// Relay uploads through the packages service.
type Relay struct {
	endpoint string
	client   *http.Client
}

// NewRelay targets <baseURL>/api/packages/upload. A nil client means http.DefaultClient.
func NewRelay(baseURL string, client *http.Client) *Relay {
	if client == nil {
		client = http.DefaultClient
	}
	return &Relay{endpoint: baseURL + "/api/packages/upload", client: client}
}

func (r *Relay) Upload(ctx context.Context, f File, previousID string) (*Asset, error) {
	body, err := json.Marshal(UploadRequest{Buffer: DataURI(f), PublicID: previousID})
	if err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "encode upload request failed")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "build upload request failed")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, appErr.Upstream(err, "File upload failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, appErr.Upstream(err, "File upload failed")
	}
	if resp.StatusCode/100 != 2 {
		return nil, appErr.Upstream(fmt.Errorf("upload service returned %d: %s", resp.StatusCode, raw), "File upload failed")
	}

	var asset Asset
	if err := json.Unmarshal(raw, &asset); err != nil {
		return nil, appErr.Upstream(err, "File upload failed")
	}
	if asset.URL == "" {
		return nil, appErr.Upstream(fmt.Errorf("upload service returned no url"), "File upload failed")
	}
	return &asset, nil
}
