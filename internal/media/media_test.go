package media

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	appErr "github.com/uptraa/platform/pkg/errors"
)

func TestDataURI(t *testing.T) {
	assert.Equal(t, "data:application/pdf;base64,aGk=", DataURI(File{Name: "cv.pdf", Content: []byte("hi")}))
	assert.Equal(t, "data:application/octet-stream;base64,aGk=", DataURI(File{Name: "blob", Content: []byte("hi")}))
}

func TestRelayUpload(t *testing.T) {
	var got UploadRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/packages/upload", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"url":"https://cdn.test/new.pdf","public_id":"new"}`))
	}))
	defer srv.Close()

	asset, err := NewRelay(srv.URL, srv.Client()).Upload(context.Background(), File{Name: "cv.pdf", Content: []byte("hi")}, "old")
	require.NoError(t, err)
	assert.Equal(t, &Asset{URL: "https://cdn.test/new.pdf", PublicID: "new"}, asset)
	assert.Equal(t, "data:application/pdf;base64,aGk=", got.Buffer)
	assert.Equal(t, "old", got.PublicID)
}

func TestRelayUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Internal server error"}`))
	}))
	defer srv.Close()

	_, err := NewRelay(srv.URL, srv.Client()).Upload(context.Background(), File{Name: "a.png", Content: []byte("x")}, "")
	require.True(t, appErr.IsCode(err, appErr.CodeUpstream))

	srv.Close()
	_, err = NewRelay(srv.URL, nil).Upload(context.Background(), File{Name: "a.png", Content: []byte("x")}, "")
	require.True(t, appErr.IsCode(err, appErr.CodeUpstream))
}

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Upload(ctx context.Context, dataURI string) (*Asset, error) {
	args := m.Called(ctx, dataURI)
	if v := args.Get(0); v != nil {
		return v.(*Asset), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStore) Destroy(ctx context.Context, publicID string) error {
	return m.Called(ctx, publicID).Error(0)
}

func TestReplace(t *testing.T) {
	ctx := context.Background()

	t.Run("destroys previous first", func(t *testing.T) {
		s := new(mockStore)
		destroy := s.On("Destroy", ctx, "old").Return(nil).Once()
		s.On("Upload", ctx, "data:x").Return(&Asset{URL: "u", PublicID: "p"}, nil).Once().NotBefore(destroy)

		a, err := Replace(ctx, s, "data:x", "old")
		require.NoError(t, err)
		assert.Equal(t, "p", a.PublicID)
		s.AssertExpectations(t)
	})

	t.Run("no previous asset", func(t *testing.T) {
		s := new(mockStore)
		s.On("Upload", ctx, "data:x").Return(&Asset{URL: "u", PublicID: "p"}, nil).Once()

		_, err := Replace(ctx, s, "data:x", "")
		require.NoError(t, err)
		s.AssertNotCalled(t, "Destroy", mock.Anything, mock.Anything)
	})

	t.Run("destroy failure aborts", func(t *testing.T) {
		s := new(mockStore)
		s.On("Destroy", ctx, "old").Return(errors.New("boom")).Once()

		_, err := Replace(ctx, s, "data:x", "old")
		require.Error(t, err)
		s.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
	})
}
