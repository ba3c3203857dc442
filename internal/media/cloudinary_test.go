package media

import (
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func TestCloudinarySource(t *testing.T) {
	encodedPNG := base64.StdEncoding.EncodeToString(pngBytes)
	secretPath := filepath.Join(t.TempDir(), "secret.txt")
	require.NoError(t, os.WriteFile(secretPath, []byte("top secret"), 0o600))

	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "data uri", in: "data:image/png;base64," + encodedPNG, want: "data:image/png;base64," + encodedPNG},
		{name: "https url", in: "https://cdn.example.com/a.png", want: "https://cdn.example.com/a.png"},
		{name: "http url", in: "http://cdn.example.com/a.png", want: "http://cdn.example.com/a.png"},
		{name: "bare base64 image", in: encodedPNG, want: "data:image/png;base64," + encodedPNG},
		{name: "local path", in: secretPath, wantErr: true},
		{name: "relative path", in: "../config/.env", wantErr: true},
		{name: "file url", in: "file://" + secretPath, wantErr: true},
		{name: "bare base64 non image", in: base64.StdEncoding.EncodeToString([]byte("hello image")), wantErr: true},
		{name: "malformed data uri", in: "data:image/png;base64,***", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cloudinarySource(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedSource)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func newTestCloudinary(t *testing.T, handler http.HandlerFunc) *CloudinaryUploader {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	u, err := NewCloudinaryUploader("demo", "key", "secret")
	require.NoError(t, err)
	u.cld.Config.API.UploadPrefix = srv.URL
	return u
}

func TestCloudinaryUploader_Upload(t *testing.T) {
	t.Run("local file is never read", func(t *testing.T) {
		var hits int32
		u := newTestCloudinary(t, func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&hits, 1)
			w.WriteHeader(http.StatusInternalServerError)
		})
		secretPath := filepath.Join(t.TempDir(), "secret.txt")
		require.NoError(t, os.WriteFile(secretPath, []byte("top secret"), 0o600))

		res, err := u.Upload(context.Background(), secretPath, "productImage")

		assert.ErrorIs(t, err, ErrUnsupportedSource)
		assert.Empty(t, res.SecureURL)
		assert.Zero(t, atomic.LoadInt32(&hits))
	})

	t.Run("bare base64 is sent as a data uri", func(t *testing.T) {
		var body string
		u := newTestCloudinary(t, func(w http.ResponseWriter, r *http.Request) {
			raw, _ := io.ReadAll(r.Body)
			body = string(raw)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"secure_url":"https://res.example.com/productImage/x.png","public_id":"productImage/x"}`))
		})

		res, err := u.Upload(context.Background(), base64.StdEncoding.EncodeToString(pngBytes), "productImage")

		require.NoError(t, err)
		assert.Equal(t, "https://res.example.com/productImage/x.png", res.SecureURL)
		assert.Equal(t, "productImage/x", res.PublicID)
		assert.True(t, strings.Contains(body, "data:image/png;base64,") || strings.Contains(body, "data%3Aimage%2Fpng%3Bbase64%2C"))
	})
}
