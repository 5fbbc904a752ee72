package controller_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gamereviewhub/game-review-service/config"
	"github.com/gamereviewhub/game-review-service/http/controller"
	routes "github.com/gamereviewhub/game-review-service/http/route"
	"github.com/gamereviewhub/game-review-service/infra"
	"github.com/gamereviewhub/game-review-service/repository"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	router *gin.Engine
	repo   *repository.Repository
	cfg    *config.Config
	blobs  *blobRecorder
}

// blobRecorder keeps uploaded objects in memory and records removals.
type blobRecorder struct {
	objects      map[string][]byte
	contentTypes map[string]string
	removed      []string
}

func newBlobRecorder() *blobRecorder {
	return &blobRecorder{
		objects:      map[string][]byte{},
		contentTypes: map[string]string{},
	}
}

func (b *blobRecorder) PutObject(_ context.Context, key string, reader io.Reader, _ int64, contentType string) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	b.objects[key] = data
	b.contentTypes[key] = contentType
	return nil
}

func (b *blobRecorder) GetObject(_ context.Context, key string) (io.ReadCloser, minio.ObjectInfo, error) {
	data, ok := b.objects[key]
	if !ok {
		return nil, minio.ObjectInfo{}, fmt.Errorf("no such object %s", key)
	}
	info := minio.ObjectInfo{
		Key:         key,
		Size:        int64(len(data)),
		ContentType: b.contentTypes[key],
	}
	return io.NopCloser(bytes.NewReader(data)), info, nil
}

func (b *blobRecorder) RemoveObject(_ context.Context, key string) error {
	b.removed = append(b.removed, key)
	delete(b.objects, key)
	delete(b.contentTypes, key)
	return nil
}

func (b *blobRecorder) PresignedGetURL(_ context.Context, key string, _ time.Duration) (string, error) {
	return "http://blobs.local/" + key, nil
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, infra.Migrate(db))

	cfg := config.NewConfig()
	infraInst := &infra.Infra{
		Postgres:    &infra.PostgresClient{DB: db},
		Logger:      infra.InitLoggerClient(cfg.EnvConfig),
		Telemetry:   &infra.TelemetryClient{},
		Thumbnailer: infra.InitThumbnailer(cfg.EnvConfig),
	}
	repo := repository.NewRepository(db)
	ctrl := controller.NewController(cfg, infraInst, repo)
	blobs := newBlobRecorder()
	ctrl.Blobs = blobs

	return &testEnv{
		router: routes.SetupRouter(ctrl),
		repo:   repo,
		cfg:    cfg,
		blobs:  blobs,
	}
}

func (e *testEnv) request(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) multipartRequest(t *testing.T, path, filename string, fileData []byte, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(fileData)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// registerAndLogin creates an account and returns a usable bearer token.
func (e *testEnv) registerAndLogin(t *testing.T, email string) string {
	t.Helper()
	creds := map[string]string{"email": email, "password": "supersecret1"}
	w := e.request(t, http.MethodPost, "/api/auth/register", creds, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = e.request(t, http.MethodPost, "/api/auth/login", creds, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"details"`
	} `json:"error"`
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorEnvelope {
	t.Helper()
	var env errorEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}
