//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/aip-review-backend/internal/adapter/objectstore/fs"
	"github.com/heartmarshall/aip-review-backend/internal/adapter/postgres"
	"github.com/heartmarshall/aip-review-backend/internal/adapter/postgres/activity"
	"github.com/heartmarshall/aip-review-backend/internal/adapter/postgres/aip"
	"github.com/heartmarshall/aip-review-backend/internal/adapter/postgres/profile"
	"github.com/heartmarshall/aip-review-backend/internal/adapter/postgres/project"
	"github.com/heartmarshall/aip-review-backend/internal/adapter/postgres/projectupdate"
	reviewrepo "github.com/heartmarshall/aip-review-backend/internal/adapter/postgres/review"
	"github.com/heartmarshall/aip-review-backend/internal/adapter/postgres/testhelper"
	authpkg "github.com/heartmarshall/aip-review-backend/internal/auth"
	"github.com/heartmarshall/aip-review-backend/internal/config"
	"github.com/heartmarshall/aip-review-backend/internal/domain"
	"github.com/heartmarshall/aip-review-backend/internal/service/review"
	"github.com/heartmarshall/aip-review-backend/internal/service/scope"
	"github.com/heartmarshall/aip-review-backend/internal/service/submission"
	"github.com/heartmarshall/aip-review-backend/internal/transport/middleware"
	"github.com/heartmarshall/aip-review-backend/internal/transport/rest"
)

const mediaBucket = "project-media"

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL       string
	Client    *http.Client
	Pool      *pgxpool.Pool
	MediaRoot string
	jwt       *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper) and a filesystem object store.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	mediaRoot := t.TempDir()
	store, err := fs.New(mediaRoot)
	require.NoError(t, err)
	require.NoError(t, store.EnsureBucket(t.Context(), mediaBucket))

	txm := postgres.NewTxManager(pool)
	aipRepo := aip.New(pool)
	reviewRepo := reviewrepo.New(pool)
	profileRepo := profile.New(pool)
	activityRepo := activity.New(pool)
	projectRepo := project.New(pool)
	updateRepo := projectupdate.New(pool)

	resolver := scope.NewResolver(logger, projectRepo)
	reviewSvc := review.NewService(logger, aipRepo, reviewRepo, profileRepo, activityRepo, txm)
	submissionSvc := submission.NewService(logger, resolver, projectRepo, updateRepo, store,
		profileRepo, activityRepo, txm, submission.Limits{Bucket: mediaBucket})

	jwtMgr := authpkg.NewJWTManager("test-secret-at-least-32-chars-long!!", "test-issuer", 15*time.Minute)

	router := rest.NewRouter(rest.Handlers{
		Health:  rest.NewHealthHandler(pool, store, mediaBucket, "test-version"),
		Review:  rest.NewReviewHandler(reviewSvc, logger),
		Project: rest.NewProjectHandler(submissionSvc, submission.DefaultMaxImageBytes, submission.DefaultMaxUpdatePhotos, logger),
	}, rest.RouterConfig{
		Global: []middleware.Middleware{
			middleware.RequestID(),
			middleware.Recovery(logger),
			middleware.CORS(config.CORSConfig{
				AllowedOrigins: "*",
				AllowedMethods: "GET,POST,OPTIONS",
				AllowedHeaders: "Authorization,Content-Type",
				MaxAge:         86400,
			}),
			middleware.Auth(jwtMgr, logger),
			middleware.Logger(logger),
		},
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:       srv.URL,
		Client:    srv.Client(),
		Pool:      pool,
		MediaRoot: mediaRoot,
		jwt:       jwtMgr,
	}
}

// ---------------------------------------------------------------------------
// Actors and fixtures.
// ---------------------------------------------------------------------------

type jurisdiction struct {
	CityID     uuid.UUID
	BarangayID uuid.UUID
}

func seedJurisdiction(t *testing.T, ts *testServer) jurisdiction {
	t.Helper()
	cityID := testhelper.SeedCity(t, ts.Pool)
	return jurisdiction{CityID: cityID, BarangayID: testhelper.SeedBarangay(t, ts.Pool, cityID)}
}

// tokenFor seeds a profile with role and returns it with a signed access token
// scoped to scope.
func (ts *testServer) tokenFor(t *testing.T, role domain.UserRole, s domain.Scope) (domain.Profile, string) {
	t.Helper()

	p := testhelper.SeedProfile(t, ts.Pool, role)
	tok, err := ts.jwt.GenerateAccessToken(domain.Actor{UserID: p.ID, Role: role, Scope: s})
	require.NoError(t, err)
	return p, tok
}

// ---------------------------------------------------------------------------
// HTTP helpers.
// ---------------------------------------------------------------------------

func (ts *testServer) do(t *testing.T, method, path, contentType string, body io.Reader, token string) (int, map[string]any) {
	t.Helper()

	req, err := http.NewRequest(method, ts.URL+path, body)
	require.NoError(t, err)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var result map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return resp.StatusCode, result
}

func (ts *testServer) postJSON(t *testing.T, path string, payload any, token string) (int, map[string]any) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	return ts.do(t, http.MethodPost, path, "application/json", body, token)
}

func (ts *testServer) get(t *testing.T, path, token string) (int, map[string]any) {
	t.Helper()
	return ts.do(t, http.MethodGet, path, "", nil, token)
}

type formFile struct {
	Field string
	Name  string
	Mime  string
	Data  []byte
}

func (ts *testServer) postMultipart(t *testing.T, path string, fields map[string]string, files []formFile, token string) (int, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, f.Field, f.Name))
		h.Set("Content-Type", f.Mime)
		part, err := mw.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(f.Data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	return ts.do(t, http.MethodPost, path, mw.FormDataContentType(), &buf, token)
}

func jpeg(name string) formFile {
	return formFile{Field: "photos", Name: name, Mime: "image/jpeg", Data: bytes.Repeat([]byte{0xFF}, 2048)}
}

// ---------------------------------------------------------------------------
// Response extraction helpers.
// ---------------------------------------------------------------------------

func reviewOf(t *testing.T, body map[string]any) map[string]any {
	t.Helper()
	r, ok := body["review"].(map[string]any)
	require.True(t, ok, "expected review object in %v", body)
	return r
}

func aipStatus(t *testing.T, ts *testServer, aipID uuid.UUID) domain.AIPStatus {
	t.Helper()
	var status string
	err := ts.Pool.QueryRow(t.Context(), `SELECT status::text FROM aips WHERE id = $1`, aipID).Scan(&status)
	require.NoError(t, err)
	return domain.AIPStatus(status)
}

func countRows(t *testing.T, ts *testServer, query string, args ...any) int {
	t.Helper()
	var n int
	require.NoError(t, ts.Pool.QueryRow(t.Context(), query, args...).Scan(&n))
	return n
}
