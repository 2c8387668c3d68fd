package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-post-board/internal/logger"
	"github.com/MKhiriev/go-post-board/internal/mock"
	"github.com/MKhiriev/go-post-board/internal/service"
	"github.com/MKhiriev/go-post-board/internal/store"
	"github.com/MKhiriev/go-post-board/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// stubPinger satisfies Pinger with a fixed outcome.
type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

// newTestRouter wires a full router over mocked services so tests exercise
// routing, middleware, and handlers together.
func newTestRouter(t *testing.T, ctrl *gomock.Controller) (http.Handler, *mock.MockAuthService, *mock.MockPostService) {
	t.Helper()

	auth := mock.NewMockAuthService(ctrl)
	posts := mock.NewMockPostService(ctrl)
	h := NewHandler(&service.Services{AuthService: auth, PostService: posts}, stubPinger{}, logger.Nop())

	return h.Init(), auth, posts
}

// doRequest runs one request through the router and returns the recorder.
func doRequest(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func decodePost(t *testing.T, rec *httptest.ResponseRecorder) models.Post {
	t.Helper()

	var post models.Post
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&post))
	return post
}

// ─────────────────────────────────────────────
// GET /posts
// ─────────────────────────────────────────────

func TestFetchPosts_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _, posts := newTestRouter(t, ctrl)

	want := []models.Post{
		{ID: 1, Title: "first", Body: "one", Published: true},
		{ID: 2, Title: "second", Body: "two"},
	}
	posts.EXPECT().Posts(gomock.Any()).Return(want, nil)

	rec := doRequest(router, http.MethodGet, "/posts", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got []models.Post
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, want, got)
}

// TestFetchPosts_Empty verifies an empty board serialises as a JSON array,
// not null.
func TestFetchPosts_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _, posts := newTestRouter(t, ctrl)
	posts.EXPECT().Posts(gomock.Any()).Return([]models.Post{}, nil)

	rec := doRequest(router, http.MethodGet, "/posts", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestFetchPosts_PoolExhausted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _, posts := newTestRouter(t, ctrl)
	posts.EXPECT().Posts(gomock.Any()).Return(nil, store.ErrPoolExhausted)

	rec := doRequest(router, http.MethodGet, "/posts", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "unable to retrieve posts")
}

// ─────────────────────────────────────────────
// GET /post/{id}
// ─────────────────────────────────────────────

func TestFetchPost_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _, posts := newTestRouter(t, ctrl)

	want := models.Post{ID: 42, Title: "found", Body: "content", Published: true}
	posts.EXPECT().Post(gomock.Any(), int64(42)).Return(want, nil)

	rec := doRequest(router, http.MethodGet, "/post/42", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, want, decodePost(t, rec))
}

func TestFetchPost_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _, posts := newTestRouter(t, ctrl)
	posts.EXPECT().Post(gomock.Any(), int64(99)).Return(models.Post{}, store.ErrNotFound)

	rec := doRequest(router, http.MethodGet, "/post/99", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "no post has this id: 99")
}

func TestFetchPost_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _, _ := newTestRouter(t, ctrl)

	rec := doRequest(router, http.MethodGet, "/post/not-a-number", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid post id")
}

// ─────────────────────────────────────────────
// POST /createPost
// ─────────────────────────────────────────────

func TestCreatePost_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _, posts := newTestRouter(t, ctrl)

	created := models.Post{ID: 10, Title: "new", Body: "content", Published: false}
	posts.EXPECT().Create(gomock.Any(), "new", "content").Return(created, nil)

	rec := doRequest(router, http.MethodPost, "/createPost", `{"title":"new","body":"content"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodePost(t, rec)
	assert.Equal(t, created, got)
	assert.False(t, got.Published, "new posts must come back unpublished")
}

func TestCreatePost_InvalidJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _, _ := newTestRouter(t, ctrl)

	rec := doRequest(router, http.MethodPost, "/createPost", "{broken")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid JSON was passed")
}

func TestCreatePost_EmptyTitle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _, posts := newTestRouter(t, ctrl)
	posts.EXPECT().Create(gomock.Any(), "", "content").Return(models.Post{}, service.ErrInvalidDataProvided)

	rec := doRequest(router, http.MethodPost, "/createPost", `{"title":"","body":"content"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// PUT /post/{id} — bearer-gated
// ─────────────────────────────────────────────

func TestUpdatePost_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, auth, posts := newTestRouter(t, ctrl)

	auth.EXPECT().ParseToken(gomock.Any(), "valid-token").
		Return(models.TokenClaims{ID: 42}, nil)

	updated := models.Post{ID: 5, Title: "edited", Body: "new body", Published: true}
	posts.EXPECT().Update(gomock.Any(), int64(5), "edited", "new body", true).Return(updated, nil)

	req := httptest.NewRequest(http.MethodPut, "/post/5", strings.NewReader(`{"title":"edited","body":"new body","published":true}`))
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, updated, decodePost(t, rec))
}

// TestUpdatePost_AttributesUserID verifies the mutation is logged against the
// user the bearer token was issued to.
func TestUpdatePost_AttributesUserID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	auth := mock.NewMockAuthService(ctrl)
	posts := mock.NewMockPostService(ctrl)

	var logs bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&logs)}
	router := NewHandler(&service.Services{AuthService: auth, PostService: posts}, stubPinger{}, log).Init()

	auth.EXPECT().ParseToken(gomock.Any(), "valid-token").
		Return(models.TokenClaims{ID: 42}, nil)
	posts.EXPECT().Update(gomock.Any(), int64(5), "edited", "new body", true).
		Return(models.Post{ID: 5, Title: "edited", Body: "new body", Published: true}, nil)

	req := httptest.NewRequest(http.MethodPut, "/post/5", strings.NewReader(`{"title":"edited","body":"new body","published":true}`))
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, logs.String(), `"user_id":42`)
	assert.Contains(t, logs.String(), `"post_id":5`)
}

// TestUpdatePost_WithoutToken verifies the route is unreachable without a
// bearer token: the service layer must never be called.
func TestUpdatePost_WithoutToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _, _ := newTestRouter(t, ctrl)

	rec := doRequest(router, http.MethodPut, "/post/5", `{"title":"edited","body":"x"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdatePost_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, auth, posts := newTestRouter(t, ctrl)

	auth.EXPECT().ParseToken(gomock.Any(), "valid-token").
		Return(models.TokenClaims{ID: 42}, nil)
	posts.EXPECT().Update(gomock.Any(), int64(404), "t", "b", false).
		Return(models.Post{}, store.ErrNotFound)

	req := httptest.NewRequest(http.MethodPut, "/post/404", strings.NewReader(`{"title":"t","body":"b"}`))
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "no post has this id: 404")
}

// ─────────────────────────────────────────────
// DELETE /post/{id}
// ─────────────────────────────────────────────

func TestDeletePost_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _, posts := newTestRouter(t, ctrl)

	snapshot := models.Post{ID: 3, Title: "gone", Body: "last words"}
	posts.EXPECT().Delete(gomock.Any(), int64(3)).Return(snapshot, nil)

	rec := doRequest(router, http.MethodDelete, "/post/3", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, snapshot, decodePost(t, rec))
}

func TestDeletePost_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _, posts := newTestRouter(t, ctrl)
	posts.EXPECT().Delete(gomock.Any(), int64(404)).Return(models.Post{}, store.ErrNotFound)

	rec := doRequest(router, http.MethodDelete, "/post/404", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────
// Routing
// ─────────────────────────────────────────────

func TestRouter_UnknownRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _, _ := newTestRouter(t, ctrl)

	rec := doRequest(router, http.MethodGet, "/nope", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _, _ := newTestRouter(t, ctrl)

	rec := doRequest(router, http.MethodPatch, "/posts", "")

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
