package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-post-board/internal/service"
	"github.com/MKhiriev/go-post-board/internal/store"
	"github.com/MKhiriev/go-post-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// POST /user — register
// ─────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, auth, _ := newTestRouter(t, ctrl)

	auth.EXPECT().Register(gomock.Any(), "alice", "s3cret").
		Return(models.User{ID: 1, Username: "alice", PasswordHash: "opaque"}, nil)

	rec := doRequest(router, http.MethodPost, "/user", `{"username":"alice","password":"s3cret"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, float64(1), body["id"])
	assert.Equal(t, "alice", body["username"])
	assert.NotContains(t, body, "password_hash", "the stored hash must never be serialised")
}

func TestRegister_InvalidJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _, _ := newTestRouter(t, ctrl)

	rec := doRequest(router, http.MethodPost, "/user", "{not json")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid JSON was passed")
}

func TestRegister_UsernameTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, auth, _ := newTestRouter(t, ctrl)

	auth.EXPECT().Register(gomock.Any(), "alice", "s3cret").
		Return(models.User{}, store.ErrUsernameTaken)

	rec := doRequest(router, http.MethodPost, "/user", `{"username":"alice","password":"s3cret"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegister_EmptyFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, auth, _ := newTestRouter(t, ctrl)

	auth.EXPECT().Register(gomock.Any(), "", "").
		Return(models.User{}, service.ErrInvalidDataProvided)

	rec := doRequest(router, http.MethodPost, "/user", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// GET /auth — login
// ─────────────────────────────────────────────

// TestLogin_Success verifies the issued token is returned both in the
// Authorization response header and in the JSON body.
func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, auth, _ := newTestRouter(t, ctrl)

	const signed = "signed.jwt.token"
	auth.EXPECT().Login(gomock.Any(), "alice", "s3cret").
		Return(models.Token{SignedString: signed, UserID: 42}, nil)

	req := httptest.NewRequest(http.MethodGet, "/auth", strings.NewReader(""))
	req.SetBasicAuth("alice", "s3cret")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer "+signed, rec.Header().Get("Authorization"))
	assert.JSONEq(t, `{"token":"signed.jwt.token"}`, rec.Body.String())
}

// TestLogin_NoCredentials verifies a request with no basic-auth header is
// rejected before the auth service is consulted.
func TestLogin_NoCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _, _ := newTestRouter(t, ctrl)

	rec := doRequest(router, http.MethodGet, "/auth", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing credentials")
}

func TestLogin_InvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, auth, _ := newTestRouter(t, ctrl)

	auth.EXPECT().Login(gomock.Any(), "alice", "wrong").
		Return(models.Token{}, service.ErrInvalidCredentials)

	req := httptest.NewRequest(http.MethodGet, "/auth", strings.NewReader(""))
	req.SetBasicAuth("alice", "wrong")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid username/password")
}

// TestLogin_HashingFault verifies a server-side hashing fault surfaces as an
// internal error, never as a credential rejection: neither the status nor the
// body may suggest the password was wrong.
func TestLogin_HashingFault(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, auth, _ := newTestRouter(t, ctrl)

	auth.EXPECT().Login(gomock.Any(), "alice", "s3cret").
		Return(models.Token{}, service.ErrHashingFault)

	req := httptest.NewRequest(http.MethodGet, "/auth", strings.NewReader(""))
	req.SetBasicAuth("alice", "s3cret")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal server error")
	assert.NotContains(t, rec.Body.String(), "invalid username/password")
}

// TestLogin_DispatcherFault verifies infrastructure failures during login get
// the same generic treatment as hashing faults.
func TestLogin_DispatcherFault(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, auth, _ := newTestRouter(t, ctrl)

	auth.EXPECT().Login(gomock.Any(), "alice", "s3cret").
		Return(models.Token{}, store.ErrPoolExhausted)

	req := httptest.NewRequest(http.MethodGet, "/auth", strings.NewReader(""))
	req.SetBasicAuth("alice", "s3cret")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal server error")
	assert.NotContains(t, rec.Body.String(), "invalid username/password")
}
