// AngelaMos | 2026
// handler_test.go

package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/etsy-dashboard-api/internal/core"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	svc, _, _ := newTestService(t)
	r := chi.NewRouter()
	NewHandler(svc).RegisterRoutes(r, nil)

	return r
}

func send(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var resp core.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	return resp.Error.Code
}

func TestHandler_RegisterAndLogin(t *testing.T) {
	h := newTestRouter(t)

	rec := send(h, http.MethodPost, "/auth/register",
		`{"email":"shop@example.com","password":"hunter22","name":"Shop"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var reg AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reg))
	assert.NotEmpty(t, reg.UserID)
	assert.NotEmpty(t, reg.AccessToken)
	assert.NotContains(t, rec.Body.String(), "password")

	rec = send(h, http.MethodPost, "/auth/login",
		`{"email":"shop@example.com","password":"hunter22"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var login AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))
	assert.Equal(t, reg.UserID, login.UserID)
}

func TestHandler_RegisterDuplicate(t *testing.T) {
	h := newTestRouter(t)
	body := `{"email":"shop@example.com","password":"hunter22"}`

	require.Equal(t, http.StatusCreated, send(h, http.MethodPost, "/auth/register", body).Code)

	rec := send(h, http.MethodPost, "/auth/register", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "EMAIL_EXISTS", errorCode(t, rec))
}

func TestHandler_RegisterValidation(t *testing.T) {
	h := newTestRouter(t)

	rec := send(h, http.MethodPost, "/auth/register", `{"email":"not-an-email","password":"x"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(t, rec))

	rec = send(h, http.MethodPost, "/auth/register", `{"email":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_LoginFailuresLookTheSame(t *testing.T) {
	h := newTestRouter(t)
	send(h, http.MethodPost, "/auth/register", `{"email":"shop@example.com","password":"hunter22"}`)

	wrongPassword := send(h, http.MethodPost, "/auth/login",
		`{"email":"shop@example.com","password":"nope"}`)
	unknownEmail := send(h, http.MethodPost, "/auth/login",
		`{"email":"nobody@example.com","password":"hunter22"}`)

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Contains(t, wrongPassword.Body.String(), "invalid email or password")
	assert.JSONEq(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}

func TestHandler_GetUserInfo(t *testing.T) {
	h := newTestRouter(t)

	rec := send(h, http.MethodPost, "/auth/register", `{"email":"shop@example.com","password":"hunter22"}`)
	var reg AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reg))

	t.Run("query token", func(t *testing.T) {
		rec := send(h, http.MethodGet, "/auth/users/"+reg.UserID+"?token="+reg.AccessToken, "")
		require.Equal(t, http.StatusOK, rec.Code)

		var info UserInfoResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
		assert.Equal(t, reg.UserID, info.UserID)
		assert.Equal(t, FreeAnalysesLimit, info.AnalysesLimit)
	})

	t.Run("bearer header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/auth/users/"+reg.UserID, nil)
		req.Header.Set("Authorization", "Bearer "+reg.AccessToken)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		rec := send(h, http.MethodGet, "/auth/users/"+reg.UserID, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("other account", func(t *testing.T) {
		rec := send(h, http.MethodPost, "/auth/register", `{"email":"other@example.com","password":"hunter22"}`)
		require.Equal(t, http.StatusCreated, rec.Code)
		var other AuthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &other))

		existing := send(h, http.MethodGet, "/auth/users/"+other.UserID+"?token="+reg.AccessToken, "")
		missing := send(h, http.MethodGet, "/auth/users/someone-else?token="+reg.AccessToken, "")

		assert.Equal(t, http.StatusForbidden, existing.Code)
		assert.Equal(t, "FORBIDDEN", errorCode(t, existing))
		assert.Equal(t, http.StatusForbidden, missing.Code)
		assert.JSONEq(t, existing.Body.String(), missing.Body.String())
	})

	t.Run("expired and invalid look the same", func(t *testing.T) {
		past := time.Now().Add(-48 * time.Hour)
		old, err := NewTokenManager(testJWTConfig(), WithClock(func() time.Time { return past }))
		require.NoError(t, err)
		expired, err := old.CreateToken(reg.UserID, reg.Email)
		require.NoError(t, err)

		expiredRec := send(h, http.MethodGet, "/auth/users/"+reg.UserID+"?token="+expired, "")
		invalidRec := send(h, http.MethodGet, "/auth/users/"+reg.UserID+"?token=garbage", "")

		assert.Equal(t, http.StatusUnauthorized, expiredRec.Code)
		assert.Equal(t, http.StatusUnauthorized, invalidRec.Code)
		assert.JSONEq(t, expiredRec.Body.String(), invalidRec.Body.String())
	})
}
