package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpcontext "github.com/dtroode/aethercure-server/internal/api/http/context"
	"github.com/dtroode/aethercure-server/internal/api/http/middleware"
	"github.com/dtroode/aethercure-server/internal/metrics"
	"github.com/dtroode/aethercure-server/internal/mocks"
	"github.com/dtroode/aethercure-server/internal/model"
	"github.com/dtroode/aethercure-server/internal/testutil"
)

type routerDeps struct {
	auth    *mocks.AuthService
	tokens  *mocks.TokenVerifier
	user    *mocks.UserService
	file    *mocks.FileService
	share   *mocks.ShareService
	medical *mocks.MedicalService
}

func newTestRouter(t *testing.T, limiter *middleware.RateLimiter) (http.Handler, routerDeps) {
	t.Helper()

	deps := routerDeps{
		auth:    mocks.NewAuthService(t),
		tokens:  mocks.NewTokenVerifier(t),
		user:    mocks.NewUserService(t),
		file:    mocks.NewFileService(t),
		share:   mocks.NewShareService(t),
		medical: mocks.NewMedicalService(t),
	}

	reg := prometheus.NewRegistry()
	r := New(Services{
		Auth:    deps.auth,
		Tokens:  deps.tokens,
		User:    deps.user,
		File:    deps.file,
		Share:   deps.share,
		Medical: deps.medical,
	}, httpcontext.NewManager(), limiter, metrics.NewCollector(reg), metrics.Handler(reg), testutil.MakeNoopLogger())

	return r.Register(), deps
}

func serve(h http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_PublicRoutes(t *testing.T) {
	h, deps := newTestRouter(t, nil)

	deps.auth.On("StartSignUp", mock.Anything, "a@b.c", "alice", "pw").Return("flow-1", nil)
	rec := serve(h, http.MethodPost, "/signUp", `{"email":"a@b.c","username":"alice","password":"pw"}`, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"OTP sent to email","id":"flow-1"}`, rec.Body.String())

	rec = serve(h, http.MethodPost, "/logout", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	shareID := uuid.New()
	deps.share.On("GetSharedFile", mock.Anything, shareID).Return(model.SharedFile{
		Share:    model.Share{ID: shareID, ExpiresAt: time.Now().Add(time.Hour)},
		FileName: "scan.pdf",
	}, nil)
	rec = serve(h, http.MethodGet, "/files/shared/"+shareID.String(), "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "scan.pdf")
}

func TestRouter_PrivateRoutesRequireToken(t *testing.T) {
	h, _ := newTestRouter(t, nil)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/getUser"},
		{http.MethodGet, "/getAllUsers"},
		{http.MethodPut, "/update"},
		{http.MethodDelete, "/delete"},
		{http.MethodPost, "/updateBlockchainId"},
		{http.MethodPost, "/resetPassword"},
		{http.MethodPost, "/files"},
		{http.MethodGet, "/files/user"},
		{http.MethodPatch, "/files/" + uuid.NewString()},
		{http.MethodDelete, "/files/" + uuid.NewString()},
		{http.MethodPost, "/files/share"},
		{http.MethodGet, "/files/shared/links"},
		{http.MethodDelete, "/files/shared/" + uuid.NewString()},
		{http.MethodPost, "/medical-info"},
		{http.MethodGet, "/medical-info"},
		{http.MethodDelete, "/medical-info"},
	} {
		rec := serve(h, tc.method, tc.path, "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", tc.method, tc.path)
	}
}

func TestRouter_AuthenticatedRequest(t *testing.T) {
	h, deps := newTestRouter(t, nil)

	userID := uuid.New()
	deps.tokens.On("VerifyToken", mock.Anything, "tok").Return(model.Claims{Identity: model.Identity{UserID: userID}}, nil)
	deps.user.On("GetUser", mock.Anything, userID).Return(model.User{ID: userID, Email: "a@b.c", Username: "alice"}, nil)

	rec := serve(h, http.MethodGet, "/getUser", "", "tok")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"alice"`)
	assert.NotContains(t, rec.Body.String(), "credential")
}

func TestRouter_SharedLinksRouteIsNotAShareID(t *testing.T) {
	h, deps := newTestRouter(t, nil)

	userID := uuid.New()
	deps.tokens.On("VerifyToken", mock.Anything, "tok").Return(model.Claims{Identity: model.Identity{UserID: userID}}, nil)
	deps.share.On("ListShares", mock.Anything, userID).Return([]model.SharedFile{}, nil)

	rec := serve(h, http.MethodGet, "/files/shared/links", "", "tok")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestRouter_RateLimitsAuthEndpoints(t *testing.T) {
	limiter := middleware.NewRateLimiter(1, time.Hour, testutil.MakeNoopLogger())
	defer limiter.Stop()

	h, deps := newTestRouter(t, limiter)
	deps.auth.On("Login", mock.Anything, "a@b.c", "pw").Return(model.SessionResult{}, model.NewInvalidCredentialError()).Once()

	rec := serve(h, http.MethodPost, "/login", `{"email":"a@b.c","password":"pw"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(h, http.MethodPost, "/login", `{"email":"a@b.c","password":"pw"}`, "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	rec = serve(h, http.MethodPost, "/logout", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_Metrics(t *testing.T) {
	h, _ := newTestRouter(t, nil)

	serve(h, http.MethodPost, "/logout", "", "")

	rec := serve(h, http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "aethercure_http_requests_total")
}

func TestRouter_NotFound(t *testing.T) {
	h, _ := newTestRouter(t, nil)

	rec := serve(h, http.MethodGet, "/nope", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
