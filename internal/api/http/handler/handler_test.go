package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	httpcontext "github.com/dtroode/aethercure-server/internal/api/http/context"
	"github.com/dtroode/aethercure-server/internal/model"
)

// newRequest builds a request with optional body, signed-in user and chi
// URL params given as name/value pairs.
func newRequest(method, target, body string, userID uuid.UUID, params ...string) *http.Request {
	var r *http.Request
	if body != "" {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		r = httptest.NewRequest(method, target, nil)
	}

	ctx := r.Context()
	if userID != uuid.Nil {
		ctx = httpcontext.NewManager().SetClaimsToContext(ctx, model.Claims{Identity: model.Identity{UserID: userID}})
	}
	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for i := 0; i+1 < len(params); i += 2 {
			rctx.URLParams.Add(params[i], params[i+1])
		}
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return r.WithContext(ctx)
}

func TestStatusForKind(t *testing.T) {
	tests := []struct {
		kind model.ErrorKind
		want int
	}{
		{model.KindValidation, http.StatusBadRequest},
		{model.KindInvalidCode, http.StatusBadRequest},
		{model.KindConflict, http.StatusConflict},
		{model.KindExpired, http.StatusGone},
		{model.KindInvalidCredential, http.StatusUnauthorized},
		{model.KindNotFound, http.StatusNotFound},
		{model.KindForbidden, http.StatusForbidden},
		{model.KindStoreUnavailable, http.StatusServiceUnavailable},
		{model.KindFatal, http.StatusInternalServerError},
		{model.KindInternal, http.StatusInternalServerError},
		{model.ErrorKind(99), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, StatusForKind(tt.kind))
		})
	}
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "conflict keeps message",
			err:      model.NewConflictError("email already exists"),
			wantCode: http.StatusConflict,
			wantBody: `{"error":"email already exists","kind":"conflict"}`,
		},
		{
			name:     "fatal hides cause",
			err:      model.NewFatalError("entropy failure", errors.New("read /dev/urandom")),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"internal server error","kind":"fatal"}`,
		},
		{
			name:     "untagged error",
			err:      errors.New("boom"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"internal server error","kind":"internal"}`,
		},
		{
			name:     "wrapped tagged error",
			err:      errors.Join(errors.New("ctx"), model.NewNotFoundError("user not found")),
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"user not found","kind":"not_found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	writeJSON(rec, http.StatusCreated, messageResponse{Message: "ok"})
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"ok"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	assert.NotPanics(t, func() {
		writeJSON(rec, http.StatusOK, map[string]any{"bad": make(chan int)})
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}

	rec := httptest.NewRecorder()
	err := decodeJSON(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("")), &v)
	assert.Equal(t, model.KindValidation, model.KindOf(err))
	assert.EqualError(t, err, "empty request body")

	err = decodeJSON(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{bad")), &v)
	assert.EqualError(t, err, "invalid request body")

	big := `{"name":"` + strings.Repeat("a", maxBodyBytes) + `"}`
	err = decodeJSON(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(big)), &v)
	assert.Equal(t, model.KindValidation, model.KindOf(err))

	err = decodeJSON(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"x"}`)), &v)
	assert.NoError(t, err)
	assert.Equal(t, "x", v.Name)
}

func TestParseUUID(t *testing.T) {
	id := uuid.New()

	got, err := parseUUID(id.String(), "file id")
	assert.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = parseUUID("nope", "file id")
	assert.EqualError(t, err, "invalid file id")
}
