package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpcontext "github.com/dtroode/aethercure-server/internal/api/http/context"
	"github.com/dtroode/aethercure-server/internal/mocks"
	"github.com/dtroode/aethercure-server/internal/model"
	"github.com/dtroode/aethercure-server/internal/testutil"
)

func TestShare_CreateShare(t *testing.T) {
	userID, fileID, shareID := uuid.New(), uuid.New(), uuid.New()

	tests := []struct {
		name     string
		body     string
		setup    func(s *mocks.ShareService)
		wantCode int
	}{
		{
			name: "created",
			body: `{"fileId":"` + fileID.String() + `","expirationHours":2}`,
			setup: func(s *mocks.ShareService) {
				s.On("CreateShare", mock.Anything, userID, fileID, 2).
					Return(model.Share{ID: shareID, FileID: fileID, OwnerID: userID}, nil)
			},
			wantCode: http.StatusCreated,
		},
		{
			name:     "missing file id",
			body:     `{"expirationHours":2}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "negative hours",
			body:     `{"fileId":"` + fileID.String() + `","expirationHours":-1}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "hours above maximum",
			body:     `{"fileId":"` + fileID.String() + `","expirationHours":3000000}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "malformed file id",
			body:     `{"fileId":"abc"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "not owner",
			body: `{"fileId":"` + fileID.String() + `"}`,
			setup: func(s *mocks.ShareService) {
				s.On("CreateShare", mock.Anything, userID, fileID, 0).
					Return(model.Share{}, model.NewForbiddenError("file is not owned by user"))
			},
			wantCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewShareService(t)
			if tt.setup != nil {
				tt.setup(svc)
			}
			h := NewShare(svc, httpcontext.NewManager(), testutil.MakeNoopLogger())

			rec := httptest.NewRecorder()
			h.CreateShare(rec, newRequest(http.MethodPost, "/files/share", tt.body, userID))

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode == http.StatusCreated {
				assert.Contains(t, rec.Body.String(), `"shareId":"`+shareID.String()+`"`)
			}
		})
	}
}

func TestShare_GetSharedFile(t *testing.T) {
	shareID := uuid.New()
	svc := mocks.NewShareService(t)
	svc.On("GetSharedFile", mock.Anything, shareID).Return(model.SharedFile{
		Share:    model.Share{ID: shareID, ExpiresAt: time.Now().Add(time.Hour)},
		FileName: "scan.pdf",
		IPFSHash: "Qm1",
	}, nil).Once()
	svc.On("GetSharedFile", mock.Anything, shareID).
		Return(model.SharedFile{}, model.NewNotFoundError("shared file expired or not found")).Once()

	h := NewShare(svc, httpcontext.NewManager(), testutil.MakeNoopLogger())

	rec := httptest.NewRecorder()
	h.GetSharedFile(rec, newRequest(http.MethodGet, "/files/shared/"+shareID.String(), "", uuid.Nil, "shareId", shareID.String()))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ipfsHash":"Qm1"`)
	assert.Contains(t, rec.Body.String(), `"shareId":"`+shareID.String()+`"`)

	rec = httptest.NewRecorder()
	h.GetSharedFile(rec, newRequest(http.MethodGet, "/files/shared/"+shareID.String(), "", uuid.Nil, "shareId", shareID.String()))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"shared file expired or not found","kind":"not_found"}`, rec.Body.String())
}

func TestShare_ListShares(t *testing.T) {
	userID := uuid.New()
	svc := mocks.NewShareService(t)
	svc.On("ListShares", mock.Anything, userID).Return([]model.SharedFile{{FileName: "a.pdf"}}, nil)

	h := NewShare(svc, httpcontext.NewManager(), testutil.MakeNoopLogger())

	rec := httptest.NewRecorder()
	h.ListShares(rec, newRequest(http.MethodGet, "/files/shared/links", "", userID))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"fileName":"a.pdf"`)
}

func TestShare_DeleteShare(t *testing.T) {
	userID, shareID := uuid.New(), uuid.New()
	svc := mocks.NewShareService(t)
	svc.On("DeleteShare", mock.Anything, userID, shareID).Return(nil)

	h := NewShare(svc, httpcontext.NewManager(), testutil.MakeNoopLogger())

	rec := httptest.NewRecorder()
	h.DeleteShare(rec, newRequest(http.MethodDelete, "/files/shared/"+shareID.String(), "", userID, "shareId", shareID.String()))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Shared link expired successfully","shareId":"`+shareID.String()+`"}`, rec.Body.String())
}
