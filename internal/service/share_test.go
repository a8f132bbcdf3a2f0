package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/aethercure-server/internal/mocks"
	"github.com/dtroode/aethercure-server/internal/model"
	"github.com/dtroode/aethercure-server/internal/testutil"
)

func TestShare_CreateShare(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	userID, fileID := uuid.New(), uuid.New()

	tests := []struct {
		name       string
		hours      int
		wantExpiry time.Time
	}{
		{name: "default lifetime", hours: 0, wantExpiry: now.Add(24 * time.Hour)},
		{name: "explicit hours", hours: 3, wantExpiry: now.Add(3 * time.Hour)},
		{name: "longest allowed", hours: model.MaxShareHours, wantExpiry: now.Add(365 * 24 * time.Hour)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shares := mocks.NewShareStore(t)
			files := mocks.NewFileStore(t)

			files.On("GetByID", mock.Anything, fileID).Return(model.File{ID: fileID, OwnerID: userID}, nil)
			shares.On("Create", mock.Anything, mock.MatchedBy(func(s model.Share) bool {
				return s.FileID == fileID && s.OwnerID == userID && s.ExpiresAt.Equal(tt.wantExpiry) && s.ID != uuid.Nil
			})).Return(func(_ context.Context, s model.Share) (model.Share, error) { return s, nil })

			s := NewShare(shares, files, 0, func() time.Time { return now }, testutil.MakeNoopLogger())

			share, err := s.CreateShare(context.Background(), userID, fileID, tt.hours)
			require.NoError(t, err)
			assert.Equal(t, tt.wantExpiry, share.ExpiresAt)
		})
	}
}

func TestShare_CreateShare_HoursAboveMaximum(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewShare(mocks.NewShareStore(t), mocks.NewFileStore(t), 0, func() time.Time { return now }, testutil.MakeNoopLogger())

	for _, hours := range []int{model.MaxShareHours + 1, 3_000_000} {
		_, err := s.CreateShare(context.Background(), uuid.New(), uuid.New(), hours)
		requireKind(t, err, model.KindValidation)
	}
}

func TestShare_CreateShare_Rejections(t *testing.T) {
	userID := uuid.New()
	owned, foreign, missing, broken := uuid.New(), uuid.New(), uuid.New(), uuid.New()

	files := mocks.NewFileStore(t)
	files.On("GetByID", mock.Anything, foreign).Return(model.File{ID: foreign, OwnerID: uuid.New()}, nil)
	files.On("GetByID", mock.Anything, missing).Return(model.File{}, model.ErrNotFound)
	files.On("GetByID", mock.Anything, broken).Return(model.File{}, errors.New("down"))
	files.On("GetByID", mock.Anything, owned).Return(model.File{ID: owned, OwnerID: userID}, nil)

	shares := mocks.NewShareStore(t)
	shares.On("Create", mock.Anything, mock.Anything).Return(model.Share{}, errors.New("down"))

	s := NewShare(shares, files, time.Hour, nil, testutil.MakeNoopLogger())
	ctx := context.Background()

	_, err := s.CreateShare(ctx, userID, foreign, 1)
	requireKind(t, err, model.KindForbidden)

	_, err = s.CreateShare(ctx, userID, missing, 1)
	requireKind(t, err, model.KindNotFound)

	_, err = s.CreateShare(ctx, userID, broken, 1)
	requireKind(t, err, model.KindStoreUnavailable)

	_, err = s.CreateShare(ctx, userID, owned, 1)
	requireKind(t, err, model.KindStoreUnavailable)
}

func TestShare_GetSharedFile(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	live, gone := uuid.New(), uuid.New()

	shares := mocks.NewShareStore(t)
	shares.On("GetActive", mock.Anything, live, now).Return(model.SharedFile{Share: model.Share{ID: live}, FileName: "scan.pdf"}, nil)
	shares.On("GetActive", mock.Anything, gone, now).Return(model.SharedFile{}, model.ErrNotFound)

	s := NewShare(shares, mocks.NewFileStore(t), 0, func() time.Time { return now }, testutil.MakeNoopLogger())

	sf, err := s.GetSharedFile(context.Background(), live)
	require.NoError(t, err)
	assert.Equal(t, "scan.pdf", sf.FileName)

	_, err = s.GetSharedFile(context.Background(), gone)
	requireKind(t, err, model.KindNotFound)
	assert.Contains(t, err.Error(), "expired or not found")
}

func TestShare_ListAndDelete(t *testing.T) {
	userID, shareID, otherID := uuid.New(), uuid.New(), uuid.New()

	shares := mocks.NewShareStore(t)
	shares.On("GetByOwnerID", mock.Anything, userID).Return([]model.SharedFile{{FileName: "a"}}, nil)
	shares.On("Delete", mock.Anything, shareID, userID).Return(model.Share{ID: shareID}, nil)
	shares.On("Delete", mock.Anything, otherID, userID).Return(model.Share{}, model.ErrNotFound)

	s := NewShare(shares, mocks.NewFileStore(t), 0, nil, testutil.MakeNoopLogger())
	ctx := context.Background()

	list, err := s.ListShares(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, s.DeleteShare(ctx, userID, shareID))
	requireKind(t, s.DeleteShare(ctx, userID, otherID), model.KindNotFound)
}
