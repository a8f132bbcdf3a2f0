package cleanup

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/aethercure-server/internal/metrics"
	"github.com/dtroode/aethercure-server/internal/testutil"
)

const deleteQuery = `^DELETE\s+FROM\s+file_shares\s+WHERE\s+expires_at\s*<=\s*\$1$`

func TestShares_RunOnce(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg)

	mock.ExpectExec(deleteQuery).
		WithArgs(now).
		WillReturnResult(sqlmock.NewResult(0, 3))

	s := NewShares(db, collector, func() time.Time { return now }, testutil.MakeNoopLogger())
	n, err := s.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	count, err := promtest.GatherAndCount(reg, "aethercure_shares_purged_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestShares_RunOnce_ExecError(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(deleteQuery).WillReturnError(errors.New("connection reset"))

	s := NewShares(db, nil, nil, testutil.MakeNoopLogger())
	_, err = s.RunOnce(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete expired shares")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestShares_RunOnce_RowsAffectedError(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(deleteQuery).WillReturnResult(sqlmock.NewErrorResult(errors.New("unsupported")))

	s := NewShares(db, nil, nil, testutil.MakeNoopLogger())
	_, err = s.RunOnce(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to count deleted shares")
}

func TestShares_StartStopsOnCancel(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(deleteQuery).WillReturnResult(sqlmock.NewResult(0, 0))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	s := NewShares(db, nil, nil, testutil.MakeNoopLogger())
	go func() {
		s.Start(ctx, time.Hour)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return mock.ExpectationsWereMet() == nil
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}
