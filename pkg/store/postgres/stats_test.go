package postgres

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/readerhub/libchat/pkg/models"
	"github.com/readerhub/libchat/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
)

var testCtx = context.Background()

func newMockStore(t *testing.T) (*StatsStore, sqlmock.Sqlmock) {
	t.Helper()
	sqldb, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqldb.Close() })

	return NewStatsStore(bun.NewDB(sqldb, pgdialect.New())), mock
}

func TestStatsStore_Counts(t *testing.T) {
	testCases := []struct {
		name  string
		query string
		call  func(s *StatsStore) (int, error)
	}{
		{"users created today", countUsersCreatedTodayQuery, func(s *StatsStore) (int, error) {
			return s.CountUsersCreatedToday(testCtx)
		}},
		{"users", countUsersQuery, func(s *StatsStore) (int, error) {
			return s.CountUsers(testCtx)
		}},
		{"books", countBooksQuery, func(s *StatsStore) (int, error) {
			return s.CountBooks(testCtx)
		}},
		{"users created last week", countUsersCreatedLastWeekQuery, func(s *StatsStore) (int, error) {
			return s.CountUsersCreatedLastWeek(testCtx)
		}},
		{"distinct titles", countDistinctBookTitlesQuery, func(s *StatsStore) (int, error) {
			return s.CountDistinctBookTitles(testCtx)
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mock := newMockStore(t)
			mock.ExpectQuery(regexp.QuoteMeta(tc.query)).
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(42)))

			count, err := tc.call(s)
			require.NoError(t, err)
			assert.Equal(t, 42, count)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestStatsStore_CountNoRows(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectQuery(regexp.QuoteMeta(countBooksQuery)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}))

	count, err := s.CountBooks(testCtx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsStore_CountError(t *testing.T) {
	s, mock := newMockStore(t)
	dbErr := errors.New("connection reset by peer")
	mock.ExpectQuery(regexp.QuoteMeta(countUsersQuery)).WillReturnError(dbErr)

	_, err := s.CountUsers(testCtx)
	require.Error(t, err)

	var storageErr *store.StorageError
	assert.ErrorAs(t, err, &storageErr)
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, sql.ErrNoRows)
}

func TestStatsStore_BooksPerAuthor(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY author_id") + ".*" + regexp.QuoteMeta("LIMIT 15")).
		WillReturnRows(sqlmock.NewRows([]string{"author_id", "total"}).
			AddRow(int64(7), int64(12)).
			AddRow(int64(2), int64(9)))

	rows, err := s.BooksPerAuthor(testCtx, 15)
	require.NoError(t, err)
	assert.Equal(t, []models.AuthorBookCount{
		{AuthorID: 7, Total: 12},
		{AuthorID: 2, Total: 9},
	}, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsStore_BooksPerAuthorEmpty(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY author_id")).
		WillReturnRows(sqlmock.NewRows([]string{"author_id", "total"}))

	rows, err := s.BooksPerAuthor(testCtx, 15)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestStatsStore_TopBooksByViews(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectQuery(regexp.QuoteMeta("JOIN book b ON b.id = pv.book_id") + ".*" + regexp.QuoteMeta("LIMIT 10")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "views"}).
			AddRow(int64(1), "Dế Mèn phiêu lưu ký", int64(120)).
			AddRow(int64(4), "Tắt đèn", int64(80)))

	rows, err := s.TopBooksByViews(testCtx, 10)
	require.NoError(t, err)
	assert.Equal(t, []models.BookViewCount{
		{BookID: 1, Title: "Dế Mèn phiêu lưu ký", Views: 120},
		{BookID: 4, Title: "Tắt đèn", Views: 80},
	}, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsStore_TopBooksByViewsError(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM page_views pv")).
		WillReturnError(errors.New(`relation "page_views" does not exist`))

	rows, err := s.TopBooksByViews(testCtx, 10)
	assert.Nil(t, rows)

	var storageErr *store.StorageError
	assert.ErrorAs(t, err, &storageErr)
}

func TestStatsStore_Close(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectClose()

	assert.NoError(t, s.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}
