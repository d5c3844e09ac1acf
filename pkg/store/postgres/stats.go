package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/readerhub/libchat/pkg/models"
	"github.com/readerhub/libchat/pkg/store"
	"github.com/uptrace/bun"
)

const (
	countUsersCreatedTodayQuery = `SELECT COUNT(*) AS count FROM "user" WHERE DATE(created_at) = CURRENT_DATE`

	countUsersQuery = `SELECT COUNT(*) AS count FROM "user"`

	countBooksQuery = `SELECT COUNT(*) AS count FROM book`

	countUsersCreatedLastWeekQuery = `SELECT COUNT(*) AS count FROM "user" WHERE created_at >= NOW() - INTERVAL '7 days'`

	countDistinctBookTitlesQuery = `SELECT COUNT(DISTINCT title) AS count FROM book`

	booksPerAuthorQuery = `SELECT author_id, COUNT(*) AS total
FROM book
GROUP BY author_id
ORDER BY total DESC, author_id ASC
LIMIT ?`

	topBooksByViewsQuery = `SELECT b.id, b.title, COUNT(pv.*) AS views
FROM page_views pv
JOIN book b ON b.id = pv.book_id
GROUP BY b.id, b.title
ORDER BY views DESC, b.id ASC
LIMIT ?`
)

var _ models.StatsStore = &StatsStore{}

// NewStatsStore returns a StatsStore reading from db.
func NewStatsStore(db *bun.DB) *StatsStore {
	return &StatsStore{db: db}
}

// StatsStore runs the fixed aggregate statements against PostgreSQL.
type StatsStore struct {
	db *bun.DB
}

func (s *StatsStore) CountUsersCreatedToday(ctx context.Context) (int, error) {
	return s.count(ctx, countUsersCreatedTodayQuery)
}

func (s *StatsStore) CountUsers(ctx context.Context) (int, error) {
	return s.count(ctx, countUsersQuery)
}

func (s *StatsStore) CountBooks(ctx context.Context) (int, error) {
	return s.count(ctx, countBooksQuery)
}

func (s *StatsStore) CountUsersCreatedLastWeek(ctx context.Context) (int, error) {
	return s.count(ctx, countUsersCreatedLastWeekQuery)
}

func (s *StatsStore) CountDistinctBookTitles(ctx context.Context) (int, error) {
	return s.count(ctx, countDistinctBookTitlesQuery)
}

func (s *StatsStore) BooksPerAuthor(ctx context.Context, limit int) ([]models.AuthorBookCount, error) {
	rows := make([]models.AuthorBookCount, 0, limit)
	if err := s.db.NewRaw(booksPerAuthorQuery, limit).Scan(ctx, &rows); err != nil {
		return nil, store.NewStorageError("failed to count books per author", err)
	}
	return rows, nil
}

func (s *StatsStore) TopBooksByViews(ctx context.Context, limit int) ([]models.BookViewCount, error) {
	rows := make([]models.BookViewCount, 0, limit)
	if err := s.db.NewRaw(topBooksByViewsQuery, limit).Scan(ctx, &rows); err != nil {
		return nil, store.NewStorageError("failed to count views per book", err)
	}
	return rows, nil
}

func (s *StatsStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// count runs a single-value aggregate. No row reads as zero.
func (s *StatsStore) count(ctx context.Context, query string) (int, error) {
	var count int
	err := s.db.NewRaw(query).Scan(ctx, &count)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, store.NewStorageError("failed to run count query", err)
	}
	return count, nil
}
