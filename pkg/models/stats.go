package models

import "context"

// AuthorBookCount is one row of the books-per-author aggregate.
type AuthorBookCount struct {
	AuthorID int64 `bun:"author_id" json:"author_id"`
	Total    int   `bun:"total"     json:"total"`
}

// BookViewCount is one row of the views-per-book aggregate.
type BookViewCount struct {
	BookID int64  `bun:"id"    json:"id"`
	Title  string `bun:"title" json:"title"`
	Views  int    `bun:"views" json:"views"`
}

// StatsStore runs the fixed aggregate statements behind each intent.
type StatsStore interface {
	CountUsersCreatedToday(ctx context.Context) (int, error)
	CountUsers(ctx context.Context) (int, error)
	CountBooks(ctx context.Context) (int, error)
	CountUsersCreatedLastWeek(ctx context.Context) (int, error)
	CountDistinctBookTitles(ctx context.Context) (int, error)
	BooksPerAuthor(ctx context.Context, limit int) ([]AuthorBookCount, error)
	TopBooksByViews(ctx context.Context, limit int) ([]BookViewCount, error)
	Close() error
}
