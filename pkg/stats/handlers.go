package stats

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/readerhub/libchat/pkg/models"
)

const (
	BooksPerAuthorLimit  = 15
	TopBooksByViewsLimit = 10
)

// Handlers runs one aggregate per intent and renders the answer sentence.
type Handlers struct {
	store    models.StatsStore
	messages Messages
}

func NewHandlers(store models.StatsStore, messages Messages) *Handlers {
	return &Handlers{store: store, messages: messages}
}

func (h *Handlers) NewUsersToday(ctx context.Context) (string, error) {
	return h.countSentence(ctx, h.store.CountUsersCreatedToday, h.messages.NewUsersToday)
}

func (h *Handlers) TotalUsers(ctx context.Context) (string, error) {
	return h.countSentence(ctx, h.store.CountUsers, h.messages.TotalUsers)
}

func (h *Handlers) TotalBooks(ctx context.Context) (string, error) {
	return h.countSentence(ctx, h.store.CountBooks, h.messages.TotalBooks)
}

func (h *Handlers) NewUsersThisWeek(ctx context.Context) (string, error) {
	return h.countSentence(ctx, h.store.CountUsersCreatedLastWeek, h.messages.NewUsersThisWeek)
}

func (h *Handlers) BookTitleVariety(ctx context.Context) (string, error) {
	return h.countSentence(ctx, h.store.CountDistinctBookTitles, h.messages.BookTitleVariety)
}

// BooksPerAuthor lists at most BooksPerAuthorLimit authors, most books first
// and lower author id first on ties.
func (h *Handlers) BooksPerAuthor(ctx context.Context) (string, error) {
	rows, err := h.store.BooksPerAuthor(ctx, BooksPerAuthorLimit)
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return h.messages.BooksPerAuthorEmpty, nil
	}

	sorted := make([]models.AuthorBookCount, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Total != sorted[j].Total {
			return sorted[i].Total > sorted[j].Total
		}
		return sorted[i].AuthorID < sorted[j].AuthorID
	})
	if len(sorted) > BooksPerAuthorLimit {
		sorted = sorted[:BooksPerAuthorLimit]
	}

	items := make([]string, len(sorted))
	for i, r := range sorted {
		items[i] = fmt.Sprintf(h.messages.BooksPerAuthorItem, r.AuthorID, r.Total)
	}

	return fmt.Sprintf(h.messages.BooksPerAuthor, strings.Join(items, h.messages.BooksPerAuthorSep)), nil
}

// TopBooksByViews lists at most TopBooksByViewsLimit books, most viewed first.
func (h *Handlers) TopBooksByViews(ctx context.Context) (string, error) {
	rows, err := h.store.TopBooksByViews(ctx, TopBooksByViewsLimit)
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return h.messages.TopBooksByViewsEmpty, nil
	}

	sorted := make([]models.BookViewCount, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Views != sorted[j].Views {
			return sorted[i].Views > sorted[j].Views
		}
		return sorted[i].BookID < sorted[j].BookID
	})
	if len(sorted) > TopBooksByViewsLimit {
		sorted = sorted[:TopBooksByViewsLimit]
	}

	items := make([]string, len(sorted))
	for i, r := range sorted {
		items[i] = fmt.Sprintf(h.messages.TopBooksByViewsItem, r.Title, r.Views)
	}

	return fmt.Sprintf(h.messages.TopBooksByViews, strings.Join(items, h.messages.TopBooksByViewsSep)), nil
}

// Fallback is the answer for questions that match no statistic.
func (h *Handlers) Fallback() string {
	return h.messages.Fallback
}

func (h *Handlers) countSentence(
	ctx context.Context,
	count func(context.Context) (int, error),
	format string,
) (string, error) {
	n, err := count(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(format, n), nil
}
