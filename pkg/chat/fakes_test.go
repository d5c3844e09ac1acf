package chat

import (
	"context"

	"github.com/readerhub/libchat/pkg/models"
)

type fakeLLM struct {
	reply string
	err   error
}

func (f *fakeLLM) Chat(context.Context, []models.ChatMessage) (string, error) {
	return f.reply, f.err
}

type fakeStore struct {
	count   int
	authors []models.AuthorBookCount
	books   []models.BookViewCount
	err     error
	calls   []string
}

func (f *fakeStore) record(name string) { f.calls = append(f.calls, name) }

func (f *fakeStore) CountUsersCreatedToday(context.Context) (int, error) {
	f.record("CountUsersCreatedToday")
	return f.count, f.err
}

func (f *fakeStore) CountUsers(context.Context) (int, error) {
	f.record("CountUsers")
	return f.count, f.err
}

func (f *fakeStore) CountBooks(context.Context) (int, error) {
	f.record("CountBooks")
	return f.count, f.err
}

func (f *fakeStore) CountUsersCreatedLastWeek(context.Context) (int, error) {
	f.record("CountUsersCreatedLastWeek")
	return f.count, f.err
}

func (f *fakeStore) CountDistinctBookTitles(context.Context) (int, error) {
	f.record("CountDistinctBookTitles")
	return f.count, f.err
}

func (f *fakeStore) BooksPerAuthor(context.Context, int) ([]models.AuthorBookCount, error) {
	f.record("BooksPerAuthor")
	return f.authors, f.err
}

func (f *fakeStore) TopBooksByViews(context.Context, int) ([]models.BookViewCount, error) {
	f.record("TopBooksByViews")
	return f.books, f.err
}

func (f *fakeStore) Close() error { return nil }
