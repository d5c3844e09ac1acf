package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/uptrace/bun"
)

// FixtureCounts sizes a generated data set.
type FixtureCounts struct {
	Users     int
	Authors   int
	Books     int
	Titles    int
	PageViews int
}

type Fixtures struct {
	Users []*UserSchema
	Books []*BookSchema
}

// GenerateFixtures builds users and books with fake data. Titles are drawn
// from a pool of counts.Titles names so that title variety is lower than the
// book count. Creation times fall within the last 30 days.
func GenerateFixtures(faker *gofakeit.Faker, counts FixtureCounts, now time.Time) *Fixtures {
	titles := make([]string, max(counts.Titles, 1))
	for i := range titles {
		titles[i] = faker.BookTitle()
	}

	start := now.AddDate(0, 0, -30)

	users := make([]*UserSchema, counts.Users)
	for i := range users {
		users[i] = &UserSchema{
			Email:     faker.Email(),
			FullName:  faker.Name(),
			CreatedAt: faker.DateRange(start, now),
		}
	}

	books := make([]*BookSchema, counts.Books)
	for i := range books {
		books[i] = &BookSchema{
			Title:     titles[faker.Number(0, len(titles)-1)],
			AuthorID:  int64(faker.Number(1, max(counts.Authors, 1))),
			CreatedAt: faker.DateRange(start, now),
		}
	}

	return &Fixtures{Users: users, Books: books}
}

// GeneratePageViews builds n views spread over bookIDs.
func GeneratePageViews(faker *gofakeit.Faker, bookIDs []int64, n int, now time.Time) []*PageViewSchema {
	if len(bookIDs) == 0 {
		return nil
	}
	start := now.AddDate(0, 0, -30)

	views := make([]*PageViewSchema, n)
	for i := range views {
		views[i] = &PageViewSchema{
			BookID:   bookIDs[faker.Number(0, len(bookIDs)-1)],
			ViewedAt: faker.DateRange(start, now),
		}
	}
	return views
}

// Seed creates the schema and inserts a generated data set in one transaction.
func Seed(ctx context.Context, db *bun.DB, counts FixtureCounts, seed int64) error {
	if err := CreateSchema(ctx, db); err != nil {
		return err
	}

	faker := gofakeit.New(seed)
	now := time.Now()
	fixtures := GenerateFixtures(faker, counts, now)

	return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if len(fixtures.Users) > 0 {
			if _, err := tx.NewInsert().Model(&fixtures.Users).Exec(ctx); err != nil {
				return fmt.Errorf("failed to insert users: %w", err)
			}
		}
		if len(fixtures.Books) == 0 {
			return nil
		}
		if _, err := tx.NewInsert().Model(&fixtures.Books).Returning("id").Exec(ctx); err != nil {
			return fmt.Errorf("failed to insert books: %w", err)
		}

		bookIDs := make([]int64, len(fixtures.Books))
		for i, b := range fixtures.Books {
			bookIDs[i] = b.ID
		}

		views := GeneratePageViews(faker, bookIDs, counts.PageViews, now)
		if len(views) == 0 {
			return nil
		}
		if _, err := tx.NewInsert().Model(&views).Exec(ctx); err != nil {
			return fmt.Errorf("failed to insert page views: %w", err)
		}
		return nil
	})
}
