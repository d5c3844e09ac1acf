package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bunotel"
)

// UserSchema maps the library's member table. Only CreatedAt is read by the
// statistics queries.
type UserSchema struct {
	bun.BaseModel `bun:"table:user,alias:u"`

	ID        int64     `bun:",pk,autoincrement"`
	Email     string    `bun:",notnull"`
	FullName  string    `bun:","`
	CreatedAt time.Time `bun:"type:timestamptz,nullzero,notnull,default:current_timestamp"`
}

type BookSchema struct {
	bun.BaseModel `bun:"table:book,alias:b"`

	ID        int64     `bun:",pk,autoincrement"`
	Title     string    `bun:",notnull"`
	AuthorID  int64     `bun:",notnull"`
	CreatedAt time.Time `bun:"type:timestamptz,nullzero,notnull,default:current_timestamp"`
}

type PageViewSchema struct {
	bun.BaseModel `bun:"table:page_views,alias:pv"`

	ID       int64       `bun:",pk,autoincrement"`
	BookID   int64       `bun:",notnull"`
	ViewedAt time.Time   `bun:"type:timestamptz,nullzero,notnull,default:current_timestamp"`
	Book     *BookSchema `bun:"rel:belongs-to,join:book_id=id,on_delete:cascade"`
}

var _ bun.AfterCreateTableHook = (*UserSchema)(nil)
var _ bun.AfterCreateTableHook = (*BookSchema)(nil)
var _ bun.AfterCreateTableHook = (*PageViewSchema)(nil)

func (*UserSchema) AfterCreateTable(
	ctx context.Context,
	query *bun.CreateTableQuery,
) error {
	_, err := query.DB().NewCreateIndex().
		Model((*UserSchema)(nil)).
		Index("user_created_at_idx").
		Column("created_at").
		IfNotExists().
		Exec(ctx)
	return err
}

func (*BookSchema) AfterCreateTable(
	ctx context.Context,
	query *bun.CreateTableQuery,
) error {
	_, err := query.DB().NewCreateIndex().
		Model((*BookSchema)(nil)).
		Index("book_author_id_idx").
		Column("author_id").
		IfNotExists().
		Exec(ctx)
	return err
}

func (*PageViewSchema) AfterCreateTable(
	ctx context.Context,
	query *bun.CreateTableQuery,
) error {
	_, err := query.DB().NewCreateIndex().
		Model((*PageViewSchema)(nil)).
		Index("page_views_book_id_idx").
		Column("book_id").
		IfNotExists().
		Exec(ctx)
	return err
}

// tableList is ordered so that referenced tables are created first.
var tableList = []interface{}{
	(*UserSchema)(nil),
	(*BookSchema)(nil),
	(*PageViewSchema)(nil),
}

// CreateSchema creates the library tables if they do not exist. The service
// itself only reads them; this is used by the seed command.
func CreateSchema(ctx context.Context, db *bun.DB) error {
	for _, schema := range tableList {
		_, err := db.NewCreateTable().
			Model(schema).
			IfNotExists().
			WithForeignKeys().
			Exec(ctx)
		if err != nil {
			// bun still trying to create indexes despite IfNotExists flag
			if strings.Contains(err.Error(), "already exists") {
				continue
			}
			return fmt.Errorf("error creating table for schema %T: %w", schema, err)
		}
	}
	return nil
}

// NewPostgresConn opens a pooled connection to dsn.
func NewPostgresConn(dsn string) (*bun.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("dsn may not be empty")
	}

	maxOpenConns := 4 * runtime.GOMAXPROCS(0)

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	sqldb.SetMaxOpenConns(maxOpenConns)
	sqldb.SetMaxIdleConns(maxOpenConns)

	db := bun.NewDB(sqldb, pgdialect.New())
	db.AddQueryHook(bunotel.NewQueryHook(bunotel.WithDBName("libchat")))

	return db, nil
}
