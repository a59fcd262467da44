package storage

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/ledgerview/dashboard-server/internal/config"
	"github.com/ledgerview/dashboard-server/internal/storage/sqlconfig"
)

// Storage bundles the DB handle with the table gateways. Reads go through
// the table interfaces; transactional writes go through Write.
type Storage struct {
	DB           *sql.DB
	bobDB        bob.DB
	Transactions sqlconfig.ITransactionTable
	Categories   sqlconfig.ICategoryTable
	Tags         sqlconfig.ITagTable
}

func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.PostgresDSN())
	if err != nil {
		return nil, err
	}

	transactions := sqlconfig.NewTransactionsTable(db)
	categories := sqlconfig.NewCategoriesTable(db)
	tags := sqlconfig.NewTagsTable(db)

	return &Storage{
		DB:           db,
		bobDB:        bob.NewDB(db),
		Transactions: &transactions,
		Categories:   &categories,
		Tags:         &tags,
	}, nil
}

// Ping verifies the database connection, used by the status endpoint.
func (s *Storage) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

// Write begins a database transaction and returns a Writer bound to it.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.bobDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return NewWriter(tx), nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
