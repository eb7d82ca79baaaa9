package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/authkeeper/internal/dbx"
	"github.com/dmitrijs2005/authkeeper/internal/server/repositories/accounts"
)

// MemoryDSN selects the in-memory backend.
const MemoryDSN = "memory"

// Store bundles what services need to reach persistence: a manager, the
// non-transactional handle and a transaction runner.
type Store struct {
	Manager RepositoryManager
	DB      dbx.DBTX
	Tx      dbx.Transactor

	conn *sql.DB
}

// Accounts returns the accounts repository bound to the pool.
func (s *Store) Accounts() accounts.Repository {
	return s.Manager.Accounts(s.DB)
}

// Close releases the underlying connection pool, if any.
func (s *Store) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

// NewMemoryStore builds a Store over a fresh in-memory repository.
func NewMemoryStore() *Store {
	return &Store{
		Manager: NewMemoryRepositoryManager(),
		Tx:      dbx.DirectTransactor{},
	}
}

// NewSQLStore builds a Store over an open PostgreSQL pool.
func NewSQLStore(conn *sql.DB) *Store {
	return &Store{
		Manager: NewPostgresRepositoryManager(),
		DB:      conn,
		Tx:      dbx.NewSQLTransactor(conn),
		conn:    conn,
	}
}

// sqlOpen is a seam for tests.
var sqlOpen = sql.Open

// Open connects to dsn, verifies the connection and applies migrations.
// MemoryDSN returns an in-memory store.
func Open(ctx context.Context, dsn string) (*Store, error) {
	if dsn == MemoryDSN {
		return NewMemoryStore(), nil
	}

	conn, err := sqlOpen("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	s := NewSQLStore(conn)
	if err := s.Manager.RunMigrations(ctx, conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}
	return s, nil
}
