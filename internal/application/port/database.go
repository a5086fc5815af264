// Package port defines interfaces for infrastructure adapters.
package port

import (
	"context"
	"database/sql"
)

// DatabaseProvider hands out the state database connection. Implementations
// may open it lazily so commands that never touch storage skip migrations.
type DatabaseProvider interface {
	// DB returns the database connection, opening it on first use.
	DB(ctx context.Context) (*sql.DB, error)

	// Close closes the connection if it was opened.
	Close() error

	IsInitialized() bool
}
