// Package keys resolves the shared secrets under which services sign and
// verify messages. Secrets live in a Postgres table keyed by service name;
// each service loads its own secret once at startup and passes it to the
// httpsig, rmq, or entry constructors.
package keys

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"
)

// ErrNotFound is returned by Get when no secret is registered for the
// requested service
var ErrNotFound = errors.New("no secret registered for service")

// Store looks up shared signing secrets by service name
type Store struct {
	q *sql.DB
}

// NewStore initializes a Store over an existing database handle
func NewStore(q *sql.DB) *Store {
	return &Store{q: q}
}

// Open connects to the database described by the given connection string
// (see FormatConnectionString) and returns a Store over it
func Open(connectionString string) (*Store, error) {
	q, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return NewStore(q), nil
}

// Get returns the shared secret registered for the named service
func (s *Store) Get(ctx context.Context, service string) ([]byte, error) {
	row := s.q.QueryRowContext(ctx, "SELECT secret FROM service_secret WHERE service_name = $1", service)
	var secret []byte
	if err := row.Scan(&secret); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, service)
		}
		return nil, err
	}
	return secret, nil
}

// Close releases the underlying database handle
func (s *Store) Close() error {
	return s.q.Close()
}
