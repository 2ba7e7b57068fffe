package graph

import (
	"context"
	"errors"
)

// Client runs Cypher statements against a graph database.
type Client interface {
	// Write runs a statement in a write transaction.
	Write(ctx context.Context, cypher string, params map[string]any) ([]Row, error)

	// Read runs a statement in a read transaction.
	Read(ctx context.Context, cypher string, params map[string]any) ([]Row, error)

	// Ping checks the database is reachable.
	Ping(ctx context.Context) error

	// Close releases the connection pool.
	Close(ctx context.Context) error
}

// Row is one result row keyed by column name.
type Row map[string]any

// Options configures a Neo4j connection.
type Options struct {
	// URI is the Bolt URI, for example neo4j://localhost:7687.
	URI string

	// Database selects a database; empty means the server default.
	Database string

	Username string
	Password string

	// MaxConnections caps the driver pool; zero keeps the driver default.
	MaxConnections int
}

// ErrNoURI is returned when a client is requested without a Bolt URI.
var ErrNoURI = errors.New("neo4j uri is required")

// Enabled returns true if the options name a database to connect to.
func (o Options) Enabled() bool {
	return o.URI != ""
}
