package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Ensure Neo4jClient implements the interface.
var _ Client = (*Neo4jClient)(nil)

// Neo4jClient is a Client over the official Neo4j Bolt driver.
// Statements run in managed transactions so the driver retries transient failures.
type Neo4jClient struct {
	driver   neo4j.DriverWithContext
	database string
}

// NewNeo4jClient connects to the database and verifies connectivity.
func NewNeo4jClient(ctx context.Context, opts Options) (*Neo4jClient, error) {
	if !opts.Enabled() {
		return nil, ErrNoURI
	}

	auth := neo4j.NoAuth()
	if opts.Username != "" {
		auth = neo4j.BasicAuth(opts.Username, opts.Password, "")
	}

	driver, err := neo4j.NewDriverWithContext(opts.URI, auth, func(c *neo4j.Config) {
		if opts.MaxConnections > 0 {
			c.MaxConnectionPoolSize = opts.MaxConnections
		}
	})
	if err != nil {
		return nil, fmt.Errorf("create neo4j driver: %w", err)
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("connect to %s: %w", opts.URI, err)
	}

	return &Neo4jClient{driver: driver, database: opts.Database}, nil
}

// Write runs cypher in a managed write transaction.
func (c *Neo4jClient) Write(ctx context.Context, cypher string, params map[string]any) ([]Row, error) {
	return c.run(ctx, neo4j.AccessModeWrite, cypher, params)
}

// Read runs cypher in a managed read transaction.
func (c *Neo4jClient) Read(ctx context.Context, cypher string, params map[string]any) ([]Row, error) {
	return c.run(ctx, neo4j.AccessModeRead, cypher, params)
}

// Ping verifies the driver can reach the server.
func (c *Neo4jClient) Ping(ctx context.Context) error {
	return c.driver.VerifyConnectivity(ctx)
}

// Close closes the driver and its pool.
func (c *Neo4jClient) Close(ctx context.Context) error {
	return c.driver.Close(ctx)
}

func (c *Neo4jClient) run(ctx context.Context, mode neo4j.AccessMode, cypher string, params map[string]any) ([]Row, error) {
	session := c.driver.NewSession(ctx, neo4j.SessionConfig{
		DatabaseName: c.database,
		AccessMode:   mode,
	})
	defer session.Close(ctx)

	work := func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, cypher, params)
		if err != nil {
			return nil, err
		}
		records, err := res.Collect(ctx)
		if err != nil {
			return nil, err
		}
		rows := make([]Row, 0, len(records))
		for _, rec := range records {
			row := make(Row, len(rec.Keys))
			for i, key := range rec.Keys {
				row[key] = rec.Values[i]
			}
			rows = append(rows, row)
		}
		return rows, nil
	}

	var (
		out any
		err error
	)
	if mode == neo4j.AccessModeWrite {
		out, err = session.ExecuteWrite(ctx, work)
	} else {
		out, err = session.ExecuteRead(ctx, work)
	}
	if err != nil {
		return nil, err
	}
	rows, _ := out.([]Row)
	return rows, nil
}
