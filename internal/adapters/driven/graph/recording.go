package graph

import (
	"context"
	"maps"
	"sync"
)

// Ensure RecordingClient implements the interface.
var _ Client = (*RecordingClient)(nil)

// Statement is a Cypher statement seen by RecordingClient.
type Statement struct {
	Cypher string
	Params map[string]any
	Write  bool
}

// RecordingClient is an in-memory Client that records every statement
// and replays queued rows. It backs the sink tests.
type RecordingClient struct {
	mu         sync.Mutex
	statements []Statement
	rows       [][]Row
	err        error
	pingErr    error
	closed     bool
}

// NewRecordingClient creates an empty recording client.
func NewRecordingClient() *RecordingClient {
	return &RecordingClient{}
}

// FailWith makes every subsequent Write and Read return err.
func (c *RecordingClient) FailWith(err error) *RecordingClient {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.err = err
	return c
}

// FailPing makes Ping return err.
func (c *RecordingClient) FailPing(err error) *RecordingClient {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pingErr = err
	return c
}

// Queue appends rows returned by the next Write or Read.
func (c *RecordingClient) Queue(rows ...Row) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rows = append(c.rows, rows)
}

// Write records a write statement.
func (c *RecordingClient) Write(_ context.Context, cypher string, params map[string]any) ([]Row, error) {
	return c.record(cypher, params, true)
}

// Read records a read statement.
func (c *RecordingClient) Read(_ context.Context, cypher string, params map[string]any) ([]Row, error) {
	return c.record(cypher, params, false)
}

// Ping returns the error set by FailPing.
func (c *RecordingClient) Ping(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pingErr
}

// Close marks the client closed.
func (c *RecordingClient) Close(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

// Closed reports whether Close was called.
func (c *RecordingClient) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// Statements returns a copy of the recorded statements.
func (c *RecordingClient) Statements() []Statement {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Statement(nil), c.statements...)
}

func (c *RecordingClient) record(cypher string, params map[string]any, write bool) ([]Row, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.err != nil {
		return nil, c.err
	}
	c.statements = append(c.statements, Statement{Cypher: cypher, Params: maps.Clone(params), Write: write})

	if len(c.rows) == 0 {
		return nil, nil
	}
	rows := c.rows[0]
	c.rows = c.rows[1:]
	return rows, nil
}
