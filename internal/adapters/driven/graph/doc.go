// Package graph persists enrichment output to a graph database.
//
// Client abstracts the database session so the sink can be exercised
// against RecordingClient in tests and against Neo4j over Bolt in use.
package graph
