// Package normalisers holds the schema normalisers that turn registry
// records into domain values. Each normaliser implements
// driven.SchemaNormaliser for the record schemas of one provider.
package normalisers
