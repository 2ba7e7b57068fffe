// Package pappers is the HTTP client for the Pappers company registries:
// the French registry (api.pappers.fr/v2) and the international one
// (api.pappers.in/v1).
//
// The client builds the query string for each search, adds the API token,
// throttles requests and maps non-200 answers onto the domain's terminal
// gateway errors. Responses are handed to the core undecoded beyond JSON.
package pappers
