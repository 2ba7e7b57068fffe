// Package file provides the file-based configuration store.
//
// Settings live in ~/.reflets/config.toml as nested TOML tables and are
// exposed as flat dot-notation keys ("pappers.api_key"). A legacy
// api_keys.yml in the same directory supplies the API token when the
// TOML file has none.
package file
