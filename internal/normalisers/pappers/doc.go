// Package pappers normalises records from the French (v2) and the
// international (v1) registry API schemas into domain values.
//
// Both schemas describe the same concepts under different field names.
// Every concept is read through an ordered alias list: the first alias
// present with a non-blank value wins.
package pappers
