// Package json is the JSON codec used by matchable.
//
// On platforms where [sonic] is accelerated it encodes and decodes with
// sonic's standard-compatible config; elsewhere it falls back to
// encoding/json with the same behavior.
package json
