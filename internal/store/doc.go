// Package store provides the embedded relational record store backing tike.
// It wraps database/sql over the pure-Go SQLite driver and exposes a small
// generic capability: create tables, insert records, and fetch or delete
// records either by exact-match criteria or by pseudo-ID.
//
// A pseudo-ID is a 1-based positional index into a table's rows ordered by
// the underlying id column. It lets the CLI address rows by the row number
// shown in listings without ever exposing raw ids.
package store
