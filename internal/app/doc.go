// Package app wires the tike application together: configuration, logger
// construction, database schema, and the command handlers that turn parsed
// arguments into store operations and rendered task tables.
package app
