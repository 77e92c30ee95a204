// Package cmd implements the sqltidy command line interface.
//
// The CLI exposes two commands: fmt, which re-indents SQL files in place or
// to stdout, and exec, which runs the statements of a SQL file against a
// ClickHouse server while logging a re-indented rendering of each one.
package cmd
