// Package clickhouse provides the connection layer for running re-indented
// SQL against a ClickHouse server.
//
// It exposes two pieces:
//
//   - Client: a thin handle over the clickhouse-go native protocol driver
//     with DSN parsing and the small query/exec surface the CLI needs.
//   - DelegateConn: a pass-through implementation of driver.Conn that
//     forwards every operation to an underlying connection unchanged.
//     Wrappers embed it and override only the methods they care about.
//
// Example usage:
//
//	client, err := clickhouse.NewClient(ctx, "localhost:9000")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	if err := client.Exec(ctx, "CREATE DATABASE IF NOT EXISTS analytics"); err != nil {
//	    log.Fatal(err)
//	}
package clickhouse
