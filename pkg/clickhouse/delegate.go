package clickhouse

import (
	"context"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

// DelegateConn implements driver.Conn by forwarding every operation to an
// underlying connection. Arguments, results, and errors pass through
// unchanged; in particular, driver failures are never wrapped or swallowed.
//
// DelegateConn exists to be embedded. A wrapper overrides the methods it
// wants to observe and inherits forwarding for the rest:
//
//	type tracingConn struct {
//		*clickhouse.DelegateConn
//	}
//
//	func (c *tracingConn) Exec(ctx context.Context, query string, args ...any) error {
//		// observe query here
//		return c.DelegateConn.Exec(ctx, query, args...)
//	}
type DelegateConn struct {
	conn driver.Conn
}

var _ driver.Conn = (*DelegateConn)(nil)

// NewDelegateConn creates a DelegateConn forwarding to conn.
func NewDelegateConn(conn driver.Conn) *DelegateConn {
	return &DelegateConn{conn: conn}
}

// Unwrap returns the underlying connection.
func (d *DelegateConn) Unwrap() driver.Conn {
	return d.conn
}

func (d *DelegateConn) Contributors() []string {
	return d.conn.Contributors()
}

func (d *DelegateConn) ServerVersion() (*driver.ServerVersion, error) {
	return d.conn.ServerVersion()
}

func (d *DelegateConn) Select(ctx context.Context, dest any, query string, args ...any) error {
	return d.conn.Select(ctx, dest, query, args...)
}

func (d *DelegateConn) Query(ctx context.Context, query string, args ...any) (driver.Rows, error) {
	return d.conn.Query(ctx, query, args...)
}

func (d *DelegateConn) QueryRow(ctx context.Context, query string, args ...any) driver.Row {
	return d.conn.QueryRow(ctx, query, args...)
}

func (d *DelegateConn) PrepareBatch(ctx context.Context, query string, opts ...driver.PrepareBatchOption) (driver.Batch, error) {
	return d.conn.PrepareBatch(ctx, query, opts...)
}

func (d *DelegateConn) Exec(ctx context.Context, query string, args ...any) error {
	return d.conn.Exec(ctx, query, args...)
}

func (d *DelegateConn) AsyncInsert(ctx context.Context, query string, wait bool, args ...any) error {
	return d.conn.AsyncInsert(ctx, query, wait, args...)
}

func (d *DelegateConn) Ping(ctx context.Context) error {
	return d.conn.Ping(ctx)
}

func (d *DelegateConn) Stats() driver.Stats {
	return d.conn.Stats()
}

func (d *DelegateConn) Close() error {
	return d.conn.Close()
}
