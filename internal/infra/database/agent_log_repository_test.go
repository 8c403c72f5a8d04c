package database

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// stubConnector hands database/sql a canned result set so repository
// decoding can be exercised without a running Postgres.
type stubConnector struct {
	rows func() driver.Rows
}

func (c stubConnector) Connect(context.Context) (driver.Conn, error) {
	return stubConn{rows: c.rows}, nil
}

func (c stubConnector) Driver() driver.Driver { return stubDriver{} }

type stubDriver struct{}

func (stubDriver) Open(string) (driver.Conn, error) {
	return nil, errors.New("use OpenDB")
}

type stubConn struct {
	rows func() driver.Rows
}

func (stubConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("not supported")
}

func (stubConn) Close() error              { return nil }
func (stubConn) Begin() (driver.Tx, error) { return nil, errors.New("not supported") }

func (c stubConn) QueryContext(context.Context, string, []driver.NamedValue) (driver.Rows, error) {
	return c.rows(), nil
}

type stubRows struct {
	values [][]driver.Value
	pos    int
}

func (r *stubRows) Columns() []string {
	return []string{"id", "agent_type", "action", "status", "input", "output", "error", "duration_ms", "created_at"}
}

func (r *stubRows) Close() error { return nil }

func (r *stubRows) Next(dest []driver.Value) error {
	if r.pos >= len(r.values) {
		return io.EOF
	}
	copy(dest, r.values[r.pos])
	r.pos++
	return nil
}

func logRow(input, output []byte) []driver.Value {
	return []driver.Value{
		"log-1", "lead_processor", "new_lead_captured", "success",
		input, output, "", int64(12), time.Now(),
	}
}

func openStubDB(values [][]driver.Value) *sql.DB {
	return sql.OpenDB(stubConnector{rows: func() driver.Rows {
		return &stubRows{values: values}
	}})
}

func TestFindRecentDecodesPayloads(t *testing.T) {
	db := openStubDB([][]driver.Value{
		logRow([]byte(`{"email":"a@b.com"}`), []byte(`{"stored":true}`)),
	})
	repo := NewAgentLogRepository(db)

	entries, err := repo.FindRecent(context.Background(), 10)

	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "a@b.com", entries[0].Input["email"])
	assert.Equal(t, true, entries[0].Output["stored"])
}

func TestFindRecentCorruptInputReturnsError(t *testing.T) {
	db := openStubDB([][]driver.Value{
		logRow([]byte(`{not json`), []byte(`{}`)),
	})
	repo := NewAgentLogRepository(db)

	entries, err := repo.FindRecent(context.Background(), 10)

	assert.Nil(t, entries)
	assert.ErrorContains(t, err, "decode agent log input")
}

func TestFindRecentCorruptOutputReturnsError(t *testing.T) {
	db := openStubDB([][]driver.Value{
		logRow([]byte(`{}`), []byte(`{not json`)),
	})
	repo := NewAgentLogRepository(db)

	entries, err := repo.FindRecent(context.Background(), 10)

	assert.Nil(t, entries)
	assert.ErrorContains(t, err, "decode agent log output")
}
