package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pseudomuto/sqltidy/pkg/consts"
	"github.com/pseudomuto/sqltidy/pkg/sqlformat"
	"github.com/stretchr/testify/require"
)

func TestRun_FmtWriteBack(t *testing.T) {
	tmpDir := t.TempDir()

	sqlFile := filepath.Join(tmpDir, "query.sql")
	rawSQL := "SELECT a, b FROM t"
	require.NoError(t, os.WriteFile(sqlFile, []byte(rawSQL), consts.ModeFile))

	v := Version{Version: "test", Commit: "none", Timestamp: "now"}
	err := Run(context.Background(), v, []string{"sqltidy", "fmt", "-w", sqlFile})
	require.NoError(t, err)

	content, err := os.ReadFile(sqlFile)
	require.NoError(t, err)
	require.Equal(t, sqlformat.Format(rawSQL), string(content))
}

func TestRun_UnknownFlag(t *testing.T) {
	err := Run(context.Background(), Version{}, []string{"sqltidy", "fmt", "--bogus"})
	require.Error(t, err)
}
