package oplog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppend_Success_CreatesAndAppends(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "ops.log")

	first := time.Date(2024, time.March, 5, 9, 7, 3, 0, time.Local)
	second := time.Date(2024, time.December, 24, 18, 30, 0, 0, time.Local)

	require.NoError(t, appendAt(path, "Completed operation", first))
	require.NoError(t, appendAt(path, "Completed operation", second))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t,
		"[Tue Mar  5 09:07:03 2024] Completed operation\n"+
			"[Tue Dec 24 18:30:00 2024] Completed operation\n",
		string(data))
}

func TestAppend_Success_KeepsExistingContent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "ops.log")
	require.NoError(t, os.WriteFile(path, []byte("existing\n"), 0o644))

	require.NoError(t, Append(path, "Completed operation"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Regexp(t, `^existing\n\[\w{3} \w{3} [ \d]\d \d{2}:\d{2}:\d{2} \d{4}\] Completed operation\n$`, string(data))
}

func TestAppend_Fail_Open(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing", "ops.log")

	err := Append(path, "Completed operation")
	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "failed to open log file")
}
