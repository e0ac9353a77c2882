package task

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepare(t *testing.T) {
	base := t.TempDir()
	tasks := NewGenerator(WithBasePath(base)).Generate()

	n, err := Prepare(tasks)
	require.NoError(t, err)
	assert.Equal(t, 92, n)

	for _, task := range tasks {
		fi, err := os.Stat(task.Dir())
		require.NoError(t, err)
		assert.True(t, fi.IsDir())
	}

	// 重复执行不报错
	n, err = Prepare(tasks)
	require.NoError(t, err)
	assert.Equal(t, 92, n)
}

func TestPrepare_Error(t *testing.T) {
	base := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(base, []byte("x"), 0644))

	tasks := NewGenerator(WithBasePath(base), WithChapters(6, 7)).Generate()
	n, err := Prepare(tasks)
	require.Error(t, err)
	assert.Equal(t, 0, n)
	assert.Contains(t, err.Error(), "prepare destination")
}
