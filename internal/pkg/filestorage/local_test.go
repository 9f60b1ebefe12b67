package filestorage

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_SaveListOpenDelete(t *testing.T) {
	ctx := context.Background()
	ls, err := NewLocalStorage(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)

	clock := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	ls.now = func() time.Time { return clock }

	first, err := ls.Save(ctx, "backup", ".json", strings.NewReader(`{"a":1}`))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(first.Name, "backup-20240301T090000Z-"))
	assert.True(t, strings.HasSuffix(first.Name, ".json"))
	assert.Equal(t, int64(7), first.Size)

	clock = clock.Add(time.Hour)
	_, err = ls.Save(ctx, "backup", ".json", strings.NewReader(`{}`))
	require.NoError(t, err)

	files, err := ls.List(ctx)
	require.NoError(t, err)
	require.Len(t, files, 2)

	rc, err := ls.Open(first.Name)
	require.NoError(t, err)
	body, err := io.ReadAll(rc)
	require.NoError(t, rc.Close())
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(body))

	require.NoError(t, ls.DeleteFile(first.Name))
	require.NoError(t, ls.DeleteFile(first.Name))
	files, err = ls.List(ctx)
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestLocalStorage_RejectsTraversal(t *testing.T) {
	ls, err := NewLocalStorage(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)

	for _, name := range []string{"../etc/passwd", "a/b.json", "..", ""} {
		assert.Empty(t, ls.GetFullPath(name), name)
		_, err := ls.Open(name)
		assert.ErrorIs(t, err, ErrInvalidName, name)
	}
}
