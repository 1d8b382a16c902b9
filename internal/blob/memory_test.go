package blob

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Leo-Expose/PokeBase/internal/errors"
)

func TestMemory_Open(t *testing.T) {
	src := NewMemory()
	src.Put("25.png", []byte("pixels"))
	assert.Equal(t, DriverMemory, src.Driver())

	ctx := context.Background()

	obj, err := src.Open(ctx, "25.png")
	require.NoError(t, err)
	data, err := io.ReadAll(obj.Body)
	require.NoError(t, err)
	assert.Equal(t, "pixels", string(data))
	assert.Equal(t, int64(6), obj.Size)
	assert.Equal(t, "image/png", obj.ContentType)

	_, err = src.Open(ctx, "26.png")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestMemory_PutCopiesData(t *testing.T) {
	src := NewMemory()
	data := []byte("abc")
	src.Put("k", data)
	data[0] = 'z'

	obj, err := src.Open(context.Background(), "k")
	require.NoError(t, err)
	got, err := io.ReadAll(obj.Body)
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}
