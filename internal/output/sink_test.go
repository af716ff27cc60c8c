package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

func TestSink_Write_FourSpaceIndent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "steam_api_collection.json")
	sink := NewSink(path, 4)

	n, err := sink.Write(sample{Name: "a<b>", Items: []string{"x"}})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, len(data), n)
	assert.Equal(t, "{\n    \"name\": \"a<b>\",\n    \"items\": [\n        \"x\"\n    ]\n}\n", string(data))
}

func TestSink_Write_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, os.WriteFile(path, []byte("previous content that is much longer than the new one"), 0644))

	_, err := NewSink(path, 0).Write(sample{Name: "n"})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\"name\":\"n\",\"items\":null}\n", string(data))
}

func TestSink_Write_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "out.json")

	_, err := NewSink(path, 4).Write(sample{})
	require.NoError(t, err)
	assert.FileExists(t, path)
	assert.Equal(t, path, NewSink(path, 4).Path())
}

func TestSink_Write_UnsupportedValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	_, err := NewSink(path, 4).Write(map[string]any{"ch": make(chan int)})
	require.Error(t, err)
	assert.NoFileExists(t, path)
}
