package dats

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFormat struct {
	name  string
	magic byte
}

func (f fakeFormat) Name() string { return f.name }

func (f fakeFormat) Check(b []byte) error {
	if len(b) == 0 || b[0] != f.magic {
		return errors.New("bad magic")
	}
	return nil
}

func (f fakeFormat) Decode(b []byte, logger *slog.Logger) (interface{}, error, error) {
	return b, nil, nil
}

func (f fakeFormat) Encode(v interface{}) ([]byte, error) {
	return nil, ErrEncodeUnsupported
}

func (f fakeFormat) New() interface{} { return new([]byte) }

func TestRegistry(t *testing.T) {
	RegisterFormat(fakeFormat{name: "test-b", magic: 'B'})
	RegisterFormat(fakeFormat{name: "test-a", magic: 'A'})

	f, ok := FormatByName("test-a")
	require.True(t, ok)
	assert.Equal(t, "test-a", f.Name())

	_, ok = FormatByName("missing")
	assert.False(t, ok)

	var names []string
	for _, f := range Formats() {
		names = append(names, f.Name())
	}
	assert.Subset(t, names, []string{"test-a", "test-b"})
	assert.IsIncreasing(t, names)

	f, ok = Detect([]byte("B..."))
	require.True(t, ok)
	assert.Equal(t, "test-b", f.Name())

	_, ok = Detect([]byte("?"))
	assert.False(t, ok)

	assert.Panics(t, func() { RegisterFormat(fakeFormat{name: "test-a"}) })
	assert.Panics(t, func() { RegisterFormat(nil) })
}
