// The dats package holds the pieces shared by the DAT file codecs.
//
// DAT files are the binary resource files shipped with the game client.
// Each kind of file is handled by its own sub-package: "event" decodes and
// encodes event bytecode files, and "zone" decodes the chunked zone data
// container along with the collision meshes and vertex models stored in it.
//
// Decoded structures can be rendered to a text form with encoding/json or
// gopkg.in/yaml.v3. Raw byte spans use HexBytes, which renders each byte as
// a "0xHH" string so the text can be edited and encoded back.
//
// The sub-packages register a Format when they are imported, which allows
// tools to select a codec by name.
package dats

import (
	"errors"
	"log/slog"
	"sort"
	"sync"
)

// Format decodes and encodes one kind of DAT file.
type Format interface {
	// Name returns the name of the format.
	Name() string

	// Check reports whether b looks like a file of the format, without
	// fully decoding it.
	Check(b []byte) error

	// Decode decodes b. Degradations are returned in warn and logged to
	// logger, which may be nil. If err is non-nil, v is nil.
	Decode(b []byte, logger *slog.Logger) (v interface{}, warn, err error)

	// Encode encodes a value previously returned by Decode.
	Encode(v interface{}) (b []byte, err error)

	// New returns a pointer to a zero value of the decoded type, suitable
	// as the target of a text form decoder.
	New() interface{}
}

// ErrEncodeUnsupported is returned by Format.Encode when the format cannot
// encode the given value.
var ErrEncodeUnsupported = errors.New("encoding not supported")

var (
	formatsMu sync.RWMutex
	formats   = map[string]Format{}
)

// RegisterFormat makes a format available by name. It panics if the format
// is nil or if a format of the same name is already registered.
func RegisterFormat(f Format) {
	if f == nil {
		panic("dats: register nil format")
	}
	formatsMu.Lock()
	defer formatsMu.Unlock()
	name := f.Name()
	if _, dup := formats[name]; dup {
		panic("dats: format " + name + " registered twice")
	}
	formats[name] = f
}

// FormatByName returns the registered format with the given name.
func FormatByName(name string) (f Format, ok bool) {
	formatsMu.RLock()
	defer formatsMu.RUnlock()
	f, ok = formats[name]
	return f, ok
}

// Formats returns all registered formats, sorted by name.
func Formats() []Format {
	formatsMu.RLock()
	defer formatsMu.RUnlock()
	list := make([]Format, 0, len(formats))
	for _, f := range formats {
		list = append(list, f)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Name() < list[j].Name()
	})
	return list
}

// Detect returns the first registered format, in name order, whose Check
// accepts b.
func Detect(b []byte) (f Format, ok bool) {
	for _, f := range Formats() {
		if f.Check(b) == nil {
			return f, true
		}
	}
	return nil, false
}
