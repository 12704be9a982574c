package event

import (
	"log/slog"

	"github.com/xidats/dats"
	"gopkg.in/yaml.v3"
)

func init() {
	dats.RegisterFormat(format{})
}

// FormatName is the name under which the event format is registered.
const FormatName = "event"

type format struct{}

func (format) Name() string {
	return FormatName
}

// Check decodes the block framing of b without decoding instructions.
func (format) Check(b []byte) error {
	_, _, err := Decoder{RawSeries: true}.Decode(b)
	return err
}

func (format) Decode(b []byte, logger *slog.Logger) (v interface{}, warn, err error) {
	f, warn, err := Decoder{Logger: logger}.Decode(b)
	if err != nil {
		return nil, warn, err
	}
	return f, warn, nil
}

func (format) Encode(v interface{}) ([]byte, error) {
	f, ok := v.(*File)
	if !ok {
		return nil, dats.ErrEncodeUnsupported
	}
	return Encoder{}.Encode(f)
}

func (format) New() interface{} {
	return &File{}
}

// Marshal returns the YAML text form of f.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// Unmarshal parses the YAML text form of an event file.
func Unmarshal(b []byte) (*File, error) {
	f := &File{}
	if err := yaml.Unmarshal(b, f); err != nil {
		return nil, err
	}
	return f, nil
}
