package zone

import (
	"errors"
	"log/slog"

	"github.com/xidats/dats"
)

func init() {
	dats.RegisterFormat(format{})
}

// FormatName is the name under which the zone data format is registered.
const FormatName = "zone"

var errNoChunks = errors.New("no chunks")

type format struct{}

func (format) Name() string {
	return FormatName
}

// Check decodes the chunk framing of b without decoding bodies.
func (format) Check(b []byte) error {
	ct, _, err := Decoder{NoDecode: true}.Decode(b)
	if err != nil {
		return err
	}
	if len(ct.Chunks) == 0 {
		return errNoChunks
	}
	return nil
}

func (format) Decode(b []byte, logger *slog.Logger) (v interface{}, warn, err error) {
	ct, warn, err := Decoder{Logger: logger}.Decode(b)
	if err != nil {
		return nil, warn, err
	}
	return ct, warn, nil
}

func (format) Encode(v interface{}) ([]byte, error) {
	ct, ok := v.(*Container)
	if !ok {
		return nil, dats.ErrEncodeUnsupported
	}
	return Encoder{}.Encode(ct)
}

func (format) New() interface{} {
	return &Container{}
}
