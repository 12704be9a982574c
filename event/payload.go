package event

import (
	"fmt"
)

// PayloadKind indicates how the content of a series is represented.
type PayloadKind uint8

const (
	// The series is a list of decoded instructions.
	PayloadOpcodes PayloadKind = iota
	// The series is a span of undecoded bytes.
	PayloadRaw
)

func (k PayloadKind) String() string {
	switch k {
	case PayloadOpcodes:
		return "opcodes"
	case PayloadRaw:
		return "raw"
	}
	return fmt.Sprintf("PayloadKind(%d)", uint8(k))
}

func (k PayloadKind) MarshalText() ([]byte, error) {
	switch k {
	case PayloadOpcodes, PayloadRaw:
		return []byte(k.String()), nil
	}
	return nil, fmt.Errorf("invalid payload kind %d", uint8(k))
}

func (k *PayloadKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "opcodes":
		*k = PayloadOpcodes
	case "raw":
		*k = PayloadRaw
	default:
		return fmt.Errorf("invalid payload kind %q", text)
	}
	return nil
}
