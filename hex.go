package dats

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// HexByte is a byte that is rendered in text form as a "0xHH" string.
type HexByte uint8

func (b HexByte) String() string {
	return fmt.Sprintf("0x%02X", uint8(b))
}

func (b HexByte) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b *HexByte) UnmarshalText(text []byte) error {
	v, err := parseHexByte(string(text))
	if err != nil {
		return err
	}
	*b = HexByte(v)
	return nil
}

// HexBytes is a byte slice that is rendered in text form as an array of
// "0xHH" strings, so that individual bytes can be edited by hand.
type HexBytes []byte

func (b HexBytes) strings() []string {
	s := make([]string, len(b))
	for i, v := range b {
		s[i] = HexByte(v).String()
	}
	return s
}

func (b HexBytes) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.strings())
}

func (b *HexBytes) UnmarshalJSON(data []byte) error {
	var s []string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return b.fromStrings(s)
}

func (b HexBytes) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle}
	for _, s := range b.strings() {
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s})
	}
	return node, nil
}

func (b *HexBytes) UnmarshalYAML(node *yaml.Node) error {
	var s []string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return b.fromStrings(s)
}

func (b *HexBytes) fromStrings(s []string) error {
	out := make(HexBytes, len(s))
	for i, v := range s {
		c, err := parseHexByte(v)
		if err != nil {
			return fmt.Errorf("byte %d: %w", i, err)
		}
		out[i] = c
	}
	*b = out
	return nil
}

func parseHexByte(s string) (byte, error) {
	t := strings.TrimSpace(s)
	if len(t) > 2 && (t[:2] == "0x" || t[:2] == "0X") {
		t = t[2:]
	}
	v, err := strconv.ParseUint(t, 16, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid hex byte %q", s)
	}
	return byte(v), nil
}
