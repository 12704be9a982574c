package dats

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type hexDoc struct {
	Op     HexByte  `json:"op" yaml:"op"`
	Params HexBytes `json:"params" yaml:"params"`
}

func TestHexJSON(t *testing.T) {
	doc := hexDoc{Op: 0x1F, Params: HexBytes{0x00, 0xAB, 0xFF}}
	b, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"op":"0x1F","params":["0x00","0xAB","0xFF"]}`, string(b))

	var got hexDoc
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, doc, got)
}

func TestHexJSONEmpty(t *testing.T) {
	b, err := json.Marshal(HexBytes(nil))
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(b))
}

func TestHexYAML(t *testing.T) {
	doc := hexDoc{Op: 0xD9, Params: HexBytes{0x01, 0x80}}
	b, err := yaml.Marshal(doc)
	require.NoError(t, err)
	assert.Contains(t, string(b), `op: "0xD9"`)
	assert.Contains(t, string(b), `params: ["0x01", "0x80"]`)

	var got hexDoc
	require.NoError(t, yaml.Unmarshal(b, &got))
	assert.Equal(t, doc, got)
}

func TestHexParse(t *testing.T) {
	var b HexBytes
	require.NoError(t, yaml.Unmarshal([]byte(`["0x0a", "FF", " 0X10 "]`), &b))
	assert.Equal(t, HexBytes{0x0A, 0xFF, 0x10}, b)

	assert.Error(t, yaml.Unmarshal([]byte(`["0x100"]`), &b))
	assert.Error(t, json.Unmarshal([]byte(`["zz"]`), &b))

	var v HexByte
	assert.Error(t, v.UnmarshalText([]byte("0x")))
}

func TestDigest(t *testing.T) {
	a := Digest([]byte("chunk"))
	assert.Len(t, a, DigestSize*2)
	assert.Equal(t, a, Digest([]byte("chunk")))
	assert.NotEqual(t, a, Digest([]byte("chunk!")))
}
