package codec

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/cottand/spaces/space"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeValue(t *testing.T) {
	action := sampleSpaces()["union"]
	v := space.Tagged{Tag: "move", Value: space.Tuple{space.Label("s"), space.Bool(true)}}
	require.True(t, action.Contains(v))

	encoded, err := json.Marshal(EncodeValue(v))
	require.NoError(t, err)
	assert.JSONEq(t, `{"tag": "move", "value": ["s", true]}`, string(encoded))

	for _, format := range []Format{JSON, YAML} {
		t.Run(string(format), func(t *testing.T) {
			raw, err := DecodeRawValue(strings.NewReader(string(encoded)), format)
			require.NoError(t, err)
			decoded, err := DecodeValue(action, raw)
			require.NoError(t, err)
			assert.True(t, space.EqualValues(v, decoded), "expected %v, got %v", v, decoded)
		})
	}
}

func TestDecodeValueShapes(t *testing.T) {
	spaces := sampleSpaces()
	testCases := []struct {
		space    string
		raw      string
		expected space.Value
	}{
		{"labels", `"left"`, space.Label("left")},
		{"labels", `"up"`, space.Label("up")},
		{"range", `3`, space.Int(3)},
		{"naturals", `12`, space.Int(12)},
		{"binary", `false`, space.Bool(false)},
		{"closed", `0.25`, space.Real(0.25)},
		{"closed", `1`, space.Real(1)},
		{"unit", `null`, space.Unit{}},
		{"singleton", `["a", 0.5, {"tag": "t", "value": true}]`, space.Tuple{space.Label("a"), space.Real(0.5), space.Tagged{Tag: "t", Value: space.Bool(true)}}},
		{"product", `["b", 0.5]`, space.Tuple{space.Label("b"), space.Real(0.5)}},
		{"nested", `[{"tag": "r", "value": 1}, [true, false, true]]`, space.Tuple{
			space.Tagged{Tag: "r", Value: space.Int(1)},
			space.Tuple{space.Bool(true), space.Bool(false), space.Bool(true)},
		}},
	}
	for _, tc := range testCases {
		t.Run(tc.space+" "+tc.raw, func(t *testing.T) {
			raw, err := DecodeRawValue(strings.NewReader(tc.raw), JSON)
			require.NoError(t, err)
			got, err := DecodeValue(spaces[tc.space], raw)
			require.NoError(t, err)
			assert.True(t, space.EqualValues(tc.expected, got), "expected %v, got %v", tc.expected, got)
		})
	}
}

func TestDecodeValueErrors(t *testing.T) {
	spaces := sampleSpaces()
	testCases := []struct {
		space    string
		raw      string
		contains string
	}{
		{"labels", `1`, "expected a label"},
		{"range", `1.5`, "expected an integer"},
		{"range", `"1"`, "expected an integer"},
		{"binary", `1`, "expected a boolean"},
		{"closed", `"x"`, "expected a number"},
		{"null", `null`, "no values"},
		{"product", `["a"]`, "expected 2 items"},
		{"product", `["a", "b"]`, "item 1"},
		{"union", `{"tag": "fly", "value": 1}`, "unknown tag 'fly'"},
		{"union", `{"value": 1}`, "missing string 'tag'"},
		{"union", `["goto"]`, "expected a map"},
		{"singleton", `["a", 0.5]`, "expected a value like"},
	}
	for _, tc := range testCases {
		t.Run(tc.space+" "+tc.raw, func(t *testing.T) {
			raw, err := DecodeRawValue(strings.NewReader(tc.raw), JSON)
			require.NoError(t, err)
			_, err = DecodeValue(spaces[tc.space], raw)
			assert.ErrorContains(t, err, tc.contains)
		})
	}

	_, err := DecodeRawValue(strings.NewReader("x = 1"), TOML)
	assert.Error(t, err)
}

func TestDecodeLargeIntegers(t *testing.T) {
	const end = 9007199254740993 // 2^53 + 1, not representable as a float64
	r, err := space.NewRange(0, end)
	require.NoError(t, err)

	testCases := []struct {
		raw      string
		expected space.Int
		member   bool
	}{
		{"9007199254740993", end, false},
		{"9007199254740992", end - 1, true},
		{"9007199254740991", end - 2, true},
	}
	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			raw, err := DecodeRawValue(strings.NewReader(tc.raw), JSON)
			require.NoError(t, err)
			assert.IsType(t, json.Number(""), raw)

			v, err := DecodeValue(r, raw)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, v)
			assert.Equal(t, tc.member, r.Contains(v))
		})
	}

	_, err = DecodeValue(r, json.Number("99999999999999999999"))
	assert.ErrorContains(t, err, "expected an integer")
}

func TestValueRecords(t *testing.T) {
	values := []space.Value{
		space.Label("a"),
		space.Int(-4),
		space.Real(2.5),
		space.Bool(true),
		space.Unit{},
		space.Tuple{space.Int(1), space.Tuple{space.Label("x")}},
		space.Tagged{Tag: "t", Value: space.Tuple{}},
	}
	for _, v := range values {
		t.Run(v.String(), func(t *testing.T) {
			rec, err := valueToRecord(v)
			require.NoError(t, err)
			require.NoError(t, recordValidate.Struct(rec))
			back, err := valueFromRecord(rec)
			require.NoError(t, err)
			assert.True(t, space.EqualValues(v, back), "expected %v, got %v", v, back)
		})
	}

	_, err := valueToRecord(nil)
	assert.Error(t, err)
}
