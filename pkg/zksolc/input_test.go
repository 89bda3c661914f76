package zksolc

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/leapstack-labs/zkconfig/pkg/artifacts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sources(pairs ...string) artifacts.Sources {
	var out artifacts.Sources
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, artifacts.Entry[artifacts.Source]{Key: pairs[i], Value: artifacts.NewSource(pairs[i+1])})
	}
	return out
}

// documentKeys returns the member names of the object at key in document order.
func documentKeys(t *testing.T, data []byte, key string) []string {
	t.Helper()
	var doc artifacts.OrderedMap[json.RawMessage]
	require.NoError(t, json.Unmarshal(data, &doc))
	raw, ok := doc.Get(key)
	require.True(t, ok, "missing %q", key)
	var inner artifacts.OrderedMap[json.RawMessage]
	require.NoError(t, json.Unmarshal(raw, &inner))
	return inner.Keys()
}

func TestNewStandardJSONInput_Language(t *testing.T) {
	for _, src := range []artifacts.Sources{nil, sources("A.sol", ""), sources("x.vy", "# @version 0.3.10")} {
		in := NewStandardJSONInput(src, DefaultSettings())
		assert.Equal(t, "Solidity", in.Language)
	}
}

func TestStandardJSONInput_SourcesInCallerOrder(t *testing.T) {
	in := NewStandardJSONInput(sources(
		"B.sol", "import \"./A.sol\"; contract B is A {}",
		"A.sol", "contract A {}",
	), DefaultSettings())

	data, err := json.Marshal(in)
	require.NoError(t, err)

	assert.Equal(t, []string{"B.sol", "A.sol"}, documentKeys(t, data, "sources"))
	assert.Equal(t, []string{"language", "sources", "settings"}, documentKeys(t, []byte(`{"doc":`+string(data)+`}`), "doc"))
}

func TestStandardJSONInput_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input artifacts.Sources
		want  []string
	}{
		{name: "empty", input: artifacts.Sources{}, want: []string{}},
		{name: "one", input: sources("src/Greeter.sol", "contract Greeter {}"), want: []string{"src/Greeter.sol"}},
		{
			name:  "non alphabetical",
			input: sources("z.sol", "contract Z {}", "a.sol", "contract A {}", "m.sol", "contract M {}"),
			want:  []string{"z.sol", "a.sol", "m.sol"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := NewStandardJSONInput(tt.input, DefaultSettings())
			data, err := json.Marshal(in)
			require.NoError(t, err)

			var got StandardJSONInput
			require.NoError(t, json.Unmarshal(data, &got))
			assert.Equal(t, tt.want, got.Sources.Keys())
			assert.Equal(t, tt.input, got.Sources)
			assert.Equal(t, LanguageSolidity, got.Language)
			assert.Equal(t, in.Settings, got.Settings)
		})
	}
}

func TestStandardJSONInput_EmptySources(t *testing.T) {
	data, err := json.Marshal(NewStandardJSONInput(nil, DefaultSettings()))
	require.NoError(t, err)

	var members map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &members))
	assert.Equal(t, `{}`, string(members["sources"]))
}

func TestStandardJSONInput_DuplicatePath(t *testing.T) {
	in := NewStandardJSONInput(sources("A.sol", "contract A {}", "A.sol", "contract A2 {}"), DefaultSettings())

	err := in.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, artifacts.ErrDuplicateKey))

	_, err = json.Marshal(in)
	require.Error(t, err)
	assert.True(t, errors.Is(err, artifacts.ErrDuplicateKey))
}

func TestStandardJSONInput_InvalidContent(t *testing.T) {
	in := NewStandardJSONInput(sources("A.sol", "contract A {} \xff"), DefaultSettings())
	require.NoError(t, in.Validate())

	_, err := json.Marshal(in)
	require.Error(t, err)
	assert.True(t, errors.Is(err, artifacts.ErrInvalidEncoding))
}

func TestStandardJSONInput_UnmarshalErrors(t *testing.T) {
	settings := `{"optimizer": {"disableSystemRequestMemoization": false}, "isSystem": false, "forceEvmla": false}`

	tests := []struct {
		name      string
		input     string
		errSubstr string
	}{
		{name: "no language", input: `{"sources": {}, "settings": ` + settings + `}`, errSubstr: `missing field "language"`},
		{name: "no sources", input: `{"language": "Solidity", "settings": ` + settings + `}`, errSubstr: `missing field "sources"`},
		{name: "no settings", input: `{"language": "Solidity", "sources": {}}`, errSubstr: `missing field "settings"`},
		{name: "sources not object", input: `{"language": "Solidity", "sources": [], "settings": ` + settings + `}`, errSubstr: "expected JSON object"},
		{name: "bad source", input: `{"language": "Solidity", "sources": {"A.sol": {"content": 1}}, "settings": ` + settings + `}`, errSubstr: `"A.sol"`},
		{name: "bad settings", input: `{"language": "Solidity", "sources": {}, "settings": {}}`, errSubstr: `settings: missing field "optimizer"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in StandardJSONInput
			err := json.Unmarshal([]byte(tt.input), &in)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}
