package artifacts

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRemapping(t *testing.T) {
	tests := []struct {
		input   string
		want    Remapping
		wantErr bool
	}{
		{input: "@openzeppelin/=lib/openzeppelin-contracts/", want: Remapping{Name: "@openzeppelin/", Path: "lib/openzeppelin-contracts/"}},
		{input: "src:ds-test/=lib/ds-test/src/", want: Remapping{Context: "src", Name: "ds-test/", Path: "lib/ds-test/src/"}},
		{input: "  forge-std/=lib/forge-std/src/  ", want: Remapping{Name: "forge-std/", Path: "lib/forge-std/src/"}},
		{input: "no-equals", wantErr: true},
		{input: "=lib/x/", wantErr: true},
		{input: "x/=", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRemapping(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidRemapping))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRemapping_JSONIsString(t *testing.T) {
	rs := []Remapping{
		{Name: "a/", Path: "lib/a/"},
		{Context: "src", Name: "b/", Path: "lib/b/"},
	}

	data, err := json.Marshal(rs)
	require.NoError(t, err)
	assert.Equal(t, `["a/=lib/a/","src:b/=lib/b/"]`, string(data))

	var got []Remapping
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, rs, got)
}

func TestParseLibrary(t *testing.T) {
	addr := "0x5FbDB2315678afecb367f032d93F642f64180aa3"

	lib, err := ParseLibrary("src/lib/Math.sol:Math:" + addr)
	require.NoError(t, err)
	assert.Equal(t, "src/lib/Math.sol", lib.File)
	assert.Equal(t, "Math", lib.Name)
	assert.Equal(t, common.HexToAddress(addr), lib.Address)

	lib, err = ParseLibrary("C:/work/Math.sol:Math:" + addr)
	require.NoError(t, err)
	assert.Equal(t, "C:/work/Math.sol", lib.File)

	for _, bad := range []string{"Math", "Math:" + addr, "src/M.sol::" + addr, "src/M.sol:Math:0x1234"} {
		_, err := ParseLibrary(bad)
		require.Error(t, err, bad)
		assert.True(t, errors.Is(err, ErrInvalidLibrary))
	}
}

func TestLibraries_ListAndJSON(t *testing.T) {
	libs, err := ParseLibraries([]string{
		"src/B.sol:Zeta:0x0000000000000000000000000000000000000002",
		"src/A.sol:Alpha:0x0000000000000000000000000000000000000001",
		"src/B.sol:Beta:0x0000000000000000000000000000000000000003",
	})
	require.NoError(t, err)

	list := libs.List()
	require.Len(t, list, 3)
	assert.Equal(t, "Alpha", list[0].Name)
	assert.Equal(t, "Beta", list[1].Name)
	assert.Equal(t, "Zeta", list[2].Name)

	data, err := json.Marshal(libs)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"src/A.sol": {"Alpha": "0x0000000000000000000000000000000000000001"},
		"src/B.sol": {"Beta": "0x0000000000000000000000000000000000000003", "Zeta": "0x0000000000000000000000000000000000000002"}
	}`, string(data))

	other := Libraries{}
	other.Add("src/A.sol", "Alpha", common.HexToAddress("0x0000000000000000000000000000000000000009"))
	libs.Merge(other)
	assert.Equal(t, common.HexToAddress("0x09"), libs["src/A.sol"]["Alpha"])
}

func TestLibraries_JSONChecksummed(t *testing.T) {
	libs := Libraries{}
	libs.Add("src/Token.sol", "Math", common.HexToAddress("0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"))

	data, err := json.Marshal(libs)
	require.NoError(t, err)
	assert.JSONEq(t, `{"src/Token.sol": {"Math": "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"}}`, string(data))

	var back Libraries
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, libs, back)

	data, err = json.Marshal(Libraries(nil))
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}

func TestDefaultOutputSelection(t *testing.T) {
	a := DefaultOutputSelection()
	b := DefaultOutputSelection()
	assert.Equal(t, a, b)

	// Fresh value on every call.
	a["*"]["*"] = append(a["*"]["*"], "storageLayout")
	assert.NotEqual(t, a, b)

	data, err := json.Marshal(DefaultOutputSelection())
	require.NoError(t, err)
	assert.JSONEq(t, `{"*":{"":["ast"],"*":["abi","evm.bytecode","evm.deployedBytecode","evm.methodIdentifiers"]}}`, string(data))
}

func TestSettingsMetadata_BytecodeHash(t *testing.T) {
	var md SettingsMetadata
	require.NoError(t, json.Unmarshal([]byte(`{"bytecodeHash":"keccak256","appendCBOR":false}`), &md))
	assert.Equal(t, BytecodeHashKeccak256, md.BytecodeHash)
	require.NotNil(t, md.CBORMetadata)
	assert.False(t, *md.CBORMetadata)

	err := json.Unmarshal([]byte(`{"bytecodeHash":"sha1"}`), &md)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown bytecode hash")
}

func TestSource(t *testing.T) {
	data, err := json.Marshal(NewSource("contract A {}"))
	require.NoError(t, err)
	assert.Equal(t, `{"content":"contract A {}"}`, string(data))

	_, err = json.Marshal(NewSource("bad \xc3\x28"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidEncoding))

	path := filepath.Join(t.TempDir(), "A.sol")
	require.NoError(t, os.WriteFile(path, []byte("pragma solidity ^0.8.0;"), 0600))
	src, err := ReadSource(path)
	require.NoError(t, err)
	assert.Equal(t, "pragma solidity ^0.8.0;", src.Content)

	_, err = ReadSource(filepath.Join(t.TempDir(), "missing.sol"))
	require.Error(t, err)
}
