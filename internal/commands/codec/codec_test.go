package codec

import (
	"github.com/stretchr/testify/require"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

func tempDir(t *testing.T) string {
	dir, err := ioutil.TempDir("", "crockford")
	require.NoError(t, err)
	return dir
}

func Test_EncodeDecodeCommands(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)

	src := filepath.Join(dir, "in.bin")
	encoded := filepath.Join(dir, "in.b32")
	decoded := filepath.Join(dir, "out.bin")
	require.NoError(t, ioutil.WriteFile(src, []byte("foobar"), 0644))

	enc := NewEncodeCommand(nil)
	enc.Args = Files{Source: src, Destination: encoded}
	require.NoError(t, enc.Execute(nil))

	data, err := ioutil.ReadFile(encoded)
	require.NoError(t, err)
	require.Equal(t, "CSQPYRK1E8======", string(data))

	dec := NewDecodeCommand(nil)
	dec.Args = Files{Source: encoded, Destination: decoded}
	require.NoError(t, dec.Execute(nil))

	data, err = ioutil.ReadFile(decoded)
	require.NoError(t, err)
	require.Equal(t, "foobar", string(data))
}

func Test_WrongArgumentCountPrintsUsage(t *testing.T) {
	printed := 0
	usage := func() {
		printed++
	}

	enc := NewEncodeCommand(usage)
	enc.Args = Files{Source: "in.bin"}
	require.NoError(t, enc.Execute(nil))
	require.Equal(t, 1, printed)

	dec := NewDecodeCommand(usage)
	dec.Args = Files{Source: "in.b32", Destination: "out.bin"}
	require.NoError(t, dec.Execute([]string{"extra"}))
	require.Equal(t, 2, printed)
}

func Test_UnopenableSourceIsNotAnError(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)

	dec := NewDecodeCommand(nil)
	dec.Args = Files{Source: filepath.Join(dir, "missing.b32"), Destination: filepath.Join(dir, "out.bin")}
	require.NoError(t, dec.Execute(nil))
}

func Test_InvalidBlocksIsAnError(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)

	src := filepath.Join(dir, "in.bin")
	require.NoError(t, ioutil.WriteFile(src, []byte("f"), 0644))

	enc := NewEncodeCommand(nil)
	enc.Blocks = -1
	enc.Args = Files{Source: src, Destination: filepath.Join(dir, "out.b32")}
	require.Error(t, enc.Execute(nil))
}
