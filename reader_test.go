package cfb

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpen_MiniStreamRoundTrip(t *testing.T) {
	payload := []byte("hello, compound file")
	data := buildMiniFile(payload)

	r, err := Open(bytes.NewReader(data))
	require.NoError(t, err)

	require.Equal(t, []string{"Data"}, r.ListStreams())
	require.Empty(t, r.ListStorage())

	got, err := r.OpenStream([]string{"Data"})
	require.NoError(t, err)
	require.Equal(t, payload, got)
}

func TestOpen_RegularStreamRoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte("x"), miniStreamCutoff+200)
	data := buildMiniFile(payload)

	r, err := Open(bytes.NewReader(data))
	require.NoError(t, err)

	got, err := r.OpenStream([]string{"Data"})
	require.NoError(t, err)
	require.Equal(t, payload, got)
}

func TestOpen_StreamNameIsCaseInsensitive(t *testing.T) {
	data := buildMiniFile([]byte("x"))

	r, err := Open(bytes.NewReader(data))
	require.NoError(t, err)

	_, err = r.OpenStream([]string{"data"})
	require.NoError(t, err)

	_, err = r.OpenStream([]string{"DATA"})
	require.NoError(t, err)
}

func TestOpen_UnknownPathNotFound(t *testing.T) {
	data := buildMiniFile([]byte("x"))

	r, err := Open(bytes.NewReader(data))
	require.NoError(t, err)

	_, err = r.OpenStream([]string{"NoSuchStream"})
	require.ErrorIs(t, err, ErrDirectoryEntryNotFound)
}

func TestOpen_RootIsRootStorage(t *testing.T) {
	data := buildMiniFile([]byte("x"))

	r, err := Open(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, ObjectRootStorage, r.Root().Type)
}

func TestOpen_NotEnoughBytes(t *testing.T) {
	_, err := Open(bytes.NewReader(make([]byte, 100)))
	require.ErrorIs(t, err, ErrNotEnoughBytes)
}

func TestOpen_WrongMagic(t *testing.T) {
	data := make([]byte, 512)
	_, err := Open(bytes.NewReader(data))
	require.ErrorIs(t, err, ErrWrongMagic)
}

func TestReadChain_DetectsCycle(t *testing.T) {
	store := &sectorStore{sectorSize: 512, sectors: [][]byte{make([]byte, 512), make([]byte, 512)}}
	fat := []uint32{1, 0} // 0 -> 1 -> 0 ...

	_, err := readChain(0, fat, store)
	require.ErrorIs(t, err, ErrBadChain)
}
