package cfb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseDirectoryEntry_UnallocatedIsNil(t *testing.T) {
	slab := make([]byte, dirEntrySize) // object_type 0x00
	e, err := parseDirectoryEntry(slab, 3, majorVersion3)
	require.NoError(t, err)
	require.Nil(t, e)
}

func TestParseDirectoryEntry_InvalidObjectType(t *testing.T) {
	slab := make([]byte, dirEntrySize)
	slab[66] = 0x03
	_, err := parseDirectoryEntry(slab, 0, majorVersion3)
	require.ErrorIs(t, err, ErrDirectoryEntry)
}

func TestParseDirectoryEntry_StorageWithNonZeroSize(t *testing.T) {
	slab := make([]byte, dirEntrySize)
	slab[66] = byte(ObjectStorage)
	slab[67] = byte(ColorBlack)
	putU32(slab, 68, noStream)
	putU32(slab, 72, noStream)
	putU32(slab, 76, noStream)
	putU64(slab, 120, 10)

	_, err := parseDirectoryEntry(slab, 0, majorVersion3)
	require.ErrorIs(t, err, ErrDirectoryEntry)
}

func TestParseDirectoryEntry_RootStorageMisalignedSize(t *testing.T) {
	slab := make([]byte, dirEntrySize)
	slab[66] = byte(ObjectRootStorage)
	slab[67] = byte(ColorBlack)
	putU32(slab, 68, noStream)
	putU32(slab, 72, noStream)
	putU32(slab, 76, noStream)
	putU64(slab, 120, 65) // not a multiple of 64

	_, err := parseDirectoryEntry(slab, 0, majorVersion3)
	require.ErrorIs(t, err, ErrDirectoryEntry)
}

func TestParseDirectoryEntry_DecodesFiletimeAndClassID(t *testing.T) {
	slab := make([]byte, dirEntrySize)
	slab[66] = byte(ObjectStream)
	slab[67] = byte(ColorRed)
	putU32(slab, 68, noStream)
	putU32(slab, 72, noStream)
	putU32(slab, 76, noStream)

	// 2024-01-01 00:00:00 UTC as a Windows FILETIME.
	want := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	ticks := uint64(want.Unix()-filetimeEpoch.Unix()) * 10_000_000
	putU64(slab, 100, ticks)

	e, err := parseDirectoryEntry(slab, 0, majorVersion3)
	require.NoError(t, err)
	require.True(t, e.Created.Equal(want))
	require.True(t, e.Modified.IsZero())
	require.Equal(t, "", e.ClassID)
}

func TestValidateUTF16_RejectsUnpairedSurrogate(t *testing.T) {
	err := validateUTF16([]uint16{0xD800}) // high surrogate with nothing following
	require.ErrorIs(t, err, ErrUtf16Decode)
}

func TestValidateUTF16_AcceptsSurrogatePair(t *testing.T) {
	err := validateUTF16([]uint16{0xD83D, 0xDE00}) // U+1F600
	require.NoError(t, err)
}

func TestFormatClassID_Canonical(t *testing.T) {
	b := []byte{
		0x02, 0x00, 0x00, 0x00,
		0x00, 0x00,
		0x00, 0x00,
		0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46,
	}
	require.Equal(t, "00000002-0000-0000-C000-000000000046", formatClassID(b))
}

func TestFormatClassID_ZeroIsEmpty(t *testing.T) {
	require.Equal(t, "", formatClassID(make([]byte, 16)))
}
