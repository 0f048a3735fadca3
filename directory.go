// Copyright 2013 Richard Lehane. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cfb

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/encoding/unicode"
)

// ObjectType classifies a directory entry.
type ObjectType uint8

const (
	objectUnknown ObjectType = 0x00

	// ObjectStorage identifies a storage (folder) entry.
	ObjectStorage ObjectType = 0x01
	// ObjectStream identifies a stream (file) entry.
	ObjectStream ObjectType = 0x02
	// ObjectRootStorage identifies the single root storage entry,
	// always at index 0.
	ObjectRootStorage ObjectType = 0x05
)

// Color is the red-black tree node color used by MS-CFB's sibling tree.
// This package does not reconstruct tree ordering (findChild walks every
// sibling), but the field is retained for callers that want it.
type Color uint8

const (
	ColorRed   Color = 0x00
	ColorBlack Color = 0x01
)

// DirectoryEntry is a decoded 128-byte directory slab. Sibling and
// child references are raw directory-array indices; compare them
// against the package-level noStream sentinel (exposed indirectly via
// HasLeftSibling etc.) to test for absence.
type DirectoryEntry struct {
	Index int
	Name  string
	Type  ObjectType
	Color Color

	LeftSibID, RightSibID, ChildID uint32

	// ClassID is the canonical upper-case GUID string, or "" if the
	// entry carries no class ID (streams never do).
	ClassID string

	StateBits uint32

	// Created and Modified are the zero time.Time when the
	// corresponding FILETIME field on disk was all-zero.
	Created, Modified time.Time

	// StartingSectorLoc is meaningful only for Stream and RootStorage
	// entries (head of the stream's chain, or the mini-stream's chain,
	// respectively). It is unused for Storage entries.
	StartingSectorLoc uint32

	// Size is the stream's byte length, or the mini-stream's byte
	// length for the root entry. Always 0 for Storage entries.
	Size uint64
}

// HasLeftSibling reports whether LeftSibID refers to a real entry.
func (e *DirectoryEntry) HasLeftSibling() bool { return e.LeftSibID != noStream }

// HasRightSibling reports whether RightSibID refers to a real entry.
func (e *DirectoryEntry) HasRightSibling() bool { return e.RightSibID != noStream }

// HasChild reports whether ChildID refers to a real entry.
func (e *DirectoryEntry) HasChild() bool { return e.ChildID != noStream }

var utf16LEDecoder = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()

// buildDirectory walks the FAT from the header's directory-first-sector
// field, decodes every 128-byte slab, and returns an array indexed
// exactly like the on-disk directory array: unallocated slabs are left
// as a nil entry rather than dropped, so that sibling/child indices
// (which reference raw slab positions) always resolve correctly
// regardless of where padding slabs fall in the chain.
func buildDirectory(h *Header, fat []uint32, store *sectorStore) ([]*DirectoryEntry, error) {
	raw, err := readChain(h.FirstDirectorySector, fat, store)
	if err != nil {
		return nil, err
	}
	if len(raw)%dirEntrySize != 0 {
		return nil, fmt.Errorf("%w: directory stream length %d is not a multiple of %d", ErrDirectoryEntry, len(raw), dirEntrySize)
	}

	n := len(raw) / dirEntrySize
	entries := make([]*DirectoryEntry, n)
	for i := 0; i < n; i++ {
		slab := raw[i*dirEntrySize : (i+1)*dirEntrySize]
		entry, err := parseDirectoryEntry(slab, i, h.MajorVersion)
		if err != nil {
			return nil, err
		}
		entries[i] = entry // nil for unallocated slabs
	}

	for i, e := range entries {
		if e == nil {
			continue
		}
		for _, id := range [...]uint32{e.LeftSibID, e.RightSibID, e.ChildID} {
			if id != noStream && id >= uint32(n) {
				return nil, fmt.Errorf("%w: entry %d references out-of-range index %d", ErrDirectoryEntry, i, id)
			}
		}
	}

	if entries[0] == nil || entries[0].Type != ObjectRootStorage {
		return nil, fmt.Errorf("%w: entry 0 is not the root storage", ErrDirectoryEntry)
	}
	return entries, nil
}

// parseDirectoryEntry decodes one 128-byte slab. It returns (nil, nil)
// for an unallocated (object_type 0x00) slab: unallocated entries are
// dropped silently, never surfaced as an error.
func parseDirectoryEntry(b []byte, index int, majorVersion uint16) (*DirectoryEntry, error) {
	rawType := b[66]
	var objType ObjectType
	switch rawType {
	case byte(objectUnknown):
		return nil, nil
	case byte(ObjectStorage):
		objType = ObjectStorage
	case byte(ObjectStream):
		objType = ObjectStream
	case byte(ObjectRootStorage):
		objType = ObjectRootStorage
	default:
		return nil, fmt.Errorf("%w: entry %d has invalid object_type %#x", ErrDirectoryEntry, index, rawType)
	}

	name, err := decodeEntryName(b[0:64], binary.LittleEndian.Uint16(b[64:66]))
	if err != nil {
		return nil, fmt.Errorf("entry %d: %w", index, err)
	}

	var color Color
	switch b[67] {
	case byte(ColorRed):
		color = ColorRed
	case byte(ColorBlack):
		color = ColorBlack
	default:
		return nil, fmt.Errorf("%w: entry %d has invalid color_flag %#x", ErrDirectoryEntry, index, b[67])
	}

	leftSibID, err := decodeStreamID(b[68:72])
	if err != nil {
		return nil, fmt.Errorf("entry %d: left_sibling_id: %w", index, err)
	}
	rightSibID, err := decodeStreamID(b[72:76])
	if err != nil {
		return nil, fmt.Errorf("entry %d: right_sibling_id: %w", index, err)
	}
	childID, err := decodeStreamID(b[76:80])
	if err != nil {
		return nil, fmt.Errorf("entry %d: child_id: %w", index, err)
	}

	classID := formatClassID(b[80:96])
	stateBits := binary.LittleEndian.Uint32(b[96:100])
	created := decodeFiletime(binary.LittleEndian.Uint64(b[100:108]))
	modified := decodeFiletime(binary.LittleEndian.Uint64(b[108:116]))

	// §4.5: starting_sector_location is forced absent for Storage; it is
	// meaningful only for Stream (head of its chain) and RootStorage
	// (head of the mini-stream).
	startingSectorLoc := binary.LittleEndian.Uint32(b[116:120])
	if objType == ObjectStorage {
		startingSectorLoc = noStream
	}

	streamSizeBytes := make([]byte, 8)
	copy(streamSizeBytes, b[120:128])
	if majorVersion == majorVersion3 {
		// [MS-CFB] 2.6.1: for v3 files the upper 32 bits of stream_size
		// must be treated as zero, some writers leave them garbage.
		for i := 4; i < 8; i++ {
			streamSizeBytes[i] = 0
		}
	}
	streamSize := binary.LittleEndian.Uint64(streamSizeBytes)

	if objType == ObjectStorage && streamSize != 0 {
		return nil, fmt.Errorf("%w: entry %d is a storage with non-zero stream_size", ErrDirectoryEntry, index)
	}
	if objType == ObjectRootStorage && streamSize%miniSectorSize != 0 {
		return nil, fmt.Errorf("%w: entry %d is the root storage with stream_size %% 64 != 0", ErrDirectoryEntry, index)
	}

	return &DirectoryEntry{
		Index:             index,
		Name:              name,
		Type:              objType,
		Color:             color,
		LeftSibID:         leftSibID,
		RightSibID:        rightSibID,
		ChildID:           childID,
		ClassID:           classID,
		StateBits:         stateBits,
		Created:           created,
		Modified:          modified,
		StartingSectorLoc: startingSectorLoc,
		Size:              streamSize,
	}, nil
}

func decodeStreamID(b []byte) (uint32, error) {
	v := binary.LittleEndian.Uint32(b)
	if v == noStream {
		return noStream, nil
	}
	if v > maxRegSID {
		return 0, fmt.Errorf("%w: invalid stream id %#x", ErrDirectoryEntry, v)
	}
	return v, nil
}

func decodeEntryName(raw []byte, nameLen uint16) (string, error) {
	if nameLen == 0 {
		return "", nil
	}
	if nameLen%2 != 0 || nameLen > 64 {
		return "", fmt.Errorf("%w: name_len %d", ErrDirectoryEntry, nameLen)
	}

	units := make([]uint16, nameLen/2)
	for i := range units {
		units[i] = binary.LittleEndian.Uint16(raw[i*2 : i*2+2])
	}
	if err := validateUTF16(units); err != nil {
		return "", err
	}

	out, err := utf16LEDecoder.Bytes(raw[:nameLen])
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUtf16Decode, err)
	}
	return strings.TrimSuffix(string(out), "\x00"), nil
}

// validateUTF16 rejects unpaired surrogates, which the x/text decoder
// would otherwise silently replace with U+FFFD.
func validateUTF16(units []uint16) error {
	for i := 0; i < len(units); i++ {
		u := units[i]
		switch {
		case u >= 0xD800 && u <= 0xDBFF: // high surrogate
			if i+1 >= len(units) {
				return ErrUtf16Decode
			}
			lo := units[i+1]
			if lo < 0xDC00 || lo > 0xDFFF {
				return ErrUtf16Decode
			}
			i++
		case u >= 0xDC00 && u <= 0xDFFF: // unpaired low surrogate
			return ErrUtf16Decode
		}
	}
	return nil
}

// formatClassID renders a 16-byte class ID GUID in canonical upper-case
// form, with the first three groups decoded little-endian (the "mixed
// endian" GUID convention) and the last two groups taken as raw bytes.
// Returns "" for an all-zero class ID.
func formatClassID(b []byte) string {
	var zero [16]byte
	if bytes.Equal(b, zero[:]) {
		return ""
	}
	s := fmt.Sprintf("%08X-%04X-%04X-%02X%02X-%02X%02X%02X%02X%02X%02X",
		binary.LittleEndian.Uint32(b[0:4]),
		binary.LittleEndian.Uint16(b[4:6]),
		binary.LittleEndian.Uint16(b[6:8]),
		b[8], b[9], b[10], b[11], b[12], b[13], b[14], b[15])
	return s
}

// filetimeEpoch is the Windows FILETIME epoch: 1601-01-01 00:00:00 UTC.
var filetimeEpoch = time.Date(1601, time.January, 1, 0, 0, 0, 0, time.UTC)

// decodeFiletime converts 100-ns ticks since filetimeEpoch into a
// time.Time, or the zero Time if v is zero (meaning "not recorded").
func decodeFiletime(v uint64) time.Time {
	if v == 0 {
		return time.Time{}
	}
	// Split into seconds and a remainder: v*100ns exceeds time.Duration's
	// range for any date after about 1893.
	const ticksPerSecond = 10_000_000
	secs := int64(v/ticksPerSecond) + filetimeEpoch.Unix()
	nsec := int64(v%ticksPerSecond) * 100
	return time.Unix(secs, nsec).UTC()
}
