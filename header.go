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
)

// Header is the decoded form of the 512-byte CFB file header.
type Header struct {
	MajorVersion uint16
	MinorVersion uint16
	SectorSize   uint32 // 512 for major version 3, 4096 for major version 4

	NumDirectorySectors uint32 // must be 0 for major version 3
	NumFATSectors        uint32
	FirstDirectorySector uint32

	TransactionSignature uint32

	FirstMiniFATSector uint32
	NumMiniFATSectors  uint32

	FirstDIFATSector uint32
	NumDIFATSectors  uint32

	// InitialDIFAT holds the 109 FAT sector IDs inlined in the header.
	InitialDIFAT [109]uint32
}

// parseHeader validates and decodes a 512-byte CFB header. Any
// structural violation aborts with a wrapped ErrWrongMagic or
// ErrHeaderField.
func parseHeader(b []byte) (*Header, error) {
	if len(b) != headerLen {
		return nil, fmt.Errorf("%w: got %d bytes", ErrNotEnoughBytes, len(b))
	}

	if !bytes.Equal(b[0:8], magicBytes[:]) {
		return nil, fmt.Errorf("%w: found %x", ErrWrongMagic, b[0:8])
	}

	var zeroCLSID [16]byte
	if !bytes.Equal(b[8:24], zeroCLSID[:]) {
		return nil, fmt.Errorf("%w: class_id must be zero", ErrHeaderField)
	}

	minorVersion := binary.LittleEndian.Uint16(b[24:26])
	if minorVersion != correctMinorVersion {
		return nil, fmt.Errorf("%w: minor_version %#x", ErrHeaderField, minorVersion)
	}

	majorVersion := binary.LittleEndian.Uint16(b[26:28])
	if majorVersion != majorVersion3 && majorVersion != majorVersion4 {
		return nil, fmt.Errorf("%w: major_version %#x", ErrHeaderField, majorVersion)
	}

	if !bytes.Equal(b[28:30], byteOrderMark[:]) {
		return nil, fmt.Errorf("%w: byte_order_mark %x", ErrHeaderField, b[28:30])
	}

	sectorShift := binary.LittleEndian.Uint16(b[30:32])
	wantShift := uint16(sectorShiftV3)
	if majorVersion == majorVersion4 {
		wantShift = sectorShiftV4
	}
	if sectorShift != wantShift {
		return nil, fmt.Errorf("%w: sector_shift %#x for major_version %d", ErrHeaderField, sectorShift, majorVersion)
	}

	miniSectorShiftField := binary.LittleEndian.Uint16(b[32:34])
	if miniSectorShiftField != miniSectorShift {
		return nil, fmt.Errorf("%w: mini_sector_shift %#x", ErrHeaderField, miniSectorShiftField)
	}

	var reserved [6]byte
	if !bytes.Equal(b[34:40], reserved[:]) {
		return nil, fmt.Errorf("%w: non-zero reserved field", ErrHeaderField)
	}

	numDirectorySectors := binary.LittleEndian.Uint32(b[40:44])
	if majorVersion == majorVersion3 && numDirectorySectors != 0 {
		return nil, fmt.Errorf("%w: num_directory_sectors must be 0 for major_version 3", ErrHeaderField)
	}

	standardStreamCutoff := binary.LittleEndian.Uint32(b[56:60])
	if standardStreamCutoff != correctCutoffField {
		return nil, fmt.Errorf("%w: standard_stream_cutoff %#x", ErrHeaderField, standardStreamCutoff)
	}

	h := &Header{
		MajorVersion:         majorVersion,
		MinorVersion:         minorVersion,
		SectorSize:           1 << sectorShift,
		NumDirectorySectors:  numDirectorySectors,
		NumFATSectors:        binary.LittleEndian.Uint32(b[44:48]),
		FirstDirectorySector: binary.LittleEndian.Uint32(b[48:52]),
		TransactionSignature: binary.LittleEndian.Uint32(b[52:56]),
		FirstMiniFATSector:   binary.LittleEndian.Uint32(b[60:64]),
		NumMiniFATSectors:    binary.LittleEndian.Uint32(b[64:68]),
		FirstDIFATSector:     binary.LittleEndian.Uint32(b[68:72]),
		NumDIFATSectors:      binary.LittleEndian.Uint32(b[72:76]),
	}
	for i := range h.InitialDIFAT {
		off := 76 + i*4
		h.InitialDIFAT[i] = binary.LittleEndian.Uint32(b[off : off+4])
	}
	return h, nil
}
