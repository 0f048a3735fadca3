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

// On-disk sentinel constants, per [MS-CFB].
const (
	headerLen = 512 // length of the fixed header, before any sector padding

	miniSectorSize   = 64   // size of a mini-sector (tile of the mini-stream)
	miniStreamCutoff = 4096 // streams smaller than this live in the mini-stream
	dirEntrySize     = 128  // size of one directory entry slab

	majorVersion3 = 3
	majorVersion4 = 4

	sectorShiftV3 = 9  // 512-byte sectors
	sectorShiftV4 = 12 // 4096-byte sectors

	miniSectorShift = 6 // mini-sectors are always 64 bytes

	correctMinorVersion = 0x003E
	correctCutoffField  = 0x00001000
)

// Reserved sector/stream IDs.
const (
	sectorDIFAT      uint32 = 0xFFFFFFFC // a DIFAT sector in the FAT
	sectorFAT        uint32 = 0xFFFFFFFD // a FAT sector in the FAT
	sectorEndOfChain uint32 = 0xFFFFFFFE // end of a linked chain of sectors
	sectorFree       uint32 = 0xFFFFFFFF // unallocated sector

	maxRegSID uint32 = 0xFFFFFFFA // maximum regular stream ID
	noStream  uint32 = 0xFFFFFFFF // absent sibling/child pointer
)

var magicBytes = [8]byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

var byteOrderMark = [2]byte{0xFE, 0xFF}
