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

import "encoding/binary"

// buildMiniFAT walks the FAT from the header's first mini-FAT sector,
// concatenating sector payloads until chain-end, then reinterprets the
// result as little-endian u32 entries. Returns nil if there is no
// mini-FAT (and therefore no mini-stream).
func buildMiniFAT(h *Header, fat []uint32, store *sectorStore) ([]uint32, error) {
	if h.NumMiniFATSectors == 0 || h.FirstMiniFATSector == sectorEndOfChain {
		return nil, nil
	}

	raw, err := readChain(h.FirstMiniFATSector, fat, store)
	if err != nil {
		return nil, err
	}

	n := len(raw) / 4
	miniFAT := make([]uint32, n)
	for i := 0; i < n; i++ {
		miniFAT[i] = binary.LittleEndian.Uint32(raw[i*4 : i*4+4])
	}
	return miniFAT, nil
}
