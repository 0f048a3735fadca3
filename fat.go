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
	"encoding/binary"
	"fmt"
)

// buildFAT assembles the sector allocation table from the 109
// header-inline DIFAT entries. DIFAT sectors beyond the header (chained
// via NumDIFATSectors) are not supported; rather than silently
// truncating the table, that case fails loudly with ErrUnimplemented.
func buildFAT(h *Header, store *sectorStore) ([]uint32, error) {
	if h.NumDIFATSectors > 0 {
		return nil, fmt.Errorf("%w: DIFAT chains beyond the 109 header-inline entries", ErrUnimplemented)
	}

	entriesPerSector := h.SectorSize / 4
	fat := make([]uint32, 0, entriesPerSector*uint32(h.NumFATSectors))
	for _, id := range h.InitialDIFAT {
		if id == sectorFree || id == sectorEndOfChain {
			break
		}
		sec, err := store.at(id)
		if err != nil {
			return nil, err
		}
		for i := uint32(0); i < entriesPerSector; i++ {
			fat = append(fat, binary.LittleEndian.Uint32(sec[i*4:i*4+4]))
		}
	}
	return fat, nil
}
