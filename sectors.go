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
	"fmt"
	"io"
)

// sectorStore holds every sector following the header, indexable by
// sector ID (sector 0 is the sector immediately after the header). It
// buffers the whole file in memory: the directory must be fully
// materialized to support path lookup, and streams may span arbitrary
// FAT chains, so there is no benefit to lazy loading.
type sectorStore struct {
	sectorSize uint32
	sectors    [][]byte
}

// newSectorStore reads rs to exhaustion in sectorSize chunks. A short
// final read before EOF is fatal; EOF exactly on a sector boundary ends
// the read normally.
func newSectorStore(rs io.Reader, sectorSize uint32) (*sectorStore, error) {
	store := &sectorStore{sectorSize: sectorSize}
	for {
		buf := make([]byte, sectorSize)
		n, err := io.ReadFull(rs, buf)
		switch {
		case err == nil:
			store.sectors = append(store.sectors, buf)
		case err == io.EOF:
			return store, nil
		case err == io.ErrUnexpectedEOF:
			return nil, fmt.Errorf("%w: sector %d, got %d of %d bytes", ErrUnexpectedEOF, len(store.sectors), n, sectorSize)
		default:
			return nil, fmt.Errorf("cfb: reading sector %d: %w", len(store.sectors), err)
		}
	}
}

// at returns the sector at the given ID, or ErrBadChain if id is out of
// range.
func (s *sectorStore) at(id uint32) ([]byte, error) {
	if id >= uint32(len(s.sectors)) {
		return nil, fmt.Errorf("%w: sector %d out of range (have %d)", ErrBadChain, id, len(s.sectors))
	}
	return s.sectors[id], nil
}
