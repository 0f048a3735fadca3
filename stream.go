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

import "fmt"

// streamBytes returns the full contents of a stream entry, dispatching
// to the mini-stream or the regular sector chain depending on size.
func (r *Reader) streamBytes(e *DirectoryEntry) ([]byte, error) {
	if e.Type != ObjectStream {
		return nil, fmt.Errorf("%w: %q", ErrNoStream, e.Name)
	}
	if e.Size < miniStreamCutoff {
		return readMiniStream(r.miniFAT, r.miniStream, e)
	}
	return readRegularStream(r.fat, r.store, e)
}

// readRegularStream walks the FAT starting at e.StartingSectorLoc,
// collecting exactly e.Size bytes. Unlike readChain, the target length
// is known in advance, so the walk terminates on byte count rather than
// needing a cycle guard: a chain that is too short to supply e.Size
// bytes fails with ErrBadChain before any cycle could matter.
func readRegularStream(fat []uint32, store *sectorStore, e *DirectoryEntry) ([]byte, error) {
	out := make([]byte, 0, e.Size)
	sn := e.StartingSectorLoc
	for uint64(len(out)) < e.Size {
		if sn == sectorEndOfChain {
			return nil, fmt.Errorf("%w: stream %q ended early (got %d of %d bytes)", ErrBadChain, e.Name, len(out), e.Size)
		}
		sec, err := store.at(sn)
		if err != nil {
			return nil, err
		}
		out = append(out, sec...)
		if sn >= uint32(len(fat)) {
			return nil, fmt.Errorf("%w: sector %d has no FAT entry", ErrBadChain, sn)
		}
		sn = fat[sn]
	}
	return out[:e.Size], nil
}

// readMiniStream walks the mini-FAT starting at e.StartingSectorLoc,
// collecting exactly e.Size bytes from 64-byte tiles of the root
// entry's mini-stream.
func readMiniStream(miniFAT []uint32, miniStream [][]byte, e *DirectoryEntry) ([]byte, error) {
	if e.Size == 0 {
		return []byte{}, nil
	}
	if miniFAT == nil || miniStream == nil {
		return nil, fmt.Errorf("%w: stream %q needs a mini-stream but none is present", ErrBadChain, e.Name)
	}

	out := make([]byte, 0, e.Size)
	sn := e.StartingSectorLoc
	for uint64(len(out)) < e.Size {
		if sn == sectorEndOfChain {
			return nil, fmt.Errorf("%w: mini-stream %q ended early (got %d of %d bytes)", ErrBadChain, e.Name, len(out), e.Size)
		}
		if sn >= uint32(len(miniStream)) {
			return nil, fmt.Errorf("%w: mini-sector %d out of range (have %d)", ErrBadChain, sn, len(miniStream))
		}
		out = append(out, miniStream[sn]...)
		if sn >= uint32(len(miniFAT)) {
			return nil, fmt.Errorf("%w: mini-sector %d has no mini-FAT entry", ErrBadChain, sn)
		}
		sn = miniFAT[sn]
	}
	return out[:e.Size], nil
}
