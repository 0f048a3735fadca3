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

// buildMiniStream materializes the root entry's stream as 64-byte
// tiles, which back any stream smaller than miniStreamCutoff. Returns
// nil if the root entry has no starting sector.
func buildMiniStream(fat []uint32, root *DirectoryEntry, store *sectorStore) ([][]byte, error) {
	if root.StartingSectorLoc == sectorEndOfChain {
		return nil, nil
	}

	data, err := readChain(root.StartingSectorLoc, fat, store)
	if err != nil {
		return nil, err
	}
	if uint64(len(data)) < root.Size {
		return nil, fmt.Errorf("%w: mini-stream (%d bytes) shorter than root stream_size (%d)", ErrDirectoryEntry, len(data), root.Size)
	}
	data = data[:root.Size] // root.Size is a multiple of 64 per the RootStorage invariant

	n := len(data) / miniSectorSize
	tiles := make([][]byte, n)
	for i := 0; i < n; i++ {
		tiles[i] = data[i*miniSectorSize : (i+1)*miniSectorSize]
	}
	return tiles, nil
}
