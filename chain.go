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

// readChain walks fat starting at sector start, concatenating whole
// sector payloads until CHAIN_END. It is used to materialize the
// directory stream, the mini-FAT, and the mini-stream, none of which
// know their own length in advance.
//
// A visited-set guards against cyclic chains in malformed files; an
// unbounded walk over a cycle would otherwise never terminate.
func readChain(start uint32, fat []uint32, store *sectorStore) ([]byte, error) {
	var buf []byte
	visited := make(map[uint32]bool)
	sn := start
	for sn != sectorEndOfChain {
		if visited[sn] {
			return nil, fmt.Errorf("%w: cyclic chain revisits sector %d", ErrBadChain, sn)
		}
		visited[sn] = true
		sec, err := store.at(sn)
		if err != nil {
			return nil, err
		}
		buf = append(buf, sec...)
		if sn >= uint32(len(fat)) {
			return nil, fmt.Errorf("%w: sector %d has no FAT entry", ErrBadChain, sn)
		}
		sn = fat[sn]
	}
	return buf, nil
}
