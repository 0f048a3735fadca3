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
	"strings"
)

// resolve walks the directory tree to find the entry named by path, a
// sequence of storage names ending in either a storage or stream name.
// Matching is case-insensitive, per common OLE2 reader behavior, using
// strings.EqualFold's simple Unicode case folding; names are not
// NFKC-normalized before comparison. The root storage is resolved by
// the empty path.
func (r *Reader) resolve(path []string) (*DirectoryEntry, error) {
	entry := r.root
	for _, name := range path {
		child, err := findChild(r.entries, entry, name)
		if err != nil {
			return nil, err
		}
		entry = child
	}
	return entry, nil
}

// findChild searches parent's child sibling tree for name, walking the
// left/right sibling links starting at parent's child. A visited set
// guards against a malformed cyclic sibling tree.
func findChild(entries []*DirectoryEntry, parent *DirectoryEntry, name string) (*DirectoryEntry, error) {
	if !parent.HasChild() {
		return nil, fmt.Errorf("%w: %q has no children", ErrDirectoryEntryNotFound, parent.Name)
	}

	visited := make(map[uint32]bool)
	var stack []uint32
	stack = append(stack, parent.ChildID)

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[id] {
			continue
		}
		visited[id] = true

		e := entries[id]
		if e == nil {
			continue
		}
		if strings.EqualFold(e.Name, name) {
			return e, nil
		}
		if e.HasLeftSibling() {
			stack = append(stack, e.LeftSibID)
		}
		if e.HasRightSibling() {
			stack = append(stack, e.RightSibID)
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrDirectoryEntryNotFound, name)
}
