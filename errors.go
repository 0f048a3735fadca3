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

import "errors"

// Sentinel errors. Use errors.Is to test for a particular kind; the
// error returned from a failing call is usually wrapped with additional
// detail via fmt.Errorf's %w verb.
var (
	// ErrWrongMagic is returned when the first 8 bytes of the source
	// aren't the CFB signature.
	ErrWrongMagic = errors.New("cfb: not a compound file (bad signature)")

	// ErrNotEnoughBytes is returned when the source is shorter than the
	// 512-byte header.
	ErrNotEnoughBytes = errors.New("cfb: not enough bytes for header")

	// ErrHeaderField is returned when a header field fails validation.
	ErrHeaderField = errors.New("cfb: invalid header field")

	// ErrUnexpectedEOF is returned when a sector read is truncated.
	ErrUnexpectedEOF = errors.New("cfb: unexpected end of file reading sector")

	// ErrUnimplemented is returned for features this package does not
	// support, currently DIFAT chains beyond the header-inline entries.
	ErrUnimplemented = errors.New("cfb: unimplemented feature")

	// ErrDirectoryEntry is returned when a directory entry violates an
	// MS-CFB invariant.
	ErrDirectoryEntry = errors.New("cfb: invalid directory entry")

	// ErrDirectoryEntryNotFound is returned when a stream path does not
	// resolve to any entry.
	ErrDirectoryEntryNotFound = errors.New("cfb: directory entry not found")

	// ErrUtf16Decode is returned when a directory entry name is not
	// valid UTF-16.
	ErrUtf16Decode = errors.New("cfb: invalid utf-16 in directory entry name")

	// ErrBadChain is returned when a FAT or mini-FAT chain references an
	// out-of-range or cyclic sector, or ends before its stream's size.
	ErrBadChain = errors.New("cfb: malformed sector or directory chain")

	// ErrNoStream is returned by OpenStream when the resolved entry is
	// not a stream object.
	ErrNoStream = errors.New("cfb: not a stream")
)
