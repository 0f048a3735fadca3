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
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/go-cfb/cfb/detect"
)

// Reader gives random access to the streams and storages of a parsed
// compound file. The zero Reader is not usable; construct one with
// Open. A Reader is immutable after construction and safe for
// concurrent use.
type Reader struct {
	header *Header
	store  *sectorStore

	fat     []uint32
	miniFAT []uint32

	entries    []*DirectoryEntry
	root       *DirectoryEntry
	miniStream [][]byte

	encOnce   sync.Once
	encrypted bool
}

// Open parses rs as a compound file. rs must support seeking back to
// the start; Open reads it in full.
func Open(rs io.ReadSeeker) (*Reader, error) {
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("cfb: seeking to start: %w", err)
	}

	headerBuf := make([]byte, headerLen)
	if _, err := io.ReadFull(rs, headerBuf); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, fmt.Errorf("%w: got fewer than %d bytes", ErrNotEnoughBytes, headerLen)
		}
		return nil, fmt.Errorf("cfb: reading header: %w", err)
	}

	h, err := parseHeader(headerBuf)
	if err != nil {
		return nil, err
	}

	// Sectors are indexed from 0 starting immediately after the header.
	// When SectorSize > headerLen (major version 4's 4096-byte sectors),
	// the remainder of sector 0 is header padding that must be consumed
	// before sector indexing begins. §4.1 requires that padding be all
	// zero; reject anything else rather than silently discarding it.
	if h.SectorSize > headerLen {
		pad := make([]byte, h.SectorSize-headerLen)
		if _, err := io.ReadFull(rs, pad); err != nil {
			return nil, fmt.Errorf("%w: header padding", ErrUnexpectedEOF)
		}
		if !bytes.Equal(pad, make([]byte, len(pad))) {
			return nil, fmt.Errorf("%w: non-zero header padding", ErrHeaderField)
		}
	}

	store, err := newSectorStore(rs, h.SectorSize)
	if err != nil {
		return nil, err
	}

	fat, err := buildFAT(h, store)
	if err != nil {
		return nil, err
	}

	entries, err := buildDirectory(h, fat, store)
	if err != nil {
		return nil, err
	}
	root := entries[0]

	miniFAT, err := buildMiniFAT(h, fat, store)
	if err != nil {
		return nil, err
	}

	miniStream, err := buildMiniStream(fat, root, store)
	if err != nil {
		return nil, err
	}

	return &Reader{
		header:     h,
		store:      store,
		fat:        fat,
		miniFAT:    miniFAT,
		entries:    entries,
		root:       root,
		miniStream: miniStream,
	}, nil
}

// Root returns the root storage entry.
func (r *Reader) Root() *DirectoryEntry {
	return r.root
}

// MajorVersion returns the header's major version, 3 or 4.
func (r *Reader) MajorVersion() uint16 {
	return r.header.MajorVersion
}

// SectorSize returns the header's sector size in bytes, 512 or 4096.
func (r *Reader) SectorSize() uint32 {
	return r.header.SectorSize
}

// ListStreams returns the names of every stream entry in the file,
// sorted in byte-wise ascending order.
func (r *Reader) ListStreams() []string {
	var names []string
	for _, e := range r.entries {
		if e != nil && e.Type == ObjectStream {
			names = append(names, e.Name)
		}
	}
	sort.Strings(names)
	return names
}

// ListStorage returns the names of every storage entry, excluding the
// root, sorted in byte-wise ascending order.
func (r *Reader) ListStorage() []string {
	var names []string
	for _, e := range r.entries {
		if e != nil && e.Type == ObjectStorage {
			names = append(names, e.Name)
		}
	}
	sort.Strings(names)
	return names
}

// OpenStream returns the contents of the stream at path, a sequence of
// storage names ending in a stream name (e.g. []string{"ObjectPool",
// "WordDocument"}).
func (r *Reader) OpenStream(path []string) ([]byte, error) {
	entry, err := r.resolve(path)
	if err != nil {
		return nil, err
	}
	return r.streamBytes(entry)
}

// IsEncrypted reports whether the file is one of the detectable
// encrypted legacy Office formats. The check runs at most once; the
// result is cached.
func (r *Reader) IsEncrypted() bool {
	r.encOnce.Do(func() {
		r.encrypted = detect.IsEncrypted(readerStreamSource{r})
	})
	return r.encrypted
}

// readerStreamSource adapts *Reader to detect.StreamSource without
// giving the detect package a dependency on the cfb package's
// concrete Reader type.
type readerStreamSource struct {
	r *Reader
}

func (s readerStreamSource) ListStreams() []string { return s.r.ListStreams() }

func (s readerStreamSource) OpenStream(path []string) ([]byte, error) {
	return s.r.OpenStream(path)
}
