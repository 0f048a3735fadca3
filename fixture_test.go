package cfb

import (
	"bytes"
	"encoding/binary"
)

// miniFileBuilder assembles a minimal, valid major-version-3 compound
// file sector by sector, for tests that need to exercise the FAT,
// directory, mini-FAT, and mini-stream machinery without a real Office
// document fixture on disk.
type miniFileBuilder struct {
	sectors [][]byte
}

func newMiniFileBuilder() *miniFileBuilder {
	return &miniFileBuilder{}
}

// addSector appends a zero-filled 512-byte sector and returns its ID.
func (b *miniFileBuilder) addSector() uint32 {
	b.sectors = append(b.sectors, make([]byte, 512))
	return uint32(len(b.sectors) - 1)
}

func (b *miniFileBuilder) sector(id uint32) []byte {
	return b.sectors[id]
}

func putU16(b []byte, off int, v uint16) { binary.LittleEndian.PutUint16(b[off:], v) }
func putU32(b []byte, off int, v uint32) { binary.LittleEndian.PutUint32(b[off:], v) }
func putU64(b []byte, off int, v uint64) { binary.LittleEndian.PutUint64(b[off:], v) }

// putDirEntry writes a 128-byte directory slab at entries[idx*128:].
func putDirEntry(entries []byte, idx int, name string, objType byte, color byte, left, right, child uint32, startSector uint32, size uint64) {
	off := idx * 128
	e := entries[off : off+128]

	units := utf16le(name)
	copy(e[0:64], units)
	putU16(e, 64, uint16(len(units)+2)) // name_len includes the trailing NUL
	e[66] = objType
	e[67] = color
	putU32(e, 68, left)
	putU32(e, 72, right)
	putU32(e, 76, child)
	putU32(e, 116, startSector)
	putU64(e, 120, size)
}

// utf16le encodes an ASCII name as little-endian UTF-16 code units,
// which is sufficient for the fixture names used in these tests.
func utf16le(s string) []byte {
	out := make([]byte, 0, len(s)*2)
	for _, r := range s {
		out = append(out, byte(r), 0)
	}
	return out
}

// buildMiniFile builds a single-sector-FAT file containing one
// top-level stream, "Data", whose contents are given by streamData. A
// streamData shorter than miniStreamCutoff exercises the mini-stream
// path; a longer one exercises the regular FAT chain path.
func buildMiniFile(streamData []byte) []byte {
	b := newMiniFileBuilder()

	const (
		sectorFAT       = 0
		sectorDirectory = 1
		sectorMiniFAT   = 2
		sectorMiniData  = 3 // first mini-stream data sector
	)
	b.addSector() // FAT sector
	b.addSector() // directory sector
	b.addSector() // mini-FAT sector
	dataSector := b.addSector()

	var miniStreamTiles int
	var dataSectors []uint32
	useMiniStream := len(streamData) < miniStreamCutoff

	if useMiniStream {
		// The mini-stream itself is stored as a regular stream owned by
		// the root entry, chained through the main FAT. One 512-byte
		// sector fits 8 mini-sectors (64 bytes each).
		miniStreamTiles = (len(streamData) + miniSectorSize - 1) / miniSectorSize
		need := (miniStreamTiles*miniSectorSize + 511) / 512
		if need == 0 {
			need = 1
		}
		for i := 0; i < need; i++ {
			dataSectors = append(dataSectors, dataSector)
			if i < need-1 {
				dataSector = b.addSector()
			}
		}
	} else {
		need := (len(streamData) + 511) / 512
		dataSectors = append(dataSectors, dataSector)
		for i := 1; i < need; i++ {
			dataSectors = append(dataSectors, b.addSector())
		}
	}

	// Lay out stream bytes across their sectors.
	remaining := streamData
	for _, sid := range dataSectors {
		n := copy(b.sector(sid), remaining)
		remaining = remaining[n:]
	}

	// Main FAT: one sector, 128 entries (512/4).
	fat := b.sector(sectorFAT)
	for i := range fat {
		fat[i] = 0xFF
	}
	putU32(fat, int(sectorFAT)*4, 0xFFFFFFFD)
	putU32(fat, int(sectorDirectory)*4, 0xFFFFFFFE)
	putU32(fat, int(sectorMiniFAT)*4, 0xFFFFFFFE)
	for i, sid := range dataSectors {
		if i == len(dataSectors)-1 {
			putU32(fat, int(sid)*4, 0xFFFFFFFE)
		} else {
			putU32(fat, int(sid)*4, dataSectors[i+1])
		}
	}

	// mini-FAT: chains the mini-stream tiles used by "Data", when the
	// mini-stream path is used.
	miniFAT := b.sector(sectorMiniFAT)
	for i := range miniFAT {
		miniFAT[i] = 0xFF
	}
	for i := 0; i < miniStreamTiles; i++ {
		if i == miniStreamTiles-1 {
			putU32(miniFAT, i*4, 0xFFFFFFFE)
		} else {
			putU32(miniFAT, i*4, uint32(i+1))
		}
	}

	// Directory: root storage (entry 0) with a single child stream "Data"
	// (entry 1).
	dir := b.sector(sectorDirectory)
	rootSize := uint64(0)
	rootStart := sectorEndOfChain
	if useMiniStream {
		rootSize = uint64(miniStreamTiles * miniSectorSize)
		rootStart = dataSectors[0]
	}
	putDirEntry(dir, 0, "Root Entry", 0x05, 0x01, noStream, noStream, 1, rootStart, rootSize)

	dataStart := dataSectors[0] // regular stream: sector id
	if useMiniStream {
		dataStart = 0 // mini-stream: mini-sector index
	}
	putDirEntry(dir, 1, "Data", 0x02, 0x01, noStream, noStream, noStream, dataStart, uint64(len(streamData)))

	return assembleFile(b, 512)
}

// assembleFile prepends a valid 512-byte v3 header to b's sectors and
// concatenates everything into a single byte slice.
func assembleFile(b *miniFileBuilder, sectorSize uint32) []byte {
	header := make([]byte, 512)
	copy(header[0:8], magicBytes[:])
	// class_id left zero
	putU16(header, 24, correctMinorVersion)
	putU16(header, 26, majorVersion3)
	copy(header[28:30], byteOrderMark[:])
	putU16(header, 30, sectorShiftV3)
	putU16(header, 32, miniSectorShift)
	// reserved left zero
	putU32(header, 40, 0) // num_directory_sectors must be 0 for v3
	putU32(header, 44, 1) // num_fat_sectors
	putU32(header, 48, 1) // first_directory_sector
	putU32(header, 52, 0) // transaction_signature
	putU32(header, 56, correctCutoffField)
	putU32(header, 60, 2) // first_minifat_sector
	putU32(header, 64, 1) // num_minifat_sectors
	putU32(header, 68, 0xFFFFFFFE) // first_difat_sector: none
	putU32(header, 72, 0)          // num_difat_sectors

	// InitialDIFAT[0] points at the sole FAT sector.
	putU32(header, 76, 0)
	for i := 1; i < 109; i++ {
		putU32(header, 76+i*4, 0xFFFFFFFF)
	}

	var out bytes.Buffer
	out.Write(header)
	for _, s := range b.sectors {
		out.Write(s)
	}
	return out.Bytes()
}
