package detect

import "encoding/binary"

// wIdent is the expected signature of a Word FIB (FileInformationBlock).
const wIdent = 0xA5EC

// wordFIBEncrypted reads the first 32 bytes of the WordDocument stream
// (the FibBase) and checks the fEncrypted bit: bit 8 of the first
// flags word at byte offset 10 (bit 0 of byte 11).
func wordFIBEncrypted(src StreamSource) bool {
	data, err := src.OpenStream([]string{wordStream})
	if err != nil || len(data) < 32 {
		return false
	}

	if binary.LittleEndian.Uint16(data[0:2]) != wIdent {
		return false
	}

	firstFlags := binary.LittleEndian.Uint16(data[10:12])
	const fEncrypted = 1 << 8
	return firstFlags&fEncrypted != 0
}
