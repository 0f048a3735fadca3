package detect

import "encoding/binary"

// biffFilePassRecord is the BIFF record number for the FilePass record,
// which signals that the workbook stream is encrypted.
const biffFilePassRecord = 0x2F // 47

// biffRecord is one (num, size, data) triple from a BIFF stream.
type biffRecord struct {
	num  uint16
	data []byte
}

// biffRecords walks a BIFF stream's flat sequence of
// [num uint16][size uint16][data [size]byte] records.
func biffRecords(stream []byte) []biffRecord {
	var out []biffRecord
	pos := 0
	for pos+4 <= len(stream) {
		num := binary.LittleEndian.Uint16(stream[pos : pos+2])
		size := binary.LittleEndian.Uint16(stream[pos+2 : pos+4])
		start := pos + 4
		end := start + int(size)
		if end > len(stream) {
			break
		}
		out = append(out, biffRecord{num: num, data: stream[start:end]})
		pos = end
	}
	return out
}

// excelFilePassEncrypted scans the workbook stream for a FilePass
// record. Its first two bytes distinguish the obfuscation scheme: 01 00
// signals RC4 encryption, anything else (including absence of the
// record) is treated as not encrypted. XOR obfuscation (00 00) is a
// real but much weaker scheme this package doesn't treat as encrypted.
func excelFilePassEncrypted(src StreamSource, streamName string) bool {
	data, err := src.OpenStream([]string{streamName})
	if err != nil {
		return false
	}

	for _, rec := range biffRecords(data) {
		if rec.num != biffFilePassRecord {
			continue
		}
		if len(rec.data) < 2 {
			return false
		}
		return rec.data[0] == 0x01 && rec.data[1] == 0x00
	}
	return false
}
