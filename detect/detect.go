// Package detect implements best-effort encryption detection for the
// legacy Office document formats carried inside a compound file:
// Word (WordDocument stream FIB flags), Excel (BIFF FilePass record),
// and stubs for PowerPoint and OOXML-in-CFB wrappers that this package
// does not yet know how to inspect.
//
// detect depends only on a small StreamSource interface rather than on
// any concrete compound-file reader, so that a reader package can
// import detect without detect importing it back.
package detect

import "strings"

// StreamSource is the minimal view of a compound file detect needs:
// the set of stream names present, and the ability to read one by
// path. Reader paths are a single-element slice for every stream this
// package looks at, since Office encryption markers always live in a
// top-level stream.
type StreamSource interface {
	ListStreams() []string
	OpenStream(path []string) ([]byte, error)
}

// Well-known top-level stream names that identify a document's type.
const (
	wordStream       = "WordDocument"
	excelStream      = "Workbook"
	excelStreamOld   = "Book"
	powerPointStream = "PowerPoint Document"
	ooxmlInfoStream  = "EncryptionInfo"
)

// IsEncrypted inspects src's streams and reports whether the document
// appears to be an encrypted Word or Excel file. A file with an
// EncryptionInfo or PowerPoint Document stream is dispatched to a stub
// that always reports false. It
// never errors: a stream that exists but can't be parsed is treated as
// "not encrypted" rather than surfaced as a failure, since detection is
// inherently best-effort across a wide span of document versions.
func IsEncrypted(src StreamSource) bool {
	names := src.ListStreams()

	if hasStream(names, ooxmlInfoStream) {
		return ooxmlEncrypted(src)
	}
	if hasStream(names, wordStream) {
		return wordFIBEncrypted(src)
	}
	if name, ok := hasAnyStream(names, excelStream, excelStreamOld); ok {
		return excelFilePassEncrypted(src, name)
	}
	if hasStream(names, powerPointStream) {
		return powerPointEncrypted(src)
	}
	return false
}

func hasStream(names []string, want string) bool {
	for _, n := range names {
		if strings.EqualFold(n, want) {
			return true
		}
	}
	return false
}

func hasAnyStream(names []string, wants ...string) (string, bool) {
	for _, want := range wants {
		if hasStream(names, want) {
			return want, true
		}
	}
	return "", false
}
