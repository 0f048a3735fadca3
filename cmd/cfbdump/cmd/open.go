package cmd

import (
	"fmt"
	"os"

	"github.com/go-cfb/cfb"
)

// openReader opens path and parses it as a compound file. The caller
// owns the returned file handle and must close it.
func openReader(path string) (*cfb.Reader, *os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}

	r, err := cfb.Open(f)
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return r, f, nil
}
