// Package testdata locates data files for tests and generators: test vectors
// in sub-folder vectors, and UCD files (fetched by download.go) in ucd.
package testdata

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"runtime"
)

// UCDReader returns reader for the given ucd file.
func UCDReader(file string) (io.Reader, error) {
	data, err := os.ReadFile(UCDPath(file))
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(data), nil
}

// UCDPath returns path for the given ucd file.
func UCDPath(file string) string {
	return filepath.Join(pkgDir(), "ucd", file)
}

// VectorPath returns path for the given test vector file.
func VectorPath(file string) string {
	return filepath.Join(pkgDir(), "vectors", file)
}

func pkgDir() string {
	_, pkgdir, _, ok := runtime.Caller(0)
	if !ok {
		panic("no debug info")
	}
	return filepath.Dir(pkgdir)
}
