package ascramp

import (
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// Grid file extensions recognised by ScanDir. A trailing ".gz" is decompressed
// transparently by Load and LoadFS.
const (
	gridExt = ".asc"
	gzExt   = ".gz"
)

// Load reads and decodes the grid file at path.
func Load(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &Error{Kind: KindIO, Path: path, Msg: "open", Err: err}
	}
	defer f.Close()
	return decodeMaybeGzip(f, path, filepath.Ext(path))
}

// LoadFS reads and decodes the grid file name from fsys.
func LoadFS(fsys fs.FS, name string) (*Grid, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, &Error{Kind: KindIO, Path: name, Msg: "open", Err: err}
	}
	defer f.Close()
	return decodeMaybeGzip(f, name, path.Ext(name))
}

// decodeMaybeGzip decodes r, decompressing it first when ext is ".gz".
func decodeMaybeGzip(r io.Reader, name, ext string) (*Grid, error) {
	if !strings.EqualFold(ext, gzExt) {
		return Decode(r, name)
	}
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, &Error{Kind: KindIO, Path: name, Msg: "gzip header", Err: err}
	}
	defer zr.Close()
	return Decode(zr, name)
}

// IsGridFile reports whether name has a grid extension (.asc or .asc.gz).
func IsGridFile(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, gridExt) || strings.HasSuffix(lower, gridExt+gzExt)
}

// ScanDir lists the grid files directly inside dir, sorted by name.
// Subdirectories are not descended into.
func ScanDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &Error{Kind: KindIO, Path: dir, Msg: "scanning data directory", Err: err}
	}
	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() && IsGridFile(e.Name()) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
