package ascramp

// Adversarial input regression tests. Forged headers and oversized input must
// produce errors, never panics or unbounded allocations.

import (
	"errors"
	"io"
	"strings"
	"testing"
)

// TestDecodeHugeDimensions verifies a header declaring an enormous grid is
// rejected before any value storage is allocated.
func TestDecodeHugeDimensions(t *testing.T) {
	tests := []string{
		"ncols 1000000\nnrows 1000000\nxllcorner 0\nyllcorner 0\ncellsize 1\n",
		"ncols 1000001\nnrows 1\nxllcorner 0\nyllcorner 0\ncellsize 1\n",
		"ncols 1e300\nnrows 1\nxllcorner 0\nyllcorner 0\ncellsize 1\n",
		"ncols +Inf\nnrows 1\nxllcorner 0\nyllcorner 0\ncellsize 1\n",
		"ncols NaN\nnrows 1\nxllcorner 0\nyllcorner 0\ncellsize 1\n",
	}
	for _, src := range tests {
		g, err := Decode(strings.NewReader(src), "huge.asc")
		if err == nil || g != nil {
			t.Errorf("Decode(%q): expected header error, got grid=%v err=%v", src, g, err)
			continue
		}
		if !errors.Is(err, ErrHeader) {
			t.Errorf("Decode(%q): error %v is not a header error", src, err)
		}
	}
}

// TestDecodeMaxCellsBoundary checks the product limit is inclusive.
func TestDecodeMaxCellsBoundary(t *testing.T) {
	over := "ncols 16385\nnrows 16384\nxllcorner 0\nyllcorner 0\ncellsize 1\n"
	if _, err := Decode(strings.NewReader(over), "over.asc"); !errors.Is(err, ErrHeader) {
		t.Errorf("16384x16385 grid: got %v, want header error", err)
	}
	// At the limit the header is accepted and the missing data is reported.
	at := "ncols 16384\nnrows 16384\nxllcorner 0\nyllcorner 0\ncellsize 1\n"
	if _, err := Decode(strings.NewReader(at), "at.asc"); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("16384x16384 grid: got %v, want dimension mismatch", err)
	}
}

// TestDecodeExtraValuesNotStored checks that a forged small header followed
// by a long data stream is counted, not buffered.
func TestDecodeExtraValuesNotStored(t *testing.T) {
	const extra = 200000
	header := "ncols 1\nnrows 1\nxllcorner 0\nyllcorner 0\ncellsize 1\nnodata_value -9999\n"
	r := io.MultiReader(strings.NewReader(header), strings.NewReader(strings.Repeat("1 ", extra)+"\n"))
	_, err := Decode(r, "long.asc")
	var de *DimensionError
	if !errors.As(err, &de) {
		t.Fatalf("expected DimensionError, got %v", err)
	}
	if de.Got != extra {
		t.Errorf("Got = %d, want %d", de.Got, extra)
	}
}

// TestDecodeReaderFailure verifies read errors are tagged as IO errors.
func TestDecodeReaderFailure(t *testing.T) {
	boom := errors.New("disk on fire")
	r := io.MultiReader(strings.NewReader("ncols 1\n"), errReader{boom})
	_, err := Decode(r, "fail.asc")
	if !errors.Is(err, ErrIO) || !errors.Is(err, boom) {
		t.Fatalf("expected IO error wrapping cause, got %v", err)
	}
}

type errReader struct{ err error }

func (e errReader) Read([]byte) (int, error) { return 0, e.err }
