// Package csvfile streams dataset CSV files line by line.
//
// Lines come back raw: field splitting stays in core/record so the loose
// quote dialect lives in exactly one place, and headers are never
// interpreted here; callers discard the first line when their format
// carries one. A 4MB scan cap keeps a pathological line from aborting a
// whole run.
package csvfile

import (
	"bufio"
	"io"
	"os"
	"unicode/utf8"

	perr "vibecheck/internal/platform/errors"
	"vibecheck/internal/platform/logger"
)

const (
	maxScanTokenSize = 4 * 1024 * 1024
	sampleRawMax     = 512 // max bytes of a raw line to log for the sample
)

// Reader streams raw lines from a dataset file
type Reader struct {
	rc      io.ReadCloser
	sc      *bufio.Scanner
	err     error
	lines   int
	bytes   int64
	sampled bool // one sample raw line logged per file
}

// Open opens the file at path for line streaming
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, perr.IOf("csvfile: open %s: %v", path, err)
	}
	return NewReader(f), nil
}

// NewReader streams lines from rc, growing the scan buffer up to the cap
func NewReader(rc io.ReadCloser) *Reader {
	sc := bufio.NewScanner(rc)
	sc.Buffer(make([]byte, 64*1024), maxScanTokenSize)
	return &Reader{rc: rc, sc: sc}
}

// Next reads the next line with its terminator stripped. Errors are
// sticky; a drained file keeps answering io.EOF.
func (rd *Reader) Next() (string, error) {
	if rd.err != nil {
		return "", rd.err
	}
	if !rd.sc.Scan() {
		rd.err = rd.sc.Err()
		if rd.err == nil {
			rd.err = io.EOF
		}
		return "", rd.err
	}
	line := rd.sc.Text()
	rd.lines++
	rd.bytes += int64(len(line)) + 1 // terminator included
	rd.sampleOnce(line)
	return line, nil
}

// sampleOnce logs the first line of the file at debug, clipped
func (rd *Reader) sampleOnce(line string) {
	if rd.sampled {
		return
	}
	rd.sampled = true
	logger.Named("csvfile").Debug().
		Int("line_bytes", len(line)).
		Str("sample_raw", clip([]byte(line), sampleRawMax)).
		Msg("sample raw line")
}

// Close closes the source
func (rd *Reader) Close() error {
	if rd.rc == nil {
		return nil
	}
	return rd.rc.Close()
}

// Stats reports lines read and bytes consumed so far, terminators included
func (rd *Reader) Stats() (lines int, bytes int64) {
	return rd.lines, rd.bytes
}

// clip returns at most max bytes of b as a string, cutting back to a
// rune boundary and marking the cut with an ellipsis
func clip(b []byte, max int) string {
	if max <= 0 || len(b) <= max {
		return string(b)
	}
	i := max
	for i > 0 && !utf8.RuneStart(b[i]) {
		i--
	}
	if i == 0 {
		i = max
	}
	return string(b[:i]) + "..."
}
