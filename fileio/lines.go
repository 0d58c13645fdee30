package fileio

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/marcodamonte/oop-concepts/internal/console"
)

// LineReader prints files line by line.
type LineReader struct {
	con  *console.Console
	open OpenFunc
}

// NewLineReader returns a LineReader that prints to con and opens files
// with os.Open unless WithLineOpener says otherwise.
func NewLineReader(con *console.Console, opts ...LineOption) *LineReader {
	l := &LineReader{con: con, open: openFile}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LineOption configures a LineReader.
type LineOption func(*LineReader)

// WithLineOpener replaces os.Open.
func WithLineOpener(fn OpenFunc) LineOption {
	return func(l *LineReader) { l.open = fn }
}

// ReadFile prints every line of the file at path. Any failure, a missing
// file included, is reported on the console and not returned. The file is
// closed on every exit path.
func (l *LineReader) ReadFile(path string) {
	if err := l.printLines(path); err != nil {
		l.con.Errorf("Error reading file '%s': %v", path, err)
	}
}

func (l *LineReader) printLines(path string) (err error) {
	rc, err := l.open(path)
	if err != nil {
		return classify("open", path, err)
	}
	defer func() {
		if cerr := rc.Close(); cerr != nil && err == nil {
			err = classify("close", path, cerr)
		}
	}()

	l.con.Printf("Contents of '%s':\n", path)
	return l.scan(path, rc)
}

// scan prints r line by line. Lines have no length limit; a trailing "\r"
// is dropped so CRLF files print like LF files.
func (l *LineReader) scan(path string, r io.Reader) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return classify("read", path, err)
		}
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			l.con.Println(strings.TrimSuffix(line, "\r"))
		}
		if err != nil {
			return nil
		}
	}
}
