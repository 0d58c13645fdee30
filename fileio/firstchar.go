// Package fileio reads files two ways: ReadFirstCharacter propagates its
// failures to the caller, ReadFile handles them itself. Both release the
// file on every exit path.
package fileio

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/marcodamonte/oop-concepts/internal/faults"
)

// OpenFunc opens the resource at path for reading.
type OpenFunc func(path string) (io.ReadCloser, error)

func openFile(path string) (io.ReadCloser, error) { return os.Open(path) }

// FirstCharReader reads the first character of a file.
type FirstCharReader struct {
	open OpenFunc
	log  *slog.Logger
}

// ReaderOption configures a FirstCharReader.
type ReaderOption func(*FirstCharReader)

// WithOpener replaces os.Open.
func WithOpener(fn OpenFunc) ReaderOption {
	return func(r *FirstCharReader) { r.open = fn }
}

// NewFirstCharReader returns a FirstCharReader that logs each release to
// log.
func NewFirstCharReader(log *slog.Logger, opts ...ReaderOption) *FirstCharReader {
	r := &FirstCharReader{open: openFile, log: log}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ReadFirstCharacter returns the code point of the first character of the
// file at path, or -1 when the file is empty. The file is decoded as UTF-8;
// an invalid leading byte yields utf8.RuneError (U+FFFD) without an error.
//
// Failures are part of the contract and are returned, not handled:
// faults.KindFileNotFound when the file does not exist, faults.KindIO for any
// other I/O failure. The file is released before returning in every case; a
// failure to release is logged and never replaces the error being returned.
func (r *FirstCharReader) ReadFirstCharacter(path string) (ch int, err error) {
	var rc io.ReadCloser
	defer func() { r.release(path, rc) }()

	rc, err = r.open(path)
	if err != nil {
		rc = nil
		return 0, classify("open", path, err)
	}

	c, _, err := bufio.NewReader(rc).ReadRune()
	if errors.Is(err, io.EOF) {
		return -1, nil
	}
	if err != nil {
		return 0, classify("read", path, err)
	}
	return int(c), nil
}

// release closes rc, if anything was opened. Exactly one record is logged
// per call.
func (r *FirstCharReader) release(path string, rc io.ReadCloser) {
	if rc == nil {
		r.log.Info("fileio.release", "path", path, "opened", false)
		return
	}
	if err := rc.Close(); err != nil {
		r.log.Error("fileio.release", "path", path, "opened", true, "err", err)
		return
	}
	r.log.Info("fileio.release", "path", path, "opened", true)
}

func classify(op, path string, err error) error {
	kind := faults.KindIO
	if errors.Is(err, fs.ErrNotExist) {
		kind = faults.KindFileNotFound
	}
	return &faults.Error{Op: op, Kind: kind, Path: path, Err: err}
}
