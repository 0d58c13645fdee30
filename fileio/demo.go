package fileio

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/marcodamonte/oop-concepts/internal/config"
	"github.com/marcodamonte/oop-concepts/internal/console"
	"github.com/marcodamonte/oop-concepts/internal/faults"
)

// RunFirstChar creates an empty sample file, reads its first character,
// then tries a missing file. The sample is removed afterwards.
func RunFirstChar(con *console.Console, log *slog.Logger, sc config.FileScenario) {
	dir, cleanup, err := workDir(sc)
	if err != nil {
		con.Errorf("Could not create work dir: %v", err)
		return
	}
	defer cleanup()
	existing := filepath.Join(dir, sc.FirstCharFile)
	missing := filepath.Join(dir, sc.MissingFile)

	if err := os.WriteFile(existing, nil, 0o644); err != nil {
		con.Errorf("Could not create test file: %v", err)
	}
	defer removeSample(con, existing)

	r := NewFirstCharReader(log)

	con.Println("── case 1: file exists ──")
	readFirst(con, r, existing)

	con.Println("\n── case 2: file does not exist ──")
	readFirst(con, r, missing)
}

func readFirst(con *console.Console, r *FirstCharReader, path string) {
	ch, err := r.ReadFirstCharacter(path)
	switch {
	case errors.Is(err, faults.ErrFileNotFound):
		con.Errorf("Read failed (file not found): %v", err)
	case errors.Is(err, faults.ErrIO):
		con.Errorf("Read failed (I/O): %v", err)
	case err != nil:
		con.Errorf("An unexpected error occurred: %v", err)
	case ch == -1:
		con.Println("File is empty.")
	default:
		con.Printf("First character: %c\n", rune(ch))
	}
}

// RunLines writes the sample text file, prints it, tries a missing file,
// and removes the sample.
func RunLines(con *console.Console, sc config.FileScenario) {
	dir, cleanup, err := workDir(sc)
	if err != nil {
		con.Errorf("Could not create work dir: %v", err)
		return
	}
	defer cleanup()
	sample := filepath.Join(dir, sc.LinesFile)

	if err := os.WriteFile(sample, []byte(sc.LinesContent), 0o644); err != nil {
		con.Errorf("Could not create sample file: %v", err)
		return
	}
	defer removeSample(con, sample)

	l := NewLineReader(con)
	l.ReadFile(sample)

	con.Println("\nReading a file that does not exist:")
	l.ReadFile(filepath.Join(dir, sc.MissingFile))
}

// workDir returns the directory samples go to. Without a configured WorkDir
// a fresh directory is created under the OS temp dir and cleanup removes it,
// so files that already live in the temp dir are never touched.
func workDir(sc config.FileScenario) (string, func(), error) {
	if sc.WorkDir != "" {
		return sc.WorkDir, func() {}, nil
	}
	dir, err := os.MkdirTemp("", "oop-concepts-*")
	if err != nil {
		return "", nil, err
	}
	return dir, func() { _ = os.RemoveAll(dir) }, nil
}

func removeSample(con *console.Console, path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		con.Errorf("Could not delete sample file: %v", err)
	}
}
