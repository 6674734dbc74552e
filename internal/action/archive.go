// Package action implements what happens to matched files after a scan:
// packing them into a zip archive or moving them into the holding directory.
//
// Both actions work through their input list in order. A failure on one file
// is logged and the next file is still attempted; the returned error joins
// every per-file failure. Nothing is rolled back.
package action

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/flate"

	"github.com/harrison/fatfilefinder/internal/logger"
	"github.com/harrison/fatfilefinder/internal/walker"
)

// ErrNotFinalised marks an archive whose central directory could not be
// written. Such a file is not a readable zip.
var ErrNotFinalised = errors.New("archive not finalised")

// Logger receives per-file failures.
type Logger interface {
	LogError(message string)
}

// ArchiveResult summarises one Archive call.
type ArchiveResult struct {
	Path    string
	Entries []string
	Failed  int
}

// Archiver writes matched files into a single zip container.
type Archiver struct {
	log Logger
	// Progress, when set, is called after each input file with the number
	// processed so far and the total.
	Progress func(done, total int)

	create func(path string) (io.WriteCloser, error)
}

// NewArchiver creates an Archiver reporting to log. A nil log discards output.
func NewArchiver(log Logger) *Archiver {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Archiver{log: log, create: createFile}
}

func createFile(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// Archive creates outputPath and adds one entry per file, named by the file's
// base name, compressed with Deflate at best compression. Files with equal
// base names produce duplicate entry names.
//
// Failure to create the archive returns a nil result. Every other failure,
// per file or while finalising, is logged and included in the returned
// error; a finalisation failure also matches ErrNotFinalised. A partially
// written file may remain on disk.
func (a *Archiver) Archive(files []walker.MatchedFile, outputPath string) (*ArchiveResult, error) {
	out, err := a.create(outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create archive %s: %w", outputPath, err)
	}

	zw := zip.NewWriter(out)
	zw.RegisterCompressor(zip.Deflate, func(w io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(w, flate.BestCompression)
	})

	result := &ArchiveResult{
		Path:    outputPath,
		Entries: make([]string, 0, len(files)),
	}

	var failures []error
	for i, f := range files {
		if err := addEntry(zw, f.Path); err != nil {
			err = fmt.Errorf("failed to archive %s: %w", f.Path, err)
			a.log.LogError(err.Error())
			failures = append(failures, err)
			result.Failed++
		} else {
			result.Entries = append(result.Entries, filepath.Base(f.Path))
		}

		if a.Progress != nil {
			a.Progress(i+1, len(files))
		}
	}

	if err := zw.Close(); err != nil {
		out.Close()
		failures = append(failures, a.finaliseError(outputPath, err))
	} else if err := out.Close(); err != nil {
		failures = append(failures, a.finaliseError(outputPath, err))
	}

	return result, errors.Join(failures...)
}

func (a *Archiver) finaliseError(outputPath string, cause error) error {
	err := fmt.Errorf("%w: %s: %w", ErrNotFinalised, outputPath, cause)
	a.log.LogError(err.Error())
	return err
}

// addEntry streams one file into the archive under its base name.
func addEntry(zw *zip.Writer, path string) error {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	header.Name = filepath.Base(path)
	header.Method = zip.Deflate

	w, err := zw.CreateHeader(header)
	if err != nil {
		return err
	}

	_, err = io.Copy(w, in)
	return err
}
