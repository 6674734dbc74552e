package action

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"

	"github.com/harrison/fatfilefinder/internal/filelock"
	"github.com/harrison/fatfilefinder/internal/logger"
	"github.com/harrison/fatfilefinder/internal/walker"
)

// HoldingDirName is the folder created under the system temp directory.
const HoldingDirName = "FatFileFinder"

// HoldingDir returns the default relocation destination.
func HoldingDir() string {
	return filepath.Join(os.TempDir(), HoldingDirName)
}

// Move records one relocated file.
type Move struct {
	From string
	To   string
}

// RelocateResult summarises one Relocate call.
type RelocateResult struct {
	HoldingDir string
	Moved      []Move
	Failed     int
}

// Relocator moves matched files into a holding directory.
type Relocator struct {
	dir string
	log Logger
	// OnMove, when set, is called after each successful move.
	OnMove func(Move)
}

// NewRelocator creates a Relocator targeting dir, or HoldingDir() when dir
// is empty. A nil log discards output.
func NewRelocator(dir string, log Logger) *Relocator {
	if dir == "" {
		dir = HoldingDir()
	}
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Relocator{dir: dir, log: log}
}

// Dir returns the destination directory.
func (r *Relocator) Dir() string {
	return r.dir
}

// Relocate creates the holding directory if needed and moves each file to
// <dir>/<base name>. A file already present under that name is replaced.
// The directory lock is held for the whole batch. If another process holds
// it, nothing is moved and the error matches filelock.ErrBusy; any failure
// to take the lock returns a nil result.
func (r *Relocator) Relocate(files []walker.MatchedFile) (*RelocateResult, error) {
	if err := os.MkdirAll(r.dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create holding directory %s: %w", r.dir, err)
	}

	result := &RelocateResult{
		HoldingDir: r.dir,
		Moved:      make([]Move, 0, len(files)),
	}

	var failures []error
	locked := false
	err := filelock.WithDirLock(r.dir, func() error {
		locked = true
		for _, f := range files {
			dest := filepath.Join(r.dir, filepath.Base(f.Path))

			if err := moveFile(f.Path, dest); err != nil {
				err = fmt.Errorf("failed to move %s: %w", f.Path, err)
				r.log.LogError(err.Error())
				failures = append(failures, err)
				result.Failed++
				continue
			}

			move := Move{From: f.Path, To: dest}
			result.Moved = append(result.Moved, move)
			if r.OnMove != nil {
				r.OnMove(move)
			}
		}
		return nil
	})
	if err != nil && !locked {
		return nil, fmt.Errorf("failed to lock holding directory: %w", err)
	}
	if err != nil {
		r.log.LogError(err.Error())
		failures = append(failures, err)
	}

	return result, errors.Join(failures...)
}

// moveFile renames src to dst, falling back to copy and delete when they are
// on different filesystems.
func moveFile(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	if !errors.Is(err, syscall.EXDEV) {
		return err
	}
	return copyThenRemove(src, dst)
}

func copyThenRemove(src, dst string) error {
	if err := copyFile(src, dst); err != nil {
		os.Remove(dst)
		return fmt.Errorf("cross-device copy: %w", err)
	}
	if err := os.Remove(src); err != nil {
		return fmt.Errorf("remove source after copy: %w", err)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	defer func() {
		_ = out.Close()
	}()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}

	if err := out.Sync(); err != nil {
		return err
	}
	return out.Close()
}
