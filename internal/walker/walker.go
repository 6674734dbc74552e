package walker

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/harrison/fatfilefinder/internal/logger"
)

// Mode selects whether a scan collects every match or stops at the first.
type Mode int

const (
	// ModeAll collects every matching file.
	ModeAll Mode = iota
	// ModeFirst returns as soon as one matching file is found.
	ModeFirst
)

// String returns a readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeAll:
		return "all"
	case ModeFirst:
		return "first"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// MatchedFile is a file that satisfied the criteria when it was discovered.
// Size is the length observed at discovery and is not re-read later.
type MatchedFile struct {
	Path string
	Size int64
}

// Logger receives traversal diagnostics. Errors are non-fatal: the walk
// continues after every LogError call.
type Logger interface {
	LogDebug(message string)
	LogError(message string)
}

// FindAll returns every file under the criteria root that matches.
func FindAll(c *Criteria, log Logger) []MatchedFile {
	return Find(c, ModeAll, log)
}

// FindFirst returns the first matching file in traversal order.
func FindFirst(c *Criteria, log Logger) (MatchedFile, bool) {
	matches := Find(c, ModeFirst, log)
	if len(matches) == 0 {
		return MatchedFile{}, false
	}
	return matches[0], true
}

// Find walks the tree rooted at c.Root() depth-first. The files directly
// inside a directory are tested before any of its subdirectories is entered;
// entries are visited in the order the directory listing reports them.
//
// Errors listing a directory or reading an entry are reported to log and the
// walk carries on with the remaining siblings. A root that cannot be read
// yields no matches. Directories reached twice through symbolic links are
// skipped, so link cycles terminate.
func Find(c *Criteria, mode Mode, log Logger) []MatchedFile {
	return newWalk(c, mode, log, os.ReadDir).run()
}

type walk struct {
	criteria *Criteria
	mode     Mode
	log      Logger
	readDir  func(string) ([]fs.DirEntry, error)
	visited  map[string]bool
	matches  []MatchedFile
}

func newWalk(c *Criteria, mode Mode, log Logger, readDir func(string) ([]fs.DirEntry, error)) *walk {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &walk{
		criteria: c,
		mode:     mode,
		log:      log,
		readDir:  readDir,
		visited:  make(map[string]bool),
		matches:  make([]MatchedFile, 0),
	}
}

func (w *walk) run() []MatchedFile {
	root, err := filepath.Abs(w.criteria.Root())
	if err != nil {
		w.log.LogError(fmt.Sprintf("failed to resolve root %s: %v", w.criteria.Root(), err))
		return w.matches
	}

	info, err := os.Stat(root)
	if err != nil {
		w.log.LogError(fmt.Sprintf("failed to access directory %s: %v", root, err))
		return w.matches
	}
	if !info.IsDir() {
		w.log.LogError(fmt.Sprintf("path is not a directory: %s", root))
		return w.matches
	}

	w.dir(root)
	return w.matches
}

// dir scans one directory and recurses. It returns true when the walk
// should stop (first-match mode found something).
func (w *walk) dir(path string) bool {
	canonical, err := filepath.EvalSymlinks(path)
	if err != nil {
		w.log.LogError(fmt.Sprintf("failed to resolve directory %s: %v", path, err))
		return false
	}
	if w.visited[canonical] {
		w.log.LogDebug(fmt.Sprintf("skipping already visited directory %s (%s)", path, canonical))
		return false
	}
	w.visited[canonical] = true

	entries, err := w.readDir(path)
	if err != nil {
		// os.ReadDir may return the entries it read before failing
		w.log.LogError(fmt.Sprintf("failed to list directory %s: %v", path, err))
	}

	var subdirs []string
	for _, entry := range entries {
		full := filepath.Join(path, entry.Name())

		info, err := statEntry(full, entry)
		if err != nil {
			w.log.LogError(fmt.Sprintf("failed to read %s: %v", full, err))
			continue
		}

		if info.IsDir() {
			subdirs = append(subdirs, full)
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}

		if w.criteria.Matches(entry.Name(), info.Size()) {
			w.matches = append(w.matches, MatchedFile{Path: full, Size: info.Size()})
			if w.mode == ModeFirst {
				return true
			}
		}
	}

	for _, sub := range subdirs {
		if w.dir(sub) {
			return true
		}
	}

	return false
}

// statEntry follows symbolic links so a link to a file is sized by its
// target and a link to a directory is traversed.
func statEntry(path string, entry fs.DirEntry) (fs.FileInfo, error) {
	if entry.Type()&fs.ModeSymlink != 0 {
		return os.Stat(path)
	}
	return entry.Info()
}
