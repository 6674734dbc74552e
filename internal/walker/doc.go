// Package walker finds files that exceed a size threshold under a directory
// tree, optionally narrowed by extension and filename pattern.
//
// # Criteria
//
// A Criteria is built once from user input and never changes:
//   - Root: directory the scan starts from
//   - MinSize: exclusive lower bound in bytes (a file of exactly MinSize is skipped)
//   - Extensions: allow-list such as ".log", ".zip" (empty = any extension)
//   - Pattern: Go regular expression tested against the base name (empty = any name)
//
// Extension matching is case-sensitive. "txt" and ".txt" normalize to the same
// entry, but ".TXT" stays distinct.
//
// # Traversal
//
// The walk is depth-first and single-threaded. Files directly inside a
// directory are tested before any subdirectory is entered, so the output
// order is stable for a given listing:
//
//	criteria, err := walker.NewCriteria("/var/log", 10*sizespec.MB, []string{"log"}, "")
//	if err != nil {
//	    return err
//	}
//	for _, m := range walker.FindAll(criteria, log) {
//	    fmt.Printf("%s - %d bytes\n", m.Path, m.Size)
//	}
//
// FindFirst stops at the first match instead of collecting all of them.
//
// # Error Tolerance
//
// Permission and I/O errors on individual entries are reported through the
// Logger and the walk continues with the remaining siblings. Symbolic links
// are followed; every directory's resolved path is remembered so a link
// pointing back up the tree is visited only once.
package walker
