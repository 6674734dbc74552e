package walker

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// Criteria is the immutable filter driving one scan.
// Build it with NewCriteria; the zero value matches every file under "".
type Criteria struct {
	root       string
	minSize    int64
	extensions map[string]struct{}
	extList    []string
	pattern    *regexp.Regexp
}

// NewCriteria validates and freezes the scan configuration.
// extensions are normalized with NormalizeExtensionList. An empty pattern
// matches every name; otherwise it must compile as a Go regular expression.
func NewCriteria(root string, minSize int64, extensions []string, pattern string) (*Criteria, error) {
	if root == "" {
		return nil, fmt.Errorf("root directory must not be empty")
	}
	if minSize < 0 {
		return nil, fmt.Errorf("minimum size must be >= 0, got %d", minSize)
	}

	c := &Criteria{
		root:       root,
		minSize:    minSize,
		extensions: make(map[string]struct{}),
	}

	for _, ext := range NormalizeExtensionList(extensions) {
		c.extensions[ext] = struct{}{}
		c.extList = append(c.extList, ext)
	}

	if pattern != "" {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern: %w", err)
		}
		c.pattern = re
	}

	return c, nil
}

// Root returns the directory the scan starts from.
func (c *Criteria) Root() string { return c.root }

// MinSize returns the exclusive lower bound on file length in bytes.
func (c *Criteria) MinSize() int64 { return c.minSize }

// Extensions returns a copy of the normalized allow-list in input order.
func (c *Criteria) Extensions() []string {
	out := make([]string, len(c.extList))
	copy(out, c.extList)
	return out
}

// Pattern returns the filename regex source, or "" when no pattern is set.
func (c *Criteria) Pattern() string {
	if c.pattern == nil {
		return ""
	}
	return c.pattern.String()
}

// Matches reports whether a file with the given base name and length passes
// every active filter. The size bound is strict: a file of exactly MinSize
// bytes does not match.
func (c *Criteria) Matches(name string, size int64) bool {
	if c.pattern != nil && !c.pattern.MatchString(name) {
		return false
	}
	if size <= c.minSize {
		return false
	}
	if len(c.extensions) > 0 {
		if _, ok := c.extensions[filepath.Ext(name)]; !ok {
			return false
		}
	}
	return true
}

// NormalizeExtensions splits a comma-separated list and normalizes it.
// A blank string yields an empty list (no extension filtering).
func NormalizeExtensions(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	return NormalizeExtensionList(strings.Split(csv, ","))
}

// NormalizeExtensionList trims each entry, drops blanks and duplicates, and
// ensures a leading dot. Case is preserved: ".TXT" and ".txt" stay distinct.
func NormalizeExtensionList(exts []string) []string {
	var out []string
	seen := make(map[string]bool)

	for _, ext := range exts {
		ext = strings.TrimSpace(ext)
		if ext == "" || ext == "." {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if seen[ext] {
			continue
		}
		seen[ext] = true
		out = append(out, ext)
	}

	return out
}
