package fontinfo

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"seehuhn.de/go/sfnt"

	"github.com/ytget/font-sync/internal/platform"
)

// FontExt is the extension of files Inspect looks at
const FontExt = ".ttf"

// Entry describes one font file found below a directory
type Entry struct {
	Path      string // slash separated, relative to the inspected directory
	Family    string
	Subfamily string
	Weight    int
	Italic    bool
	Err       error // set when the file could not be parsed
}

// Name returns "Family Subfamily", or the path when the file was unreadable
func (e Entry) Name() string {
	if e.Err != nil {
		return e.Path
	}
	return e.Family + " " + e.Subfamily
}

// Inspect walks dir and parses every .ttf file below it. Files that fail to
// parse are reported through Entry.Err; only a failure to walk dir itself is
// returned as an error. Entries are sorted by path.
func Inspect(dir string) ([]Entry, error) {
	var entries []Entry
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !platform.HasExtension(path, FontExt) {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		entry := ReadFile(path)
		entry.Path = filepath.ToSlash(rel)
		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to inspect %s: %w", dir, err)
	}

	slices.SortFunc(entries, func(a, b Entry) int {
		return strings.Compare(a.Path, b.Path)
	})
	return entries, nil
}

// ReadFile parses a single font file
func ReadFile(path string) Entry {
	entry := Entry{Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		entry.Err = err
		return entry
	}

	font, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		entry.Err = fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		return entry
	}

	entry.Family = font.FamilyName
	entry.Subfamily = font.Subfamily()
	entry.Weight = int(font.Weight)
	entry.Italic = font.IsItalic
	return entry
}

// Families returns the distinct family names among readable entries, sorted
func Families(entries []Entry) []string {
	var names []string
	for _, e := range entries {
		if e.Err == nil && e.Family != "" {
			names = append(names, e.Family)
		}
	}
	slices.Sort(names)
	return slices.Compact(names)
}
