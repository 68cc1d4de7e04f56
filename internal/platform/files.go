package platform

import (
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)

// System font directories
const (
	DarwinFontDir  = "/Library/Fonts"
	WindowsFontDir = "C:/Windows/Fonts"
	UnixFontDir    = "/usr/share/fonts"
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// DefaultFontDirectory returns the system-wide font directory for the host OS
func DefaultFontDirectory() string {
	return FontDirectoryFor(runtime.GOOS)
}

// FontDirectoryFor returns the system-wide font directory for goos
func FontDirectoryFor(goos string) string {
	switch goos {
	case OSDarwin:
		return DarwinFontDir
	case OSWindows:
		return WindowsFontDir
	default:
		return UnixFontDir
	}
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	info, err := os.Stat(dirPath)
	if os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dirPath)
	}
	return nil
}

// ClearDirectory removes everything inside dirPath, keeping dirPath itself
func ClearDirectory(dirPath string) error {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return fmt.Errorf("failed to read directory %s: %w", dirPath, err)
	}

	for _, entry := range entries {
		if err := os.RemoveAll(filepath.Join(dirPath, entry.Name())); err != nil {
			return fmt.Errorf("failed to remove %s: %w", entry.Name(), err)
		}
	}
	return nil
}

// HasExtension reports whether name ends in ext, ignoring case
func HasExtension(name, ext string) bool {
	return strings.EqualFold(filepath.Ext(name), ext)
}

// PruneFiles deletes every file under dirPath whose extension is not keepExt
// and then removes directories left empty. It returns the removed file paths.
func PruneFiles(dirPath, keepExt string) ([]string, error) {
	var removed []string
	var dirs []string

	err := filepath.WalkDir(dirPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dirPath {
				dirs = append(dirs, path)
			}
			return nil
		}
		if HasExtension(d.Name(), keepExt) {
			return nil
		}
		if err := os.Remove(path); err != nil {
			return err
		}
		removed = append(removed, path)
		return nil
	})
	if err != nil {
		return removed, fmt.Errorf("failed to prune %s: %w", dirPath, err)
	}

	// Deepest first so parents become empty after their children
	slices.Reverse(dirs)
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return removed, fmt.Errorf("failed to read directory %s: %w", dir, err)
		}
		if len(entries) == 0 {
			if err := os.Remove(dir); err != nil {
				return removed, fmt.Errorf("failed to remove %s: %w", dir, err)
			}
		}
	}

	return removed, nil
}

// ListFiles returns the paths of all regular files under dirPath relative to it, sorted
func ListFiles(dirPath string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dirPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dirPath, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Sort(files)
	return files, nil
}

// OpenFolder opens dirPath in the system file manager
func OpenFolder(dirPath string) error {
	absPath, err := filepath.Abs(dirPath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}
	if info, err := os.Stat(absPath); err != nil {
		return fmt.Errorf("folder does not exist: %v", err)
	} else if !info.IsDir() {
		return fmt.Errorf("not a folder: %s", absPath)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, absPath).Run()
	case OSWindows:
		return exec.Command(ExplorerCommand, absPath).Run()
	case OSLinux:
		return openFolderLinux(absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openFolderLinux tries xdg-open first and falls back to common file managers
func openFolderLinux(dirPath string) error {
	cmd := exec.Command(XDGOpenCommand, dirPath)
	if err := cmd.Run(); err == nil {
		return nil
	}

	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return exec.Command(fm, dirPath).Run()
		}
	}

	return fmt.Errorf("no suitable file manager found")
}
