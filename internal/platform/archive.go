package platform

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zip"
)

// ErrUnsafePath is returned for archive entries that would land outside the
// destination directory
var ErrUnsafePath = errors.New("archive entry escapes destination")

// ExtractZip unpacks every entry of the archive at archivePath into destDir
// and returns the extracted file paths
func ExtractZip(archivePath, destDir string) ([]string, error) {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}
	defer r.Close()

	root, err := filepath.Abs(destDir)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	var extracted []string
	for _, f := range r.File {
		target, err := entryPath(root, f.Name)
		if err != nil {
			return extracted, err
		}

		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, DefaultDirPermissions); err != nil {
				return extracted, err
			}
			continue
		}

		if err := extractFile(f, target); err != nil {
			return extracted, fmt.Errorf("failed to extract %s: %w", f.Name, err)
		}
		extracted = append(extracted, target)
	}

	return extracted, nil
}

// entryPath resolves an archive entry name below root
func entryPath(root, name string) (string, error) {
	target := filepath.Join(root, filepath.FromSlash(name))
	if target != root && !strings.HasPrefix(target, root+string(os.PathSeparator)) {
		return "", fmt.Errorf("%w: %s", ErrUnsafePath, name)
	}
	return target, nil
}

func extractFile(f *zip.File, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), DefaultDirPermissions); err != nil {
		return err
	}

	src, err := f.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, DefaultFilePermissions)
	if err != nil {
		return err
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return err
	}
	return dst.Close()
}
