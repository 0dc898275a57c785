package assemble

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// archiveFolder zips dir into a file at zipPath. Entry names are relative to
// the folder's parent, so unzipping reproduces the draft folder itself.
func archiveFolder(dir, zipPath string) error {
	out, err := os.Create(zipPath)
	if err != nil {
		return err
	}
	defer out.Close()

	writer := zip.NewWriter(out)
	base := filepath.Base(dir)

	err = filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		name := base + "/" + strings.ReplaceAll(rel, string(filepath.Separator), "/")
		dst, err := writer.Create(name)
		if err != nil {
			return err
		}
		src, err := os.Open(path)
		if err != nil {
			return err
		}
		defer src.Close()
		_, err = io.Copy(dst, src)
		return err
	})
	if err != nil {
		writer.Close()
		_ = os.Remove(zipPath)
		return fmt.Errorf("walk %s: %w", dir, err)
	}
	if err := writer.Close(); err != nil {
		_ = os.Remove(zipPath)
		return err
	}
	return out.Close()
}
