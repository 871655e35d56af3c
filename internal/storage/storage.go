// Package storage manages the flat data directory the web UI writes scan
// outputs into. Filenames are prefix_timestamp_shortid.ext so concurrent
// requests never collide and listings sort chronologically.
package storage

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileInfo describes one stored file for the /api/files listing.
type FileInfo struct {
	Filename string    `json:"filename"`
	Size     int64     `json:"size"`
	Modified time.Time `json:"modified"`
}

// Dir is a managed flat directory of output files.
type Dir struct {
	path string
}

// Open ensures the directory exists and returns it.
func Open(path string) (*Dir, error) {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return &Dir{path: path}, nil
}

// Path returns the directory's filesystem path.
func (d *Dir) Path() string {
	return d.path
}

// NewFilename builds a unique "prefix_20060102_150405_8hex.ext" name.
func (d *Dir) NewFilename(prefix, ext string) string {
	b := make([]byte, 4)
	rand.Read(b)
	return fmt.Sprintf("%s_%s_%s.%s",
		prefix,
		time.Now().Format("20060102_150405"),
		hex.EncodeToString(b),
		strings.TrimPrefix(ext, "."))
}

// Save writes data under a fresh unique name and returns the filename.
func (d *Dir) Save(prefix, ext string, data []byte) (string, error) {
	name := d.NewFilename(prefix, ext)
	if err := os.WriteFile(filepath.Join(d.path, name), data, 0o644); err != nil {
		return "", err
	}
	return name, nil
}

// SaveLines writes one string per line under a fresh unique name.
func (d *Dir) SaveLines(prefix string, lines []string) (string, error) {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return d.Save(prefix, "txt", []byte(b.String()))
}

// List returns the regular files in the directory.
func (d *Dir) List() ([]FileInfo, error) {
	entries, err := os.ReadDir(d.path)
	if err != nil {
		return nil, err
	}
	files := []FileInfo{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, FileInfo{
			Filename: entry.Name(),
			Size:     info.Size(),
			Modified: info.ModTime(),
		})
	}
	return files, nil
}

// Clear deletes every regular file and returns the deleted names.
func (d *Dir) Clear() ([]string, error) {
	entries, err := os.ReadDir(d.path)
	if err != nil {
		return nil, err
	}
	deleted := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(d.path, entry.Name())); err != nil {
			return deleted, err
		}
		deleted = append(deleted, entry.Name())
	}
	return deleted, nil
}
