package utils

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
)

// Windows reserved names
var windowsReserved = map[string]bool{
	"CON": true, "PRN": true, "AUX": true, "NUL": true,
	"COM1": true, "COM2": true, "COM3": true, "COM4": true,
	"COM5": true, "COM6": true, "COM7": true, "COM8": true, "COM9": true,
	"LPT1": true, "LPT2": true, "LPT3": true, "LPT4": true,
	"LPT5": true, "LPT6": true, "LPT7": true, "LPT8": true, "LPT9": true,
}

// invalidCharsRegex matches invalid filename characters
var invalidCharsRegex = regexp.MustCompile(`[<>:"|?*\\/]`)

// IsValidFilename checks if a name can be used as a single path segment
func IsValidFilename(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}

	if invalidCharsRegex.MatchString(name) {
		return false
	}

	upper := strings.ToUpper(name)
	baseName := strings.TrimSuffix(upper, filepath.Ext(upper))
	if windowsReserved[baseName] {
		return false
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return false
		}
	}

	return true
}

// ExpandPath expands ~ to the user's home directory
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return home
	}
	return path
}

// PathExists reports whether anything exists at path
func PathExists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// RemoveQuietly removes path and everything below it, ignoring every error.
// Used for best-effort cleanup that must never mask the status being reported.
func RemoveQuietly(path string) {
	if path == "" {
		return
	}
	_ = os.RemoveAll(path)
}

// RemoveFile removes a single file and treats an absent file as success
func RemoveFile(path string) error {
	err := os.Remove(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// WithinDir reports whether target is root itself or lies below it.
// Both paths are cleaned first; no symlinks are resolved.
func WithinDir(root, target string) bool {
	root = filepath.Clean(root)
	target = filepath.Clean(target)
	if root == target {
		return true
	}
	rel, err := filepath.Rel(root, target)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// DisplayPath shortens an absolute path under cwd to "./rel" for user output
func DisplayPath(path, cwd string) string {
	if cwd == "" {
		return path
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	base, err := filepath.Abs(cwd)
	if err != nil {
		return path
	}
	if abs == base {
		return "."
	}
	if !WithinDir(base, abs) {
		return abs
	}
	rel, err := filepath.Rel(base, abs)
	if err != nil {
		return abs
	}
	return "." + string(filepath.Separator) + rel
}
