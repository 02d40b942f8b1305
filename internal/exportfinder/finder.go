// Package exportfinder provides chat-export directory and file detection.
package exportfinder

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// EnvExportDir is the environment variable name for specifying the export directory.
const EnvExportDir = "CHATLOG_DIR"

// Sentinel errors.
var (
	ErrExportDirNotFound = errors.New("export directory not found")
	ErrNoExportFiles     = errors.New("no export files found")
)

// FindExportDir returns the directory holding chat exports.
//
// Priority:
//  1. explicit (if non-empty)
//  2. CHATLOG_DIR environment variable
//
// Returns ErrExportDirNotFound if no valid directory is found.
// The returned path has symlinks resolved for consistency.
func FindExportDir(explicit string) (string, error) {
	if explicit != "" {
		if resolved := resolveAndValidateExportDir(explicit); resolved != "" {
			return resolved, nil
		}
		return "", fmt.Errorf("%w: specified directory is invalid or contains no export files", ErrExportDirNotFound)
	}

	if envDir := os.Getenv(EnvExportDir); envDir != "" {
		if resolved := resolveAndValidateExportDir(envDir); resolved != "" {
			return resolved, nil
		}
		return "", fmt.Errorf("%w: %s environment variable points to invalid directory", ErrExportDirNotFound, EnvExportDir)
	}

	return "", ErrExportDirNotFound
}

// exportCandidate holds an export file path and its cached modification time.
// This avoids race conditions where files are deleted between stat and sort.
type exportCandidate struct {
	path    string
	modTime int64
}

// FindLatestExport returns the path to the most recently modified
// .txt export in the given directory.
//
// Returns ErrNoExportFiles if no export files are found.
//
// Security: This function caches stat results to avoid TOCTOU race
// conditions where files could be deleted between filtering and sorting.
func FindLatestExport(dir string) (string, error) {
	pattern := filepath.Join(dir, "*.txt")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return "", fmt.Errorf("globbing export files: %w", err)
	}

	if len(matches) == 0 {
		return "", ErrNoExportFiles
	}

	// Stat files once and cache results to avoid race conditions
	candidates := make([]exportCandidate, 0, len(matches))
	for _, m := range matches {
		info, err := os.Lstat(m)
		if err != nil {
			// Skip files that can't be stat'd (deleted, permission issues, etc.)
			continue
		}
		// Also skip non-regular files (directories, symlinks, etc.)
		if !info.Mode().IsRegular() {
			continue
		}
		candidates = append(candidates, exportCandidate{
			path:    m,
			modTime: info.ModTime().UnixNano(),
		})
	}

	if len(candidates) == 0 {
		return "", ErrNoExportFiles
	}

	// Sort by cached modification time (newest first)
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].modTime > candidates[j].modTime
	})

	return candidates[0].path, nil
}

// resolveAndValidateExportDir resolves symlinks and validates the directory.
// Returns the resolved path if valid, empty string otherwise.
func resolveAndValidateExportDir(dir string) string {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return ""
	}

	// Resolve symlinks for path consistency
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return ""
	}

	// Check for export files in resolved path
	pattern := filepath.Join(resolved, "*.txt")
	matches, err := filepath.Glob(pattern)
	if err != nil || len(matches) == 0 {
		return ""
	}

	return resolved
}
