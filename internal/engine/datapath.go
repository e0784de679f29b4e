package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// resolveDataPath finds a book file or tablebase directory: as given, next
// to the executable, then the bare name next to the executable.
func resolveDataPath(p string, wantDir bool) (string, error) {
	if p == "" {
		return "", fmt.Errorf("empty data path")
	}

	candidates := make([]string, 0, 3)
	candidates = append(candidates, p)

	if !filepath.IsAbs(p) {
		if exe, err := os.Executable(); err == nil {
			exeDir := filepath.Dir(exe)
			candidates = append(candidates, filepath.Join(exeDir, p))
			candidates = append(candidates, filepath.Join(exeDir, filepath.Base(p)))
		}
	}

	checked := make([]string, 0, len(candidates))
	seen := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		abs, err := filepath.Abs(c)
		if err != nil {
			continue
		}
		if _, ok := seen[abs]; ok {
			continue
		}
		seen[abs] = struct{}{}
		checked = append(checked, abs)
		info, err := os.Stat(abs)
		if err == nil && info.IsDir() == wantDir {
			return abs, nil
		}
	}

	kind := "file"
	if wantDir {
		kind = "directory"
	}
	return "", fmt.Errorf("data %s not found, checked: %s", kind, strings.Join(checked, ", "))
}
