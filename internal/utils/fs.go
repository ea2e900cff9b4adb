package utils

import (
	"os"
	"path/filepath"
)

// ConfigSearchPaths lists where a config file called name is looked for,
// most specific first.
func ConfigSearchPaths(name string) []string {
	searchPaths := []string{name}

	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		searchPaths = append(searchPaths, filepath.Join(dir, "stardrag", name))
	} else if home, err := os.UserHomeDir(); err == nil {
		searchPaths = append(searchPaths, filepath.Join(home, ".config", "stardrag", name))
	}

	return searchPaths
}

// FindConfigFile returns the first existing search path for name, or ""
// when there is none.
func FindConfigFile(name string) string {
	for _, p := range ConfigSearchPaths(name) {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}
