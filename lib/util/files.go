package util

import (
	"os"
	"path/filepath"
)

// returns true if the path exists and is a directory,
// false if it does not exist or is a file
func IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// returns true if the directory that would contain the given file exists
func ParentDirExists(file string) bool {
	return IsDir(filepath.Dir(file))
}
