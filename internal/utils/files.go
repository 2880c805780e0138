package utils

import (
	"fmt"
	"io"
	"os"
)

const (
	// DefaultMaxFileSize is the default maximum file size for [ReadFile] (10 MiB).
	//
	// The IEEE OUI registry document is ~2.5 MiB; the limit leaves headroom
	// for registry growth without allowing unbounded reads.
	DefaultMaxFileSize int64 = 10 * 1024 * 1024
)

// FileExists checks if a file exists and is not a directory.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists checks if a directory exists.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// ReadFile reads the content of a file with a maximum size limit.
//
// Default maximum size is [DefaultMaxFileSize], but can be overridden by
// providing a custom maxSize in bytes.
func ReadFile(filename string, maxSize ...int64) ([]byte, error) {
	max := OptionalArg(maxSize, DefaultMaxFileSize)

	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, max+1))
	if err != nil {
		return nil, err
	}

	if int64(len(data)) > max {
		return nil, fmt.Errorf("file too large: exceeds %d bytes", max)
	}

	return data, nil
}
