package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/klauspost/compress/gzip"
	"github.com/tidwall/gjson"
)

const (
	GZIP_EXTENSION = ".gz"
)

var (
	ErrPathNotFound = errors.New("path not found in document")
)

// expandDocumentPatterns expands the glob patterns (** is supported), a pattern matching no file is kept as is
// so that reading it reports the error.
func expandDocumentPatterns(patterns []string) ([]string, error) {
	var paths []string

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			paths = append(paths, pattern)
			continue
		}
		paths = append(paths, matches...)
	}

	return paths, nil
}

// readDocument reads a JSON document, gzip-compressed if its name ends with .gz. If path is not empty
// the returned data is the JSON value at path (gjson syntax).
func readDocument(filePath string, path string) ([]byte, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f

	if strings.HasSuffix(filepath.Base(filePath), GZIP_EXTENSION) {
		gzipReader, err := gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer gzipReader.Close()
		r = gzipReader
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if path == "" {
		return data, nil
	}

	result := gjson.GetBytes(data, path)
	if !result.Exists() {
		return nil, fmt.Errorf("%w: %s", ErrPathNotFound, path)
	}
	return []byte(result.Raw), nil
}
