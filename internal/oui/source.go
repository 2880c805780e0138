package oui

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/santools/wwninfo/internal/utils"
)

// DefaultRegistryURL is the canonical location of the IEEE OUI registry
// document.
const DefaultRegistryURL = "https://standards-oui.ieee.org/oui/oui.txt"

var defaultClient = &http.Client{
	Timeout: 30 * time.Second,
}

// Source retrieves the raw OUI registry document.
type Source interface {
	// Fetch retrieves the raw registry text.
	Fetch(ctx context.Context) ([]byte, error)
}

// FileSource reads the registry document from the local filesystem.
type FileSource struct {
	path string
}

// NewFileSource creates a new file source.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Fetch reads the registry document from the filesystem.
func (s *FileSource) Fetch(ctx context.Context) ([]byte, error) {
	data, err := utils.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry file %s: %w", s.path, err)
	}
	return data, nil
}

// HTTPSource downloads the registry document with a single GET request.
// There is no retry or partial-content handling; a failed fetch is final.
type HTTPSource struct {
	url        string
	httpClient utils.HTTPClient
}

// NewHTTPSource creates a new HTTP source.
//
// If no client is provided, a default client with a 30 second timeout is
// used.
func NewHTTPSource(url string, optionalHTTPClient ...utils.HTTPClient) *HTTPSource {
	return &HTTPSource{
		url:        url,
		httpClient: utils.OptionalArg[utils.HTTPClient](optionalHTTPClient, defaultClient),
	}
}

// Fetch downloads the registry document from the HTTP(S) URL.
func (s *HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	data, err := utils.HttpGET(ctx, s.httpClient, s.url)
	if err != nil {
		return nil, fmt.Errorf("failed to download from %s: %w", s.url, err)
	}
	return data, nil
}
