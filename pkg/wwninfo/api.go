// Package wwninfo is the public API for decoding World Wide Names and
// resolving their embedded OUI to a vendor name.
//
// Decoding is pure and needs no setup. Vendor resolution is backed by the
// IEEE OUI registry document, loaded once per process from a local cache
// with a single best-effort network fallback; see [Vendor].
package wwninfo

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/santools/wwninfo/internal/oui"
	"github.com/santools/wwninfo/internal/wwn"
)

// Decoder surface, re-exported from the internal implementation.
type (
	WWN = wwn.WWN
	NAA = wwn.NAA
)

const (
	IEEE               = wwn.IEEE
	IEEEExtended       = wwn.IEEEExtended
	Registered         = wwn.Registered
	RegisteredExtended = wwn.RegisteredExtended
)

var (
	ErrInvalidFormat  = wwn.ErrInvalidFormat
	ErrUnsupportedNAA = wwn.ErrUnsupportedNAA
)

// HTTPClient is the minimal HTTP client surface used for the registry
// fetch, satisfied by [*http.Client].
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

var (
	mu         sync.RWMutex
	httpClient HTTPClient = http.DefaultClient
)

// HttpClient returns the current HTTP client used for registry fetches.
func HttpClient() HTTPClient {
	mu.RLock()
	defer mu.RUnlock()
	return httpClient
}

// SetHttpClient sets a custom HTTP client for registry fetches.
//
// It only affects registries that have not loaded yet; call it before the
// first [Vendor] resolution.
func SetHttpClient(client HTTPClient) {
	mu.Lock()
	defer mu.Unlock()
	httpClient = client
}

// Decode normalizes, validates, and decomposes a WWN string.
//
// Example:
//
//	w, err := wwninfo.Decode("50:06:01:60:08:60:2c:04")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(w.String()) // "[5][06:01:60][08:60:2c:04]"
func Decode(s string) (*WWN, error) {
	return wwn.Parse(s)
}

// Normalize strips colon separators and lowercases a WWN string.
func Normalize(s string) string {
	return wwn.Normalize(s)
}

// IsValid reports whether s normalizes to a 16 or 32 digit hex string.
func IsValid(s string) bool {
	return wwn.IsValid(s)
}

// NiceWWN decodes s and returns its bracketed human-readable form.
func NiceWWN(s string) (string, error) {
	w, err := wwn.Parse(s)
	if err != nil {
		return "", err
	}
	return w.String(), nil
}

// ResolveConfig configures vendor resolution.
type ResolveConfig struct {
	// RegistryURL is the location of the IEEE OUI registry document.
	//
	// Optional. If empty, the canonical IEEE URL is used.
	RegistryURL string

	// CachePath is the directory holding the cached registry document.
	//
	// Optional. If empty, $HOME/.wwninfo is used.
	CachePath string

	// HTTPClient is the HTTP client used for the registry fetch.
	//
	// Optional. If nil, the package-wide client is used (see [SetHttpClient]).
	HTTPClient HTTPClient

	// DisableLocalCache skips reading and writing the registry cache file.
	// Useful on read-only filesystems.
	//
	// Optional. Default is false (local cache enabled).
	DisableLocalCache bool
}

// Registry resolves OUIs to vendor names. See [NewRegistry].
type Registry = oui.Registry

// NewRegistry creates a Registry from cfg. Most callers can ignore this
// and use [Vendor] directly; a dedicated Registry is for custom mirrors,
// cache locations, or test doubles.
func NewRegistry(cfg ResolveConfig) (*Registry, error) {
	client := cfg.HTTPClient
	if client == nil {
		client = HttpClient()
	}
	return oui.New(oui.Config{
		URL:               cfg.RegistryURL,
		CachePath:         cfg.CachePath,
		HTTPClient:        client,
		DisableLocalCache: cfg.DisableLocalCache,
	})
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

func defaultReg() *Registry {
	defaultOnce.Do(func() {
		// Defaults cannot fail validation.
		defaultRegistry, _ = NewRegistry(ResolveConfig{})
	})
	return defaultRegistry
}

// Vendor resolves the vendor name for a WWN or a bare OUI.
//
// The input may be a full WWN (its OUI is extracted first) or a 6-hex-digit
// OUI with optional ":" or "-" separators. An input that is neither is an
// error; an unresolved OUI is not — it returns ("", false, nil), covering
// both unknown vendors and an unreachable registry.
//
// Without an explicit registry the process-wide one is used, so the first
// call pays for the registry load and later calls are lookups.
//
// Example:
//
//	name, ok, err := wwninfo.Vendor(ctx, "50:06:01:60:08:60:2c:04")
func Vendor(ctx context.Context, wwnOrOUI string, optionalRegistry ...*Registry) (string, bool, error) {
	r := defaultReg()
	if len(optionalRegistry) > 0 && optionalRegistry[0] != nil {
		r = optionalRegistry[0]
	}

	key := wwnOrOUI
	if !oui.IsValidKey(key) {
		w, err := wwn.Parse(wwnOrOUI)
		if err != nil {
			return "", false, fmt.Errorf("input is neither a WWN nor an OUI: %w", err)
		}
		key = w.OUI()
	}

	name, ok := r.Resolve(ctx, key)
	return name, ok, nil
}
