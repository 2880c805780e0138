package oui

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"go.opentelemetry.io/otel/attribute"

	"github.com/santools/wwninfo/internal/cache"
	"github.com/santools/wwninfo/internal/observability"
	"github.com/santools/wwninfo/internal/utils"
)

// Config configures a [Registry].
type Config struct {
	// CachePath is the directory holding the cached registry document.
	//
	// Optional. If empty, the default cache path is used ($HOME/.wwninfo).
	CachePath string

	// URL is the location of the registry document.
	//
	// Optional. Defaults to [DefaultRegistryURL].
	URL string

	// HTTPClient is the HTTP client used for the network fetch.
	//
	// Optional. If nil, a default client with a 30 second timeout is used.
	HTTPClient utils.HTTPClient

	// DisableLocalCache skips both reading and writing the cache file,
	// forcing a network fetch on first resolution. Useful on read-only
	// filesystems.
	//
	// Optional. Default is false (local cache enabled).
	DisableLocalCache bool
}

// CheckAndSetDefaults validates and sets default values.
func (c *Config) CheckAndSetDefaults() error {
	if c.URL == "" {
		c.URL = DefaultRegistryURL
	}
	parsed, err := url.Parse(c.URL)
	if err != nil {
		return fmt.Errorf("invalid registry URL: %w", err)
	}
	if parsed.Scheme != "https" && parsed.Scheme != "http" {
		return fmt.Errorf("unsupported registry URL scheme %q: must be 'https' or 'http'", parsed.Scheme)
	}
	if c.CachePath == "" {
		c.CachePath = cache.CacheDir()
	}
	if c.HTTPClient == nil {
		c.HTTPClient = defaultClient
	}
	return nil
}

// Registry maps OUIs to vendor names, lazily populated on first resolution.
//
// The mapping is built at most once per Registry: from the cached document
// when present, otherwise from a single network fetch whose result is
// persisted back to the cache best-effort. When both fail the Registry
// stays empty for its lifetime; every lookup misses and nothing is retried.
type Registry struct {
	cfg Config

	mu      sync.RWMutex
	loaded  bool
	entries map[string]string
}

// New creates a Registry from cfg.
func New(optionalCfg ...Config) (*Registry, error) {
	cfg := utils.OptionalArg(optionalCfg, Config{})
	if err := cfg.CheckAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid registry config: %w", err)
	}
	return &Registry{cfg: cfg}, nil
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide Registry built from default settings.
func Default() *Registry {
	defaultOnce.Do(func() {
		// Config defaults cannot fail validation.
		defaultRegistry, _ = New()
	})
	return defaultRegistry
}

// Resolve looks up the vendor name for an OUI. The key may carry ":" or
// "-" separators and any casing.
//
// The first call populates the mapping; see [Registry]. A miss returns
// ("", false), never an error — an unreachable registry degrades into
// misses for every key.
func (r *Registry) Resolve(ctx context.Context, ouiKey string) (string, bool) {
	r.ensureLoaded(ctx)

	r.mu.RLock()
	defer r.mu.RUnlock()
	name, ok := r.entries[NormalizeKey(ouiKey)]
	return name, ok
}

// Len returns the number of registry entries, loading the mapping if needed.
func (r *Registry) Len(ctx context.Context) int {
	r.ensureLoaded(ctx)

	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Update forces a network fetch of the registry document, persists it to
// the cache (unless disabled), and replaces the in-memory mapping. Unlike
// lazy loading, failures are surfaced to the caller.
//
// It returns the number of vendors parsed from the fetched document.
func (r *Registry) Update(ctx context.Context) (int, error) {
	ctx, span := observability.StartSpan(ctx, "oui.registry.update")
	defer span.End()

	data, err := NewHTTPSource(r.cfg.URL, r.cfg.HTTPClient).Fetch(ctx)
	if err != nil {
		observability.RecordError(span, err)
		return 0, err
	}

	if !r.cfg.DisableLocalCache {
		if err := cache.SaveRegistry(r.cfg.CachePath, data); err != nil {
			observability.RecordError(span, err)
			return 0, fmt.Errorf("failed to persist registry cache: %w", err)
		}
	}

	entries := Parse(data)
	span.SetAttributes(attribute.Int("registry.entries", len(entries)))

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = entries
	r.loaded = true
	return len(entries), nil
}

// ensureLoaded populates the mapping exactly once. Concurrent first calls
// block until the single load completes.
func (r *Registry) ensureLoaded(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.loaded {
		return
	}
	r.entries = r.load(ctx)
	r.loaded = true
}

// load builds the mapping cache-first with network fallback. All failures
// are absorbed; the worst case is an empty mapping.
func (r *Registry) load(ctx context.Context) map[string]string {
	ctx, span := observability.StartSpan(ctx, "oui.registry.load")
	defer span.End()

	if !r.cfg.DisableLocalCache {
		if data, err := NewFileSource(cache.RegistryPath(r.cfg.CachePath)).Fetch(ctx); err == nil {
			span.SetAttributes(attribute.String("registry.source", "cache"))
			return Parse(data)
		}
	}

	data, err := NewHTTPSource(r.cfg.URL, r.cfg.HTTPClient).Fetch(ctx)
	if err != nil {
		observability.RecordError(span, err)
		return map[string]string{}
	}
	span.SetAttributes(attribute.String("registry.source", "network"))

	if !r.cfg.DisableLocalCache {
		// Best-effort persist so later runs avoid the network.
		_ = cache.SaveRegistry(r.cfg.CachePath, data)
	}
	return Parse(data)
}
