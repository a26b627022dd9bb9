package content

import (
	"log/slog"
	"sync"

	"sagarneeli.dev/internal/models"
)

// Source provides the site content document.
type Source interface {
	Content() (*models.SiteContent, error)
}

// Provider resolves and loads the content document. It is built once at
// startup and handed to whatever renders pages. With caching enabled the first
// successful load is kept for the life of the process; failures are not kept.
//
// Returned content is shared between callers and must be treated as read-only.
type Provider struct {
	root   string
	path   string
	cache  bool
	logger *slog.Logger

	mu     sync.Mutex
	cached *models.SiteContent
}

// Option configures a Provider.
type Option func(*Provider)

// WithCache enables or disables process-lifetime memoization.
func WithCache(enabled bool) Option {
	return func(p *Provider) { p.cache = enabled }
}

// WithLogger sets the logger used for load diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Provider) { p.logger = logger }
}

// NewProvider creates a Provider for path relative to root.
func NewProvider(root, path string, opts ...Option) *Provider {
	p := &Provider{
		root:   root,
		path:   path,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Content returns the decoded document, or a *LoadError.
func (p *Provider) Content() (*models.SiteContent, error) {
	if !p.cache {
		return p.load()
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cached != nil {
		return p.cached, nil
	}

	content, err := p.load()
	if err != nil {
		return nil, err
	}
	p.cached = content
	return content, nil
}

func (p *Provider) load() (*models.SiteContent, error) {
	resolved, tried, err := Resolve(p.root, p.path)
	if err != nil {
		p.logger.Error("content document not found", "path", p.path, "tried", tried)
		return nil, &LoadError{Path: p.path, Tried: tried, Err: err}
	}

	content, err := Load(resolved)
	if err != nil {
		p.logger.Error("failed to load content document", "path", resolved, "error", err)
		return nil, err
	}

	p.logger.Debug("content document loaded", "path", resolved, "cached", p.cache)
	return content, nil
}
