package localeinfo

import "sync"

// FallbackResolver resolves explicit fallback locales consulted before the
// truncation parents of a locale.
type FallbackResolver interface {
	Resolve(locale string) []string
}

// StaticFallbackResolver holds fallback chains configured up front.
type StaticFallbackResolver struct {
	mu     sync.RWMutex
	chains map[string][]string
}

var _ FallbackResolver = &StaticFallbackResolver{}

// NewStaticFallbackResolver returns an empty resolver.
func NewStaticFallbackResolver() *StaticFallbackResolver {
	return &StaticFallbackResolver{chains: make(map[string][]string)}
}

// Set replaces the chain for locale. Duplicates and self references are dropped.
func (r *StaticFallbackResolver) Set(locale string, fallbacks ...string) {
	if r == nil {
		return
	}
	key := canonicalLocaleName(locale)
	if key == "" {
		return
	}

	seen := map[string]struct{}{key: {}}
	chain := make([]string, 0, len(fallbacks))
	for _, fallback := range fallbacks {
		normalized := canonicalLocaleName(fallback)
		if normalized == "" {
			continue
		}
		if _, exists := seen[normalized]; exists {
			continue
		}
		seen[normalized] = struct{}{}
		chain = append(chain, normalized)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.chains == nil {
		r.chains = make(map[string][]string)
	}
	if len(chain) == 0 {
		delete(r.chains, key)
		return
	}
	r.chains[key] = chain
}

// Resolve returns a copy of the chain configured for locale.
func (r *StaticFallbackResolver) Resolve(locale string) []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	chain, ok := r.chains[canonicalLocaleName(locale)]
	if !ok {
		return nil
	}
	return append([]string(nil), chain...)
}
