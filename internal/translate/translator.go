// Copyright (c) 2026 Akbar Maulana
// SPDX-License-Identifier: GPL-3.0-or-later

// Package translate implements best-effort machine translation of base
// language (Indonesian) content into English and Arabic. A Translator
// chains a primary and a secondary external provider with independent
// per-attempt timeouts; the orchestrator in this package fans a record's
// fields out across target languages and reports per-field failures so
// the editor can decide whether to proceed.
package translate

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/akbarmaulana/sifak-go/internal/locale"
)

// MaxTextLen is the provider-safe input limit in runes. Longer input is
// truncated silently; free translation APIs reject larger requests.
const MaxTextLen = 500

// ProviderTimeout bounds each provider attempt. A hung primary cannot
// delay the secondary past this window, so worst case latency is the sum
// of the per-provider timeouts.
const ProviderTimeout = 10 * time.Second

// Validation errors.
var (
	ErrMissingText   = errors.New("text is required")
	ErrMissingTarget = errors.New("targetLang is required")
)

// ManualFallbackNote is the user-facing instruction returned on terminal
// failure, verbatim from the admin UI language (Indonesian).
const ManualFallbackNote = "Layanan terjemahan tidak tersedia. Silakan isi terjemahan secara manual atau coba lagi nanti."

// ErrAllProvidersFailed is returned when every provider was attempted and
// none produced an accepted translation.
var ErrAllProvidersFailed = errors.New("semua layanan terjemahan tidak tersedia, silakan isi terjemahan secara manual")

// Result is a successful translation with the provider that served it.
type Result struct {
	Text    string
	Service string
}

// ResultCache stores translation results keyed by input and target
// language. The method set matches the application cache, keyed byte
// storage with a TTL; a miss is reported as a non-nil error.
type ResultCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// CacheTTL is how long a cached translation stays valid. Source text is
// immutable per key, so the TTL only bounds cache growth.
const CacheTTL = 24 * time.Hour

// Translator chains translation providers with failover.
type Translator struct {
	providers []Provider
	timeout   time.Duration
	limiter   *rate.Limiter
	cache     ResultCache
	logger    *slog.Logger
}

// Option configures a Translator.
type Option func(*Translator)

// WithProviders replaces the default provider chain (used in tests and
// when a deployment disables a provider).
func WithProviders(providers ...Provider) Option {
	return func(t *Translator) { t.providers = providers }
}

// WithTimeout overrides the per-attempt timeout.
func WithTimeout(d time.Duration) Option {
	return func(t *Translator) { t.timeout = d }
}

// WithCache enables caching of successful translations. Identical text
// translated to the same target language is served from the cache
// without a provider round trip.
func WithCache(c ResultCache) Option {
	return func(t *Translator) { t.cache = c }
}

// New creates a Translator with the default chain: MyMemory first,
// LibreTranslate second. libreURL overrides the secondary endpoint when
// non-empty. Outbound calls are rate limited to stay inside free-tier
// quotas.
func New(libreURL string, logger *slog.Logger, opts ...Option) *Translator {
	t := &Translator{
		providers: []Provider{newMyMemoryClient(), newLibreClient(libreURL)},
		timeout:   ProviderTimeout,
		limiter:   rate.NewLimiter(rate.Limit(5), 10),
		logger:    logger,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Translate resolves text into target with dictionary short-circuit,
// input truncation and sequential provider failover. The provider
// attempts for one call are strictly sequential: they are a fallback
// chain, not parallel alternatives.
func (t *Translator) Translate(ctx context.Context, text string, target locale.Lang) (*Result, error) {
	if text == "" {
		return nil, ErrMissingText
	}
	if target == "" {
		return nil, ErrMissingTarget
	}
	target = locale.Parse(string(target))

	// Closed category vocabulary never needs a network call.
	if translated, ok := lookupDictionary(text, target); ok {
		return &Result{Text: translated, Service: ProviderDictionary}, nil
	}

	// Truncation is silent; accepted lossy behavior for very long input.
	input := truncate(text, MaxTextLen)

	key := cacheKey(input, target)
	if cached := t.cacheGet(ctx, key); cached != nil {
		return cached, nil
	}

	for _, p := range t.providers {
		translated, err := t.attempt(ctx, p, input, target)
		if err != nil {
			// Failover, never propagate the individual provider error.
			if t.logger != nil {
				t.logger.Warn("translation provider failed",
					"provider", p.Name(), "target", target, "error", err)
			}
			continue
		}
		res := &Result{Text: translated, Service: p.Name()}
		t.cachePut(ctx, key, res)
		return res, nil
	}

	return nil, ErrAllProvidersFailed
}

// cacheKey derives a stable key from the truncated input and target.
// Hashing keeps arbitrary editor text out of cache key space.
func cacheKey(input string, target locale.Lang) string {
	sum := sha256.Sum256([]byte(string(target) + "\x00" + input))
	return "translate:" + string(target) + ":" + hex.EncodeToString(sum[:16])
}

func (t *Translator) cacheGet(ctx context.Context, key string) *Result {
	if t.cache == nil {
		return nil
	}
	data, err := t.cache.Get(ctx, key)
	if err != nil {
		return nil
	}
	var res Result
	if err := json.Unmarshal(data, &res); err != nil {
		return nil
	}
	return &res
}

func (t *Translator) cachePut(ctx context.Context, key string, res *Result) {
	if t.cache == nil {
		return
	}
	data, err := json.Marshal(res)
	if err != nil {
		return
	}
	if err := t.cache.Set(ctx, key, data, CacheTTL); err != nil && t.logger != nil {
		t.logger.Warn("translation cache write failed", "error", err)
	}
}

// attempt runs one bounded provider call and applies the acceptance
// criteria: non-empty output that differs from the input. A provider
// echoing the input back means the translation did not occur.
func (t *Translator) attempt(ctx context.Context, p Provider, input string, target locale.Lang) (string, error) {
	if t.limiter != nil {
		if err := t.limiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	attemptCtx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	translated, err := p.Translate(attemptCtx, input, target)
	if err != nil {
		return "", err
	}
	if translated == "" {
		return "", errors.New("empty translation")
	}
	if translated == input {
		return "", errors.New("provider returned text unchanged")
	}
	return translated, nil
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
