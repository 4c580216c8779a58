// Copyright (c) 2026 Akbar Maulana
// SPDX-License-Identifier: GPL-3.0-or-later

// Package i18n provides the fixed UI string catalog for the site chrome:
// navigation labels, section headings and form messages. Content itself
// is localized per record by internal/locale; this catalog only covers
// interface text.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/akbarmaulana/sifak-go/internal/locale"
)

//go:embed locales
var localesFS embed.FS

// MessageFile is the on-disk structure of a locale file.
type MessageFile struct {
	Language string            `json:"language"`
	Messages map[string]string `json:"messages"`
}

// Catalog holds the UI strings for every supported language.
type Catalog struct {
	mu           sync.RWMutex
	translations map[locale.Lang]map[string]string
	logger       *slog.Logger
}

var catalog *Catalog

// Init loads the embedded locale files. It must run before T or
// Messages are used; both degrade to returning keys when it has not.
func Init(logger *slog.Logger) error {
	c := &Catalog{
		translations: make(map[locale.Lang]map[string]string),
		logger:       logger,
	}
	for _, lang := range locale.Supported {
		if err := c.loadLanguage(lang); err != nil {
			return fmt.Errorf("load language %s: %w", lang, err)
		}
	}
	catalog = c

	if logger != nil {
		logger.Info("ui catalog loaded", "languages", len(locale.Supported))
	}
	return nil
}

func (c *Catalog) loadLanguage(lang locale.Lang) error {
	path := fmt.Sprintf("locales/%s/messages.json", lang)
	data, err := localesFS.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	var msgFile MessageFile
	if err := json.Unmarshal(data, &msgFile); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.translations[lang] = msgFile.Messages
	return nil
}

// T translates a UI string key for lang, falling back to the base
// language and finally to the key itself.
func T(lang locale.Lang, key string, args ...any) string {
	if catalog == nil {
		return key
	}

	catalog.mu.RLock()
	defer catalog.mu.RUnlock()

	if msg, ok := catalog.translations[lang][key]; ok {
		return format(msg, args)
	}
	if msg, ok := catalog.translations[locale.LangID][key]; ok {
		if catalog.logger != nil {
			catalog.logger.Debug("missing ui translation", "key", key, "lang", lang)
		}
		return format(msg, args)
	}
	return key
}

func format(msg string, args []any) string {
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}

// Messages returns the full string map for lang, with base-language
// values filling any gaps. The copy is safe to mutate.
func Messages(lang locale.Lang) map[string]string {
	if catalog == nil {
		return map[string]string{}
	}

	catalog.mu.RLock()
	defer catalog.mu.RUnlock()

	merged := make(map[string]string, len(catalog.translations[locale.LangID]))
	for key, msg := range catalog.translations[locale.LangID] {
		merged[key] = msg
	}
	for key, msg := range catalog.translations[lang] {
		merged[key] = msg
	}
	return merged
}
