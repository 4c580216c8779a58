// Copyright (c) 2026 Akbar Maulana
// SPDX-License-Identifier: GPL-3.0-or-later

package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/akbarmaulana/sifak-go/internal/locale"
)

// Provider names reported in translate responses for observability.
const (
	ProviderMyMemory = "mymemory"
	ProviderLibre    = "libretranslate"
)

// DefaultLibreURL is the public LibreTranslate endpoint used when no
// override is configured.
const DefaultLibreURL = "https://libretranslate.de/translate"

// Provider is a single external machine-translation service.
// Translate returns the raw provider output; acceptance criteria
// (non-empty, differs from input) are applied by the Translator.
type Provider interface {
	Name() string
	Translate(ctx context.Context, text string, target locale.Lang) (string, error)
}

// myMemoryClient calls the MyMemory translation API (free tier,
// 10000 chars/day). Primary provider.
type myMemoryClient struct {
	baseURL string
	client  *http.Client
}

func newMyMemoryClient() *myMemoryClient {
	return &myMemoryClient{
		baseURL: "https://api.mymemory.translated.net/get",
		client:  &http.Client{},
	}
}

func (c *myMemoryClient) Name() string { return ProviderMyMemory }

func (c *myMemoryClient) Translate(ctx context.Context, text string, target locale.Lang) (string, error) {
	q := url.Values{}
	q.Set("q", text)
	q.Set("langpair", fmt.Sprintf("%s|%s", locale.LangID, target))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("mymemory request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("mymemory call: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("mymemory read: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("mymemory error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var result struct {
		ResponseStatus int `json:"responseStatus"`
		ResponseData   struct {
			TranslatedText string `json:"translatedText"`
		} `json:"responseData"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("mymemory decode: %w", err)
	}
	if result.ResponseStatus != http.StatusOK {
		return "", fmt.Errorf("mymemory: response status %d", result.ResponseStatus)
	}

	return strings.TrimSpace(result.ResponseData.TranslatedText), nil
}

// libreClient calls a LibreTranslate instance. Secondary provider; the
// endpoint is overridable so deployments can point at a self-hosted
// instance when the public one is rate limited.
type libreClient struct {
	baseURL string
	client  *http.Client
}

func newLibreClient(baseURL string) *libreClient {
	if baseURL == "" {
		baseURL = DefaultLibreURL
	}
	return &libreClient{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

func (c *libreClient) Name() string { return ProviderLibre }

func (c *libreClient) Translate(ctx context.Context, text string, target locale.Lang) (string, error) {
	body, err := json.Marshal(map[string]string{
		"q":      text,
		"source": string(locale.LangID),
		"target": string(target),
		"format": "text",
	})
	if err != nil {
		return "", fmt.Errorf("libretranslate marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("libretranslate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("libretranslate call: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("libretranslate read: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("libretranslate error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var result struct {
		TranslatedText string `json:"translatedText"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("libretranslate decode: %w", err)
	}

	return strings.TrimSpace(result.TranslatedText), nil
}
