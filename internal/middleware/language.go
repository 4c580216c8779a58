// Copyright (c) 2026 Akbar Maulana
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"context"
	"net/http"

	"github.com/akbarmaulana/sifak-go/internal/locale"
)

// ContextKeyLanguage is the context key for the negotiated language.
const ContextKeyLanguage ContextKey = "language"

// LanguageCookieName is the cookie name for language preference.
const LanguageCookieName = "sifak_lang"

// Language creates middleware that detects and sets the current language.
// Priority order:
//  1. Query parameter ?lang=xx (explicit language switch, updates cookie)
//  2. Cookie preference
//  3. Accept-Language header
//  4. Indonesian, the base content language
func Language() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := negotiate(w, r)
			ctx := context.WithValue(r.Context(), ContextKeyLanguage, lang)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func negotiate(w http.ResponseWriter, r *http.Request) locale.Lang {
	if queryLang := r.URL.Query().Get("lang"); queryLang != "" {
		lang := locale.Parse(queryLang)
		SetLanguageCookie(w, lang)
		return lang
	}

	if cookie, err := r.Cookie(LanguageCookieName); err == nil {
		if parsed := locale.Parse(cookie.Value); string(parsed) == cookie.Value {
			return parsed
		}
	}

	if acceptLang := r.Header.Get("Accept-Language"); acceptLang != "" {
		return locale.Match(acceptLang)
	}

	return locale.LangID
}

// GetLang retrieves the negotiated language from the request context.
// Returns the base language when the Language middleware did not run.
func GetLang(r *http.Request) locale.Lang {
	lang, ok := r.Context().Value(ContextKeyLanguage).(locale.Lang)
	if !ok {
		return locale.LangID
	}
	return lang
}

// SetLanguageCookie sets the language preference cookie.
func SetLanguageCookie(w http.ResponseWriter, lang locale.Lang) {
	cookie := &http.Cookie{
		Name:     LanguageCookieName,
		Value:    string(lang),
		Path:     "/",
		MaxAge:   365 * 24 * 60 * 60, // 1 year
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	http.SetCookie(w, cookie)
}
