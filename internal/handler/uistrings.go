// Copyright (c) 2026 Akbar Maulana
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"

	"github.com/akbarmaulana/sifak-go/internal/i18n"
	"github.com/akbarmaulana/sifak-go/internal/middleware"
)

// UIStrings returns the interface string catalog for the request
// language so the frontend renders chrome labels without bundling
// translations itself.
func (h *Handler) UIStrings(w http.ResponseWriter, r *http.Request) {
	lang := middleware.GetLang(r)
	WriteSuccess(w, LocalizedList{
		Lang:  lang,
		Dir:   lang.Direction(),
		Items: i18n.Messages(lang),
	}, nil)
}
