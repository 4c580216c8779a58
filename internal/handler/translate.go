// Copyright (c) 2026 Akbar Maulana
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"strings"

	"github.com/akbarmaulana/sifak-go/internal/locale"
	"github.com/akbarmaulana/sifak-go/internal/translate"
)

// TranslateRequest is the body of the translation proxy endpoint.
type TranslateRequest struct {
	Text       string `json:"text"`
	TargetLang string `json:"targetLang"`
}

// TranslateResponse is the success body of the translation proxy. The
// field names are part of the editor contract and must stay stable.
type TranslateResponse struct {
	TranslatedText string `json:"translatedText"`
	Success        bool   `json:"success"`
	Service        string `json:"service"`
}

// TranslateErrorResponse is the failure body of the translation proxy,
// used for validation errors and provider outages alike so the editor
// always reads the same flat shape. TranslatedText is always null; Note
// is set only when the provider chain failed and the editor should fill
// the translation in manually.
type TranslateErrorResponse struct {
	Error          string  `json:"error"`
	TranslatedText *string `json:"translatedText"`
	Note           string  `json:"note,omitempty"`
}

// TranslateAssistResponse wraps a translate-assist run over a record.
// Applied reports whether the accepted translations were persisted: a
// run with any failed pair is returned unapplied, and the editor
// reviews the failure list and saves the accepted values explicitly
// through the regular update endpoint.
type TranslateAssistResponse struct {
	*translate.FieldsResult
	Applied bool `json:"applied"`
}

// Translate proxies a single text to the translation provider chain.
// Editors call it field by field from the admin forms.
func (h *Handler) Translate(w http.ResponseWriter, r *http.Request) {
	var req TranslateRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	req.Text = strings.TrimSpace(req.Text)
	if req.Text == "" || req.TargetLang == "" {
		WriteJSON(w, http.StatusBadRequest, TranslateErrorResponse{
			Error: "Both text and targetLang are required",
		})
		return
	}
	target := locale.Parse(req.TargetLang)
	if target.IsDefault() {
		WriteJSON(w, http.StatusBadRequest, TranslateErrorResponse{
			Error: "targetLang must be one of: en, ar",
		})
		return
	}

	result, err := h.translator.Translate(r.Context(), req.Text, target)
	if err != nil {
		WriteJSON(w, http.StatusBadGateway, TranslateErrorResponse{
			Error:          err.Error(),
			TranslatedText: nil,
			Note:           translate.ManualFallbackNote,
		})
		return
	}

	WriteJSON(w, http.StatusOK, TranslateResponse{
		TranslatedText: result.Text,
		Success:        true,
		Service:        result.Service,
	})
}
