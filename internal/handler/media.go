// Copyright (c) 2026 Akbar Maulana
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"bytes"
	"net/http"
)

// MaxUploadSize bounds the multipart body of a media upload.
const MaxUploadSize = 10 << 20 // 10 MB

// MediaUploadResponse describes a stored image.
type MediaUploadResponse struct {
	URL         string `json:"url"`
	Object      string `json:"object"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ContentType string `json:"content_type"`
}

// UploadMedia accepts a multipart image upload, normalizes it and stores
// it in object storage. The endpoint degrades to 503 when storage is not
// configured so content editing keeps working without it.
func (h *Handler) UploadMedia(w http.ResponseWriter, r *http.Request) {
	if h.uploader == nil {
		WriteServiceUnavailable(w, "Object storage is not configured")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)
	if err := r.ParseMultipartForm(MaxUploadSize); err != nil {
		WriteBadRequest(w, "Upload too large or malformed", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		WriteBadRequest(w, "Missing file field", nil)
		return
	}
	defer file.Close()

	// The declared content type is advisory; Process still rejects
	// anything that does not decode as an image.
	if ct := header.Header.Get("Content-Type"); ct != "" && !h.processor.IsSupportedType(ct) {
		WriteValidationError(w, map[string]string{
			"file": "Unsupported image type; use JPEG, PNG, GIF or WebP",
		})
		return
	}

	result, err := h.processor.Process(file)
	if err != nil {
		WriteValidationError(w, map[string]string{"file": "File is not a decodable image"})
		return
	}

	object, err := h.uploader.Upload(r.Context(),
		bytes.NewReader(result.Data), int64(len(result.Data)), result.MimeType, result.Ext)
	if err != nil {
		h.logger.Error("media upload failed", "category", "upload", "error", err)
		WriteInternalError(w, "Failed to store file")
		return
	}

	h.logger.Info("media uploaded", "category", "upload",
		"object", object, "size", len(result.Data))
	WriteCreated(w, MediaUploadResponse{
		URL:         h.uploader.PublicURL(object),
		Object:      object,
		Width:       result.Width,
		Height:      result.Height,
		ContentType: result.MimeType,
	})
}
