// Copyright (c) 2026 Akbar Maulana
// SPDX-License-Identifier: GPL-3.0-or-later

// Package handler provides the JSON API handlers for the faculty site:
// public localized content endpoints, the admin content CRUD, the
// translation assist and the media upload.
package handler

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"

	"github.com/akbarmaulana/sifak-go/internal/cache"
	"github.com/akbarmaulana/sifak-go/internal/imaging"
	"github.com/akbarmaulana/sifak-go/internal/storage"
	"github.com/akbarmaulana/sifak-go/internal/store"
	"github.com/akbarmaulana/sifak-go/internal/translate"
)

// Pagination bounds for list endpoints.
const (
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// Handler holds shared dependencies for all API handlers.
type Handler struct {
	db         *sql.DB
	queries    *store.Queries
	categories *cache.CategoryCache
	translator *translate.Translator
	uploader   *storage.Uploader
	processor  *imaging.Processor
	sessions   *scs.SessionManager
	logger     *slog.Logger
}

// NewHandler creates the API handler. uploader may be nil when object
// storage is not configured; the media endpoint degrades to 503.
func NewHandler(db *sql.DB, categories *cache.CategoryCache, translator *translate.Translator,
	uploader *storage.Uploader, sessions *scs.SessionManager, logger *slog.Logger) *Handler {
	return &Handler{
		db:         db,
		queries:    store.New(db),
		categories: categories,
		translator: translator,
		uploader:   uploader,
		processor:  imaging.NewProcessor(),
		sessions:   sessions,
		logger:     logger,
	}
}

// Response is the standard API response wrapper.
type Response struct {
	Data any   `json:"data,omitempty"`
	Meta *Meta `json:"meta,omitempty"`
}

// Meta contains pagination metadata.
type Meta struct {
	Total   int64 `json:"total,omitempty"`
	Page    int   `json:"page,omitempty"`
	PerPage int   `json:"per_page,omitempty"`
	Pages   int   `json:"pages,omitempty"`
}

// ErrorResponse is the standard API error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteSuccess writes a successful JSON response.
func WriteSuccess(w http.ResponseWriter, data any, meta *Meta) {
	WriteJSON(w, http.StatusOK, Response{Data: data, Meta: meta})
}

// WriteCreated writes a 201 Created JSON response.
func WriteCreated(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusCreated, Response{Data: data})
}

// WriteError writes an error JSON response.
func WriteError(w http.ResponseWriter, statusCode int, code, message string, details map[string]string) {
	WriteJSON(w, statusCode, ErrorResponse{
		Error: ErrorDetail{Code: code, Message: message, Details: details},
	})
}

// WriteBadRequest writes a 400 Bad Request response.
func WriteBadRequest(w http.ResponseWriter, message string, details map[string]string) {
	WriteError(w, http.StatusBadRequest, "bad_request", message, details)
}

// WriteNotFound writes a 404 Not Found response.
func WriteNotFound(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusNotFound, "not_found", message, nil)
}

// WriteUnauthorized writes a 401 Unauthorized response.
func WriteUnauthorized(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusUnauthorized, "unauthorized", message, nil)
}

// WriteInternalError writes a 500 Internal Server Error response.
func WriteInternalError(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusInternalServerError, "internal_error", message, nil)
}

// WriteServiceUnavailable writes a 503 Service Unavailable response.
func WriteServiceUnavailable(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusServiceUnavailable, "service_unavailable", message, nil)
}

// WriteValidationError writes a 422 Unprocessable Entity response with
// per-field errors.
func WriteValidationError(w http.ResponseWriter, fieldErrors map[string]string) {
	WriteError(w, http.StatusUnprocessableEntity, "validation_error", "Validation failed", fieldErrors)
}

// DecodeJSON decodes a request body into dst, rejecting unknown fields.
// On failure it writes a 400 response and reports false.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return false
	}
	return true
}

// ParsePageParam returns the 1-based page number from the query string.
func ParsePageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// ParsePerPageParam returns the page size from the query string, bounded
// by MaxPerPage.
func ParsePerPageParam(r *http.Request) int {
	perPage, err := strconv.Atoi(r.URL.Query().Get("per_page"))
	if err != nil || perPage < 1 {
		return DefaultPerPage
	}
	if perPage > MaxPerPage {
		return MaxPerPage
	}
	return perPage
}

// ParseIDParam parses the {id} chi route parameter.
func ParseIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// pageMeta builds pagination metadata for a list response.
func pageMeta(total int64, page, perPage int) *Meta {
	pages := int((total + int64(perPage) - 1) / int64(perPage))
	return &Meta{Total: total, Page: page, PerPage: perPage, Pages: pages}
}

// EntityFetcher fetches an entity by id.
type EntityFetcher[T any] func(id int64) (T, error)

// requireEntityByID parses the {id} route parameter and fetches the
// entity, writing the error response itself on failure.
func requireEntityByID[T any](w http.ResponseWriter, r *http.Request, entityName string, fetch EntityFetcher[T]) (T, bool) {
	var zero T

	id, err := ParseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid "+entityName+" ID", nil)
		return zero, false
	}

	entity, err := fetch(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteNotFound(w, entityName+" not found")
		} else {
			WriteInternalError(w, "Failed to retrieve "+entityName)
		}
		return zero, false
	}
	return entity, true
}
