// Copyright (c) 2026 Akbar Maulana
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/akbarmaulana/sifak-go/internal/middleware"
)

// Rate limits for anonymous traffic.
const (
	PublicRateLimit = 20.0
	PublicRateBurst = 40
)

// RouterOptions configures the HTTP router.
type RouterOptions struct {
	IsDevelopment bool
	// SessionSecret doubles as the CSRF auth key.
	SessionSecret string
}

// Routes builds the full route tree: public localized content, the
// session-authenticated editor API and the admin-only endpoints.
func (h *Handler) Routes(opts RouterOptions) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig(opts.IsDevelopment)))
	r.Use(h.sessions.LoadAndSave)

	csrfProtect := middleware.CSRF(
		middleware.DefaultCSRFConfig([]byte(opts.SessionSecret), opts.IsDevelopment))
	publicLimiter := middleware.NewGlobalRateLimiter(PublicRateLimit, PublicRateBurst)

	r.Get("/health", h.Health)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Language())
		r.Use(csrfProtect)

		// Public localized content.
		r.Group(func(r chi.Router) {
			r.Use(publicLimiter.Middleware())
			r.Get("/berita", h.ListNews)
			r.Get("/berita/{slug}", h.GetNewsBySlug)
			r.Get("/pengumuman", h.ListAnnouncements)
			r.Get("/pengumuman/{slug}", h.GetAnnouncementBySlug)
			r.Get("/dosen", h.ListLecturers)
			r.Get("/kategori", h.ListCategories)
			r.Get("/ui-strings", h.UIStrings)
			r.Post("/auth/login", h.Login)
		})

		// Session-authenticated editor endpoints.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(h.sessions))
			r.Use(middleware.LoadUser(h.sessions, h.db))

			r.Post("/auth/logout", h.Logout)
			r.Get("/auth/me", h.Me)
			r.Post("/translate", h.Translate)

			r.Route("/admin", func(r chi.Router) {
				r.Route("/berita", func(r chi.Router) {
					r.Get("/", h.AdminListNews)
					r.Post("/", h.CreateNews)
					r.Get("/{id}", h.AdminGetNews)
					r.Put("/{id}", h.UpdateNews)
					r.Delete("/{id}", h.DeleteNews)
					r.Post("/{id}/translate", h.TranslateNews)
				})
				r.Route("/pengumuman", func(r chi.Router) {
					r.Get("/", h.AdminListAnnouncements)
					r.Post("/", h.CreateAnnouncement)
					r.Get("/{id}", h.AdminGetAnnouncement)
					r.Put("/{id}", h.UpdateAnnouncement)
					r.Delete("/{id}", h.DeleteAnnouncement)
					r.Post("/{id}/translate", h.TranslateAnnouncement)
				})
				r.Route("/dosen", func(r chi.Router) {
					r.Get("/", h.AdminListLecturers)
					r.Post("/", h.CreateLecturer)
					r.Get("/{id}", h.AdminGetLecturer)
					r.Put("/{id}", h.UpdateLecturer)
					r.Delete("/{id}", h.DeleteLecturer)
					r.Post("/{id}/translate", h.TranslateLecturer)
				})
				r.Route("/kategori", func(r chi.Router) {
					r.Get("/", h.AdminListCategories)
					r.Post("/", h.CreateCategory)
					r.Put("/{id}", h.UpdateCategory)
					r.Delete("/{id}", h.DeleteCategory)
					r.Post("/{id}/translate", h.TranslateCategory)
				})
				r.Post("/media", h.UploadMedia)

				// Event log and account introspection are admin-only.
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin())
					r.Get("/events", h.ListEvents)
				})
			})
		})
	})

	return r
}
