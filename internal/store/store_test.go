package store

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

// testDB opens a migrated in-memory database. Single connection so the
// in-memory database is shared across queries.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		t.Fatalf("enabling foreign keys: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("running migrations: %v", err)
	}
	return db
}

func TestNewsCRUD(t *testing.T) {
	db := testDB(t)
	q := New(db)
	ctx := context.Background()

	created, err := q.CreateNews(ctx, CreateNewsParams{
		Judul:  "Berita Penting",
		Slug:   "berita-penting",
		Konten: "<p>Isi berita</p>",
	})
	if err != nil {
		t.Fatalf("CreateNews: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected assigned id")
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected created_at to default to now")
	}

	got, err := q.GetNews(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetNews: %v", err)
	}
	if got.Judul != "Berita Penting" || got.Konten != "<p>Isi berita</p>" {
		t.Errorf("unexpected row: %+v", got)
	}

	err = q.UpdateNews(ctx, UpdateNewsParams{
		ID:      created.ID,
		Judul:   "Berita Penting",
		Slug:    "berita-penting",
		Konten:  "<p>Isi berita</p>",
		JudulEN: "Important News",
	})
	if err != nil {
		t.Fatalf("UpdateNews: %v", err)
	}
	got, err = q.GetNews(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetNews after update: %v", err)
	}
	if got.JudulEN != "Important News" {
		t.Errorf("translation not stored: %+v", got)
	}

	if err := q.DeleteNews(ctx, created.ID); err != nil {
		t.Fatalf("DeleteNews: %v", err)
	}
	if _, err := q.GetNews(ctx, created.ID); err != sql.ErrNoRows {
		t.Errorf("expected ErrNoRows after delete, got %v", err)
	}
}

func TestNewsListAndCategoryFilter(t *testing.T) {
	db := testDB(t)
	q := New(db)
	ctx := context.Background()

	cat, err := q.CreateCategory(ctx, CreateCategoryParams{Kategori: "Pendidikan", KategoriEN: "Education"})
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}

	for i := 0; i < 3; i++ {
		params := CreateNewsParams{Judul: "Berita", Slug: "berita"}
		if i < 2 {
			params.KategoriID = sql.NullInt64{Int64: cat.ID, Valid: true}
		}
		if _, err := q.CreateNews(ctx, params); err != nil {
			t.Fatalf("CreateNews: %v", err)
		}
	}

	count, err := q.CountNews(ctx)
	if err != nil {
		t.Fatalf("CountNews: %v", err)
	}
	if count != 3 {
		t.Errorf("CountNews = %d, want 3", count)
	}

	filtered, err := q.ListNewsByCategory(ctx, ListNewsByCategoryParams{
		KategoriID: cat.ID, Limit: 10,
	})
	if err != nil {
		t.Fatalf("ListNewsByCategory: %v", err)
	}
	if len(filtered) != 2 {
		t.Errorf("filtered = %d rows, want 2", len(filtered))
	}

	// Deleting the category clears the FK but keeps the rows.
	if err := q.DeleteCategory(ctx, cat.ID); err != nil {
		t.Fatalf("DeleteCategory: %v", err)
	}
	count, err = q.CountNews(ctx)
	if err != nil {
		t.Fatalf("CountNews: %v", err)
	}
	if count != 3 {
		t.Errorf("news rows lost on category delete: %d", count)
	}
}

func TestAnnouncementBySlug(t *testing.T) {
	db := testDB(t)
	q := New(db)
	ctx := context.Background()

	created, err := q.CreateAnnouncement(ctx, CreateAnnouncementParams{
		Judul: "Pengumuman Libur",
		Slug:  "pengumuman-libur",
	})
	if err != nil {
		t.Fatalf("CreateAnnouncement: %v", err)
	}

	got, err := q.GetAnnouncementBySlug(ctx, "pengumuman-libur")
	if err != nil {
		t.Fatalf("GetAnnouncementBySlug: %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("got id %d, want %d", got.ID, created.ID)
	}

	if _, err := q.GetAnnouncementBySlug(ctx, "missing"); err != sql.ErrNoRows {
		t.Errorf("expected ErrNoRows, got %v", err)
	}
}

func TestLecturerCRUD(t *testing.T) {
	db := testDB(t)
	q := New(db)
	ctx := context.Background()

	created, err := q.CreateLecturer(ctx, CreateLecturerParams{
		Nama:    "Dr. Siti Rahma",
		NIDN:    "0012345678",
		Jabatan: "Dekan",
		Bidang:  "Hukum Ekonomi",
	})
	if err != nil {
		t.Fatalf("CreateLecturer: %v", err)
	}

	err = q.UpdateLecturer(ctx, UpdateLecturerParams{
		ID: created.ID, Nama: created.Nama, NIDN: created.NIDN,
		Jabatan: "Dekan", Bidang: "Hukum Ekonomi",
		JabatanEN: "Dean",
	})
	if err != nil {
		t.Fatalf("UpdateLecturer: %v", err)
	}

	list, err := q.ListLecturers(ctx)
	if err != nil {
		t.Fatalf("ListLecturers: %v", err)
	}
	if len(list) != 1 || list[0].JabatanEN != "Dean" {
		t.Errorf("unexpected list: %+v", list)
	}
}

func TestUserQueries(t *testing.T) {
	db := testDB(t)
	q := New(db)
	ctx := context.Background()

	created, err := q.CreateUser(ctx, CreateUserParams{
		Email:        "editor@fakultas.local",
		PasswordHash: "x",
		Name:         "Editor",
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if created.Role != "editor" {
		t.Errorf("default role = %q, want editor", created.Role)
	}

	byEmail, err := q.GetUserByEmail(ctx, "editor@fakultas.local")
	if err != nil {
		t.Fatalf("GetUserByEmail: %v", err)
	}
	if byEmail.ID != created.ID {
		t.Errorf("id mismatch")
	}

	if err := q.TouchUserLogin(ctx, created.ID); err != nil {
		t.Fatalf("TouchUserLogin: %v", err)
	}
	got, err := q.GetUser(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if !got.LastLoginAt.Valid {
		t.Error("last_login_at not set")
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	if err := Seed(ctx, db, nil); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if err := Seed(ctx, db, nil); err != nil {
		t.Fatalf("second Seed: %v", err)
	}

	q := New(db)
	users, err := q.CountUsers(ctx)
	if err != nil {
		t.Fatalf("CountUsers: %v", err)
	}
	if users != 1 {
		t.Errorf("users = %d, want 1", users)
	}

	cats, err := q.ListCategories(ctx)
	if err != nil {
		t.Fatalf("ListCategories: %v", err)
	}
	if len(cats) != 5 {
		t.Errorf("categories = %d, want 5", len(cats))
	}
	for _, c := range cats {
		if c.Kategori == "Umum" && c.KategoriAR != "عام" {
			t.Errorf("Umum arabic = %q", c.KategoriAR)
		}
	}
}

func TestEventLog(t *testing.T) {
	db := testDB(t)
	q := New(db)
	ctx := context.Background()

	err := q.CreateEvent(ctx, CreateEventParams{
		Level:    "warning",
		Category: "translate",
		Message:  "provider failed",
	})
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}

	events, err := q.ListRecentEvents(ctx, 10)
	if err != nil {
		t.Fatalf("ListRecentEvents: %v", err)
	}
	if len(events) != 1 || events[0].Metadata != "{}" {
		t.Errorf("unexpected events: %+v", events)
	}
}
