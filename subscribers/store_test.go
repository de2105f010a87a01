package subscribers

import (
	"path/filepath"
	"testing"
	"time"
)

func setupTestStore(t *testing.T) (*Store, func()) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test_subscribers.db")

	s, err := NewStore(path)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	cleanup := func() {
		s.Close()
	}
	return s, cleanup
}

func TestNewStore(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	if s == nil {
		t.Fatal("store should not be nil")
	}
	ver, err := s.GetSetting("schema_version")
	if err != nil {
		t.Fatalf("GetSetting failed: %v", err)
	}
	if ver == "" {
		t.Error("schema_version should be set after migrate")
	}
}

func TestSubscribeNew(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	sub, err := s.Subscribe("  Reader@Example.COM ", "footer")
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}
	if sub.Email != "reader@example.com" {
		t.Errorf("email = %q, want normalized", sub.Email)
	}
	if sub.Status != StatusPending {
		t.Errorf("status = %q, want pending", sub.Status)
	}
	if sub.Token == "" {
		t.Error("token should be set")
	}
	if sub.Source != "footer" {
		t.Errorf("source = %q, want footer", sub.Source)
	}
	if sub.ID == 0 {
		t.Error("id should be assigned")
	}
}

func TestSubscribeIdempotent(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	first, err := s.Subscribe("reader@example.com", "footer")
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}
	second, err := s.Subscribe("READER@example.com", "home")
	if err != nil {
		t.Fatalf("second Subscribe failed: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("second signup created a new row: %d vs %d", second.ID, first.ID)
	}
	if second.Token != first.Token {
		t.Error("second signup rotated the token")
	}
	if n, _ := s.Count(""); n != 1 {
		t.Errorf("Count = %d, want 1", n)
	}
}

func TestSubscribeInvalidEmail(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	bad := []string{
		"",
		"   ",
		"not-an-email",
		"Reader <reader@example.com>",
		"a@" + string(make([]byte, 300)),
	}
	for _, email := range bad {
		if _, err := s.Subscribe(email, ""); err == nil {
			t.Errorf("Subscribe(%q) should fail", email)
		}
	}
}

func TestSubscribeReactivates(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	sub, err := s.Subscribe("reader@example.com", "footer")
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}
	oldToken := sub.Token
	if _, err := s.Unsubscribe(oldToken); err != nil {
		t.Fatalf("Unsubscribe failed: %v", err)
	}
	again, err := s.Subscribe("reader@example.com", "article")
	if err != nil {
		t.Fatalf("re-Subscribe failed: %v", err)
	}
	if again.Status != StatusPending {
		t.Errorf("status = %q, want pending after reactivation", again.Status)
	}
	if again.Token == oldToken {
		t.Error("reactivation should rotate the token")
	}
	if _, err := s.GetByToken(oldToken); err != ErrNotFound {
		t.Errorf("old token lookup = %v, want ErrNotFound", err)
	}
}

func TestConfirm(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	sub, _ := s.Subscribe("reader@example.com", "")
	confirmed, err := s.Confirm(sub.Token)
	if err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}
	if confirmed.Status != StatusConfirmed {
		t.Errorf("status = %q, want confirmed", confirmed.Status)
	}

	// confirming twice is a no-op
	twice, err := s.Confirm(sub.Token)
	if err != nil {
		t.Fatalf("second Confirm failed: %v", err)
	}
	if twice.Status != StatusConfirmed {
		t.Errorf("status after double confirm = %q", twice.Status)
	}
}

func TestConfirmDoesNotResurrect(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	sub, _ := s.Subscribe("reader@example.com", "")
	if _, err := s.Unsubscribe(sub.Token); err != nil {
		t.Fatalf("Unsubscribe failed: %v", err)
	}
	got, err := s.Confirm(sub.Token)
	if err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}
	if got.Status != StatusUnsubscribed {
		t.Errorf("confirm after unsubscribe set status %q", got.Status)
	}
}

func TestConfirmUnknownToken(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	if _, err := s.Confirm("no-such-token"); err != ErrNotFound {
		t.Errorf("Confirm(unknown) = %v, want ErrNotFound", err)
	}
}

func TestUpdateStatus(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	sub, _ := s.Subscribe("reader@example.com", "")
	got, err := s.UpdateStatus(sub.ID, StatusBounced)
	if err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	if got.Status != StatusBounced {
		t.Errorf("status = %q, want bounced", got.Status)
	}
	if _, err := s.UpdateStatus(sub.ID, "vip"); err == nil {
		t.Error("UpdateStatus should reject unknown statuses")
	}
	if _, err := s.UpdateStatus(99999, StatusConfirmed); err != ErrNotFound {
		t.Errorf("UpdateStatus(missing) = %v, want ErrNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	sub, _ := s.Subscribe("reader@example.com", "")
	if err := s.Delete(sub.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := s.GetByID(sub.ID); err != ErrNotFound {
		t.Errorf("GetByID after delete = %v, want ErrNotFound", err)
	}
	if err := s.Delete(sub.ID); err != ErrNotFound {
		t.Errorf("second Delete = %v, want ErrNotFound", err)
	}
}

func TestListFilters(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	a, _ := s.Subscribe("alice@example.com", "")
	b, _ := s.Subscribe("bob@example.org", "")
	s.Subscribe("carol@example.com", "")
	s.Confirm(a.Token)
	s.Confirm(b.Token)

	confirmed, err := s.List(Filter{Status: StatusConfirmed})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(confirmed) != 2 {
		t.Errorf("List(confirmed) = %d rows, want 2", len(confirmed))
	}

	matched, err := s.List(Filter{Query: "example.com"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(matched) != 2 {
		t.Errorf("List(q=example.com) = %d rows, want 2", len(matched))
	}

	limited, err := s.List(Filter{Limit: 1})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("List(limit=1) = %d rows, want 1", len(limited))
	}

	if _, err := s.List(Filter{Status: "vip"}); err == nil {
		t.Error("List should reject unknown statuses")
	}
}

func TestListEscapesLikeWildcards(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	s.Subscribe("percent@example.com", "")
	rows, err := s.List(Filter{Query: "%"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("List(q=%%) matched %d rows, want literal match only", len(rows))
	}
}

func TestCountByStatus(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	a, _ := s.Subscribe("alice@example.com", "")
	s.Subscribe("bob@example.org", "")
	s.Confirm(a.Token)

	counts, err := s.CountByStatus()
	if err != nil {
		t.Fatalf("CountByStatus failed: %v", err)
	}
	if counts[StatusConfirmed] != 1 || counts[StatusPending] != 1 {
		t.Errorf("counts = %v", counts)
	}
}

func TestCountCache(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	cache := NewCountCache(s, time.Hour)
	n, err := cache.Count()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 0 {
		t.Errorf("Count = %d, want 0", n)
	}

	sub, _ := s.Subscribe("reader@example.com", "")
	s.Confirm(sub.Token)

	// still cached
	if n, _ := cache.Count(); n != 0 {
		t.Errorf("Count = %d before invalidate, want cached 0", n)
	}
	cache.Invalidate()
	if n, _ := cache.Count(); n != 1 {
		t.Errorf("Count = %d after invalidate, want 1", n)
	}
}

func TestImageMetadataRoundTrip(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	img := Image{
		Filename:     "leopard-at-dusk.jpg",
		OriginalName: "IMG_4021.JPG",
		Width:        800,
		Height:       533,
		Size:         91230,
		UploadedAt:   "2026-08-01T10:00:00Z",
	}
	if err := s.SaveImage(img); err != nil {
		t.Fatalf("SaveImage failed: %v", err)
	}

	got, err := s.GetImage("leopard-at-dusk.jpg")
	if err != nil {
		t.Fatalf("GetImage failed: %v", err)
	}
	if got != img {
		t.Errorf("GetImage = %+v, want %+v", got, img)
	}

	// Re-saving the same filename replaces the row.
	img.Width = 640
	if err := s.SaveImage(img); err != nil {
		t.Fatalf("SaveImage (replace) failed: %v", err)
	}
	images, err := s.ListImages()
	if err != nil {
		t.Fatalf("ListImages failed: %v", err)
	}
	if len(images) != 1 {
		t.Fatalf("ListImages returned %d rows, want 1", len(images))
	}
	if images[0].Width != 640 {
		t.Errorf("replaced width = %d, want 640", images[0].Width)
	}
}

func TestListImagesNewestFirst(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	s.SaveImage(Image{Filename: "older.jpg", UploadedAt: "2026-07-01T08:00:00Z"})
	s.SaveImage(Image{Filename: "newer.jpg", UploadedAt: "2026-08-01T08:00:00Z"})

	images, err := s.ListImages()
	if err != nil {
		t.Fatalf("ListImages failed: %v", err)
	}
	if len(images) != 2 || images[0].Filename != "newer.jpg" {
		t.Errorf("ListImages order = %v", images)
	}
}

func TestDeleteImage(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	s.SaveImage(Image{Filename: "gone.jpg", UploadedAt: "2026-08-01T08:00:00Z"})
	if err := s.DeleteImage("gone.jpg"); err != nil {
		t.Fatalf("DeleteImage failed: %v", err)
	}
	if err := s.DeleteImage("gone.jpg"); err != ErrNotFound {
		t.Errorf("DeleteImage on missing row = %v, want ErrNotFound", err)
	}
	if _, err := s.GetImage("gone.jpg"); err != ErrNotFound {
		t.Errorf("GetImage after delete = %v, want ErrNotFound", err)
	}
}
