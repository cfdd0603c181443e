package handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/rental-booking/internal/logger"
	"github.com/BruksfildServices01/rental-booking/internal/middleware"
	"github.com/BruksfildServices01/rental-booking/internal/models"
)

type memoryStore struct {
	objects map[string][]byte
	types   map[string]string

	// failOnPut makes the nth Put (1-based) fail; zero never fails
	failOnPut int
	puts      int
	deleted   []string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{objects: map[string][]byte{}, types: map[string]string{}}
}

func (m *memoryStore) Put(_ context.Context, key, contentType string, body io.Reader) (string, error) {
	m.puts++
	if m.failOnPut > 0 && m.puts == m.failOnPut {
		return "", errors.New("bucket unavailable")
	}

	b, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	m.objects[key] = b
	m.types[key] = contentType
	return "https://cdn.test/" + key, nil
}

func (m *memoryStore) Delete(_ context.Context, key string) error {
	delete(m.objects, key)
	delete(m.types, key)
	m.deleted = append(m.deleted, key)
	return nil
}

func pngBytes(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatalf("png: %v", err)
	}
	return buf.Bytes()
}

func multipartUpload(t *testing.T, files int, fields map[string][]string) (*bytes.Buffer, string) {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for i := 0; i < files; i++ {
		fw, err := mw.CreateFormFile("images", fmt.Sprintf("photo-%d.png", i))
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		fw.Write(pngBytes(t))
	}
	for k, vs := range fields {
		for _, v := range vs {
			mw.WriteField(k, v)
		}
	}
	mw.Close()
	return &body, mw.FormDataContentType()
}

func TestPropertyImageHandler_Upload(t *testing.T) {
	s := newTestServer(t)
	store := newMemoryStore()
	h := NewPropertyImageHandler(s.db, store, noAudit{}, logger.Discard())
	s.engine.POST("/api/properties/:id/images", middleware.AuthMiddleware(s.cfg), h.Upload)

	path := fmt.Sprintf("/api/properties/%d/images", s.property.ID)
	send := func(as *models.User, files int, fields map[string][]string) *httptest.ResponseRecorder {
		body, contentType := multipartUpload(t, files, fields)
		req := httptest.NewRequest(http.MethodPost, path, body)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("Authorization", "Bearer "+s.tokenFor(as))
		w := httptest.NewRecorder()
		s.engine.ServeHTTP(w, req)
		return w
	}

	w := send(s.host, 2, map[string][]string{"image_type": {"bedroom"}})
	if w.Code != http.StatusBadRequest {
		t.Errorf("count mismatch = %d, want 400", w.Code)
	}

	w = send(s.guest, 1, map[string][]string{"image_type": {"bedroom"}})
	if w.Code != http.StatusForbidden {
		t.Errorf("non-host upload = %d, want 403", w.Code)
	}

	w = send(s.host, 2, map[string][]string{
		"image_type": {"bedroom", "kitchen"},
		"caption":    {"Main bedroom", "Kitchen"},
		"is_primary": {"true", "true"},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("upload = %d %s", w.Code, w.Body.String())
	}

	var images []models.PropertyImage
	if err := s.db.Where("property_id = ?", s.property.ID).Order("id ASC").Find(&images).Error; err != nil {
		t.Fatalf("load images: %v", err)
	}
	if len(images) != 2 {
		t.Fatalf("images = %d, want 2", len(images))
	}
	if !images[0].IsPrimary || images[1].IsPrimary {
		t.Errorf("exactly the first image should be primary: %+v", images)
	}
	for _, img := range images {
		if store.types[img.ObjectKey] != "image/webp" {
			t.Errorf("object %s stored as %q", img.ObjectKey, store.types[img.ObjectKey])
		}
	}
}

func uploadAs(t *testing.T, s *testServer, h *PropertyImageHandler, files int, fields map[string][]string) *httptest.ResponseRecorder {
	t.Helper()

	s.engine.POST("/api/properties/:id/images", middleware.AuthMiddleware(s.cfg), h.Upload)

	body, contentType := multipartUpload(t, files, fields)
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/properties/%d/images", s.property.ID), body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+s.tokenFor(s.host))
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func (s *testServer) countImages(t *testing.T) int64 {
	t.Helper()

	var n int64
	if err := s.db.Model(&models.PropertyImage{}).Count(&n).Error; err != nil {
		t.Fatalf("count images: %v", err)
	}
	return n
}

func TestPropertyImageHandler_StoreFailureRemovesUploaded(t *testing.T) {
	s := newTestServer(t)
	store := newMemoryStore()
	store.failOnPut = 2
	h := NewPropertyImageHandler(s.db, store, noAudit{}, logger.Discard())

	w := uploadAs(t, s, h, 3, map[string][]string{"image_type": {"bedroom", "kitchen", "exterior"}})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("upload = %d, want 500", w.Code)
	}

	if len(store.objects) != 0 {
		t.Errorf("orphaned objects left in store: %d", len(store.objects))
	}
	if len(store.deleted) != 1 {
		t.Errorf("deleted = %v, want the one stored object", store.deleted)
	}
	if store.puts != 2 {
		t.Errorf("puts = %d, upload should stop at the failure", store.puts)
	}
	if n := s.countImages(t); n != 0 {
		t.Errorf("images rows = %d, want 0", n)
	}
}

func TestPropertyImageHandler_SaveFailureRemovesUploaded(t *testing.T) {
	s := newTestServer(t)
	store := newMemoryStore()
	h := NewPropertyImageHandler(s.db, store, noAudit{}, logger.Discard())

	err := s.db.Callback().Create().Before("gorm:create").Register("fail_property_images", func(tx *gorm.DB) {
		if tx.Statement.Table == "property_images" {
			tx.AddError(errors.New("disk full"))
		}
	})
	if err != nil {
		t.Fatalf("register callback: %v", err)
	}

	w := uploadAs(t, s, h, 2, map[string][]string{"image_type": {"bedroom", "kitchen"}})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("upload = %d, want 500", w.Code)
	}

	if len(store.objects) != 0 || len(store.deleted) != 2 {
		t.Errorf("objects = %d, deleted = %v; want every stored object removed", len(store.objects), store.deleted)
	}
	if n := s.countImages(t); n != 0 {
		t.Errorf("images rows = %d, want 0", n)
	}
}

func TestPropertyImageHandler_BadImageStoresNothing(t *testing.T) {
	s := newTestServer(t)
	store := newMemoryStore()
	h := NewPropertyImageHandler(s.db, store, noAudit{}, logger.Discard())
	s.engine.POST("/api/properties/:id/images", middleware.AuthMiddleware(s.cfg), h.Upload)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	good, _ := mw.CreateFormFile("images", "good.png")
	good.Write(pngBytes(t))
	bad, _ := mw.CreateFormFile("images", "notes.png")
	bad.Write([]byte("not an image"))
	mw.WriteField("image_type", "bedroom")
	mw.WriteField("image_type", "kitchen")
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/properties/%d/images", s.property.ID), &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+s.tokenFor(s.host))
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("upload = %d, want 400", w.Code)
	}
	if store.puts != 0 {
		t.Errorf("puts = %d, nothing should be stored before every image decodes", store.puts)
	}
}
