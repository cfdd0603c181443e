package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/rental-booking/internal/models"
	"github.com/BruksfildServices01/rental-booking/internal/testutil"
)

func listIDs(t *testing.T, body map[string]any) []uint {
	t.Helper()

	data, ok := body["data"].([]any)
	if !ok {
		t.Fatalf("no data list in %v", body)
	}
	ids := make([]uint, 0, len(data))
	for _, item := range data {
		ids = append(ids, uint(item.(map[string]any)["id"].(float64)))
	}
	return ids
}

func TestPropertyHandler_AmenitiesAndSearch(t *testing.T) {
	s := newTestServer(t)
	amenitiesPath := fmt.Sprintf("/api/properties/%d/amenities", s.property.ID)

	w, _ := s.do(http.MethodPut, amenitiesPath, s.guest, gin.H{"amenities": []gin.H{{"name": "WiFi"}}})
	if w.Code != http.StatusForbidden {
		t.Errorf("non-host = %d, want 403", w.Code)
	}

	w, body := s.do(http.MethodPut, amenitiesPath, s.host, gin.H{
		"amenities": []gin.H{{"name": "WiFi", "icon": "wifi"}, {"name": "Pool"}},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("add amenities = %d %s", w.Code, w.Body.String())
	}
	if got := body["data"].(map[string]any)["amenities"].([]any); len(got) != 2 {
		t.Fatalf("amenities = %v", got)
	}

	// linking again is a no-op
	w, _ = s.do(http.MethodPut, amenitiesPath, s.host, gin.H{"amenities": []gin.H{{"name": "wifi"}}})
	if w.Code != http.StatusOK {
		t.Fatalf("re-add = %d", w.Code)
	}
	var catalogue int64
	s.db.Model(&models.Amenity{}).Count(&catalogue)
	if catalogue != 2 {
		t.Errorf("amenities catalogue = %d, want 2", catalogue)
	}

	other := testutil.SeedProperty(t, s.db, s.host.ID, 90, models.PropertyStatusActive)
	testutil.SeedProperty(t, s.db, s.host.ID, 90, models.PropertyStatusInactive)

	w, body = s.do(http.MethodGet, "/api/properties", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list = %d", w.Code)
	}
	if ids := listIDs(t, body); len(ids) != 2 || ids[0] != s.property.ID || ids[1] != other.ID {
		t.Errorf("active listing = %v", ids)
	}

	var wifi models.Amenity
	s.db.Where("name = ?", "wifi").First(&wifi)

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"amenity by name", "?amenities=WiFi", 1},
		{"amenity by id", fmt.Sprintf("?amenities=%d", wifi.ID), 1},
		{"any of several", "?amenities=sauna,pool", 1},
		{"unknown amenity", "?amenities=sauna", 0},
		{"location term", "?location=mar%20del", 2},
		{"location miss", "?location=neuquen", 0},
		{"type", "?type=apartment", 2},
		{"type miss", "?type=villa", 0},
		{"inactive", "?status=inactive", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := s.do(http.MethodGet, "/api/properties"+tt.query, nil, nil)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d", w.Code)
			}
			if ids := listIDs(t, body); len(ids) != tt.want {
				t.Errorf("got %v, want %d properties", ids, tt.want)
			}
		})
	}

	w, _ = s.do(http.MethodGet, "/api/properties?status=closed", nil, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown status = %d, want 400", w.Code)
	}

	w, body = s.do(http.MethodGet, "/api/amenities", nil, nil)
	if w.Code != http.StatusOK || body["total"] != float64(2) {
		t.Errorf("amenities catalogue = %d %v", w.Code, body)
	}

	removePath := fmt.Sprintf("/api/properties/%d/amenities/%d", s.property.ID, wifi.ID)
	w, _ = s.do(http.MethodDelete, removePath, s.host, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("remove amenity = %d", w.Code)
	}
	w, _ = s.do(http.MethodDelete, removePath, s.host, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("remove unlinked amenity = %d, want 404", w.Code)
	}
}

func TestPropertyHandler_Policies(t *testing.T) {
	s := newTestServer(t)
	path := fmt.Sprintf("/api/properties/%d/policies", s.property.ID)

	w, _ := s.do(http.MethodPut, path, s.host, gin.H{
		"policies": []gin.H{{"name": "No smoking", "valid_until": "next week"}},
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad valid_until = %d, want 400", w.Code)
	}

	w, body := s.do(http.MethodPut, path, s.host, gin.H{
		"policies": []gin.H{
			{"name": "No smoking"},
			{"name": "Quiet hours", "description": "22:00 to 08:00", "valid_until": "2025-12-31"},
		},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("add policies = %d %s", w.Code, w.Body.String())
	}
	policies := body["data"].(map[string]any)["policies"].([]any)
	if len(policies) != 2 {
		t.Fatalf("policies = %v", policies)
	}
	first := uint(policies[0].(map[string]any)["id"].(float64))

	w, _ = s.do(http.MethodDelete, fmt.Sprintf("%s/%d", path, first), s.guest, nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("non-host remove = %d, want 403", w.Code)
	}

	w, _ = s.do(http.MethodDelete, fmt.Sprintf("%s/%d", path, first), s.host, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("remove policy = %d", w.Code)
	}

	var n int64
	s.db.Model(&models.Policy{}).Where("id = ?", first).Count(&n)
	if n != 0 {
		t.Errorf("removed policy row still exists")
	}

	w, _ = s.do(http.MethodDelete, fmt.Sprintf("%s/%d", path, first), s.host, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("second remove = %d, want 404", w.Code)
	}
}

func TestPropertyHandler_UpdateLocation(t *testing.T) {
	s := newTestServer(t)
	path := fmt.Sprintf("/api/properties/%d/location", s.property.ID)

	w, _ := s.do(http.MethodPut, path, s.host, gin.H{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("empty update = %d, want 400", w.Code)
	}

	w, _ = s.do(http.MethodPut, path, s.guest, gin.H{"city": "Pinamar"})
	if w.Code != http.StatusForbidden {
		t.Errorf("non-host = %d, want 403", w.Code)
	}

	w, body := s.do(http.MethodPut, path, s.host, gin.H{"city": "Pinamar"})
	if w.Code != http.StatusOK {
		t.Fatalf("update = %d %s", w.Code, w.Body.String())
	}
	loc := body["data"].(map[string]any)
	if loc["city"] != "Pinamar" || loc["country"] != "Argentina" {
		t.Errorf("location = %v", loc)
	}
}
