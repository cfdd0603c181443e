package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestReviewHandler_Lifecycle(t *testing.T) {
	s := newTestServer(t)

	w, body := s.do(http.MethodPost, "/api/reviews", s.guest, gin.H{
		"property_id": s.property.ID,
		"rating":      5,
		"comment":     "Spotless",
	})
	if w.Code != http.StatusBadRequest || body["error_code"] != "no_confirmed_booking" {
		t.Fatalf("review without stay = %d %v, want 400 no_confirmed_booking", w.Code, body)
	}

	s.createBooking("2024-06-01", "2024-06-04")

	w, body = s.do(http.MethodPost, "/api/reviews", s.guest, gin.H{
		"property_id": s.property.ID,
		"rating":      5,
		"comment":     "Spotless",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create = %d %s", w.Code, w.Body.String())
	}
	data := body["data"].(map[string]any)
	if data["booking_id"] == nil || data["rating"] != float64(5) {
		t.Errorf("review = %v", data)
	}
	id := uint(data["id"].(float64))

	w, _ = s.do(http.MethodPost, "/api/reviews", s.guest, gin.H{
		"property_id": s.property.ID,
		"rating":      4,
		"comment":     "Second thoughts",
	})
	if w.Code != http.StatusConflict {
		t.Errorf("second review = %d, want 409", w.Code)
	}

	w, _ = s.do(http.MethodPut, fmt.Sprintf("/api/reviews/%d/rating", id), s.guest, gin.H{"rating": 6})
	if w.Code != http.StatusBadRequest {
		t.Errorf("rating 6 = %d, want 400", w.Code)
	}

	w, _ = s.do(http.MethodPut, fmt.Sprintf("/api/reviews/%d/rating", id), s.host, gin.H{"rating": 1})
	if w.Code != http.StatusNotFound {
		t.Errorf("someone else's review = %d, want 404", w.Code)
	}

	w, body = s.do(http.MethodPut, fmt.Sprintf("/api/reviews/%d/rating", id), s.guest, gin.H{"rating": 3})
	if w.Code != http.StatusOK || body["data"].(map[string]any)["rating"] != float64(3) {
		t.Fatalf("update rating = %d %v", w.Code, body)
	}

	w, body = s.do(http.MethodPut, fmt.Sprintf("/api/reviews/%d/comment", id), s.guest, gin.H{"comment": "Good value"})
	if w.Code != http.StatusOK || body["data"].(map[string]any)["comment"] != "Good value" {
		t.Fatalf("update comment = %d %v", w.Code, body)
	}

	w, body = s.do(http.MethodGet, fmt.Sprintf("/api/reviews/property/%d", s.property.ID), nil, nil)
	if w.Code != http.StatusOK || body["total"] != float64(1) {
		t.Fatalf("list = %d %v", w.Code, body)
	}

	w, _ = s.do(http.MethodDelete, fmt.Sprintf("/api/reviews/%d", id), s.guest, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete = %d", w.Code)
	}
	w, _ = s.do(http.MethodDelete, fmt.Sprintf("/api/reviews/%d", id), s.guest, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("second delete = %d, want 404", w.Code)
	}

	w, _ = s.do(http.MethodGet, "/api/reviews/property/999", nil, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("reviews of missing property = %d, want 404", w.Code)
	}
}

func TestReviewHandler_CancelledStayCannotReview(t *testing.T) {
	s := newTestServer(t)
	id := s.createBooking("2024-06-01", "2024-06-04")

	w, _ := s.do(http.MethodPost, "/api/bookings/cancel", s.guest, gin.H{"booking_id": id})
	if w.Code != http.StatusOK {
		t.Fatalf("cancel = %d", w.Code)
	}

	w, body := s.do(http.MethodPost, "/api/reviews", s.guest, gin.H{
		"property_id": s.property.ID,
		"rating":      2,
		"comment":     "Never went",
	})
	if w.Code != http.StatusBadRequest || body["error_code"] != "no_confirmed_booking" {
		t.Errorf("review after cancel = %d %v", w.Code, body)
	}
}
