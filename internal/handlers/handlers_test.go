package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/rental-booking/internal/audit"
	"github.com/BruksfildServices01/rental-booking/internal/config"
	"github.com/BruksfildServices01/rental-booking/internal/infra/lock"
	infraRepo "github.com/BruksfildServices01/rental-booking/internal/infra/repository"
	"github.com/BruksfildServices01/rental-booking/internal/logger"
	"github.com/BruksfildServices01/rental-booking/internal/middleware"
	"github.com/BruksfildServices01/rental-booking/internal/models"
	"github.com/BruksfildServices01/rental-booking/internal/testutil"
	ucBooking "github.com/BruksfildServices01/rental-booking/internal/usecase/booking"
	ucFavorite "github.com/BruksfildServices01/rental-booking/internal/usecase/favorite"
	ucReview "github.com/BruksfildServices01/rental-booking/internal/usecase/review"
	"github.com/BruksfildServices01/rental-booking/internal/validators"
)

type testServer struct {
	t        *testing.T
	db       *gorm.DB
	cfg      *config.Config
	engine   *gin.Engine
	auth     *AuthHandler
	host     *models.User
	guest    *models.User
	property *models.Property
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	gin.SetMode(gin.TestMode)
	if err := validators.RegisterBindings(); err != nil {
		t.Fatalf("RegisterBindings: %v", err)
	}

	gdb := testutil.NewSQLiteDB(t)
	cfg := &config.Config{JWTSecret: "test-secret"}
	log := logger.Discard()
	repo := infraRepo.NewBookingGormRepository(gdb)

	bookings := NewBookingHandler(
		ucBooking.NewCreateBooking(repo, lock.Nop{}, nil, log, time.Second),
		ucBooking.NewGetBooking(repo),
		ucBooking.NewUpdateBookingStatus(repo, nil, log),
		ucBooking.NewListUserBookings(repo),
		ucBooking.NewCancelBooking(repo, nil, log),
	)
	auth := NewAuthHandler(gdb, cfg)
	auth.emailDomainValid = func(context.Context, string) bool { return true }
	properties := NewPropertyHandler(gdb, noAudit{})

	reviewRepo := infraRepo.NewReviewGormRepository(gdb)
	reviews := NewReviewHandler(
		ucReview.NewCreateReview(reviewRepo, repo, nil, log),
		ucReview.NewListPropertyReviews(reviewRepo, repo),
		ucReview.NewUpdateReview(reviewRepo, nil, log),
		ucReview.NewDeleteReview(reviewRepo, nil, log),
	)
	favoriteRepo := infraRepo.NewFavoriteGormRepository(gdb)
	favorites := NewFavoriteHandler(
		ucFavorite.NewAddFavorite(favoriteRepo, repo, nil, log),
		ucFavorite.NewRemoveFavorite(favoriteRepo, nil, log),
		ucFavorite.NewListUserFavorites(favoriteRepo),
	)

	r := gin.New()
	api := r.Group("/api")
	api.POST("/auth/register", auth.Register)
	api.POST("/auth/login", auth.Login)
	api.GET("/properties", properties.List)
	api.GET("/properties/:id", properties.Get)
	api.GET("/amenities", properties.ListAmenities)
	api.GET("/reviews/property/:propertyId", reviews.ListByProperty)

	secured := api.Group("/")
	secured.Use(middleware.AuthMiddleware(cfg))
	secured.GET("/me", NewMeHandler(gdb).GetMe)
	secured.POST("/properties", properties.Create)
	secured.PATCH("/properties/:id/status", properties.UpdateStatus)
	secured.PUT("/properties/:id/location", properties.UpdateLocation)
	secured.PUT("/properties/:id/amenities", properties.AddAmenities)
	secured.DELETE("/properties/:id/amenities/:amenityId", properties.RemoveAmenity)
	secured.PUT("/properties/:id/policies", properties.AddPolicies)
	secured.DELETE("/properties/:id/policies/:policyId", properties.RemovePolicy)
	secured.POST("/bookings", bookings.Create)
	secured.POST("/bookings/cancel", bookings.Cancel)
	secured.GET("/bookings/user/:userId", bookings.ListByUser)
	secured.GET("/bookings/:id", bookings.Get)
	secured.PUT("/bookings/:id/status", bookings.UpdateStatus)
	secured.POST("/reviews", reviews.Create)
	secured.PUT("/reviews/:id/rating", reviews.UpdateRating)
	secured.PUT("/reviews/:id/comment", reviews.UpdateComment)
	secured.DELETE("/reviews/:id", reviews.Delete)
	secured.POST("/favorites", favorites.Add)
	secured.DELETE("/favorites/:propertyId", favorites.Remove)
	secured.GET("/favorites/user/:userId", favorites.ListByUser)

	host := testutil.SeedUser(t, gdb, "host@example.com", models.RoleHost)
	guest := testutil.SeedUser(t, gdb, "guest@example.com", models.RoleGuest)

	return &testServer{
		t:        t,
		db:       gdb,
		cfg:      cfg,
		engine:   r,
		auth:     auth,
		host:     host,
		guest:    guest,
		property: testutil.SeedProperty(t, gdb, host.ID, 100, models.PropertyStatusActive),
	}
}

func (s *testServer) tokenFor(u *models.User) string {
	s.t.Helper()

	tok, err := middleware.IssueToken(s.cfg.JWTSecret, u.ID, u.Role, time.Hour)
	if err != nil {
		s.t.Fatalf("IssueToken: %v", err)
	}
	return tok
}

func (s *testServer) do(method, path string, as *models.User, body any) (*httptest.ResponseRecorder, map[string]any) {
	s.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			s.t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if as != nil {
		req.Header.Set("Authorization", "Bearer "+s.tokenFor(as))
	}

	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	out := map[string]any{}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w, out
}

func (s *testServer) createBooking(in, out string) uint {
	s.t.Helper()

	w, body := s.do(http.MethodPost, "/api/bookings", s.guest, gin.H{
		"property_id": s.property.ID,
		"check_in":    in,
		"check_out":   out,
		"guests":      2,
	})
	if w.Code != http.StatusCreated {
		s.t.Fatalf("create booking: %d %s", w.Code, w.Body.String())
	}
	data := body["data"].(map[string]any)
	return uint(data["id"].(float64))
}

type noAudit struct{}

func (noAudit) Dispatch(audit.Event) {}
