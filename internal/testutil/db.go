package testutil

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/rental-booking/internal/db"
	"github.com/BruksfildServices01/rental-booking/internal/models"
)

// NewSQLiteDB returns a migrated in-memory database private to the test.
func NewSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC() },
		Logger:  gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}
	// every :memory: connection is its own database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return gdb
}

func SeedUser(t *testing.T, gdb *gorm.DB, email, role string) *models.User {
	t.Helper()

	u := &models.User{
		Name:         "User " + email,
		Email:        email,
		PasswordHash: "x",
		Role:         role,
	}
	if err := gdb.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedProperty(t *testing.T, gdb *gorm.DB, hostID uint, basePrice float64, status string) *models.Property {
	t.Helper()

	loc := &models.Location{
		Country:  "Argentina",
		Province: "Buenos Aires",
		City:     "Mar del Plata",
		Address:  "Av. Colón 1234",
	}
	if err := gdb.Create(loc).Error; err != nil {
		t.Fatalf("seed location: %v", err)
	}

	p := &models.Property{
		UserID:     hostID,
		LocationID: loc.ID,
		Name:       "Seaside flat",
		BasePrice:  basePrice,
		MaxGuests:  4,
		Type:       "apartment",
		Status:     status,
	}
	if err := gdb.Create(p).Error; err != nil {
		t.Fatalf("seed property: %v", err)
	}
	return p
}

func Date(t *testing.T, raw string) time.Time {
	t.Helper()

	d, err := time.Parse("2006-01-02", raw)
	if err != nil {
		t.Fatalf("parse %q: %v", raw, err)
	}
	return d.UTC()
}
