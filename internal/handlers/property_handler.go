package handlers

import (
	"errors"
	"slices"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/rental-booking/internal/audit"
	"github.com/BruksfildServices01/rental-booking/internal/httperr"
	"github.com/BruksfildServices01/rental-booking/internal/httpresp"
	"github.com/BruksfildServices01/rental-booking/internal/middleware"
	"github.com/BruksfildServices01/rental-booking/internal/models"
)

type auditDispatcher interface {
	Dispatch(ev audit.Event)
}

// ======================================================
// HANDLER
// ======================================================

type PropertyHandler struct {
	db    *gorm.DB
	audit auditDispatcher
}

func NewPropertyHandler(db *gorm.DB, audit auditDispatcher) *PropertyHandler {
	return &PropertyHandler{db: db, audit: audit}
}

// ======================================================
// REQUESTS
// ======================================================

type LocationRequest struct {
	Country  string `json:"country" binding:"required"`
	Province string `json:"province" binding:"required"`
	City     string `json:"city" binding:"required"`
	Address  string `json:"address" binding:"required"`
}

type CreatePropertyRequest struct {
	Name        string          `json:"name" binding:"required,max=150"`
	Description string          `json:"description"`
	BasePrice   float64         `json:"base_price" binding:"required,gt=0"`
	MaxGuests   int             `json:"max_guests" binding:"required,gt=0"`
	Type        string          `json:"type" binding:"omitempty,oneof=apartment house villa condo other"`
	Location    LocationRequest `json:"location" binding:"required"`
}

type UpdatePropertyStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *PropertyHandler) Create(c *gin.Context) {
	if c.GetString(middleware.ContextUserRole) != models.RoleHost {
		httperr.Forbidden(c, "host_only", "Only hosts can list properties.")
		return
	}

	var req CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	hostID := currentUserID(c)

	propertyType := req.Type
	if propertyType == "" {
		propertyType = "other"
	}

	property := models.Property{
		UserID:      hostID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		BasePrice:   req.BasePrice,
		MaxGuests:   req.MaxGuests,
		Type:        propertyType,
		Status:      models.PropertyStatusPending,
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		loc := models.Location{
			Country:  req.Location.Country,
			Province: req.Location.Province,
			City:     req.Location.City,
			Address:  req.Location.Address,
		}
		if err := tx.Create(&loc).Error; err != nil {
			return err
		}

		property.LocationID = loc.ID
		property.Location = &loc
		return tx.Omit("Location").Create(&property).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_create_property", "Could not create property.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &hostID,
		Action:   audit.ActionPropertyCreated,
		Entity:   "property",
		EntityID: &property.ID,
	})

	httpresp.Created(c, "Property created successfully", property)
}

// ======================================================
// READ
// ======================================================

func (h *PropertyHandler) Get(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var property models.Property
	err := withDetails(h.db.WithContext(c.Request.Context())).First(&property, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "property_not_found", "Property not found.")
			return
		}
		httperr.Internal(c, "failed_to_load_property", "Could not load property.")
		return
	}

	httpresp.OK(c, gin.H{"data": property})
}

// List returns properties filtered by status (active by default), type,
// a location term matched against country, province, city and address,
// and amenities (names or ids; a property matches when it has any of them).
func (h *PropertyHandler) List(c *gin.Context) {
	status := c.DefaultQuery("status", models.PropertyStatusActive)
	if !slices.Contains(models.PropertyStatuses, status) {
		httperr.BadRequest(c, "invalid_status", "Status must be one of active, inactive, pending, maintenance.")
		return
	}

	q := withDetails(h.db.WithContext(c.Request.Context())).
		Where("properties.status = ?", status)

	if t := strings.TrimSpace(c.Query("type")); t != "" {
		q = q.Where("properties.type = ?", t)
	}

	if term := strings.ToLower(strings.TrimSpace(c.Query("location"))); term != "" {
		like := "%" + term + "%"
		locations := h.db.Model(&models.Location{}).
			Select("id").
			Where("LOWER(country) LIKE ? OR LOWER(province) LIKE ? OR LOWER(city) LIKE ? OR LOWER(address) LIKE ?",
				like, like, like, like)
		q = q.Where("properties.location_id IN (?)", locations)
	}

	if raw := strings.TrimSpace(c.Query("amenities")); raw != "" {
		names, ids := splitAmenityRefs(raw)
		withAmenity := h.db.Table("property_amenities").
			Select("property_amenities.property_id").
			Joins("JOIN amenities ON amenities.id = property_amenities.amenity_id").
			Where("LOWER(amenities.name) IN ? OR amenities.id IN ?", names, ids)
		q = q.Where("properties.id IN (?)", withAmenity)
	}

	properties := []models.Property{}
	if err := q.Order("properties.id ASC").Find(&properties).Error; err != nil {
		httperr.Internal(c, "failed_to_list_properties", "Could not list properties.")
		return
	}

	httpresp.List(c, properties)
}

// splitAmenityRefs splits a comma list into lowercased names and numeric ids.
// Numbers are kept as names too, an amenity may be called "24".
func splitAmenityRefs(raw string) ([]string, []uint) {
	var (
		names []string
		ids   []uint
	)
	for _, part := range strings.Split(raw, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		names = append(names, part)
		if id, err := strconv.ParseUint(part, 10, 64); err == nil && id > 0 {
			ids = append(ids, uint(id))
		}
	}
	return names, ids
}

func withDetails(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Location").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("is_primary DESC, id ASC")
		}).
		Preload("Amenities", func(db *gorm.DB) *gorm.DB {
			return db.Order("amenities.name ASC")
		}).
		Preload("Policies", func(db *gorm.DB) *gorm.DB {
			return db.Order("policies.id ASC")
		})
}

// ======================================================
// STATUS
// ======================================================

func (h *PropertyHandler) UpdateStatus(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var req UpdatePropertyStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}
	if !slices.Contains(models.PropertyStatuses, req.Status) {
		httperr.BadRequest(c, "invalid_status", "Status must be one of active, inactive, pending, maintenance.")
		return
	}

	property, ok := h.loadOwned(c, id)
	if !ok {
		return
	}

	previous := property.Status
	if err := h.db.Model(property).Update("status", req.Status).Error; err != nil {
		httperr.Internal(c, "failed_to_update_property", "Could not update property.")
		return
	}

	userID := currentUserID(c)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   audit.ActionPropertyStatusUpdated,
		Entity:   "property",
		EntityID: &property.ID,
		Metadata: map[string]any{"from": previous, "to": req.Status},
	})

	httpresp.OK(c, gin.H{"data": property})
}

// loadOwned fetches the property and checks the caller is its host.
func (h *PropertyHandler) loadOwned(c *gin.Context, id uint) (*models.Property, bool) {
	var property models.Property
	if err := h.db.First(&property, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "property_not_found", "Property not found.")
			return nil, false
		}
		httperr.Internal(c, "failed_to_load_property", "Could not load property.")
		return nil, false
	}

	if property.UserID != currentUserID(c) {
		httperr.Forbidden(c, "not_property_host", "Only the host can change this property.")
		return nil, false
	}

	return &property, true
}
