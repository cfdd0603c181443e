package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/rental-booking/internal/audit"
	"github.com/BruksfildServices01/rental-booking/internal/domain/booking"
	"github.com/BruksfildServices01/rental-booking/internal/httperr"
	"github.com/BruksfildServices01/rental-booking/internal/httpresp"
	"github.com/BruksfildServices01/rental-booking/internal/models"
)

// ======================================================
// REQUESTS
// ======================================================

type UpdateLocationRequest struct {
	Country  string `json:"country" binding:"omitempty,max=100"`
	Province string `json:"province" binding:"omitempty,max=100"`
	City     string `json:"city" binding:"omitempty,max=100"`
	Address  string `json:"address" binding:"omitempty,max=255"`
}

type AmenityRequest struct {
	Name string `json:"name" binding:"required,max=100"`
	Icon string `json:"icon" binding:"omitempty,max=100"`
}

type AddAmenitiesRequest struct {
	Amenities []AmenityRequest `json:"amenities" binding:"required,min=1,dive"`
}

type PolicyRequest struct {
	Name        string `json:"name" binding:"required,max=150"`
	Description string `json:"description"`
	ValidUntil  string `json:"valid_until" binding:"omitempty,booking_date"`
}

type AddPoliciesRequest struct {
	Policies []PolicyRequest `json:"policies" binding:"required,min=1,dive"`
}

// ======================================================
// LOCATION
// ======================================================

// UpdateLocation overwrites only the fields sent.
func (h *PropertyHandler) UpdateLocation(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var req UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	fields := map[string]any{}
	for column, value := range map[string]string{
		"country":  req.Country,
		"province": req.Province,
		"city":     req.City,
		"address":  req.Address,
	} {
		if v := strings.TrimSpace(value); v != "" {
			fields[column] = v
		}
	}
	if len(fields) == 0 {
		httperr.BadRequest(c, "empty_update", "Nothing to update.")
		return
	}

	property, ok := h.loadOwned(c, id)
	if !ok {
		return
	}

	db := h.db.WithContext(c.Request.Context())
	if err := db.Model(&models.Location{}).Where("id = ?", property.LocationID).Updates(fields).Error; err != nil {
		httperr.Internal(c, "failed_to_update_location", "Could not update location.")
		return
	}

	var loc models.Location
	if err := db.First(&loc, property.LocationID).Error; err != nil {
		httperr.Internal(c, "failed_to_load_location", "Could not load location.")
		return
	}

	h.auditUpdate(c, property.ID, "location")

	httpresp.Message(c, http.StatusOK, "Location updated successfully", gin.H{"data": loc})
}

// ======================================================
// AMENITIES
// ======================================================

func (h *PropertyHandler) ListAmenities(c *gin.Context) {
	amenities := []models.Amenity{}
	if err := h.db.WithContext(c.Request.Context()).Order("name ASC").Find(&amenities).Error; err != nil {
		httperr.Internal(c, "failed_to_list_amenities", "Could not list amenities.")
		return
	}

	httpresp.List(c, amenities)
}

// AddAmenities links amenities by name, creating catalogue entries that do
// not exist yet. Already linked amenities are left as they are.
func (h *PropertyHandler) AddAmenities(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var req AddAmenitiesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	property, ok := h.loadOwned(c, id)
	if !ok {
		return
	}

	err := h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		linked := make([]models.Amenity, 0, len(req.Amenities))
		for _, a := range req.Amenities {
			name := strings.ToLower(strings.TrimSpace(a.Name))
			if name == "" {
				continue
			}

			amenity := models.Amenity{Name: name}
			if err := tx.Where("name = ?", name).
				Attrs(models.Amenity{Icon: a.Icon}).
				FirstOrCreate(&amenity).Error; err != nil {
				return err
			}
			linked = append(linked, amenity)
		}
		if len(linked) == 0 {
			return nil
		}
		return tx.Model(property).Association("Amenities").Append(&linked)
	})
	if err != nil {
		httperr.Internal(c, "failed_to_update_amenities", "Could not update amenities.")
		return
	}

	h.auditUpdate(c, property.ID, "amenities")
	h.respondWithProperty(c, property.ID, "Amenities updated successfully")
}

func (h *PropertyHandler) RemoveAmenity(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	amenityID, ok := uintParam(c, "amenityId")
	if !ok {
		return
	}

	property, ok := h.loadOwned(c, id)
	if !ok {
		return
	}

	db := h.db.WithContext(c.Request.Context())
	if !h.linked(c, db, "property_amenities", "amenity_id", property.ID, amenityID) {
		return
	}

	if err := db.Model(property).Association("Amenities").Delete(&models.Amenity{ID: amenityID}); err != nil {
		httperr.Internal(c, "failed_to_update_amenities", "Could not update amenities.")
		return
	}

	h.auditUpdate(c, property.ID, "amenities")
	httpresp.Message(c, http.StatusOK, "Amenity removed successfully", nil)
}

// ======================================================
// POLICIES
// ======================================================

func (h *PropertyHandler) AddPolicies(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var req AddPoliciesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	policies := make([]models.Policy, 0, len(req.Policies))
	for _, p := range req.Policies {
		policy := models.Policy{
			Name:        strings.TrimSpace(p.Name),
			Description: p.Description,
		}
		if p.ValidUntil != "" {
			until, err := booking.ParseDate(p.ValidUntil)
			if err != nil {
				httperr.FromError(c, err)
				return
			}
			policy.ValidUntil = &until
		}
		policies = append(policies, policy)
	}

	property, ok := h.loadOwned(c, id)
	if !ok {
		return
	}

	// Append inserts the new policies and their join rows together
	err := h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		return tx.Model(property).Association("Policies").Append(&policies)
	})
	if err != nil {
		httperr.Internal(c, "failed_to_update_policies", "Could not update policies.")
		return
	}

	h.auditUpdate(c, property.ID, "policies")
	h.respondWithProperty(c, property.ID, "Policies updated successfully")
}

// RemovePolicy unlinks the policy and deletes it; policies belong to one property.
func (h *PropertyHandler) RemovePolicy(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	policyID, ok := uintParam(c, "policyId")
	if !ok {
		return
	}

	property, ok := h.loadOwned(c, id)
	if !ok {
		return
	}

	db := h.db.WithContext(c.Request.Context())
	if !h.linked(c, db, "property_policies", "policy_id", property.ID, policyID) {
		return
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(property).Association("Policies").Delete(&models.Policy{ID: policyID}); err != nil {
			return err
		}
		return tx.Delete(&models.Policy{}, policyID).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_update_policies", "Could not update policies.")
		return
	}

	h.auditUpdate(c, property.ID, "policies")
	httpresp.Message(c, http.StatusOK, "Policy removed successfully", nil)
}

// ======================================================
// HELPERS
// ======================================================

// linked writes a 404 and returns false when the join row does not exist.
func (h *PropertyHandler) linked(c *gin.Context, db *gorm.DB, table, column string, propertyID, otherID uint) bool {
	var n int64
	err := db.Table(table).
		Where("property_id = ? AND "+column+" = ?", propertyID, otherID).
		Count(&n).Error
	if err != nil {
		httperr.Internal(c, "failed_to_load_property", "Could not load property.")
		return false
	}
	if n == 0 {
		httperr.NotFound(c, "not_linked", "It is not attached to this property.")
		return false
	}
	return true
}

func (h *PropertyHandler) respondWithProperty(c *gin.Context, id uint, message string) {
	var property models.Property
	if err := withDetails(h.db.WithContext(c.Request.Context())).First(&property, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "property_not_found", "Property not found.")
			return
		}
		httperr.Internal(c, "failed_to_load_property", "Could not load property.")
		return
	}

	httpresp.Message(c, http.StatusOK, message, gin.H{"data": property})
}

func (h *PropertyHandler) auditUpdate(c *gin.Context, propertyID uint, field string) {
	userID := currentUserID(c)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   audit.ActionPropertyUpdated,
		Entity:   "property",
		EntityID: &propertyID,
		Metadata: map[string]any{"field": field},
	})
}
