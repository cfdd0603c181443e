package handlers

import (
	"bytes"
	"context"
	"net/http"
	"path"
	"slices"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/rental-booking/internal/audit"
	"github.com/BruksfildServices01/rental-booking/internal/httperr"
	"github.com/BruksfildServices01/rental-booking/internal/httpresp"
	"github.com/BruksfildServices01/rental-booking/internal/logger"
	"github.com/BruksfildServices01/rental-booking/internal/models"
	"github.com/BruksfildServices01/rental-booking/internal/storage"
)

const (
	maxImagesPerUpload = 10
	maxImageBytes      = 8 << 20
	webpQuality        = 82
)

type PropertyImageHandler struct {
	properties *PropertyHandler
	db         *gorm.DB
	store      storage.ImageStore
	audit      auditDispatcher
	log        *logger.Logger
}

func NewPropertyImageHandler(
	db *gorm.DB,
	store storage.ImageStore,
	audit auditDispatcher,
	log *logger.Logger,
) *PropertyImageHandler {
	return &PropertyImageHandler{
		properties: NewPropertyHandler(db, audit),
		db:         db,
		store:      store,
		audit:      audit,
		log:        log,
	}
}

// Upload accepts multipart images[] with parallel image_type[], caption[] and is_primary[].
// Images are stored as webp.
func (h *PropertyImageHandler) Upload(c *gin.Context) {
	if h.store == nil {
		httperr.Write(c, http.StatusServiceUnavailable, "image_storage_unavailable", "Image storage is not configured.")
		return
	}

	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "Expected a multipart form.")
		return
	}

	files := form.File["images"]
	types := form.Value["image_type"]
	captions := form.Value["caption"]
	primaries := form.Value["is_primary"]

	switch {
	case len(files) == 0:
		httperr.BadRequest(c, "no_images", "At least one image is required.")
		return
	case len(files) > maxImagesPerUpload:
		httperr.BadRequest(c, "too_many_images", "At most "+strconv.Itoa(maxImagesPerUpload)+" images per upload.")
		return
	case len(types) != len(files):
		httperr.BadRequest(c, "image_count_mismatch", "Each image needs an image_type.")
		return
	case len(captions) > 0 && len(captions) != len(files):
		httperr.BadRequest(c, "image_count_mismatch", "Captions must match the number of images.")
		return
	case len(primaries) > 0 && len(primaries) != len(files):
		httperr.BadRequest(c, "image_count_mismatch", "is_primary must match the number of images.")
		return
	}

	for _, t := range types {
		if !slices.Contains(models.ImageTypes, t) {
			httperr.BadRequest(c, "invalid_image_type", "Unknown image type "+t+".")
			return
		}
	}

	property, ok := h.properties.loadOwned(c, id)
	if !ok {
		return
	}

	// --------------------------------------------------
	// Encode everything before touching the store
	// --------------------------------------------------
	encoded := make([][]byte, len(files))
	for i, fh := range files {
		if fh.Size > maxImageBytes {
			httperr.BadRequest(c, "image_too_large", fh.Filename+" exceeds the size limit.")
			return
		}

		f, err := fh.Open()
		if err != nil {
			httperr.BadRequest(c, "invalid_image", "Could not read "+fh.Filename+".")
			return
		}
		encoded[i], err = storage.ToWebP(f, webpQuality)
		f.Close()
		if err != nil {
			httperr.BadRequest(c, "invalid_image", fh.Filename+" is not a supported image.")
			return
		}
	}

	// --------------------------------------------------
	// Upload, then persist; stored objects are removed on failure
	// --------------------------------------------------
	ctx := c.Request.Context()
	images := make([]models.PropertyImage, 0, len(files))
	uploaded := make([]string, 0, len(files))
	primarySet := false // one primary per property
	for i, fh := range files {
		name := strings.TrimSuffix(fh.Filename, path.Ext(fh.Filename)) + ".webp"
		key := storage.PropertyImageKey(property.ID, name)

		url, err := h.store.Put(ctx, key, storage.WebPContentType, bytes.NewReader(encoded[i]))
		if err != nil {
			h.log.Error("image upload failed", "property_id", property.ID, "key", key, "error", err)
			h.discard(ctx, uploaded)
			httperr.Internal(c, "image_upload_failed", "Could not store image.")
			return
		}
		uploaded = append(uploaded, key)

		img := models.PropertyImage{
			PropertyID: property.ID,
			ImageURL:   url,
			ObjectKey:  key,
			ImageType:  types[i],
		}
		if len(captions) > 0 {
			img.Caption = captions[i]
		}
		if len(primaries) > 0 && !primarySet {
			img.IsPrimary, _ = strconv.ParseBool(primaries[i])
			primarySet = img.IsPrimary
		}
		images = append(images, img)
	}

	err = h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if primarySet {
			if err := tx.Model(&models.PropertyImage{}).
				Where("property_id = ?", property.ID).
				Update("is_primary", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(&images).Error
	})
	if err != nil {
		h.log.Error("saving images failed", "property_id", property.ID, "error", err)
		h.discard(ctx, uploaded)
		httperr.Internal(c, "failed_to_save_images", "Could not save images.")
		return
	}

	userID := currentUserID(c)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   audit.ActionPropertyImagesAdded,
		Entity:   "property",
		EntityID: &property.ID,
		Metadata: map[string]any{"count": len(images)},
	})

	httpresp.Created(c, "Images uploaded successfully", images)
}

// discard removes objects stored by a failed upload. It outlives a cancelled request.
func (h *PropertyImageHandler) discard(ctx context.Context, keys []string) {
	ctx = context.WithoutCancel(ctx)
	for _, key := range keys {
		if err := h.store.Delete(ctx, key); err != nil {
			h.log.Warn("orphaned image object", "key", key, "error", err)
		}
	}
}
