package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/rental-booking/internal/httperr"
	"github.com/BruksfildServices01/rental-booking/internal/httpresp"
	ucReview "github.com/BruksfildServices01/rental-booking/internal/usecase/review"
)

// ======================================================
// HANDLER
// ======================================================

type ReviewHandler struct {
	create *ucReview.CreateReview
	list   *ucReview.ListPropertyReviews
	update *ucReview.UpdateReview
	remove *ucReview.DeleteReview
}

func NewReviewHandler(
	create *ucReview.CreateReview,
	list *ucReview.ListPropertyReviews,
	update *ucReview.UpdateReview,
	remove *ucReview.DeleteReview,
) *ReviewHandler {
	return &ReviewHandler{
		create: create,
		list:   list,
		update: update,
		remove: remove,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateReviewRequest struct {
	PropertyID uint   `json:"property_id" binding:"required"`
	Rating     int    `json:"rating" binding:"required,min=1,max=5"`
	Comment    string `json:"comment" binding:"required"`
}

type UpdateReviewRatingRequest struct {
	Rating int `json:"rating" binding:"required,min=1,max=5"`
}

type UpdateReviewCommentRequest struct {
	Comment string `json:"comment" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *ReviewHandler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	r, err := h.create.Execute(c.Request.Context(), ucReview.CreateReviewInput{
		PropertyID: req.PropertyID,
		UserID:     currentUserID(c),
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, ucReview.MsgCreated, r)
}

// ======================================================
// READ
// ======================================================

func (h *ReviewHandler) ListByProperty(c *gin.Context) {
	propertyID, ok := uintParam(c, "propertyId")
	if !ok {
		return
	}

	reviews, err := h.list.Execute(c.Request.Context(), propertyID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, reviews)
}

// ======================================================
// UPDATE / DELETE
// ======================================================

func (h *ReviewHandler) UpdateRating(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var req UpdateReviewRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	h.apply(c, ucReview.UpdateReviewInput{ReviewID: id, UserID: currentUserID(c), Rating: &req.Rating})
}

func (h *ReviewHandler) UpdateComment(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var req UpdateReviewCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	h.apply(c, ucReview.UpdateReviewInput{ReviewID: id, UserID: currentUserID(c), Comment: &req.Comment})
}

func (h *ReviewHandler) apply(c *gin.Context, in ucReview.UpdateReviewInput) {
	r, err := h.update.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Message(c, http.StatusOK, ucReview.MsgUpdated, gin.H{"data": r})
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), id, currentUserID(c)); err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Message(c, http.StatusOK, ucReview.MsgDeleted, nil)
}
