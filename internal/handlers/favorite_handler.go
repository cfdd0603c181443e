package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/rental-booking/internal/httperr"
	"github.com/BruksfildServices01/rental-booking/internal/httpresp"
	ucFavorite "github.com/BruksfildServices01/rental-booking/internal/usecase/favorite"
)

type FavoriteHandler struct {
	add    *ucFavorite.AddFavorite
	remove *ucFavorite.RemoveFavorite
	list   *ucFavorite.ListUserFavorites
}

func NewFavoriteHandler(
	add *ucFavorite.AddFavorite,
	remove *ucFavorite.RemoveFavorite,
	list *ucFavorite.ListUserFavorites,
) *FavoriteHandler {
	return &FavoriteHandler{add: add, remove: remove, list: list}
}

type AddFavoriteRequest struct {
	PropertyID uint `json:"property_id" binding:"required"`
}

func (h *FavoriteHandler) Add(c *gin.Context) {
	var req AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	f, err := h.add.Execute(c.Request.Context(), currentUserID(c), req.PropertyID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, ucFavorite.MsgAdded, f)
}

func (h *FavoriteHandler) Remove(c *gin.Context) {
	propertyID, ok := uintParam(c, "propertyId")
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), currentUserID(c), propertyID); err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Message(c, http.StatusOK, ucFavorite.MsgRemoved, nil)
}

// ListByUser only lists the caller's own favorites.
func (h *FavoriteHandler) ListByUser(c *gin.Context) {
	userID, ok := uintParam(c, "userId")
	if !ok {
		return
	}

	if userID != currentUserID(c) {
		httperr.Forbidden(c, "forbidden", "You can only list your own favorites.")
		return
	}

	favorites, err := h.list.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, favorites)
}
