package favorite

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/rental-booking/internal/audit"
	"github.com/BruksfildServices01/rental-booking/internal/domain/booking"
	domain "github.com/BruksfildServices01/rental-booking/internal/domain/favorite"
	"github.com/BruksfildServices01/rental-booking/internal/httperr"
	"github.com/BruksfildServices01/rental-booking/internal/logger"
	"github.com/BruksfildServices01/rental-booking/internal/models"
)

const (
	MsgAdded   = "Property added to favorites"
	MsgRemoved = "Property removed from favorites"
)

// PropertyFinder is satisfied by the booking repository.
type PropertyFinder interface {
	FindProperty(ctx context.Context, id uint) (*models.Property, error)
}

type AuditSink interface {
	Dispatch(ev audit.Event)
}

type nopAudit struct{}

func (nopAudit) Dispatch(audit.Event) {}

// ======================================================
// ADD
// ======================================================

type AddFavorite struct {
	repo  domain.Repository
	props PropertyFinder
	audit AuditSink
	log   *logger.Logger
}

func NewAddFavorite(repo domain.Repository, props PropertyFinder, a AuditSink, log *logger.Logger) *AddFavorite {
	if a == nil {
		a = nopAudit{}
	}
	return &AddFavorite{repo: repo, props: props, audit: a, log: log}
}

func (uc *AddFavorite) Execute(ctx context.Context, userID, propertyID uint) (*models.Favorite, error) {
	ok, err := uc.repo.UserExists(ctx, userID)
	if err != nil {
		return nil, httperr.ErrInternal("store_failure", err)
	}
	if !ok {
		return nil, httperr.ErrNotFound("user_not_found", "User not found.")
	}

	if _, err := uc.props.FindProperty(ctx, propertyID); err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			return nil, httperr.ErrNotFound("property_not_found", "Property not found.")
		}
		return nil, httperr.ErrInternal("store_failure", err)
	}

	exists, err := uc.repo.Exists(ctx, userID, propertyID)
	if err != nil {
		return nil, httperr.ErrInternal("store_failure", err)
	}
	if exists {
		return nil, errAlreadyFavorite()
	}

	f := &models.Favorite{UserID: userID, PropertyID: propertyID}
	if err := uc.repo.Create(ctx, f); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, errAlreadyFavorite()
		}
		return nil, httperr.ErrInternal("store_failure", err)
	}

	uc.log.Info("favorite added", "user_id", userID, "property_id", propertyID)

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   audit.ActionFavoriteAdded,
		Entity:   "property",
		EntityID: &propertyID,
	})

	return f, nil
}

func errAlreadyFavorite() error {
	return httperr.ErrConflict("already_favorite", "Property is already in your favorites.")
}

// ======================================================
// REMOVE
// ======================================================

type RemoveFavorite struct {
	repo  domain.Repository
	audit AuditSink
	log   *logger.Logger
}

func NewRemoveFavorite(repo domain.Repository, a AuditSink, log *logger.Logger) *RemoveFavorite {
	if a == nil {
		a = nopAudit{}
	}
	return &RemoveFavorite{repo: repo, audit: a, log: log}
}

func (uc *RemoveFavorite) Execute(ctx context.Context, userID, propertyID uint) error {
	if err := uc.repo.Delete(ctx, userID, propertyID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return httperr.ErrNotFound("favorite_not_found", "Property is not in your favorites.")
		}
		return httperr.ErrInternal("store_failure", err)
	}

	uc.log.Info("favorite removed", "user_id", userID, "property_id", propertyID)

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   audit.ActionFavoriteRemoved,
		Entity:   "property",
		EntityID: &propertyID,
	})

	return nil
}

// ======================================================
// LIST
// ======================================================

type ListUserFavorites struct {
	repo domain.Repository
}

func NewListUserFavorites(repo domain.Repository) *ListUserFavorites {
	return &ListUserFavorites{repo: repo}
}

// Execute returns the user's favorites, newest first, with each property and its location.
func (uc *ListUserFavorites) Execute(ctx context.Context, userID uint) ([]models.Favorite, error) {
	favorites, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, httperr.ErrInternal("store_failure", err)
	}
	return favorites, nil
}
