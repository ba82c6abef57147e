package ratings

import (
	"errors"
	"net/http"
	"strconv"

	"filmadviser/internal/api/respond"
	"filmadviser/internal/domain/catalog"
	"filmadviser/internal/domain/ratings"
	"filmadviser/internal/storage"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	users   *storage.UserRepository
	ratings *storage.RatingRepository
	titles  map[catalog.Kind]*storage.TitleRepository
}

func NewHandler(users *storage.UserRepository, rr *storage.RatingRepository, movies, serials *storage.TitleRepository) *Handler {
	return &Handler{
		users:   users,
		ratings: rr,
		titles: map[catalog.Kind]*storage.TitleRepository{
			catalog.KindMovie:  movies,
			catalog.KindSerial: serials,
		},
	}
}

type rateRequest struct {
	Rating int `json:"rating" binding:"required,gte=1,lte=10"`
}

func (h *Handler) RateMovie(c *gin.Context)  { h.rate(c, catalog.KindMovie) }
func (h *Handler) RateSerial(c *gin.Context) { h.rate(c, catalog.KindSerial) }

// rate upserts the calling user's score for a title. The user comes from
// the verified token, not the request body.
func (h *Handler) rate(c *gin.Context, kind catalog.Kind) {
	titleID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid id")
		return
	}

	var req rateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Rating must be an integer between 1 and 10")
		return
	}

	userID := c.GetUint("user_id")
	if userID == 0 {
		respond.Error(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	ctx := c.Request.Context()

	if _, err := h.titles[kind].Get(ctx, uint(titleID)); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			if kind == catalog.KindSerial {
				respond.Error(c, http.StatusNotFound, "Serial not found")
			} else {
				respond.Error(c, http.StatusNotFound, "Movie not found")
			}
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Failed to load title")
		return
	}

	if _, err := h.users.ByID(ctx, userID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "User not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Failed to look up user")
		return
	}

	rating := ratings.Rating{
		UserID:    userID,
		TitleKind: kind,
		TitleID:   uint(titleID),
		Value:     req.Rating,
	}
	if err := h.ratings.Upsert(ctx, &rating); err != nil {
		respond.Error(c, http.StatusInternalServerError, "Failed to save rating")
		return
	}

	respond.Data(c, http.StatusOK, rating)
}

func (h *Handler) ListForUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	list, err := h.ratings.ForUser(c.Request.Context(), uint(userID))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Failed to load ratings")
		return
	}
	respond.Data(c, http.StatusOK, list)
}

func (h *Handler) List(c *gin.Context) {
	list, err := h.ratings.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Failed to load ratings")
		return
	}
	respond.Data(c, http.StatusOK, list)
}
