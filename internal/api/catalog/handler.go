package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"filmadviser/internal/api/respond"
	domain "filmadviser/internal/domain/catalog"
	"filmadviser/internal/storage"

	"github.com/gin-gonic/gin"
)

// Handler serves CRUD over one title kind. The server mounts two instances,
// one for /api/movies and one for /api/serials.
type Handler struct {
	titles   *storage.TitleRepository
	notFound string
}

func NewHandler(titles *storage.TitleRepository) *Handler {
	msg := "Movie not found"
	if titles.Kind() == domain.KindSerial {
		msg = "Serial not found"
	}
	return &Handler{titles: titles, notFound: msg}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return uint(id), true
}

func (h *Handler) List(c *gin.Context) {
	titles, err := h.titles.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Failed to load titles")
		return
	}
	respond.Data(c, http.StatusOK, titles)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	t, err := h.titles.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(c, http.StatusNotFound, h.notFound)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Failed to load title")
		return
	}
	respond.Data(c, http.StatusOK, t)
}

func (h *Handler) Create(c *gin.Context) {
	var req TitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	t := req.toTitle()
	if err := h.titles.Create(c.Request.Context(), &t); err != nil {
		respond.Error(c, http.StatusInternalServerError, "Failed to create title")
		return
	}
	respond.Data(c, http.StatusCreated, t)
}

func (h *Handler) Replace(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req TitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	t, err := h.titles.Replace(c.Request.Context(), id, req.toTitle())
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(c, http.StatusNotFound, h.notFound)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Failed to update title")
		return
	}
	respond.Data(c, http.StatusOK, t)
}

func (h *Handler) Merge(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req TitlePatch
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	t, err := h.titles.Merge(c.Request.Context(), id, req.updates())
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(c, http.StatusNotFound, h.notFound)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Failed to update title")
		return
	}
	respond.Data(c, http.StatusOK, t)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.titles.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(c, http.StatusNotFound, h.notFound)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Failed to delete title")
		return
	}
	respond.Data(c, http.StatusOK, gin.H{"status": "deleted"})
}
