package users

import (
	"net/http"

	"filmadviser/internal/api/respond"
	"filmadviser/internal/storage"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	users *storage.UserRepository
}

func NewHandler(users *storage.UserRepository) *Handler {
	return &Handler{users: users}
}

// List returns all users. Password hashes stay out of the response: the
// model excludes them from JSON.
func (h *Handler) List(c *gin.Context) {
	list, err := h.users.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Failed to load users")
		return
	}
	respond.Data(c, http.StatusOK, list)
}
