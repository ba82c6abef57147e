package auth

import (
	"errors"
	"net/http"
	"time"

	"filmadviser/config"
	"filmadviser/internal/api/respond"
	"filmadviser/internal/domain/users"
	"filmadviser/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type Handler struct {
	users *storage.UserRepository
}

func NewHandler(users *storage.UserRepository) *Handler {
	return &Handler{users: users}
}

type credentials struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Register(c *gin.Context) {
	var input credentials
	if err := c.ShouldBindJSON(&input); err != nil {
		respond.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	user := users.User{
		Username: input.Username,
		Password: string(hashed),
	}

	// Uniqueness is the database's job; a lost race surfaces here as
	// ErrAlreadyExists rather than a duplicate row.
	if err := h.users.Create(c.Request.Context(), &user); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			respond.Error(c, http.StatusConflict, "User already exists")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Failed to register user")
		return
	}

	respond.Data(c, http.StatusCreated, user)
}

func (h *Handler) Login(c *gin.Context) {
	var input credentials
	if err := c.ShouldBindJSON(&input); err != nil {
		respond.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.users.ByUsername(c.Request.Context(), input.Username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "User not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Failed to look up user")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		respond.Error(c, http.StatusUnauthorized, "Invalid password")
		return
	}

	token, err := IssueToken(user)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Could not create token")
		return
	}

	respond.Data(c, http.StatusOK, gin.H{"token": token, "user": user})
}

// IssueToken signs a 24h HS256 bearer token for the user.
func IssueToken(user users.User) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	})
	return t.SignedString([]byte(config.JWT_SECRET))
}
