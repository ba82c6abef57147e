package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"filmadviser/config"
	"filmadviser/database"
	"filmadviser/internal/domain/catalog"
	"filmadviser/internal/domain/ratings"
	"filmadviser/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.JWT_SECRET = "test-secret"

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to access sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test schema: %v", err)
	}

	r := gin.New()
	RegisterRoutes(r, NewAPI(db))
	return r
}

func perform(r http.Handler, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		buf, _ := json.Marshal(body)
		reader = bytes.NewReader(buf)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func decodeData[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var envelope struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope), "body: %s", rr.Body.String())
	return envelope.Data
}

// registerAndLogin creates an account and returns the user's id and token.
func registerAndLogin(t *testing.T, r http.Handler, username, password string) (uint, string) {
	t.Helper()

	rr := perform(r, "POST", "/api/register", map[string]string{"username": username, "password": password}, "")
	require.Equal(t, http.StatusCreated, rr.Code, "register: %s", rr.Body.String())
	user := decodeData[users.User](t, rr)

	rr = perform(r, "POST", "/api/login", map[string]string{"username": username, "password": password}, "")
	require.Equal(t, http.StatusOK, rr.Code, "login: %s", rr.Body.String())
	res := decodeData[struct {
		Token string `json:"token"`
	}](t, rr)
	require.NotEmpty(t, res.Token)

	return user.ID, res.Token
}

func TestRegisterLoginFlow(t *testing.T) {
	r := setupRouter(t)

	rr := perform(r, "POST", "/api/register", map[string]string{"username": "alice", "password": "wonderland"}, "")
	require.Equal(t, http.StatusCreated, rr.Code)
	user := decodeData[users.User](t, rr)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.NotContains(t, rr.Body.String(), "password")

	// Second registration with the same username loses, whatever the password.
	rr = perform(r, "POST", "/api/register", map[string]string{"username": "alice", "password": "other"}, "")
	assert.Equal(t, http.StatusConflict, rr.Code)

	rr = perform(r, "POST", "/api/login", map[string]string{"username": "alice", "password": "wonderland"}, "")
	require.Equal(t, http.StatusOK, rr.Code)
	res := decodeData[struct {
		Token string     `json:"token"`
		User  users.User `json:"user"`
	}](t, rr)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, user.ID, res.User.ID)

	rr = perform(r, "POST", "/api/login", map[string]string{"username": "alice", "password": "wrong"}, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = perform(r, "POST", "/api/login", map[string]string{"username": "nobody", "password": "x"}, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRegisterValidation(t *testing.T) {
	r := setupRouter(t)

	rr := perform(r, "POST", "/api/register", map[string]string{"username": "norbert"}, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = perform(r, "POST", "/api/register", map[string]string{"password": "p"}, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestWritesRequireToken(t *testing.T) {
	r := setupRouter(t)

	rr := perform(r, "POST", "/api/movies", map[string]string{"title": "Dune"}, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = perform(r, "DELETE", "/api/movies/1", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = perform(r, "POST", "/api/movies", map[string]string{"title": "Dune"}, "garbage.token.here")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

// The scenario from the original front end: create, read back, patch one
// field, delete, read again.
func TestMovieLifecycle(t *testing.T) {
	r := setupRouter(t)
	_, token := registerAndLogin(t, r, "carol", "s3cret")

	rr := perform(r, "POST", "/api/movies", map[string]interface{}{
		"title":           "Dune",
		"production_year": 2021,
	}, token)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	created := decodeData[catalog.Title](t, rr)
	require.NotZero(t, created.ID)

	rr = perform(r, "GET", "/api/movies/"+itoa(created.ID), nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	got := decodeData[catalog.Title](t, rr)
	assert.Equal(t, "Dune", got.Title)
	assert.Equal(t, 2021, got.ProductionYear)

	rr = perform(r, "PATCH", "/api/movies/"+itoa(created.ID), map[string]interface{}{"rating": 8.5}, token)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	patched := decodeData[catalog.Title](t, rr)
	assert.Equal(t, 8.5, patched.Rating)
	assert.Equal(t, "Dune", patched.Title)
	assert.Equal(t, 2021, patched.ProductionYear)

	rr = perform(r, "DELETE", "/api/movies/"+itoa(created.ID), nil, token)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = perform(r, "GET", "/api/movies/"+itoa(created.ID), nil, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestReplaceZeroesOmittedFields(t *testing.T) {
	r := setupRouter(t)
	_, token := registerAndLogin(t, r, "dave", "s3cret")

	rr := perform(r, "POST", "/api/serials", map[string]interface{}{
		"title":           "True Detective",
		"production_year": 2014,
		"genre":           "Crime",
		"rating":          8.9,
	}, token)
	require.Equal(t, http.StatusCreated, rr.Code)
	created := decodeData[catalog.Title](t, rr)

	rr = perform(r, "PUT", "/api/serials/"+itoa(created.ID), map[string]interface{}{
		"title": "True Detective",
	}, token)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	replaced := decodeData[catalog.Title](t, rr)
	assert.Equal(t, "True Detective", replaced.Title)
	assert.Zero(t, replaced.ProductionYear)
	assert.Zero(t, replaced.Rating)
	assert.Empty(t, replaced.Genre)
}

func TestUpdateUnknownTitle(t *testing.T) {
	r := setupRouter(t)
	_, token := registerAndLogin(t, r, "erin", "s3cret")

	rr := perform(r, "PUT", "/api/movies/999", map[string]string{"title": "Ghost"}, token)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = perform(r, "PATCH", "/api/movies/999", map[string]string{"title": "Ghost"}, token)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = perform(r, "DELETE", "/api/movies/999", nil, token)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = perform(r, "GET", "/api/movies/abc", nil, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRateUpsertsPerUserAndKind(t *testing.T) {
	r := setupRouter(t)
	userID, token := registerAndLogin(t, r, "frank", "s3cret")

	rr := perform(r, "POST", "/api/movies", map[string]string{"title": "Alien"}, token)
	require.Equal(t, http.StatusCreated, rr.Code)
	movie := decodeData[catalog.Title](t, rr)

	rr = perform(r, "POST", "/api/movies/"+itoa(movie.ID)+"/rate", map[string]int{"rating": 6}, token)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = perform(r, "POST", "/api/movies/"+itoa(movie.ID)+"/rate", map[string]int{"rating": 9}, token)
	require.Equal(t, http.StatusOK, rr.Code)
	saved := decodeData[ratings.Rating](t, rr)
	assert.Equal(t, 9, saved.Value)
	assert.Equal(t, catalog.KindMovie, saved.TitleKind)

	rr = perform(r, "GET", "/api/users/"+itoa(userID)+"/ratings", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	list := decodeData[[]ratings.Rating](t, rr)
	require.Len(t, list, 1)
	assert.Equal(t, 9, list[0].Value)

	// Unknown movie and out-of-range values are rejected.
	rr = perform(r, "POST", "/api/movies/999/rate", map[string]int{"rating": 5}, token)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = perform(r, "POST", "/api/movies/"+itoa(movie.ID)+"/rate", map[string]int{"rating": 11}, token)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = perform(r, "POST", "/api/movies/"+itoa(movie.ID)+"/rate", map[string]int{"rating": 5}, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestMoviesAndSerialsDoNotMix(t *testing.T) {
	r := setupRouter(t)
	_, token := registerAndLogin(t, r, "grace", "s3cret")

	rr := perform(r, "POST", "/api/movies", map[string]string{"title": "Heat"}, token)
	require.Equal(t, http.StatusCreated, rr.Code)
	movie := decodeData[catalog.Title](t, rr)

	rr = perform(r, "GET", "/api/serials/"+itoa(movie.ID), nil, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = perform(r, "GET", "/api/serials", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	serials := decodeData[[]catalog.Title](t, rr)
	assert.Empty(t, serials)
}

func TestUserListingNeverLeaksHashes(t *testing.T) {
	r := setupRouter(t)
	registerAndLogin(t, r, "henry", "hunter2")

	rr := perform(r, "GET", "/api/users", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	list := decodeData[[]users.User](t, rr)
	require.Len(t, list, 1)
	assert.Equal(t, "henry", list[0].Username)

	lower := strings.ToLower(rr.Body.String())
	assert.NotContains(t, lower, "password")
	assert.NotContains(t, lower, "$2a$")
}

func TestGlobalRatingsListing(t *testing.T) {
	r := setupRouter(t)
	_, token := registerAndLogin(t, r, "iris", "s3cret")

	rr := perform(r, "POST", "/api/serials", map[string]string{"title": "Chernobyl"}, token)
	require.Equal(t, http.StatusCreated, rr.Code)
	serial := decodeData[catalog.Title](t, rr)

	rr = perform(r, "POST", "/api/serials/"+itoa(serial.ID)+"/rate", map[string]int{"rating": 10}, token)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = perform(r, "GET", "/api/ratings", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	list := decodeData[[]ratings.Rating](t, rr)
	require.Len(t, list, 1)
	assert.Equal(t, catalog.KindSerial, list[0].TitleKind)
	assert.Equal(t, 10, list[0].Value)
}

func TestHealth(t *testing.T) {
	r := setupRouter(t)
	rr := perform(r, "GET", "/health", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
