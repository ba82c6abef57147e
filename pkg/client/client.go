// Package client is a typed Go client for the FilmAdviser HTTP API. It
// understands the {data|error} envelope and carries the bearer token
// returned by Login on subsequent requests.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"filmadviser/internal/domain/catalog"
	"filmadviser/internal/domain/ratings"
	"filmadviser/internal/domain/users"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

// SetToken installs a bearer token for authenticated calls.
func (c *Client) SetToken(token string) { c.token = token }

func (c *Client) Token() string { return c.token }

// APIError is a non-2xx response decoded from the error envelope.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var envelope struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(raw, &envelope); err != nil || envelope.Error == "" {
			envelope.Error = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: envelope.Error}
	}

	if out == nil {
		return nil
	}
	envelope := struct {
		Data interface{} `json:"data"`
	}{Data: out}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func kindPath(kind catalog.Kind) string {
	return "/api/" + kind.Table()
}

// Register creates an account and returns the new user.
func (c *Client) Register(ctx context.Context, username, password string) (users.User, error) {
	var u users.User
	err := c.do(ctx, http.MethodPost, "/api/register",
		map[string]string{"username": username, "password": password}, &u)
	return u, err
}

// LoginResult is the login payload: the bearer token plus the user row.
type LoginResult struct {
	Token string     `json:"token"`
	User  users.User `json:"user"`
}

// Login authenticates and installs the returned token on the client.
func (c *Client) Login(ctx context.Context, username, password string) (LoginResult, error) {
	var res LoginResult
	err := c.do(ctx, http.MethodPost, "/api/login",
		map[string]string{"username": username, "password": password}, &res)
	if err == nil {
		c.token = res.Token
	}
	return res, err
}

func (c *Client) ListTitles(ctx context.Context, kind catalog.Kind) ([]catalog.Title, error) {
	var list []catalog.Title
	err := c.do(ctx, http.MethodGet, kindPath(kind), nil, &list)
	return list, err
}

func (c *Client) GetTitle(ctx context.Context, kind catalog.Kind, id uint) (catalog.Title, error) {
	var t catalog.Title
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", kindPath(kind), id), nil, &t)
	return t, err
}

func (c *Client) CreateTitle(ctx context.Context, kind catalog.Kind, t catalog.Title) (catalog.Title, error) {
	var created catalog.Title
	err := c.do(ctx, http.MethodPost, kindPath(kind), t, &created)
	return created, err
}

func (c *Client) ReplaceTitle(ctx context.Context, kind catalog.Kind, id uint, t catalog.Title) (catalog.Title, error) {
	var updated catalog.Title
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("%s/%d", kindPath(kind), id), t, &updated)
	return updated, err
}

// PatchTitle sends only the supplied fields.
func (c *Client) PatchTitle(ctx context.Context, kind catalog.Kind, id uint, fields map[string]interface{}) (catalog.Title, error) {
	var updated catalog.Title
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("%s/%d", kindPath(kind), id), fields, &updated)
	return updated, err
}

func (c *Client) DeleteTitle(ctx context.Context, kind catalog.Kind, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", kindPath(kind), id), nil, nil)
}

// Rate submits the authenticated user's score for a title.
func (c *Client) Rate(ctx context.Context, kind catalog.Kind, id uint, value int) (ratings.Rating, error) {
	var r ratings.Rating
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("%s/%d/rate", kindPath(kind), id),
		map[string]int{"rating": value}, &r)
	return r, err
}

func (c *Client) RatingsForUser(ctx context.Context, userID uint) ([]ratings.Rating, error) {
	var list []ratings.Rating
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/users/%d/ratings", userID), nil, &list)
	return list, err
}

func (c *Client) ListUsers(ctx context.Context) ([]users.User, error) {
	var list []users.User
	err := c.do(ctx, http.MethodGet, "/api/users", nil, &list)
	return list, err
}

func (c *Client) ListRatings(ctx context.Context) ([]ratings.Rating, error) {
	var list []ratings.Rating
	err := c.do(ctx, http.MethodGet, "/api/ratings", nil, &list)
	return list, err
}
