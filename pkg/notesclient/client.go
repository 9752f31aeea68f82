// Package notesclient is the Go client for the notes API: a thin HTTP
// wrapper plus a state store for UI bookkeeping.
package notesclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Note mirrors the wire shape returned by the API.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// APIError carries the server's error body alongside the status code.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
}

type Client struct {
	BaseURL string
	Token   string
	http    *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		BaseURL: baseURL,
		Token:   token,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		var errBody struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(bodyBytes, &errBody)
		if errBody.Error == "" {
			errBody.Error = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: errBody.Error}
	}

	if out != nil {
		return json.Unmarshal(bodyBytes, out)
	}
	return nil
}

// List fetches the caller's notes, newest-updated first. A non-empty search
// term restricts to notes containing it in title or content.
func (c *Client) List(ctx context.Context, search string) ([]Note, error) {
	path := "/notes"
	if search != "" {
		path += "?search=" + url.QueryEscape(search)
	}
	var notes []Note
	if err := c.do(ctx, http.MethodGet, path, nil, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (c *Client) Get(ctx context.Context, id string) (*Note, error) {
	var note Note
	if err := c.do(ctx, http.MethodGet, "/notes/"+id, nil, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

func (c *Client) Create(ctx context.Context, title, content string) (*Note, error) {
	payload := map[string]string{"title": title, "content": content}
	var note Note
	if err := c.do(ctx, http.MethodPost, "/notes", payload, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

// Update sends only the provided fields; nil means leave untouched.
func (c *Client) Update(ctx context.Context, id string, title, content *string) (*Note, error) {
	payload := map[string]*string{}
	if title != nil {
		payload["title"] = title
	}
	if content != nil {
		payload["content"] = content
	}
	var note Note
	if err := c.do(ctx, http.MethodPatch, "/notes/"+id, payload, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/notes/"+id, nil, nil)
}

// Login exchanges credentials for a bearer token and stores it on the client.
func (c *Client) Login(ctx context.Context, email, password string) error {
	payload := map[string]string{"email": email, "password": password}
	var res struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/login", payload, &res); err != nil {
		return err
	}
	c.Token = res.Token
	return nil
}

// Register creates an account; name may be empty.
func (c *Client) Register(ctx context.Context, email, password, name string) error {
	payload := map[string]string{"email": email, "password": password, "name": name}
	return c.do(ctx, http.MethodPost, "/register", payload, nil)
}
