package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// --- Response types (дублируются из API, CLI не импортирует internal/api) ---

// MenuItem — позиция меню из API.
type MenuItem struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Ingredients []string `json:"ingredients"`
	Available   bool     `json:"available"`
}

// DeleteResponse — ответ на удаление.
type DeleteResponse struct {
	Message string   `json:"message"`
	Deleted MenuItem `json:"deleted"`
}

// --- Request types ---

// MenuItemRequest — тело создания или замены позиции.
// Available == nil означает значение по умолчанию (true).
type MenuItemRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Ingredients []string `json:"ingredients"`
	Available   *bool    `json:"available,omitempty"`
}

// --- Errors ---

// FieldError — ошибка поля из ответа 400.
type FieldError struct {
	Msg  string `json:"msg"`
	Path string `json:"path"`
}

// APIError — ошибочный ответ API.
type APIError struct {
	StatusCode int
	Message    string       `json:"message"`
	Errors     []FieldError `json:"errors,omitempty"`
}

// Error реализует интерфейс error.
func (e *APIError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
	}

	parts := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		parts[i] = fe.Path + ": " + fe.Msg
	}
	return fmt.Sprintf("HTTP %d: %s (%s)", e.StatusCode, e.Message, strings.Join(parts, "; "))
}

// --- Client ---

// Client — HTTP-клиент для Restaurant API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient создаёт клиент для API.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ListMenu возвращает все позиции меню.
func (c *Client) ListMenu() ([]MenuItem, error) {
	var items []MenuItem
	err := c.do(http.MethodGet, "/menu", nil, &items)
	return items, err
}

// GetMenuItem возвращает позицию по ID.
func (c *Client) GetMenuItem(id string) (*MenuItem, error) {
	var item MenuItem
	err := c.do(http.MethodGet, itemPath(id), nil, &item)
	return &item, err
}

// CreateMenuItem создаёт позицию.
func (c *Client) CreateMenuItem(req MenuItemRequest) (*MenuItem, error) {
	var item MenuItem
	err := c.do(http.MethodPost, "/menu", req, &item)
	return &item, err
}

// ReplaceMenuItem полностью заменяет позицию.
func (c *Client) ReplaceMenuItem(id string, req MenuItemRequest) (*MenuItem, error) {
	var item MenuItem
	err := c.do(http.MethodPut, itemPath(id), req, &item)
	return &item, err
}

// DeleteMenuItem удаляет позицию и возвращает удалённую запись.
func (c *Client) DeleteMenuItem(id string) (*DeleteResponse, error) {
	var resp DeleteResponse
	err := c.do(http.MethodDelete, itemPath(id), nil, &resp)
	return &resp, err
}

// --- HTTP helpers ---

func itemPath(id string) string {
	return "/menu/" + url.PathEscape(id)
}

func (c *Client) do(method, path string, body any, result any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := checkError(resp); err != nil {
		return err
	}

	if result == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func checkError(resp *http.Response) error {
	if resp.StatusCode < 400 {
		return nil
	}

	apiErr := &APIError{StatusCode: resp.StatusCode}
	if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil || apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}
