package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"chatroom/internal/domain"
)

var ErrAuthorRequired = errors.New("author is required")

// ChatClient habla con la API REST del chat.
type ChatClient struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewChatClient construye un cliente HTTP apuntando a la API REST.
func NewChatClient(baseURL string, httpClient *http.Client, logger *zap.Logger) *ChatClient {
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  httpClient,
		logger:  logger,
	}
}

// Messages devuelve el historial completo, del más antiguo al más nuevo.
func (c *ChatClient) Messages(ctx context.Context) ([]domain.ChatLogEntry, error) {
	var out struct {
		Messages []domain.ChatLogEntry `json:"messages"`
	}
	if err := c.do(ctx, http.MethodGet, "/messages", nil, &out); err != nil {
		return nil, err
	}
	return out.Messages, nil
}

// PostMessage publica un mensaje y devuelve la entrada registrada por el servidor.
func (c *ChatClient) PostMessage(ctx context.Context, msg domain.Message) (domain.ChatLogEntry, error) {
	if strings.TrimSpace(msg.Author) == "" {
		return domain.ChatLogEntry{}, ErrAuthorRequired
	}
	var out struct {
		Message domain.ChatLogEntry `json:"message"`
	}
	if err := c.do(ctx, http.MethodPost, "/messages", msg, &out); err != nil {
		return domain.ChatLogEntry{}, err
	}
	return out.Message, nil
}

// StartSession pide un nombre nuevo; el servidor lo anuncia en el chat.
func (c *ChatClient) StartSession(ctx context.Context) (string, error) {
	var out domain.Session
	if err := c.do(ctx, http.MethodPost, "/session", nil, &out); err != nil {
		return "", err
	}
	return out.Username, nil
}

func (c *ChatClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		c.logger.Warn("chat api error",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", respBody),
		)
		return &APIError{StatusCode: resp.StatusCode, Message: errorMessage(respBody)}
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}

// APIError es una respuesta 4xx/5xx de la API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("chat api error: status=%d: %s", e.StatusCode, e.Message)
}

func errorMessage(body []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return strings.TrimSpace(string(body))
}
