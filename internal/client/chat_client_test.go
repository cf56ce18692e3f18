package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"chatroom/internal/domain"
	apihttp "chatroom/internal/http"
	"chatroom/internal/repository"
	"chatroom/internal/service"
)

func newTestServer(t *testing.T, adjectives, animals []string) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	gen, err := service.NewNameGenerator(adjectives, animals, nil, service.WithMaxAttempts(20))
	require.NoError(t, err)
	core := service.NewChatService(zap.NewNop(), repository.NewMemoryChatLogRepository(), gen, nil)
	router := apihttp.NewRouter(
		zap.NewNop(),
		apihttp.NewChatHandler(zap.NewNop(), core),
		apihttp.NewGraphQLHandler(zap.NewNop(), core, false),
	)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func TestChatClient_RoundTrip(t *testing.T) {
	req := require.New(t)
	srv := newTestServer(t, []string{"brave", "bold"}, []string{"bear"})
	c := NewChatClient(srv.URL+"/", srv.Client(), zap.NewNop())
	ctx := context.Background()

	msgs, err := c.Messages(ctx)
	req.NoError(err)
	req.Empty(msgs)

	name, err := c.StartSession(ctx)
	req.NoError(err)
	req.Contains([]string{"brave bear", "bold bear"}, name)

	entry, err := c.PostMessage(ctx, domain.Message{Author: name, Text: "hello"})
	req.NoError(err)
	req.Equal(name, entry.Author)
	req.False(entry.Timestamp.IsZero())

	msgs, err = c.Messages(ctx)
	req.NoError(err)
	req.Len(msgs, 2)
	req.Equal(domain.SystemAuthor, msgs[0].Author)
	req.Equal("hello", msgs[1].Text)
}

func TestChatClient_PostMessageWithoutAuthor(t *testing.T) {
	c := NewChatClient("http://unused", nil, nil)

	_, err := c.PostMessage(context.Background(), domain.Message{Text: "hi"})
	require.ErrorIs(t, err, ErrAuthorRequired)
}

func TestChatClient_APIError(t *testing.T) {
	req := require.New(t)
	srv := newTestServer(t, []string{"apple"}, []string{"bear"})
	c := NewChatClient(srv.URL, srv.Client(), nil)

	_, err := c.StartSession(context.Background())
	var apiErr *APIError
	req.True(errors.As(err, &apiErr))
	req.Equal(http.StatusInternalServerError, apiErr.StatusCode)
	req.Equal("could not assign username", apiErr.Message)
}
