package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"chatroom/internal/domain"
	"chatroom/internal/service"
)

const chatSchema = `
schema {
	query: Query
	mutation: Mutation
}

scalar Time

type ChatLogEntry {
	author: String!
	text: String!
	timestamp: Time!
}

input MessageInput {
	author: String!
	text: String!
}

type Query {
	allMessages: [ChatLogEntry!]!
}

type Mutation {
	getUsername: String!
	createMessage(message: MessageInput!): Boolean!
}
`

var (
	errUsernameUnavailable = errors.New("could not assign username")
	errAuthorRequired      = errors.New("author is required")
)

// GraphQLHandler expone el mismo core por GraphQL.
type GraphQLHandler struct {
	relay           *relay.Handler
	graphiQLEnabled bool
}

// NewGraphQLHandler parsea el schema y lo enlaza a los resolvers. Un schema
// inválido es un error de programación, por eso MustParseSchema.
func NewGraphQLHandler(logger *zap.Logger, chat service.ChatCore, graphiQLEnabled bool) *GraphQLHandler {
	schema := graphql.MustParseSchema(chatSchema, &rootResolver{logger: logger, chat: chat})
	return &GraphQLHandler{
		relay:           &relay.Handler{Schema: schema},
		graphiQLEnabled: graphiQLEnabled,
	}
}

// Query maneja POST /graphql.
func (h *GraphQLHandler) Query(c *gin.Context) {
	h.relay.ServeHTTP(c.Writer, c.Request)
}

// GraphiQL maneja GET /graphiql.
func (h *GraphQLHandler) GraphiQL(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(graphiQLPage))
}

type rootResolver struct {
	logger *zap.Logger
	chat   service.ChatCore
}

func (r *rootResolver) AllMessages() []*entryResolver {
	return lo.Map(r.chat.Messages(), func(e domain.ChatLogEntry, _ int) *entryResolver {
		return &entryResolver{entry: e}
	})
}

// GetUsername es una mutación porque anuncia la sesión en el historial.
func (r *rootResolver) GetUsername() (string, error) {
	name, err := r.chat.AnnounceSession()
	if err != nil {
		return "", errUsernameUnavailable
	}
	return name, nil
}

type messageInput struct {
	Author string
	Text   string
}

func (r *rootResolver) CreateMessage(args struct{ Message messageInput }) (bool, error) {
	if strings.TrimSpace(args.Message.Author) == "" {
		r.logger.Warn("invalid createMessage mutation", zap.Error(errAuthorRequired))
		return false, errAuthorRequired
	}
	r.chat.PostMessage(domain.Message{
		Author: args.Message.Author,
		Text:   args.Message.Text,
	})
	return true, nil
}

type entryResolver struct {
	entry domain.ChatLogEntry
}

func (e *entryResolver) Author() string {
	return e.entry.Author
}

func (e *entryResolver) Text() string {
	return e.entry.Text
}

func (e *entryResolver) Timestamp() graphql.Time {
	return graphql.Time{Time: e.entry.Timestamp}
}

const graphiQLPage = `<!DOCTYPE html>
<html>
<head>
	<meta charset="utf-8">
	<title>GraphiQL</title>
	<link rel="stylesheet" href="https://unpkg.com/graphiql@3/graphiql.min.css" />
</head>
<body style="margin: 0;">
	<div id="graphiql" style="height: 100vh;"></div>
	<script crossorigin src="https://unpkg.com/react@18/umd/react.production.min.js"></script>
	<script crossorigin src="https://unpkg.com/react-dom@18/umd/react-dom.production.min.js"></script>
	<script crossorigin src="https://unpkg.com/graphiql@3/graphiql.min.js"></script>
	<script>
		const fetcher = GraphiQL.createFetcher({ url: "/graphql" });
		ReactDOM.createRoot(document.getElementById("graphiql")).render(
			React.createElement(GraphiQL, { fetcher: fetcher })
		);
	</script>
</body>
</html>
`
