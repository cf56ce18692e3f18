package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter configura el router de Gin con middlewares, REST y GraphQL.
func NewRouter(
	logger *zap.Logger,
	chatH *ChatHandler,
	graphqlH *GraphQLHandler,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: request id, logging y recovery.
	r.Use(requestIDMiddleware(), zapLoggerMiddleware(logger), gin.Recovery())

	// La API responde JSON; /graphiql queda fuera del grupo porque sirve HTML.
	api := r.Group("/", jsonContentTypeMiddleware())

	api.GET("/healthz", chatH.Health)

	api.GET("/messages", chatH.ListMessages)
	api.POST("/messages", chatH.PostMessage)
	api.POST("/session", chatH.CreateSession)
	api.GET("/username", chatH.GetUsername)

	api.POST("/graphql", graphqlH.Query)
	if graphqlH.graphiQLEnabled {
		r.GET("/graphiql", graphqlH.GraphiQL)
	}

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
