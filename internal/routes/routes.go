package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fieldserve/backoffice/internal/auth"
	"github.com/fieldserve/backoffice/internal/graph"
	"github.com/fieldserve/backoffice/internal/middleware"
	"github.com/fieldserve/backoffice/internal/store"
)

type graphqlRequest struct {
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables"`
	OperationName string                 `json:"operationName"`
}

func SetupRoutes(r *gin.Engine, schema *graph.Schema, tokens *auth.Tokens, st store.Store) {
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	gql := r.Group("/graphql")
	gql.Use(middleware.AuthContext(tokens, st))
	gql.POST("", func(c *gin.Context) {
		var req graphqlRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"errors": []gin.H{{"message": "invalid request body"}},
			})
			return
		}

		result := schema.Execute(c.Request.Context(), req.Query, req.Variables, req.OperationName)
		c.JSON(http.StatusOK, result)
	})
	gql.GET("", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(playgroundPage))
	})
}

// Minimal in-browser client for poking at the API during development.
const playgroundPage = `<!DOCTYPE html>
<html>
<head>
  <title>Backoffice GraphQL</title>
  <style>
    body { font-family: monospace; margin: 2rem; }
    textarea { width: 100%; height: 12rem; }
    pre { background: #f4f4f4; padding: 1rem; overflow: auto; }
  </style>
</head>
<body>
  <h1>Backoffice GraphQL</h1>
  <textarea id="query">{ allClients { name phone } }</textarea>
  <p><button onclick="run()">Run</button></p>
  <pre id="result"></pre>
  <script>
    async function run() {
      const res = await fetch('/graphql', {
        method: 'POST',
        headers: { 'Content-Type': 'application/json' },
        body: JSON.stringify({ query: document.getElementById('query').value }),
      });
      document.getElementById('result').textContent =
        JSON.stringify(await res.json(), null, 2);
    }
  </script>
</body>
</html>`
