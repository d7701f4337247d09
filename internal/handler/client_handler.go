package handler

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"storefront/internal/response"

	"github.com/gin-gonic/gin"
)

const indexFile = "index.html"

// RegisterClientRoutes serves the built client from dir for every path the API
// does not own. Unknown paths fall back to index.html so client-side routing works.
func RegisterClientRoutes(r *gin.Engine, dir string) {
	r.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			response.Error(c, http.StatusNotFound, response.Message("Not found"))
			return
		}

		name := filepath.Join(dir, filepath.FromSlash(path.Clean("/"+c.Request.URL.Path)))
		if info, err := os.Stat(name); err == nil && !info.IsDir() {
			c.File(name)
			return
		}
		if strings.HasPrefix(c.Request.URL.Path, "/static/") {
			response.Error(c, http.StatusNotFound, response.Message("Not found"))
			return
		}
		c.File(filepath.Join(dir, indexFile))
	})
}
