package api

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/macmobile/carwash/internal/catalog"
	"github.com/macmobile/carwash/internal/domain"
	"go.uber.org/zap"
)

var fallbackPage = template.Must(template.New("fallback").Parse(
	`<!DOCTYPE html><html><head><title>{{.Name}}</title></head><body>` +
		`<h1>{{.Name}}</h1><p>The page could not be loaded. Please call us at {{.Phone}}.</p>` +
		`</body></html>`))

type CatalogHandler struct {
	catalog  *catalog.Catalog
	business domain.BusinessInfo
	page     *template.Template
	log      *zap.Logger
}

type catalogResponse struct {
	Business   domain.BusinessInfo `json:"business"`
	Categories []catalog.Group     `json:"categories"`
}

// NewCatalogHandler serves the catalog as JSON and the landing page. page must
// define "index.html"; a nil page serves a minimal fallback.
func NewCatalogHandler(c *catalog.Catalog, business domain.BusinessInfo, page *template.Template, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: c, business: business, page: page, log: log}
}

func (h *CatalogHandler) Register(router gin.IRoutes) {
	router.GET("/", h.home)
	router.GET("/api/services", h.list)
}

func (h *CatalogHandler) list(c *gin.Context) {
	c.JSON(http.StatusOK, catalogResponse{
		Business:   h.business,
		Categories: h.catalog.Groups(),
	})
}

func (h *CatalogHandler) home(c *gin.Context) {
	var buf bytes.Buffer
	if h.page != nil {
		err := h.page.ExecuteTemplate(&buf, "index.html", gin.H{
			"Business": h.business,
			"Groups":   h.catalog.Groups(),
		})
		if err == nil {
			c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
			return
		}
		h.log.Error("render home page", zap.Error(err))
		buf.Reset()
	}

	if err := fallbackPage.Execute(&buf, h.business); err != nil {
		c.String(http.StatusInternalServerError, h.business.Name)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
