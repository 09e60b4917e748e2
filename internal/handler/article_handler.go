package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/selimist/AiStudio-Wellness/internal/service"
)

// ArticleHandler handles editorial content reads.
type ArticleHandler struct {
	catalog service.CatalogServiceInterface
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(catalog service.CatalogServiceInterface) *ArticleHandler {
	return &ArticleHandler{catalog: catalog}
}

// ListArticles handles GET /api/v1/articles
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	articles := h.catalog.ListArticles(c.Request.Context())
	out := make([]ArticleResponse, len(articles))
	for i := range articles {
		out[i] = toArticleResponse(&articles[i])
	}
	c.JSON(http.StatusOK, gin.H{"articles": out})
}

// GetArticle handles GET /api/v1/articles/:slug
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	article, err := h.catalog.GetArticleBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toArticleResponse(article))
}
