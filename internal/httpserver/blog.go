package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nexusai-site/internal/domain"
)

const (
	defaultRecent  = 3
	defaultRelated = 2
)

func listPostsHandler(svc BlogService) gin.HandlerFunc {
	return listHandler(func(c *gin.Context, state domain.FilterState) ([]domain.Post, error) {
		return svc.List(c.Request.Context(), state)
	})
}

func getPostHandler(svc BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		post, err := svc.Get(c.Request.Context(), c.Param("slug"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, post)
	}
}

func recentPostsHandler(svc BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		n, err := queryInt(c, "limit", defaultRecent)
		if err != nil || n < 0 {
			badRequest(c, "invalid limit")
			return
		}
		posts, err := svc.Recent(c.Request.Context(), min(n, maxLimit))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, posts)
	}
}

func relatedPostsHandler(svc BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		n, err := queryInt(c, "limit", defaultRelated)
		if err != nil || n < 0 {
			badRequest(c, "invalid limit")
			return
		}
		posts, err := svc.Related(c.Request.Context(), c.Param("slug"), min(n, maxLimit))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, posts)
	}
}

func postCategoriesHandler(svc BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cats, err := svc.Categories(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, cats)
	}
}

func postTagsHandler(svc BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tags, err := svc.Tags(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, tags)
	}
}
