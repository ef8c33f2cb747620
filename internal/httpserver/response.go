package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"nexusai-site/internal/domain"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

type pagedList[T any] struct {
	Limit   int `json:"limit"`
	Offset  int `json:"offset"`
	Count   int `json:"count"`
	Total   int `json:"total"`
	Results []T `json:"results"`
}

func buildPage[T any](items []T, limit, offset int) pagedList[T] {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	sliced := []T{}
	if offset < len(items) {
		sliced = items[offset:end]
	}
	return pagedList[T]{
		Limit:   limit,
		Offset:  offset,
		Count:   len(sliced),
		Total:   len(items),
		Results: sliced,
	}
}

// queryInt reads an optional integer query parameter.
func queryInt(c *gin.Context, name string, def int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("invalid " + name)
	}
	return v, nil
}

func parsePaging(c *gin.Context) (limit, offset int, err error) {
	if limit, err = queryInt(c, "limit", defaultLimit); err != nil {
		return 0, 0, err
	}
	if offset, err = queryInt(c, "offset", 0); err != nil {
		return 0, 0, err
	}
	return limit, offset, nil
}

func parseFilter(c *gin.Context) (domain.FilterState, error) {
	var state domain.FilterState
	if err := c.ShouldBindQuery(&state); err != nil {
		return domain.FilterState{}, err
	}
	return state, nil
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

// writeError maps service errors onto status codes; unexpected errors are not echoed.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// listHandler serves a filtered, paged collection.
func listHandler[T any](list func(*gin.Context, domain.FilterState) ([]T, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		state, err := parseFilter(c)
		if err != nil {
			badRequest(c, "invalid filter")
			return
		}
		limit, offset, err := parsePaging(c)
		if err != nil {
			badRequest(c, err.Error())
			return
		}
		items, err := list(c, state)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, buildPage(items, limit, offset))
	}
}
