package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

func parseInt64(s string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}

// pageParams reads ?page=&limit=; both must be present to enable paging,
// with a hard cap on limit.
func pageParams(c *gin.Context) (page, limit int) {
	pageStr := strings.TrimSpace(c.Query("page"))
	limitStr := strings.TrimSpace(c.Query("limit"))
	if pageStr == "" || limitStr == "" {
		return 0, 0
	}
	page, _ = strconv.Atoi(pageStr)
	limit, _ = strconv.Atoi(limitStr)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	return page, limit
}
