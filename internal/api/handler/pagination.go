package handler

import (
	"Nokoroa/internal/pkg/consts"
	"strconv"

	"github.com/gin-gonic/gin"
)

// getPagination 解析 limit/offset 查询参数，非法值回退到默认值。
func getPagination(c *gin.Context) (int, int) {
	limitStr := c.DefaultQuery("limit", strconv.Itoa(consts.DefaultPageLimit))
	offsetStr := c.DefaultQuery("offset", "0")

	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 || limit > consts.MaxPageLimit {
		limit = consts.DefaultPageLimit
	}
	offset, err := strconv.Atoi(offsetStr)
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}
