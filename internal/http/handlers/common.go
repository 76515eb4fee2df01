package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		respondError(c, http.StatusBadRequest, "invalid_body", "request body is empty", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_json", "invalid payload", err.Error())
		return false
	}
	return true
}

// ParamID parses a positive int64 path param, responding 400 on failure.
func ParamID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "invalid_id", "invalid "+name, nil)
		return 0, false
	}
	return id, true
}

// CartToken reads the buyer's cart session token (header first, query as a
// fallback for voucher download links).
func CartToken(c *gin.Context) string {
	token := strings.TrimSpace(c.GetHeader("X-Cart-Token"))
	if token == "" {
		token = strings.TrimSpace(c.Query("cart_token"))
	}
	return token
}
