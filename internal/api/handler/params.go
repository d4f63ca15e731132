package handler

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/datathon/handouts-api/internal/core/domain"
)

// ContextKeyUserID is where the Auth middleware stores the caller's id.
const ContextKeyUserID = "user_id"

// pathID parses an integer path parameter before any lookup happens.
func pathID(c echo.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil || id == 0 {
		return 0, domain.Malformed(fmt.Sprintf("%s must be a positive integer", name))
	}
	return uint(id), nil
}

// bindAndValidate decodes the JSON body into req and runs struct validation.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domain.Malformed("invalid JSON body")
	}
	return c.Validate(req)
}

func ctxUserID(c echo.Context) (uint, bool) {
	id, ok := c.Get(ContextKeyUserID).(uint)
	return id, ok && id > 0
}
