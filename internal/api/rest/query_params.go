package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/finara-labs/finara-backend/internal/analytics"
	"github.com/finara-labs/finara-backend/internal/domain"
)

// GetActivityQueryParams holds query parameters for GET /api/activity/:bankAddress
type GetActivityQueryParams struct {
	Limit int `form:"limit,default=20"`
}

// ParseGetActivityQuery parses query parameters for GET /api/activity/:bankAddress.
// The limit is clamped to [1, MAX_ACTIVITY_LIMIT]; zero or negative falls back to the default.
func ParseGetActivityQuery(c *gin.Context) (*GetActivityQueryParams, error) {
	params := GetActivityQueryParams{Limit: domain.DEFAULT_ACTIVITY_LIMIT}
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	params.Limit = analytics.ClampActivityLimit(params.Limit)
	return &params, nil
}
