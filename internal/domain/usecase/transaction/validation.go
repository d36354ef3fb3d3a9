package transaction

import (
	"strings"

	"github.com/amirhossein-jamali/bitport/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bitport/internal/domain/error"
	"github.com/amirhossein-jamali/bitport/internal/domain/port/usecase"
)

func (s *Service) pageRequest(page, limit int) entity.PageRequest {
	return entity.NewPageRequest(page, limit, s.limits.Default, s.limits.Max)
}

// buildListQuery never fails: unknown sort columns and orders fall back to defaults
func (s *Service) buildListQuery(req usecase.ListRequest) entity.ListQuery {
	return entity.ListQuery{
		PageRequest: s.pageRequest(req.Page, req.Limit),
		Sort:        entity.ParseSortField(req.Sort),
		Order:       entity.ParseSortOrder(req.Order),
		Status:      strings.TrimSpace(req.Status),
	}
}

func validateStatus(status string) (string, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		return "", errs.NewValidationError("status", "Status is required")
	}
	return status, nil
}
