package swap

import (
	"strings"

	"github.com/amirhossein-jamali/bitport/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bitport/internal/domain/error"
	"github.com/amirhossein-jamali/bitport/internal/domain/port/usecase"
)

// validateSwapRequest runs before any quote lookup or write
func validateSwapRequest(req usecase.SwapRequest) error {
	if strings.TrimSpace(req.FromCurrency) == "" ||
		strings.TrimSpace(req.ToCurrency) == "" ||
		req.Amount == nil {
		return errs.NewValidationError("", "All fields are required")
	}

	return entity.ValidateAmount(*req.Amount)
}
