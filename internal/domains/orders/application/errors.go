package application

import (
	"errors"
	"fmt"

	"github.com/slicelab/pizza-store-api/internal/domains/orders/domain"
)

// ErrInvalidInput signals the submission violated a domain invariant.
var ErrInvalidInput = errors.New("invalid order submission")

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrMissingID) ||
		errors.Is(err, domain.ErrEmptyOrder) ||
		errors.Is(err, domain.ErrInvalidQuantity) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
