package pizzaserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	cartapp "github.com/slicelab/pizza-store-api/internal/domains/cart/application"
	ordersapp "github.com/slicelab/pizza-store-api/internal/domains/orders/application"
	ordersports "github.com/slicelab/pizza-store-api/internal/domains/orders/ports"
	apierrors "github.com/slicelab/pizza-store-api/internal/shared/errors"
)

// respondProblem maps a ProblemDetail through the shared responder.
func respondProblem(c *gin.Context, problem apierrors.ProblemDetail) {
	apierrors.Respond(c, problem)
}

// respondError translates status codes into RFC 7807 responses.
func respondError(c *gin.Context, status int, err error) {
	if err == nil {
		return
	}
	var problem apierrors.ProblemDetail
	switch status {
	case http.StatusBadRequest:
		problem = apierrors.ErrBadRequest.WithDetail(err.Error())
	case http.StatusNotFound:
		problem = apierrors.ErrNotFound.WithDetail(err.Error())
	default:
		problem = apierrors.ErrInternal.WithDetail(err.Error())
	}
	respondProblem(c, problem)
}

// respondCartServiceError maps cart application errors onto HTTP statuses.
func respondCartServiceError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	switch err {
	case cartapp.ErrUnknownPizza:
		respondError(c, http.StatusNotFound, err)
	case cartapp.ErrInvalidQuantity:
		respondError(c, http.StatusBadRequest, err)
	default:
		respondError(c, http.StatusInternalServerError, err)
	}
}

// respondOrderServiceError maps order application errors onto HTTP statuses.
func respondOrderServiceError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	if err == ordersports.ErrNotFound {
		respondError(c, http.StatusNotFound, err)
		return
	}
	if errors.Is(err, ordersapp.ErrInvalidInput) {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	respondError(c, http.StatusInternalServerError, err)
}
