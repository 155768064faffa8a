package stockroomserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	catalogdomain "github.com/stockroom/stockroom-api/internal/domains/catalog/domain"
	catalogports "github.com/stockroom/stockroom-api/internal/domains/catalog/ports"
	ordersapp "github.com/stockroom/stockroom-api/internal/domains/orders/application"
	ordersports "github.com/stockroom/stockroom-api/internal/domains/orders/ports"
	userapp "github.com/stockroom/stockroom-api/internal/domains/users/application"
	userports "github.com/stockroom/stockroom-api/internal/domains/users/ports"
	warehousedomain "github.com/stockroom/stockroom-api/internal/domains/warehouse/domain"
	warehouseports "github.com/stockroom/stockroom-api/internal/domains/warehouse/ports"
	apierrors "github.com/stockroom/stockroom-api/internal/shared/errors"
)

// problemResponder maps service errors to RFC 7807 responses before falling
// back to a generic internal error.
var problemResponder = apierrors.NewChainedResponder("", mapServiceError)

func mapServiceError(err error) (apierrors.ProblemDetail, bool) {
	switch {
	case errors.Is(err, catalogports.ErrNotFound),
		errors.Is(err, warehouseports.ErrNotFound),
		errors.Is(err, warehouseports.ErrPlacementNotFound),
		errors.Is(err, ordersports.ErrNotFound),
		errors.Is(err, userports.ErrNotFound):
		return apierrors.ErrNotFound.WithDetail(err.Error()), true
	case errors.Is(err, userapp.ErrAuthentication):
		return apierrors.ErrUnauthorized.WithDetail(err.Error()), true
	case errors.Is(err, ordersapp.ErrInvalidInput),
		errors.Is(err, userapp.ErrInvalidInput),
		errors.Is(err, catalogdomain.ErrEmptyName),
		errors.Is(err, catalogdomain.ErrNegativePrice),
		errors.Is(err, warehousedomain.ErrEmptyName),
		errors.Is(err, warehousedomain.ErrInvalidCapacity):
		return apierrors.ErrValidation.WithDetail(err.Error()), true
	}
	return apierrors.ProblemDetail{}, false
}

// respondServiceError converts application and port errors to problem responses.
func respondServiceError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	problemResponder.RespondError(c, err)
}

// respondProblem maps a ProblemDetail through the shared responder.
func respondProblem(c *gin.Context, problem apierrors.ProblemDetail) {
	apierrors.Respond(c, problem)
}

// respondError returns RFC 7807 responses for a known HTTP status.
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
	case http.StatusUnauthorized:
		problem = apierrors.ErrUnauthorized.WithDetail(err.Error())
	case http.StatusForbidden:
		problem = apierrors.ErrForbidden.WithDetail(err.Error())
	default:
		problem = apierrors.ErrInternal.WithDetail(err.Error())
	}
	respondProblem(c, problem)
}
