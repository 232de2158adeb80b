package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/segfault/coursecatalog/internal/app/models/dto"
	"github.com/segfault/coursecatalog/internal/pkg/apperrors"
)

// HandleAPIError maps domain errors to responses. Every reject reason of the
// validation pipeline has a distinct machine-readable code; anything
// unrecognized is a store or programming failure and stays a 500.
func HandleAPIError(c *gin.Context, err error) {
	detail := func(code dto.ErrorCode) *dto.ErrorDetail {
		d := dto.NewErrorDetail(code, err.Error())
		if field := apperrors.FieldOf(err); field != "" {
			d = d.WithField(field)
		}
		return d
	}

	switch {
	case errors.Is(err, apperrors.ErrMissingField):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail(dto.ErrorCodeMissingField)))
	case errors.Is(err, apperrors.ErrInvalidType):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail(dto.ErrorCodeInvalidType)))
	case errors.Is(err, apperrors.ErrInvalidFormat):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail(dto.ErrorCodeInvalidFormat)))
	case errors.Is(err, apperrors.ErrDuplicateEntry):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail(dto.ErrorCodeResourceAlreadyExists)))
	case errors.Is(err, apperrors.ErrReferenceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(detail(dto.ErrorCodeReferenceNotFound)))
	case isNotFound(err):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(detail(dto.ErrorCodeResourceNotFound)))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(detail(dto.ErrorCodeInvalidCredentials)))
	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(detail(dto.ErrorCodeExpiredToken)))
	case errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(detail(dto.ErrorCodeInvalidToken)))
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(detail(dto.ErrorCodeResourceAlreadyExists)))
	default:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
	}
}

func isNotFound(err error) bool {
	for _, target := range []error{
		apperrors.ErrRecordNotFound,
		apperrors.ErrClassNotFound,
		apperrors.ErrSectionNotFound,
		apperrors.ErrMeetingNotFound,
		apperrors.ErrRoomNotFound,
		apperrors.ErrRequisiteNotFound,
		apperrors.ErrUserNotFound,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
