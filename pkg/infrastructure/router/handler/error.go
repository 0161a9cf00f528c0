package handler

import (
	"net/http"
	"todo-backend/pkg/entity/model"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MessageResponse is the body of every non-item response.
type MessageResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// HandleError writes err as a JSON response with the matching status code.
func HandleError(c echo.Context, err error) error {
	var appErr *model.AppError
	if !errors.As(err, &appErr) {
		return c.JSON(http.StatusInternalServerError, MessageResponse{
			Message: "Internal server error",
			Error:   err.Error(),
		})
	}

	switch appErr.Code {
	case model.BadRequestError:
		return c.JSON(http.StatusBadRequest, MessageResponse{
			Message: appErr.Message,
			Error:   appErr.Detail(),
		})
	case model.NotFoundError:
		return c.JSON(http.StatusNotFound, MessageResponse{Message: appErr.Message})
	default:
		return c.JSON(http.StatusInternalServerError, MessageResponse{
			Message: appErr.Message,
			Error:   appErr.Detail(),
		})
	}
}
