package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"todo-backend/pkg/adapter/controller"
	"todo-backend/pkg/entity/model"

	"github.com/labstack/echo/v4"
)

// Todo serves the /todos endpoints.
type Todo struct {
	controller controller.Todo
}

// NewTodo creates todo handlers backed by the controller.
func NewTodo(c controller.Todo) *Todo {
	return &Todo{controller: c}
}

// List handles GET /todos.
func (h *Todo) List(c echo.Context) error {
	todos, err := h.controller.List(c.Request().Context())
	if err != nil {
		return HandleError(c, err)
	}
	return c.JSON(http.StatusOK, todos)
}

// Get handles GET /todos/:id.
func (h *Todo) Get(c echo.Context) error {
	id, ok := todoID(c)
	if !ok {
		return HandleError(c, model.NewNotFoundError(c.Param("id")))
	}

	todo, err := h.controller.Get(c.Request().Context(), id)
	if err != nil {
		return HandleError(c, err)
	}
	if todo == nil {
		return HandleError(c, model.NewNotFoundError(id))
	}
	return c.JSON(http.StatusOK, todo)
}

// Create handles POST /todos.
func (h *Todo) Create(c echo.Context) error {
	var input model.CreateTodoInput
	if err := c.Bind(&input); err != nil {
		return HandleError(c, model.NewInvalidParamError("Invalid request body", err))
	}

	todo, err := h.controller.Create(c.Request().Context(), input)
	if err != nil {
		return HandleError(c, err)
	}
	return c.JSON(http.StatusCreated, todo)
}

// Delete handles DELETE /todos/:id.
func (h *Todo) Delete(c echo.Context) error {
	id, ok := todoID(c)
	if !ok {
		return HandleError(c, model.NewNotFoundError(c.Param("id")))
	}

	outcome, err := h.controller.Delete(c.Request().Context(), id)
	if err != nil {
		return HandleError(c, err)
	}

	switch outcome {
	case model.TodoDeleted:
		return c.JSON(http.StatusOK, MessageResponse{
			Message: fmt.Sprintf("Todo item %d deleted.", id),
		})
	case model.TodoDeletedAndReset:
		return c.JSON(http.StatusOK, MessageResponse{
			Message: fmt.Sprintf("Todo item %d deleted. ID counter reset.", id),
		})
	default:
		return HandleError(c, model.NewNotFoundError(id))
	}
}

// todoID reads the :id path parameter. A value that is not an integer
// cannot match any row.
func todoID(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
