package controller

import (
	"context"
	"todo-backend/pkg/entity/model"
	usecase "todo-backend/pkg/usecase/usecase/todo"
)

type Todo interface {
	Get(ctx context.Context, id int64) (*model.Todo, error)
	List(ctx context.Context) ([]*model.Todo, error)
	Create(ctx context.Context, input model.CreateTodoInput) (*model.Todo, error)
	Delete(ctx context.Context, id int64) (model.TodoDeleteOutcome, error)
}

type todoController struct {
	todoUseCase usecase.Todo
}

// Create new todo controller

func NewTodoController(tu usecase.Todo) Todo {
	return &todoController{todoUseCase: tu}
}

func (tc *todoController) Get(ctx context.Context, id int64) (*model.Todo, error) {
	return tc.todoUseCase.Get(ctx, id)
}

func (tc *todoController) List(ctx context.Context) ([]*model.Todo, error) {
	return tc.todoUseCase.List(ctx)
}

func (tc *todoController) Create(
	ctx context.Context,
	input model.CreateTodoInput,
) (*model.Todo, error) {
	return tc.todoUseCase.Create(ctx, input)
}

func (tc *todoController) Delete(
	ctx context.Context,
	id int64,
) (model.TodoDeleteOutcome, error) {
	return tc.todoUseCase.Delete(ctx, id)
}
