package usecase

import (
	"context"
	"todo-backend/pkg/entity/model"
	"todo-backend/pkg/usecase/repository"
)

type todoUseCase struct {
	todoRepository repository.Todo
}

type Todo interface {
	Get(ctx context.Context, id int64) (*model.Todo, error)
	List(ctx context.Context) ([]*model.Todo, error)
	Create(ctx context.Context, input model.CreateTodoInput) (*model.Todo, error)
	Delete(ctx context.Context, id int64) (model.TodoDeleteOutcome, error)
}

// This function creates new todo use case
func NewTodoUseCase(r repository.Todo) Todo {
	return &todoUseCase{todoRepository: r}
}

// Get returns nil without an error when no todo has the id.
func (t *todoUseCase) Get(ctx context.Context, id int64) (*model.Todo, error) {
	return t.todoRepository.Get(ctx, id)
}

func (t *todoUseCase) List(ctx context.Context) ([]*model.Todo, error) {
	return t.todoRepository.List(ctx)
}

func (t *todoUseCase) Create(
	ctx context.Context,
	input model.CreateTodoInput,
) (*model.Todo, error) {
	if err := ValidateCreateTodoInput(input); err != nil {
		return nil, err
	}
	return t.todoRepository.Create(ctx, withCreateDefaults(input))
}

func (t *todoUseCase) Delete(
	ctx context.Context,
	id int64,
) (model.TodoDeleteOutcome, error) {
	return t.todoRepository.Delete(ctx, id)
}
