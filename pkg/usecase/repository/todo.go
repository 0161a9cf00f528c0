//go:generate mockgen -source=todo.go -destination=./mocks/todo_repository_mock.go -package=mocks
package repository

import (
	"context"
	"todo-backend/pkg/entity/model"
)

// Todo is an interface of repository

type Todo interface {
	Get(ctx context.Context, id int64) (*model.Todo, error)
	List(ctx context.Context) ([]*model.Todo, error)
	Create(ctx context.Context, input model.CreateTodoInput) (*model.Todo, error)
	Delete(ctx context.Context, id int64) (model.TodoDeleteOutcome, error)
}
