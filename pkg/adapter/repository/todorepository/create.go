package todorepository

import (
	"context"
	"todo-backend/pkg/entity/model"
	"todo-backend/pkg/infrastructure/datastore"
)

// Create inserts a todo. Defaults must already be applied to input.
func (r *todoRepository) Create(
	ctx context.Context,
	input model.CreateTodoInput,
) (*model.Todo, error) {
	todo := &model.Todo{
		Name:       deref(input.Name),
		Priority:   deref(input.Priority),
		IsComplete: false,
		IsFun:      input.IsFun != nil && *input.IsFun,
	}

	query, args := r.builder.Insert(datastore.TodoTable).
		Columns("name", "priority", "isComplete", "isFun").
		Values(todo.Name, todo.Priority, todo.IsComplete, todo.IsFun).
		Query()

	res, err := r.client.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, model.NewDBError(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, model.NewDBError(err)
	}
	todo.ID = id

	return todo, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
