package model

// Todo is the model entity for the todos table.
type Todo struct {
	ID         int64  `json:"id" db:"id"`
	Name       string `json:"name" db:"name"`
	Priority   string `json:"priority" db:"priority"`
	IsComplete bool   `json:"isComplete" db:"isComplete"`
	IsFun      bool   `json:"isFun" db:"isFun"`
}

// DefaultTodoPriority is assigned when a todo is created without a priority.
const DefaultTodoPriority = "low"

// CreateTodoInput represents a request body for creating todos.
// Nil fields were absent from the request.
type CreateTodoInput struct {
	Name     *string `json:"name"`
	Priority *string `json:"priority"`
	IsFun    *bool   `json:"isFun"`
}

// TodoDeleteOutcome reports what a delete did to the table.
type TodoDeleteOutcome int

const (
	// TodoNotDeleted means no row had the given id.
	TodoNotDeleted TodoDeleteOutcome = iota
	// TodoDeleted means the row was removed and other rows remain.
	TodoDeleted
	// TodoDeletedAndReset means the last row was removed and the id counter was reset.
	TodoDeletedAndReset
)

func (o TodoDeleteOutcome) String() string {
	switch o {
	case TodoDeleted:
		return "deleted"
	case TodoDeletedAndReset:
		return "deleted_and_reset"
	default:
		return "not_found"
	}
}
