package usecase

import (
	"strings"
	"todo-backend/pkg/entity/model"
)

// ValidateCreateTodoInput checks the required fields of CreateTodoInput.
func ValidateCreateTodoInput(input model.CreateTodoInput) error {
	if input.Name == nil || strings.TrimSpace(*input.Name) == "" {
		return model.NewValidationError("Name is required")
	}
	return nil
}

// withCreateDefaults fills the optional fields of a validated input.
func withCreateDefaults(input model.CreateTodoInput) model.CreateTodoInput {
	if input.Priority == nil {
		priority := model.DefaultTodoPriority
		input.Priority = &priority
	}
	if input.IsFun == nil {
		isFun := false
		input.IsFun = &isFun
	}
	return input
}
