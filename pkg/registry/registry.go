package registry

import (
	"todo-backend/pkg/adapter/controller"

	"github.com/jmoiron/sqlx"
)

type registry struct {
	client *sqlx.DB
}

// Registry is an interface of registry
type Registry interface {
	NewController() controller.Controller
}

// New registers entire controller with dependencies
func New(client *sqlx.DB) Registry {
	return &registry{client: client}
}

// NewController generates controllers
func (r *registry) NewController() controller.Controller {
	return controller.Controller{
		Todo: r.NewTodoController(),
	}
}
