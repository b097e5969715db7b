package manager

import (
	"context"

	"github.com/runoshun/locrec/internal/domain"
)

// TodoInput contains the form values of a to-do.
type TodoInput struct {
	DueDate     domain.Date
	Task        string
	Description string
}

// Todos manages the to-do list stored under domain.TodoListKey.
type Todos struct {
	*Manager[domain.Todo]
	clock domain.Clock
	ids   domain.IDGenerator
}

// NewTodos creates a Todos manager.
func NewTodos(store domain.KVStore, clock domain.Clock, ids domain.IDGenerator, logger domain.Logger) *Todos {
	return &Todos{
		Manager: New[domain.Todo](store, domain.TodoListKey, logger),
		clock:   clock,
		ids:     ids,
	}
}

// Submit creates a to-do, or replaces the one being edited.
func (t *Todos) Submit(ctx context.Context, in TodoInput) (domain.Todo, error) {
	return t.submit(ctx, func(prev *domain.Todo) (domain.Todo, error) {
		todo := domain.Todo{
			Task:        in.Task,
			Description: in.Description,
			DueDate:     in.DueDate,
		}
		if prev != nil {
			todo.ID = prev.ID
			todo.Created = prev.Created
		} else {
			todo.ID = t.ids.NewID()
			todo.Created = t.clock.Now()
		}
		return todo, nil
	})
}

// Delete removes a to-do. No confirmation is involved.
func (t *Todos) Delete(ctx context.Context, id string) error {
	return t.Remove(ctx, id)
}

// InputOfTodo returns the form values of an existing to-do.
func InputOfTodo(todo domain.Todo) TodoInput {
	return TodoInput{
		Task:        todo.Task,
		Description: todo.Description,
		DueDate:     todo.DueDate,
	}
}
