package model

const (
	EntityList = "list"
	EntityTodo = "todo"

	TableLists = "lists"
	TableTodos = "todos"

	FieldID        = "id"
	FieldListID    = "list_id"
	FieldName      = "name"
	FieldCompleted = "completed"
)

// List is a named, ordered collection of todos. Todos keep insertion order.
type List struct {
	ID    int    `json:"id"    db:"id"`
	Name  string `json:"name"  db:"name"`
	Todos []Todo `json:"todos" db:"-"`
}

// Todo belongs to exactly one list; its ID is only unique within that list.
type Todo struct {
	ListID    int    `json:"-"         db:"list_id"`
	ID        int    `json:"id"        db:"id"`
	Name      string `json:"name"      db:"name"`
	Completed bool   `json:"completed" db:"completed"`
}

func NewList(id int, name string) List {
	return List{
		ID:    id,
		Name:  name,
		Todos: []Todo{},
	}
}

func (l List) TotalTodosCount() int {
	return len(l.Todos)
}

func (l List) RemainingTodosCount() int {
	remaining := 0

	for _, todo := range l.Todos {
		if !todo.Completed {
			remaining++
		}
	}

	return remaining
}

// Completed reports whether the list has at least one todo and none left to do.
func (l List) Completed() bool {
	return l.TotalTodosCount() >= 1 && l.RemainingTodosCount() == 0
}

// FindTodo returns the todo with the given id, if present.
func (l List) FindTodo(id int) (Todo, bool) {
	for _, todo := range l.Todos {
		if todo.ID == id {
			return todo, true
		}
	}

	return Todo{}, false
}
