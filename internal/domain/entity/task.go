package entity

// Task is a single to-do item owned by exactly one identity. OwnerEmail is
// lowercase-normalized at write time; every read and mutation is scoped to it.
type Task struct {
	ID          int64   `json:"task_id"`
	OwnerEmail  string  `json:"user_email"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Checked     bool    `json:"checked"`
	Date        *string `json:"date,omitempty"`
	Duration    *int    `json:"duration,omitempty"`
	Priority    *int    `json:"priority,omitempty"`
}
