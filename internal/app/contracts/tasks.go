package contracts

import "context"

// TaskItem is a deadline entry from the external task list. Due is either an
// RFC3339 date-time or a bare YYYY-MM-DD date.
type TaskItem struct {
	ID    string `json:"id,omitempty"`
	Title string `json:"title"`
	Due   string `json:"due"`
}

// TaskClient is the external task-list collaborator. Absence of the
// integration is tolerated by callers; implementations may also be nil-like
// stubs returning empty lists.
type TaskClient interface {
	ListTasks(ctx context.Context) ([]TaskItem, error)
	InsertTask(ctx context.Context, task *TaskItem) (*TaskItem, error)
}
