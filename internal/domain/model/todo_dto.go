package model

type CreateTodoDTO struct {
	Name    string `json:"name"`
	DueDate string `json:"dueDate"`
}

// UpdateTodoDTO carries a partial update. Nil pointers mean "leave unchanged".
type UpdateTodoDTO struct {
	Name    *string `json:"name"`
	DueDate *string `json:"dueDate"`
	Done    *bool   `json:"done"`
}

// TodoUpdate is the mutable field set of an item after an update was applied.
type TodoUpdate struct {
	Name    string `json:"name"`
	DueDate string `json:"dueDate"`
	Done    bool   `json:"done"`
}

type UploadUrlResponse struct {
	UploadUrl string `json:"uploadUrl"`
}

type DeleteTodoResponse struct {
	TodoID  string `json:"todoId"`
	Message string `json:"message"`
}
