package domain

import "time"

// NoticeStatus is the lifecycle state of a notice.
type NoticeStatus string

const (
	NoticeActive   NoticeStatus = "Active"
	NoticeArchived NoticeStatus = "Archived"
)

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	TaskPending    TaskStatus = "Pending"
	TaskInProgress TaskStatus = "In Progress"
	TaskCompleted  TaskStatus = "Completed"
)

// Notice is an announcement, optionally scoped to one country.
type Notice struct {
	NoticeID string       `json:"noticeID"`
	Title    string       `json:"title"`
	Body     string       `json:"body"`
	Country  string       `json:"country,omitempty"` // Empty means all countries
	Status   NoticeStatus `json:"status"`
	AuditFields
}

// Task is a to-do item, optionally assigned to a sales rep.
type Task struct {
	TaskID      string     `json:"taskID"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	AssigneeID  string     `json:"assigneeID,omitempty"` // SalesRep reference
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Status      TaskStatus `json:"status"`
	AuditFields
}
