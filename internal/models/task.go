package models

import "time"

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "To Do"
	TaskStatusInProgress TaskStatus = "In Progress"
	TaskStatusDone       TaskStatus = "Done"
)

// ValidTaskStatus reports whether s is one of the status choices.
func ValidTaskStatus(s string) bool {
	switch TaskStatus(s) {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "Low"
	TaskPriorityMedium TaskPriority = "Medium"
	TaskPriorityHigh   TaskPriority = "High"
)

// ValidTaskPriority reports whether s is one of the priority choices.
func ValidTaskPriority(s string) bool {
	switch TaskPriority(s) {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

type Task struct {
	ID           uint64       `gorm:"primarykey" json:"id"`
	Title        string       `gorm:"type:varchar(100);not null" json:"title"`
	Description  string       `gorm:"type:text;not null" json:"description"`
	Status       TaskStatus   `gorm:"type:varchar(20);not null;index" json:"status"`
	Priority     TaskPriority `gorm:"type:varchar(20);not null" json:"priority"`
	AssignedToID *uint64      `gorm:"index" json:"assigned_to"`
	ProjectID    uint64       `gorm:"not null;index" json:"project"`
	CreatedAt    time.Time    `gorm:"autoCreateTime" json:"created_at"`
	DueDate      time.Time    `gorm:"not null" json:"due_date"`

	// Relations
	AssignedTo *User   `gorm:"foreignKey:AssignedToID;constraint:OnDelete:SET NULL" json:"-"`
	Project    Project `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"-"`
	Comments   []Comment `gorm:"foreignKey:TaskID" json:"-"`
}
