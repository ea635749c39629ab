package model

import (
	"time"

	"task-manager.com/task-manager/internal/constants"
)

type Task struct {
	ID          string                 `gorm:"primaryKey;size:36" json:"id"`
	UserID      string                 `gorm:"size:36;not null;index" json:"userId"`
	Title       string                 `gorm:"not null" json:"title"`
	Description string                 `json:"description,omitempty"`
	Priority    constants.TaskPriority `gorm:"type:varchar(10);not null;default:medium" json:"priority"`
	DueDate     *time.Time             `json:"dueDate,omitempty"`
	Completed   bool                   `gorm:"not null;default:false" json:"completed"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
}
