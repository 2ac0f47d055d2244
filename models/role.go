package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleOwner     = "owner"
	RoleProvider  = "provider"
	RoleEvaluator = "evaluator"
	RoleAdmin     = "admin"
)

type Role struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"unique"`
	Description string         `json:"description"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}
