package models

import (
	"gorm.io/gorm"
)

type Tutorial struct {
	gorm.Model
	Category string `json:"category"`
	Title    string `json:"title"`
	Content  string `json:"content"`
}
