package models

import (
	"gorm.io/gorm"
)

// ClientProviderLink records an owner a provider added to their client
// roster manually, independent of any appointment history.
type ClientProviderLink struct {
	gorm.Model
	ProviderID uint `json:"provider_id" gorm:"uniqueIndex:idx_provider_owner"`
	OwnerID    uint `json:"owner_id" gorm:"uniqueIndex:idx_provider_owner"`
}
