package domain

import "gorm.io/gorm"

type Notification struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	UserID  uint   `gorm:"not null;index" json:"user_id"`
	Kind    string `gorm:"type:varchar(100);not null" json:"kind"` // event key, e.g. application.status_changed
	Message string `gorm:"type:text;not null" json:"message"`
	Read    bool   `gorm:"not null;default:false" json:"read"`
	gorm.Model
}
