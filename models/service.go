package models

import "time"

type Service struct {
	ID          int       `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `gorm:"not null" json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	Duration    int       `gorm:"not null" json:"duration"` // in minutes
	ImageURL    string    `gorm:"column:image_url;not null" json:"imageUrl"`
	Featured    bool      `gorm:"default:false" json:"featured"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (Service) TableName() string {
	return "services"
}

// InsertService is the payload accepted when creating a service.
type InsertService struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Duration    int     `json:"duration" binding:"required,gt=0"` // in minutes
	ImageURL    string  `json:"imageUrl" binding:"required"`
	Featured    bool    `json:"featured"`
}

// UpdateService carries a partial update; nil fields are left untouched.
type UpdateService struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"omitempty,gt=0"`
	Duration    *int     `json:"duration" binding:"omitempty,gt=0"`
	ImageURL    *string  `json:"imageUrl"`
	Featured    *bool    `json:"featured"`
}
