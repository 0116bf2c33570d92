package models

import "time"

type Staff struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Role      string    `gorm:"not null" json:"role"`
	Bio       string    `gorm:"not null" json:"bio"`
	ImageURL  string    `gorm:"column:image_url" json:"imageUrl"`
	Initials  string    `gorm:"not null" json:"initials"`
	Sessions  int       `gorm:"default:0" json:"sessions"`
	Rating    float64   `gorm:"default:0" json:"rating"`
	Active    bool      `gorm:"default:true" json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Staff) TableName() string {
	return "staff"
}

type InsertStaff struct {
	Name     string  `json:"name" binding:"required"`
	Role     string  `json:"role" binding:"required"`
	Bio      string  `json:"bio" binding:"required"`
	ImageURL string  `json:"imageUrl"`
	Initials string  `json:"initials" binding:"required,max=2"`
	Sessions int     `json:"sessions" binding:"omitempty,gte=0"`
	Rating   float64 `json:"rating" binding:"omitempty,gte=0,lte=5"`
	Active   *bool   `json:"active"`
}

type UpdateStaff struct {
	Name     *string  `json:"name"`
	Role     *string  `json:"role"`
	Bio      *string  `json:"bio"`
	ImageURL *string  `json:"imageUrl"`
	Initials *string  `json:"initials" binding:"omitempty,max=2"`
	Sessions *int     `json:"sessions" binding:"omitempty,gte=0"`
	Rating   *float64 `json:"rating" binding:"omitempty,gte=0,lte=5"`
	Active   *bool    `json:"active"`
}
