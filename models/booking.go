package models

import "time"

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// transitions is the allowed progression of a booking. Cancelled and
// completed are terminal.
var transitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

// IsValid reports whether s is one of the four known statuses.
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// CanTransitionTo reports whether moving from s to next is allowed.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Booking struct {
	ID        int           `gorm:"primaryKey" json:"id"`
	Name      string        `gorm:"not null" json:"name"`
	Email     string        `gorm:"not null" json:"email"`
	Phone     string        `gorm:"not null" json:"phone"`
	ServiceID int           `gorm:"column:service_id;not null" json:"serviceId"`
	Date      string        `gorm:"not null" json:"date"` // YYYY-MM-DD
	Time      string        `gorm:"not null" json:"time"` // HH:MM, 24h
	Message   string        `json:"message"`
	Status    BookingStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
}

func (Booking) TableName() string {
	return "bookings"
}

type InsertBooking struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required"`
	ServiceID int    `json:"serviceId" binding:"required,gt=0"`
	Date      string `json:"date" binding:"required,datetime=2006-01-02"`
	Time      string `json:"time" binding:"required,datetime=15:04"`
	Message   string `json:"message"`
}

// BookingWithService is a booking joined with the name of its service,
// the shape the admin screens consume.
type BookingWithService struct {
	Booking
	ServiceName string `json:"serviceName"`
}
