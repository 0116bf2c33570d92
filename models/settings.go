package models

type Settings struct {
	ID                    int    `gorm:"primaryKey" json:"id"`
	BusinessName          string `gorm:"not null" json:"businessName"`
	ContactEmail          string `gorm:"not null" json:"contactEmail"`
	Phone                 string `gorm:"not null" json:"phone"`
	Address               string `gorm:"not null" json:"address"`
	Description           string `json:"description"`
	MondayToFridayOpen    string `gorm:"default:'09:00'" json:"mondayToFridayOpen"`
	MondayToFridayClose   string `gorm:"default:'20:00'" json:"mondayToFridayClose"`
	SaturdayOpen          string `gorm:"default:'09:00'" json:"saturdayOpen"`
	SaturdayClose         string `gorm:"default:'18:00'" json:"saturdayClose"`
	SundayOpen            string `gorm:"default:'10:00'" json:"sundayOpen"`
	SundayClose           string `gorm:"default:'17:00'" json:"sundayClose"`
	MondayToFridayEnabled bool   `gorm:"default:true" json:"mondayToFridayEnabled"`
	SaturdayEnabled       bool   `gorm:"default:true" json:"saturdayEnabled"`
	SundayEnabled         bool   `gorm:"default:true" json:"sundayEnabled"`
}

func (Settings) TableName() string {
	return "settings"
}

// UpdateSettings is a partial update of the singleton settings row.
type UpdateSettings struct {
	BusinessName          *string `json:"businessName"`
	ContactEmail          *string `json:"contactEmail" binding:"omitempty,email"`
	Phone                 *string `json:"phone"`
	Address               *string `json:"address"`
	Description           *string `json:"description"`
	MondayToFridayOpen    *string `json:"mondayToFridayOpen" binding:"omitempty,datetime=15:04"`
	MondayToFridayClose   *string `json:"mondayToFridayClose" binding:"omitempty,datetime=15:04"`
	SaturdayOpen          *string `json:"saturdayOpen" binding:"omitempty,datetime=15:04"`
	SaturdayClose         *string `json:"saturdayClose" binding:"omitempty,datetime=15:04"`
	SundayOpen            *string `json:"sundayOpen" binding:"omitempty,datetime=15:04"`
	SundayClose           *string `json:"sundayClose" binding:"omitempty,datetime=15:04"`
	MondayToFridayEnabled *bool   `json:"mondayToFridayEnabled"`
	SaturdayEnabled       *bool   `json:"saturdayEnabled"`
	SundayEnabled         *bool   `json:"sundayEnabled"`
}

// DefaultSettings returns the business profile used to seed the
// settings row the first time it is written.
func DefaultSettings() Settings {
	return Settings{
		ID:                    1,
		BusinessName:          "Massage Haven",
		ContactEmail:          "info@massagehaven.com",
		Phone:                 "(555) 123-4567",
		Address:               "123 Serenity Lane, Wellness District",
		Description:           "Your sanctuary for wellness and rejuvenation in the heart of the city.",
		MondayToFridayOpen:    "09:00",
		MondayToFridayClose:   "20:00",
		SaturdayOpen:          "09:00",
		SaturdayClose:         "18:00",
		SundayOpen:            "10:00",
		SundayClose:           "17:00",
		MondayToFridayEnabled: true,
		SaturdayEnabled:       true,
		SundayEnabled:         true,
	}
}
