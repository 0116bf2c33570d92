package storage

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/urboijano/MassageHaven/models"
)

// DatabaseStorage persists everything through gorm. Identifier
// generation is left to the database's auto-increment.
type DatabaseStorage struct {
	db *gorm.DB
}

func NewDatabaseStorage(db *gorm.DB) *DatabaseStorage {
	return &DatabaseStorage{db: db}
}

func wrapErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// User methods

func (s *DatabaseStorage) GetUser(id int) (*models.User, error) {
	var u models.User
	if err := s.db.First(&u, id).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &u, nil
}

func (s *DatabaseStorage) GetUserByUsername(username string) (*models.User, error) {
	var u models.User
	if err := s.db.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &u, nil
}

func (s *DatabaseStorage) CreateUser(username, passwordHash string) (*models.User, error) {
	u := models.User{Username: username, Password: passwordHash}
	if err := s.db.Create(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// Service methods

func (s *DatabaseStorage) GetAllServices() ([]models.Service, error) {
	var services []models.Service
	if err := s.db.Order("id").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (s *DatabaseStorage) GetFeaturedServices() ([]models.Service, error) {
	var services []models.Service
	if err := s.db.Where("featured = ?", true).Order("id").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (s *DatabaseStorage) GetService(id int) (*models.Service, error) {
	var svc models.Service
	if err := s.db.First(&svc, id).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &svc, nil
}

func (s *DatabaseStorage) CreateService(in models.InsertService) (*models.Service, error) {
	svc := models.Service{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Duration:    in.Duration,
		ImageURL:    in.ImageURL,
		Featured:    in.Featured,
	}
	if err := s.db.Create(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (s *DatabaseStorage) UpdateService(id int, in models.UpdateService) (*models.Service, error) {
	var svc models.Service
	if err := s.db.First(&svc, id).Error; err != nil {
		return nil, wrapErr(err)
	}
	applyServiceUpdate(&svc, in)
	if err := s.db.Save(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (s *DatabaseStorage) DeleteService(id int) error {
	result := s.db.Delete(&models.Service{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Staff methods

func (s *DatabaseStorage) GetAllStaff() ([]models.Staff, error) {
	var staff []models.Staff
	if err := s.db.Order("id").Find(&staff).Error; err != nil {
		return nil, err
	}
	return staff, nil
}

func (s *DatabaseStorage) GetActiveStaff() ([]models.Staff, error) {
	var staff []models.Staff
	if err := s.db.Where("active = ?", true).Order("id").Find(&staff).Error; err != nil {
		return nil, err
	}
	return staff, nil
}

func (s *DatabaseStorage) GetStaff(id int) (*models.Staff, error) {
	var st models.Staff
	if err := s.db.First(&st, id).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &st, nil
}

func (s *DatabaseStorage) CreateStaff(in models.InsertStaff) (*models.Staff, error) {
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	st := models.Staff{
		Name:     in.Name,
		Role:     in.Role,
		Bio:      in.Bio,
		ImageURL: in.ImageURL,
		Initials: in.Initials,
		Sessions: in.Sessions,
		Rating:   in.Rating,
		Active:   active,
	}
	if err := s.db.Create(&st).Error; err != nil {
		return nil, err
	}
	return &st, nil
}

func (s *DatabaseStorage) UpdateStaff(id int, in models.UpdateStaff) (*models.Staff, error) {
	var st models.Staff
	if err := s.db.First(&st, id).Error; err != nil {
		return nil, wrapErr(err)
	}
	applyStaffUpdate(&st, in)
	if err := s.db.Save(&st).Error; err != nil {
		return nil, err
	}
	return &st, nil
}

func (s *DatabaseStorage) DeleteStaff(id int) error {
	result := s.db.Delete(&models.Staff{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Booking methods

func (s *DatabaseStorage) GetAllBookings() ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.db.Order("id").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *DatabaseStorage) GetBooking(id int) (*models.Booking, error) {
	var b models.Booking
	if err := s.db.First(&b, id).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &b, nil
}

func (s *DatabaseStorage) GetBookingsByDate(date string) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.db.Where("date = ?", date).Order("id").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *DatabaseStorage) CreateBooking(in models.InsertBooking) (*models.Booking, error) {
	b := models.Booking{
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		ServiceID: in.ServiceID,
		Date:      in.Date,
		Time:      in.Time,
		Message:   in.Message,
		Status:    models.StatusPending,
		CreatedAt: time.Now(),
	}
	if err := s.db.Create(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *DatabaseStorage) UpdateBookingStatus(id int, status models.BookingStatus) (*models.Booking, error) {
	var b models.Booking
	if err := s.db.First(&b, id).Error; err != nil {
		return nil, wrapErr(err)
	}
	b.Status = status
	if err := s.db.Save(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *DatabaseStorage) DeleteBooking(id int) error {
	result := s.db.Delete(&models.Booking{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Settings methods

func (s *DatabaseStorage) GetSettings() (*models.Settings, error) {
	var set models.Settings
	if err := s.db.First(&set).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &set, nil
}

func (s *DatabaseStorage) UpdateSettings(in models.UpdateSettings) (*models.Settings, error) {
	var set models.Settings
	err := s.db.First(&set).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		set = models.DefaultSettings()
		set.ID = 0 // let the database assign it
		applySettingsUpdate(&set, in)
		if err := s.db.Create(&set).Error; err != nil {
			return nil, err
		}
		return &set, nil
	}
	if err != nil {
		return nil, err
	}

	applySettingsUpdate(&set, in)
	if err := s.db.Save(&set).Error; err != nil {
		return nil, err
	}
	return &set, nil
}
