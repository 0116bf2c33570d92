package storage

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/urboijano/MassageHaven/config"
	"github.com/urboijano/MassageHaven/models"
)

// ErrNotFound is returned by every backend when the requested record
// does not exist.
var ErrNotFound = errors.New("record not found")

// Storage is the repository contract shared by the in-memory and the
// Postgres backends. Handlers only ever see this interface.
type Storage interface {
	// Users
	GetUser(id int) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	CreateUser(username, passwordHash string) (*models.User, error)

	// Services
	GetAllServices() ([]models.Service, error)
	GetFeaturedServices() ([]models.Service, error)
	GetService(id int) (*models.Service, error)
	CreateService(in models.InsertService) (*models.Service, error)
	UpdateService(id int, in models.UpdateService) (*models.Service, error)
	DeleteService(id int) error

	// Staff
	GetAllStaff() ([]models.Staff, error)
	GetActiveStaff() ([]models.Staff, error)
	GetStaff(id int) (*models.Staff, error)
	CreateStaff(in models.InsertStaff) (*models.Staff, error)
	UpdateStaff(id int, in models.UpdateStaff) (*models.Staff, error)
	DeleteStaff(id int) error

	// Bookings
	GetAllBookings() ([]models.Booking, error)
	GetBooking(id int) (*models.Booking, error)
	GetBookingsByDate(date string) ([]models.Booking, error)
	CreateBooking(in models.InsertBooking) (*models.Booking, error)
	UpdateBookingStatus(id int, status models.BookingStatus) (*models.Booking, error)
	DeleteBooking(id int) error

	// Settings singleton
	GetSettings() (*models.Settings, error)
	UpdateSettings(in models.UpdateSettings) (*models.Settings, error)
}

// New selects the backend once at startup: Postgres when a DSN is
// configured, otherwise the seeded in-memory store.
func New(cfg *config.Config) (Storage, error) {
	if cfg.DatabaseURL != "" {
		db, err := config.ConnectDB(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		logrus.Info("using database storage")
		return NewDatabaseStorage(db), nil
	}

	logrus.Info("no DATABASE_URL configured, using in-memory storage")
	return NewMemStorage(), nil
}
