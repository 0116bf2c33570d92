package storage

import (
	"sort"
	"sync"
	"time"

	"github.com/urboijano/MassageHaven/models"
	"github.com/urboijano/MassageHaven/utils"
)

// MemStorage keeps everything in process-local maps. It is the default
// backend when no database is configured and is what the test suite
// runs against.
type MemStorage struct {
	mu sync.RWMutex

	users    map[int]models.User
	services map[int]models.Service
	staff    map[int]models.Staff
	bookings map[int]models.Booking
	settings *models.Settings

	userCounter    int
	serviceCounter int
	staffCounter   int
	bookingCounter int
}

func NewMemStorage() *MemStorage {
	s := NewEmptyMemStorage()
	s.seed()
	return s
}

// NewEmptyMemStorage returns a store without fixture data.
func NewEmptyMemStorage() *MemStorage {
	return &MemStorage{
		users:          make(map[int]models.User),
		services:       make(map[int]models.Service),
		staff:          make(map[int]models.Staff),
		bookings:       make(map[int]models.Booking),
		userCounter:    1,
		serviceCounter: 1,
		staffCounter:   1,
		bookingCounter: 1,
	}
}

// User methods

func (s *MemStorage) GetUser(id int) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (s *MemStorage) GetUserByUsername(username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStorage) CreateUser(username, passwordHash string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := models.User{
		ID:       s.userCounter,
		Username: username,
		Password: passwordHash,
	}
	s.userCounter++
	s.users[u.ID] = u
	return &u, nil
}

// Service methods

func (s *MemStorage) GetAllServices() ([]models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Service, 0, len(s.services))
	for _, svc := range s.services {
		out = append(out, svc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemStorage) GetFeaturedServices() ([]models.Service, error) {
	all, _ := s.GetAllServices()
	out := make([]models.Service, 0, len(all))
	for _, svc := range all {
		if svc.Featured {
			out = append(out, svc)
		}
	}
	return out, nil
}

func (s *MemStorage) GetService(id int) (*models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	svc, ok := s.services[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &svc, nil
}

func (s *MemStorage) CreateService(in models.InsertService) (*models.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	svc := models.Service{
		ID:          s.serviceCounter,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Duration:    in.Duration,
		ImageURL:    in.ImageURL,
		Featured:    in.Featured,
		CreatedAt:   time.Now(),
	}
	s.serviceCounter++
	s.services[svc.ID] = svc
	return &svc, nil
}

func (s *MemStorage) UpdateService(id int, in models.UpdateService) (*models.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	svc, ok := s.services[id]
	if !ok {
		return nil, ErrNotFound
	}
	applyServiceUpdate(&svc, in)
	s.services[id] = svc
	return &svc, nil
}

func (s *MemStorage) DeleteService(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.services[id]; !ok {
		return ErrNotFound
	}
	delete(s.services, id)
	return nil
}

// Staff methods

func (s *MemStorage) GetAllStaff() ([]models.Staff, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Staff, 0, len(s.staff))
	for _, st := range s.staff {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemStorage) GetActiveStaff() ([]models.Staff, error) {
	all, _ := s.GetAllStaff()
	out := make([]models.Staff, 0, len(all))
	for _, st := range all {
		if st.Active {
			out = append(out, st)
		}
	}
	return out, nil
}

func (s *MemStorage) GetStaff(id int) (*models.Staff, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.staff[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &st, nil
}

func (s *MemStorage) CreateStaff(in models.InsertStaff) (*models.Staff, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	st := models.Staff{
		ID:        s.staffCounter,
		Name:      in.Name,
		Role:      in.Role,
		Bio:       in.Bio,
		ImageURL:  in.ImageURL,
		Initials:  in.Initials,
		Sessions:  in.Sessions,
		Rating:    in.Rating,
		Active:    active,
		CreatedAt: time.Now(),
	}
	s.staffCounter++
	s.staff[st.ID] = st
	return &st, nil
}

func (s *MemStorage) UpdateStaff(id int, in models.UpdateStaff) (*models.Staff, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.staff[id]
	if !ok {
		return nil, ErrNotFound
	}
	applyStaffUpdate(&st, in)
	s.staff[id] = st
	return &st, nil
}

func (s *MemStorage) DeleteStaff(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.staff[id]; !ok {
		return ErrNotFound
	}
	delete(s.staff, id)
	return nil
}

// Booking methods

func (s *MemStorage) GetAllBookings() ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemStorage) GetBooking(id int) (*models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &b, nil
}

func (s *MemStorage) GetBookingsByDate(date string) ([]models.Booking, error) {
	all, _ := s.GetAllBookings()
	out := make([]models.Booking, 0)
	for _, b := range all {
		if b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *MemStorage) CreateBooking(in models.InsertBooking) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := models.Booking{
		ID:        s.bookingCounter,
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
	s.bookingCounter++
	s.bookings[b.ID] = b
	return &b, nil
}

func (s *MemStorage) UpdateBookingStatus(id int, status models.BookingStatus) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	b.Status = status
	s.bookings[id] = b
	return &b, nil
}

func (s *MemStorage) DeleteBooking(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bookings[id]; !ok {
		return ErrNotFound
	}
	delete(s.bookings, id)
	return nil
}

// Settings methods

func (s *MemStorage) GetSettings() (*models.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.settings == nil {
		return nil, ErrNotFound
	}
	cp := *s.settings
	return &cp, nil
}

func (s *MemStorage) UpdateSettings(in models.UpdateSettings) (*models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.settings == nil {
		def := models.DefaultSettings()
		s.settings = &def
	}
	applySettingsUpdate(s.settings, in)
	cp := *s.settings
	return &cp, nil
}

// seed populates the store with the default business fixtures.
func (s *MemStorage) seed() {
	hash, err := utils.HashPassword("password")
	if err != nil {
		panic("failed to hash seed password: " + err.Error())
	}
	s.CreateUser("admin", hash)

	defaultServices := []models.InsertService{
		{
			Name:        "Deep Tissue Massage",
			Description: "A therapeutic massage focusing on realigning deeper layers of muscles and connective tissue.",
			Price:       120,
			Duration:    60,
			ImageURL:    "https://images.unsplash.com/photo-1544161515-4ab6ce6db874?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=500",
			Featured:    true,
		},
		{
			Name:        "Hot Stone Therapy",
			Description: "Smooth, heated stones are placed on specific points of the body to release tension and stress.",
			Price:       150,
			Duration:    90,
			ImageURL:    "https://images.unsplash.com/photo-1600334129128-685c5582fd35?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=500",
			Featured:    true,
		},
		{
			Name:        "Luxury Facial",
			Description: "A rejuvenating facial treatment using premium organic products to hydrate and revitalize your skin.",
			Price:       135,
			Duration:    75,
			ImageURL:    "https://images.unsplash.com/photo-1570172619644-dfd03ed5d881?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=500",
			Featured:    true,
		},
		{
			Name:        "Swedish Massage",
			Description: "A gentle, relaxing massage that improves circulation and relieves muscle tension.",
			Price:       100,
			Duration:    60,
			ImageURL:    "https://images.unsplash.com/photo-1519824145371-296894a0daa9?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=500",
		},
		{
			Name:        "Aromatherapy Massage",
			Description: "A therapeutic massage using essential oils to promote relaxation and well-being.",
			Price:       130,
			Duration:    75,
			ImageURL:    "https://images.unsplash.com/photo-1537211560895-1e9a1aaa7d32?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=500",
		},
		{
			Name:        "Couples Massage",
			Description: "Share a relaxing massage experience with a partner or friend in our dedicated couples suite.",
			Price:       220,
			Duration:    60,
			ImageURL:    "https://images.unsplash.com/photo-1591343395082-e120087004b4?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=500",
		},
	}
	for _, svc := range defaultServices {
		s.CreateService(svc)
	}

	defaultStaff := []models.InsertStaff{
		{
			Name:     "Jennifer Davis",
			Role:     "Senior Massage Therapist",
			Bio:      "Specializes in deep tissue and sports massage with over 8 years of experience.",
			Initials: "JD",
			Sessions: 342,
			Rating:   4.9,
		},
		{
			Name:     "Robert Martinez",
			Role:     "Lead Facial Specialist",
			Bio:      "Expert in luxury facials and skincare treatments with certifications in advanced techniques.",
			Initials: "RM",
			Sessions: 287,
			Rating:   4.8,
		},
		{
			Name:     "Andrea Patel",
			Role:     "Aromatherapy Specialist",
			Bio:      "Specialized in holistic treatments and aromatherapy with knowledge of essential oils.",
			Initials: "AP",
			Sessions: 263,
			Rating:   4.7,
		},
	}
	for _, st := range defaultStaff {
		s.CreateStaff(st)
	}

	def := models.DefaultSettings()
	s.settings = &def
}
