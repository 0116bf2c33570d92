// services/sweeper_service.go
package services

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/urboijano/MassageHaven/models"
	"github.com/urboijano/MassageHaven/storage"
	"github.com/urboijano/MassageHaven/utils"
)

// SweeperService moves confirmed bookings whose date has passed into
// the completed state so that income reporting stays current without
// manual admin clicks.
type SweeperService struct {
	store storage.Storage
}

func NewSweeperService(store storage.Storage) *SweeperService {
	return &SweeperService{store: store}
}

func (s *SweeperService) StartScheduler() {
	c := cron.New()

	// Run every day shortly after midnight.
	c.AddFunc("10 0 * * *", func() {
		s.CompletePastBookings(time.Now())
	})

	c.Start()
	logrus.Info("booking sweeper scheduler started")
}

// CompletePastBookings completes every confirmed booking dated before
// now and returns how many were updated.
func (s *SweeperService) CompletePastBookings(now time.Time) int {
	bookings, err := s.store.GetAllBookings()
	if err != nil {
		logrus.WithError(err).Error("sweeper: failed to fetch bookings")
		return 0
	}

	completed := 0
	for _, b := range bookings {
		if b.Status != models.StatusConfirmed {
			continue
		}
		date, err := time.ParseInLocation("2006-01-02", b.Date, now.Location())
		if err != nil {
			logrus.WithField("bookingId", b.ID).WithError(err).Warn("sweeper: unparseable booking date")
			continue
		}
		if utils.DaysBetween(date, now) <= 0 {
			continue // today or future
		}
		if !b.Status.CanTransitionTo(models.StatusCompleted) {
			continue
		}
		if _, err := s.store.UpdateBookingStatus(b.ID, models.StatusCompleted); err != nil {
			logrus.WithField("bookingId", b.ID).WithError(err).Error("sweeper: failed to complete booking")
			continue
		}
		completed++
	}

	if completed > 0 {
		logrus.WithField("count", completed).Info("sweeper: completed past bookings")
	}
	return completed
}
