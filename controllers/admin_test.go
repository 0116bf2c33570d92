package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urboijano/MassageHaven/controllers"
	"github.com/urboijano/MassageHaven/models"
	"github.com/urboijano/MassageHaven/storage"
)

func TestAdminStats(t *testing.T) {
	t.Run("income counts completed bookings only", func(t *testing.T) {
		r, _ := setupRouter(t, storage.NewMemStorage())
		token := adminToken(t)

		// Booking 1: Swedish Massage (100), driven to completed.
		w := doJSON(t, r, http.MethodPost, "/api/bookings", validBooking(4), "")
		require.Equal(t, http.StatusCreated, w.Code)
		w = doJSON(t, r, http.MethodPatch, "/api/bookings/1/status",
			map[string]string{"status": "confirmed"}, token)
		require.Equal(t, http.StatusOK, w.Code)
		w = doJSON(t, r, http.MethodPatch, "/api/bookings/1/status",
			map[string]string{"status": "completed"}, token)
		require.Equal(t, http.StatusOK, w.Code)

		// Booking 2: Deep Tissue (120), stays pending and contributes nothing.
		in := validBooking(1)
		in.Time = "14:00"
		w = doJSON(t, r, http.MethodPost, "/api/bookings", in, "")
		require.Equal(t, http.StatusCreated, w.Code)

		w = doJSON(t, r, http.MethodGet, "/api/admin/stats", nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var stats controllers.AdminStats
		decodeBody(t, w, &stats)
		assert.Equal(t, 2, stats.TotalBookings)
		assert.Equal(t, "100.00", stats.TotalIncome)
		assert.Equal(t, 3, stats.ActiveStaff)
		assert.Equal(t, "4.8", stats.ClientSatisfaction)
	})

	t.Run("zero staff yields 0.0 satisfaction, not NaN", func(t *testing.T) {
		r, _ := setupRouter(t, storage.NewEmptyMemStorage())
		token := adminToken(t)

		w := doJSON(t, r, http.MethodGet, "/api/admin/stats", nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var stats controllers.AdminStats
		decodeBody(t, w, &stats)
		assert.Equal(t, 0, stats.TotalBookings)
		assert.Equal(t, "0.00", stats.TotalIncome)
		assert.Equal(t, 0, stats.ActiveStaff)
		assert.Equal(t, "0.0", stats.ClientSatisfaction)
	})
}

func TestRecentBookings(t *testing.T) {
	r, _ := setupRouter(t, storage.NewMemStorage())
	token := adminToken(t)

	for i := 0; i < 7; i++ {
		in := models.InsertBooking{
			Name:      fmt.Sprintf("Client %d", i+1),
			Email:     fmt.Sprintf("client%d@example.com", i+1),
			Phone:     "+15551234567",
			ServiceID: 1,
			Date:      "2024-06-01",
			Time:      fmt.Sprintf("%02d:00", 8+i),
		}
		w := doJSON(t, r, http.MethodPost, "/api/bookings", in, "")
		require.Equal(t, http.StatusCreated, w.Code)
	}

	// Confirm one so it drops out of the pending list.
	w := doJSON(t, r, http.MethodPatch, "/api/bookings/7/status",
		map[string]string{"status": "confirmed"}, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/admin/bookings/recent", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	var recent []models.BookingWithService
	decodeBody(t, w, &recent)
	require.Len(t, recent, 5)
	assert.Equal(t, "Client 6", recent[0].Name) // newest pending first
	for _, b := range recent {
		assert.Equal(t, models.StatusPending, b.Status)
		assert.Equal(t, "Deep Tissue Massage", b.ServiceName)
	}
}

func TestAdminBookingsPagination(t *testing.T) {
	r, _ := setupRouter(t, storage.NewMemStorage())
	token := adminToken(t)

	for i := 0; i < 12; i++ {
		in := models.InsertBooking{
			Name:      fmt.Sprintf("Client %d", i+1),
			Email:     fmt.Sprintf("client%d@example.com", i+1),
			Phone:     "+15551234567",
			ServiceID: 2,
			Date:      "2024-06-02",
			Time:      fmt.Sprintf("%02d:30", 8+i),
		}
		w := doJSON(t, r, http.MethodPost, "/api/bookings", in, "")
		require.Equal(t, http.StatusCreated, w.Code)
	}

	t.Run("fixed page size of ten", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/admin/bookings?page=1", nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var page controllers.AdminBookingsPage
		decodeBody(t, w, &page)
		assert.Len(t, page.Bookings, 10)
		assert.Equal(t, 1, page.CurrentPage)
		assert.Equal(t, 2, page.TotalPages)
		assert.Equal(t, 12, page.TotalItems)
	})

	t.Run("second page holds the remainder", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/admin/bookings?page=2", nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var page controllers.AdminBookingsPage
		decodeBody(t, w, &page)
		assert.Len(t, page.Bookings, 2)
	})

	t.Run("status filter narrows the list", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPatch, "/api/bookings/1/status",
			map[string]string{"status": "confirmed"}, token)
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, r, http.MethodGet, "/api/admin/bookings?status=confirmed", nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var page controllers.AdminBookingsPage
		decodeBody(t, w, &page)
		require.Len(t, page.Bookings, 1)
		assert.Equal(t, models.StatusConfirmed, page.Bookings[0].Status)
		assert.Equal(t, 1, page.TotalItems)
	})
}

func TestPopularServices(t *testing.T) {
	r, _ := setupRouter(t, storage.NewMemStorage())
	token := adminToken(t)

	// 3 bookings for service 1, 1 for service 2.
	counts := []int{1, 1, 1, 2}
	for i, serviceID := range counts {
		in := models.InsertBooking{
			Name:      fmt.Sprintf("Client %d", i+1),
			Email:     fmt.Sprintf("client%d@example.com", i+1),
			Phone:     "+15551234567",
			ServiceID: serviceID,
			Date:      "2024-06-03",
			Time:      fmt.Sprintf("%02d:00", 9+i),
		}
		w := doJSON(t, r, http.MethodPost, "/api/bookings", in, "")
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, r, http.MethodGet, "/api/admin/services/popular", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	var stats []controllers.ServiceStats
	decodeBody(t, w, &stats)
	require.Len(t, stats, 6)

	assert.Equal(t, "Deep Tissue Massage", stats[0].Name)
	assert.Equal(t, 3, stats[0].TotalBookings)
	assert.Equal(t, 75, stats[0].Percentage)
	assert.Equal(t, "Hot Stone Therapy", stats[1].Name)
	assert.Equal(t, 1, stats[1].TotalBookings)
	assert.Equal(t, 25, stats[1].Percentage)

	// Every booking references an existing service, so the shares
	// cover the whole collection up to rounding.
	sum := 0
	for _, s := range stats {
		sum += s.Percentage
	}
	assert.InDelta(t, 100, sum, float64(len(stats)))
}

// TestBookingLifecycleEndToEnd walks the whole flow: service creation,
// public booking, status progression, income reporting and cleanup.
func TestBookingLifecycleEndToEnd(t *testing.T) {
	r, _ := setupRouter(t, storage.NewEmptyMemStorage())
	token := adminToken(t)

	w := doJSON(t, r, http.MethodPost, "/api/services", models.InsertService{
		Name:        "Swedish Massage",
		Description: "A gentle, relaxing massage.",
		Price:       100,
		Duration:    60,
		ImageURL:    "x",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)
	var svc models.Service
	decodeBody(t, w, &svc)
	require.Equal(t, 1, svc.ID)

	w = doJSON(t, r, http.MethodPost, "/api/bookings", validBooking(1), "")
	require.Equal(t, http.StatusCreated, w.Code)
	var booking models.BookingWithService
	decodeBody(t, w, &booking)
	assert.Equal(t, "Swedish Massage", booking.ServiceName)
	assert.Equal(t, models.StatusPending, booking.Status)

	w = doJSON(t, r, http.MethodGet, "/api/admin/bookings/recent", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	var recent []models.BookingWithService
	decodeBody(t, w, &recent)
	require.Len(t, recent, 1)

	w = doJSON(t, r, http.MethodPatch, "/api/bookings/1/status",
		map[string]string{"status": "confirmed"}, token)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodPatch, "/api/bookings/1/status",
		map[string]string{"status": "completed"}, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/admin/stats", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	var stats controllers.AdminStats
	decodeBody(t, w, &stats)
	assert.Equal(t, "100.00", stats.TotalIncome)

	w = doJSON(t, r, http.MethodDelete, "/api/bookings/1", nil, token)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/admin/bookings/recent", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	recent = nil
	decodeBody(t, w, &recent)
	assert.Empty(t, recent)
}
