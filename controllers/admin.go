package controllers

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/urboijano/MassageHaven/models"
	"github.com/urboijano/MassageHaven/utils"
)

const adminPageSize = 10

type AdminStats struct {
	TotalBookings      int    `json:"totalBookings"`
	TotalIncome        string `json:"totalIncome"`
	ActiveStaff        int    `json:"activeStaff"`
	ClientSatisfaction string `json:"clientSatisfaction"`
}

type ServiceStats struct {
	ID                int     `json:"id"`
	Name              string  `json:"name"`
	Price             float64 `json:"price"`
	Duration          int     `json:"duration"`
	TotalBookings     int     `json:"totalBookings"`
	CompletedBookings int     `json:"completedBookings"`
	Percentage        int     `json:"percentage"`
}

type AdminBookingsPage struct {
	Bookings    []models.BookingWithService `json:"bookings"`
	CurrentPage int                         `json:"currentPage"`
	TotalPages  int                         `json:"totalPages"`
	TotalItems  int                         `json:"totalItems"`
}

// GetAdminStats computes the dashboard summary over the full
// collections. Small data set, recomputed on every request.
func (h *Handler) GetAdminStats(c *gin.Context) {
	bookings, err := h.store.GetAllBookings()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error fetching admin statistics")
		return
	}
	staff, err := h.store.GetAllStaff()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error fetching admin statistics")
		return
	}
	services, err := h.store.GetAllServices()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error fetching admin statistics")
		return
	}

	priceByID := make(map[int]float64, len(services))
	for _, svc := range services {
		priceByID[svc.ID] = svc.Price
	}

	// Income counts completed bookings only.
	var totalIncome float64
	for _, b := range bookings {
		if b.Status == models.StatusCompleted {
			totalIncome += priceByID[b.ServiceID]
		}
	}

	activeStaff := 0
	var totalRating float64
	for _, st := range staff {
		if st.Active {
			activeStaff++
		}
		totalRating += st.Rating
	}

	satisfaction := 0.0
	if len(staff) > 0 {
		satisfaction = totalRating / float64(len(staff))
	}

	c.JSON(http.StatusOK, AdminStats{
		TotalBookings:      len(bookings),
		TotalIncome:        fmt.Sprintf("%.2f", totalIncome),
		ActiveStaff:        activeStaff,
		ClientSatisfaction: fmt.Sprintf("%.1f", satisfaction),
	})
}

// GetRecentBookings returns the five newest pending bookings.
func (h *Handler) GetRecentBookings(c *gin.Context) {
	bookings, err := h.store.GetAllBookings()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error fetching recent bookings")
		return
	}
	services, err := h.store.GetAllServices()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error fetching recent bookings")
		return
	}

	pending := make([]models.Booking, 0)
	for _, b := range bookings {
		if b.Status == models.StatusPending {
			pending = append(pending, b)
		}
	}
	sort.Slice(pending, func(i, j int) bool {
		return pending[i].CreatedAt.After(pending[j].CreatedAt)
	})
	if len(pending) > 5 {
		pending = pending[:5]
	}

	c.JSON(http.StatusOK, joinServiceNames(pending, services))
}

// GetAdminBookings lists bookings newest first with an optional status
// filter, ten per page.
func (h *Handler) GetAdminBookings(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	statusFilter := c.DefaultQuery("status", "all")

	bookings, err := h.store.GetAllBookings()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error fetching admin bookings")
		return
	}
	services, err := h.store.GetAllServices()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error fetching admin bookings")
		return
	}

	if statusFilter != "all" {
		filtered := make([]models.Booking, 0, len(bookings))
		for _, b := range bookings {
			if string(b.Status) == statusFilter {
				filtered = append(filtered, b)
			}
		}
		bookings = filtered
	}

	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})

	totalItems := len(bookings)
	totalPages := (totalItems + adminPageSize - 1) / adminPageSize
	start := (page - 1) * adminPageSize
	if start > totalItems {
		start = totalItems
	}
	end := start + adminPageSize
	if end > totalItems {
		end = totalItems
	}

	c.JSON(http.StatusOK, AdminBookingsPage{
		Bookings:    joinServiceNames(bookings[start:end], services),
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
	})
}

// GetPopularServices ranks services by how often they were booked,
// regardless of booking status.
func (h *Handler) GetPopularServices(c *gin.Context) {
	services, err := h.store.GetAllServices()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error fetching service statistics")
		return
	}
	bookings, err := h.store.GetAllBookings()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error fetching service statistics")
		return
	}

	total := len(bookings)
	if total == 0 {
		total = 1 // avoid dividing by zero; every percentage comes out 0
	}

	stats := make([]ServiceStats, 0, len(services))
	for _, svc := range services {
		count := 0
		completed := 0
		for _, b := range bookings {
			if b.ServiceID != svc.ID {
				continue
			}
			count++
			if b.Status == models.StatusCompleted {
				completed++
			}
		}
		stats = append(stats, ServiceStats{
			ID:                svc.ID,
			Name:              svc.Name,
			Price:             svc.Price,
			Duration:          svc.Duration,
			TotalBookings:     count,
			CompletedBookings: completed,
			Percentage:        int(float64(count)/float64(total)*100 + 0.5),
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		return stats[i].TotalBookings > stats[j].TotalBookings
	})

	c.JSON(http.StatusOK, stats)
}

func joinServiceNames(bookings []models.Booking, services []models.Service) []models.BookingWithService {
	nameByID := make(map[int]string, len(services))
	for _, svc := range services {
		nameByID[svc.ID] = svc.Name
	}

	out := make([]models.BookingWithService, 0, len(bookings))
	for _, b := range bookings {
		name, ok := nameByID[b.ServiceID]
		if !ok {
			name = "Unknown Service"
		}
		out = append(out, models.BookingWithService{Booking: b, ServiceName: name})
	}
	return out
}
