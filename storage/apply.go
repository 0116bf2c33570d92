package storage

import "github.com/urboijano/MassageHaven/models"

// The apply helpers merge partial-update payloads onto a stored record.
// Both backends share them so partial-update semantics cannot drift.

func applyServiceUpdate(svc *models.Service, in models.UpdateService) {
	if in.Name != nil {
		svc.Name = *in.Name
	}
	if in.Description != nil {
		svc.Description = *in.Description
	}
	if in.Price != nil {
		svc.Price = *in.Price
	}
	if in.Duration != nil {
		svc.Duration = *in.Duration
	}
	if in.ImageURL != nil {
		svc.ImageURL = *in.ImageURL
	}
	if in.Featured != nil {
		svc.Featured = *in.Featured
	}
}

func applyStaffUpdate(st *models.Staff, in models.UpdateStaff) {
	if in.Name != nil {
		st.Name = *in.Name
	}
	if in.Role != nil {
		st.Role = *in.Role
	}
	if in.Bio != nil {
		st.Bio = *in.Bio
	}
	if in.ImageURL != nil {
		st.ImageURL = *in.ImageURL
	}
	if in.Initials != nil {
		st.Initials = *in.Initials
	}
	if in.Sessions != nil {
		st.Sessions = *in.Sessions
	}
	if in.Rating != nil {
		st.Rating = *in.Rating
	}
	if in.Active != nil {
		st.Active = *in.Active
	}
}

func applySettingsUpdate(set *models.Settings, in models.UpdateSettings) {
	if in.BusinessName != nil {
		set.BusinessName = *in.BusinessName
	}
	if in.ContactEmail != nil {
		set.ContactEmail = *in.ContactEmail
	}
	if in.Phone != nil {
		set.Phone = *in.Phone
	}
	if in.Address != nil {
		set.Address = *in.Address
	}
	if in.Description != nil {
		set.Description = *in.Description
	}
	if in.MondayToFridayOpen != nil {
		set.MondayToFridayOpen = *in.MondayToFridayOpen
	}
	if in.MondayToFridayClose != nil {
		set.MondayToFridayClose = *in.MondayToFridayClose
	}
	if in.SaturdayOpen != nil {
		set.SaturdayOpen = *in.SaturdayOpen
	}
	if in.SaturdayClose != nil {
		set.SaturdayClose = *in.SaturdayClose
	}
	if in.SundayOpen != nil {
		set.SundayOpen = *in.SundayOpen
	}
	if in.SundayClose != nil {
		set.SundayClose = *in.SundayClose
	}
	if in.MondayToFridayEnabled != nil {
		set.MondayToFridayEnabled = *in.MondayToFridayEnabled
	}
	if in.SaturdayEnabled != nil {
		set.SaturdayEnabled = *in.SaturdayEnabled
	}
	if in.SundayEnabled != nil {
		set.SundayEnabled = *in.SundayEnabled
	}
}
