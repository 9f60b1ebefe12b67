package dto

import "github.com/yigit/schedulocity/internal/app/models"

// AvailabilityPreferences are a faculty member's scheduling preferences
type AvailabilityPreferences struct {
	MaxHoursPerDay         int      `json:"maxHoursPerDay" binding:"required,min=1,max=12" example:"6"`
	MaxHoursPerWeek        int      `json:"maxHoursPerWeek" binding:"required,min=1,max=40,gtefield=MaxHoursPerDay" example:"25"`
	PreferredDays          []string `json:"preferredDays" binding:"omitempty,dive,weekday"`
	AvoidBackToBack        bool     `json:"avoidBackToBack"`
	LunchBreakRequired     bool     `json:"lunchBreakRequired"`
	LunchBreakTime         string   `json:"lunchBreakTime" binding:"omitempty,timeslot" example:"12:15-13:15"`
	NotificationPreference string   `json:"notificationPreference" binding:"omitempty,oneof=email sms push" example:"email"`
}

// DefaultPreferences are shown until a faculty member saves their own
func DefaultPreferences() AvailabilityPreferences {
	return AvailabilityPreferences{
		MaxHoursPerDay:         6,
		MaxHoursPerWeek:        25,
		PreferredDays:          []string{"Monday", "Tuesday", "Wednesday", "Thursday"},
		AvoidBackToBack:        true,
		LunchBreakRequired:     true,
		LunchBreakTime:         "12:15-13:15",
		NotificationPreference: "email",
	}
}

// AvailabilityResponse is the availability view of one faculty member
type AvailabilityResponse struct {
	FacultyName string                     `json:"facultyName" example:"Dr. John Doe"`
	Status      models.Availability        `json:"status" example:"Available"`
	WeeklyHours int                        `json:"weeklyHours" example:"6"`
	FreeSlots   int                        `json:"freeSlots" example:"29"`
	Grid        map[string]map[string]bool `json:"grid"`
	Preferences AvailabilityPreferences    `json:"preferences"`
}

// UpdateStatusRequest changes the current availability status
type UpdateStatusRequest struct {
	Availability models.Availability `json:"availability" binding:"required" example:"Busy"`
}

// ProfileResponse is the signed-in user's profile
type ProfileResponse struct {
	User        UserResponse          `json:"user"`
	Faculty     *models.FacultyMember `json:"faculty,omitempty"`
	WeeklyHours int                   `json:"weeklyHours"`
}

// UpdateProfileRequest represents profile update data
type UpdateProfileRequest struct {
	Name  string `json:"name" binding:"required,min=2,max=100" example:"Dr. John Doe"`
	Email string `json:"email" binding:"required,email" example:"john.doe@university.edu"`
	Phone string `json:"phone" binding:"omitempty,max=20" example:"+1-555-0101"`
}

// Acknowledgement is returned by form submissions that are validated and
// logged but not stored
type Acknowledgement[T any] struct {
	Accepted bool   `json:"accepted"`
	Message  string `json:"message"`
	Payload  T      `json:"payload"`
}
