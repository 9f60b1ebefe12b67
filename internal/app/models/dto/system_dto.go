package dto

import "time"

// GeneralSettings are institution-wide display settings
type GeneralSettings struct {
	InstitutionName string `json:"institutionName" binding:"required,min=2,max=200"`
	AcademicYear    string `json:"academicYear" binding:"required"`
	Timezone        string `json:"timezone" binding:"required"`
	DateFormat      string `json:"dateFormat" binding:"required,oneof=YYYY-MM-DD DD/MM/YYYY MM/DD/YYYY"`
	Language        string `json:"language" binding:"required,oneof=en es fr de"`
}

// TimetableSettings describe the teaching day
type TimetableSettings struct {
	WorkingDays        []string `json:"workingDays" binding:"required,min=1,dive,weekday"`
	StartTime          string   `json:"startTime" binding:"required,datetime=15:04"`
	EndTime            string   `json:"endTime" binding:"required,datetime=15:04"`
	SlotDuration       int      `json:"slotDuration" binding:"required,min=15,max=240"`
	BreakDuration      int      `json:"breakDuration" binding:"min=0,max=120"`
	LunchBreakStart    string   `json:"lunchBreakStart" binding:"required,datetime=15:04"`
	LunchBreakDuration int      `json:"lunchBreakDuration" binding:"min=0,max=180"`
	MaxClassesPerDay   int      `json:"maxClassesPerDay" binding:"required,min=1,max=12"`
	AutoScheduling     bool     `json:"autoScheduling"`
}

// NotificationSettings select the notification channels
type NotificationSettings struct {
	Email              bool `json:"email"`
	SMS                bool `json:"sms"`
	Push               bool `json:"push"`
	ScheduleChanges    bool `json:"scheduleChanges"`
	LeaveRequests      bool `json:"leaveRequests"`
	SystemMaintenance  bool `json:"systemMaintenance"`
	ReminderBeforeMins int  `json:"reminderBeforeMins" binding:"min=0,max=1440"`
}

// SecuritySettings are the account policy settings
type SecuritySettings struct {
	PasswordMinLength   int  `json:"passwordMinLength" binding:"required,min=6,max=64"`
	RequireSpecialChars bool `json:"requireSpecialChars"`
	SessionTimeoutMins  int  `json:"sessionTimeoutMins" binding:"required,min=5,max=1440"`
	MaxLoginAttempts    int  `json:"maxLoginAttempts" binding:"required,min=1,max=20"`
	TwoFactorAuth       bool `json:"twoFactorAuth"`
	AuditLogging        bool `json:"auditLogging"`
}

// SystemStatus is live information about the running service
type SystemStatus struct {
	StoreCounts         map[string]int `json:"storeCounts"`
	SessionStore        string         `json:"sessionStore" example:"memory"`
	SessionStoreHealthy bool           `json:"sessionStoreHealthy"`
	ActiveSessions      int            `json:"activeSessions"`
	Uptime              string         `json:"uptime"`
	StartedAt           time.Time      `json:"startedAt"`
}

// SystemConfigResponse is the system configuration view
type SystemConfigResponse struct {
	General       GeneralSettings      `json:"general"`
	Timetable     TimetableSettings    `json:"timetable"`
	Notifications NotificationSettings `json:"notifications"`
	Security      SecuritySettings     `json:"security"`
	Status        SystemStatus         `json:"status"`
}

// DataStatsResponse counts the rows of every table
type DataStatsResponse struct {
	Counts map[string]int `json:"counts"`
	Total  int            `json:"total"`
}

// ExportQuery selects what to export
type ExportQuery struct {
	Type   string `form:"type" binding:"required,oneof=all faculty subjects resources batches timetable leave-requests"`
	Format string `form:"format" binding:"omitempty,oneof=csv xlsx"`
}

// BackupResponse describes one stored backup
type BackupResponse struct {
	Name      string    `json:"name" example:"backup-20240301T090000Z.json"`
	Size      int64     `json:"size" example:"123456"`
	CreatedAt time.Time `json:"createdAt"`
}
