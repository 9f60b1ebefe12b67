package bootstrap

import (
	"time"

	"github.com/yigit/schedulocity/internal/app/models/dto"
	appServices "github.com/yigit/schedulocity/internal/app/services"
	"github.com/yigit/schedulocity/internal/config"
	"github.com/yigit/schedulocity/internal/pkg/helpers"
)

// systemSettings copies the display settings out of the loaded configuration
func systemSettings(cfg *config.Config) appServices.SystemSettings {
	ttl := helpers.ParseDuration(cfg.Session.TTL, 30*time.Minute)

	return appServices.SystemSettings{
		General: dto.GeneralSettings{
			InstitutionName: cfg.General.InstitutionName,
			AcademicYear:    cfg.General.AcademicYear,
			Timezone:        cfg.General.Timezone,
			DateFormat:      cfg.General.DateFormat,
			Language:        cfg.General.Language,
		},
		Timetable: dto.TimetableSettings{
			WorkingDays:        append([]string(nil), cfg.Timetable.WorkingDays...),
			StartTime:          cfg.Timetable.StartTime,
			EndTime:            cfg.Timetable.EndTime,
			SlotDuration:       cfg.Timetable.SlotDurationMin,
			BreakDuration:      cfg.Timetable.BreakDurationMin,
			LunchBreakStart:    cfg.Timetable.LunchBreakStart,
			LunchBreakDuration: cfg.Timetable.LunchBreakDuration,
			MaxClassesPerDay:   cfg.Timetable.MaxClassesPerDay,
			AutoScheduling:     cfg.Timetable.AutoScheduling,
		},
		Notifications: dto.NotificationSettings{
			Email:              cfg.Notifications.Email,
			SMS:                cfg.Notifications.SMS,
			Push:               cfg.Notifications.Push,
			ScheduleChanges:    cfg.Notifications.ScheduleChanges,
			LeaveRequests:      cfg.Notifications.LeaveRequests,
			SystemMaintenance:  cfg.Notifications.SystemMaintenance,
			ReminderBeforeMins: cfg.Notifications.ReminderBeforeMins,
		},
		Security: dto.SecuritySettings{
			PasswordMinLength:   cfg.Security.PasswordMinLength,
			RequireSpecialChars: cfg.Security.RequireSpecialChars,
			SessionTimeoutMins:  int(ttl.Minutes()),
			MaxLoginAttempts:    cfg.Security.MaxLoginAttempts,
			TwoFactorAuth:       cfg.Security.TwoFactorAuth,
			AuditLogging:        cfg.Security.AuditLogging,
		},
	}
}
