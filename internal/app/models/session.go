package models

import "time"

// SessionState is the server-side view state of one signed-in client.
// A logged-out client simply has no state.
type SessionState struct {
	ID               string    `json:"id"`
	User             User      `json:"user"`
	ActiveView       ViewID    `json:"activeView"`
	SidebarCollapsed bool      `json:"sidebarCollapsed"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
