package auth

import (
	"fmt"
	"slices"

	"github.com/yigit/schedulocity/internal/app/models"
	"github.com/yigit/schedulocity/internal/app/query"
	"github.com/yigit/schedulocity/internal/pkg/apperrors"
)

// NavItem is one sidebar entry
type NavItem struct {
	ID    models.ViewID `json:"id" example:"dashboard"`
	Label string        `json:"label" example:"Dashboard"`
}

// Policy is the fixed navigation table and data scope of one role.
// It is resolved once at login and stored with the session.
type Policy struct {
	role  models.Role
	nav   []NavItem
	scope func(user models.User) query.Scope
}

var facultyPolicy = Policy{
	role: models.RoleFaculty,
	nav: []NavItem{
		{models.ViewDashboard, "Dashboard"},
		{models.ViewSchedule, "My Schedule"},
		{models.ViewAvailability, "Availability"},
		{models.ViewLeaveRequests, "Leave Requests"},
		{models.ViewProfile, "Profile"},
	},
	scope: func(u models.User) query.Scope { return query.Scope{Owner: u.Name} },
}

var hodPolicy = Policy{
	role: models.RoleHOD,
	nav: []NavItem{
		{models.ViewDashboard, "Dashboard"},
		{models.ViewTimetable, "Timetable"},
		{models.ViewFaculty, "Faculty Management"},
		{models.ViewSubjects, "Subjects"},
		{models.ViewReports, "Reports"},
		{models.ViewLeaveApprovals, "Leave Approvals"},
	},
	scope: func(u models.User) query.Scope { return query.Scope{Department: u.Department} },
}

var administratorPolicy = Policy{
	role: models.RoleAdministrator,
	nav: []NavItem{
		{models.ViewDashboard, "Dashboard"},
		{models.ViewTimetable, "Timetable Management"},
		{models.ViewFaculty, "Faculty Management"},
		{models.ViewSubjects, "Subject Management"},
		{models.ViewResources, "Resource Management"},
		{models.ViewAnalytics, "Analytics"},
		{models.ViewSystemConfig, "System Config"},
		{models.ViewDataManagement, "Data Management"},
	},
	scope: func(models.User) query.Scope { return query.Scope{} },
}

// PolicyFor returns the policy of role
func PolicyFor(role models.Role) (Policy, error) {
	switch role {
	case models.RoleFaculty:
		return facultyPolicy, nil
	case models.RoleHOD:
		return hodPolicy, nil
	case models.RoleAdministrator:
		return administratorPolicy, nil
	}
	return Policy{}, fmt.Errorf("%w: %q", apperrors.ErrUnknownRole, role)
}

// Role returns the role the policy belongs to
func (p Policy) Role() models.Role { return p.role }

// Navigation returns a copy of the ordered navigation table
func (p Policy) Navigation() []NavItem {
	return slices.Clone(p.nav)
}

// Allows reports whether the role may render view
func (p Policy) Allows(view models.ViewID) bool {
	if view == models.ViewResources && p.role != models.RoleAdministrator {
		return false
	}
	return slices.ContainsFunc(p.nav, func(n NavItem) bool { return n.ID == view })
}

// Resolve returns view when the role may render it, otherwise the dashboard
func (p Policy) Resolve(view models.ViewID) models.ViewID {
	if p.Allows(view) {
		return view
	}
	return models.ViewDashboard
}

// Scope returns the data scope of user under this policy
func (p Policy) Scope(user models.User) query.Scope {
	if p.scope == nil {
		return query.Scope{}
	}
	return p.scope(user)
}

// DepartmentSelector reports whether list views expose a department filter
func (p Policy) DepartmentSelector() bool {
	return p.role == models.RoleAdministrator
}

// FacultySelector reports whether timetable views expose a faculty filter
func (p Policy) FacultySelector() bool {
	return p.role != models.RoleFaculty
}
