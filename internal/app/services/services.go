// Package services holds the per-view business logic. Services read the mock
// store through the repositories, apply the caller's role scope and shape
// the DTOs returned by the controllers.
package services

import (
	"fmt"

	"github.com/yigit/schedulocity/internal/app/auth"
	"github.com/yigit/schedulocity/internal/app/models"
	"github.com/yigit/schedulocity/internal/app/models/dto"
	"github.com/yigit/schedulocity/internal/app/query"
	"github.com/yigit/schedulocity/internal/pkg/helpers"
	"github.com/yigit/schedulocity/internal/pkg/websocket"
)

// Actor is the signed-in user a request acts for
type Actor struct {
	SessionID string
	User      models.User
	Policy    auth.Policy
}

// NewActor resolves the role policy of user
func NewActor(sessionID string, user models.User) (*Actor, error) {
	policy, err := auth.PolicyFor(user.Role)
	if err != nil {
		return nil, err
	}
	return &Actor{SessionID: sessionID, User: user, Policy: policy}, nil
}

// Scope is the data scope of the actor
func (a *Actor) Scope() query.Scope {
	return a.Policy.Scope(a.User)
}

// EventPublisher receives session state changes
type EventPublisher interface {
	Publish(event websocket.Event)
}

type noopPublisher struct{}

func (noopPublisher) Publish(websocket.Event) {}

// departmentFilter drops the department selection for roles without a
// department selector; their scope already pins the department.
func departmentFilter(actor *Actor, department string) string {
	if !actor.Policy.DepartmentSelector() {
		return ""
	}
	return department
}

func newListResult[T any, S any](items []T, stats S, page dto.Page, filters dto.FilterOptions, emptyMessage string) dto.ListResult[T, S] {
	paged, info := helpers.Paginate(items, page)
	result := dto.ListResult[T, S]{
		Items:      paged,
		Stats:      stats,
		Filters:    filters,
		Pagination: info,
	}
	if len(items) == 0 {
		result.Items = []T{}
		result.Empty = true
		result.EmptyMessage = emptyMessage
	}
	return result
}

// emptyMessage names what the filters found nothing of
func emptyMessage(what string, filtered bool) string {
	if filtered {
		return fmt.Sprintf("No %s match the current filters", what)
	}
	return fmt.Sprintf("No %s found", what)
}

func stringsOf[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
