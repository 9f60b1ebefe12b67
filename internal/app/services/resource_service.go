package services

import (
	"context"
	"fmt"
	"math"
	"slices"

	"github.com/rs/zerolog"
	"github.com/yigit/schedulocity/internal/app/models"
	"github.com/yigit/schedulocity/internal/app/models/dto"
	"github.com/yigit/schedulocity/internal/app/query"
	"github.com/yigit/schedulocity/internal/app/repositories"
	"github.com/yigit/schedulocity/internal/pkg/apperrors"
)

// ResourceService defines the interface for the classroom and laboratory inventory
type ResourceService interface {
	List(ctx context.Context, actor *Actor, q dto.ResourceListQuery) (*dto.ListResult[models.Resource, dto.ResourceStats], error)
	Get(ctx context.Context, actor *Actor, kind models.ResourceKind, id int64) (*models.Resource, error)
}

type resourceServiceImpl struct {
	resourceRepo *repositories.ResourceRepository
	logger       zerolog.Logger
}

// NewResourceService creates a new resource service instance
func NewResourceService(resourceRepo *repositories.ResourceRepository, logger zerolog.Logger) ResourceService {
	return &resourceServiceImpl{
		resourceRepo: resourceRepo,
		logger:       logger,
	}
}

// requireAdministrator guards the inventory even when a caller reaches it
// without the view middleware
func requireAdministrator(actor *Actor) error {
	if !actor.Policy.Allows(models.ViewResources) {
		return fmt.Errorf("%w: resources are managed by administrators", apperrors.ErrPermissionDenied)
	}
	return nil
}

func (s *resourceServiceImpl) List(ctx context.Context, actor *Actor, q dto.ResourceListQuery) (*dto.ListResult[models.Resource, dto.ResourceStats], error) {
	if err := requireAdministrator(actor); err != nil {
		return nil, err
	}

	all, err := s.resourceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving resources: %w", err)
	}

	items, err := query.Apply(ctx, all,
		func(r models.Resource) bool { return query.Matches(q.Kind, string(r.Kind)) },
		func(r models.Resource) bool { return query.Matches(q.Building, r.Building) },
		func(r models.Resource) bool { return query.Matches(q.Status, string(r.Status)) },
		func(r models.Resource) bool { return query.Contains(q.Search, r.Name, r.Building, r.Type) },
	)
	if err != nil {
		return nil, err
	}

	filters := dto.FilterOptions{
		DepartmentSelector: false,
		Kinds:              []string{string(models.KindClassroom), string(models.KindLaboratory)},
		Statuses:           stringsOf(models.ResourceStatuses),
		Buildings:          buildingsOf(all),
	}

	filtered := q.Search != "" || q.Kind != "" || q.Building != "" || q.Status != ""
	result := newListResult(items, ResourceStatsOf(items), q.Page, filters, emptyMessage("classrooms or laboratories", filtered))
	return &result, nil
}

func (s *resourceServiceImpl) Get(ctx context.Context, actor *Actor, kind models.ResourceKind, id int64) (*models.Resource, error) {
	if err := requireAdministrator(actor); err != nil {
		return nil, err
	}
	return s.resourceRepo.GetByID(ctx, kind, id)
}

// ResourceStatsOf summarizes a resource slice
func ResourceStatsOf(items []models.Resource) dto.ResourceStats {
	stats := dto.ResourceStats{Total: len(items)}
	for _, r := range items {
		stats.TotalCapacity += r.Capacity
		switch r.Status {
		case models.StatusAvailable:
			stats.Available++
		case models.StatusOccupied:
			stats.Occupied++
		case models.StatusMaintenance:
			stats.Maintenance++
		}
	}
	if stats.Total > 0 {
		stats.AverageCapacity = int(math.Round(float64(stats.TotalCapacity) / float64(stats.Total)))
	}
	return stats
}

func buildingsOf(items []models.Resource) []string {
	var out []string
	for _, r := range items {
		if !slices.Contains(out, r.Building) {
			out = append(out, r.Building)
		}
	}
	slices.Sort(out)
	return out
}
