package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/schedulocity/internal/app/models"
	"github.com/yigit/schedulocity/internal/app/models/dto"
	"github.com/yigit/schedulocity/internal/pkg/apperrors"
)

func facultyIDs(items []models.FacultyMember) []int64 {
	ids := make([]int64, len(items))
	for i, f := range items {
		ids[i] = f.ID
	}
	return ids
}

func TestFacultyService_List(t *testing.T) {
	f := newFixture(t)
	svc := NewFacultyService(f.repos.FacultyRepository, nopLogger)

	tests := []struct {
		name         string
		username     string
		query        dto.FacultyListQuery
		wantIDs      []int64
		wantTotal    int
		wantSelector bool
		wantEmpty    bool
	}{
		{name: "hod sees own department", username: "alice.johnson", wantIDs: []int64{1, 21}},
		{name: "hod department filter ignored", username: "alice.johnson", query: dto.FacultyListQuery{Department: "Physics"}, wantIDs: []int64{1, 21}},
		{name: "hod search by subject", username: "alice.johnson", query: dto.FacultyListQuery{Search: "machine"}, wantIDs: []int64{21}},
		{name: "administrator sees all", username: "admin", wantTotal: 30, wantSelector: true},
		{name: "administrator department filter", username: "admin", query: dto.FacultyListQuery{Department: "Physics"}, wantIDs: []int64{3, 23}, wantSelector: true},
		{name: "administrator availability filter", username: "admin", query: dto.FacultyListQuery{Availability: "On Leave"}, wantIDs: []int64{3, 10, 17, 24}, wantSelector: true},
		{name: "availability filter ignores case", username: "admin", query: dto.FacultyListQuery{Availability: "on leave"}, wantIDs: []int64{3, 10, 17, 24}, wantSelector: true},
		{name: "administrator department filter ignores case", username: "admin", query: dto.FacultyListQuery{Department: "physics"}, wantIDs: []int64{3, 23}, wantSelector: true},
		{name: "search is case insensitive", username: "admin", query: dto.FacultyListQuery{Search: "QUANTUM"}, wantIDs: []int64{3}, wantSelector: true},
		{name: "no match", username: "admin", query: dto.FacultyListQuery{Search: "zzz"}, wantIDs: []int64{}, wantSelector: true, wantEmpty: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.List(context.Background(), f.actor(t, tt.username), tt.query)
			require.NoError(t, err)

			if tt.wantIDs != nil {
				assert.Equal(t, tt.wantIDs, facultyIDs(result.Items))
			}
			if tt.wantTotal > 0 {
				assert.Len(t, result.Items, tt.wantTotal)
			}
			assert.Equal(t, tt.wantSelector, result.Filters.DepartmentSelector)
			assert.Equal(t, tt.wantEmpty, result.Empty)
			if tt.wantEmpty {
				assert.NotEmpty(t, result.EmptyMessage)
			}
			assert.Equal(t, FacultyStatsOf(result.Items), result.Stats, "stats describe the returned set")
		})
	}
}

func TestFacultyService_FiltersCombineWithAnd(t *testing.T) {
	f := newFixture(t)
	svc := NewFacultyService(f.repos.FacultyRepository, nopLogger)
	admin := f.actor(t, "admin")
	ctx := context.Background()

	both, err := svc.List(ctx, admin, dto.FacultyListQuery{Department: "Computer Science", Search: "dr."})
	require.NoError(t, err)
	byDept, err := svc.List(ctx, admin, dto.FacultyListQuery{Department: "Computer Science"})
	require.NoError(t, err)
	bySearch, err := svc.List(ctx, admin, dto.FacultyListQuery{Search: "dr."})
	require.NoError(t, err)

	for _, id := range facultyIDs(both.Items) {
		assert.Contains(t, facultyIDs(byDept.Items), id)
		assert.Contains(t, facultyIDs(bySearch.Items), id)
	}
	assert.Equal(t, []int64{1}, facultyIDs(both.Items))
}

func TestSubjectService_List(t *testing.T) {
	f := newFixture(t)
	svc := NewSubjectService(f.repos.SubjectRepository, f.repos.FacultyRepository, nopLogger)

	result, err := svc.List(context.Background(), f.actor(t, "alice.johnson"), dto.SubjectListQuery{})
	require.NoError(t, err)
	require.NotEmpty(t, result.Items)
	for _, it := range result.Items {
		assert.Equal(t, "Computer Science", it.Department)
	}
	assert.Equal(t, SubjectStatsOf(result.Items), result.Stats)

	for _, it := range result.Items {
		if it.Name == "Machine Learning" {
			assert.Equal(t, []string{"Prof. Daniel Kim"}, it.AssignedFaculty)
		}
	}

	semester, err := svc.List(context.Background(), f.actor(t, "admin"), dto.SubjectListQuery{Semester: 1})
	require.NoError(t, err)
	for _, it := range semester.Items {
		assert.Equal(t, 1, it.Semester)
	}
}

func TestSubjectStatsOf(t *testing.T) {
	items := []dto.SubjectItem{
		{Subject: models.Subject{Credits: 3}, AssignedFaculty: []string{"a"}},
		{Subject: models.Subject{Credits: 4}, AssignedFaculty: []string{"a", "b"}},
		{Subject: models.Subject{Credits: 4}},
	}
	stats := SubjectStatsOf(items)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 11, stats.TotalCredits)
	assert.InDelta(t, 3.7, stats.AverageCredits, 0.0001)
	assert.Equal(t, 3, stats.AssignedFaculty)

	assert.Equal(t, dto.SubjectStats{}, SubjectStatsOf(nil))
}

func TestResourceService(t *testing.T) {
	f := newFixture(t)
	svc := NewResourceService(f.repos.ResourceRepository, nopLogger)
	ctx := context.Background()

	t.Run("administrator lists every room", func(t *testing.T) {
		result, err := svc.List(ctx, f.actor(t, "admin"), dto.ResourceListQuery{})
		require.NoError(t, err)
		assert.Equal(t, 330, result.Stats.Total)
		assert.Equal(t, result.Stats.Total, result.Stats.Available+result.Stats.Occupied+result.Stats.Maintenance)
		assert.Equal(t, ResourceStatsOf(result.Items), result.Stats)
	})

	t.Run("kind filter", func(t *testing.T) {
		result, err := svc.List(ctx, f.actor(t, "admin"), dto.ResourceListQuery{Kind: "laboratory"})
		require.NoError(t, err)
		assert.Equal(t, 150, result.Stats.Total)
		for _, r := range result.Items {
			assert.Equal(t, models.KindLaboratory, r.Kind)
		}
	})

	t.Run("other roles are denied", func(t *testing.T) {
		for _, username := range []string{"john.doe", "alice.johnson"} {
			_, err := svc.List(ctx, f.actor(t, username), dto.ResourceListQuery{})
			assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
		}
	})

	t.Run("get by kind and id", func(t *testing.T) {
		r, err := svc.Get(ctx, f.actor(t, "admin"), models.KindClassroom, 1)
		require.NoError(t, err)
		assert.Equal(t, models.KindClassroom, r.Kind)

		_, err = svc.Get(ctx, f.actor(t, "admin"), models.KindClassroom, 9999)
		assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	})
}
