package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/schedulocity/internal/app/models"
	"github.com/yigit/schedulocity/internal/app/models/dto"
	"github.com/yigit/schedulocity/internal/db"
	"github.com/yigit/schedulocity/internal/pkg/apperrors"
	"github.com/yigit/schedulocity/internal/pkg/export"
	"github.com/yigit/schedulocity/internal/pkg/filestorage"
)

// Export formats
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

const backupPrefix = "backup"

// ExportFile is a rendered export ready to download
type ExportFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// Snapshotter copies the whole mock store
type Snapshotter interface {
	StoreCounter
	Snapshot() db.Tables
}

// backupDocument is the JSON layout of a backup file
type backupDocument struct {
	CreatedAt time.Time `json:"createdAt"`
	Tables    db.Tables `json:"tables"`
}

// DataService serves the data management view
type DataService interface {
	Stats(ctx context.Context) (*dto.DataStatsResponse, error)
	Export(ctx context.Context, q dto.ExportQuery) (*ExportFile, error)
	CreateBackup(ctx context.Context, actor *Actor) (*dto.BackupResponse, error)
	ListBackups(ctx context.Context) ([]dto.BackupResponse, error)
	OpenBackup(ctx context.Context, name string) (io.ReadCloser, error)
	DeleteBackup(ctx context.Context, actor *Actor, name string) error
	// RestoreBackup always fails for an existing backup: the store is read-only
	RestoreBackup(ctx context.Context, actor *Actor, name string) error
}

type dataServiceImpl struct {
	store   Snapshotter
	storage filestorage.FileStorage
	now     func() time.Time
	logger  zerolog.Logger
}

// NewDataService creates a new data management service instance
func NewDataService(store Snapshotter, storage filestorage.FileStorage, logger zerolog.Logger) DataService {
	return &dataServiceImpl{
		store:   store,
		storage: storage,
		now:     time.Now,
		logger:  logger,
	}
}

func (s *dataServiceImpl) Stats(ctx context.Context) (*dto.DataStatsResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	counts := s.store.Counts()
	total := 0
	for _, n := range counts {
		total += n
	}
	return &dto.DataStatsResponse{Counts: counts, Total: total}, nil
}

func (s *dataServiceImpl) Export(ctx context.Context, q dto.ExportQuery) (*ExportFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	format := q.Format
	if format == "" {
		format = FormatCSV
	}

	sheets := Sheets(s.store.Snapshot())
	var selected []export.Sheet
	for _, sheet := range sheets {
		if q.Type == "all" || sheet.Name == q.Type {
			selected = append(selected, sheet)
		}
	}
	if len(selected) == 0 {
		return nil, fmt.Errorf("%w: unknown export type %q", apperrors.ErrBadRequest, q.Type)
	}

	stamp := s.now().UTC().Format("20060102")
	switch format {
	case FormatCSV:
		if len(selected) > 1 {
			return nil, apperrors.NewValidationError("CSV exports one table at a time", map[string]interface{}{
				"format": "use xlsx to export all tables",
			})
		}
		var buf bytes.Buffer
		if err := export.WriteCSV(&buf, selected[0]); err != nil {
			return nil, err
		}
		return &ExportFile{
			Name:        fmt.Sprintf("%s-%s.csv", selected[0].Name, stamp),
			ContentType: "text/csv",
			Data:        buf.Bytes(),
		}, nil
	case FormatXLSX:
		data, err := export.XLSX(selected...)
		if err != nil {
			return nil, err
		}
		return &ExportFile{
			Name:        fmt.Sprintf("%s-%s.xlsx", q.Type, stamp),
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Data:        data,
		}, nil
	}
	return nil, fmt.Errorf("%w: unsupported export format %q", apperrors.ErrBadRequest, format)
}

func (s *dataServiceImpl) CreateBackup(ctx context.Context, actor *Actor) (*dto.BackupResponse, error) {
	doc := backupDocument{CreatedAt: s.now().UTC(), Tables: s.store.Snapshot()}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error encoding backup: %w", err)
	}

	info, err := s.storage.Save(ctx, backupPrefix, ".json", bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("error writing backup: %w", err)
	}

	s.logger.Info().
		Int64("userID", actor.User.ID).
		Str("backup", info.Name).
		Int64("size", info.Size).
		Msg("Backup created")

	return &dto.BackupResponse{Name: info.Name, Size: info.Size, CreatedAt: info.CreatedAt}, nil
}

func (s *dataServiceImpl) ListBackups(ctx context.Context) ([]dto.BackupResponse, error) {
	files, err := s.storage.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing backups: %w", err)
	}
	out := []dto.BackupResponse{}
	for _, f := range files {
		if !strings.HasPrefix(f.Name, backupPrefix+"-") {
			continue
		}
		out = append(out, dto.BackupResponse{Name: f.Name, Size: f.Size, CreatedAt: f.CreatedAt})
	}
	return out, nil
}

func (s *dataServiceImpl) OpenBackup(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rc, err := s.storage.Open(name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) || errors.Is(err, filestorage.ErrInvalidName) {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrResourceNotFound, apperrors.ErrBackupNotFound)
		}
		return nil, fmt.Errorf("error opening backup: %w", err)
	}
	return rc, nil
}

func (s *dataServiceImpl) DeleteBackup(ctx context.Context, actor *Actor, name string) error {
	if !strings.HasPrefix(name, backupPrefix+"-") {
		return fmt.Errorf("%w: %w", apperrors.ErrResourceNotFound, apperrors.ErrBackupNotFound)
	}
	rc, err := s.OpenBackup(ctx, name)
	if err != nil {
		return err
	}
	rc.Close()
	if err := s.storage.DeleteFile(name); err != nil {
		return fmt.Errorf("error deleting backup: %w", err)
	}
	s.logger.Info().Int64("userID", actor.User.ID).Str("backup", name).Msg("Backup deleted")
	return nil
}

func (s *dataServiceImpl) RestoreBackup(ctx context.Context, actor *Actor, name string) error {
	rc, err := s.OpenBackup(ctx, name)
	if err != nil {
		return err
	}
	rc.Close()

	s.logger.Warn().
		Int64("userID", actor.User.ID).
		Str("backup", name).
		Msg("Restore refused, data store is read-only")
	return fmt.Errorf("%w: %w", apperrors.ErrConflict, apperrors.ErrReadOnlyStore)
}

// Sheets renders every exportable table, in export order
func Sheets(t db.Tables) []export.Sheet {
	itoa := func(n int) string { return strconv.Itoa(n) }
	id := func(n int64) string { return strconv.FormatInt(n, 10) }

	faculty := export.Sheet{Name: "faculty", Header: []string{"id", "name", "department", "subjects", "availability", "email", "phone"}}
	for _, f := range t.Faculty {
		faculty.Rows = append(faculty.Rows, []string{id(f.ID), f.Name, f.Department, strings.Join(f.Subjects, "; "), string(f.Availability), f.Email, f.Phone})
	}

	subjects := export.Sheet{Name: "subjects", Header: []string{"id", "name", "department", "credits", "semester"}}
	for _, sub := range t.Subjects {
		subjects.Rows = append(subjects.Rows, []string{id(sub.ID), sub.Name, sub.Department, itoa(sub.Credits), itoa(sub.Semester)})
	}

	resources := export.Sheet{Name: "resources", Header: []string{"id", "kind", "name", "building", "capacity", "type", "equipment", "status"}}
	for _, group := range [][]models.Resource{t.Classrooms, t.Laboratories} {
		for _, r := range group {
			resources.Rows = append(resources.Rows, []string{id(r.ID), string(r.Kind), r.Name, r.Building, itoa(r.Capacity), r.Type, strings.Join(r.Equipment, "; "), string(r.Status)})
		}
	}

	batches := export.Sheet{Name: "batches", Header: []string{"id", "name", "department", "year", "semester", "strength"}}
	for _, b := range t.Batches {
		batches.Rows = append(batches.Rows, []string{id(b.ID), b.Name, b.Department, itoa(b.Year), itoa(b.Semester), itoa(b.Strength)})
	}

	timetable := export.Sheet{Name: "timetable", Header: []string{"id", "day", "timeSlot", "subject", "faculty", "classroom", "batch", "department"}}
	for _, e := range t.Timetable {
		timetable.Rows = append(timetable.Rows, []string{id(e.ID), e.Day, e.TimeSlot, e.Subject, e.Faculty, e.Classroom, e.Batch, e.Department})
	}

	leave := export.Sheet{Name: "leave-requests", Header: []string{"id", "facultyId", "facultyName", "department", "startDate", "endDate", "reason", "status", "requestDate"}}
	for _, l := range t.LeaveRequests {
		leave.Rows = append(leave.Rows, []string{id(l.ID), id(l.FacultyID), l.FacultyName, l.Department, l.StartDate, l.EndDate, l.Reason, string(l.Status), l.RequestDate})
	}

	return []export.Sheet{faculty, subjects, resources, batches, timetable, leave}
}
