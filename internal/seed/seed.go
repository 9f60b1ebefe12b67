package seed

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/schedulocity/internal/app/models"
	"github.com/yigit/schedulocity/internal/db"
	"github.com/yigit/schedulocity/internal/pkg/auth"
)

const (
	classroomCount  = 180
	laboratoryCount = 150
	// Share of day/slot cells that receive a generated class.
	classProbability = 0.7
)

// Options controls store generation
type Options struct {
	RandomSeed int64
	BcryptCost int
}

// CreateDefaultData builds the mock collections and loads them into the store.
func CreateDefaultData(ctx context.Context, database *db.MemoryDB, opts Options, lgr zerolog.Logger) error {
	lgr.Info().Int64("randomSeed", opts.RandomSeed).Msg("Seeding mock data store...")

	tables, err := Build(ctx, opts)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to build mock data")
		return err
	}
	database.Load(tables)

	lgr.Info().
		Int("users", len(tables.Users)).
		Int("faculty", len(tables.Faculty)).
		Int("subjects", len(tables.Subjects)).
		Int("classrooms", len(tables.Classrooms)).
		Int("laboratories", len(tables.Laboratories)).
		Int("timetable", len(tables.Timetable)).
		Int("leaveRequests", len(tables.LeaveRequests)).
		Msg("Mock data store ready")
	return nil
}

// Build produces the full set of tables. The same seed always yields the same tables,
// apart from bcrypt salts.
func Build(ctx context.Context, opts Options) (db.Tables, error) {
	users := make([]models.User, 0, len(userFixtures))
	for _, fx := range userFixtures {
		if err := ctx.Err(); err != nil {
			return db.Tables{}, err
		}
		hash, err := auth.HashPassword(fx.password, opts.BcryptCost)
		if err != nil {
			return db.Tables{}, fmt.Errorf("hashing password for %s: %w", fx.user.Username, err)
		}
		u := fx.user
		u.PasswordHash = hash
		users = append(users, u)
	}

	rng := rand.New(rand.NewPCG(uint64(opts.RandomSeed), 0x5eed))

	faculty := db.CloneFaculty(facultyRoster)
	return db.Tables{
		Users:         users,
		Faculty:       faculty,
		Subjects:      append([]models.Subject(nil), subjectCatalog...),
		Classrooms:    generateClassrooms(rng),
		Laboratories:  generateLaboratories(rng),
		Batches:       append([]models.StudentBatch(nil), studentBatches...),
		Timetable:     generateTimetable(rng, faculty),
		LeaveRequests: departmentalizeLeave(leaveRequests, faculty),
	}, nil
}

func generateClassrooms(rng *rand.Rand) []models.Resource {
	rooms := make([]models.Resource, classroomCount)
	for i := range rooms {
		rooms[i] = models.Resource{
			ID:        int64(i + 1),
			Kind:      models.KindClassroom,
			Name:      fmt.Sprintf("Room %03d", i+1),
			Building:  fmt.Sprintf("Building %c", 'A'+i/30),
			Capacity:  20 + rng.IntN(80),
			Type:      classroomTypes[rng.IntN(len(classroomTypes))],
			Equipment: []string{classroomEquipment[rng.IntN(len(classroomEquipment))]},
			Status:    models.ResourceStatuses[rng.IntN(len(models.ResourceStatuses))],
		}
	}
	return rooms
}

func generateLaboratories(rng *rand.Rand) []models.Resource {
	labs := make([]models.Resource, laboratoryCount)
	for i := range labs {
		labs[i] = models.Resource{
			ID:        int64(i + 1),
			Kind:      models.KindLaboratory,
			Name:      fmt.Sprintf("Lab %03d", i+1),
			Building:  fmt.Sprintf("Building %c", 'A'+i/25),
			Capacity:  15 + rng.IntN(30),
			Type:      labTypes[rng.IntN(len(labTypes))],
			Equipment: []string{labEquipment[rng.IntN(len(labEquipment))]},
			Status:    models.ResourceStatuses[rng.IntN(len(models.ResourceStatuses))],
		}
	}
	return labs
}

// generateTimetable appends a randomly filled week to the sample rows.
// Rows are not checked against each other, so a generated class can land on
// a faculty member or room that a sample row already holds.
func generateTimetable(rng *rand.Rand, faculty []models.FacultyMember) []models.TimetableEntry {
	entries := append([]models.TimetableEntry(nil), sampleTimetable...)
	nextID := int64(len(entries) + 1)

	for _, day := range models.Weekdays {
		for _, slot := range models.TimeSlots {
			if rng.Float64() >= classProbability {
				continue
			}
			member := faculty[rng.IntN(len(faculty))]
			entries = append(entries, models.TimetableEntry{
				ID:         nextID,
				Day:        day,
				TimeSlot:   slot,
				Subject:    member.Subjects[rng.IntN(len(member.Subjects))],
				Faculty:    member.Name,
				Classroom:  fmt.Sprintf("Room %d", 100+rng.IntN(200)),
				Batch:      batchCode(rng, member.Department),
				Department: member.Department,
			})
			nextID++
		}
	}
	return entries
}

func batchCode(rng *rand.Rand, department string) string {
	prefix := department
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	return fmt.Sprintf("%s-%d-%c", strings.ToUpper(prefix), 2024-rng.IntN(4), 'A'+rng.IntN(3))
}

// departmentalizeLeave copies the requests and fills each department from the roster
func departmentalizeLeave(in []models.LeaveRequest, faculty []models.FacultyMember) []models.LeaveRequest {
	byID := make(map[int64]string, len(faculty))
	for _, f := range faculty {
		byID[f.ID] = f.Department
	}
	out := make([]models.LeaveRequest, len(in))
	for i, l := range in {
		if l.Department == "" {
			l.Department = byID[l.FacultyID]
		}
		out[i] = l
	}
	return out
}
