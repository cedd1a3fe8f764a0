package usecase

import (
	"context"
	"fmt"
	"strings"

	"campusops-service/internal/domain/entity"
	"campusops-service/internal/domain/repository"
	"campusops-service/pkg/logger"
	"campusops-service/pkg/metrics"
	"campusops-service/pkg/schedule"
)

// ScheduleProjector writes a parsed schedule document into the
// relational store. Every upsert is keyed on natural identifiers, so
// projecting the same document twice converges on the same rows.
type ScheduleProjector struct {
	store   repository.ScheduleStore
	logger  logger.Logger
	metrics *metrics.Metrics
}

// NewScheduleProjector creates a new schedule projector
func NewScheduleProjector(
	store repository.ScheduleStore,
	logger logger.Logger,
	metrics *metrics.Metrics,
) *ScheduleProjector {
	return &ScheduleProjector{
		store:   store,
		logger:  logger,
		metrics: metrics,
	}
}

// Project upserts every entry of a database-ready document inside one
// transaction. Per-entry failures are collected for the report; any
// failure rolls the whole batch back.
func (p *ScheduleProjector) Project(ctx context.Context, doc *schedule.FlatDocument) (map[string]interface{}, error) {
	academicYear := doc.HeaderInfo.AcademicYear
	if academicYear == "" {
		academicYear = "UNKNOWN"
	}
	semester := doc.HeaderInfo.Semester
	defaultSection := doc.HeaderInfo.Section
	if defaultSection == "" {
		defaultSection = "A"
	}

	var (
		slots     int
		skipped   int
		entryErrs []string
	)

	err := p.store.InTransaction(ctx, func(store repository.ScheduleStore) error {
		for i, e := range doc.Entries {
			if e.IsAvailable {
				skipped++
				continue
			}

			moduleName := e.ModuleName
			if moduleName == "" {
				moduleName = "TBA"
			}
			module, err := store.UpsertModule(ctx, &entity.Module{
				Code:         moduleCode(moduleName),
				Name:         moduleName,
				AcademicYear: academicYear,
				Semester:     semester,
			})
			if err != nil {
				entryErrs = append(entryErrs, fmt.Sprintf("entry %d: module: %v", i, err))
				continue
			}

			sectionName := e.SectionName
			if sectionName == "" {
				sectionName = defaultSection
			}
			section, err := store.UpsertSection(ctx, &entity.Section{
				Name:         sectionName,
				ModuleID:     module.ID,
				AcademicYear: academicYear,
			})
			if err != nil {
				entryErrs = append(entryErrs, fmt.Sprintf("entry %d: section: %v", i, err))
				continue
			}

			var ownerID *uint
			if e.ProfessorName != "" {
				prof, err := store.UpsertProfessor(ctx, &entity.User{
					Email: ProfessorEmail(e.ProfessorName),
					Name:  e.ProfessorName,
					Role:  entity.RoleProfessor,
				})
				if err != nil {
					entryErrs = append(entryErrs, fmt.Sprintf("entry %d: professor: %v", i, err))
					continue
				}
				ownerID = &prof.ID
			}

			var roomID *uint
			if e.RoomNumber != "" {
				room, err := store.UpsertRoom(ctx, &entity.Room{
					Name: e.RoomNumber,
					Type: string(e.RoomType),
				})
				if err != nil {
					entryErrs = append(entryErrs, fmt.Sprintf("entry %d: room: %v", i, err))
					continue
				}
				roomID = &room.ID
			}

			_, err = store.UpsertSlot(ctx, &entity.ScheduleSlot{
				ModuleID:    module.ID,
				SectionID:   section.ID,
				OwnerID:     ownerID,
				RoomID:      roomID,
				DayOfWeek:   string(e.DayOfWeek),
				StartTime:   e.StartTime,
				EndTime:     e.EndTime,
				CourseType:  string(e.CourseType),
				IsAvailable: false,
			})
			if err != nil {
				entryErrs = append(entryErrs, fmt.Sprintf("entry %d: slot: %v", i, err))
				continue
			}
			slots++
		}

		if len(entryErrs) > 0 {
			return fmt.Errorf("%d entries failed: %s", len(entryErrs), strings.Join(entryErrs, "; "))
		}
		return nil
	})

	if err != nil {
		p.metrics.ErrorsCount.WithLabelValues("projection").Inc()
		return nil, err
	}

	p.metrics.SlotsProjected.Add(float64(slots))
	p.logger.Info("Schedule projected",
		"slots", slots,
		"skippedAvailable", skipped,
		"academicYear", academicYear)

	return map[string]interface{}{
		"slotsProjected":   slots,
		"skippedAvailable": skipped,
		"academicYear":     academicYear,
	}, nil
}

// ProfessorEmail derives a deterministic account email from a professor
// name as it appears in a schedule cell
func ProfessorEmail(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Join(strings.Fields(slug), ".")
	return slug + "@univ.example.com"
}

func moduleCode(name string) string {
	return strings.ToUpper(strings.Join(strings.Fields(name), "_"))
}
