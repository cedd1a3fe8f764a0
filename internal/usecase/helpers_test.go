package usecase

import (
	"context"
	"fmt"

	"campusops-service/internal/domain/entity"
	"campusops-service/internal/domain/repository"
	"campusops-service/pkg/logger"
	"campusops-service/pkg/metrics"
)

// one shared instance: prometheus collectors register globally
var testMetrics = metrics.NewMetrics("campusops_test")

var testLogger = logger.NewNop()

// fakeStore is an in-memory ScheduleStore keyed exactly like the gorm
// implementation
type fakeStore struct {
	modules  map[string]*entity.Module
	sections map[string]*entity.Section
	users    map[string]*entity.User
	rooms    map[string]*entity.Room
	slots    map[string]*entity.ScheduleSlot
	nextID   uint
	creates  int

	failSlots  bool
	rolledBack bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		modules:  map[string]*entity.Module{},
		sections: map[string]*entity.Section{},
		users:    map[string]*entity.User{},
		rooms:    map[string]*entity.Room{},
		slots:    map[string]*entity.ScheduleSlot{},
	}
}

func (s *fakeStore) id() uint {
	s.nextID++
	return s.nextID
}

func (s *fakeStore) UpsertModule(ctx context.Context, m *entity.Module) (*entity.Module, error) {
	key := m.Code + "|" + m.AcademicYear
	if existing, ok := s.modules[key]; ok {
		return existing, nil
	}
	s.creates++
	stored := &entity.Module{ID: s.id(), Code: m.Code, Name: m.Name, AcademicYear: m.AcademicYear, Semester: m.Semester}
	s.modules[key] = stored
	return stored, nil
}

func (s *fakeStore) UpsertSection(ctx context.Context, sec *entity.Section) (*entity.Section, error) {
	key := fmt.Sprintf("%s|%d|%s", sec.Name, sec.ModuleID, sec.AcademicYear)
	if existing, ok := s.sections[key]; ok {
		return existing, nil
	}
	s.creates++
	stored := &entity.Section{ID: s.id(), Name: sec.Name, ModuleID: sec.ModuleID, AcademicYear: sec.AcademicYear}
	s.sections[key] = stored
	return stored, nil
}

func (s *fakeStore) UpsertProfessor(ctx context.Context, u *entity.User) (*entity.User, error) {
	if existing, ok := s.users[u.Email]; ok {
		return existing, nil
	}
	s.creates++
	stored := &entity.User{ID: s.id(), Email: u.Email, Name: u.Name, Role: u.Role}
	s.users[u.Email] = stored
	return stored, nil
}

func (s *fakeStore) UpsertRoom(ctx context.Context, r *entity.Room) (*entity.Room, error) {
	if existing, ok := s.rooms[r.Name]; ok {
		return existing, nil
	}
	s.creates++
	stored := &entity.Room{ID: s.id(), Name: r.Name, Type: r.Type, Capacity: r.Capacity}
	s.rooms[r.Name] = stored
	return stored, nil
}

func (s *fakeStore) UpsertSlot(ctx context.Context, slot *entity.ScheduleSlot) (*entity.ScheduleSlot, error) {
	if s.failSlots {
		return nil, fmt.Errorf("slot upsert failed")
	}
	key := fmt.Sprintf("%d|%d|%s|%s", slot.ModuleID, slot.SectionID, slot.DayOfWeek, slot.StartTime)
	if existing, ok := s.slots[key]; ok {
		existing.EndTime = slot.EndTime
		existing.OwnerID = slot.OwnerID
		existing.RoomID = slot.RoomID
		existing.CourseType = slot.CourseType
		existing.IsAvailable = slot.IsAvailable
		return existing, nil
	}
	s.creates++
	stored := &entity.ScheduleSlot{
		ID:          s.id(),
		ModuleID:    slot.ModuleID,
		SectionID:   slot.SectionID,
		OwnerID:     slot.OwnerID,
		RoomID:      slot.RoomID,
		DayOfWeek:   slot.DayOfWeek,
		StartTime:   slot.StartTime,
		EndTime:     slot.EndTime,
		CourseType:  slot.CourseType,
		IsAvailable: slot.IsAvailable,
	}
	s.slots[key] = stored
	return stored, nil
}

func (s *fakeStore) FindSlotByID(ctx context.Context, id uint) (*entity.ScheduleSlot, error) {
	for _, slot := range s.slots {
		if slot.ID == id {
			return slot, nil
		}
	}
	return nil, fmt.Errorf("slot %d not found", id)
}

func (s *fakeStore) UpdateSlotOwner(ctx context.Context, slotID uint, ownerID *uint) error {
	slot, err := s.FindSlotByID(ctx, slotID)
	if err != nil {
		return err
	}
	slot.OwnerID = ownerID
	return nil
}

// InTransaction snapshots the maps and restores them when fn fails
func (s *fakeStore) InTransaction(ctx context.Context, fn func(store repository.ScheduleStore) error) error {
	modules := copyMap(s.modules)
	sections := copyMap(s.sections)
	users := copyMap(s.users)
	rooms := copyMap(s.rooms)
	slots := copyMap(s.slots)
	creates := s.creates

	if err := fn(s); err != nil {
		s.modules, s.sections, s.users, s.rooms, s.slots = modules, sections, users, rooms, slots
		s.creates = creates
		s.rolledBack = true
		return err
	}
	return nil
}

func copyMap[V any](in map[string]V) map[string]V {
	out := make(map[string]V, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func (s *fakeStore) addSlot(owner *uint, day, start string) *entity.ScheduleSlot {
	slot := &entity.ScheduleSlot{
		ID:        s.id(),
		ModuleID:  1,
		SectionID: 1,
		OwnerID:   owner,
		DayOfWeek: day,
		StartTime: start,
	}
	s.slots[fmt.Sprintf("slot-%d", slot.ID)] = slot
	return slot
}
