package repository

import (
	"context"
	"errors"
	"time"

	"campusops-service/internal/domain/entity"
	"campusops-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormScheduleStore implements the ScheduleStore interface
type GormScheduleStore struct {
	db *gorm.DB
}

// NewGormScheduleStore creates a new GORM schedule store
func NewGormScheduleStore(db *gorm.DB) repository.ScheduleStore {
	return &GormScheduleStore{
		db: db,
	}
}

// Modules GORM model for database mapping
type Modules struct {
	ID           uint           `gorm:"primaryKey"`
	Code         string         `gorm:"column:code;uniqueIndex:idx_module_code_year"`
	Name         string         `gorm:"column:name"`
	AcademicYear string         `gorm:"column:academic_year;uniqueIndex:idx_module_code_year"`
	Semester     string         `gorm:"column:semester"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// TableName overrides the default table name
func (Modules) TableName() string {
	return "m_modules"
}

// Sections GORM model for database mapping
type Sections struct {
	ID           uint           `gorm:"primaryKey"`
	Name         string         `gorm:"column:name;uniqueIndex:idx_section_key"`
	ModuleID     uint           `gorm:"column:module_id;uniqueIndex:idx_section_key"`
	AcademicYear string         `gorm:"column:academic_year;uniqueIndex:idx_section_key"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// TableName overrides the default table name
func (Sections) TableName() string {
	return "m_sections"
}

// Users GORM model for database mapping
type Users struct {
	ID        uint           `gorm:"primaryKey"`
	Email     string         `gorm:"column:email;unique"`
	Name      string         `gorm:"column:name"`
	Role      string         `gorm:"column:role"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName overrides the default table name
func (Users) TableName() string {
	return "m_users"
}

// Rooms GORM model for database mapping
type Rooms struct {
	ID        uint           `gorm:"primaryKey"`
	Name      string         `gorm:"column:name;unique"`
	Type      string         `gorm:"column:type"`
	Capacity  int            `gorm:"column:capacity"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName overrides the default table name
func (Rooms) TableName() string {
	return "m_rooms"
}

// ScheduleSlots GORM model for database mapping
type ScheduleSlots struct {
	ID          uint           `gorm:"primaryKey"`
	ModuleID    uint           `gorm:"column:module_id;uniqueIndex:idx_slot_key"`
	SectionID   uint           `gorm:"column:section_id;uniqueIndex:idx_slot_key"`
	OwnerID     *uint          `gorm:"column:owner_id"`
	RoomID      *uint          `gorm:"column:room_id"`
	DayOfWeek   string         `gorm:"column:day_of_week;uniqueIndex:idx_slot_key"`
	StartTime   string         `gorm:"column:start_time;uniqueIndex:idx_slot_key"`
	EndTime     string         `gorm:"column:end_time"`
	CourseType  string         `gorm:"column:course_type"`
	IsAvailable bool           `gorm:"column:is_available"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName overrides the default table name
func (ScheduleSlots) TableName() string {
	return "schedule_slots"
}

// UpsertModule finds a module by its (code, academicYear) key, creating
// it when absent and refreshing the mutable columns when present
func (s *GormScheduleStore) UpsertModule(ctx context.Context, m *entity.Module) (*entity.Module, error) {
	var row Modules
	err := s.db.WithContext(ctx).
		Where("code = ? AND academic_year = ?", m.Code, m.AcademicYear).
		First(&row).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = Modules{
			Code:         m.Code,
			Name:         m.Name,
			AcademicYear: m.AcademicYear,
			Semester:     m.Semester,
		}
		if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	} else {
		updates := map[string]interface{}{}
		if m.Name != "" && m.Name != row.Name {
			updates["name"] = m.Name
		}
		if m.Semester != "" && m.Semester != row.Semester {
			updates["semester"] = m.Semester
		}
		if len(updates) > 0 {
			if err := s.db.WithContext(ctx).Model(&row).Updates(updates).Error; err != nil {
				return nil, err
			}
		}
	}

	return &entity.Module{
		ID:           row.ID,
		Code:         row.Code,
		Name:         row.Name,
		AcademicYear: row.AcademicYear,
		Semester:     row.Semester,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}, nil
}

// UpsertSection finds a section by its (name, moduleID, academicYear) key
func (s *GormScheduleStore) UpsertSection(ctx context.Context, sec *entity.Section) (*entity.Section, error) {
	var row Sections
	err := s.db.WithContext(ctx).
		Where("name = ? AND module_id = ? AND academic_year = ?", sec.Name, sec.ModuleID, sec.AcademicYear).
		First(&row).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = Sections{
			Name:         sec.Name,
			ModuleID:     sec.ModuleID,
			AcademicYear: sec.AcademicYear,
		}
		if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	return &entity.Section{
		ID:           row.ID,
		Name:         row.Name,
		ModuleID:     row.ModuleID,
		AcademicYear: row.AcademicYear,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}, nil
}

// UpsertProfessor finds a professor account by email, creating it when
// absent
func (s *GormScheduleStore) UpsertProfessor(ctx context.Context, u *entity.User) (*entity.User, error) {
	var row Users
	err := s.db.WithContext(ctx).Where("email = ?", u.Email).First(&row).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		role := u.Role
		if role == "" {
			role = entity.RoleProfessor
		}
		row = Users{
			Email: u.Email,
			Name:  u.Name,
			Role:  role,
		}
		if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	return &entity.User{
		ID:        row.ID,
		Email:     row.Email,
		Name:      row.Name,
		Role:      row.Role,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

// UpsertRoom finds a room by name, creating it when absent
func (s *GormScheduleStore) UpsertRoom(ctx context.Context, room *entity.Room) (*entity.Room, error) {
	var row Rooms
	err := s.db.WithContext(ctx).Where("name = ?", room.Name).First(&row).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		capacity := room.Capacity
		if capacity == 0 {
			capacity = 30
		}
		row = Rooms{
			Name:     room.Name,
			Type:     room.Type,
			Capacity: capacity,
		}
		if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	} else if room.Type != "" && room.Type != row.Type {
		if err := s.db.WithContext(ctx).Model(&row).Update("type", room.Type).Error; err != nil {
			return nil, err
		}
	}

	return &entity.Room{
		ID:        row.ID,
		Name:      row.Name,
		Type:      row.Type,
		Capacity:  row.Capacity,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

// UpsertSlot finds a slot by its (moduleID, sectionID, dayOfWeek,
// startTime) key and refreshes the mutable columns, so re-importing the
// same document converges on the same row
func (s *GormScheduleStore) UpsertSlot(ctx context.Context, slot *entity.ScheduleSlot) (*entity.ScheduleSlot, error) {
	var row ScheduleSlots
	err := s.db.WithContext(ctx).
		Where("module_id = ? AND section_id = ? AND day_of_week = ? AND start_time = ?",
			slot.ModuleID, slot.SectionID, slot.DayOfWeek, slot.StartTime).
		First(&row).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = ScheduleSlots{
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
		if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	} else {
		updates := map[string]interface{}{
			"end_time":     slot.EndTime,
			"room_id":      slot.RoomID,
			"owner_id":     slot.OwnerID,
			"course_type":  slot.CourseType,
			"is_available": slot.IsAvailable,
		}
		if err := s.db.WithContext(ctx).Model(&row).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return slotEntity(&row), nil
}

// FindSlotByID loads a slot by its primary key
func (s *GormScheduleStore) FindSlotByID(ctx context.Context, id uint) (*entity.ScheduleSlot, error) {
	var row ScheduleSlots
	if err := s.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, err
	}
	return slotEntity(&row), nil
}

// UpdateSlotOwner reassigns a slot to another professor
func (s *GormScheduleStore) UpdateSlotOwner(ctx context.Context, slotID uint, ownerID *uint) error {
	result := s.db.WithContext(ctx).
		Model(&ScheduleSlots{}).
		Where("id = ?", slotID).
		Update("owner_id", ownerID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// InTransaction runs fn against a store bound to one transaction; any
// error rolls the whole batch back
func (s *GormScheduleStore) InTransaction(ctx context.Context, fn func(store repository.ScheduleStore) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormScheduleStore{db: tx})
	})
}

func slotEntity(row *ScheduleSlots) *entity.ScheduleSlot {
	return &entity.ScheduleSlot{
		ID:          row.ID,
		ModuleID:    row.ModuleID,
		SectionID:   row.SectionID,
		OwnerID:     row.OwnerID,
		RoomID:      row.RoomID,
		DayOfWeek:   row.DayOfWeek,
		StartTime:   row.StartTime,
		EndTime:     row.EndTime,
		CourseType:  row.CourseType,
		IsAvailable: row.IsAvailable,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
