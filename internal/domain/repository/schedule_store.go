package repository

import (
	"context"

	"campusops-service/internal/domain/entity"
)

// ScheduleStore defines the interface for schedule persistence. The
// upserts are keyed on natural identifiers so re-importing the same
// document converges on the same rows.
type ScheduleStore interface {
	UpsertModule(ctx context.Context, module *entity.Module) (*entity.Module, error)
	UpsertSection(ctx context.Context, section *entity.Section) (*entity.Section, error)
	UpsertProfessor(ctx context.Context, user *entity.User) (*entity.User, error)
	UpsertRoom(ctx context.Context, room *entity.Room) (*entity.Room, error)
	UpsertSlot(ctx context.Context, slot *entity.ScheduleSlot) (*entity.ScheduleSlot, error)
	FindSlotByID(ctx context.Context, id uint) (*entity.ScheduleSlot, error)
	UpdateSlotOwner(ctx context.Context, slotID uint, ownerID *uint) error
	InTransaction(ctx context.Context, fn func(store ScheduleStore) error) error
}
