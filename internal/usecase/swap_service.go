package usecase

import (
	"context"
	"fmt"

	"campusops-service/internal/domain/entity"
	"campusops-service/internal/domain/repository"
	"campusops-service/pkg/logger"
	"campusops-service/pkg/metrics"
)

// SwapService brokers slot and surveillance duty exchanges between
// professors
type SwapService struct {
	slots    repository.ScheduleStore
	swaps    repository.SwapRepository
	surv     repository.SurveillanceRepository
	notifier repository.Notifier
	logger   logger.Logger
	metrics  *metrics.Metrics
}

// NewSwapService creates a new swap service
func NewSwapService(
	slots repository.ScheduleStore,
	swaps repository.SwapRepository,
	surv repository.SurveillanceRepository,
	notifier repository.Notifier,
	logger logger.Logger,
	metrics *metrics.Metrics,
) *SwapService {
	return &SwapService{
		slots:    slots,
		swaps:    swaps,
		surv:     surv,
		notifier: notifier,
		logger:   logger,
		metrics:  metrics,
	}
}

// RequestSlotSwap creates a pending request to exchange the owners of
// two schedule slots. Only the owner of the offered slot may request.
func (s *SwapService) RequestSlotSwap(ctx context.Context, requesterID, fromSlotID, toSlotID uint, isAnonymous bool, reason string) (*entity.SwapRequest, error) {
	from, err := s.slots.FindSlotByID(ctx, fromSlotID)
	if err != nil {
		return nil, fmt.Errorf("offered slot not found: %w", err)
	}
	to, err := s.slots.FindSlotByID(ctx, toSlotID)
	if err != nil {
		return nil, fmt.Errorf("requested slot not found: %w", err)
	}

	if from.OwnerID == nil || *from.OwnerID != requesterID {
		return nil, fmt.Errorf("only the owner of the offered slot can request a swap")
	}

	req := &entity.SwapRequest{
		FromSlotID:  fromSlotID,
		ToSlotID:    toSlotID,
		RequesterID: requesterID,
		IsAnonymous: isAnonymous,
		Status:      entity.SwapPending,
		Reason:      reason,
	}
	if err := s.swaps.Save(ctx, req); err != nil {
		return nil, fmt.Errorf("failed to save swap request: %w", err)
	}

	s.metrics.SwapsRequested.Inc()

	if to.OwnerID != nil {
		s.notify(ctx, *to.OwnerID, "Schedule swap requested",
			fmt.Sprintf("%s proposed to take over your %s %s slot.",
				s.requesterLabel(req), to.DayOfWeek, to.StartTime))
	}

	return req, nil
}

// ListPendingForOwner lists pending swap requests targeting slots owned
// by the given professor
func (s *SwapService) ListPendingForOwner(ctx context.Context, ownerID uint) ([]*entity.SwapRequest, error) {
	return s.swaps.FindPendingForSlotOwner(ctx, ownerID)
}

// AcceptSlotSwap exchanges the owners of the two slots and resolves the
// request. Only the owner of the requested slot may accept.
func (s *SwapService) AcceptSlotSwap(ctx context.Context, requestID, responderID uint) error {
	req, err := s.swaps.FindByID(ctx, requestID)
	if err != nil {
		return fmt.Errorf("swap request not found: %w", err)
	}
	if req.Status != entity.SwapPending {
		return fmt.Errorf("swap request already resolved with status %s", req.Status)
	}

	from, err := s.slots.FindSlotByID(ctx, req.FromSlotID)
	if err != nil {
		return fmt.Errorf("offered slot not found: %w", err)
	}
	to, err := s.slots.FindSlotByID(ctx, req.ToSlotID)
	if err != nil {
		return fmt.Errorf("requested slot not found: %w", err)
	}

	if to.OwnerID == nil || *to.OwnerID != responderID {
		return fmt.Errorf("only the owner of the requested slot can accept the swap")
	}

	fromOwner, toOwner := from.OwnerID, to.OwnerID
	err = s.slots.InTransaction(ctx, func(store repository.ScheduleStore) error {
		if err := store.UpdateSlotOwner(ctx, from.ID, toOwner); err != nil {
			return err
		}
		return store.UpdateSlotOwner(ctx, to.ID, fromOwner)
	})
	if err != nil {
		s.metrics.ErrorsCount.WithLabelValues("swap_accept").Inc()
		return fmt.Errorf("failed to exchange slot owners: %w", err)
	}

	if err := s.swaps.UpdateStatus(ctx, req.ID, entity.SwapAccepted); err != nil {
		return fmt.Errorf("failed to update swap status: %w", err)
	}

	s.notify(ctx, req.RequesterID, "Schedule swap accepted",
		fmt.Sprintf("Your swap request for the %s %s slot was accepted.", to.DayOfWeek, to.StartTime))
	return nil
}

// DeclineSlotSwap resolves a pending request without touching the
// slots. Only the owner of the requested slot may decline.
func (s *SwapService) DeclineSlotSwap(ctx context.Context, requestID, responderID uint) error {
	req, err := s.swaps.FindByID(ctx, requestID)
	if err != nil {
		return fmt.Errorf("swap request not found: %w", err)
	}
	if req.Status != entity.SwapPending {
		return fmt.Errorf("swap request already resolved with status %s", req.Status)
	}

	to, err := s.slots.FindSlotByID(ctx, req.ToSlotID)
	if err != nil {
		return fmt.Errorf("requested slot not found: %w", err)
	}
	if to.OwnerID == nil || *to.OwnerID != responderID {
		return fmt.Errorf("only the owner of the requested slot can decline the swap")
	}

	if err := s.swaps.UpdateStatus(ctx, req.ID, entity.SwapDeclined); err != nil {
		return fmt.Errorf("failed to update swap status: %w", err)
	}

	s.notify(ctx, req.RequesterID, "Schedule swap declined",
		fmt.Sprintf("Your swap request for the %s %s slot was declined.", to.DayOfWeek, to.StartTime))
	return nil
}

// RequestSurveillanceSwap creates a pending request to exchange two
// exam monitoring duties. Only the holder of the offered duty may
// request.
func (s *SwapService) RequestSurveillanceSwap(ctx context.Context, requesterID, fromAssignmentID, toAssignmentID uint, isAnonymous bool) (*entity.SurveillanceSwapRequest, error) {
	from, err := s.surv.FindAssignmentByID(ctx, fromAssignmentID)
	if err != nil {
		return nil, fmt.Errorf("offered duty not found: %w", err)
	}
	to, err := s.surv.FindAssignmentByID(ctx, toAssignmentID)
	if err != nil {
		return nil, fmt.Errorf("requested duty not found: %w", err)
	}

	if from.UserID != requesterID {
		return nil, fmt.Errorf("only the holder of the offered duty can request a swap")
	}

	req := &entity.SurveillanceSwapRequest{
		FromAssignmentID: fromAssignmentID,
		ToAssignmentID:   toAssignmentID,
		RequesterID:      requesterID,
		IsAnonymous:      isAnonymous,
		Status:           entity.SwapPending,
	}
	if err := s.surv.SaveSwap(ctx, req); err != nil {
		return nil, fmt.Errorf("failed to save surveillance swap request: %w", err)
	}

	s.metrics.SwapsRequested.Inc()

	label := "A colleague"
	if !isAnonymous {
		label = fmt.Sprintf("Professor #%d", requesterID)
	}
	s.notify(ctx, to.UserID, "Surveillance swap requested",
		fmt.Sprintf("%s proposed to take over your duty on %s.", label, to.ExamDate.Format("2006-01-02")))

	return req, nil
}

// AcceptSurveillanceSwap exchanges the holders of the two duties and
// resolves the request. Only the holder of the requested duty may
// accept.
func (s *SwapService) AcceptSurveillanceSwap(ctx context.Context, requestID, responderID uint) error {
	req, err := s.surv.FindSwapByID(ctx, requestID)
	if err != nil {
		return fmt.Errorf("surveillance swap request not found: %w", err)
	}
	if req.Status != entity.SwapPending {
		return fmt.Errorf("surveillance swap request already resolved with status %s", req.Status)
	}

	from, err := s.surv.FindAssignmentByID(ctx, req.FromAssignmentID)
	if err != nil {
		return fmt.Errorf("offered duty not found: %w", err)
	}
	to, err := s.surv.FindAssignmentByID(ctx, req.ToAssignmentID)
	if err != nil {
		return fmt.Errorf("requested duty not found: %w", err)
	}

	if to.UserID != responderID {
		return fmt.Errorf("only the holder of the requested duty can accept the swap")
	}

	fromUser, toUser := from.UserID, to.UserID
	err = s.surv.InTransaction(ctx, func(repo repository.SurveillanceRepository) error {
		if err := repo.UpdateAssignmentUser(ctx, from.ID, toUser); err != nil {
			return err
		}
		if err := repo.UpdateAssignmentUser(ctx, to.ID, fromUser); err != nil {
			return err
		}
		return repo.UpdateSwapStatus(ctx, req.ID, entity.SwapAccepted)
	})
	if err != nil {
		s.metrics.ErrorsCount.WithLabelValues("surveillance_swap_accept").Inc()
		return fmt.Errorf("failed to exchange duty holders: %w", err)
	}

	s.notify(ctx, req.RequesterID, "Surveillance swap accepted",
		fmt.Sprintf("Your swap request for the duty on %s was accepted.", to.ExamDate.Format("2006-01-02")))
	return nil
}

// DeclineSurveillanceSwap resolves a pending request without touching
// the duties
func (s *SwapService) DeclineSurveillanceSwap(ctx context.Context, requestID, responderID uint) error {
	req, err := s.surv.FindSwapByID(ctx, requestID)
	if err != nil {
		return fmt.Errorf("surveillance swap request not found: %w", err)
	}
	if req.Status != entity.SwapPending {
		return fmt.Errorf("surveillance swap request already resolved with status %s", req.Status)
	}

	to, err := s.surv.FindAssignmentByID(ctx, req.ToAssignmentID)
	if err != nil {
		return fmt.Errorf("requested duty not found: %w", err)
	}
	if to.UserID != responderID {
		return fmt.Errorf("only the holder of the requested duty can decline the swap")
	}

	if err := s.surv.UpdateSwapStatus(ctx, req.ID, entity.SwapDeclined); err != nil {
		return fmt.Errorf("failed to update surveillance swap status: %w", err)
	}

	s.notify(ctx, req.RequesterID, "Surveillance swap declined",
		fmt.Sprintf("Your swap request for the duty on %s was declined.", to.ExamDate.Format("2006-01-02")))
	return nil
}

// notify delivers a notification and logs delivery failures; a failed
// notification never fails the operation that triggered it
func (s *SwapService) notify(ctx context.Context, userID uint, subject, body string) {
	if err := s.notifier.Notify(ctx, userID, subject, body); err != nil {
		s.logger.Warn("Failed to deliver notification",
			"userID", userID,
			"subject", subject,
			"error", err)
	}
}

func (s *SwapService) requesterLabel(req *entity.SwapRequest) string {
	if req.IsAnonymous {
		return "A colleague"
	}
	return fmt.Sprintf("Professor #%d", req.RequesterID)
}
