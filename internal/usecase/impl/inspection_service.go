package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"inndoor/config"
	deliverycontext "inndoor/internal/delivery/context"
	"inndoor/internal/domain/entity"
	domainerrors "inndoor/internal/domain/errors"
	"inndoor/internal/domain/repository"
	"inndoor/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// inspectionService implements the InspectionUsecase interface.
type inspectionService struct {
	txManager      repository.TransactionManager
	inspectionRepo repository.InspectionRepository
	propertyRepo   repository.PropertyRepository
	accountRepo    repository.AccountRepository
	notifier       *Notifier
	privileges     *privilegeChecker
	logger         *slog.Logger
}

// InspectionServiceParams holds dependencies for InspectionService, injected by Fx.
type InspectionServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	InspectionRepo repository.InspectionRepository
	PropertyRepo   repository.PropertyRepository
	AccountRepo    repository.AccountRepository
	Notifier       *Notifier
	Config         *config.Config
	Logger         *slog.Logger
}

// NewInspectionService is the constructor for inspectionService.
func NewInspectionService(params InspectionServiceParams) usecase.InspectionUsecase {
	return &inspectionService{
		txManager:      params.TxManager,
		inspectionRepo: params.InspectionRepo,
		propertyRepo:   params.PropertyRepo,
		accountRepo:    params.AccountRepo,
		notifier:       params.Notifier,
		privileges:     newPrivilegeChecker(params.Config),
		logger:         params.Logger,
	}
}

func (srv *inspectionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Request books a viewing. The caller becomes the requester, the requester's
// inspection counter is bumped, and the property owner is notified.
func (srv *inspectionService) Request(ctx context.Context, callerID uuid.UUID, input *usecase.RequestInspectionInput) (*entity.Inspection, error) {
	property, err := srv.propertyRepo.FindByID(ctx, input.PropertyID)
	if err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return nil, domainerrors.ErrPropertyNotFound
		}

		return nil, errors.Wrap(err, "failed to load property for inspection request")
	}

	if input.PreferredTime != "" {
		if _, err := time.Parse("15:04", input.PreferredTime); err != nil {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("preferred time must be in HH:MM format")
		}
	}

	inspection := &entity.Inspection{
		PropertyID:      property.ID,
		RequesterID:     callerID,
		AgentID:         input.AgentID,
		PreferredDate:   input.PreferredDate,
		PreferredTime:   input.PreferredTime,
		Status:          entity.InspectionStatusPending,
		RequesterNotes:  input.RequesterNotes,
		PropertyOwnerID: property.OwnerID,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewInspectionRepository().Create(ctx, inspection); err != nil {
			return err
		}

		if err := repoFactory.NewAccountRepository().AdjustCounters(ctx, callerID, 0, 1); err != nil {
			return err
		}

		notification := notificationFor(property.OwnerID, entity.NotificationInspectionRequest,
			"New inspection request",
			fmt.Sprintf("A viewing of %q has been requested.", property.Title))
		notification.PropertyID = &property.ID
		notification.InspectionID = &inspection.ID
		srv.notifier.Notify(ctx, repoFactory, notification)

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Inspection requested",
		slog.String("inspection_id", inspection.ID.String()),
		slog.String("property_id", property.ID.String()),
	)

	return inspection, nil
}

// Get retrieves an inspection the caller participates in. Out-of-scope
// lookups read exactly like missing ones.
func (srv *inspectionService) Get(ctx context.Context, callerID, inspectionID uuid.UUID) (*entity.Inspection, error) {
	return srv.loadScoped(ctx, callerID, inspectionID)
}

// List retrieves inspections the caller participates in.
func (srv *inspectionService) List(ctx context.Context, callerID uuid.UUID, input *usecase.ListInspectionsInput) ([]*entity.Inspection, error) {
	filter := &repository.InspectionFilter{
		ScopeAccountID: callerID,
		Status:         input.Status,
		PropertyID:     input.PropertyID,
		AgentID:        input.AgentID,
		PreferredDate:  input.PreferredDate,
		Limit:          input.Limit,
		Offset:         input.Offset,
	}

	return srv.inspectionRepo.List(ctx, filter)
}

// Update applies party-settable changes. Status moves follow the transition
// table; CONFIRMED is reachable only through the Confirm handshake.
func (srv *inspectionService) Update(ctx context.Context, callerID, inspectionID uuid.UUID, input *usecase.UpdateInspectionInput) (*entity.Inspection, error) {
	inspection, err := srv.loadScoped(ctx, callerID, inspectionID)
	if err != nil {
		return nil, err
	}

	if input.Status != nil && *input.Status != inspection.Status {
		if !input.Status.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid inspection status")
		}
		if *input.Status == entity.InspectionStatusConfirmed {
			return nil, domainerrors.ErrInvalidTransition.WrapMessage(
				"confirmation requires both parties; use the confirm operation")
		}
		if !inspection.Status.CanTransitionTo(*input.Status) {
			return nil, domainerrors.ErrInvalidTransition.WrapMessage(
				fmt.Sprintf("cannot move inspection from %s to %s", inspection.Status, *input.Status))
		}
		inspection.Status = *input.Status
	}

	if input.PreferredDate != nil {
		inspection.PreferredDate = *input.PreferredDate
	}
	if input.PreferredTime != nil {
		if _, err := time.Parse("15:04", *input.PreferredTime); err != nil {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("preferred time must be in HH:MM format")
		}
		inspection.PreferredTime = *input.PreferredTime
	}
	if input.RequesterNotes != nil {
		inspection.RequesterNotes = *input.RequesterNotes
	}
	if input.AgentNotes != nil {
		inspection.AgentNotes = *input.AgentNotes
	}

	if err := srv.inspectionRepo.Update(ctx, inspection); err != nil {
		return nil, err
	}

	return inspection, nil
}

// Confirm records one side of the two-party handshake. The property owner
// flips the tenant-side flag, the assigned agent flips the agent-side flag.
// When both are set the inspection becomes CONFIRMED and the requester is
// notified, on that transition only.
func (srv *inspectionService) Confirm(ctx context.Context, callerID, inspectionID uuid.UUID) (*entity.Inspection, error) {
	var confirmed *entity.Inspection

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		inspectionRepo := repoFactory.NewInspectionRepository()

		inspection, err := inspectionRepo.FindByID(ctx, inspectionID)
		if err != nil {
			if errors.Is(err, repository.ErrInspectionNotFound) {
				return domainerrors.ErrInspectionNotFound
			}

			return errors.Wrap(err, "failed to load inspection for confirmation")
		}

		if !inspection.IsParty(callerID) {
			return domainerrors.ErrInspectionNotFound
		}

		if inspection.Status.IsTerminal() {
			return domainerrors.ErrConflict.WrapMessage(
				fmt.Sprintf("cannot confirm an inspection in state %s", inspection.Status))
		}

		switch {
		case callerID == inspection.PropertyOwnerID:
			inspection.ConfirmedByTenant = true
		case inspection.AgentID != nil && callerID == *inspection.AgentID:
			inspection.ConfirmedByAgent = true
		default:
			// The requester is a party but holds no confirmation flag.
			return domainerrors.ErrNotInspectionParty
		}

		wasConfirmed := inspection.Status == entity.InspectionStatusConfirmed
		if inspection.BothConfirmed() && !wasConfirmed {
			now := time.Now()
			inspection.Status = entity.InspectionStatusConfirmed
			inspection.ConfirmedAt = &now

			notification := notificationFor(inspection.RequesterID, entity.NotificationInspectionConfirmed,
				"Inspection confirmed",
				"Your viewing request has been confirmed by both parties.")
			notification.PropertyID = &inspection.PropertyID
			notification.InspectionID = &inspection.ID
			srv.notifier.Notify(ctx, repoFactory, notification)
		}

		if err := inspectionRepo.Update(ctx, inspection); err != nil {
			return err
		}

		confirmed = inspection

		return nil
	})
	if err != nil {
		return nil, err
	}

	return confirmed, nil
}

// AssignAgent is the privileged operation that attaches an agent to an
// inspection that has not reached a terminal state.
func (srv *inspectionService) AssignAgent(ctx context.Context, callerID, inspectionID, agentID uuid.UUID) (*entity.Inspection, error) {
	if !srv.privileges.IsPrivileged(callerID) {
		return nil, domainerrors.ErrPrivilegedOperation
	}

	inspection, err := srv.inspectionRepo.FindByID(ctx, inspectionID)
	if err != nil {
		if errors.Is(err, repository.ErrInspectionNotFound) {
			return nil, domainerrors.ErrInspectionNotFound
		}

		return nil, errors.Wrap(err, "failed to load inspection for agent assignment")
	}

	if inspection.Status.IsTerminal() {
		return nil, domainerrors.ErrConflict.WrapMessage(
			fmt.Sprintf("cannot assign an agent to an inspection in state %s", inspection.Status))
	}

	agent, err := srv.accountRepo.FindByID(ctx, agentID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to load agent account")
	}
	if agent.Profile == nil || !agent.Profile.Role.CanAct(entity.RoleAgent) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("assigned account is not an agent")
	}

	inspection.AgentID = &agentID

	if err := srv.inspectionRepo.Update(ctx, inspection); err != nil {
		return nil, err
	}

	return inspection, nil
}

// Delete removes an inspection. Only the requester may remove it, and the
// requester's counter is decremented alongside.
func (srv *inspectionService) Delete(ctx context.Context, callerID, inspectionID uuid.UUID) error {
	inspection, err := srv.loadScoped(ctx, callerID, inspectionID)
	if err != nil {
		return err
	}

	if inspection.RequesterID != callerID {
		return domainerrors.ErrForbidden
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewInspectionRepository().Delete(ctx, inspection.ID); err != nil {
			return err
		}

		return repoFactory.NewAccountRepository().AdjustCounters(ctx, callerID, 0, -1)
	})
}

// loadScoped loads an inspection and requires the caller to be a party.
func (srv *inspectionService) loadScoped(ctx context.Context, callerID, inspectionID uuid.UUID) (*entity.Inspection, error) {
	inspection, err := srv.inspectionRepo.FindByID(ctx, inspectionID)
	if err != nil {
		if errors.Is(err, repository.ErrInspectionNotFound) {
			return nil, domainerrors.ErrInspectionNotFound
		}

		return nil, errors.Wrap(err, "failed to load inspection")
	}

	if !inspection.IsParty(callerID) && !srv.privileges.IsPrivileged(callerID) {
		return nil, domainerrors.ErrInspectionNotFound
	}

	return inspection, nil
}
