package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
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

// dealService implements the DealUsecase interface.
type dealService struct {
	txManager    repository.TransactionManager
	dealRepo     repository.DealRepository
	propertyRepo repository.PropertyRepository
	notifier     *Notifier
	agentShare   float64
	tolerance    float64
	logger       *slog.Logger
}

// DealServiceParams holds dependencies for DealService, injected by Fx.
type DealServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	DealRepo     repository.DealRepository
	PropertyRepo repository.PropertyRepository
	Notifier     *Notifier
	Config       *config.Config
	Logger       *slog.Logger
}

// NewDealService is the constructor for dealService.
func NewDealService(params DealServiceParams) usecase.DealUsecase {
	return &dealService{
		txManager:    params.TxManager,
		dealRepo:     params.DealRepo,
		propertyRepo: params.PropertyRepo,
		notifier:     params.Notifier,
		agentShare:   params.Config.Commission.AgentShare,
		tolerance:    params.Config.Commission.Tolerance,
		logger:       params.Logger,
	}
}

func (srv *dealService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Initiate opens a deal. The caller becomes the tenant, the owner is
// resolved from the property, the commission is validated against the
// listing's rate, and the owner is notified.
func (srv *dealService) Initiate(ctx context.Context, callerID uuid.UUID, input *usecase.InitiateDealInput) (*entity.Deal, error) {
	property, err := srv.propertyRepo.FindByID(ctx, input.PropertyID)
	if err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return nil, domainerrors.ErrPropertyNotFound
		}

		return nil, errors.Wrap(err, "failed to load property for deal")
	}

	if input.RentAmount < 0 || input.CommissionAmount < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("amounts must not be negative")
	}

	expected := input.RentAmount * property.CommissionPercentage / 100
	if math.Abs(input.CommissionAmount-expected) > srv.tolerance {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(
			fmt.Sprintf("commission amount %.2f does not match the listing rate (expected %.2f)",
				input.CommissionAmount, expected))
	}

	ownerCommission, agentCommission, err := srv.splitCommission(input)
	if err != nil {
		return nil, err
	}

	deal := &entity.Deal{
		PropertyID:       property.ID,
		TenantID:         callerID,
		OwnerID:          property.OwnerID,
		AgentID:          input.AgentID,
		RentAmount:       input.RentAmount,
		CommissionAmount: input.CommissionAmount,
		OwnerCommission:  ownerCommission,
		AgentCommission:  agentCommission,
		Status:           entity.DealStatusInitiated,
		LeaseStartDate:   input.LeaseStartDate,
		LeaseEndDate:     input.LeaseEndDate,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewDealRepository().Create(ctx, deal); err != nil {
			return err
		}

		notification := notificationFor(property.OwnerID, entity.NotificationDealInitiated,
			"Deal initiated",
			fmt.Sprintf("A rental deal has been opened on %q.", property.Title))
		notification.PropertyID = &property.ID
		notification.DealID = &deal.ID
		srv.notifier.Notify(ctx, repoFactory, notification)

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Deal initiated",
		slog.String("deal_id", deal.ID.String()),
		slog.String("property_id", property.ID.String()),
	)

	return deal, nil
}

// Get retrieves a deal the caller participates in. Out-of-scope lookups
// read exactly like missing ones.
func (srv *dealService) Get(ctx context.Context, callerID, dealID uuid.UUID) (*entity.Deal, error) {
	return srv.loadScoped(ctx, callerID, dealID)
}

// List retrieves deals the caller participates in.
func (srv *dealService) List(ctx context.Context, callerID uuid.UUID, input *usecase.ListDealsInput) ([]*entity.Deal, error) {
	filter := &repository.DealFilter{
		ScopeAccountID: callerID,
		Status:         input.Status,
		PropertyID:     input.PropertyID,
		TenantID:       input.TenantID,
		OwnerID:        input.OwnerID,
		AgentID:        input.AgentID,
		Limit:          input.Limit,
		Offset:         input.Offset,
	}

	return srv.dealRepo.List(ctx, filter)
}

// UpdateStatus applies a lifecycle transition. Entering PAID goes through
// MarkPaid so the payment timestamp is recorded.
func (srv *dealService) UpdateStatus(ctx context.Context, callerID, dealID uuid.UUID, input *usecase.UpdateDealStatusInput) (*entity.Deal, error) {
	deal, err := srv.loadScoped(ctx, callerID, dealID)
	if err != nil {
		return nil, err
	}

	if !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid deal status")
	}
	if input.Status == entity.DealStatusPaid {
		return nil, domainerrors.ErrInvalidTransition.WrapMessage(
			"payment is recorded through the mark-paid operation")
	}
	if !deal.Status.CanTransitionTo(input.Status) {
		return nil, domainerrors.ErrInvalidTransition.WrapMessage(
			fmt.Sprintf("cannot move deal from %s to %s", deal.Status, input.Status))
	}

	deal.Status = input.Status

	if err := srv.dealRepo.Update(ctx, deal); err != nil {
		return nil, err
	}

	return deal, nil
}

// MarkPaid records an external payment event. PaidAt is set exactly once,
// and the owner is notified.
func (srv *dealService) MarkPaid(ctx context.Context, callerID, dealID uuid.UUID, input *usecase.MarkDealPaidInput) (*entity.Deal, error) {
	var paid *entity.Deal

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		dealRepo := repoFactory.NewDealRepository()

		deal, err := dealRepo.FindByID(ctx, dealID)
		if err != nil {
			if errors.Is(err, repository.ErrDealNotFound) {
				return domainerrors.ErrDealNotFound
			}

			return errors.Wrap(err, "failed to load deal for payment")
		}

		if !deal.IsParty(callerID) {
			return domainerrors.ErrDealNotFound
		}

		if !deal.Status.CanTransitionTo(entity.DealStatusPaid) {
			return domainerrors.ErrInvalidTransition.WrapMessage(
				fmt.Sprintf("cannot record payment on a deal in state %s", deal.Status))
		}

		paidAt := time.Now()
		if input.PaidAt != nil {
			paidAt = *input.PaidAt
		}

		deal.Status = entity.DealStatusPaid
		deal.PaymentReference = input.PaymentReference
		if deal.PaidAt == nil {
			deal.PaidAt = &paidAt
		}

		if err := dealRepo.Update(ctx, deal); err != nil {
			return err
		}

		notification := notificationFor(deal.OwnerID, entity.NotificationPaymentReceived,
			"Payment received",
			fmt.Sprintf("Payment %s has been recorded on your deal.", deal.PaymentReference))
		notification.PropertyID = &deal.PropertyID
		notification.DealID = &deal.ID
		srv.notifier.Notify(ctx, repoFactory, notification)

		paid = deal

		return nil
	})
	if err != nil {
		return nil, err
	}

	return paid, nil
}

// splitCommission derives or validates the owner/agent portions. Derived
// portions are rounded to cents with the remainder going to the owner so
// the sum stays exact.
func (srv *dealService) splitCommission(input *usecase.InitiateDealInput) (float64, float64, error) {
	if input.OwnerCommission != nil || input.AgentCommission != nil {
		if input.OwnerCommission == nil || input.AgentCommission == nil {
			return 0, 0, domainerrors.ErrValidationFailed.WrapMessage(
				"owner and agent commissions must be supplied together")
		}
		if *input.OwnerCommission < 0 || *input.AgentCommission < 0 {
			return 0, 0, domainerrors.ErrValidationFailed.WrapMessage("commission portions must not be negative")
		}
		if math.Abs(*input.OwnerCommission+*input.AgentCommission-input.CommissionAmount) > srv.tolerance {
			return 0, 0, domainerrors.ErrCommissionSplitMismatch
		}

		return *input.OwnerCommission, *input.AgentCommission, nil
	}

	// No agent on the deal: the owner keeps the whole commission.
	if input.AgentID == nil {
		return input.CommissionAmount, 0, nil
	}

	agentCommission := math.Round(input.CommissionAmount*srv.agentShare*100) / 100
	ownerCommission := input.CommissionAmount - agentCommission

	return ownerCommission, agentCommission, nil
}

// loadScoped loads a deal and requires the caller to be a party.
func (srv *dealService) loadScoped(ctx context.Context, callerID, dealID uuid.UUID) (*entity.Deal, error) {
	deal, err := srv.dealRepo.FindByID(ctx, dealID)
	if err != nil {
		if errors.Is(err, repository.ErrDealNotFound) {
			return nil, domainerrors.ErrDealNotFound
		}

		return nil, errors.Wrap(err, "failed to load deal")
	}

	if !deal.IsParty(callerID) {
		return nil, domainerrors.ErrDealNotFound
	}

	return deal, nil
}
