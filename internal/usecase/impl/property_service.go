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
	"inndoor/internal/domain/service"
	"inndoor/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultCommissionPercentage = 10.0

// propertyService implements the PropertyUsecase interface.
type propertyService struct {
	txManager    repository.TransactionManager
	propertyRepo repository.PropertyRepository
	notifier     *Notifier
	qrService    service.QRCodeService
	privileges   *privilegeChecker
	qrBaseURL    string
	logger       *slog.Logger
}

// PropertyServiceParams holds dependencies for PropertyService, injected by Fx.
type PropertyServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	PropertyRepo repository.PropertyRepository
	Notifier     *Notifier
	QRService    service.QRCodeService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewPropertyService is the constructor for propertyService.
func NewPropertyService(params PropertyServiceParams) usecase.PropertyUsecase {
	baseURL := ""
	if params.Config != nil && params.Config.QRCode != nil {
		baseURL = params.Config.QRCode.BaseURL
	}

	return &propertyService{
		txManager:    params.TxManager,
		propertyRepo: params.PropertyRepo,
		notifier:     params.Notifier,
		qrService:    params.QRService,
		privileges:   newPrivilegeChecker(params.Config),
		qrBaseURL:    baseURL,
		logger:       params.Logger,
	}
}

func (srv *propertyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create lists a new property. The caller becomes the owner, the listing
// starts as a draft, and the owner's listing counter is bumped in the same
// transaction.
func (srv *propertyService) Create(ctx context.Context, callerID uuid.UUID, input *usecase.CreatePropertyInput) (*entity.Property, error) {
	if !input.Type.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid property type")
	}
	if input.Price < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("price must not be negative")
	}

	commission := defaultCommissionPercentage
	if input.CommissionPercentage != nil {
		commission = *input.CommissionPercentage
	}
	if commission < 0 || commission > 100 {
		return nil, domainerrors.ErrCommissionOutOfRange
	}

	property := &entity.Property{
		OwnerID:              callerID,
		Title:                input.Title,
		Description:          input.Description,
		Type:                 input.Type,
		Status:               entity.PropertyStatusDraft,
		Address:              input.Address,
		City:                 input.City,
		State:                input.State,
		Landmark:             input.Landmark,
		Latitude:             input.Latitude,
		Longitude:            input.Longitude,
		Bedrooms:             input.Bedrooms,
		Bathrooms:            input.Bathrooms,
		Price:                input.Price,
		Pros:                 input.Pros,
		Cons:                 input.Cons,
		IsFurnished:          input.IsFurnished,
		HasParking:           input.HasParking,
		PetsAllowed:          input.PetsAllowed,
		AvailableFrom:        input.AvailableFrom,
		MoveOutDate:          input.MoveOutDate,
		CommissionPercentage: commission,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewPropertyRepository().Create(ctx, property); err != nil {
			return err
		}

		return repoFactory.NewAccountRepository().AdjustCounters(ctx, callerID, 1, 0)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Property listed",
		slog.String("property_id", property.ID.String()),
		slog.String("owner_id", callerID.String()),
	)

	return property, nil
}

// Get retrieves a listing visible to the caller. Drafts belong to their
// owner alone; an out-of-scope lookup reads exactly like a missing one.
func (srv *propertyService) Get(ctx context.Context, callerID, propertyID uuid.UUID) (*entity.Property, error) {
	property, err := srv.loadProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	if !srv.canSee(callerID, property) {
		return nil, domainerrors.ErrPropertyNotFound
	}

	return property, nil
}

// List retrieves properties matching the search input, then applies the
// caller's visibility and the optional geographic filter.
func (srv *propertyService) List(ctx context.Context, callerID uuid.UUID, input *usecase.ListPropertiesInput) ([]*entity.Property, error) {
	filter := &repository.PropertyFilter{
		Type:        input.Type,
		City:        input.City,
		State:       input.State,
		Status:      input.Status,
		IsVerified:  input.IsVerified,
		IsFurnished: input.IsFurnished,
		HasParking:  input.HasParking,
		PetsAllowed: input.PetsAllowed,
		Search:      input.Search,
		MinPrice:    input.MinPrice,
		MaxPrice:    input.MaxPrice,
		OwnerID:     input.OwnerID,
		Limit:       input.Limit,
		Offset:      input.Offset,
	}

	properties, err := srv.propertyRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	visible := make([]*entity.Property, 0, len(properties))
	for _, property := range properties {
		if !srv.canSee(callerID, property) {
			continue
		}
		if input.Near != nil && !withinRadius(property, input.Near) {
			continue
		}
		visible = append(visible, property)
	}

	return visible, nil
}

// Update applies owner-settable changes. Verification state and the view
// counter never pass through here.
func (srv *propertyService) Update(ctx context.Context, callerID, propertyID uuid.UUID, input *usecase.UpdatePropertyInput) (*entity.Property, error) {
	property, err := srv.loadOwned(ctx, callerID, propertyID)
	if err != nil {
		return nil, err
	}

	if input.Status != nil && *input.Status != property.Status {
		if !input.Status.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid property status")
		}
		if !property.Status.CanTransitionTo(*input.Status) {
			return nil, domainerrors.ErrInvalidTransition.WrapMessage(
				fmt.Sprintf("cannot move listing from %s to %s", property.Status, *input.Status))
		}
		property.Status = *input.Status
	}

	if input.Type != nil {
		if !input.Type.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid property type")
		}
		property.Type = *input.Type
	}
	if input.Title != nil {
		property.Title = *input.Title
	}
	if input.Description != nil {
		property.Description = *input.Description
	}
	if input.Address != nil {
		property.Address = *input.Address
	}
	if input.City != nil {
		property.City = *input.City
	}
	if input.State != nil {
		property.State = *input.State
	}
	if input.Landmark != nil {
		property.Landmark = *input.Landmark
	}
	if input.Latitude != nil {
		property.Latitude = input.Latitude
	}
	if input.Longitude != nil {
		property.Longitude = input.Longitude
	}
	if input.Bedrooms != nil {
		property.Bedrooms = *input.Bedrooms
	}
	if input.Bathrooms != nil {
		property.Bathrooms = *input.Bathrooms
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("price must not be negative")
		}
		property.Price = *input.Price
	}
	if input.Pros != nil {
		property.Pros = *input.Pros
	}
	if input.Cons != nil {
		property.Cons = *input.Cons
	}
	if input.IsFurnished != nil {
		property.IsFurnished = *input.IsFurnished
	}
	if input.HasParking != nil {
		property.HasParking = *input.HasParking
	}
	if input.PetsAllowed != nil {
		property.PetsAllowed = *input.PetsAllowed
	}
	if input.AvailableFrom != nil {
		property.AvailableFrom = input.AvailableFrom
	}
	if input.MoveOutDate != nil {
		property.MoveOutDate = input.MoveOutDate
	}
	if input.CommissionPercentage != nil {
		if *input.CommissionPercentage < 0 || *input.CommissionPercentage > 100 {
			return nil, domainerrors.ErrCommissionOutOfRange
		}
		property.CommissionPercentage = *input.CommissionPercentage
	}

	if err := srv.propertyRepo.Update(ctx, property); err != nil {
		return nil, err
	}

	return property, nil
}

// Delete removes a listing and decrements the owner's listing counter.
func (srv *propertyService) Delete(ctx context.Context, callerID, propertyID uuid.UUID) error {
	property, err := srv.loadOwned(ctx, callerID, propertyID)
	if err != nil {
		return err
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewPropertyRepository().Delete(ctx, property.ID); err != nil {
			return err
		}

		return repoFactory.NewAccountRepository().AdjustCounters(ctx, property.OwnerID, -1, 0)
	})
}

// IncrementViews bumps the view counter and returns the new value. Any
// authenticated caller counts as a view, including the owner.
func (srv *propertyService) IncrementViews(ctx context.Context, callerID, propertyID uuid.UUID) (int, error) {
	property, err := srv.loadProperty(ctx, propertyID)
	if err != nil {
		return 0, err
	}

	if !srv.canSee(callerID, property) {
		return 0, domainerrors.ErrPropertyNotFound
	}

	count, err := srv.propertyRepo.IncrementViews(ctx, propertyID)
	if err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return 0, domainerrors.ErrPropertyNotFound
		}

		return 0, err
	}

	return count, nil
}

// Verify is the privileged listing verification operation. It stamps the
// verification fields and notifies the owner.
func (srv *propertyService) Verify(ctx context.Context, callerID, propertyID uuid.UUID) (*entity.Property, error) {
	if !srv.privileges.IsPrivileged(callerID) {
		return nil, domainerrors.ErrPrivilegedOperation
	}

	property, err := srv.loadProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	if property.IsVerified {
		return property, nil
	}

	now := time.Now()
	property.IsVerified = true
	property.VerifiedAt = &now
	property.VerifiedBy = &callerID

	if err := srv.propertyRepo.Update(ctx, property); err != nil {
		return nil, err
	}

	notification := notificationFor(property.OwnerID, entity.NotificationPropertyVerified,
		"Listing verified",
		fmt.Sprintf("Your listing %q has been verified.", property.Title))
	notification.PropertyID = &property.ID
	srv.notifier.Notify(ctx, nil, notification)

	return property, nil
}

// ShareQR renders a PNG QR code encoding a shareable listing reference.
func (srv *propertyService) ShareQR(ctx context.Context, callerID, propertyID uuid.UUID) ([]byte, error) {
	property, err := srv.loadProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	if !srv.canSee(callerID, property) {
		return nil, domainerrors.ErrPropertyNotFound
	}

	return srv.qrService.GenerateListingQR(property.ID)
}

// AddImage attaches an image to an owned listing. A new primary image
// demotes the existing one.
func (srv *propertyService) AddImage(ctx context.Context, callerID uuid.UUID, input *usecase.AddPropertyImageInput) (*entity.PropertyImage, error) {
	property, err := srv.loadOwned(ctx, callerID, input.PropertyID)
	if err != nil {
		return nil, err
	}

	image := &entity.PropertyImage{
		PropertyID: property.ID,
		URI:        input.URI,
		Caption:    input.Caption,
		IsPrimary:  input.IsPrimary,
		SortOrder:  input.SortOrder,
	}

	if !image.IsPrimary {
		if err := srv.propertyRepo.AddImage(ctx, image); err != nil {
			return nil, err
		}

		return image, nil
	}

	// Creating a new primary image and demoting the old one must land
	// together, or two primaries can persist.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		txPropertyRepo := repoFactory.NewPropertyRepository()
		if err := txPropertyRepo.AddImage(ctx, image); err != nil {
			return err
		}

		return txPropertyRepo.SetPrimaryImage(ctx, property.ID, image.ID)
	})
	if err != nil {
		return nil, err
	}

	return image, nil
}

// ListImages retrieves a visible listing's images.
func (srv *propertyService) ListImages(ctx context.Context, callerID, propertyID uuid.UUID) ([]*entity.PropertyImage, error) {
	property, err := srv.loadProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	if !srv.canSee(callerID, property) {
		return nil, domainerrors.ErrPropertyNotFound
	}

	return srv.propertyRepo.ListImages(ctx, propertyID)
}

// SetPrimaryImage promotes one image and demotes the rest atomically.
func (srv *propertyService) SetPrimaryImage(ctx context.Context, callerID, propertyID, imageID uuid.UUID) error {
	if _, err := srv.loadOwned(ctx, callerID, propertyID); err != nil {
		return err
	}

	if err := srv.propertyRepo.SetPrimaryImage(ctx, propertyID, imageID); err != nil {
		if errors.Is(err, repository.ErrPropertyImageNotFound) {
			return domainerrors.ErrNotFound
		}

		return err
	}

	return nil
}

// DeleteImage removes an image from an owned listing.
func (srv *propertyService) DeleteImage(ctx context.Context, callerID, propertyID, imageID uuid.UUID) error {
	if _, err := srv.loadOwned(ctx, callerID, propertyID); err != nil {
		return err
	}

	image, err := srv.propertyRepo.FindImage(ctx, imageID)
	if err != nil {
		if errors.Is(err, repository.ErrPropertyImageNotFound) {
			return domainerrors.ErrNotFound
		}

		return err
	}
	if image.PropertyID != propertyID {
		return domainerrors.ErrNotFound
	}

	if err := srv.propertyRepo.DeleteImage(ctx, imageID); err != nil {
		if errors.Is(err, repository.ErrPropertyImageNotFound) {
			return domainerrors.ErrNotFound
		}

		return err
	}

	return nil
}

func (srv *propertyService) loadProperty(ctx context.Context, propertyID uuid.UUID) (*entity.Property, error) {
	property, err := srv.propertyRepo.FindByID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return nil, domainerrors.ErrPropertyNotFound
		}

		return nil, errors.Wrap(err, "failed to load property")
	}

	return property, nil
}

// loadOwned loads a property and requires the caller to be its owner. A
// non-owner gets the same answer as a missing listing.
func (srv *propertyService) loadOwned(ctx context.Context, callerID, propertyID uuid.UUID) (*entity.Property, error) {
	property, err := srv.loadProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	if property.OwnerID != callerID {
		if srv.canSee(callerID, property) {
			return nil, domainerrors.ErrNotOwner
		}

		return nil, domainerrors.ErrPropertyNotFound
	}

	return property, nil
}

// canSee reports whether the caller may observe the listing at all.
func (srv *propertyService) canSee(callerID uuid.UUID, property *entity.Property) bool {
	if property.Status != entity.PropertyStatusDraft {
		return true
	}

	return property.OwnerID == callerID || srv.privileges.IsPrivileged(callerID)
}

// withinRadius reports whether the property lies inside the geographic
// filter. Listings without coordinates never match a near query.
func withinRadius(property *entity.Property, near *usecase.NearFilter) bool {
	if property.Latitude == nil || property.Longitude == nil {
		return false
	}

	center := orb.Point{near.Longitude, near.Latitude}
	location := orb.Point{*property.Longitude, *property.Latitude}

	return geo.Distance(center, location) <= near.RadiusKm*1000
}
