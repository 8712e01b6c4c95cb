package postgres

import (
	"context"

	"inndoor/internal/domain/entity"
	domainerrors "inndoor/internal/domain/errors"
	"inndoor/internal/domain/repository"
	"inndoor/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// propertyRepository implements the repository.PropertyRepository interface.
type propertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository is the constructor for propertyRepository.
func NewPropertyRepository(db *gorm.DB) repository.PropertyRepository {
	return &propertyRepository{
		db: db,
	}
}

// Create persists a new property listing.
func (repo *propertyRepository) Create(ctx context.Context, property *entity.Property) error {
	propertyM := fromPropertyDomain(property)

	if err := repo.db.WithContext(ctx).Create(propertyM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrAccountNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create property")
	}

	// Update the entity with generated values
	property.ID = propertyM.ID
	property.CreatedAt = propertyM.CreatedAt
	property.UpdatedAt = propertyM.UpdatedAt

	return nil
}

// FindByID retrieves a property by its unique ID, preloading images.
func (repo *propertyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Property, error) {
	var propertyM model.PropertyModel

	if err := repo.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, uploaded_at ASC")
		}).
		Where("id = ?", id).
		First(&propertyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPropertyNotFound
		}

		return nil, errors.Wrap(err, "failed to find property by ID")
	}

	return toPropertyDomain(&propertyM), nil
}

// List retrieves properties matching the filter, newest first.
func (repo *propertyRepository) List(ctx context.Context, filter *repository.PropertyFilter) ([]*entity.Property, error) {
	var propertyModels []*model.PropertyModel

	query := repo.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, uploaded_at ASC")
		}).
		Order("created_at DESC")

	query = applyPropertyFilter(query, filter)

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	if err := query.Find(&propertyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list properties")
	}

	properties := make([]*entity.Property, 0, len(propertyModels))
	for _, propertyM := range propertyModels {
		properties = append(properties, toPropertyDomain(propertyM))
	}

	return properties, nil
}

func applyPropertyFilter(query *gorm.DB, filter *repository.PropertyFilter) *gorm.DB {
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type.String())
	}
	if filter.City != "" {
		query = query.Where("LOWER(city) = LOWER(?)", filter.City)
	}
	if filter.State != "" {
		query = query.Where("LOWER(state) = LOWER(?)", filter.State)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.IsVerified != nil {
		query = query.Where("is_verified = ?", *filter.IsVerified)
	}
	if filter.IsFurnished != nil {
		query = query.Where("is_furnished = ?", *filter.IsFurnished)
	}
	if filter.HasParking != nil {
		query = query.Where("has_parking = ?", *filter.HasParking)
	}
	if filter.PetsAllowed != nil {
		query = query.Where("pets_allowed = ?", *filter.PetsAllowed)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"title ILIKE ? OR description ILIKE ? OR address ILIKE ? OR landmark ILIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.OwnerID != nil {
		query = query.Where("owner_id = ?", *filter.OwnerID)
	}

	return query
}

// Update persists changes to an existing property.
func (repo *propertyRepository) Update(ctx context.Context, property *entity.Property) error {
	propertyM := fromPropertyDomain(property)

	result := repo.db.WithContext(ctx).
		Model(&model.PropertyModel{}).
		Where("id = ?", property.ID).
		Select("*").
		Omit("id", "owner_id", "views_count", "created_at").
		Updates(propertyM)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update property")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPropertyNotFound
	}

	return nil
}

// Delete removes a property. Dependent rows cascade or are nulled per the
// schema constraints.
func (repo *propertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PropertyModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete property")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPropertyNotFound
	}

	return nil
}

// IncrementViews bumps the view counter in a single UPDATE so that
// concurrent bumps are never lost, then reads back the new value.
func (repo *propertyRepository) IncrementViews(ctx context.Context, id uuid.UUID) (int, error) {
	var viewsCount int

	result := repo.db.WithContext(ctx).
		Raw("UPDATE properties SET views_count = views_count + 1 WHERE id = ? RETURNING views_count", id).
		Scan(&viewsCount)

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to increment property views")
	}

	if result.RowsAffected == 0 {
		return 0, repository.ErrPropertyNotFound
	}

	return viewsCount, nil
}

// AddImage attaches an image record to a property.
func (repo *propertyRepository) AddImage(ctx context.Context, image *entity.PropertyImage) error {
	imageM := fromPropertyImageDomain(image)

	if err := repo.db.WithContext(ctx).Create(imageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrPropertyNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add property image")
	}

	image.ID = imageM.ID
	image.UploadedAt = imageM.UploadedAt

	return nil
}

// FindImage retrieves a single image by ID.
func (repo *propertyRepository) FindImage(ctx context.Context, imageID uuid.UUID) (*entity.PropertyImage, error) {
	var imageM model.PropertyImageModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", imageID).
		First(&imageM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPropertyImageNotFound
		}

		return nil, errors.Wrap(err, "failed to find property image")
	}

	return toPropertyImageDomain(&imageM), nil
}

// ListImages retrieves a property's images ordered by sort order.
func (repo *propertyRepository) ListImages(ctx context.Context, propertyID uuid.UUID) ([]*entity.PropertyImage, error) {
	var imageModels []*model.PropertyImageModel

	if err := repo.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("sort_order ASC, uploaded_at ASC").
		Find(&imageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list property images")
	}

	images := make([]*entity.PropertyImage, 0, len(imageModels))
	for _, imageM := range imageModels {
		images = append(images, toPropertyImageDomain(imageM))
	}

	return images, nil
}

// SetPrimaryImage marks the given image primary and demotes any other
// primary image of the same property within one transaction.
func (repo *propertyRepository) SetPrimaryImage(ctx context.Context, propertyID, imageID uuid.UUID) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.PropertyImageModel{}).
			Where("property_id = ? AND id <> ?", propertyID, imageID).
			Update("is_primary", false).Error; err != nil {
			return errors.Wrap(err, "failed to demote existing primary image")
		}

		result := tx.Model(&model.PropertyImageModel{}).
			Where("id = ? AND property_id = ?", imageID, propertyID).
			Update("is_primary", true)

		if result.Error != nil {
			return errors.Wrap(result.Error, "failed to promote primary image")
		}

		if result.RowsAffected == 0 {
			return repository.ErrPropertyImageNotFound
		}

		return nil
	})
}

// DeleteImage removes an image record.
func (repo *propertyRepository) DeleteImage(ctx context.Context, imageID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", imageID).
		Delete(&model.PropertyImageModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete property image")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPropertyImageNotFound
	}

	return nil
}

// toPropertyDomain converts a GORM model to a domain entity.
func toPropertyDomain(propertyM *model.PropertyModel) *entity.Property {
	property := &entity.Property{
		ID:                   propertyM.ID,
		OwnerID:              propertyM.OwnerID,
		Title:                propertyM.Title,
		Description:          propertyM.Description,
		Type:                 entity.PropertyType(propertyM.Type),
		Status:               entity.PropertyStatus(propertyM.Status),
		Address:              propertyM.Address,
		City:                 propertyM.City,
		State:                propertyM.State,
		Landmark:             propertyM.Landmark,
		Latitude:             propertyM.Latitude,
		Longitude:            propertyM.Longitude,
		Bedrooms:             propertyM.Bedrooms,
		Bathrooms:            propertyM.Bathrooms,
		Price:                propertyM.Price,
		Pros:                 propertyM.Pros,
		Cons:                 propertyM.Cons,
		IsFurnished:          propertyM.IsFurnished,
		HasParking:           propertyM.HasParking,
		PetsAllowed:          propertyM.PetsAllowed,
		AvailableFrom:        propertyM.AvailableFrom,
		MoveOutDate:          propertyM.MoveOutDate,
		CommissionPercentage: propertyM.CommissionPercentage,
		ViewsCount:           propertyM.ViewsCount,
		IsVerified:           propertyM.IsVerified,
		VerifiedAt:           propertyM.VerifiedAt,
		VerifiedBy:           propertyM.VerifiedBy,
		CreatedAt:            propertyM.CreatedAt,
		UpdatedAt:            propertyM.UpdatedAt,
	}

	for _, imageM := range propertyM.Images {
		property.Images = append(property.Images, toPropertyImageDomain(imageM))
	}

	return property
}

// fromPropertyDomain converts a domain entity to a GORM model.
// Images are persisted through their own operations, not as a nested graph.
func fromPropertyDomain(property *entity.Property) *model.PropertyModel {
	return &model.PropertyModel{
		ID:                   property.ID,
		OwnerID:              property.OwnerID,
		Title:                property.Title,
		Description:          property.Description,
		Type:                 property.Type.String(),
		Status:               property.Status.String(),
		Address:              property.Address,
		City:                 property.City,
		State:                property.State,
		Landmark:             property.Landmark,
		Latitude:             property.Latitude,
		Longitude:            property.Longitude,
		Bedrooms:             property.Bedrooms,
		Bathrooms:            property.Bathrooms,
		Price:                property.Price,
		Pros:                 property.Pros,
		Cons:                 property.Cons,
		IsFurnished:          property.IsFurnished,
		HasParking:           property.HasParking,
		PetsAllowed:          property.PetsAllowed,
		AvailableFrom:        property.AvailableFrom,
		MoveOutDate:          property.MoveOutDate,
		CommissionPercentage: property.CommissionPercentage,
		ViewsCount:           property.ViewsCount,
		IsVerified:           property.IsVerified,
		VerifiedAt:           property.VerifiedAt,
		VerifiedBy:           property.VerifiedBy,
	}
}

// toPropertyImageDomain converts a GORM model to a domain entity.
func toPropertyImageDomain(imageM *model.PropertyImageModel) *entity.PropertyImage {
	return &entity.PropertyImage{
		ID:         imageM.ID,
		PropertyID: imageM.PropertyID,
		URI:        imageM.URI,
		Caption:    imageM.Caption,
		IsPrimary:  imageM.IsPrimary,
		SortOrder:  imageM.SortOrder,
		UploadedAt: imageM.UploadedAt,
	}
}

// fromPropertyImageDomain converts a domain entity to a GORM model.
func fromPropertyImageDomain(image *entity.PropertyImage) *model.PropertyImageModel {
	return &model.PropertyImageModel{
		ID:         image.ID,
		PropertyID: image.PropertyID,
		URI:        image.URI,
		Caption:    image.Caption,
		IsPrimary:  image.IsPrimary,
		SortOrder:  image.SortOrder,
	}
}
