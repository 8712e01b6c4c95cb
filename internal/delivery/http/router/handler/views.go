package handler

import (
	"time"

	"inndoor/internal/domain/entity"

	"github.com/google/uuid"
)

// Response views are the explicit output shapes of the API. Every handler
// maps entities through one of these before serialization; fields absent
// here are never emitted, credentials included.

// AccountResponse is the serialized view of an account.
type AccountResponse struct {
	ID        uuid.UUID        `json:"id"`
	Username  string           `json:"username"`
	Email     string           `json:"email"`
	Profile   *ProfileResponse `json:"profile,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// ProfileResponse is the serialized view of a profile.
type ProfileResponse struct {
	AccountID            uuid.UUID                 `json:"account_id"`
	Role                 entity.Role               `json:"role"`
	PhoneNumber          string                    `json:"phone_number"`
	Bio                  string                    `json:"bio"`
	ProfilePicture       string                    `json:"profile_picture"`
	VerificationStatus   entity.VerificationStatus `json:"verification_status"`
	IsVerified           bool                      `json:"is_verified"`
	VerificationDocument string                    `json:"verification_document"`
	TotalListings        int                       `json:"total_listings"`
	TotalInspections     int                       `json:"total_inspections"`
	Rating               float64                   `json:"rating"`
	CreatedAt            time.Time                 `json:"created_at"`
	UpdatedAt            time.Time                 `json:"updated_at"`
}

// AuthResponse carries the token pair issued at login together with the
// authenticated account.
type AuthResponse struct {
	AccessToken  string           `json:"access_token"`
	RefreshToken string           `json:"refresh_token"`
	Account      *AccountResponse `json:"account"`
}

// TokenPairResponse carries a rotated token pair.
type TokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func newAccountResponse(a *entity.Account) *AccountResponse {
	if a == nil {
		return nil
	}

	return &AccountResponse{
		ID:        a.ID,
		Username:  a.Username,
		Email:     a.Email,
		Profile:   newProfileResponse(a.Profile),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func newProfileResponse(p *entity.Profile) *ProfileResponse {
	if p == nil {
		return nil
	}

	return &ProfileResponse{
		AccountID:            p.AccountID,
		Role:                 p.Role,
		PhoneNumber:          p.PhoneNumber,
		Bio:                  p.Bio,
		ProfilePicture:       p.ProfilePicture,
		VerificationStatus:   p.VerificationStatus,
		IsVerified:           p.IsVerified,
		VerificationDocument: p.VerificationDocument,
		TotalListings:        p.TotalListings,
		TotalInspections:     p.TotalInspections,
		Rating:               p.Rating,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}

// PropertyResponse is the serialized view of a listing.
type PropertyResponse struct {
	ID          uuid.UUID             `json:"id"`
	OwnerID     uuid.UUID             `json:"owner_id"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Type        entity.PropertyType   `json:"type"`
	Status      entity.PropertyStatus `json:"status"`

	Address   string   `json:"address"`
	City      string   `json:"city"`
	State     string   `json:"state"`
	Landmark  string   `json:"landmark"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	Bedrooms  int     `json:"bedrooms"`
	Bathrooms int     `json:"bathrooms"`
	Price     float64 `json:"price"`
	Pros      string  `json:"pros"`
	Cons      string  `json:"cons"`

	IsFurnished bool `json:"is_furnished"`
	HasParking  bool `json:"has_parking"`
	PetsAllowed bool `json:"pets_allowed"`

	AvailableFrom *time.Time `json:"available_from,omitempty"`
	MoveOutDate   *time.Time `json:"move_out_date,omitempty"`

	CommissionPercentage float64 `json:"commission_percentage"`
	ViewsCount           int     `json:"views_count"`

	IsVerified bool       `json:"is_verified"`
	VerifiedAt *time.Time `json:"verified_at,omitempty"`
	VerifiedBy *uuid.UUID `json:"verified_by,omitempty"`

	Images []*PropertyImageResponse `json:"images"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PropertyImageResponse is the serialized view of a listing image.
type PropertyImageResponse struct {
	ID         uuid.UUID `json:"id"`
	PropertyID uuid.UUID `json:"property_id"`
	URI        string    `json:"uri"`
	Caption    string    `json:"caption"`
	IsPrimary  bool      `json:"is_primary"`
	SortOrder  int       `json:"sort_order"`
	UploadedAt time.Time `json:"uploaded_at"`
}

func newPropertyResponse(p *entity.Property) *PropertyResponse {
	if p == nil {
		return nil
	}

	return &PropertyResponse{
		ID:                   p.ID,
		OwnerID:              p.OwnerID,
		Title:                p.Title,
		Description:          p.Description,
		Type:                 p.Type,
		Status:               p.Status,
		Address:              p.Address,
		City:                 p.City,
		State:                p.State,
		Landmark:             p.Landmark,
		Latitude:             p.Latitude,
		Longitude:            p.Longitude,
		Bedrooms:             p.Bedrooms,
		Bathrooms:            p.Bathrooms,
		Price:                p.Price,
		Pros:                 p.Pros,
		Cons:                 p.Cons,
		IsFurnished:          p.IsFurnished,
		HasParking:           p.HasParking,
		PetsAllowed:          p.PetsAllowed,
		AvailableFrom:        p.AvailableFrom,
		MoveOutDate:          p.MoveOutDate,
		CommissionPercentage: p.CommissionPercentage,
		ViewsCount:           p.ViewsCount,
		IsVerified:           p.IsVerified,
		VerifiedAt:           p.VerifiedAt,
		VerifiedBy:           p.VerifiedBy,
		Images:               newPropertyImageResponses(p.Images),
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}

func newPropertyResponses(properties []*entity.Property) []*PropertyResponse {
	out := make([]*PropertyResponse, 0, len(properties))
	for _, p := range properties {
		out = append(out, newPropertyResponse(p))
	}

	return out
}

func newPropertyImageResponse(img *entity.PropertyImage) *PropertyImageResponse {
	if img == nil {
		return nil
	}

	return &PropertyImageResponse{
		ID:         img.ID,
		PropertyID: img.PropertyID,
		URI:        img.URI,
		Caption:    img.Caption,
		IsPrimary:  img.IsPrimary,
		SortOrder:  img.SortOrder,
		UploadedAt: img.UploadedAt,
	}
}

func newPropertyImageResponses(images []*entity.PropertyImage) []*PropertyImageResponse {
	out := make([]*PropertyImageResponse, 0, len(images))
	for _, img := range images {
		out = append(out, newPropertyImageResponse(img))
	}

	return out
}

// InspectionResponse is the serialized view of a viewing appointment.
type InspectionResponse struct {
	ID          uuid.UUID  `json:"id"`
	PropertyID  uuid.UUID  `json:"property_id"`
	RequesterID uuid.UUID  `json:"requester_id"`
	AgentID     *uuid.UUID `json:"agent_id,omitempty"`

	PreferredDate time.Time  `json:"preferred_date"`
	PreferredTime string     `json:"preferred_time"`
	ConfirmedAt   *time.Time `json:"confirmed_at,omitempty"`

	Status entity.InspectionStatus `json:"status"`

	RequesterNotes string `json:"requester_notes"`
	AgentNotes     string `json:"agent_notes"`

	ConfirmedByTenant bool `json:"confirmed_by_tenant"`
	ConfirmedByAgent  bool `json:"confirmed_by_agent"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newInspectionResponse(i *entity.Inspection) *InspectionResponse {
	if i == nil {
		return nil
	}

	return &InspectionResponse{
		ID:                i.ID,
		PropertyID:        i.PropertyID,
		RequesterID:       i.RequesterID,
		AgentID:           i.AgentID,
		PreferredDate:     i.PreferredDate,
		PreferredTime:     i.PreferredTime,
		ConfirmedAt:       i.ConfirmedAt,
		Status:            i.Status,
		RequesterNotes:    i.RequesterNotes,
		AgentNotes:        i.AgentNotes,
		ConfirmedByTenant: i.ConfirmedByTenant,
		ConfirmedByAgent:  i.ConfirmedByAgent,
		CreatedAt:         i.CreatedAt,
		UpdatedAt:         i.UpdatedAt,
	}
}

func newInspectionResponses(inspections []*entity.Inspection) []*InspectionResponse {
	out := make([]*InspectionResponse, 0, len(inspections))
	for _, i := range inspections {
		out = append(out, newInspectionResponse(i))
	}

	return out
}

// DealResponse is the serialized view of a rental agreement.
type DealResponse struct {
	ID         uuid.UUID  `json:"id"`
	PropertyID uuid.UUID  `json:"property_id"`
	TenantID   uuid.UUID  `json:"tenant_id"`
	OwnerID    uuid.UUID  `json:"owner_id"`
	AgentID    *uuid.UUID `json:"agent_id,omitempty"`

	RentAmount       float64 `json:"rent_amount"`
	CommissionAmount float64 `json:"commission_amount"`
	OwnerCommission  float64 `json:"owner_commission"`
	AgentCommission  float64 `json:"agent_commission"`

	Status entity.DealStatus `json:"status"`

	LeaseStartDate *time.Time `json:"lease_start_date,omitempty"`
	LeaseEndDate   *time.Time `json:"lease_end_date,omitempty"`

	PaymentReference string     `json:"payment_reference"`
	PaidAt           *time.Time `json:"paid_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newDealResponse(d *entity.Deal) *DealResponse {
	if d == nil {
		return nil
	}

	return &DealResponse{
		ID:               d.ID,
		PropertyID:       d.PropertyID,
		TenantID:         d.TenantID,
		OwnerID:          d.OwnerID,
		AgentID:          d.AgentID,
		RentAmount:       d.RentAmount,
		CommissionAmount: d.CommissionAmount,
		OwnerCommission:  d.OwnerCommission,
		AgentCommission:  d.AgentCommission,
		Status:           d.Status,
		LeaseStartDate:   d.LeaseStartDate,
		LeaseEndDate:     d.LeaseEndDate,
		PaymentReference: d.PaymentReference,
		PaidAt:           d.PaidAt,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

func newDealResponses(deals []*entity.Deal) []*DealResponse {
	out := make([]*DealResponse, 0, len(deals))
	for _, d := range deals {
		out = append(out, newDealResponse(d))
	}

	return out
}

// ReviewResponse is the serialized view of a review.
type ReviewResponse struct {
	ID             uuid.UUID         `json:"id"`
	ReviewerID     uuid.UUID         `json:"reviewer_id"`
	Type           entity.ReviewType `json:"type"`
	PropertyID     *uuid.UUID        `json:"property_id,omitempty"`
	ReviewedUserID *uuid.UUID        `json:"reviewed_user_id,omitempty"`

	Rating  int    `json:"rating"`
	Title   string `json:"title"`
	Comment string `json:"comment"`

	IsVerifiedStay bool   `json:"is_verified_stay"`
	IsFlagged      bool   `json:"is_flagged"`
	FlagReason     string `json:"flag_reason"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newReviewResponse(r *entity.Review) *ReviewResponse {
	if r == nil {
		return nil
	}

	return &ReviewResponse{
		ID:             r.ID,
		ReviewerID:     r.ReviewerID,
		Type:           r.Type,
		PropertyID:     r.PropertyID,
		ReviewedUserID: r.ReviewedUserID,
		Rating:         r.Rating,
		Title:          r.Title,
		Comment:        r.Comment,
		IsVerifiedStay: r.IsVerifiedStay,
		IsFlagged:      r.IsFlagged,
		FlagReason:     r.FlagReason,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func newReviewResponses(reviews []*entity.Review) []*ReviewResponse {
	out := make([]*ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, newReviewResponse(r))
	}

	return out
}

// MessageResponse is the serialized view of a direct message.
type MessageResponse struct {
	ID          uuid.UUID  `json:"id"`
	SenderID    uuid.UUID  `json:"sender_id"`
	RecipientID uuid.UUID  `json:"recipient_id"`
	PropertyID  *uuid.UUID `json:"property_id,omitempty"`

	Content    string `json:"content"`
	Attachment string `json:"attachment"`

	IsRead bool       `json:"is_read"`
	ReadAt *time.Time `json:"read_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func newMessageResponse(m *entity.Message) *MessageResponse {
	if m == nil {
		return nil
	}

	return &MessageResponse{
		ID:          m.ID,
		SenderID:    m.SenderID,
		RecipientID: m.RecipientID,
		PropertyID:  m.PropertyID,
		Content:     m.Content,
		Attachment:  m.Attachment,
		IsRead:      m.IsRead,
		ReadAt:      m.ReadAt,
		CreatedAt:   m.CreatedAt,
	}
}

func newMessageResponses(messages []*entity.Message) []*MessageResponse {
	out := make([]*MessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, newMessageResponse(m))
	}

	return out
}

// NotificationResponse is the serialized view of a notification record.
type NotificationResponse struct {
	ID        uuid.UUID               `json:"id"`
	AccountID uuid.UUID               `json:"account_id"`
	Type      entity.NotificationType `json:"type"`
	Title     string                  `json:"title"`
	Body      string                  `json:"body"`

	PropertyID   *uuid.UUID `json:"property_id,omitempty"`
	InspectionID *uuid.UUID `json:"inspection_id,omitempty"`
	DealID       *uuid.UUID `json:"deal_id,omitempty"`

	IsRead bool       `json:"is_read"`
	ReadAt *time.Time `json:"read_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func newNotificationResponse(n *entity.Notification) *NotificationResponse {
	if n == nil {
		return nil
	}

	return &NotificationResponse{
		ID:           n.ID,
		AccountID:    n.AccountID,
		Type:         n.Type,
		Title:        n.Title,
		Body:         n.Body,
		PropertyID:   n.PropertyID,
		InspectionID: n.InspectionID,
		DealID:       n.DealID,
		IsRead:       n.IsRead,
		ReadAt:       n.ReadAt,
		CreatedAt:    n.CreatedAt,
	}
}

func newNotificationResponses(notifications []*entity.Notification) []*NotificationResponse {
	out := make([]*NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, newNotificationResponse(n))
	}

	return out
}

// SavedPropertyResponse is the serialized view of a bookmark.
type SavedPropertyResponse struct {
	ID         uuid.UUID `json:"id"`
	AccountID  uuid.UUID `json:"account_id"`
	PropertyID uuid.UUID `json:"property_id"`
	CreatedAt  time.Time `json:"created_at"`
}

func newSavedPropertyResponse(s *entity.SavedProperty) *SavedPropertyResponse {
	if s == nil {
		return nil
	}

	return &SavedPropertyResponse{
		ID:         s.ID,
		AccountID:  s.AccountID,
		PropertyID: s.PropertyID,
		CreatedAt:  s.CreatedAt,
	}
}

func newSavedPropertyResponses(saved []*entity.SavedProperty) []*SavedPropertyResponse {
	out := make([]*SavedPropertyResponse, 0, len(saved))
	for _, s := range saved {
		out = append(out, newSavedPropertyResponse(s))
	}

	return out
}
