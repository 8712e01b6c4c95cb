package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"inndoor/internal/delivery/http/response"
	"inndoor/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serializeView(t *testing.T, data any) string {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, response.Success(c, http.StatusOK, data, "ok"))

	return rec.Body.String()
}

func TestAccountResponse_OmitsCredentialHash(t *testing.T) {
	account := &entity.Account{
		ID:           uuid.New(),
		Username:     "margaret",
		Email:        "margaret@example.com",
		PasswordHash: "$2a$12$secret-bcrypt-hash",
		Profile: &entity.Profile{
			Role:               entity.RoleAgent,
			VerificationStatus: entity.VerificationPending,
		},
		CreatedAt: time.Now(),
	}

	body := serializeView(t, newAccountResponse(account))

	assert.NotContains(t, body, "$2a$12$")
	assert.NotContains(t, body, "PasswordHash")
	assert.NotContains(t, body, "password_hash")
	assert.Contains(t, body, `"username":"margaret"`)
	assert.Contains(t, body, `"role":"AGENT"`)
}

func TestAuthResponse_OmitsCredentialHash(t *testing.T) {
	account := &entity.Account{
		ID:           uuid.New(),
		Username:     "margaret",
		Email:        "margaret@example.com",
		PasswordHash: "$2a$12$secret-bcrypt-hash",
	}

	body := serializeView(t, &AuthResponse{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		Account:      newAccountResponse(account),
	})

	assert.NotContains(t, body, "$2a$12$")
	assert.Contains(t, body, `"access_token":"access-token"`)
	assert.Contains(t, body, `"refresh_token":"refresh-token"`)
	assert.Contains(t, body, `"email":"margaret@example.com"`)
}

func TestAccountResponse_NilProfileOmitted(t *testing.T) {
	account := &entity.Account{
		ID:       uuid.New(),
		Username: "margaret",
		Email:    "margaret@example.com",
	}

	body := serializeView(t, newAccountResponse(account))

	assert.NotContains(t, body, `"profile"`)
}

func TestPropertyResponse_FieldNames(t *testing.T) {
	lat, lng := 6.5095, 3.3711
	property := &entity.Property{
		ID:                   uuid.New(),
		OwnerID:              uuid.New(),
		Title:                "2 bedroom flat in Yaba",
		Type:                 entity.PropertyTypeFlat,
		Status:               entity.PropertyStatusActive,
		City:                 "Lagos",
		Latitude:             &lat,
		Longitude:            &lng,
		Price:                450000,
		CommissionPercentage: 10,
		ViewsCount:           7,
		Images: []*entity.PropertyImage{
			{ID: uuid.New(), URI: "s3://bucket/front.jpg", IsPrimary: true},
		},
	}

	body := serializeView(t, newPropertyResponse(property))

	assert.Contains(t, body, `"status":"ACTIVE"`)
	assert.Contains(t, body, `"views_count":7`)
	assert.Contains(t, body, `"commission_percentage":10`)
	assert.Contains(t, body, `"is_primary":true`)
	assert.NotContains(t, body, "OwnerID")
}

func TestDealResponse_OptionalFieldsOmitted(t *testing.T) {
	deal := &entity.Deal{
		ID:         uuid.New(),
		PropertyID: uuid.New(),
		TenantID:   uuid.New(),
		OwnerID:    uuid.New(),
		Status:     entity.DealStatusInitiated,
		RentAmount: 450000,
	}

	body := serializeView(t, newDealResponse(deal))

	assert.Contains(t, body, `"status":"INITIATED"`)
	assert.NotContains(t, body, `"agent_id"`)
	assert.NotContains(t, body, `"paid_at"`)
}
