// internal/services/buyer_workflow_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boriwala/catalog-backend/internal/config"
	"github.com/boriwala/catalog-backend/internal/models"
)

func testConfig() *config.Config {
	cfg := &config.Config{Environment: "test"}
	cfg.JWT.TokenTTL = 168
	cfg.Admin.Email = "admin@boriwala.com"
	cfg.Admin.Password = "bootstrap-secret"
	return cfg
}

func signupBuyer(t *testing.T, auth *AuthService, email string) *models.User {
	t.Helper()

	err := auth.Signup(&SignupRequest{
		Name:        "Ravi Traders",
		Email:       email,
		Password:    "secret123",
		CompanyName: "Ravi Traders Pvt Ltd",
	})
	require.NoError(t, err)

	var user models.User
	require.NoError(t, auth.db.First(&user, "email = ?", email).Error)
	return &user
}

func TestSignupCreatesPendingBuyer(t *testing.T) {
	db := openTestDB(t)
	auth := NewAuthService(db, testConfig())

	user := signupBuyer(t, auth, "buyer@example.com")

	assert.Equal(t, models.RoleBuyer, user.Role)
	assert.True(t, user.IsActive)
	assert.False(t, user.IsApproved)
	assert.NotEqual(t, "secret123", user.PasswordHash)
	assert.NoError(t, user.CheckPassword("secret123"))

	pending, err := NewBuyerService(db).ListBuyers("pending")
	assert.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, user.ID, pending[0].ID)
}

func TestSignupNormalizesEmailAndRejectsDuplicates(t *testing.T) {
	db := openTestDB(t)
	auth := NewAuthService(db, testConfig())

	err := auth.Signup(&SignupRequest{
		Name:     "Ravi Traders",
		Email:    "  Buyer@Example.COM ",
		Password: "secret123",
	})
	require.NoError(t, err)

	var user models.User
	require.NoError(t, db.First(&user, "email = ?", "buyer@example.com").Error)

	err = auth.Signup(&SignupRequest{
		Name:     "Someone Else",
		Email:    "buyer@example.com",
		Password: "different1",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestBuyerLogin(t *testing.T) {
	db := openTestDB(t)
	auth := NewAuthService(db, testConfig())
	signupBuyer(t, auth, "buyer@example.com")

	resp, err := auth.BuyerLogin(&LoginRequest{Email: "buyer@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, models.RoleBuyer, resp.User.Role)
	assert.False(t, resp.User.IsApproved)

	_, err = auth.BuyerLogin(&LoginRequest{Email: "buyer@example.com", Password: "wrong-pass"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = auth.BuyerLogin(&LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestBuyerLoginRefusesDeactivatedAccount(t *testing.T) {
	db := openTestDB(t)
	auth := NewAuthService(db, testConfig())
	buyers := NewBuyerService(db)
	user := signupBuyer(t, auth, "buyer@example.com")

	inactive := false
	_, err := buyers.UpdateBuyer(user.ID, &BuyerUpdateRequest{IsActive: &inactive})
	require.NoError(t, err)

	_, err = auth.BuyerLogin(&LoginRequest{Email: "buyer@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrAccountDeactivated)

	active := true
	_, err = buyers.UpdateBuyer(user.ID, &BuyerUpdateRequest{IsActive: &active})
	require.NoError(t, err)

	_, err = auth.BuyerLogin(&LoginRequest{Email: "buyer@example.com", Password: "secret123"})
	assert.NoError(t, err)
}

// Approval and revocation must change the pricing-gate verdict on the next
// request without reissuing the token.
func TestApproveRevokeChangesPriceAccess(t *testing.T) {
	db := openTestDB(t)
	auth := NewAuthService(db, testConfig())
	buyers := NewBuyerService(db)
	user := signupBuyer(t, auth, "buyer@example.com")

	price := 120.0
	priced := &models.Product{ShowPrice: true, Price: &price}

	viewer := auth.ResolveViewer(user.ID.String(), string(models.RoleBuyer))
	assert.True(t, viewer.Authenticated)
	assert.False(t, viewer.Approved)
	assert.Equal(t, PricePendingApproval, ResolvePriceVisibility(priced, viewer))

	approved := true
	updated, err := buyers.UpdateBuyer(user.ID, &BuyerUpdateRequest{IsApproved: &approved})
	require.NoError(t, err)
	assert.Equal(t, user.ID, updated.ID)

	viewer = auth.ResolveViewer(user.ID.String(), string(models.RoleBuyer))
	assert.True(t, viewer.Approved)
	assert.Equal(t, PriceVisible, ResolvePriceVisibility(priced, viewer))

	revoked := false
	_, err = buyers.UpdateBuyer(user.ID, &BuyerUpdateRequest{IsApproved: &revoked})
	require.NoError(t, err)

	viewer = auth.ResolveViewer(user.ID.String(), string(models.RoleBuyer))
	assert.False(t, viewer.Approved)
	assert.Equal(t, PricePendingApproval, ResolvePriceVisibility(priced, viewer))
}

func TestDeactivationOverridesApproval(t *testing.T) {
	db := openTestDB(t)
	auth := NewAuthService(db, testConfig())
	buyers := NewBuyerService(db)
	user := signupBuyer(t, auth, "buyer@example.com")

	approved := true
	inactive := false
	_, err := buyers.UpdateBuyer(user.ID, &BuyerUpdateRequest{IsApproved: &approved, IsActive: &inactive})
	require.NoError(t, err)

	price := 85.5
	priced := &models.Product{ShowPrice: true, Price: &price}
	viewer := auth.ResolveViewer(user.ID.String(), string(models.RoleBuyer))
	assert.Equal(t, PricePendingApproval, ResolvePriceVisibility(priced, viewer))

	// Deactivation also invalidates outstanding sessions.
	_, err = auth.GetUser(user.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateBuyerRejectsEmptyAndUnknown(t *testing.T) {
	db := openTestDB(t)
	auth := NewAuthService(db, testConfig())
	buyers := NewBuyerService(db)
	user := signupBuyer(t, auth, "buyer@example.com")

	_, err := buyers.UpdateBuyer(user.ID, &BuyerUpdateRequest{})
	assert.True(t, IsInvalidInput(err))

	approved := true
	_, err = buyers.UpdateBuyer(uuid.New(), &BuyerUpdateRequest{IsApproved: &approved})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteBuyer(t *testing.T) {
	db := openTestDB(t)
	auth := NewAuthService(db, testConfig())
	buyers := NewBuyerService(db)
	user := signupBuyer(t, auth, "buyer@example.com")

	require.NoError(t, buyers.DeleteBuyer(user.ID))

	all, err := buyers.ListBuyers("all")
	assert.NoError(t, err)
	assert.Empty(t, all)

	assert.ErrorIs(t, buyers.DeleteBuyer(user.ID), ErrNotFound)

	_, err = auth.BuyerLogin(&LoginRequest{Email: "buyer@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAdminBootstrapLogin(t *testing.T) {
	db := openTestDB(t)
	auth := NewAuthService(db, testConfig())

	// First login with the configured email on an empty table creates the
	// admin account on the spot.
	resp, err := auth.AdminLogin(&LoginRequest{Email: "admin@boriwala.com", Password: "bootstrap-secret"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, resp.User.Role)

	_, err = auth.AdminLogin(&LoginRequest{Email: "admin@boriwala.com", Password: "wrong-pass"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Admin accounts never satisfy the buyer login.
	_, err = auth.BuyerLogin(&LoginRequest{Email: "admin@boriwala.com", Password: "bootstrap-secret"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// And buyers stay out of the admin side of the workflow.
	buyer := signupBuyer(t, auth, "buyer@example.com")
	approved := true
	_, err = NewBuyerService(db).UpdateBuyer(buyer.ID, &BuyerUpdateRequest{IsApproved: &approved})
	assert.NoError(t, err)

	listed, err := NewBuyerService(db).ListBuyers("all")
	assert.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, buyer.ID, listed[0].ID)
}

func TestAdminBootstrapRefusedOnPopulatedTable(t *testing.T) {
	db := openTestDB(t)
	auth := NewAuthService(db, testConfig())
	signupBuyer(t, auth, "buyer@example.com")

	_, err := auth.AdminLogin(&LoginRequest{Email: "admin@boriwala.com", Password: "bootstrap-secret"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
