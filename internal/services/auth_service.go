// internal/services/auth_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/boriwala/catalog-backend/internal/config"
	"github.com/boriwala/catalog-backend/internal/models"
	"github.com/boriwala/catalog-backend/internal/utils"
)

var (
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrAccountDeactivated = errors.New("Your account has been deactivated. Please contact support.")
	ErrEmailTaken         = errors.New("An account with this email already exists")
)

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

type SignupRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	Phone       string `json:"phone"`
	CompanyName string `json:"companyName"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  *UserSummary `json:"user"`
}

// UserSummary is the authenticated-user payload; it never carries the hash.
type UserSummary struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone,omitempty"`
	Role        models.UserRole `json:"role"`
	IsApproved  bool            `json:"isApproved"`
	CompanyName string          `json:"companyName"`
}

func summarize(u *models.User) *UserSummary {
	return &UserSummary{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Phone:       u.Phone,
		Role:        u.Role,
		IsApproved:  u.IsApproved,
		CompanyName: u.CompanyName,
	}
}

// Signup registers a buyer account in the pending state. Approval is an
// admin action; the new account can log in immediately but sees no prices.
func (s *AuthService) Signup(req *SignupRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return err
	}

	user := &models.User{
		Name:        strings.TrimSpace(req.Name),
		Email:       normalizeEmail(req.Email),
		Phone:       strings.TrimSpace(req.Phone),
		CompanyName: strings.TrimSpace(req.CompanyName),
		Role:        models.RoleBuyer,
		IsActive:    true,
		IsApproved:  false,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	// The unique index on email is the arbiter. A pre-check count would race
	// with concurrent signups, so the insert itself decides.
	if err := s.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrEmailTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// BuyerLogin authenticates a buyer account. Unknown email and wrong password
// return the same opaque error; deactivated accounts are refused outright.
// Pending approval does not block login.
func (s *AuthService) BuyerLogin(req *LoginRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	var user models.User
	err := s.db.Where("email = ? AND role = ?", normalizeEmail(req.Email), models.RoleBuyer).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if !user.IsActive {
		return nil, ErrAccountDeactivated
	}

	if err := user.CheckPassword(req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueToken(&user)
}

// AdminLogin authenticates admin/editor accounts. When the users table is
// empty and the configured bootstrap email is used, the admin account is
// created on the spot.
func (s *AuthService) AdminLogin(req *LoginRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	email := normalizeEmail(req.Email)

	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		bootstrapped, bootErr := s.bootstrapAdmin(email)
		if bootErr != nil {
			return nil, bootErr
		}
		if bootstrapped == nil {
			return nil, ErrInvalidCredentials
		}
		user = *bootstrapped
	} else if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}

	if user.Role == models.RoleBuyer {
		return nil, ErrInvalidCredentials
	}

	if err := user.CheckPassword(req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueToken(&user)
}

func (s *AuthService) bootstrapAdmin(email string) (*models.User, error) {
	if email != normalizeEmail(s.cfg.Admin.Email) {
		return nil, nil
	}

	var total int64
	if err := s.db.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	if total > 0 {
		return nil, nil
	}

	admin := &models.User{
		Name:       "Admin",
		Email:      email,
		Role:       models.RoleAdmin,
		IsActive:   true,
		IsApproved: true,
	}
	if err := admin.SetPassword(s.cfg.Admin.Password); err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.db.Create(admin).Error; err != nil {
		return nil, fmt.Errorf("failed to create admin user: %w", err)
	}
	return admin, nil
}

func (s *AuthService) issueToken(user *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateJWT(user.ID, user.Email, string(user.Role), s.cfg.JWT.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &AuthResponse{Token: token, User: summarize(user)}, nil
}

// GetUser returns the account behind a token subject, refusing inactive
// accounts so a deactivation invalidates outstanding sessions.
func (s *AuthService) GetUser(userID uuid.UUID) (*UserSummary, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	if !user.IsActive {
		return nil, ErrNotFound
	}
	return summarize(&user), nil
}

// ResolveViewer builds the pricing-gate principal for a request. The approval
// and active flags come from the store, not the token, so admin actions take
// effect on the next request.
func (s *AuthService) ResolveViewer(userID string, role string) Viewer {
	if userID == "" {
		return Viewer{}
	}

	viewer := Viewer{Authenticated: true, Role: models.UserRole(role)}
	if viewer.Role != models.RoleBuyer {
		return viewer
	}

	id, err := uuid.Parse(userID)
	if err != nil {
		return Viewer{}
	}

	var user models.User
	if err := s.db.Select("is_approved", "is_active").First(&user, "id = ?", id).Error; err != nil {
		return Viewer{}
	}

	viewer.Approved = user.IsApproved
	viewer.Active = user.IsActive
	return viewer
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
