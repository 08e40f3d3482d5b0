// internal/services/enquiry_service.go
package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/boriwala/catalog-backend/internal/models"
	"github.com/boriwala/catalog-backend/internal/utils"
)

type EnquiryService struct {
	db     *gorm.DB
	mailer *Mailer
}

func NewEnquiryService(db *gorm.DB, mailer *Mailer) *EnquiryService {
	return &EnquiryService{db: db, mailer: mailer}
}

type CreateEnquiryRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Phone       string `json:"phone" validate:"required,min=7,max=30"`
	Email       string `json:"email" validate:"required,email"`
	CompanyName string `json:"companyName"`
	ProductName string `json:"productName"`
	ProductID   string `json:"productId"`
	Quantity    string `json:"quantity"`
	Message     string `json:"message" validate:"required,min=5"`
}

type UpdateEnquiryRequest struct {
	IsResponded *bool   `json:"isResponded"`
	Notes       *string `json:"notes"`
}

type EnquiryQuery struct {
	utils.PaginationParams
	Responded *bool
	Search    string
	From      *time.Time
	To        *time.Time
}

type CreateSellerEnquiryRequest struct {
	Name                string   `json:"name" validate:"required,min=2,max=100"`
	Phone               string   `json:"phone" validate:"required,min=7,max=30"`
	Email               string   `json:"email" validate:"omitempty,email"`
	CompanyName         string   `json:"companyName"`
	City                string   `json:"city" validate:"required,min=2,max=100"`
	MaterialType        string   `json:"materialType" validate:"required,min=2,max=150"`
	MaterialDescription string   `json:"materialDescription"`
	Quantity            string   `json:"quantity" validate:"required"`
	VideoLinks          []string `json:"videoLinks"`
	Photos              []string `json:"photos"`
}

type UpdateSellerEnquiryRequest struct {
	Status     *models.SellerEnquiryStatus `json:"status" validate:"omitempty,oneof=new contacted negotiating closed rejected"`
	AdminNotes *string                     `json:"adminNotes"`
}

// CreateEnquiry stores the intake record and notifies the company inbox in
// the background. The email is best effort and never blocks the response.
func (s *EnquiryService) CreateEnquiry(req *CreateEnquiryRequest) (*models.Enquiry, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	enquiry := &models.Enquiry{
		Name:        strings.TrimSpace(req.Name),
		Phone:       strings.TrimSpace(req.Phone),
		Email:       normalizeEmail(req.Email),
		CompanyName: strings.TrimSpace(req.CompanyName),
		ProductName: strings.TrimSpace(req.ProductName),
		Quantity:    strings.TrimSpace(req.Quantity),
		Message:     strings.TrimSpace(req.Message),
	}
	if req.ProductID != "" {
		if id, err := uuid.Parse(req.ProductID); err == nil {
			enquiry.ProductID = &id
		}
	}

	if err := s.db.Create(enquiry).Error; err != nil {
		return nil, fmt.Errorf("failed to create enquiry: %w", err)
	}

	go s.mailer.NotifyEnquiry(enquiry)

	return enquiry, nil
}

// ListEnquiries pages through enquiries, newest first, with responded/search
// and created-at range filters.
func (s *EnquiryService) ListEnquiries(q *EnquiryQuery) ([]models.Enquiry, int64, error) {
	query := s.db.Model(&models.Enquiry{})

	if q.Responded != nil {
		query = query.Where("is_responded = ?", *q.Responded)
	}
	if q.Search != "" {
		like := "%" + q.Search + "%"
		query = query.Where(
			s.db.Where("name ILIKE ?", like).
				Or("email ILIKE ?", like).
				Or("phone ILIKE ?", like).
				Or("product_name ILIKE ?", like).
				Or("company_name ILIKE ?", like),
		)
	}
	if q.From != nil {
		query = query.Where("created_at >= ?", *q.From)
	}
	if q.To != nil {
		query = query.Where("created_at <= ?", *q.To)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count enquiries: %w", err)
	}

	var enquiries []models.Enquiry
	err := utils.ApplyPagination(query.Order("created_at DESC"), q.PaginationParams).
		Find(&enquiries).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch enquiries: %w", err)
	}

	return enquiries, total, nil
}

func (s *EnquiryService) GetEnquiry(id uuid.UUID) (*models.Enquiry, error) {
	var enquiry models.Enquiry
	if err := s.db.First(&enquiry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &enquiry, nil
}

// UpdateEnquiry flips the responded flag and edits internal notes. Marking
// responded stamps respondedAt once; clearing the flag clears the stamp.
func (s *EnquiryService) UpdateEnquiry(id uuid.UUID, req *UpdateEnquiryRequest) (*models.Enquiry, error) {
	enquiry, err := s.GetEnquiry(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.IsResponded != nil {
		updates["is_responded"] = *req.IsResponded
		if *req.IsResponded {
			if enquiry.RespondedAt == nil {
				now := time.Now()
				updates["responded_at"] = &now
			}
		} else {
			updates["responded_at"] = nil
		}
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if len(updates) == 0 {
		return enquiry, nil
	}

	if err := s.db.Model(enquiry).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update enquiry: %w", err)
	}
	return enquiry, nil
}

func (s *EnquiryService) DeleteEnquiry(id uuid.UUID) error {
	result := s.db.Delete(&models.Enquiry{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete enquiry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ExportCSV renders every enquiry matching the filters (ignoring pagination)
// as a CSV document for spreadsheet handoff.
func (s *EnquiryService) ExportCSV(q *EnquiryQuery) (string, error) {
	full := *q
	full.Page = 1
	full.Limit = utils.MaxLimit * 100 // effectively unbounded

	enquiries, _, err := s.ListEnquiries(&full)
	if err != nil {
		return "", err
	}

	header := []string{
		"Date", "Name", "Phone", "Email", "Company", "Product",
		"Quantity", "Message", "Responded", "Notes",
	}

	var b strings.Builder
	writeCSVRow(&b, header)
	for _, e := range enquiries {
		responded := "No"
		if e.IsResponded {
			responded = "Yes"
		}
		writeCSVRow(&b, []string{
			e.CreatedAt.Format("2006-01-02 15:04"),
			e.Name, e.Phone, e.Email, e.CompanyName, e.ProductName,
			e.Quantity, e.Message, responded, e.Notes,
		})
	}
	return b.String(), nil
}

// writeCSVRow quotes every field and doubles embedded quotes.
func writeCSVRow(b *strings.Builder, fields []string) {
	for i, field := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(field, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}

// CreateSellerEnquiry stores a sell-to-us lead in the new state.
func (s *EnquiryService) CreateSellerEnquiry(req *CreateSellerEnquiryRequest) (*models.SellerEnquiry, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	enquiry := &models.SellerEnquiry{
		Name:                strings.TrimSpace(req.Name),
		Phone:               strings.TrimSpace(req.Phone),
		Email:               normalizeEmail(req.Email),
		CompanyName:         strings.TrimSpace(req.CompanyName),
		City:                strings.TrimSpace(req.City),
		MaterialType:        strings.TrimSpace(req.MaterialType),
		MaterialDescription: strings.TrimSpace(req.MaterialDescription),
		Quantity:            strings.TrimSpace(req.Quantity),
		VideoLinks:          pqArray(req.VideoLinks),
		Photos:              pqArray(req.Photos),
		Status:              models.SellerEnquiryNew,
	}

	if err := s.db.Create(enquiry).Error; err != nil {
		return nil, fmt.Errorf("failed to create seller enquiry: %w", err)
	}

	go s.mailer.NotifySellerEnquiry(enquiry)

	return enquiry, nil
}

// ListSellerEnquiries pages through leads, newest first, optionally narrowed
// to one pipeline status.
func (s *EnquiryService) ListSellerEnquiries(status string, p utils.PaginationParams) ([]models.SellerEnquiry, int64, error) {
	query := s.db.Model(&models.SellerEnquiry{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count seller enquiries: %w", err)
	}

	var enquiries []models.SellerEnquiry
	err := utils.ApplyPagination(query.Order("created_at DESC"), p).
		Find(&enquiries).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch seller enquiries: %w", err)
	}

	return enquiries, total, nil
}

func (s *EnquiryService) GetSellerEnquiry(id uuid.UUID) (*models.SellerEnquiry, error) {
	var enquiry models.SellerEnquiry
	if err := s.db.First(&enquiry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &enquiry, nil
}

func (s *EnquiryService) UpdateSellerEnquiry(id uuid.UUID, req *UpdateSellerEnquiryRequest) (*models.SellerEnquiry, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	enquiry, err := s.GetSellerEnquiry(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.AdminNotes != nil {
		updates["admin_notes"] = *req.AdminNotes
	}
	if len(updates) == 0 {
		return enquiry, nil
	}

	if err := s.db.Model(enquiry).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update seller enquiry: %w", err)
	}
	return enquiry, nil
}

func (s *EnquiryService) DeleteSellerEnquiry(id uuid.UUID) error {
	result := s.db.Delete(&models.SellerEnquiry{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete seller enquiry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
