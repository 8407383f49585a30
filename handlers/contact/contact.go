package contact

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/vaahanhq/vaahan-api/model"
	"github.com/vaahanhq/vaahan-api/utils/response"
	"github.com/vaahanhq/vaahan-api/utils/validation"
	"gorm.io/gorm"
)

const relayTimeout = 5 * time.Second

// ContactHandler persists contact form submissions and forwards them to the
// configured relay endpoint. Relay failures never fail the user-facing
// request — the submission is already saved.
type ContactHandler struct {
	db        *gorm.DB
	validator *validation.Validator
	relayURL  string
	client    *http.Client
}

// NewContactHandler creates a new contact handler. relayURL may be empty,
// in which case submissions are only stored.
func NewContactHandler(db *gorm.DB, relayURL string) *ContactHandler {
	return &ContactHandler{
		db:        db,
		validator: validation.NewValidator(),
		relayURL:  relayURL,
		client:    &http.Client{Timeout: relayTimeout},
	}
}

// SubmitRequest represents a contact form submission
type SubmitRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=255"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Phone   string `json:"phone" validate:"omitempty,max=50"`
	Message string `json:"message" validate:"required,min=10"`
}

// Submit handles POST /api/v1/contact
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var req SubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	submission := model.ContactSubmission{
		Reference: uuid.NewString(),
		Name:      validation.SanitizeString(req.Name),
		Email:     validation.SanitizeString(req.Email),
		Phone:     validation.SanitizeString(req.Phone),
		Message:   req.Message,
	}

	if err := h.db.Create(&submission).Error; err != nil {
		return response.InternalServerError(c, "Failed to save submission")
	}

	if h.relay(&submission) {
		now := time.Now()
		submission.RelayedAt = &now
		if err := h.db.Model(&submission).Update("relayed_at", now).Error; err != nil {
			log.Println("contact: failed to mark submission relayed:", err)
		}
	}

	return response.Created(c, fiber.Map{"reference": submission.Reference})
}

// ListSubmissions handles GET /api/v1/admin/contact
func (h *ContactHandler) ListSubmissions(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))

	var total int64
	if err := h.db.Model(&model.ContactSubmission{}).Count(&total).Error; err != nil {
		return response.InternalServerError(c, "Failed to count submissions")
	}

	offset := (page - 1) * limit
	pagination := response.CalculatePagination(page, limit, total)

	var submissions []model.ContactSubmission
	if err := h.db.Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&submissions).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch submissions")
	}

	return response.Paginated(c, submissions, pagination)
}

// relay forwards the submission to the configured endpoint. Best-effort:
// errors are logged and swallowed.
func (h *ContactHandler) relay(submission *model.ContactSubmission) bool {
	if h.relayURL == "" {
		return false
	}

	payload, err := json.Marshal(fiber.Map{
		"reference": submission.Reference,
		"name":      submission.Name,
		"email":     submission.Email,
		"phone":     submission.Phone,
		"message":   submission.Message,
	})
	if err != nil {
		log.Println("contact: failed to encode relay payload:", err)
		return false
	}

	resp, err := h.client.Post(h.relayURL, "application/json", bytes.NewReader(payload))
	if err != nil {
		log.Println("contact: relay request failed:", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		log.Println("contact: relay returned status", resp.StatusCode)
		return false
	}

	return true
}
