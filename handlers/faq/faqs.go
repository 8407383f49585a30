package faq

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vaahanhq/vaahan-api/model"
	"github.com/vaahanhq/vaahan-api/utils/response"
	"github.com/vaahanhq/vaahan-api/utils/validation"
	"gorm.io/gorm"
)

// FAQHandler handles FAQ requests
type FAQHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewFAQHandler creates a new FAQ handler
func NewFAQHandler(db *gorm.DB) *FAQHandler {
	return &FAQHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// CreateFAQRequest represents the request body for creating a FAQ
type CreateFAQRequest struct {
	Question  string `json:"question" validate:"required,min=5"`
	Answer    string `json:"answer" validate:"required"`
	Category  string `json:"category" validate:"omitempty,max=100"`
	SortOrder int    `json:"sort_order" validate:"omitempty,gte=0"`
}

// UpdateFAQRequest represents the request body for updating a FAQ
type UpdateFAQRequest struct {
	Question    string `json:"question" validate:"omitempty,min=5"`
	Answer      string `json:"answer" validate:"omitempty"`
	Category    string `json:"category" validate:"omitempty,max=100"`
	SortOrder   *int   `json:"sort_order" validate:"omitempty,gte=0"`
	IsPublished *bool  `json:"is_published" validate:"omitempty"`
}

// ReorderRequest represents a bulk sort-order update
type ReorderRequest struct {
	Items []struct {
		ID        uint `json:"id" validate:"required"`
		SortOrder int  `json:"sort_order" validate:"gte=0"`
	} `json:"items" validate:"required,min=1,dive"`
}

// ListFAQs handles GET /api/v1/faqs — published entries grouped by category
func (h *FAQHandler) ListFAQs(c *fiber.Ctx) error {
	var faqs []model.FAQ
	if err := h.db.Where("is_published = ?", true).
		Order("category ASC, sort_order ASC, id ASC").
		Find(&faqs).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch FAQs")
	}

	grouped := map[string][]model.FAQ{}
	for _, f := range faqs {
		category := f.Category
		if category == "" {
			category = "general"
		}
		grouped[category] = append(grouped[category], f)
	}

	return response.Success(c, grouped)
}

// ListAllFAQs handles GET /api/v1/admin/faqs — flat list, drafts included
func (h *FAQHandler) ListAllFAQs(c *fiber.Ctx) error {
	var faqs []model.FAQ
	if err := h.db.Order("category ASC, sort_order ASC, id ASC").Find(&faqs).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch FAQs")
	}

	return response.Success(c, faqs)
}

// CreateFAQ handles POST /api/v1/admin/faqs
func (h *FAQHandler) CreateFAQ(c *fiber.Ctx) error {
	var req CreateFAQRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	faq := model.FAQ{
		Question:    validation.SanitizeString(req.Question),
		Answer:      req.Answer,
		Category:    validation.SanitizeString(req.Category),
		SortOrder:   req.SortOrder,
		IsPublished: true,
	}

	if err := h.db.Create(&faq).Error; err != nil {
		return response.InternalServerError(c, "Failed to create FAQ")
	}

	return response.Created(c, faq)
}

// UpdateFAQ handles PUT /api/v1/admin/faqs/:id
func (h *FAQHandler) UpdateFAQ(c *fiber.Ctx) error {
	id := c.Params("id")

	var req UpdateFAQRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	var faq model.FAQ
	if err := h.db.First(&faq, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "FAQ not found")
		}
		return response.InternalServerError(c, "Failed to fetch FAQ")
	}

	if req.Question != "" {
		faq.Question = validation.SanitizeString(req.Question)
	}
	if req.Answer != "" {
		faq.Answer = req.Answer
	}
	if req.Category != "" {
		faq.Category = validation.SanitizeString(req.Category)
	}
	if req.SortOrder != nil {
		faq.SortOrder = *req.SortOrder
	}
	if req.IsPublished != nil {
		faq.IsPublished = *req.IsPublished
	}

	if err := h.db.Save(&faq).Error; err != nil {
		return response.InternalServerError(c, "Failed to update FAQ")
	}

	return response.SuccessWithMessage(c, "FAQ updated successfully", faq)
}

// DeleteFAQ handles DELETE /api/v1/admin/faqs/:id
func (h *FAQHandler) DeleteFAQ(c *fiber.Ctx) error {
	id := c.Params("id")

	result := h.db.Delete(&model.FAQ{}, id)
	if result.Error != nil {
		return response.InternalServerError(c, "Failed to delete FAQ")
	}
	if result.RowsAffected == 0 {
		return response.NotFound(c, "FAQ not found")
	}

	return response.SuccessWithMessage(c, "FAQ deleted successfully", fiber.Map{"id": id})
}

// ReorderFAQs handles PUT /api/v1/admin/faqs/reorder
func (h *FAQHandler) ReorderFAQs(c *fiber.Ctx) error {
	var req ReorderRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	for _, item := range req.Items {
		if err := h.db.Model(&model.FAQ{}).
			Where("id = ?", item.ID).
			Update("sort_order", item.SortOrder).Error; err != nil {
			return response.InternalServerError(c, "Failed to reorder FAQs")
		}
	}

	return response.SuccessWithMessage(c, "FAQs reordered successfully", nil)
}
