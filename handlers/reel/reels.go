package reel

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vaahanhq/vaahan-api/model"
	"github.com/vaahanhq/vaahan-api/utils/response"
	"github.com/vaahanhq/vaahan-api/utils/validation"
	"gorm.io/gorm"
)

// ReelHandler handles Instagram reel requests
type ReelHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewReelHandler creates a new reel handler
func NewReelHandler(db *gorm.DB) *ReelHandler {
	return &ReelHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// CreateReelRequest represents the request body for creating a reel
type CreateReelRequest struct {
	URL          string `json:"url" validate:"required,url,max=512"`
	Caption      string `json:"caption" validate:"omitempty"`
	ThumbnailURL string `json:"thumbnail_url" validate:"omitempty,url,max=512"`
	SortOrder    int    `json:"sort_order" validate:"omitempty,gte=0"`
}

// UpdateReelRequest represents the request body for updating a reel
type UpdateReelRequest struct {
	URL          string `json:"url" validate:"omitempty,url,max=512"`
	Caption      string `json:"caption" validate:"omitempty"`
	ThumbnailURL string `json:"thumbnail_url" validate:"omitempty,url,max=512"`
	SortOrder    *int   `json:"sort_order" validate:"omitempty,gte=0"`
	IsPublished  *bool  `json:"is_published" validate:"omitempty"`
}

// ReorderRequest represents a bulk sort-order update
type ReorderRequest struct {
	Items []struct {
		ID        uint `json:"id" validate:"required"`
		SortOrder int  `json:"sort_order" validate:"gte=0"`
	} `json:"items" validate:"required,min=1,dive"`
}

// ListReels handles GET /api/v1/reels — published reels in display order
func (h *ReelHandler) ListReels(c *fiber.Ctx) error {
	var reels []model.Reel
	if err := h.db.Where("is_published = ?", true).
		Order("sort_order ASC, id ASC").
		Find(&reels).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch reels")
	}

	return response.Success(c, reels)
}

// ListAllReels handles GET /api/v1/admin/reels
func (h *ReelHandler) ListAllReels(c *fiber.Ctx) error {
	var reels []model.Reel
	if err := h.db.Order("sort_order ASC, id ASC").Find(&reels).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch reels")
	}

	return response.Success(c, reels)
}

// CreateReel handles POST /api/v1/admin/reels
func (h *ReelHandler) CreateReel(c *fiber.Ctx) error {
	var req CreateReelRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	reel := model.Reel{
		URL:          req.URL,
		Caption:      req.Caption,
		ThumbnailURL: req.ThumbnailURL,
		SortOrder:    req.SortOrder,
		IsPublished:  true,
	}

	if err := h.db.Create(&reel).Error; err != nil {
		return response.InternalServerError(c, "Failed to create reel")
	}

	return response.Created(c, reel)
}

// UpdateReel handles PUT /api/v1/admin/reels/:id
func (h *ReelHandler) UpdateReel(c *fiber.Ctx) error {
	id := c.Params("id")

	var req UpdateReelRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	var reel model.Reel
	if err := h.db.First(&reel, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Reel not found")
		}
		return response.InternalServerError(c, "Failed to fetch reel")
	}

	if req.URL != "" {
		reel.URL = req.URL
	}
	if req.Caption != "" {
		reel.Caption = req.Caption
	}
	if req.ThumbnailURL != "" {
		reel.ThumbnailURL = req.ThumbnailURL
	}
	if req.SortOrder != nil {
		reel.SortOrder = *req.SortOrder
	}
	if req.IsPublished != nil {
		reel.IsPublished = *req.IsPublished
	}

	if err := h.db.Save(&reel).Error; err != nil {
		return response.InternalServerError(c, "Failed to update reel")
	}

	return response.SuccessWithMessage(c, "Reel updated successfully", reel)
}

// DeleteReel handles DELETE /api/v1/admin/reels/:id
func (h *ReelHandler) DeleteReel(c *fiber.Ctx) error {
	id := c.Params("id")

	result := h.db.Delete(&model.Reel{}, id)
	if result.Error != nil {
		return response.InternalServerError(c, "Failed to delete reel")
	}
	if result.RowsAffected == 0 {
		return response.NotFound(c, "Reel not found")
	}

	return response.SuccessWithMessage(c, "Reel deleted successfully", fiber.Map{"id": id})
}

// ReorderReels handles PUT /api/v1/admin/reels/reorder
func (h *ReelHandler) ReorderReels(c *fiber.Ctx) error {
	var req ReorderRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	for _, item := range req.Items {
		if err := h.db.Model(&model.Reel{}).
			Where("id = ?", item.ID).
			Update("sort_order", item.SortOrder).Error; err != nil {
			return response.InternalServerError(c, "Failed to reorder reels")
		}
	}

	return response.SuccessWithMessage(c, "Reels reordered successfully", nil)
}
