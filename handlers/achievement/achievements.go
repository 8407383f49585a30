package achievement

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vaahanhq/vaahan-api/model"
	"github.com/vaahanhq/vaahan-api/utils/response"
	"github.com/vaahanhq/vaahan-api/utils/validation"
	"gorm.io/gorm"
)

// AchievementHandler handles achievement stat requests
type AchievementHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewAchievementHandler creates a new achievement handler
func NewAchievementHandler(db *gorm.DB) *AchievementHandler {
	return &AchievementHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// CreateAchievementRequest represents the request body for creating an achievement
type CreateAchievementRequest struct {
	Label     string `json:"label" validate:"required,min=2,max=255"`
	Value     string `json:"value" validate:"required,max=100"`
	Icon      string `json:"icon" validate:"omitempty,max=100"`
	SortOrder int    `json:"sort_order" validate:"omitempty,gte=0"`
}

// UpdateAchievementRequest represents the request body for updating an achievement
type UpdateAchievementRequest struct {
	Label     string `json:"label" validate:"omitempty,min=2,max=255"`
	Value     string `json:"value" validate:"omitempty,max=100"`
	Icon      string `json:"icon" validate:"omitempty,max=100"`
	SortOrder *int   `json:"sort_order" validate:"omitempty,gte=0"`
}

// ReorderRequest represents a bulk sort-order update
type ReorderRequest struct {
	Items []struct {
		ID        uint `json:"id" validate:"required"`
		SortOrder int  `json:"sort_order" validate:"gte=0"`
	} `json:"items" validate:"required,min=1,dive"`
}

// ListAchievements handles GET /api/v1/achievements
func (h *AchievementHandler) ListAchievements(c *fiber.Ctx) error {
	var achievements []model.Achievement
	if err := h.db.Order("sort_order ASC, id ASC").Find(&achievements).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch achievements")
	}

	return response.Success(c, achievements)
}

// CreateAchievement handles POST /api/v1/admin/achievements
func (h *AchievementHandler) CreateAchievement(c *fiber.Ctx) error {
	var req CreateAchievementRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	achievement := model.Achievement{
		Label:     validation.SanitizeString(req.Label),
		Value:     validation.SanitizeString(req.Value),
		Icon:      req.Icon,
		SortOrder: req.SortOrder,
	}

	if err := h.db.Create(&achievement).Error; err != nil {
		return response.InternalServerError(c, "Failed to create achievement")
	}

	return response.Created(c, achievement)
}

// UpdateAchievement handles PUT /api/v1/admin/achievements/:id
func (h *AchievementHandler) UpdateAchievement(c *fiber.Ctx) error {
	id := c.Params("id")

	var req UpdateAchievementRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	var achievement model.Achievement
	if err := h.db.First(&achievement, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Achievement not found")
		}
		return response.InternalServerError(c, "Failed to fetch achievement")
	}

	if req.Label != "" {
		achievement.Label = validation.SanitizeString(req.Label)
	}
	if req.Value != "" {
		achievement.Value = validation.SanitizeString(req.Value)
	}
	if req.Icon != "" {
		achievement.Icon = req.Icon
	}
	if req.SortOrder != nil {
		achievement.SortOrder = *req.SortOrder
	}

	if err := h.db.Save(&achievement).Error; err != nil {
		return response.InternalServerError(c, "Failed to update achievement")
	}

	return response.SuccessWithMessage(c, "Achievement updated successfully", achievement)
}

// DeleteAchievement handles DELETE /api/v1/admin/achievements/:id
func (h *AchievementHandler) DeleteAchievement(c *fiber.Ctx) error {
	id := c.Params("id")

	result := h.db.Delete(&model.Achievement{}, id)
	if result.Error != nil {
		return response.InternalServerError(c, "Failed to delete achievement")
	}
	if result.RowsAffected == 0 {
		return response.NotFound(c, "Achievement not found")
	}

	return response.SuccessWithMessage(c, "Achievement deleted successfully", fiber.Map{"id": id})
}

// ReorderAchievements handles PUT /api/v1/admin/achievements/reorder
func (h *AchievementHandler) ReorderAchievements(c *fiber.Ctx) error {
	var req ReorderRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	for _, item := range req.Items {
		if err := h.db.Model(&model.Achievement{}).
			Where("id = ?", item.ID).
			Update("sort_order", item.SortOrder).Error; err != nil {
			return response.InternalServerError(c, "Failed to reorder achievements")
		}
	}

	return response.SuccessWithMessage(c, "Achievements reordered successfully", nil)
}
