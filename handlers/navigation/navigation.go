package navigation

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vaahanhq/vaahan-api/model"
	"github.com/vaahanhq/vaahan-api/utils/response"
	"github.com/vaahanhq/vaahan-api/utils/validation"
	"gorm.io/gorm"
)

// NavigationHandler handles site navigation requests
type NavigationHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewNavigationHandler creates a new navigation handler
func NewNavigationHandler(db *gorm.DB) *NavigationHandler {
	return &NavigationHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// CreateItemRequest represents the request body for creating a navigation item
type CreateItemRequest struct {
	Label      string `json:"label" validate:"required,min=1,max=100"`
	Href       string `json:"href" validate:"required,max=512"`
	Location   string `json:"location" validate:"omitempty,oneof=header footer"`
	SortOrder  int    `json:"sort_order" validate:"omitempty,gte=0"`
	IsExternal bool   `json:"is_external"`
}

// UpdateItemRequest represents the request body for updating a navigation item
type UpdateItemRequest struct {
	Label      string `json:"label" validate:"omitempty,min=1,max=100"`
	Href       string `json:"href" validate:"omitempty,max=512"`
	Location   string `json:"location" validate:"omitempty,oneof=header footer"`
	SortOrder  *int   `json:"sort_order" validate:"omitempty,gte=0"`
	IsExternal *bool  `json:"is_external" validate:"omitempty"`
	IsActive   *bool  `json:"is_active" validate:"omitempty"`
}

// ReorderRequest represents a bulk sort-order update
type ReorderRequest struct {
	Items []struct {
		ID        uint `json:"id" validate:"required"`
		SortOrder int  `json:"sort_order" validate:"gte=0"`
	} `json:"items" validate:"required,min=1,dive"`
}

// ListItems handles GET /api/v1/navigation — active links grouped by location
func (h *NavigationHandler) ListItems(c *fiber.Ctx) error {
	var items []model.NavigationItem
	if err := h.db.Where("is_active = ?", true).
		Order("location ASC, sort_order ASC, id ASC").
		Find(&items).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch navigation")
	}

	grouped := map[string][]model.NavigationItem{
		model.NavLocationHeader: {},
		model.NavLocationFooter: {},
	}
	for _, item := range items {
		grouped[item.Location] = append(grouped[item.Location], item)
	}

	return response.Success(c, grouped)
}

// ListAllItems handles GET /api/v1/admin/navigation — flat list, inactive included
func (h *NavigationHandler) ListAllItems(c *fiber.Ctx) error {
	var items []model.NavigationItem
	if err := h.db.Order("location ASC, sort_order ASC, id ASC").Find(&items).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch navigation")
	}

	return response.Success(c, items)
}

// CreateItem handles POST /api/v1/admin/navigation
func (h *NavigationHandler) CreateItem(c *fiber.Ctx) error {
	var req CreateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	location := req.Location
	if location == "" {
		location = model.NavLocationHeader
	}

	item := model.NavigationItem{
		Label:      validation.SanitizeString(req.Label),
		Href:       validation.SanitizeString(req.Href),
		Location:   location,
		SortOrder:  req.SortOrder,
		IsExternal: req.IsExternal,
		IsActive:   true,
	}

	if err := h.db.Create(&item).Error; err != nil {
		return response.InternalServerError(c, "Failed to create navigation item")
	}

	return response.Created(c, item)
}

// UpdateItem handles PUT /api/v1/admin/navigation/:id
func (h *NavigationHandler) UpdateItem(c *fiber.Ctx) error {
	id := c.Params("id")

	var req UpdateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	var item model.NavigationItem
	if err := h.db.First(&item, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Navigation item not found")
		}
		return response.InternalServerError(c, "Failed to fetch navigation item")
	}

	if req.Label != "" {
		item.Label = validation.SanitizeString(req.Label)
	}
	if req.Href != "" {
		item.Href = validation.SanitizeString(req.Href)
	}
	if req.Location != "" {
		item.Location = req.Location
	}
	if req.SortOrder != nil {
		item.SortOrder = *req.SortOrder
	}
	if req.IsExternal != nil {
		item.IsExternal = *req.IsExternal
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}

	if err := h.db.Save(&item).Error; err != nil {
		return response.InternalServerError(c, "Failed to update navigation item")
	}

	return response.SuccessWithMessage(c, "Navigation item updated successfully", item)
}

// DeleteItem handles DELETE /api/v1/admin/navigation/:id
func (h *NavigationHandler) DeleteItem(c *fiber.Ctx) error {
	id := c.Params("id")

	result := h.db.Delete(&model.NavigationItem{}, id)
	if result.Error != nil {
		return response.InternalServerError(c, "Failed to delete navigation item")
	}
	if result.RowsAffected == 0 {
		return response.NotFound(c, "Navigation item not found")
	}

	return response.SuccessWithMessage(c, "Navigation item deleted successfully", fiber.Map{"id": id})
}

// ReorderItems handles PUT /api/v1/admin/navigation/reorder
func (h *NavigationHandler) ReorderItems(c *fiber.Ctx) error {
	var req ReorderRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	for _, item := range req.Items {
		if err := h.db.Model(&model.NavigationItem{}).
			Where("id = ?", item.ID).
			Update("sort_order", item.SortOrder).Error; err != nil {
			return response.InternalServerError(c, "Failed to reorder navigation")
		}
	}

	return response.SuccessWithMessage(c, "Navigation reordered successfully", nil)
}
