package team

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/vaahanhq/vaahan-api/model"
	"github.com/vaahanhq/vaahan-api/utils/response"
	"github.com/vaahanhq/vaahan-api/utils/validation"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TeamHandler handles team member requests
type TeamHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(db *gorm.DB) *TeamHandler {
	return &TeamHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// CreateMemberRequest represents the request body for creating a team member
type CreateMemberRequest struct {
	Name      string            `json:"name" validate:"required,min=2,max=255"`
	Role      string            `json:"role" validate:"omitempty,max=255"`
	Bio       string            `json:"bio" validate:"omitempty"`
	PhotoURL  string            `json:"photo_url" validate:"omitempty,url,max=512"`
	Socials   map[string]string `json:"socials" validate:"omitempty"`
	SortOrder int               `json:"sort_order" validate:"omitempty,gte=0"`
}

// UpdateMemberRequest represents the request body for updating a team member
type UpdateMemberRequest struct {
	Name      string            `json:"name" validate:"omitempty,min=2,max=255"`
	Role      string            `json:"role" validate:"omitempty,max=255"`
	Bio       string            `json:"bio" validate:"omitempty"`
	PhotoURL  string            `json:"photo_url" validate:"omitempty,url,max=512"`
	Socials   map[string]string `json:"socials" validate:"omitempty"`
	SortOrder *int              `json:"sort_order" validate:"omitempty,gte=0"`
	IsActive  *bool             `json:"is_active" validate:"omitempty"`
}

// ReorderRequest represents a bulk sort-order update
type ReorderRequest struct {
	Items []struct {
		ID        uint `json:"id" validate:"required"`
		SortOrder int  `json:"sort_order" validate:"gte=0"`
	} `json:"items" validate:"required,min=1,dive"`
}

// ListMembers handles GET /api/v1/team — active members in display order
func (h *TeamHandler) ListMembers(c *fiber.Ctx) error {
	var members []model.TeamMember
	if err := h.db.Where("is_active = ?", true).
		Order("sort_order ASC, id ASC").
		Find(&members).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch team members")
	}

	return response.Success(c, members)
}

// ListAllMembers handles GET /api/v1/admin/team — includes inactive members
func (h *TeamHandler) ListAllMembers(c *fiber.Ctx) error {
	var members []model.TeamMember
	if err := h.db.Order("sort_order ASC, id ASC").Find(&members).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch team members")
	}

	return response.Success(c, members)
}

// CreateMember handles POST /api/v1/admin/team
func (h *TeamHandler) CreateMember(c *fiber.Ctx) error {
	var req CreateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	member := model.TeamMember{
		Name:      validation.SanitizeString(req.Name),
		Role:      validation.SanitizeString(req.Role),
		Bio:       req.Bio,
		PhotoURL:  req.PhotoURL,
		Socials:   marshalSocials(req.Socials),
		SortOrder: req.SortOrder,
		IsActive:  true,
	}

	if err := h.db.Create(&member).Error; err != nil {
		return response.InternalServerError(c, "Failed to create team member")
	}

	return response.Created(c, member)
}

// UpdateMember handles PUT /api/v1/admin/team/:id
func (h *TeamHandler) UpdateMember(c *fiber.Ctx) error {
	id := c.Params("id")

	var req UpdateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	var member model.TeamMember
	if err := h.db.First(&member, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Team member not found")
		}
		return response.InternalServerError(c, "Failed to fetch team member")
	}

	if req.Name != "" {
		member.Name = validation.SanitizeString(req.Name)
	}
	if req.Role != "" {
		member.Role = validation.SanitizeString(req.Role)
	}
	if req.Bio != "" {
		member.Bio = req.Bio
	}
	if req.PhotoURL != "" {
		member.PhotoURL = req.PhotoURL
	}
	if req.Socials != nil {
		member.Socials = marshalSocials(req.Socials)
	}
	if req.SortOrder != nil {
		member.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		member.IsActive = *req.IsActive
	}

	if err := h.db.Save(&member).Error; err != nil {
		return response.InternalServerError(c, "Failed to update team member")
	}

	return response.SuccessWithMessage(c, "Team member updated successfully", member)
}

// DeleteMember handles DELETE /api/v1/admin/team/:id
func (h *TeamHandler) DeleteMember(c *fiber.Ctx) error {
	id := c.Params("id")

	result := h.db.Delete(&model.TeamMember{}, id)
	if result.Error != nil {
		return response.InternalServerError(c, "Failed to delete team member")
	}
	if result.RowsAffected == 0 {
		return response.NotFound(c, "Team member not found")
	}

	return response.SuccessWithMessage(c, "Team member deleted successfully", fiber.Map{"id": id})
}

// ReorderMembers handles PUT /api/v1/admin/team/reorder
func (h *TeamHandler) ReorderMembers(c *fiber.Ctx) error {
	var req ReorderRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	for _, item := range req.Items {
		if err := h.db.Model(&model.TeamMember{}).
			Where("id = ?", item.ID).
			Update("sort_order", item.SortOrder).Error; err != nil {
			return response.InternalServerError(c, "Failed to reorder team members")
		}
	}

	return response.SuccessWithMessage(c, "Team members reordered successfully", nil)
}

func marshalSocials(socials map[string]string) datatypes.JSON {
	if socials == nil {
		socials = map[string]string{}
	}
	data, err := json.Marshal(socials)
	if err != nil {
		return datatypes.JSON([]byte("{}"))
	}
	return datatypes.JSON(data)
}
