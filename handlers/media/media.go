package media

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/vaahanhq/vaahan-api/model"
	"github.com/vaahanhq/vaahan-api/utils/response"
	"github.com/vaahanhq/vaahan-api/utils/validation"
	"gorm.io/gorm"
)

// MediaHandler manages the media library registry. Files themselves live on
// an external CDN/object store; this API only tracks their metadata.
type MediaHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewMediaHandler creates a new media handler
func NewMediaHandler(db *gorm.DB) *MediaHandler {
	return &MediaHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// CreateMediaRequest represents the request body for registering a media file
type CreateMediaRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=255"`
	URL       string `json:"url" validate:"required,url,max=512"`
	MimeType  string `json:"mime_type" validate:"omitempty,max=100"`
	SizeBytes int64  `json:"size_bytes" validate:"omitempty,gte=0"`
	AltText   string `json:"alt_text" validate:"omitempty,max=512"`
}

// UpdateMediaRequest represents the request body for updating a media record
type UpdateMediaRequest struct {
	Name    string `json:"name" validate:"omitempty,min=1,max=255"`
	AltText string `json:"alt_text" validate:"omitempty,max=512"`
}

// ListMedia handles GET /api/v1/admin/media
func (h *MediaHandler) ListMedia(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	search := c.Query("search", "")

	query := h.db.Model(&model.MediaFile{})
	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return response.InternalServerError(c, "Failed to count media files")
	}

	offset := (page - 1) * limit
	pagination := response.CalculatePagination(page, limit, total)

	var files []model.MediaFile
	if err := query.Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&files).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch media files")
	}

	return response.Paginated(c, files, pagination)
}

// CreateMedia handles POST /api/v1/admin/media
func (h *MediaHandler) CreateMedia(c *fiber.Ctx) error {
	var req CreateMediaRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	file := model.MediaFile{
		UUID:      uuid.NewString(),
		Name:      validation.SanitizeString(req.Name),
		URL:       req.URL,
		MimeType:  req.MimeType,
		SizeBytes: req.SizeBytes,
		AltText:   req.AltText,
	}

	if err := h.db.Create(&file).Error; err != nil {
		return response.InternalServerError(c, "Failed to register media file")
	}

	return response.Created(c, file)
}

// UpdateMedia handles PUT /api/v1/admin/media/:uuid
func (h *MediaHandler) UpdateMedia(c *fiber.Ctx) error {
	fileUUID := c.Params("uuid")

	var req UpdateMediaRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	var file model.MediaFile
	if err := h.db.Where("uuid = ?", fileUUID).First(&file).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Media file not found")
		}
		return response.InternalServerError(c, "Failed to fetch media file")
	}

	if req.Name != "" {
		file.Name = validation.SanitizeString(req.Name)
	}
	if req.AltText != "" {
		file.AltText = req.AltText
	}

	if err := h.db.Save(&file).Error; err != nil {
		return response.InternalServerError(c, "Failed to update media file")
	}

	return response.SuccessWithMessage(c, "Media file updated successfully", file)
}

// DeleteMedia handles DELETE /api/v1/admin/media/:uuid
func (h *MediaHandler) DeleteMedia(c *fiber.Ctx) error {
	fileUUID := c.Params("uuid")

	result := h.db.Where("uuid = ?", fileUUID).Delete(&model.MediaFile{})
	if result.Error != nil {
		return response.InternalServerError(c, "Failed to delete media file")
	}
	if result.RowsAffected == 0 {
		return response.NotFound(c, "Media file not found")
	}

	return response.SuccessWithMessage(c, "Media file deleted successfully", fiber.Map{"uuid": fileUUID})
}
