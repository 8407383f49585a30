package blog

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/vaahanhq/vaahan-api/model"
	"github.com/vaahanhq/vaahan-api/utils/response"
	"github.com/vaahanhq/vaahan-api/utils/validation"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// BlogHandler handles blog post requests
type BlogHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewBlogHandler creates a new blog handler
func NewBlogHandler(db *gorm.DB) *BlogHandler {
	return &BlogHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// CreatePostRequest represents the request body for creating a blog post
type CreatePostRequest struct {
	Title      string     `json:"title" validate:"required,min=3,max=255"`
	Slug       string     `json:"slug" validate:"omitempty,max=255"`
	Content    string     `json:"content" validate:"required"`
	CoverImage string     `json:"cover_image" validate:"omitempty,url,max=512"`
	Author     string     `json:"author" validate:"omitempty,max=255"`
	Tags       []string   `json:"tags" validate:"omitempty,dive,max=50"`
	Status     string     `json:"status" validate:"omitempty,oneof=draft scheduled published"`
	PublishAt  *time.Time `json:"publish_at"`
}

// UpdatePostRequest represents the request body for updating a blog post
type UpdatePostRequest struct {
	Title      string     `json:"title" validate:"omitempty,min=3,max=255"`
	Slug       string     `json:"slug" validate:"omitempty,max=255"`
	Content    string     `json:"content" validate:"omitempty"`
	CoverImage string     `json:"cover_image" validate:"omitempty,url,max=512"`
	Author     string     `json:"author" validate:"omitempty,max=255"`
	Tags       []string   `json:"tags" validate:"omitempty,dive,max=50"`
	Status     string     `json:"status" validate:"omitempty,oneof=draft scheduled published"`
	PublishAt  *time.Time `json:"publish_at"`
}

// ListPublished handles GET /api/v1/blog — the public feed, published posts only
func (h *BlogHandler) ListPublished(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	search := c.Query("search", "")
	tag := c.Query("tag", "")

	query := h.db.Model(&model.BlogPost{}).Where("status = ?", model.PostStatusPublished)

	if search != "" {
		query = query.Where("title ILIKE ?", "%"+search+"%")
	}
	if tag != "" {
		query = query.Where("tags::text LIKE ?", "%\""+tag+"\"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return response.InternalServerError(c, "Failed to count posts")
	}

	offset := (page - 1) * limit
	pagination := response.CalculatePagination(page, limit, total)

	var posts []model.BlogPost
	if err := query.Order("publish_at DESC NULLS LAST, created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch posts")
	}

	return response.Paginated(c, posts, pagination)
}

// GetBySlug handles GET /api/v1/blog/:slug
func (h *BlogHandler) GetBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var post model.BlogPost
	if err := h.db.Where("slug = ? AND status = ?", slug, model.PostStatusPublished).
		First(&post).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Post not found")
		}
		return response.InternalServerError(c, "Failed to fetch post")
	}

	return response.Success(c, post)
}

// ListAll handles GET /api/v1/admin/blog — all posts regardless of status
func (h *BlogHandler) ListAll(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	status := c.Query("status", "")

	query := h.db.Model(&model.BlogPost{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return response.InternalServerError(c, "Failed to count posts")
	}

	offset := (page - 1) * limit
	pagination := response.CalculatePagination(page, limit, total)

	var posts []model.BlogPost
	if err := query.Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch posts")
	}

	return response.Paginated(c, posts, pagination)
}

// CreatePost handles POST /api/v1/admin/blog
func (h *BlogHandler) CreatePost(c *fiber.Ctx) error {
	var req CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	req.Title = validation.SanitizeString(req.Title)
	slug := req.Slug
	if slug == "" {
		slug = validation.Slugify(req.Title)
	}

	var existing model.BlogPost
	if err := h.db.Where("slug = ?", slug).First(&existing).Error; err == nil {
		return response.Conflict(c, "A post with this slug already exists")
	}

	status := req.Status
	if status == "" {
		status = model.PostStatusDraft
	}

	post := model.BlogPost{
		Slug:       slug,
		Title:      req.Title,
		Content:    req.Content,
		Excerpt:    ExtractExcerpt(req.Content),
		CoverImage: req.CoverImage,
		Author:     req.Author,
		Tags:       marshalTags(req.Tags),
		Status:     status,
		PublishAt:  req.PublishAt,
	}

	if err := h.db.Create(&post).Error; err != nil {
		return response.InternalServerError(c, "Failed to create post")
	}

	return response.Created(c, post)
}

// UpdatePost handles PUT /api/v1/admin/blog/:id
func (h *BlogHandler) UpdatePost(c *fiber.Ctx) error {
	id := c.Params("id")

	var req UpdatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	var post model.BlogPost
	if err := h.db.First(&post, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Post not found")
		}
		return response.InternalServerError(c, "Failed to fetch post")
	}

	if req.Title != "" {
		post.Title = validation.SanitizeString(req.Title)
	}
	if req.Slug != "" && req.Slug != post.Slug {
		var existing model.BlogPost
		if err := h.db.Where("slug = ? AND id <> ?", req.Slug, post.ID).First(&existing).Error; err == nil {
			return response.Conflict(c, "A post with this slug already exists")
		}
		post.Slug = req.Slug
	}
	if req.Content != "" {
		post.Content = req.Content
		post.Excerpt = ExtractExcerpt(req.Content)
	}
	if req.CoverImage != "" {
		post.CoverImage = req.CoverImage
	}
	if req.Author != "" {
		post.Author = req.Author
	}
	if req.Tags != nil {
		post.Tags = marshalTags(req.Tags)
	}
	if req.Status != "" {
		post.Status = req.Status
	}
	if req.PublishAt != nil {
		post.PublishAt = req.PublishAt
	}

	if err := h.db.Save(&post).Error; err != nil {
		return response.InternalServerError(c, "Failed to update post")
	}

	return response.SuccessWithMessage(c, "Post updated successfully", post)
}

// DeletePost handles DELETE /api/v1/admin/blog/:id
func (h *BlogHandler) DeletePost(c *fiber.Ctx) error {
	id := c.Params("id")

	result := h.db.Delete(&model.BlogPost{}, id)
	if result.Error != nil {
		return response.InternalServerError(c, "Failed to delete post")
	}
	if result.RowsAffected == 0 {
		return response.NotFound(c, "Post not found")
	}

	return response.SuccessWithMessage(c, "Post deleted successfully", fiber.Map{"id": id})
}

func marshalTags(tags []string) datatypes.JSON {
	if tags == nil {
		tags = []string{}
	}
	data, err := json.Marshal(tags)
	if err != nil {
		return datatypes.JSON([]byte("[]"))
	}
	return datatypes.JSON(data)
}
