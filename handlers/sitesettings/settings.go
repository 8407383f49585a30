package sitesettings

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vaahanhq/vaahan-api/settings"
	"github.com/vaahanhq/vaahan-api/utils/response"
)

// SettingsHandler exposes the settings store over HTTP. Reads are public and
// never fail (the store falls back to defaults); writes sit behind the admin
// session middleware at the route layer.
type SettingsHandler struct {
	store *settings.Store
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(store *settings.Store) *SettingsHandler {
	return &SettingsHandler{store: store}
}

// GetSettings handles GET /api/v1/settings
func (h *SettingsHandler) GetSettings(c *fiber.Ctx) error {
	return response.Success(c, h.store.Load(c.Context()))
}

// UpdateSettings handles PUT and POST /api/v1/settings. The body is a partial
// or full nested patch; the merged result is returned.
func (h *SettingsHandler) UpdateSettings(c *fiber.Ctx) error {
	var patch map[string]interface{}
	if err := c.BodyParser(&patch); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if len(patch) == 0 {
		return response.BadRequest(c, "Settings patch cannot be empty")
	}

	merged, err := h.store.Save(c.Context(), patch)
	if err != nil {
		return response.InternalServerError(c, "Failed to save settings")
	}

	return response.SuccessWithMessage(c, "Settings updated successfully", merged)
}

// UpdateSettingRequest is the body for single-field edits
type UpdateSettingRequest struct {
	Value interface{} `json:"value"`
}

// UpdateSetting handles PUT /api/v1/settings/:category/:key — the fast path
// for single-field admin edits; it upserts exactly one row.
func (h *SettingsHandler) UpdateSetting(c *fiber.Ctx) error {
	category := c.Params("category")
	key := c.Params("key")
	if category == "" || key == "" {
		return response.BadRequest(c, "Category and key are required")
	}

	var req UpdateSettingRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.store.SetOne(c.Context(), category, key, req.Value); err != nil {
		return response.InternalServerError(c, "Failed to update setting")
	}

	return response.SuccessWithMessage(c, "Setting updated successfully", fiber.Map{
		"category": category,
		"key":      key,
		"value":    req.Value,
	})
}
