package controllers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"zenyoga/backend/config"
	"zenyoga/backend/middleware"
	"zenyoga/backend/models"
	"zenyoga/backend/store"
	"zenyoga/backend/utils"
	"zenyoga/backend/views"
)

type ClassesController struct {
	Store *store.Store
	Cfg   *config.Config
}

func NewClassesController(st *store.Store, cfg *config.Config) *ClassesController {
	return &ClassesController{Store: st, Cfg: cfg}
}

// GetClasses godoc
// @Summary List classes
// @Description Returns the catalog, optionally narrowed by ?filter=completed or ?category=<name>
// @Tags classes
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 502 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /classes [get]
func (cc *ClassesController) GetClasses(c *fiber.Ctx) error {
	session, _ := middleware.SessionFromContext(c)

	classes, err := cc.Store.ListClasses()
	if err != nil {
		return storeError(c, err)
	}

	filter := views.FilterAll
	if f := c.Query("filter"); f == string(views.FilterCompleted) {
		filter = views.FilterCompleted
	} else if cat := c.Query("category"); cat != "" {
		if !models.Category(cat).Valid() {
			return utils.BadRequest(c, "Unknown category")
		}
		filter = views.CategoryFilter(models.Category(cat))
	}

	var completed []string
	if filter == views.FilterCompleted {
		completed, err = cc.Store.CompletedClassIDs(session.Email)
		if err != nil {
			return storeError(c, err)
		}
	}

	return c.JSON(fiber.Map{
		"classes": views.FilterClasses(classes, filter, completed),
	})
}

// CreateClass godoc
// @Summary Add a class
// @Description Registers a new class; the pasted video value may be a URL or a bare id
// @Tags classes
// @Accept json
// @Produce json
// @Param class body map[string]interface{} true "Class fields"
// @Success 200 {object} map[string]interface{}
// @Failure 422 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/classes [post]
func (cc *ClassesController) CreateClass(c *fiber.Ctx) error {
	type ClassInput struct {
		Title       string `json:"title" validate:"required"`
		Description string `json:"description"`
		YouTubeID   string `json:"youtubeId" validate:"required"`
		Category    string `json:"category" validate:"required,category"`
		Duration    string `json:"duration"`
		Level       string `json:"level" validate:"required,level"`
	}

	var input ClassInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if fields := utils.ValidateStruct(input); fields != nil {
		return utils.ValidationFailed(c, fields)
	}

	ytID := views.ExtractYouTubeID(input.YouTubeID)
	description := input.Description
	if description == "" {
		description = "Guided yoga practice."
	}
	duration := input.Duration
	if duration == "" {
		duration = "20 min"
	}

	now := time.Now()
	class := models.YogaClass{
		ID:           strconv.FormatInt(now.UnixMilli(), 10),
		Title:        input.Title,
		Description:  description,
		YouTubeID:    ytID,
		Category:     models.Category(input.Category),
		Duration:     duration,
		Level:        models.Level(input.Level),
		ThumbnailURL: views.ThumbnailURL(ytID),
		CreatedAt:    now.UTC(),
	}

	classes, err := cc.Store.SaveClass(class)
	if err != nil {
		return storeError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Class created",
		"classes": classes,
	})
}

// DeleteClass godoc
// @Summary Remove a class
// @Description Deletes a class by id; an absent id is a no-op
// @Tags classes
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /admin/classes/{id} [delete]
func (cc *ClassesController) DeleteClass(c *fiber.Ctx) error {
	classes, err := cc.Store.DeleteClass(c.Params("id"))
	if err != nil {
		return storeError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Class removed",
		"classes": classes,
	})
}
