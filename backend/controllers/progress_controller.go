package controllers

import (
	"github.com/gofiber/fiber/v2"

	"zenyoga/backend/config"
	"zenyoga/backend/middleware"
	"zenyoga/backend/store"
	"zenyoga/backend/utils"
	"zenyoga/backend/views"
)

type ProgressController struct {
	Store *store.Store
	Cfg   *config.Config
}

func NewProgressController(st *store.Store, cfg *config.Config) *ProgressController {
	return &ProgressController{Store: st, Cfg: cfg}
}

// GetProgress godoc
// @Summary Get completion progress
// @Description Returns the student's completed class ids and completion percentage
// @Tags progress
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progress [get]
func (pc *ProgressController) GetProgress(c *fiber.Ctx) error {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	completed, err := pc.Store.CompletedClassIDs(session.Email)
	if err != nil {
		return storeError(c, err)
	}
	classes, err := pc.Store.ListClasses()
	if err != nil {
		return storeError(c, err)
	}

	return c.JSON(fiber.Map{
		"completedClasses": completed,
		"totalClasses":     len(classes),
		"percentage":       views.CompletionPercentage(classes, completed),
	})
}

// SetCompletion godoc
// @Summary Mark or unmark a class as completed
// @Description Idempotent; setting an already-set state changes nothing
// @Tags progress
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "Completed flag"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progress/{classId} [put]
func (pc *ProgressController) SetCompletion(c *fiber.Ctx) error {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	type CompletionInput struct {
		Completed bool `json:"completed"`
	}
	var input CompletionInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	classID := c.Params("classId")
	if err := pc.Store.SetCompletion(session.Email, classID, input.Completed); err != nil {
		return storeError(c, err)
	}

	completed, err := pc.Store.CompletedClassIDs(session.Email)
	if err != nil {
		return storeError(c, err)
	}
	classes, err := pc.Store.ListClasses()
	if err != nil {
		return storeError(c, err)
	}

	return c.JSON(fiber.Map{
		"completedClasses": completed,
		"percentage":       views.CompletionPercentage(classes, completed),
	})
}
