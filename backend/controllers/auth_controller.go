package controllers

import (
	"github.com/gofiber/fiber/v2"

	"zenyoga/backend/config"
	"zenyoga/backend/models"
	"zenyoga/backend/store"
	"zenyoga/backend/utils"
	"zenyoga/backend/views"
)

type AuthController struct {
	Store *store.Store
	Cfg   *config.Config
}

func NewAuthController(st *store.Store, cfg *config.Config) *AuthController {
	return &AuthController{Store: st, Cfg: cfg}
}

// Login godoc
// @Summary Student login
// @Description Checks the email against the allow-list and returns a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "Login email"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /auth/login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	type LoginInput struct {
		Email string `json:"email" validate:"required,email"`
	}

	var input LoginInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if fields := utils.ValidateStruct(input); fields != nil {
		return utils.ValidationFailed(c, fields)
	}

	email := store.NormalizeEmail(input.Email)
	allowed, err := ac.Store.IsAllowed(email)
	if err != nil {
		return storeError(c, err)
	}
	if !allowed {
		return utils.Unauthorized(c, "This email is not authorized for the portal")
	}

	session := models.Session{
		Email:   email,
		Name:    views.DisplayName(email),
		IsAdmin: email == ac.Store.AdminEmail(),
	}
	token, err := utils.GenerateSessionToken(session, ac.Cfg)
	if err != nil {
		return utils.Error(c, fiber.StatusInternalServerError, err)
	}

	// Rebuild the completed set from persisted marks instead of starting
	// every session empty.
	completed, err := ac.Store.CompletedClassIDs(email)
	if err != nil {
		return storeError(c, err)
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user": fiber.Map{
			"email":            session.Email,
			"name":             session.Name,
			"isAdmin":          session.IsAdmin,
			"completedClasses": completed,
		},
	})
}
