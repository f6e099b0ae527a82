package controllers

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"zenyoga/backend/config"
	"zenyoga/backend/store"
	"zenyoga/backend/utils"
)

type StudentsController struct {
	Store *store.Store
	Cfg   *config.Config
}

func NewStudentsController(st *store.Store, cfg *config.Config) *StudentsController {
	return &StudentsController{Store: st, Cfg: cfg}
}

// GetStudents godoc
// @Summary List authorized students
// @Tags students
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /admin/students [get]
func (sc *StudentsController) GetStudents(c *fiber.Ctx) error {
	emails, err := sc.Store.ListAllowedEmails()
	if err != nil {
		return storeError(c, err)
	}

	return c.JSON(fiber.Map{
		"emails": emails,
	})
}

// AuthorizeStudent godoc
// @Summary Authorize a student email
// @Description Adds an email to the allow-list; already-present emails are a no-op
// @Tags students
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "Student email"
// @Success 200 {object} map[string]interface{}
// @Failure 422 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/students [post]
func (sc *StudentsController) AuthorizeStudent(c *fiber.Ctx) error {
	type StudentInput struct {
		Email string `json:"email" validate:"required,email"`
	}

	var input StudentInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if fields := utils.ValidateStruct(input); fields != nil {
		return utils.ValidationFailed(c, fields)
	}

	emails, err := sc.Store.AuthorizeEmail(input.Email)
	if err != nil {
		return storeError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Student authorized",
		"emails":  emails,
	})
}

// RevokeStudent godoc
// @Summary Revoke a student email
// @Description Removes an email from the allow-list; the administrator email is protected
// @Tags students
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/students/{email} [delete]
func (sc *StudentsController) RevokeStudent(c *fiber.Ctx) error {
	email, err := url.PathUnescape(c.Params("email"))
	if err != nil || email == "" {
		return utils.BadRequest(c, "Invalid email")
	}

	emails, err := sc.Store.RevokeEmail(email)
	if err != nil {
		return storeError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Student access revoked",
		"emails":  emails,
	})
}
