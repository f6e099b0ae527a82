package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"zenyoga/backend/store"
	"zenyoga/backend/utils"
)

// storeError maps facade failures onto HTTP responses. A missing backend is
// a deployment problem (503 with an actionable message), a remote failure is
// a transient upstream error (502); the two must never look the same to the
// caller.
func storeError(c *fiber.Ctx, err error) error {
	var remoteErr *store.RemoteError
	switch {
	case errors.Is(err, store.ErrNotConfigured):
		return utils.Error(c, fiber.StatusServiceUnavailable,
			errors.New("No storage backend is configured. Set REMOTE_ENDPOINT and REMOTE_ACCESS_KEY on the server to enable the database."))
	case errors.As(err, &remoteErr):
		return utils.Error(c, fiber.StatusBadGateway,
			errors.New("The database rejected the operation. Try again or contact the administrator."))
	case errors.Is(err, store.ErrClassExists):
		return utils.Error(c, fiber.StatusConflict, err)
	case errors.Is(err, store.ErrAdminProtected):
		return utils.Forbidden(c, err.Error())
	}
	return utils.Error(c, fiber.StatusInternalServerError, err)
}
