package controllers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"zenyoga/backend/config"
	"zenyoga/backend/store"
)

type ExportController struct {
	Store *store.Store
	Cfg   *config.Config
}

func NewExportController(st *store.Store, cfg *config.Config) *ExportController {
	return &ExportController{Store: st, Cfg: cfg}
}

// ExportBackup godoc
// @Summary Download a backup snapshot
// @Description Point-in-time JSON snapshot of the catalog and roster; not importable
// @Tags export
// @Produce json
// @Success 200 {object} store.Backup
// @Security ApiKeyAuth
// @Router /admin/export [get]
func (ec *ExportController) ExportBackup(c *fiber.Ctx) error {
	backup, err := ec.Store.Snapshot()
	if err != nil {
		return storeError(c, err)
	}

	filename := fmt.Sprintf("backup_zenyoga_%s.json", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.JSON(backup)
}
