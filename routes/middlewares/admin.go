package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/zsmartex/presale/controllers/helpers"
	"github.com/zsmartex/presale/models"
)

func AdminVaildator(c *fiber.Ctx) error {
	CurrentUser := c.Locals("CurrentUser").(*models.Member)

	if !CurrentUser.IsAdmin() {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"authz.invalid_permission"},
		})
	}

	return c.Next()
}
