package admin_controllers

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/zsmartex/presale/config"
	"github.com/zsmartex/presale/controllers/admin_controllers/queries"
	"github.com/zsmartex/presale/controllers/helpers"
	"github.com/zsmartex/presale/gateway"
	"github.com/zsmartex/presale/models"
	"github.com/zsmartex/presale/mq_client"
	"github.com/zsmartex/presale/presale"
	"github.com/zsmartex/presale/types"
)

func GetTreasuries(c *fiber.Ctx) error {
	var treasuries []*models.Treasury

	config.DataBase.Find(&treasuries)

	return c.Status(200).JSON(treasuries)
}

func withdrawTreasury(c *fiber.Ctx, currency types.PurchaseCurrency) error {
	CurrentUser := c.Locals("CurrentUser").(*models.Member)

	var payload *queries.WithdrawPayload
	if err := c.QueryParser(&payload); err != nil {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})
	}

	if len(payload.To) == 0 || !payload.Amount.IsPositive() {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"admin.treasury.invalid_withdraw"},
		})
	}

	custody := gateway.NewCustodyClient()

	err := config.DataBase.Transaction(func(tx *gorm.DB) error {
		treasury := models.GetTreasury(tx.Clauses(clause.Locking{Strength: "UPDATE"}), currency)

		if err := treasury.SubFunds(tx, payload.Amount); err != nil {
			return err
		}

		// Funds only leave the treasury row when the payout went through.
		if currency == types.CurrencyEth {
			return custody.Vault().Transfer(payload.To, payload.Amount)
		}

		return custody.StableToken(gateway.UsdtAddress()).Transfer(payload.To, payload.Amount)
	})

	if err != nil {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"admin.treasury.withdraw_failed"},
		})
	}

	event, _ := json.Marshal(presale.WithdrawnEvent{
		Operator:  CurrentUser.UID,
		To:        payload.To,
		Amount:    payload.Amount,
		Currency:  currency,
		Timestamp: time.Now().Unix(),
	})
	mq_client.EnqueueEvent("public", "presale", presale.EventFundsWithdrawn, event)

	return c.Status(200).JSON(models.GetTreasury(config.DataBase, currency))
}

func WithdrawEth(c *fiber.Ctx) error {
	return withdrawTreasury(c, types.CurrencyEth)
}

func WithdrawUsdt(c *fiber.Ctx) error {
	return withdrawTreasury(c, types.CurrencyUsdt)
}

// WithdrawPresaleToken pays unsold inventory out of a campaign's custody. The
// withdrawable amount is what remains after sold and previously withdrawn
// tokens.
func WithdrawPresaleToken(c *fiber.Ctx) error {
	CurrentUser := c.Locals("CurrentUser").(*models.Member)

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"Can not find presale"},
		})
	}

	var payload *queries.WithdrawPayload
	if err := c.QueryParser(&payload); err != nil {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})
	}

	if len(payload.To) == 0 || !payload.Amount.IsPositive() {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"admin.treasury.invalid_withdraw"},
		})
	}

	custody := gateway.NewCustodyClient()

	var m *models.Presale

	err = config.DataBase.Transaction(func(tx *gorm.DB) error {
		if result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&m, id); result.Error != nil {
			return result.Error
		}

		if payload.Amount.GreaterThan(m.TokenBalance()) {
			return presale.ErrInsufficientTokenBalance
		}

		token, err := custody.Resolve(m.SaleToken)
		if err != nil {
			return err
		}

		if err := token.Transfer(payload.To, payload.Amount); err != nil {
			return err
		}

		m.WithdrawnTokens = m.WithdrawnTokens.Add(payload.Amount)

		return tx.Save(&m).Error
	})

	if err != nil {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"admin.treasury.withdraw_failed"},
		})
	}

	publishReload(m.ID)

	event, _ := json.Marshal(presale.WithdrawnEvent{
		Operator:  CurrentUser.UID,
		To:        payload.To,
		Amount:    payload.Amount,
		Currency:  m.SaleToken,
		Timestamp: time.Now().Unix(),
		PresaleID: m.ID,
	})
	mq_client.EnqueueEvent("public", "presale", presale.EventTokensWithdrawn, event)

	return c.Status(200).JSON(m)
}
