package presale_controllers

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/zsmartex/presale/config"
	"github.com/zsmartex/presale/controllers/entities"
	"github.com/zsmartex/presale/controllers/helpers"
	"github.com/zsmartex/presale/controllers/queries"
	"github.com/zsmartex/presale/models"
	"github.com/zsmartex/presale/types"
)

type CreatePresaleOrderPayload struct {
	PresaleID  uint64          `json:"presale_id" form:"presale_id"`
	Currency   string          `json:"currency" form:"currency"`
	Quantity   decimal.Decimal `json:"quantity" form:"quantity"`
	AmountPaid decimal.Decimal `json:"amount_paid" form:"amount_paid"`
}

type CreateClaimPayload struct {
	PresaleID   uint64 `json:"presale_id" form:"presale_id"`
	Beneficiary string `json:"beneficiary" form:"beneficiary"`
}

// CreatePresaleOrder books a pending purchase and hands it to the engine
// worker. The engine is the only writer of sale accounting, so the request
// settles asynchronously.
func CreatePresaleOrder(c *fiber.Ctx) error {
	CurrentUser := c.Locals("CurrentUser").(*models.Member)

	var payload *CreatePresaleOrderPayload
	if err := c.QueryParser(&payload); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_body"},
		})
	}

	var m *models.Presale
	if result := config.DataBase.First(&m, payload.PresaleID); errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}

	if !m.IsStarted() {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"market.presale.not_started"},
		})
	}

	if m.IsEnded() {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"market.presale.is_ended"},
		})
	}

	if !m.SaleActive {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"market.presale.is_paused"},
		})
	}

	if payload.Currency != types.CurrencyEth && payload.Currency != types.CurrencyUsdt {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"market.presale.invalid_currency"},
		})
	}

	if !payload.Quantity.IsPositive() {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"market.presale.non_positive_quantity"},
		})
	}

	if payload.Currency == types.CurrencyEth && !payload.AmountPaid.IsPositive() {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"market.presale.non_positive_payment"},
		})
	}

	order := &models.PresaleOrder{
		UUID:       uuid.New(),
		PresaleID:  payload.PresaleID,
		MemberUID:  CurrentUser.UID,
		Currency:   payload.Currency,
		Quantity:   payload.Quantity,
		AmountPaid: payload.AmountPaid,
		State:      models.StatePending,
	}

	config.DataBase.Create(&order)

	payload_attrs, _ := json.Marshal(types.PresalePayloadMessage{
		Action:    types.ActionBuy,
		PresaleID: order.PresaleID,
		OrderID:   order.ID,
		UserUID:   order.MemberUID,
	})
	config.Nats.Publish("presale_processor", payload_attrs)

	return c.Status(201).JSON(order.ToJSON())
}

func GetPresaleOrders(c *fiber.Ctx) error {
	CurrentUser := c.Locals("CurrentUser").(*models.Member)

	var errs = new(helpers.Errors)

	params := new(queries.OrderQuery)
	if err := c.QueryParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_query"},
		})
	}

	helpers.Vaildate(params, errs)

	if errs.Size() > 0 {
		return c.Status(422).JSON(errs)
	}

	if params.Limit == 0 {
		params.Limit = 100
	}
	if params.Page == 0 {
		params.Page = 1
	}

	tx := config.DataBase.Where("member_uid = ?", CurrentUser.UID)
	if params.PresaleID > 0 {
		tx = tx.Where("presale_id = ?", params.PresaleID)
	}

	var orders []*models.PresaleOrder
	tx.Order("id desc").Limit(params.Limit).Offset((params.Page - 1) * params.Limit).Find(&orders)

	order_entities := make([]*models.PresaleOrderJSON, 0)
	for _, order := range orders {
		order_entities = append(order_entities, order.ToJSON())
	}

	return c.Status(200).JSON(order_entities)
}

func GetVestingBalances(c *fiber.Ctx) error {
	CurrentUser := c.Locals("CurrentUser").(*models.Member)

	var balances []*models.VestingBalance
	config.DataBase.Find(&balances, "member_uid = ?", CurrentUser.UID)

	balance_entities := make([]*entities.VestingBalance, 0)
	for _, balance := range balances {
		vesting_end := int64(0)
		if m, err := models.GetPresale(balance.PresaleID); err == nil {
			vesting_end = m.VestingEndTime.Unix()
		}

		balance_entities = append(balance_entities, &entities.VestingBalance{
			PresaleID:      balance.PresaleID,
			PurchasedTotal: balance.PurchasedTotal,
			Claimable:      balance.Claimable,
			VestingEndTime: vesting_end,
			Claimed:        balance.PurchasedTotal.Sub(balance.Claimable),
		})
	}

	return c.Status(200).JSON(balance_entities)
}

// CreateClaim releases vested tokens. Anyone may trigger a claim for any
// beneficiary, the tokens always go to the beneficiary.
func CreateClaim(c *fiber.Ctx) error {
	CurrentUser := c.Locals("CurrentUser").(*models.Member)

	var payload *CreateClaimPayload
	if err := c.QueryParser(&payload); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_body"},
		})
	}

	var m *models.Presale
	if result := config.DataBase.First(&m, payload.PresaleID); errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}

	beneficiary := payload.Beneficiary
	if len(beneficiary) == 0 {
		beneficiary = CurrentUser.UID
	}

	payload_attrs, _ := json.Marshal(types.PresalePayloadMessage{
		Action:    types.ActionClaim,
		PresaleID: payload.PresaleID,
		UserUID:   beneficiary,
	})
	config.Nats.Publish("presale_processor", payload_attrs)

	return c.Status(201).JSON(201)
}
