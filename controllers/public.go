package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/zsmartex/presale/config"
	"github.com/zsmartex/presale/controllers/entities"
	"github.com/zsmartex/presale/controllers/helpers"
	"github.com/zsmartex/presale/controllers/queries"
	"github.com/zsmartex/presale/gateway"
	"github.com/zsmartex/presale/models"
	"github.com/zsmartex/presale/types"
)

func PresaleToEntity(m *models.Presale) *entities.Presale {
	return &entities.Presale{
		ID:              m.ID,
		SaleToken:       m.SaleToken,
		Price:           m.Price,
		AvailableTokens: m.AvailableTokens,
		SoldTokens:      m.SoldTokens,
		TokenBalance:    m.TokenBalance(),
		LimitPerUser:    m.LimitPerUser,
		Precision:       m.Precision,
		StartTime:       m.StartAt.Unix(),
		EndTime:         m.EndsAt.Unix(),
		VestingEndTime:  m.VestingEndTime.Unix(),
		SaleStarted:     m.SaleStarted,
		SaleActive:      m.SaleActive,
		Ended:           m.IsEnded(),
		Completed:       m.IsCompleted(),
		BannerUrl:       m.BannerUrl.String,
		Data:            m.Data.String,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func GetTimestamp(c *fiber.Ctx) error {

	c.Status(200).JSON(time.Now())

	return nil
}

func GetPresaleList(c *fiber.Ctx) error {
	var lst_presale []*models.Presale

	config.DataBase.Order("id asc").Find(&lst_presale)

	presale_entities := make([]*entities.Presale, 0)

	for _, m := range lst_presale {
		presale_entities = append(presale_entities, PresaleToEntity(m))
	}

	return c.Status(200).JSON(presale_entities)
}

func GetPresaleDetail(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_query"},
		})
	}

	m, err := models.GetPresale(uint64(id))
	if err != nil {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}

	return c.Status(200).JSON(PresaleToEntity(m))
}

func GetOracleRate(c *fiber.Ctx) error {
	var global_price types.GlobalPrice

	if err := config.Redis.GetKey(gateway.OracleRateKey, &global_price); err != nil {
		config.Logger.Errorf("Failed to fetch oracle rate %v", err)

		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"public.oracle_rate.failed"},
		})
	}

	return c.Status(200).JSON(global_price)
}

// GetUsdtQuote prices a quantity of sale token in the accounting asset, with
// the same truncation the engine applies on purchase.
func GetUsdtQuote(c *fiber.Ctx) error {
	var errs = new(helpers.Errors)

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_query"},
		})
	}

	params := new(queries.QuoteQuery)
	if err := c.QueryParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_query"},
		})
	}

	helpers.Vaildate(params, errs)

	if errs.Size() > 0 {
		return c.Status(422).JSON(errs)
	}

	m, err := models.GetPresale(uint64(id))
	if err != nil {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}

	record := m.ToEngine()

	return c.Status(200).JSON(entities.Quote{
		PresaleID: m.ID,
		Currency:  types.CurrencyUsdt,
		Quantity:  params.Quantity,
		Cost:      record.UsdtQuote(params.Quantity),
	})
}

// GetEthQuote prices a quantity of sale token in the base asset using the
// cached oracle rate.
func GetEthQuote(c *fiber.Ctx) error {
	var errs = new(helpers.Errors)

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_query"},
		})
	}

	params := new(queries.QuoteQuery)
	if err := c.QueryParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_query"},
		})
	}

	helpers.Vaildate(params, errs)

	if errs.Size() > 0 {
		return c.Status(422).JSON(errs)
	}

	m, err := models.GetPresale(uint64(id))
	if err != nil {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}

	rate, err := gateway.NewRedisPriceFeed().LatestRate()
	if err != nil || !rate.Usable(time.Now()) {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"public.oracle_rate.failed"},
		})
	}

	record := m.ToEngine()
	usdt_cost := record.UsdtQuote(params.Quantity)

	return c.Status(200).JSON(entities.Quote{
		PresaleID: m.ID,
		Currency:  types.CurrencyEth,
		Quantity:  params.Quantity,
		Cost:      record.EthQuote(usdt_cost, rate.Value),
	})
}
