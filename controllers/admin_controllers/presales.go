package admin_controllers

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/volatiletech/null"

	"github.com/zsmartex/presale/config"
	"github.com/zsmartex/presale/controllers/admin_controllers/queries"
	"github.com/zsmartex/presale/controllers/helpers"
	"github.com/zsmartex/presale/gateway"
	"github.com/zsmartex/presale/models"
	"github.com/zsmartex/presale/types"
)

func ValidatePresalePayload(payload *queries.PresalePayload) *helpers.Errors {
	e := new(helpers.Errors)

	if len(payload.SaleToken) == 0 {
		e.Errors = append(e.Errors, "Sale token must be present")
	} else if _, err := gateway.NewCustodyClient().Resolve(payload.SaleToken); err != nil {
		e.Errors = append(e.Errors, "Sale token must be a deployed token")
	}

	if payload.StartTime <= time.Now().Unix() {
		e.Errors = append(e.Errors, "Start time must be in the future")
	}

	if payload.EndTime <= payload.StartTime {
		e.Errors = append(e.Errors, "Start time must be before End time")
	}

	if !payload.Price.IsPositive() {
		e.Errors = append(e.Errors, "Price must be positive")
	}

	if !payload.AvailableTokens.IsPositive() {
		e.Errors = append(e.Errors, "Available tokens must be positive")
	}

	if !payload.LimitPerUser.IsPositive() || payload.LimitPerUser.GreaterThan(payload.AvailableTokens) {
		e.Errors = append(e.Errors, "Limit per user must be positive and within supply")
	}

	if !payload.Precision.IsPositive() {
		e.Errors = append(e.Errors, "Precision must be positive")
	}

	if payload.VestingEndTime < payload.EndTime {
		e.Errors = append(e.Errors, "Vesting end must not be before End time")
	}

	if len(e.Errors) > 0 {
		return e
	} else {
		return nil
	}
}

func publishReload(presale_id uint64) {
	payload_attrs, _ := json.Marshal(types.PresalePayloadMessage{
		Action:    types.ActionReload,
		PresaleID: presale_id,
	})
	config.Nats.Publish("presale_processor", payload_attrs)
}

func GetPresaleList(c *fiber.Ctx) error {
	var lst_presale []*models.Presale

	config.DataBase.Order("id asc").Find(&lst_presale)

	return c.Status(200).JSON(lst_presale)
}

func CreatePresale(c *fiber.Ctx) error {
	var payload *queries.PresalePayload
	if err := c.QueryParser(&payload); err != nil {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})
	}

	if errors := ValidatePresalePayload(payload); errors != nil {
		return c.Status(422).JSON(errors)
	}

	m := &models.Presale{
		SaleToken:       payload.SaleToken,
		StartAt:         time.Unix(payload.StartTime, 0),
		EndsAt:          time.Unix(payload.EndTime, 0),
		Price:           payload.Price,
		AvailableTokens: payload.AvailableTokens,
		LimitPerUser:    payload.LimitPerUser,
		Precision:       payload.Precision,
		VestingEndTime:  time.Unix(payload.VestingEndTime, 0),
		SaleStarted:     false,
		SaleActive:      false,
		BannerUrl:       null.StringFrom(payload.BannerUrl),
		Data:            null.StringFrom(payload.Data),
	}

	config.DataBase.Create(&m)

	publishReload(m.ID)

	return c.Status(201).JSON(m)
}

// UpdatePresale only touches display metadata, the sale accounting fields
// belong to the engine.
func UpdatePresale(c *fiber.Ctx) error {
	var payload *queries.PresalePayload
	if err := c.QueryParser(&payload); err != nil {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})
	}

	m, err := models.GetPresale(payload.ID)
	if err != nil {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}

	m.BannerUrl = null.StringFrom(payload.BannerUrl)
	m.Data = null.StringFrom(payload.Data)

	config.DataBase.Save(&m)

	return c.Status(200).JSON(m)
}

func StartPresale(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"Can not find presale"},
		})
	}

	m, err := models.GetPresale(uint64(id))
	if err != nil {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}

	if m.SaleStarted {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"admin.presale.already_started"},
		})
	}

	m.SaleStarted = true
	m.SaleActive = true

	config.DataBase.Save(&m)

	publishReload(m.ID)

	return c.Status(200).JSON(m)
}

func PausePresale(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"Can not find presale"},
		})
	}

	m, err := models.GetPresale(uint64(id))
	if err != nil {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}

	if !m.SaleStarted {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"admin.presale.not_started"},
		})
	}

	if !m.SaleActive {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"admin.presale.already_paused"},
		})
	}

	m.SaleActive = false

	config.DataBase.Save(&m)

	publishReload(m.ID)

	return c.Status(200).JSON(m)
}

func UnpausePresale(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"Can not find presale"},
		})
	}

	m, err := models.GetPresale(uint64(id))
	if err != nil {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}

	if !m.SaleStarted {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"admin.presale.not_started"},
		})
	}

	if m.SaleActive {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"admin.presale.not_paused"},
		})
	}

	m.SaleActive = true

	config.DataBase.Save(&m)

	publishReload(m.ID)

	return c.Status(200).JSON(m)
}

func UpdatePresalePrice(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"Can not find presale"},
		})
	}

	var payload *queries.PricePayload
	if err := c.QueryParser(&payload); err != nil {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})
	}

	if !payload.Price.IsPositive() {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"admin.presale.non_positive_price"},
		})
	}

	m, err := models.GetPresale(uint64(id))
	if err != nil {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}

	m.Price = payload.Price

	config.DataBase.Save(&m)

	publishReload(m.ID)

	return c.Status(200).JSON(m)
}

func UpdatePresaleEndTime(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"Can not find presale"},
		})
	}

	var payload *queries.TimePayload
	if err := c.QueryParser(&payload); err != nil {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})
	}

	m, err := models.GetPresale(uint64(id))
	if err != nil {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}

	ends_at := time.Unix(payload.Time, 0)

	if !ends_at.After(m.StartAt) {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"admin.presale.invalid_schedule"},
		})
	}

	m.EndsAt = ends_at
	if m.VestingEndTime.Before(ends_at) {
		m.VestingEndTime = ends_at
	}

	config.DataBase.Save(&m)

	publishReload(m.ID)

	return c.Status(200).JSON(m)
}

func UpdatePresaleVesting(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"Can not find presale"},
		})
	}

	var payload *queries.TimePayload
	if err := c.QueryParser(&payload); err != nil {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})
	}

	m, err := models.GetPresale(uint64(id))
	if err != nil {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}

	vesting_end := time.Unix(payload.Time, 0)

	if vesting_end.Before(m.EndsAt) {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"admin.presale.invalid_vesting"},
		})
	}

	m.VestingEndTime = vesting_end

	config.DataBase.Save(&m)

	publishReload(m.ID)

	return c.Status(200).JSON(m)
}
