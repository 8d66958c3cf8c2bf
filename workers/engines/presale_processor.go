package engines

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/zsmartex/presale/config"
	"github.com/zsmartex/presale/gateway"
	"github.com/zsmartex/presale/models"
	"github.com/zsmartex/presale/mq_client"
	"github.com/zsmartex/presale/presale"
	"github.com/zsmartex/presale/types"
)

// rangerPublisher pushes engine events onto the public events exchange.
type rangerPublisher struct {
}

func (p *rangerPublisher) PublishPresaleEvent(event presale.EventType, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		config.Logger.Errorf("Failed to marshal presale event %s: %v", event, err)
		return
	}

	mq_client.EnqueueEvent("public", "presale", event, body)
}

// PresaleProcessorWorker is the single writer of presale accounting. It holds
// the engine in memory, hydrated from the database, and settles the orders the
// API books.
type PresaleProcessorWorker struct {
	engine *presale.Engine
}

func NewPresaleProcessorWorker() *PresaleProcessorWorker {
	custody := gateway.NewCustodyClient()

	engine := presale.NewEngine(
		os.Getenv("PRESALE_OPERATOR_UID"),
		os.Getenv("PRESALE_CUSTODY_UID"),
		gateway.NewRedisPriceFeed(),
		custody,
		custody.StableToken(gateway.UsdtAddress()),
		custody.Vault(),
		&rangerPublisher{},
	)

	kclass := &PresaleProcessorWorker{engine: engine}

	if err := kclass.Reload(0); err != nil {
		config.Logger.Errorf("Error: %s", err.Error())
	}

	var orders []*models.PresaleOrder
	config.DataBase.Find(&orders, "state = ?", models.StatePending)
	for _, order := range orders {
		if err := kclass.executeOrder(order.ID); err != nil {
			config.Logger.Errorf("Error: %s", err.Error())
			break
		}
	}

	return kclass
}

func (w *PresaleProcessorWorker) Process(payload []byte) error {
	var payload_presale_message *types.PresalePayloadMessage
	if err := json.Unmarshal(payload, &payload_presale_message); err != nil {
		return err
	}

	switch payload_presale_message.Action {
	case types.ActionBuy:
		return w.executeOrder(payload_presale_message.OrderID)
	case types.ActionClaim:
		return w.executeClaim(payload_presale_message.PresaleID, payload_presale_message.UserUID)
	case types.ActionReload:
		return w.Reload(payload_presale_message.PresaleID)
	case types.ActionSweep:
		w.engine.SweepEnded()
		return nil
	default:
		return errors.New("unknown action: " + payload_presale_message.Action)
	}
}

// Reload hydrates the engine from durable storage, one presale or all of them.
func (w *PresaleProcessorWorker) Reload(presale_id uint64) error {
	var lst_presale []*models.Presale

	if presale_id > 0 {
		m, err := models.GetPresale(presale_id)
		if err != nil {
			return err
		}
		lst_presale = append(lst_presale, m)
	} else {
		config.DataBase.Order("id asc").Find(&lst_presale)

		w.engine.LoadTreasury(
			models.TreasuryBalance(types.CurrencyEth),
			models.TreasuryBalance(types.CurrencyUsdt),
		)
	}

	for _, m := range lst_presale {
		w.engine.LoadPresale(m.ToEngine())

		for _, balance := range models.GetVestingBalances(m.ID) {
			w.engine.LoadPosition(m.ID, balance.MemberUID, &presale.UserPosition{
				PurchasedTotal: balance.PurchasedTotal,
				Claimable:      balance.Claimable,
			})
		}
	}

	return nil
}

func (w *PresaleProcessorWorker) ensureLoaded(presale_id uint64) error {
	if _, err := w.engine.GetPresale(presale_id); err != nil {
		return w.Reload(presale_id)
	}

	return nil
}

func (w *PresaleProcessorWorker) executeOrder(order_id uint64) error {
	var order *models.PresaleOrder
	if result := models.Lock().First(&order, order_id); result.Error != nil {
		return result.Error
	}

	if order.State != models.StatePending {
		return nil
	}

	if err := w.ensureLoaded(order.PresaleID); err != nil {
		return err
	}

	var exec_err error
	amount_paid := order.AmountPaid

	switch order.Currency {
	case types.CurrencyEth:
		exec_err = w.engine.BuyWithEth(order.PresaleID, order.MemberUID, order.Quantity, order.AmountPaid)
	case types.CurrencyUsdt:
		amount_paid, exec_err = w.engine.UsdtBuyHelper(order.PresaleID, order.Quantity)
		if exec_err == nil {
			exec_err = w.engine.BuyWithUsdt(order.PresaleID, order.MemberUID, order.Quantity)
		}
	default:
		exec_err = errors.New("market.presale.invalid_currency")
	}

	if exec_err != nil {
		order.State = models.StateReject
		order.Reason = exec_err.Error()
		config.DataBase.Save(&order)

		w.publishOrder(order)

		return nil
	}

	record, err := w.engine.GetPresale(order.PresaleID)
	if err != nil {
		return err
	}

	var m *models.Presale
	if result := config.DataBase.First(&m, order.PresaleID); result.Error != nil {
		return result.Error
	}
	m.ApplyEngine(record)
	config.DataBase.Save(&m)

	balance := models.GetVestingBalance(order.PresaleID, order.MemberUID)
	balance.PurchasedTotal = balance.PurchasedTotal.Add(order.Quantity)
	balance.Claimable = balance.Claimable.Add(order.Quantity)
	config.DataBase.Save(&balance)

	treasury := models.GetTreasury(config.DataBase, order.Currency)
	if err := treasury.PlusFunds(config.DataBase, amount_paid); err != nil {
		config.Logger.Errorf("Error: %s", err.Error())
	}

	order.AmountPaid = amount_paid
	order.State = models.StateDone
	config.DataBase.Save(&order)

	order.WriteToInflux()
	w.publishOrder(order)

	return nil
}

func (w *PresaleProcessorWorker) executeClaim(presale_id uint64, user_uid string) error {
	if err := w.ensureLoaded(presale_id); err != nil {
		return err
	}

	amount, err := w.engine.ClaimToken(presale_id, user_uid)
	if err != nil {
		config.Logger.Errorf("Claim rejected (presale: %d, user: %s): %v", presale_id, user_uid, err)
		return nil
	}

	balance := models.GetVestingBalance(presale_id, user_uid)
	balance.Claimable = balance.Claimable.Sub(amount)
	config.DataBase.Save(&balance)

	payload_attrs, _ := json.Marshal(balance)
	mq_client.EnqueueEvent("private", user_uid, "vesting_balance", payload_attrs)

	return nil
}

func (w *PresaleProcessorWorker) publishOrder(order *models.PresaleOrder) {
	payload_attrs, _ := json.Marshal(order.ToJSON())
	mq_client.EnqueueEvent("private", order.MemberUID, "presale_order", payload_attrs)
}
