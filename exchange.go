package hlcw

import (
	"encoding/json"

	"github.com/TTRSQ/hlcw/domains/order"
	"github.com/TTRSQ/hlcw/hlerr"
)

// PlaceOrder encodes o to its wire form and submits it. Codec validation
// failures surface before any network call is made.
func (c *Client) PlaceOrder(o order.Order) (json.RawMessage, error) {
	w, err := order.Encode(o)
	if err != nil {
		return nil, hlerr.Wrap("place order", err)
	}
	return c.postExchange("place order", w)
}

// PlaceOrderWire submits an already-built wire order, for callers that need
// raw control over the payload.
func (c *Client) PlaceOrderWire(w order.Wire) (json.RawMessage, error) {
	return c.postExchange("place order", w)
}

// PlaceLimitOrder submits a plain limit order. cloid may be empty.
func (c *Client) PlaceLimitOrder(coin string, isBuy bool, size, limitPrice float64, cloid string, reduceOnly bool) (json.RawMessage, error) {
	return c.PlaceOrder(order.Order{
		Coin:          coin,
		IsBuy:         isBuy,
		Size:          size,
		LimitPrice:    limitPrice,
		Type:          order.TypeLimit,
		ReduceOnly:    reduceOnly,
		ClientOrderID: cloid,
	})
}

// PlaceTriggerOrder submits an order activated when the condition's
// reference price crosses triggerPrice.
func (c *Client) PlaceTriggerOrder(coin string, isBuy bool, size, triggerPrice, limitPrice float64, condition order.TriggerCondition, cloid string, reduceOnly bool) (json.RawMessage, error) {
	return c.PlaceOrder(order.Order{
		Coin:             coin,
		IsBuy:            isBuy,
		Size:             size,
		LimitPrice:       limitPrice,
		Type:             order.TypeTrigger,
		ReduceOnly:       reduceOnly,
		ClientOrderID:    cloid,
		IsTrigger:        true,
		TriggerCondition: condition,
		TriggerPrice:     order.Float(triggerPrice),
	})
}

// CancelOrder cancels by server-assigned order id.
func (c *Client) CancelOrder(coin string, oid int64) (json.RawMessage, error) {
	type req struct {
		Coin string `json:"coin"`
		Oid  int64  `json:"oid"`
	}
	return c.postExchange("cancel order", req{Coin: coin, Oid: oid})
}

// CancelOrderByCloid cancels by client-assigned order id.
func (c *Client) CancelOrderByCloid(coin, cloid string) (json.RawMessage, error) {
	type req struct {
		Coin  string `json:"coin"`
		Cloid string `json:"cloid"`
	}
	return c.postExchange("cancel order by cloid", req{Coin: coin, Cloid: cloid})
}

// Cancel dispatches on whichever id is set. oid and cloid are mutually
// exclusive; setting both (or neither) fails before any network call.
func (c *Client) Cancel(coin string, oid int64, cloid string) (json.RawMessage, error) {
	switch {
	case oid != 0 && cloid != "":
		return nil, hlerr.Wrap("cancel order", hlerr.Validationf("oid and cloid are mutually exclusive"))
	case oid != 0:
		return c.CancelOrder(coin, oid)
	case cloid != "":
		return c.CancelOrderByCloid(coin, cloid)
	default:
		return nil, hlerr.Wrap("cancel order", hlerr.Validationf("either oid or cloid is required"))
	}
}

// CancelAllOrders cancels every resting order on a coin.
func (c *Client) CancelAllOrders(coin string) (json.RawMessage, error) {
	type req struct {
		Coin string `json:"coin"`
		Type string `json:"type"`
	}
	return c.postExchange("cancel all orders", req{Coin: coin, Type: "cancelAll"})
}
