package hlcw

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TTRSQ/hlcw/domains/order"
	"github.com/TTRSQ/hlcw/hlerr"
	"github.com/TTRSQ/hlcw/interface/backend"
	"github.com/TTRSQ/hlcw/src/stub"
)

func TestPlaceLimitOrderWirePayload(t *testing.T) {
	var gotPath string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	res, err := clientFor(t, srv.URL).PlaceLimitOrder("BTC", true, 0.1, 50000.0, "", false)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"ok"}`, string(res))
	assert.Equal(t, "/exchange", gotPath)
	assert.JSONEq(t, `{
		"coin": "BTC",
		"is_buy": true,
		"sz": "0.1",
		"limitPx": "50000",
		"orderType": "Limit",
		"reduceOnly": false
	}`, string(gotBody))
}

func TestPlaceTriggerOrderPayload(t *testing.T) {
	b := stub.New()
	b.Respond(backend.EndpointExchange, `{"status":"ok"}`)

	_, err := NewWithBackend(b).PlaceTriggerOrder("ETH", false, 2.0, 3100.0, 3000.0, order.TriggerMark, "0x00000000633a4f8c1d2e9ab304c5d6e7", true)
	require.NoError(t, err)

	reqs := b.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, backend.EndpointExchange, reqs[0].Endpoint)
	assert.JSONEq(t, `{
		"coin": "ETH",
		"is_buy": false,
		"sz": "2",
		"limitPx": "3000",
		"orderType": "Trigger",
		"reduceOnly": true,
		"cloid": "0x00000000633a4f8c1d2e9ab304c5d6e7",
		"isTrigger": true,
		"triggerCondition": "mark",
		"triggerPx": "3100"
	}`, string(reqs[0].Payload))
}

func TestPlaceOrderFailsFastOnValidation(t *testing.T) {
	b := stub.New()

	_, err := NewWithBackend(b).PlaceOrder(order.Order{
		Coin:       "BTC",
		Size:       1,
		LimitPrice: 1,
		Type:       order.TypeTrigger,
		IsTrigger:  true, // no trigger price or condition
	})
	require.Error(t, err)
	assert.Equal(t, hlerr.KindValidation, hlerr.KindOf(err))
	assert.Contains(t, err.Error(), "failed to place order")
	assert.Empty(t, b.Requests(), "validation failures must not reach the network")
}

func TestPlaceOrderWireRawControl(t *testing.T) {
	b := stub.New()
	b.Respond(backend.EndpointExchange, `{"status":"ok"}`)

	_, err := NewWithBackend(b).PlaceOrderWire(order.Wire{
		Coin: "BTC", IsBuy: true, Sz: "0.1", LimitPx: "50000", OrderType: order.TypeLimit,
	})
	require.NoError(t, err)
	require.Len(t, b.Requests(), 1)
}

func TestCancelOrderPayload(t *testing.T) {
	b := stub.New()
	b.Respond(backend.EndpointExchange, `{"status":"ok"}`)
	c := NewWithBackend(b)

	_, err := c.CancelOrder("BTC", 12345)
	require.NoError(t, err)
	_, err = c.CancelOrderByCloid("BTC", "0x00000000633a4f8c1d2e9ab304c5d6e7")
	require.NoError(t, err)
	_, err = c.CancelAllOrders("BTC")
	require.NoError(t, err)

	reqs := b.Requests()
	require.Len(t, reqs, 3)
	assert.JSONEq(t, `{"coin":"BTC","oid":12345}`, string(reqs[0].Payload))
	assert.JSONEq(t, `{"coin":"BTC","cloid":"0x00000000633a4f8c1d2e9ab304c5d6e7"}`, string(reqs[1].Payload))
	assert.JSONEq(t, `{"coin":"BTC","type":"cancelAll"}`, string(reqs[2].Payload))
}

func TestCancelMutuallyExclusiveIds(t *testing.T) {
	b := stub.New()
	c := NewWithBackend(b)

	_, err := c.Cancel("BTC", 123, "0x00000000633a4f8c1d2e9ab304c5d6e7")
	require.Error(t, err)
	assert.Equal(t, hlerr.KindValidation, hlerr.KindOf(err))
	assert.Empty(t, b.Requests(), "rejected cancels must not reach the network")

	_, err = c.Cancel("BTC", 0, "")
	require.Error(t, err)
	assert.Equal(t, hlerr.KindValidation, hlerr.KindOf(err))
	assert.Empty(t, b.Requests())
}

func TestCancelDispatch(t *testing.T) {
	b := stub.New()
	b.Respond(backend.EndpointExchange, `{"status":"ok"}`)
	c := NewWithBackend(b)

	_, err := c.Cancel("BTC", 9, "")
	require.NoError(t, err)
	_, err = c.Cancel("BTC", 0, "0x00000000633a4f8c1d2e9ab304c5d6e7")
	require.NoError(t, err)

	reqs := b.Requests()
	require.Len(t, reqs, 2)
	assert.JSONEq(t, `{"coin":"BTC","oid":9}`, string(reqs[0].Payload))
	assert.JSONEq(t, `{"coin":"BTC","cloid":"0x00000000633a4f8c1d2e9ab304c5d6e7"}`, string(reqs[1].Payload))
}

func TestExchangeInvalidJSONResponse(t *testing.T) {
	b := stub.New()
	b.Respond(backend.EndpointExchange, `not json`)

	_, err := NewWithBackend(b).CancelAllOrders("BTC")
	require.Error(t, err)
	assert.Equal(t, hlerr.KindValidation, hlerr.KindOf(err))
}

func TestExchangeWrapsBackendError(t *testing.T) {
	b := stub.New()
	b.Fail(hlerr.FromStatus(429, "Too Many Requests", "3"))

	_, err := NewWithBackend(b).CancelOrder("BTC", 1)
	require.Error(t, err)
	assert.Equal(t, hlerr.KindRateLimited, hlerr.KindOf(err))
	assert.Contains(t, err.Error(), "failed to cancel order")

	var e *hlerr.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "3", e.RetryAfter)
}
