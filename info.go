package hlcw

import (
	"encoding/json"

	"github.com/TTRSQ/hlcw/domains/market"
	"github.com/TTRSQ/hlcw/domains/staking"
)

// userReq covers every info call keyed by account address.
type userReq struct {
	Type string `json:"type"`
	User string `json:"user"`
}

// Meta returns the asset universe.
func (c *Client) Meta() (*market.Meta, error) {
	type req struct {
		Type string `json:"type"`
	}
	out := &market.Meta{}
	if err := c.postInfo("get meta", req{Type: "meta"}, out); err != nil {
		return nil, err
	}
	return out, nil
}

// UserState returns margin and position state for an address. Address
// format is not checked here; a bad address is the server's to reject.
func (c *Client) UserState(address string) (*market.UserState, error) {
	out := &market.UserState{}
	if err := c.postInfo("get user state", userReq{Type: "clearinghouseState", User: address}, out); err != nil {
		return nil, err
	}
	return out, nil
}

// OpenOrders returns the resting orders of an address.
func (c *Client) OpenOrders(address string) ([]market.OpenOrder, error) {
	var out []market.OpenOrder
	if err := c.postInfo("get open orders", userReq{Type: "openOrders", User: address}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FrontendOpenOrders is OpenOrders with the frontend's extra fields filled.
func (c *Client) FrontendOpenOrders(address string) ([]market.OpenOrder, error) {
	var out []market.OpenOrder
	if err := c.postInfo("get frontend open orders", userReq{Type: "frontendOpenOrders", User: address}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// L2Book returns the book snapshot for a coin.
func (c *Client) L2Book(coin string) (*market.L2Book, error) {
	type req struct {
		Type string `json:"type"`
		Coin string `json:"coin"`
	}
	out := &market.L2Book{}
	if err := c.postInfo("get l2 book", req{Type: "l2Book", Coin: coin}, out); err != nil {
		return nil, err
	}
	return out, nil
}

// CandleSnapshot returns OHLCV bars. dex is optional ("" for the default).
func (c *Client) CandleSnapshot(coin, interval, dex string) ([]market.Candle, error) {
	type candleReq struct {
		Coin     string `json:"coin"`
		Interval string `json:"interval"`
		Dex      string `json:"dex,omitempty"`
	}
	type req struct {
		Type string    `json:"type"`
		Req  candleReq `json:"req"`
	}
	var out []market.Candle
	if err := c.postInfo("get candle snapshot", req{
		Type: "candleSnapshot",
		Req:  candleReq{Coin: coin, Interval: interval, Dex: dex},
	}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AllMids returns the mid price of every coin, as decimal strings.
func (c *Client) AllMids() (map[string]string, error) {
	type req struct {
		Type string `json:"type"`
	}
	var out map[string]string
	if err := c.postInfo("get all mids", req{Type: "allMids"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DelegatorSummary returns aggregate staking stats for an address.
func (c *Client) DelegatorSummary(address string) (*staking.Summary, error) {
	out := &staking.Summary{}
	if err := c.postInfo("get delegator summary", userReq{Type: "delegatorSummary", User: address}, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Delegations returns the active delegations of an address.
func (c *Client) Delegations(address string) ([]staking.Delegation, error) {
	var out []staking.Delegation
	if err := c.postInfo("get delegations", userReq{Type: "delegations", User: address}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DelegatorRewards returns the staking rewards history of an address.
func (c *Client) DelegatorRewards(address string) (*staking.Rewards, error) {
	out := &staking.Rewards{}
	if err := c.postInfo("get delegator rewards", userReq{Type: "delegatorRewards", User: address}, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Portfolio returns the portfolio breakdown of an address. The shape varies
// by account type, so it is returned undecoded.
func (c *Client) Portfolio(address string) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.postInfo("get portfolio", userReq{Type: "portfolio", User: address}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UserVaultEquities returns the vault deposits of an address, undecoded.
func (c *Client) UserVaultEquities(address string) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.postInfo("get user vault equities", userReq{Type: "userVaultEquities", User: address}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UserNonFundingLedgerUpdates returns deposit/withdraw/transfer ledger
// entries for an address, undecoded.
func (c *Client) UserNonFundingLedgerUpdates(address string) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.postInfo("get user non-funding ledger updates", userReq{Type: "userNonFundingLedgerUpdates", User: address}, &out); err != nil {
		return nil, err
	}
	return out, nil
}
