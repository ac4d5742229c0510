// Package market holds the typed responses of the info endpoint.
package market

// AssetMeta describes one tradable asset.
type AssetMeta struct {
	Name         string `json:"name"`
	OnlyIsolated bool   `json:"onlyIsolated"`
	SzDecimals   int    `json:"szDecimals"`
	MaxLeverage  int    `json:"maxLeverage"`

	MaxDynamicLeverage *int        `json:"maxDynamicLeverage,omitempty"`
	Type               string      `json:"type,omitempty"`
	Tokens             []AssetMeta `json:"tokens,omitempty"`
	MaxOi              string      `json:"maxOi,omitempty"`
	Underlying         string      `json:"underlying,omitempty"`
	IsInverse          *bool       `json:"isInverse,omitempty"`
}

// Meta is the response of the "meta" call.
type Meta struct {
	Universe []AssetMeta `json:"universe"`
}

// MarginSummary is the exchange's margin accounting for one account.
// Amounts are decimal strings, verbatim from the wire.
type MarginSummary struct {
	AccountValue    string `json:"accountValue"`
	TotalMarginUsed string `json:"totalMarginUsed"`
	TotalNtlPos     string `json:"totalNtlPos"`
	TotalRawUsd     string `json:"totalRawUsd"`
}

// PositionDetails describes one open position.
type PositionDetails struct {
	Szi           string `json:"szi"`
	EntryPx       string `json:"entryPx,omitempty"`
	Leverage      string `json:"leverage,omitempty"`
	LiquidationPx string `json:"liquidationPx,omitempty"`
	PositionValue string `json:"positionValue"`
	MarginUsed    string `json:"marginUsed,omitempty"`
	OpenSize      string `json:"openSize"`

	RawPNL         string `json:"rawPNL,omitempty"`
	ReturnOnEquity string `json:"returnOnEquity,omitempty"`
	Type           string `json:"type"`
	UserID         string `json:"userID"`
	Account        string `json:"account,omitempty"`
	CumFunding     string `json:"cumFunding,omitempty"`
	MaxLeverage    string `json:"maxLeverage,omitempty"`
	PendingFunding string `json:"pendingFunding,omitempty"`
}

// Position ties position details to a coin.
type Position struct {
	Coin     string          `json:"coin"`
	Position PositionDetails `json:"position"`
}

// AssetPosition is one spot/ledger holding.
type AssetPosition struct {
	Time     int64  `json:"time"`
	Token    string `json:"token"`
	Delta    string `json:"delta,omitempty"`
	DeltaUsd string `json:"deltaUsd,omitempty"`
	Total    string `json:"total,omitempty"`
	TotalUsd string `json:"totalUsd,omitempty"`
}

// UserState is the response of the "clearinghouseState" call.
type UserState struct {
	MarginSummary      MarginSummary   `json:"marginSummary"`
	CrossMarginSummary *MarginSummary  `json:"crossMarginSummary,omitempty"`
	Positions          []Position      `json:"positions"`
	Withdrawable       string          `json:"withdrawable"`
	AssetPositions     []AssetPosition `json:"assetPositions"`
}

// OpenOrder is one resting order, as returned by openOrders and
// frontendOpenOrders. The frontend variant fills the extra fields.
type OpenOrder struct {
	Coin      string `json:"coin"`
	LimitPx   string `json:"limitPx"`
	Oid       int64  `json:"oid"`
	Side      string `json:"side"`
	Sz        string `json:"sz"`
	Timestamp int64  `json:"timestamp"`

	Cloid            string `json:"cloid,omitempty"`
	OrigSz           string `json:"origSz,omitempty"`
	OrderType        string `json:"orderType,omitempty"`
	ReduceOnly       bool   `json:"reduceOnly,omitempty"`
	IsTrigger        bool   `json:"isTrigger,omitempty"`
	TriggerCondition string `json:"triggerCondition,omitempty"`
	TriggerPx        string `json:"triggerPx,omitempty"`
}

// L2Level is one price level of the book.
type L2Level struct {
	Px string `json:"px"`
	Sz string `json:"sz"`
	N  int    `json:"n"`
}

// L2Book is the response of the "l2Book" call. Levels[0] are bids,
// Levels[1] asks.
type L2Book struct {
	Coin   string      `json:"coin"`
	Time   int64       `json:"time"`
	Levels [][]L2Level `json:"levels"`
}

// Candle is one OHLCV bar from "candleSnapshot".
type Candle struct {
	OpenTime  int64  `json:"t"`
	CloseTime int64  `json:"T"`
	Symbol    string `json:"s"`
	Interval  string `json:"i"`
	Open      string `json:"o"`
	Close     string `json:"c"`
	High      string `json:"h"`
	Low       string `json:"l"`
	Volume    string `json:"v"`
	Trades    int    `json:"n"`
}
