package order

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/TTRSQ/hlcw/hlerr"
)

// Wire is the exact JSON shape the exchange endpoint accepts. Numeric fields
// are decimal strings; optionals are omitted when absent. reduceOnly is the
// one default the protocol wants spelled out, so it has no omitempty.
type Wire struct {
	Coin       string `json:"coin"`
	IsBuy      bool   `json:"is_buy"`
	Sz         string `json:"sz"`
	LimitPx    string `json:"limitPx"`
	OrderType  Type   `json:"orderType"`
	ReduceOnly bool   `json:"reduceOnly"`

	Cloid string `json:"cloid,omitempty"`
	Oid   int64  `json:"oid,omitempty"` // server-assigned, never set by callers

	PegOffsetValue string       `json:"pegOffsetValue,omitempty"`
	PegPriceType   PegPriceType `json:"pegPriceType,omitempty"`

	IsTrigger        bool             `json:"isTrigger,omitempty"`
	TriggerCondition TriggerCondition `json:"triggerCondition,omitempty"`
	TriggerPx        string           `json:"triggerPx,omitempty"`
}

// FormatDecimal renders v as its shortest decimal string that parses back to
// exactly v: 1.0 -> "1", 0.1 -> "0.1", 1e-8 -> "1e-08".
func FormatDecimal(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func parseDecimal(field, s string) (float64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, hlerr.Validationf("%s: cannot parse decimal string %q", field, s)
	}
	return d.InexactFloat64(), nil
}

// Validate checks the Order invariants.
func (o Order) Validate() error {
	if o.Size <= 0 {
		return hlerr.Validationf("size must be positive, got %s", FormatDecimal(o.Size))
	}
	if o.LimitPrice <= 0 {
		return hlerr.Validationf("limit price must be positive, got %s", FormatDecimal(o.LimitPrice))
	}
	if o.IsTrigger {
		if o.TriggerPrice == nil {
			return hlerr.Validationf("trigger order requires a trigger price")
		}
		if o.TriggerCondition == "" {
			return hlerr.Validationf("trigger order requires a trigger condition")
		}
	}
	return nil
}

// Encode converts o to its wire form. The rendering is lossless: for any
// valid order, Decode(Encode(o)) is numerically equal to o in every field.
func Encode(o Order) (Wire, error) {
	if err := o.Validate(); err != nil {
		return Wire{}, err
	}

	typ := o.Type
	if typ == "" {
		typ = TypeLimit
	}

	w := Wire{
		Coin:         o.Coin,
		IsBuy:        o.IsBuy,
		Sz:           FormatDecimal(o.Size),
		LimitPx:      FormatDecimal(o.LimitPrice),
		OrderType:    typ,
		ReduceOnly:   o.ReduceOnly,
		Cloid:        o.ClientOrderID,
		PegPriceType: o.PegPriceType,
	}
	if o.PegOffsetValue != nil {
		w.PegOffsetValue = FormatDecimal(*o.PegOffsetValue)
	}
	if o.IsTrigger {
		w.IsTrigger = true
		w.TriggerCondition = o.TriggerCondition
		w.TriggerPx = FormatDecimal(*o.TriggerPrice)
	}
	return w, nil
}

// Decode parses w back into the high-level model. Absent optionals take the
// documented defaults; a malformed decimal string is a validation error.
func Decode(w Wire) (Order, error) {
	sz, err := parseDecimal("sz", w.Sz)
	if err != nil {
		return Order{}, err
	}
	px, err := parseDecimal("limitPx", w.LimitPx)
	if err != nil {
		return Order{}, err
	}

	typ := w.OrderType
	if typ == "" {
		typ = TypeLimit
	}

	o := Order{
		Coin:             w.Coin,
		IsBuy:            w.IsBuy,
		Size:             sz,
		LimitPrice:       px,
		Type:             typ,
		ReduceOnly:       w.ReduceOnly,
		ClientOrderID:    w.Cloid,
		PegPriceType:     w.PegPriceType,
		IsTrigger:        w.IsTrigger,
		TriggerCondition: w.TriggerCondition,
	}
	if w.PegOffsetValue != "" {
		v, err := parseDecimal("pegOffsetValue", w.PegOffsetValue)
		if err != nil {
			return Order{}, err
		}
		o.PegOffsetValue = &v
	}
	if w.TriggerPx != "" {
		v, err := parseDecimal("triggerPx", w.TriggerPx)
		if err != nil {
			return Order{}, err
		}
		o.TriggerPrice = &v
	}
	return o, nil
}
