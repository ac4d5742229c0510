// Package order holds the user-facing order model and its wire codec.
package order

// Type is the exchange order type tag.
type Type string

const (
	TypeLimit   Type = "Limit"
	TypeTrigger Type = "Trigger"
)

// TriggerCondition selects the reference price a trigger order watches.
type TriggerCondition string

const (
	TriggerMark  TriggerCondition = "mark"
	TriggerIndex TriggerCondition = "index"
	TriggerLast  TriggerCondition = "last"
)

// PegPriceType selects the reference price a pegged order tracks.
type PegPriceType string

const (
	PegMid                PegPriceType = "Mid"
	PegOracle             PegPriceType = "Oracle"
	PegLast               PegPriceType = "Last"
	PegOpposite           PegPriceType = "Opposite"
	PegOracleWithFallback PegPriceType = "OracleWithFallback"
)

// Order is the high-level order model. Prices and sizes are floats; the
// decimal-string rendering the exchange requires happens in Encode. Treat
// values as immutable: build a new Order instead of mutating one in flight.
type Order struct {
	Coin       string
	IsBuy      bool
	Size       float64
	LimitPrice float64

	Type       Type // empty means TypeLimit
	ReduceOnly bool

	// ClientOrderID is the optional caller-assigned id (cloid).
	ClientOrderID string

	// Pegged order fields, unset unless the order is pegged.
	PegOffsetValue *float64
	PegPriceType   PegPriceType

	// Trigger order fields. TriggerCondition and TriggerPrice are required
	// when IsTrigger is set.
	IsTrigger        bool
	TriggerCondition TriggerCondition
	TriggerPrice     *float64
}

// Float returns a pointer to v, for the optional price fields.
func Float(v float64) *float64 { return &v }
