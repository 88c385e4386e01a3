package types

// oracle module event types
const (
	EventTypeOrderAdded          = "oracle_order_added"
	EventTypeColdStartExited     = "oracle_cold_start_exited"
	EventTypeColdStartReset      = "oracle_cold_start_reset"
	EventTypeExchangeRateUpdated = "oracle_exchange_rate_updated"

	AttributeKeyVenue          = "venue"
	AttributeKeyPrice          = "price"
	AttributeKeyQty            = "qty"
	AttributeKeyReferencePrice = "reference_price"
	AttributeKeyRate           = "rate"
	AttributeKeyHeight         = "height"
	AttributeKeyReason         = "reason"
)
