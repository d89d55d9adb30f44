package types

const (
	// ModuleName defines the module name
	ModuleName = "feed"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName

	// ReservePoolName is the module account holding rewards that have been
	// reserved for oracle payouts. The main module account holds the free
	// pool that rewards are reserved from.
	ReservePoolName = ModuleName + "_reserve"
)
