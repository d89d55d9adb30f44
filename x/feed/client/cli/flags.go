package cli

// Flag constants for feed CLI commands
const (
	// Feed creation flags
	FlagTimeout       = "timeout"
	FlagDecimals      = "decimals"
	FlagDescription   = "description"
	FlagRestartDelay  = "restart-delay"
	FlagPruningWindow = "pruning-window"
	FlagMaxDebt       = "max-debt"
	FlagOracles       = "oracles"
)
