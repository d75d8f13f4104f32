package ledger

import (
	"os"
	"strconv"
)

// Mint policy modes. The daily cap on newly issued shares is enforced
// only under the event-conditional mode.
const (
	MintModeEventConditional = "event_conditional"
	MintModeUnrestricted     = "unrestricted"
)

// Policy carries the engine's tunable knobs. Loaded once at process
// start; operations read it but never mutate it.
type Policy struct {
	// MintMode selects whether the daily mint cap applies.
	MintMode string
	// DailyMintCap is the maximum number of shares a company may mint
	// per local day under the event-conditional mode.
	DailyMintCap int64
	// DividendPoolFraction of market cap paid out per hour.
	DividendPoolFraction float64
	// CapitalPerShare currency units convert to one share at founding.
	CapitalPerShare int64
	// InitialSharePrice of a newly founded company's stock.
	InitialSharePrice int64
}

func DefaultPolicy() Policy {
	return Policy{
		MintMode:             MintModeEventConditional,
		DailyMintCap:         1000,
		DividendPoolFraction: 0.001,
		CapitalPerShare:      100,
		InitialSharePrice:    100,
	}
}

// PolicyFromEnv builds a Policy from environment variables, falling back
// to defaults for anything unset or unparsable.
func PolicyFromEnv() Policy {
	policy := DefaultPolicy()

	if v := os.Getenv("MINT_MODE"); v != "" {
		policy.MintMode = v
	}
	if v, err := strconv.ParseInt(os.Getenv("DAILY_MINT_CAP"), 10, 64); err == nil && v > 0 {
		policy.DailyMintCap = v
	}
	if v, err := strconv.ParseFloat(os.Getenv("DIVIDEND_POOL_FRACTION"), 64); err == nil && v > 0 {
		policy.DividendPoolFraction = v
	}
	if v, err := strconv.ParseInt(os.Getenv("CAPITAL_PER_SHARE"), 10, 64); err == nil && v > 0 {
		policy.CapitalPerShare = v
	}
	if v, err := strconv.ParseInt(os.Getenv("INITIAL_SHARE_PRICE"), 10, 64); err == nil && v > 0 {
		policy.InitialSharePrice = v
	}

	return policy
}
