// Package pricing holds the pure share-math used by the ledger engine.
// Every function here is total and side-effect-free.
package pricing

// SharesFromCapital converts founding capital into an initial share
// count: one share per capitalPerShare currency units, remainder ignored.
func SharesFromCapital(capital, capitalPerShare int64) int64 {
	if capitalPerShare <= 0 {
		return 0
	}

	return capital / capitalPerShare
}

// MarketCap is the current price times every share ever issued.
func MarketCap(price, issuedShares int64) int64 {
	return price * issuedShares
}

// HourlyDividendPool is the fraction of market cap paid out to holders
// each hour. The fraction is policy-configurable.
func HourlyDividendPool(marketCap int64, fraction float64) int64 {
	return int64(float64(marketCap) * fraction)
}

// DividendPerShare splits a dividend pool across issued shares, in
// milli-units per share. Milli-unit precision keeps low-value shares from
// rounding to a zero dividend.
func DividendPerShare(pool, issuedShares int64) int64 {
	if issuedShares <= 0 {
		return 0
	}

	return pool * 1000 / issuedShares
}

// OwnershipDriftBps measures how much a holder of exactly one share is
// diluted by a mint event, in basis points, rounded to nearest:
// minted / (before + minted) * 10000.
func OwnershipDriftBps(issuedSharesBefore, mintedShares int64) int64 {
	total := issuedSharesBefore + mintedShares
	if total <= 0 {
		return 0
	}

	return (mintedShares*10000 + total/2) / total
}
