package gecko

import (
	"fmt"
	"strings"
)

// MarketOrder sorts /coins/markets results. The zero value leaves the
// ordering to the API (market_cap_desc).
type MarketOrder int

const (
	MarketCapDesc MarketOrder = iota + 1
	MarketCapAsc
	GeckoDesc
	GeckoAsc
	VolumeAsc
	VolumeDesc
	IDAsc
	IDDesc
)

var marketOrders = [...]string{
	MarketCapDesc: "market_cap_desc",
	MarketCapAsc:  "market_cap_asc",
	GeckoDesc:     "gecko_desc",
	GeckoAsc:      "gecko_asc",
	VolumeAsc:     "volume_asc",
	VolumeDesc:    "volume_desc",
	IDAsc:         "id_asc",
	IDDesc:        "id_desc",
}

// String returns the wire token, or "" for the zero value and values
// outside the table.
func (o MarketOrder) String() string {
	return token(marketOrders[:], int(o))
}

// ParseMarketOrder maps a wire token back to its MarketOrder.
func ParseMarketOrder(s string) (MarketOrder, error) {
	i, err := parse(marketOrders[:], s)
	return MarketOrder(i), err
}

// TrustOrder sorts /coins/{id}/tickers results.
type TrustOrder int

const (
	TrustScoreDesc TrustOrder = iota + 1
	TrustScoreAsc
	TrustVolumeDesc
)

var trustOrders = [...]string{
	TrustScoreDesc:  "trust_score_desc",
	TrustScoreAsc:   "trust_score_asc",
	TrustVolumeDesc: "volume_desc",
}

// String returns the wire token, or "" when unset or unknown.
func (o TrustOrder) String() string {
	return token(trustOrders[:], int(o))
}

// ParseTrustOrder maps a wire token back to its TrustOrder.
func ParseTrustOrder(s string) (TrustOrder, error) {
	i, err := parse(trustOrders[:], s)
	return TrustOrder(i), err
}

// PriceChange selects a price change percentage window for /coins/markets.
type PriceChange int

const (
	Hours1 PriceChange = iota + 1
	Hours24
	Days7
	Days14
	Days30
	Days200
	Years1
)

var priceChanges = [...]string{
	Hours1:  "1h",
	Hours24: "24h",
	Days7:   "7d",
	Days14:  "14d",
	Days30:  "30d",
	Days200: "200d",
	Years1:  "1y",
}

// String returns the wire token, or "" when unset or unknown.
func (p PriceChange) String() string {
	return token(priceChanges[:], int(p))
}

// ParsePriceChange maps a wire token back to its PriceChange.
func ParsePriceChange(s string) (PriceChange, error) {
	i, err := parse(priceChanges[:], s)
	return PriceChange(i), err
}

// PriceChanges is a list of windows rendered as one comma separated
// parameter. Unknown windows are skipped.
type PriceChanges []PriceChange

// Tokens returns the wire tokens in order.
func (ps PriceChanges) Tokens() []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		if s := p.String(); s != "" {
			out = append(out, s)
		}
	}

	return out
}

func token(table []string, i int) string {
	if i <= 0 || i >= len(table) {
		return ""
	}

	return table[i]
}

func parse(table []string, s string) (int, error) {
	for i, tok := range table {
		if tok != "" && strings.EqualFold(tok, s) {
			return i, nil
		}
	}

	return 0, fmt.Errorf("unknown token %q, want one of %s", s, strings.Join(table[1:], ", "))
}
