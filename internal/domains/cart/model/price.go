package model

import (
	catalogModel "salon/internal/domains/catalog/model"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var (
	durationPattern = regexp.MustCompile(`(?i)(\d+)\s*min`)
	priceStrip      = regexp.MustCompile(`[^0-9,.\-]`)
)

// ParseDurationMinutes reads the integer in front of "min", e.g. "45 min" or "45min".
func ParseDurationMinutes(duration string) (int, bool) {
	match := durationPattern.FindStringSubmatch(duration)
	if match == nil {
		return 0, false
	}

	minutes, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}

	return minutes, true
}

// ParsePrice reads a locale formatted amount such as "9,90€" or "€ 1.250,00".
// A comma is the decimal separator whenever one is present.
func ParsePrice(price string) (decimal.Decimal, bool) {
	raw := priceStrip.ReplaceAllString(price, "")
	if raw == "" {
		return decimal.Zero, false
	}

	if strings.Contains(raw, ",") {
		raw = strings.ReplaceAll(raw, ".", "")
		raw = strings.ReplaceAll(raw, ",", ".")
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false
	}

	return amount, true
}

// FormatPrice renders the amount with two decimals, a comma separator and the currency symbol.
func FormatPrice(amount decimal.Decimal, currency string) string {
	return strings.Replace(amount.StringFixed(2), ".", ",", 1) + currency //nolint:mnd
}

// Sum adds up durations and prices. Values that cannot be read count as zero.
func Sum(items []catalogModel.Item, currency string) Totals {
	totals := Totals{Price: decimal.Zero}

	for _, item := range items {
		minutes, ok := ParseDurationMinutes(item.Duration)
		if !ok {
			log.Warn().Str("key", item.Key()).Str("duration", item.Duration).Msg("unreadable duration counted as zero")
		}

		price, ok := ParsePrice(item.Price)
		if !ok {
			log.Warn().Str("key", item.Key()).Str("price", item.Price).Msg("unreadable price counted as zero")
		}

		totals.DurationMinutes += minutes
		totals.Price = totals.Price.Add(price)
	}

	totals.PriceLabel = FormatPrice(totals.Price, currency)

	return totals
}
