package model

import (
	catalogModel "salon/internal/domains/catalog/model"
	"time"

	"github.com/shopspring/decimal"
)

const (
	CacheKeyPrefix = "cart"
)

type AddResult string

const (
	Added     AddResult = "added"
	Duplicate AddResult = "duplicate"
)

// Entry is a catalog item snapshot taken when the visitor added it.
type Entry struct {
	catalogModel.Item
	AddedAt time.Time `json:"added_at"`
}

type Totals struct {
	DurationMinutes int
	Price           decimal.Decimal
	PriceLabel      string
}

func Items(entries []Entry) []catalogModel.Item {
	items := make([]catalogModel.Item, len(entries))
	for i, entry := range entries {
		items[i] = entry.Item
	}

	return items
}
