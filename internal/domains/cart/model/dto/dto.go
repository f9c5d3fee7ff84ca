package dto

import (
	"salon/internal/domains/cart/model"
	catalogDto "salon/internal/domains/catalog/model/dto"
	"time"
)

type AddItemRequest struct {
	Key string `json:"key" validate:"required,max=64"`
}

type AddItemResponse struct {
	Key    string `json:"key"`
	Result string `json:"result"`
}

type EntryResponse struct {
	catalogDto.ItemResponse
	AddedAt time.Time `json:"added_at"`
}

type TotalsResponse struct {
	DurationMinutes int    `json:"duration_minutes"`
	Price           string `json:"price"`
	PriceLabel      string `json:"price_label"`
}

type CartResponse struct {
	Items  []EntryResponse `json:"items"`
	Totals TotalsResponse  `json:"totals"`
}

func (r *TotalsResponse) FromModel(totals model.Totals) {
	r.DurationMinutes = totals.DurationMinutes
	r.Price = totals.Price.StringFixed(2) //nolint:mnd
	r.PriceLabel = totals.PriceLabel
}

func (r *CartResponse) FromModel(entries []model.Entry, totals model.Totals) {
	r.Items = make([]EntryResponse, len(entries))
	for i, entry := range entries {
		r.Items[i].FromItem(entry.Item)
		r.Items[i].AddedAt = entry.AddedAt
	}

	r.Totals.FromModel(totals)
}
