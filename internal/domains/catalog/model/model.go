package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	TableLocations = "locations"
	TableServices  = "services"
	TablePackages  = "packages"

	EntityLocation = "location"
	EntityService  = "service"
	EntityPackage  = "package"

	FieldID       = "id"
	FieldName     = "name"
	FieldAddress  = "address"
	FieldSlug     = "slug"
	FieldDuration = "duration"
	FieldPrice    = "price"
	FieldCategory = "category"

	CategoryPackage = "package"
)

var ErrInvalidKey = errors.New("invalid item key")

type Location struct {
	ID      int64  `db:"id"      json:"id"`
	Name    string `db:"name"    json:"name"`
	Address string `db:"address" json:"address"`
}

// Service is a single treatment. Duration reads like "60 min" and Price like "9,90€".
type Service struct {
	ID       int64  `db:"id"       json:"id"`
	Name     string `db:"name"     json:"name"`
	Slug     string `db:"slug"     json:"slug"`
	Duration string `db:"duration" json:"duration"`
	Price    string `db:"price"    json:"price"`
	Category string `db:"category" json:"category"`
}

// Package bundles several treatments under one price.
type Package struct {
	ID          int64  `db:"id"          json:"id"`
	Name        string `db:"name"        json:"name"`
	Description string `db:"description" json:"description"`
	Duration    string `db:"duration"    json:"duration"`
	Price       string `db:"price"       json:"price"`
}

type ItemKind string

const (
	KindService ItemKind = "service"
	KindPackage ItemKind = "package"
)

// Item is the shape the cart and the booking wizard work with, whatever the catalog entry is.
type Item struct {
	Kind     ItemKind `json:"kind"`
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Duration string   `json:"duration"`
	Price    string   `json:"price"`
	Category string   `json:"category"`
}

// Key identifies the item across kinds, e.g. "service:5".
func (i Item) Key() string {
	return BuildKey(i.Kind, i.ID)
}

func (s Service) Item() Item {
	return Item{
		Kind:     KindService,
		ID:       s.ID,
		Name:     s.Name,
		Duration: s.Duration,
		Price:    s.Price,
		Category: s.Category,
	}
}

func (p Package) Item() Item {
	return Item{
		Kind:     KindPackage,
		ID:       p.ID,
		Name:     p.Name,
		Duration: p.Duration,
		Price:    p.Price,
		Category: CategoryPackage,
	}
}

func BuildKey(kind ItemKind, id int64) string {
	return fmt.Sprintf("%s:%d", kind, id)
}

func ParseKey(key string) (ItemKind, int64, error) {
	kind, rawID, found := strings.Cut(key, ":")
	if !found {
		return "", 0, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}

	switch ItemKind(kind) {
	case KindService, KindPackage:
	default:
		return "", 0, fmt.Errorf("%w: unknown kind %q", ErrInvalidKey, kind)
	}

	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || id <= 0 {
		return "", 0, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}

	return ItemKind(kind), id, nil
}
