package permissions

import (
	_ "embed"
	"encoding/json"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

// Permission describes one route. Public routes are served without a visitor token.
type Permission struct {
	Path   string `json:"path"`
	Method string `json:"method"`
	Public bool   `json:"public"`
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	// Prefixes are path prefixes that are public for every method, e.g. the swagger UI.
	Prefixes []string `json:"prefixes"`
}

// FindPermissions looks up a route pattern as registered on the router, e.g. "/v1/cart/items/{key}".
func (r *PermissionData) FindPermissions(path, method string) Permission {
	idx := slices.IndexFunc(r.Endpoints, func(rp Permission) bool {
		return rp.Path == path && rp.Method == method
	})

	if idx == -1 {
		return Permission{Path: path, Method: method}
	}

	return r.Endpoints[idx]
}

func (r *PermissionData) IsPublic(path, method string) bool {
	if r.FindPermissions(path, method).Public {
		return true
	}

	return slices.ContainsFunc(r.Prefixes, func(prefix string) bool {
		return strings.HasPrefix(path, prefix)
	})
}

func Get() *PermissionData {
	var permissions PermissionData

	err := json.Unmarshal(permissionsData, &permissions)
	if err != nil {
		log.Err(err).Msg("Failed to decode embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Successfully loaded embedded permissions")

	return &permissions
}
