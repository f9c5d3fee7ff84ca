package shared

import (
	"context"
	"fmt"
	"salon/shared/cache"
	"salon/shared/constant"
	"salon/shared/dto"
	"salon/shared/failure"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// BuildCacheKey joins the prefix and every part with ':'.
func BuildCacheKey(prefix string, parts ...any) string {
	if len(parts) == 0 {
		return prefix
	}

	keys := make([]string, 0, len(parts)+1)
	keys = append(keys, prefix)

	for _, part := range parts {
		keys = append(keys, fmt.Sprint(part))
	}

	return strings.Join(keys, ":")
}

// InvalidateCaches removes every key that starts with prefix. Failures are only logged.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}

func ConvertStringToInt64(value string) (int64, error) {
	res, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to convert %q to int64: %w", value, err)
	}

	return res, nil
}

func FilterByField(field string, value any, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    field,
				Value:    value,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// VisitorID returns the visitor set on ctx by the visitor token middleware.
func VisitorID(ctx context.Context) (string, error) {
	visitorID, ok := ctx.Value(constant.ContextKeyVisitorID).(string)
	if !ok || visitorID == "" {
		return "", failure.Unauthorized("visitor token is required") //nolint:wrapcheck
	}

	return visitorID, nil
}
