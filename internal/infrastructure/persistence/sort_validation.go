package persistence

import "strings"

// RecipeSortFields are the columns recipe listings may be ordered by.
// Anything else falls back to the caller's default.
var RecipeSortFields = map[string]bool{
	"id":                   true,
	"created_at":           true,
	"updated_at":           true,
	"title":                true,
	"category":             true,
	"cook_time":            true,
	"servings":             true,
	"calories_per_serving": true,
}

// ValidateSortField returns sortField when it is on the allow list,
// otherwise defaultField. Sort fields are interpolated into ORDER BY and
// must never come from the request unchecked.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed != "" && allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// ValidateSortOrder normalizes the direction to ASC or DESC, defaulting
// to DESC.
func ValidateSortOrder(orderDir string) string {
	if strings.EqualFold(strings.TrimSpace(orderDir), "asc") {
		return "ASC"
	}
	return "DESC"
}
