package persistence

import (
	"strings"

	"github.com/acme/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "ASC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "DESC" {
		return "DESC"
	}
	return "ASC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// ContractSortFields contains allowed sort fields for contracts
var ContractSortFields = map[string]bool{
	"code":                 true,
	"instantiation_moment": true,
	"provider_name":        true,
	"created_at":           true,
}

// TrainingModuleSortFields contains allowed sort fields for training modules
var TrainingModuleSortFields = map[string]bool{
	"code":             true,
	"creation_moment":  true,
	"difficulty_level": true,
	"created_at":       true,
}

// SponsorshipSortFields contains allowed sort fields for sponsorships
var SponsorshipSortFields = map[string]bool{
	"code":       true,
	"moment":     true,
	"start_date": true,
	"created_at": true,
}

// applyListFilter adds the search, ordering and paging of a list-mine query.
// searchColumns are matched case-insensitively with LIKE so the same query
// runs on postgres and sqlite. Code is the tiebreaker for stable paging.
func applyListFilter(query *gorm.DB, filter shared.Filter, allowed map[string]bool, searchColumns ...string) *gorm.DB {
	query = applySearch(query, filter.Search, searchColumns...)
	field := ValidateSortField(filter.OrderBy, allowed, "code")
	query = query.Order(field + " " + ValidateSortOrder(filter.OrderDir))
	if field != "code" {
		query = query.Order("code ASC")
	}
	if filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}
	return query
}

func applySearch(query *gorm.DB, search string, columns ...string) *gorm.DB {
	search = strings.TrimSpace(search)
	if search == "" || len(columns) == 0 {
		return query
	}
	pattern := "%" + strings.ToLower(search) + "%"
	clauses := make([]string, len(columns))
	args := make([]any, len(columns))
	for i, col := range columns {
		clauses[i] = "LOWER(" + col + ") LIKE ?"
		args[i] = pattern
	}
	return query.Where("("+strings.Join(clauses, " OR ")+")", args...)
}
