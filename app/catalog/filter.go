package catalog

import (
	"strings"

	"github.com/acaihub/delivery-catalog/models"
)

// Query selects a view of the catalog. Text matches name or description
// case-insensitively; Category narrows to one category unless it is empty
// or the "all" sentinel. Both predicates combine with AND.
type Query struct {
	Text     string
	Category string
}

// Filter returns the products matching the query. It is a view, never a
// mutation: an empty result is valid and the caller distinguishes it from
// "still loading" via SyncState.
func Filter(products []models.Product, q Query) []models.Product {
	text := strings.ToLower(strings.TrimSpace(q.Text))
	byCategory := q.Category != "" && q.Category != models.CategoryAll

	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if text != "" &&
			!strings.Contains(strings.ToLower(p.Name), text) &&
			!strings.Contains(strings.ToLower(p.Description), text) {
			continue
		}
		if byCategory && p.Category != q.Category {
			continue
		}
		out = append(out, p)
	}
	return out
}
