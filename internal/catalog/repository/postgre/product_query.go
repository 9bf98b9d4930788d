package postgre

import (
	"fmt"
	"strings"

	repo "chat-commerce/internal/catalog/repository"
)

// buildGetOneQuery builds WHERE clause + args for GetOneProduct.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneProductOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("p.id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.Slug != "" {
		conditions = append(conditions, fmt.Sprintf("p.slug = $%d", idx))
		args = append(args, opt.Slug)
		idx++
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the WHERE + ORDER + LIMIT clause for ListProducts.
// Price bounds apply to the effective price (discount price when set).
func (r *implRepository) buildListQuery(opt repo.ListProductsOptions) (string, []any) {
	conditions := []string{"p.is_active = TRUE"}
	var args []any
	idx := 1

	if opt.Query != "" {
		conditions = append(conditions, fmt.Sprintf("(p.name ILIKE $%d OR p.description ILIKE $%d)", idx, idx))
		args = append(args, "%"+escapeLike(opt.Query)+"%")
		idx++
	}
	if opt.Category != "" {
		conditions = append(conditions, fmt.Sprintf("(LOWER(c.slug) = LOWER($%d) OR LOWER(c.name) = LOWER($%d))", idx, idx))
		args = append(args, opt.Category)
		idx++
	}
	if opt.MinPrice != nil {
		conditions = append(conditions, fmt.Sprintf("COALESCE(p.discount_price, p.price) >= $%d", idx))
		args = append(args, *opt.MinPrice)
		idx++
	}
	if opt.MaxPrice != nil {
		conditions = append(conditions, fmt.Sprintf("COALESCE(p.discount_price, p.price) <= $%d", idx))
		args = append(args, *opt.MaxPrice)
		idx++
	}

	parts := []string{
		"WHERE " + strings.Join(conditions, " AND "),
		"ORDER BY p.created_at DESC",
	}
	if opt.Limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
		args = append(args, opt.Limit)
	}

	return strings.Join(parts, " "), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
