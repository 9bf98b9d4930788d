package postgre

import (
	"fmt"
	"strings"

	repo "chat-commerce/internal/order/repository"
)

// buildGetOneQuery builds WHERE clause + args for GetOneOrder.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneOrderOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", idx))
		args = append(args, opt.UserID)
		idx++
	}
	if opt.GatewayOrderID != "" {
		conditions = append(conditions, fmt.Sprintf("gateway_order_id = $%d", idx))
		args = append(args, opt.GatewayOrderID)
		idx++
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}
