package pricing

import "go-tea-store/internal/models"

// UnitPrice resolves the per-unit price of a product for the acting role.
// Approved distributors buy at the wholesale price, everyone else pays MRP.
func UnitPrice(p models.Product, role models.Role) float64 {
	return resolve(p.MRP, p.DistributorPrice, role)
}

// LinePrice does the same for an order line snapshot, so pricing stays
// correct even after the catalog entry changes or disappears.
func LinePrice(item models.CartItem, role models.Role) float64 {
	return resolve(item.MRP, item.DistributorPrice, role)
}

// LinePriceForType prices a stored order line by the order's RETAIL/WHOLESALE
// type, which froze the purchaser's role at order time.
func LinePriceForType(item models.CartItem, t models.OrderType) float64 {
	if t == models.OrderWholesale {
		return item.DistributorPrice
	}
	return item.MRP
}

func resolve(mrp, distributorPrice float64, role models.Role) float64 {
	if role == models.RoleDistributor {
		return distributorPrice
	}
	return mrp
}
