package cleaning

// Canonical column names, valid after Clean
const (
	ColProductType         = "product_type"
	ColSKU                 = "sku"
	ColPrice               = "price"
	ColAvailability        = "availability"
	ColProductsSold        = "number_of_products_sold"
	ColRevenue             = "revenue_generated"
	ColStockLevels         = "stock_levels"
	ColLeadTimes           = "lead_times"
	ColOrderQuantities     = "order_quantities"
	ColShippingTimes       = "shipping_times"
	ColShippingCarriers    = "shipping_carriers"
	ColShippingCosts       = "shipping_costs"
	ColManufacturingCosts  = "manufacturing_costs"
	ColDefectRates         = "defect_rates"
	ColTransportationModes = "transportation_modes"
)

// numericColumns are coerced to numbers; failures become missing
var numericColumns = map[string]bool{
	ColPrice:              true,
	ColProductsSold:       true,
	ColRevenue:            true,
	ColStockLevels:        true,
	ColLeadTimes:          true,
	ColOrderQuantities:    true,
	ColShippingTimes:      true,
	ColShippingCosts:      true,
	ColManufacturingCosts: true,
	ColDefectRates:        true,
}

// currencyColumns have currency symbols and thousands separators stripped
// before coercion
var currencyColumns = map[string]bool{
	ColPrice:              true,
	ColRevenue:            true,
	ColShippingCosts:      true,
	ColManufacturingCosts: true,
}

// IsNumeric reports whether col is coerced to a number by Clean
func IsNumeric(col string) bool { return numericColumns[col] }
