package kpi

import "strings"

// Category is the closed set of product categories used by the fixed
// revenue breakdown.
type Category int

const (
	CategoryUnknown Category = iota
	CategorySkincare
	CategoryHaircare
	CategoryCosmetics
	CategoryFragrance
	CategoryOther
)

// Categories lists the known categories in breakdown order
var Categories = []Category{
	CategorySkincare,
	CategoryHaircare,
	CategoryCosmetics,
	CategoryFragrance,
	CategoryOther,
}

var categoryNames = map[Category]string{
	CategoryUnknown:   "unknown",
	CategorySkincare:  "skincare",
	CategoryHaircare:  "haircare",
	CategoryCosmetics: "cosmetics",
	CategoryFragrance: "fragrance",
	CategoryOther:     "other",
}

// ParseCategory maps a product type to its category. Matching ignores case,
// spaces and hyphens; "other" and "others" both map to CategoryOther.
func ParseCategory(productType string) Category {
	key := strings.ToLower(productType)
	key = strings.NewReplacer(" ", "", "-", "", "_", "").Replace(key)

	switch key {
	case "skincare":
		return CategorySkincare
	case "haircare":
		return CategoryHaircare
	case "cosmetics":
		return CategoryCosmetics
	case "fragrance", "fragrances":
		return CategoryFragrance
	case "other", "others":
		return CategoryOther
	default:
		return CategoryUnknown
	}
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return categoryNames[CategoryUnknown]
}
