package models

// Spending categories produced by the classifier. Labels double as display names.
const (
	CategoryFoodDining     = "Food & Dining"
	CategoryTransportation = "Transportation"
	CategoryShopping       = "Shopping"
	CategoryEntertainment  = "Entertainment"
	CategoryHealthcare     = "Healthcare"
	CategoryUtilities      = "Utilities"
	CategoryHousing        = "Housing"
	CategoryIncome         = "Income"
	CategoryOther          = "Other"
)

// Chart colors for every category label
const (
	ColorFoodDining     = "#FF6B6B"
	ColorTransportation = "#4ECDC4"
	ColorShopping       = "#45B7D1"
	ColorEntertainment  = "#96CEB4"
	ColorHealthcare     = "#FFEEAD"
	ColorUtilities      = "#D4A5A5"
	ColorHousing        = "#9B597B"
	ColorIncome         = "#4CAF50"
	ColorOther          = "#FFD93D"
)

var categoryColors = map[string]string{
	CategoryFoodDining:     ColorFoodDining,
	CategoryTransportation: ColorTransportation,
	CategoryShopping:       ColorShopping,
	CategoryEntertainment:  ColorEntertainment,
	CategoryHealthcare:     ColorHealthcare,
	CategoryUtilities:      ColorUtilities,
	CategoryHousing:        ColorHousing,
	CategoryIncome:         ColorIncome,
	CategoryOther:          ColorOther,
}

// AllCategories returns every label the classifier can emit, in chart order
func AllCategories() []string {
	return []string{
		CategoryFoodDining,
		CategoryTransportation,
		CategoryShopping,
		CategoryEntertainment,
		CategoryHealthcare,
		CategoryUtilities,
		CategoryHousing,
		CategoryIncome,
		CategoryOther,
	}
}

// BudgetableCategories returns the labels a user can attach a budget to.
// Income is a classifier output only and is never budgeted.
func BudgetableCategories() []string {
	return []string{
		CategoryFoodDining,
		CategoryTransportation,
		CategoryShopping,
		CategoryEntertainment,
		CategoryHealthcare,
		CategoryUtilities,
		CategoryHousing,
		CategoryOther,
	}
}

// IsValidCategory checks if a category string is a known classifier label
func IsValidCategory(category string) bool {
	_, ok := categoryColors[category]
	return ok
}

// IsBudgetableCategory checks if a budget may be configured for the label
func IsBudgetableCategory(category string) bool {
	return IsValidCategory(category) && category != CategoryIncome
}

// CategoryColor returns the chart color for a label, falling back to the Other color
func CategoryColor(category string) string {
	if color, ok := categoryColors[category]; ok {
		return color
	}
	return ColorOther
}

// ClassifiedTransaction pairs a transaction with the label the classifier assigned to it
type ClassifiedTransaction struct {
	Transaction Transaction `json:"transaction"`
	Category    string      `json:"category"`
}
