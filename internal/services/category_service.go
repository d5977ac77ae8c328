package services

import (
	"strings"

	"budget-dashboard/internal/models"
)

// CategoryRule maps a category label to the keywords that select it
type CategoryRule struct {
	Category string   `json:"category"`
	Keywords []string `json:"keywords"`
}

// Matches reports whether any keyword occurs in the description, ignoring case
func (r CategoryRule) Matches(description string) bool {
	normalized := strings.ToLower(description)
	for _, keyword := range r.Keywords {
		if strings.Contains(normalized, keyword) {
			return true
		}
	}
	return false
}

type categoryService struct {
	rules []CategoryRule
}

// NewCategoryService creates a new CategoryServiceInterface instance
func NewCategoryService() CategoryServiceInterface {
	return &categoryService{
		rules: initCategoryRules(),
	}
}

// Classify walks the rule table top to bottom; the first match wins.
// An empty description matches nothing and falls through to Other.
func (s *categoryService) Classify(description string) string {
	if description == "" {
		return models.CategoryOther
	}

	for _, rule := range s.rules {
		if rule.Matches(description) {
			return rule.Category
		}
	}

	return models.CategoryOther
}

// BatchClassify classifies multiple transactions
func (s *categoryService) BatchClassify(transactions []models.Transaction) []models.ClassifiedTransaction {
	results := make([]models.ClassifiedTransaction, 0, len(transactions))

	for _, txn := range transactions {
		results = append(results, models.ClassifiedTransaction{
			Transaction: txn,
			Category:    s.Classify(txn.Description),
		})
	}

	return results
}

func (s *categoryService) Rules() []CategoryRule {
	rules := make([]CategoryRule, len(s.rules))
	for i, rule := range s.rules {
		rules[i] = CategoryRule{
			Category: rule.Category,
			Keywords: append([]string(nil), rule.Keywords...),
		}
	}
	return rules
}

// initCategoryRules builds the ordered rule table. Order matters: "gas bill"
// is claimed by Transportation's "gas" before Utilities is consulted.
// Keywords must be lower case.
func initCategoryRules() []CategoryRule {
	return []CategoryRule{
		{
			Category: models.CategoryFoodDining,
			Keywords: []string{"food", "restaurant", "grocery", "meal", "cafe", "dining", "supermarket", "bakery", "snack", "fast food", "lunch", "dinner"},
		},
		{
			Category: models.CategoryTransportation,
			Keywords: []string{"gas", "transport", "uber", "taxi", "bus", "train", "subway", "metro", "cab", "fuel", "ride", "commute", "car rental"},
		},
		{
			Category: models.CategoryShopping,
			Keywords: []string{"shopping", "amazon", "mall", "store", "boutique", "retail", "clothing", "fashion", "accessories", "electronics"},
		},
		{
			Category: models.CategoryEntertainment,
			Keywords: []string{"movie", "entertainment", "concert", "theater", "festival", "music", "game", "event", "cinema", "show"},
		},
		{
			Category: models.CategoryHealthcare,
			Keywords: []string{"doctor", "medical", "hospital", "clinic", "pharmacy", "medication", "dentist", "treatment", "healthcare", "prescription"},
		},
		{
			Category: models.CategoryUtilities,
			Keywords: []string{"electricity", "water", "bill", "internet", "cable", "wifi", "phone", "utility", "gas bill", "subscription"},
		},
		{
			Category: models.CategoryHousing,
			Keywords: []string{"rent", "mortgage", "housing", "apartment", "lease", "home loan", "property tax", "real estate"},
		},
		{
			Category: models.CategoryIncome,
			Keywords: []string{"salary", "income", "paycheck", "wages", "bonus", "commission", "freelance", "earnings", "profit"},
		},
	}
}
