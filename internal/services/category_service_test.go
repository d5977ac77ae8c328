package services

import (
	"strings"
	"testing"
	"time"

	"budget-dashboard/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type CategoryServiceTestSuite struct {
	suite.Suite
	service *categoryService
}

func TestCategoryServiceSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}

func (s *CategoryServiceTestSuite) SetupTest() {
	s.service = NewCategoryService().(*categoryService)
}

func (s *CategoryServiceTestSuite) TestRules_PriorityOrder() {
	rules := s.service.Rules()

	expected := []string{
		models.CategoryFoodDining,
		models.CategoryTransportation,
		models.CategoryShopping,
		models.CategoryEntertainment,
		models.CategoryHealthcare,
		models.CategoryUtilities,
		models.CategoryHousing,
		models.CategoryIncome,
	}

	s.Require().Len(rules, len(expected))
	for i, rule := range rules {
		s.Equal(expected[i], rule.Category)
		s.NotEmpty(rule.Keywords)
	}
}

func (s *CategoryServiceTestSuite) TestRules_ReturnsCopy() {
	rules := s.service.Rules()
	rules[0].Category = "Tampered"
	rules[0].Keywords[0] = "tampered"

	fresh := s.service.Rules()
	s.Equal(models.CategoryFoodDining, fresh[0].Category)
	s.Equal("food", fresh[0].Keywords[0])
}

func (s *CategoryServiceTestSuite) TestClassify_KnownDescriptions() {
	testCases := []struct {
		description string
		expected    string
	}{
		{"Whole Foods grocery", models.CategoryFoodDining},
		{"restaurant dinner", models.CategoryFoodDining},
		{"Morning cafe latte", models.CategoryFoodDining},
		{"Uber ride", models.CategoryTransportation},
		{"Subway card", models.CategoryTransportation},
		{"Car rental at airport", models.CategoryTransportation},
		{"Amazon order", models.CategoryShopping},
		{"Electronics outlet", models.CategoryShopping},
		{"Cinema tickets", models.CategoryEntertainment},
		{"Music festival", models.CategoryEntertainment},
		{"Dentist visit", models.CategoryHealthcare},
		{"Prescription refill", models.CategoryHealthcare},
		{"Electricity", models.CategoryUtilities},
		{"Netflix subscription", models.CategoryUtilities},
		{"Monthly rent", models.CategoryHousing},
		{"Property tax", models.CategoryHousing},
		{"Salary deposit", models.CategoryIncome},
		{"Freelance earnings", models.CategoryIncome},
		{"Charity donation", models.CategoryOther},
		{"zzz", models.CategoryOther},
	}

	for _, tc := range testCases {
		s.Run(tc.description, func() {
			s.Equal(tc.expected, s.service.Classify(tc.description))
		})
	}
}

func (s *CategoryServiceTestSuite) TestClassify_EveryKeywordSelectsItsRuleOrAnEarlierOne() {
	rules := s.service.Rules()

	for i, rule := range rules {
		for _, keyword := range rule.Keywords {
			got := s.service.Classify(keyword)

			// a keyword can be shadowed by an earlier rule, never by a later one
			idx := -1
			for j, r := range rules {
				if r.Category == got {
					idx = j
					break
				}
			}
			s.GreaterOrEqual(idx, 0, "keyword %q classified outside the rule table: %s", keyword, got)
			s.LessOrEqual(idx, i, "keyword %q of %s was claimed by later rule %s", keyword, rule.Category, got)
		}
	}
}

func (s *CategoryServiceTestSuite) TestClassify_FirstMatchWins() {
	testCases := []struct {
		name        string
		description string
		expected    string
	}{
		{"gas bill is claimed by transportation", "Gas bill", models.CategoryTransportation},
		{"food beats transport", "Uber Eats food delivery", models.CategoryFoodDining},
		{"shopping beats entertainment", "Game store", models.CategoryShopping},
		{"utilities beat housing", "Apartment water bill", models.CategoryUtilities},
		{"housing beats income", "Rent paid from salary", models.CategoryHousing},
		{"substring not whole word", "Business lunch", models.CategoryFoodDining},
		{"substring inside another word", "Business class upgrade", models.CategoryTransportation},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, s.service.Classify(tc.description))
		})
	}
}

func (s *CategoryServiceTestSuite) TestClassify_CaseInsensitive() {
	s.Equal(models.CategoryFoodDining, s.service.Classify("GROCERY"))
	s.Equal(models.CategoryFoodDining, s.service.Classify("gRoCeRy"))
	s.Equal(models.CategoryHousing, s.service.Classify("REAL ESTATE fees"))
}

func (s *CategoryServiceTestSuite) TestClassify_EmptyAndWhitespace() {
	s.Equal(models.CategoryOther, s.service.Classify(""))
	s.Equal(models.CategoryOther, s.service.Classify("   "))
	s.Equal(models.CategoryOther, s.service.Classify("\t\n"))
}

func (s *CategoryServiceTestSuite) TestClassify_DeterministicAndTotal() {
	for i := 0; i < 200; i++ {
		description := gofakeit.Sentence(6)

		first := s.service.Classify(description)
		second := s.service.Classify(description)

		s.Equal(first, second, "classification of %q changed between calls", description)
		s.True(models.IsValidCategory(first), "classification of %q returned unknown label %q", description, first)
	}
}

func (s *CategoryServiceTestSuite) TestClassify_UnicodeInput() {
	s.Equal(models.CategoryFoodDining, s.service.Classify("Café food"))
	s.Equal(models.CategoryOther, s.service.Classify("日本語"))
	s.Equal(models.CategoryOther, s.service.Classify(strings.Repeat("x", 10000)))
}

func (s *CategoryServiceTestSuite) TestBatchClassify() {
	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	transactions := []models.Transaction{
		{Amount: decimal.NewFromInt(-45), Description: "Whole Foods grocery", Date: date},
		{Amount: decimal.NewFromInt(3000), Description: "Monthly Salary", Date: date},
		{Amount: decimal.Zero, Description: "Adjustment", Date: date},
	}

	results := s.service.BatchClassify(transactions)

	s.Require().Len(results, 3)
	s.Equal(models.CategoryFoodDining, results[0].Category)
	s.Equal(models.CategoryIncome, results[1].Category)
	s.Equal(models.CategoryOther, results[2].Category)
	s.Equal("Monthly Salary", results[1].Transaction.Description)
}

func (s *CategoryServiceTestSuite) TestBatchClassify_Empty() {
	results := s.service.BatchClassify(nil)

	s.NotNil(results)
	s.Empty(results)
}
