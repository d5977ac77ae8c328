package services

import (
	"time"

	"budget-dashboard/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

const incomeShare = 0.1

type transactionGenerator struct {
	merchantPool []models.MerchantInfo
	faker        *gofakeit.Faker
}

// NewTransactionGenerator creates a new transaction generator. A zero seed
// draws a random one.
func NewTransactionGenerator(seed uint64) TransactionGeneratorInterface {
	return &transactionGenerator{
		merchantPool: initializeMerchantPool(),
		faker:        gofakeit.New(seed),
	}
}

// initializeMerchantPool lists counterparties whose names carry a keyword of
// their category, so generated descriptions classify the same way every time
func initializeMerchantPool() []models.MerchantInfo {
	return []models.MerchantInfo{
		{Name: "Whole Foods grocery", Category: models.CategoryFoodDining},
		{Name: "Corner Bakery", Category: models.CategoryFoodDining},
		{Name: "Lunch at Chipotle restaurant", Category: models.CategoryFoodDining},
		{Name: "Starbucks cafe", Category: models.CategoryFoodDining},
		{Name: "Safeway supermarket", Category: models.CategoryFoodDining},
		{Name: "Team dinner", Category: models.CategoryFoodDining},

		{Name: "Uber trip", Category: models.CategoryTransportation},
		{Name: "Shell fuel", Category: models.CategoryTransportation},
		{Name: "Metro card top-up", Category: models.CategoryTransportation},
		{Name: "Yellow taxi", Category: models.CategoryTransportation},
		{Name: "Amtrak train ticket", Category: models.CategoryTransportation},

		{Name: "Amazon order", Category: models.CategoryShopping},
		{Name: "Best Buy electronics", Category: models.CategoryShopping},
		{Name: "Nordstrom clothing", Category: models.CategoryShopping},
		{Name: "Outlet mall", Category: models.CategoryShopping},

		{Name: "AMC movie tickets", Category: models.CategoryEntertainment},
		{Name: "Concert at the arena", Category: models.CategoryEntertainment},
		{Name: "Spotify music", Category: models.CategoryEntertainment},
		{Name: "Board game night", Category: models.CategoryEntertainment},

		{Name: "CVS pharmacy", Category: models.CategoryHealthcare},
		{Name: "Dentist checkup", Category: models.CategoryHealthcare},
		{Name: "Walk-in clinic", Category: models.CategoryHealthcare},

		{Name: "Electricity bill", Category: models.CategoryUtilities},
		{Name: "Comcast internet", Category: models.CategoryUtilities},
		{Name: "Water utility", Category: models.CategoryUtilities},
		{Name: "Verizon phone plan", Category: models.CategoryUtilities},

		{Name: "Apartment rent", Category: models.CategoryHousing},
		{Name: "Mortgage payment", Category: models.CategoryHousing},

		{Name: "Monthly Salary", Category: models.CategoryIncome},
		{Name: "Freelance invoice", Category: models.CategoryIncome},
		{Name: "Quarterly bonus", Category: models.CategoryIncome},

		{Name: "ATM withdrawal", Category: models.CategoryOther},
		{Name: "Charity donation", Category: models.CategoryOther},
		{Name: "Birthday present", Category: models.CategoryOther},
	}
}

// GetMerchantPool returns the merchant pool
func (g *transactionGenerator) GetMerchantPool() []models.MerchantInfo {
	return g.merchantPool
}

// SelectRandomMerchant selects a random merchant from the pool
func (g *transactionGenerator) SelectRandomMerchant() models.MerchantInfo {
	return g.merchantPool[g.faker.IntN(len(g.merchantPool))]
}

func (g *transactionGenerator) selectMerchant(income bool) models.MerchantInfo {
	for {
		merchant := g.SelectRandomMerchant()
		if (merchant.Category == models.CategoryIncome) == income {
			return merchant
		}
	}
}

// GenerateAmount generates a realistic magnitude for the category
func (g *transactionGenerator) GenerateAmount(category string) decimal.Decimal {
	minValue, maxValue := g.getAmountRange(category)
	return decimal.NewFromFloat(g.faker.Price(minValue, maxValue)).Round(2)
}

func (g *transactionGenerator) getAmountRange(category string) (float64, float64) {
	ranges := map[string][2]float64{
		models.CategoryFoodDining:     {8.00, 120.00},
		models.CategoryTransportation: {5.00, 80.00},
		models.CategoryShopping:       {15.00, 300.00},
		models.CategoryEntertainment:  {10.00, 90.00},
		models.CategoryHealthcare:     {20.00, 250.00},
		models.CategoryUtilities:      {30.00, 150.00},
		models.CategoryHousing:        {900.00, 1500.00},
		models.CategoryIncome:         {1500.00, 5000.00},
	}

	if r, exists := ranges[category]; exists {
		return r[0], r[1]
	}
	return 5.00, 100.00
}

// GenerateDate picks a calendar date between the first day of the month
// before referenceDate and referenceDate itself
func (g *transactionGenerator) GenerateDate(referenceDate time.Time) time.Time {
	periodStart, _ := models.PeriodBounds(referenceDate)
	start := periodStart.AddDate(0, -1, 0)
	return models.TruncateToDate(g.faker.DateRange(start, referenceDate))
}

// Generate returns count signed transactions spread over the reference month
// and the one before it. Roughly one in ten is income.
func (g *transactionGenerator) Generate(count int, referenceDate time.Time) []models.Transaction {
	if count <= 0 {
		return []models.Transaction{}
	}

	transactions := make([]models.Transaction, 0, count)
	for i := 0; i < count; i++ {
		income := g.faker.Float64() < incomeShare
		merchant := g.selectMerchant(income)

		amount := g.GenerateAmount(merchant.Category)
		if !income {
			amount = amount.Neg()
		}

		transactions = append(transactions, models.Transaction{
			Amount:      amount,
			Description: merchant.Name,
			Date:        g.GenerateDate(referenceDate),
		})
	}

	return transactions
}
