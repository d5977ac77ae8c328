package repositories

import (
	"context"
	"testing"
	"time"

	"budget-dashboard/internal/database"
	"budget-dashboard/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// TransactionRepositorySuite defines the test suite for TransactionRepository
type TransactionRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo TransactionRepositoryInterface
	ctx  context.Context
}

// SetupTest runs before each test in the suite
func (s *TransactionRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewTransactionRepository(s.db.DB)
	s.ctx = context.Background()
}

// TearDownTest runs after each test in the suite
func (s *TransactionRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestTransactionRepositorySuite(t *testing.T) {
	suite.Run(t, new(TransactionRepositorySuite))
}

func (s *TransactionRepositorySuite) day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func (s *TransactionRepositorySuite) newTransaction(amount string, description string, date time.Time) *models.Transaction {
	return &models.Transaction{
		Amount:      decimal.RequireFromString(amount),
		Description: description,
		Date:        date,
	}
}

func (s *TransactionRepositorySuite) TestCreate() {
	txn := s.newTransaction("-45.99", "Whole Foods grocery", time.Date(2024, 3, 10, 18, 30, 0, 0, time.UTC))

	err := s.repo.Create(s.ctx, txn)

	s.Require().NoError(err)
	s.NotEqual(uuid.Nil, txn.ID)
	s.False(txn.CreatedAt.IsZero())
	s.Equal(s.day(2024, 3, 10), txn.Date)

	found, err := s.repo.GetByID(s.ctx, txn.ID)
	s.Require().NoError(err)
	s.Equal("Whole Foods grocery", found.Description)
	s.True(found.Amount.Equal(decimal.RequireFromString("-45.99")))
	s.True(found.Date.Equal(s.day(2024, 3, 10)))
}

func (s *TransactionRepositorySuite) TestCreate_ValidationError() {
	txn := s.newTransaction("-10", "", s.day(2024, 3, 1))

	err := s.repo.Create(s.ctx, txn)

	s.ErrorIs(err, models.ErrDescriptionRequired)
}

func (s *TransactionRepositorySuite) TestCreate_ZeroAmountAllowed() {
	txn := s.newTransaction("0", "Balance adjustment", s.day(2024, 3, 1))

	s.NoError(s.repo.Create(s.ctx, txn))
}

func (s *TransactionRepositorySuite) TestCreateBatch() {
	transactions := []models.Transaction{
		*s.newTransaction("3000", "Monthly Salary", s.day(2024, 3, 1)),
		*s.newTransaction("-1200", "Apartment rent", s.day(2024, 3, 2)),
		*s.newTransaction("-20", "Uber ride", s.day(2024, 3, 3)),
	}

	s.Require().NoError(s.repo.CreateBatch(s.ctx, transactions))

	count, err := s.repo.Count(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(3), count)
}

func (s *TransactionRepositorySuite) TestCreateBatch_Empty() {
	s.NoError(s.repo.CreateBatch(s.ctx, nil))
}

func (s *TransactionRepositorySuite) TestCreateBatch_RollsBackOnInvalidEntry() {
	transactions := []models.Transaction{
		*s.newTransaction("-5", "Coffee at the corner cafe", s.day(2024, 3, 1)),
		*s.newTransaction("-5", "", s.day(2024, 3, 1)),
	}

	s.Error(s.repo.CreateBatch(s.ctx, transactions))

	count, err := s.repo.Count(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(0), count)
}

func (s *TransactionRepositorySuite) TestGetByID_NotFound() {
	found, err := s.repo.GetByID(s.ctx, uuid.New())

	s.Nil(found)
	s.ErrorIs(err, ErrTransactionNotFound)
}

func (s *TransactionRepositorySuite) TestUpdate() {
	txn := s.newTransaction("-60", "Restaurant dinner", s.day(2024, 3, 5))
	s.Require().NoError(s.repo.Create(s.ctx, txn))

	txn.Amount = decimal.RequireFromString("-72.50")
	txn.Description = "Restaurant dinner with tip"
	txn.Date = s.day(2024, 3, 6)

	s.Require().NoError(s.repo.Update(s.ctx, txn))

	found, err := s.repo.GetByID(s.ctx, txn.ID)
	s.Require().NoError(err)
	s.Equal("Restaurant dinner with tip", found.Description)
	s.True(found.Amount.Equal(decimal.RequireFromString("-72.50")))
	s.True(found.Date.Equal(s.day(2024, 3, 6)))
}

func (s *TransactionRepositorySuite) TestUpdate_ToZeroAmount() {
	txn := s.newTransaction("-60", "Refunded order", s.day(2024, 3, 5))
	s.Require().NoError(s.repo.Create(s.ctx, txn))

	txn.Amount = decimal.Zero
	s.Require().NoError(s.repo.Update(s.ctx, txn))

	found, err := s.repo.GetByID(s.ctx, txn.ID)
	s.Require().NoError(err)
	s.True(found.Amount.IsZero())
}

func (s *TransactionRepositorySuite) TestUpdate_NotFound() {
	txn := s.newTransaction("-60", "Restaurant dinner", s.day(2024, 3, 5))
	txn.ID = uuid.New()

	s.ErrorIs(s.repo.Update(s.ctx, txn), ErrTransactionNotFound)
}

func (s *TransactionRepositorySuite) TestDelete() {
	txn := s.newTransaction("-9.99", "Netflix subscription", s.day(2024, 3, 5))
	s.Require().NoError(s.repo.Create(s.ctx, txn))

	s.Require().NoError(s.repo.Delete(s.ctx, txn.ID))

	_, err := s.repo.GetByID(s.ctx, txn.ID)
	s.ErrorIs(err, ErrTransactionNotFound)

	s.ErrorIs(s.repo.Delete(s.ctx, txn.ID), ErrTransactionNotFound)
}

func (s *TransactionRepositorySuite) TestList_NewestFirst() {
	older := s.newTransaction("-1", "older", s.day(2024, 2, 28))
	newer := s.newTransaction("-2", "newer", s.day(2024, 3, 1))
	sameDayEarly := s.newTransaction("-3", "same day early", s.day(2024, 3, 1))

	base := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	older.CreatedAt = base
	sameDayEarly.CreatedAt = base
	newer.CreatedAt = base.Add(time.Hour)

	for _, txn := range []*models.Transaction{older, sameDayEarly, newer} {
		s.Require().NoError(s.repo.Create(s.ctx, txn))
	}

	transactions, err := s.repo.List(s.ctx)

	s.Require().NoError(err)
	s.Require().Len(transactions, 3)
	s.Equal("newer", transactions[0].Description)
	s.Equal("same day early", transactions[1].Description)
	s.Equal("older", transactions[2].Description)
}

func (s *TransactionRepositorySuite) TestList_Empty() {
	transactions, err := s.repo.List(s.ctx)

	s.Require().NoError(err)
	s.NotNil(transactions)
	s.Empty(transactions)
}

func (s *TransactionRepositorySuite) TestGetWithFilters() {
	for _, txn := range []*models.Transaction{
		s.newTransaction("-10", "february", s.day(2024, 2, 29)),
		s.newTransaction("-20", "march first", s.day(2024, 3, 1)),
		s.newTransaction("-30", "march mid", s.day(2024, 3, 15)),
		s.newTransaction("-40", "march last", s.day(2024, 3, 31)),
		s.newTransaction("-50", "april", s.day(2024, 4, 1)),
	} {
		s.Require().NoError(s.repo.Create(s.ctx, txn))
	}

	start, end := models.PeriodBounds(s.day(2024, 3, 20))

	s.Run("period window", func() {
		transactions, total, err := s.repo.GetWithFilters(s.ctx, models.TransactionFilters{StartDate: &start, EndDate: &end})

		s.Require().NoError(err)
		s.Equal(int64(3), total)
		s.Require().Len(transactions, 3)
		s.Equal("march last", transactions[0].Description)
		s.Equal("march first", transactions[2].Description)
	})

	s.Run("pagination", func() {
		transactions, total, err := s.repo.GetWithFilters(s.ctx, models.TransactionFilters{
			StartDate: &start,
			EndDate:   &end,
			Offset:    1,
			Limit:     1,
		})

		s.Require().NoError(err)
		s.Equal(int64(3), total)
		s.Require().Len(transactions, 1)
		s.Equal("march mid", transactions[0].Description)
	})

	s.Run("open ended", func() {
		transactions, total, err := s.repo.GetWithFilters(s.ctx, models.TransactionFilters{StartDate: &end})

		s.Require().NoError(err)
		s.Equal(int64(1), total)
		s.Equal("april", transactions[0].Description)
	})

	s.Run("no filters", func() {
		_, total, err := s.repo.GetWithFilters(s.ctx, models.TransactionFilters{})

		s.Require().NoError(err)
		s.Equal(int64(5), total)
	})
}
