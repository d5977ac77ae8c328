package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"budget-dashboard/internal/dto"
	"budget-dashboard/internal/errors"
	"budget-dashboard/internal/models"
	"budget-dashboard/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type BudgetHandlerSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockStore *service_mocks.MockBudgetStoreInterface
	handler   *BudgetHandler
	echo      *echo.Echo
}

func TestBudgetHandlerSuite(t *testing.T) {
	suite.Run(t, new(BudgetHandlerSuite))
}

func (s *BudgetHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockStore = service_mocks.NewMockBudgetStoreInterface(s.ctrl)
	s.handler = NewBudgetHandler(s.mockStore)
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
}

func (s *BudgetHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *BudgetHandlerSuite) put(body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/api/budgets", bytes.NewBufferString(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	s.NoError(s.handler.UpdateBudgets(s.echo.NewContext(req, rec)))
	return rec
}

func (s *BudgetHandlerSuite) TestGetBudgets() {
	s.mockStore.EXPECT().Current().Return(models.DefaultBudgets())

	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/api/budgets", nil), rec)
	s.NoError(s.handler.GetBudgets(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.BudgetsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Len(resp.Budgets, len(models.DefaultBudgets()))
	s.Equal(models.CategoryFoodDining, resp.Budgets[0].Category)
	s.True(resp.Budgets[0].Budget.Equal(decimal.NewFromInt(500)))
}

func (s *BudgetHandlerSuite) TestUpdateBudgets_CoercesAmounts() {
	stored := []models.BudgetCategory{
		{Category: models.CategoryShopping, Budget: decimal.NewFromInt(250), Color: models.ColorShopping},
		{Category: "Pets", Budget: decimal.Zero, Color: "#123456"},
		{Category: models.CategoryHousing, Budget: decimal.RequireFromString("1200.5"), Color: models.ColorHousing},
	}

	s.mockStore.EXPECT().
		ReplaceAll(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entries []models.BudgetCategory) []models.BudgetCategory {
			s.Require().Len(entries, 3)
			s.True(entries[0].Budget.Equal(decimal.NewFromInt(250)))
			s.True(entries[1].Budget.IsZero())
			s.True(entries[2].Budget.Equal(decimal.RequireFromString("1200.5")))
			s.Equal("#123456", entries[1].Color)
			return stored
		})

	rec := s.put(`{"budgets":[
		{"category":"Shopping","budget":250},
		{"category":"Pets","budget":"lots","color":"#123456"},
		{"category":"Housing","budget":"1200.50"}
	]}`)
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.BudgetsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Len(resp.Budgets, 3)
	s.Equal("Pets", resp.Budgets[1].Category)
}

func (s *BudgetHandlerSuite) TestUpdateBudgets_EmptyListClearsBudgets() {
	s.mockStore.EXPECT().ReplaceAll(gomock.Any(), gomock.Len(0)).Return([]models.BudgetCategory{})

	rec := s.put(`{"budgets":[]}`)
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"budgets":[]}`, rec.Body.String())
}

func (s *BudgetHandlerSuite) TestUpdateBudgets_Duplicate() {
	rec := s.put(`{"budgets":[{"category":"Shopping","budget":1},{"category":" Shopping ","budget":2}]}`)
	s.Equal(http.StatusUnprocessableEntity, rec.Code)

	var resp ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(string(errors.BudgetDuplicate), resp.Error.Code)
	s.Equal([]string{"Shopping"}, resp.Error.Details)
}

func (s *BudgetHandlerSuite) TestUpdateBudgets_Rejected() {
	testCases := []struct {
		name string
		body string
	}{
		{"income is not budgetable", `{"budgets":[{"category":"Income","budget":100}]}`},
		{"blank category", `{"budgets":[{"category":"  ","budget":100}]}`},
		{"bad color", `{"budgets":[{"category":"Shopping","budget":100,"color":"red"}]}`},
		{"missing list", `{}`},
		{"malformed", `{"budgets":`},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			rec := s.put(tc.body)
			s.Equal(http.StatusBadRequest, rec.Code)
		})
	}
}
