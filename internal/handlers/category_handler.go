package handlers

import (
	"net/http"

	"budget-dashboard/internal/dto"
	"budget-dashboard/internal/errors"
	"budget-dashboard/internal/models"
	"budget-dashboard/internal/services"

	"github.com/labstack/echo/v4"
)

// CategoryHandler exposes the classifier rule table
type CategoryHandler struct {
	classifier services.CategoryServiceInterface
}

func NewCategoryHandler(classifier services.CategoryServiceInterface) *CategoryHandler {
	return &CategoryHandler{classifier: classifier}
}

// ListCategories returns every label in rule priority order, Other last
// @Summary List categories
// @Tags Categories
// @Produce json
// @Success 200 {array} dto.CategoryResponse
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	rules := h.classifier.Rules()
	categories := make([]dto.CategoryResponse, 0, len(rules)+1)

	for i, rule := range rules {
		categories = append(categories, dto.CategoryResponse{
			Name:       rule.Category,
			Color:      models.CategoryColor(rule.Category),
			Keywords:   rule.Keywords,
			Budgetable: models.IsBudgetableCategory(rule.Category),
			Priority:   i + 1,
		})
	}

	categories = append(categories, dto.CategoryResponse{
		Name:       models.CategoryOther,
		Color:      models.ColorOther,
		Keywords:   []string{},
		Budgetable: true,
		Priority:   len(rules) + 1,
	})

	return c.JSON(http.StatusOK, categories)
}

// Classify labels free-text descriptions without storing anything
// @Summary Classify descriptions
// @Tags Categories
// @Accept json
// @Produce json
// @Param request body dto.ClassifyRequest true "Descriptions to classify"
// @Success 200 {object} dto.ClassifyResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Validation error"
// @Router /categories/classify [post]
func (h *CategoryHandler) Classify(c echo.Context) error {
	var req dto.ClassifyRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendValidationError(c, err)
	}

	results := make([]dto.ClassificationResult, 0, len(req.Descriptions))
	for _, description := range req.Descriptions {
		category := h.classifier.Classify(description)
		results = append(results, dto.ClassificationResult{
			Description: description,
			Category:    category,
			Color:       models.CategoryColor(category),
		})
	}

	return c.JSON(http.StatusOK, dto.ClassifyResponse{Results: results})
}
