package dto

// CategoryResponse describes one classifier label
type CategoryResponse struct {
	Name       string   `json:"name"`
	Color      string   `json:"color"`
	Keywords   []string `json:"keywords"`
	Budgetable bool     `json:"budgetable"`
	Priority   int      `json:"priority"`
}

// ClassifyRequest asks for the labels of one or more descriptions
type ClassifyRequest struct {
	Descriptions []string `json:"descriptions" validate:"required,min=1,max=500,dive,max=255"`
}

// ClassificationResult is the label assigned to one description
type ClassificationResult struct {
	Description string `json:"description"`
	Category    string `json:"category"`
	Color       string `json:"color"`
}

// ClassifyResponse preserves the request order
type ClassifyResponse struct {
	Results []ClassificationResult `json:"results"`
}
