package models

// InsightType is the severity band of an insight
type InsightType string

const (
	InsightTypeWarning InsightType = "warning"
	InsightTypeInfo    InsightType = "info"
	InsightTypeSuccess InsightType = "success"
)

// Insight is a human-readable statement about the current spending state.
// Categories lists the labels that triggered it in aggregation order.
type Insight struct {
	Type       InsightType `json:"type"`
	Message    string      `json:"message"`
	Categories []string    `json:"categories"`
}
