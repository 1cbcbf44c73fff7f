package models

import "encoding/json"

// Legitimacy statuses produced by the analysis pipeline.
const (
	StatusLegit     = "legit"
	StatusScam      = "scam"
	StatusUncertain = "uncertain"
)

// TextInput is the body of POST /check-text.
type TextInput struct {
	Text string `json:"text" binding:"required"`
}

// ProductRecord describes a product listing as captured from a storefront.
// Numeric-looking fields arrive as free-form strings and are parsed
// defensively by the scorer; a missing field is an empty string.
type ProductRecord struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	Price        string `json:"price"`
	Seller       string `json:"seller"`
	Rating       string `json:"rating"`
	ReviewsCount string `json:"reviews_count"`
	URL          string `json:"url"`
}

// ScanRequest is the body of POST /analyze-url.
type ScanRequest struct {
	URL string `json:"url" binding:"required,url"`
}

type Indicators struct {
	ScamCount  int `json:"scam_count"`
	LegitCount int `json:"legit_count"`
}

// ScoreResult is the output of the heuristic scorer. Reasons keep the
// order the rules were evaluated in.
type ScoreResult struct {
	Status     string     `json:"status"`
	Confidence float64    `json:"confidence"`
	Reasons    []string   `json:"reasons"`
	Indicators Indicators `json:"indicators"`
}

// AnalysisResult is the heuristic score optionally augmented with the
// external detector's verdict. AIAnalysis carries the detector's JSON
// verbatim; AIError is set when the detector could not be reached.
type AnalysisResult struct {
	ScoreResult
	AIAnalysis json.RawMessage `json:"ai_analysis,omitempty"`
	AIError    string          `json:"ai_error,omitempty"`
}

type ProductInfo struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type AnalysisResponse struct {
	Success     bool           `json:"success"`
	Analysis    AnalysisResult `json:"analysis"`
	ProductInfo ProductInfo    `json:"product_info"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
}
