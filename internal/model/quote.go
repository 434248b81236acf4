package model

import "time"

// QuoteDocument carries everything needed to render a printable quote
// estimate. Quotes are non-binding and never persisted.
type QuoteDocument struct {
	ServiceLabel      string
	Quantity          int
	Quality           string
	Side              string
	BasePrice         float64
	UnitCost          float64
	QualityMultiplier float64
	SideMultiplier    float64
	Total             int
	Currency          string
	GeneratedAt       time.Time
}

// SubmissionExport bundles both submission collections for the admin
// spreadsheet export.
type SubmissionExport struct {
	Contacts    []ContactSubmission
	FileUploads []FileUpload
	GeneratedAt time.Time
}
