package importer

// KeywordStats counts the outcomes of a GSC query import.
type KeywordStats struct {
	KeywordsCreated  int `json:"keywords_created"`
	KeywordsExisting int `json:"keywords_existing"`
	PositionsCreated int `json:"positions_created"`
}

// SEMrushStats counts the outcomes of a SEMrush import.
type SEMrushStats struct {
	KeywordsCreated  int `json:"keywords_created"`
	KeywordsUpdated  int `json:"keywords_updated"`
	PositionsCreated int `json:"positions_created"`
}

// PageStats counts the outcomes of a GSC pages import.
type PageStats struct {
	PagesCreated   int `json:"pages_created"`
	PagesUpdated   int `json:"pages_updated"`
	HistoryRecords int `json:"history_records"`
}

// KeywordReport is the result of a keyword-entity import. Errors holds
// row-level failures; the import as a whole still succeeds, and callers
// must inspect the list.
type KeywordReport struct {
	Stats          KeywordStats
	TotalProcessed int
	Errors         []string
}

// SEMrushReport is the result of a SEMrush import.
type SEMrushReport struct {
	Stats          SEMrushStats
	TotalProcessed int
	Errors         []string
}

// PageReport is the result of a page-entity import. Errors holds batch
// failures keyed by batch number.
type PageReport struct {
	Stats          PageStats
	TotalProcessed int
	Errors         []string
}
