package models

// Requests for HTTP endpoints. Defined in domain for consistency and reuse.

type SymbolRequest struct {
	Symbol string `param:"symbol" json:"symbol" validate:"required,min=1,max=12"`
}

type SearchRequest struct {
	Name  string `query:"name" json:"name" validate:"required,min=1"`
	Limit int    `query:"limit" json:"limit" default:"10" validate:"gte=1,lte=10"`
}

type NoteRequest struct {
	Symbol string `param:"symbol" json:"symbol" validate:"required,min=1,max=12"`
	Note   string `json:"note" validate:"required,min=1"`
}

type WatchlistAddRequest struct {
	Symbol string `json:"symbol" validate:"required,min=1,max=12"`
}
