package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gilangriyanto/ksu-ajibarang-sub003/internal/core/domain"
)

// JournalLineRequest is one debit or credit line in a manual journal request.
// Exactly one of debit/credit must be nonzero.
type JournalLineRequest struct {
	AccountCode string          `json:"accountCode" binding:"required,accountcode"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description"`
}

// CreateJournalEntryRequest defines the data needed to post a manual journal entry.
type CreateJournalEntryRequest struct {
	EntryDate     time.Time            `json:"entryDate" binding:"required"`
	JournalType   string               `json:"journalType" binding:"omitempty,oneof=GENERAL SPECIAL ADJUSTMENT CLOSING"`
	Description   string               `json:"description" binding:"required"`
	ReferenceType string               `json:"referenceType"`
	ReferenceID   string               `json:"referenceID"`
	Lines         []JournalLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// JournalLineResponse defines the data returned for a journal line.
type JournalLineResponse struct {
	LineNumber  int             `json:"lineNumber"`
	AccountCode string          `json:"accountCode"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description"`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	EntryID          string                `json:"entryID"`
	JournalNumber    string                `json:"journalNumber"`
	EntryDate        time.Time             `json:"entryDate"`
	JournalType      string                `json:"journalType"`
	Description      string                `json:"description"`
	ReferenceType    string                `json:"referenceType,omitempty"`
	ReferenceID      string                `json:"referenceID,omitempty"`
	IsAutoGenerated  bool                  `json:"isAutoGenerated"`
	Status           string                `json:"status"`
	OriginalEntryID  *string               `json:"originalEntryID,omitempty"`
	ReversingEntryID *string               `json:"reversingEntryID,omitempty"`
	TotalDebit       decimal.Decimal       `json:"totalDebit"`
	TotalCredit      decimal.Decimal       `json:"totalCredit"`
	Lines            []JournalLineResponse `json:"lines,omitempty"`
	CreatedAt        time.Time             `json:"createdAt"`
	CreatedBy        string                `json:"createdBy"`
}

// ListEntriesParams defines query parameters for listing journal entries.
type ListEntriesParams struct {
	Limit         int     `form:"limit,default=20"`
	NextToken     *string `form:"nextToken"`
	JournalType   *string `form:"journalType"`
	ReferenceType *string `form:"referenceType"`
	ReferenceID   *string `form:"referenceID"`
	FromDate      *string `form:"fromDate"` // "2006-01-02"
	ToDate        *string `form:"toDate"`
}

// ListEntriesResponse is the paginated journal listing.
type ListEntriesResponse struct {
	Entries   []JournalEntryResponse `json:"entries"`
	NextToken *string                `json:"nextToken,omitempty"`
}

// ToJournalLineResponses converts domain lines to DTOs.
func ToJournalLineResponses(lines []domain.JournalLine) []JournalLineResponse {
	res := make([]JournalLineResponse, len(lines))
	for i, line := range lines {
		res[i] = JournalLineResponse{
			LineNumber:  line.LineNumber,
			AccountCode: line.AccountCode,
			Debit:       line.Debit,
			Credit:      line.Credit,
			Description: line.Description,
		}
	}
	return res
}

// ToJournalEntryResponse converts a domain.JournalEntry to its DTO.
func ToJournalEntryResponse(entry *domain.JournalEntry) JournalEntryResponse {
	return JournalEntryResponse{
		EntryID:          entry.EntryID,
		JournalNumber:    entry.JournalNumber,
		EntryDate:        entry.EntryDate,
		JournalType:      string(entry.JournalType),
		Description:      entry.Description,
		ReferenceType:    entry.ReferenceType,
		ReferenceID:      entry.ReferenceID,
		IsAutoGenerated:  entry.IsAutoGenerated,
		Status:           string(entry.Status),
		OriginalEntryID:  entry.OriginalEntryID,
		ReversingEntryID: entry.ReversingEntryID,
		TotalDebit:       entry.TotalDebit(),
		TotalCredit:      entry.TotalCredit(),
		Lines:            ToJournalLineResponses(entry.Lines),
		CreatedAt:        entry.CreatedAt,
		CreatedBy:        entry.CreatedBy,
	}
}
