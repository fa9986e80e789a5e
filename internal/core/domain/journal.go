package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalType classifies journal entries and determines the number prefix.
type JournalType string

const (
	GeneralJournal  JournalType = "GENERAL"
	SpecialJournal  JournalType = "SPECIAL"
	AdjustmentEntry JournalType = "ADJUSTMENT"
	ClosingEntry    JournalType = "CLOSING"
	ReversingType   JournalType = "REVERSING"
)

// NumberPrefix returns the journal-number prefix for a journal type.
func (t JournalType) NumberPrefix() string {
	switch t {
	case SpecialJournal:
		return "JK"
	case AdjustmentEntry:
		return "JP"
	case ClosingEntry:
		return "JT"
	case ReversingType:
		return "JB"
	default:
		return "JU"
	}
}

// EntryStatus indicates the state of a posted journal entry.
type EntryStatus string

const (
	Posted   EntryStatus = "POSTED"
	Reversed EntryStatus = "REVERSED"
)

// JournalEntry represents a single, balanced financial event composed of
// multiple journal lines. Posted entries are immutable; corrections are made
// via reversing entries, never in-place edits.
type JournalEntry struct {
	EntryID         string      `json:"entryID"`       // Primary key (UUID)
	JournalNumber   string      `json:"journalNumber"` // e.g. "JU-202609-0042", assigned at posting
	EntryDate       time.Time   `json:"entryDate"`
	JournalType     JournalType `json:"journalType"`
	Description     string      `json:"description"`
	ReferenceType   string      `json:"referenceType"` // Source business object kind (loan, saving, resignation)
	ReferenceID     string      `json:"referenceID"`
	IsAutoGenerated bool        `json:"isAutoGenerated"`
	Status          EntryStatus `json:"status"`

	// Reversal linkage. OriginalEntryID is set on the reversing entry,
	// ReversingEntryID on the reversed original.
	OriginalEntryID  *string `json:"originalEntryID,omitempty"`
	ReversingEntryID *string `json:"reversingEntryID,omitempty"`

	Lines []JournalLine `json:"lines,omitempty"`
	AuditFields
}

// TotalDebit sums the debit column over the entry's lines.
func (e *JournalEntry) TotalDebit() decimal.Decimal {
	total := decimal.Zero
	for _, line := range e.Lines {
		total = total.Add(line.Debit)
	}
	return total
}

// TotalCredit sums the credit column over the entry's lines.
func (e *JournalEntry) TotalCredit() decimal.Decimal {
	total := decimal.Zero
	for _, line := range e.Lines {
		total = total.Add(line.Credit)
	}
	return total
}

// JournalLine is a single debit or credit against one account. Exactly one
// of Debit/Credit is nonzero on a valid line.
type JournalLine struct {
	LineID      string          `json:"lineID"`     // Primary key (UUID)
	EntryID     string          `json:"entryID"`    // FK -> JournalEntry
	LineNumber  int             `json:"lineNumber"` // 1-based, dense within the entry
	AccountCode string          `json:"accountCode"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description"`
}
