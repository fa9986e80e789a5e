package dto

import (
	"time"

	"github.com/gilangriyanto/ksu-ajibarang-sub003/internal/core/domain"
)

// OpenPeriodRequest defines the data needed to open a new accounting period.
type OpenPeriodRequest struct {
	Year  int `json:"year" binding:"required,min=2000,max=2200"`
	Month int `json:"month" binding:"required,min=1,max=12"`
}

// PeriodResponse defines the data returned for an accounting period.
type PeriodResponse struct {
	PeriodID  string    `json:"periodID"`
	Year      int       `json:"year"`
	Month     int       `json:"month"`
	Label     string    `json:"label"`
	Status    string    `json:"status"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToPeriodResponse converts a domain period to its DTO.
func ToPeriodResponse(p *domain.AccountingPeriod) PeriodResponse {
	return PeriodResponse{
		PeriodID:  p.PeriodID,
		Year:      p.Year,
		Month:     int(p.Month),
		Label:     p.Label(),
		Status:    string(p.Status),
		IsActive:  p.IsActive,
		CreatedAt: p.CreatedAt,
	}
}

// ToListPeriodResponse converts a slice of domain periods to DTOs.
func ToListPeriodResponse(periods []domain.AccountingPeriod) []PeriodResponse {
	res := make([]PeriodResponse, len(periods))
	for i, p := range periods {
		res[i] = ToPeriodResponse(&p)
	}
	return res
}
