package types

import (
	"time"

	"github.com/howardchatman/chatmaninc/pricing"
)

// CalcResponse is what POST /calculate returns: the engine output plus the
// four copy-ready renderings.
type CalcResponse struct {
	Output        pricing.Output `json:"output"`
	SMS           string         `json:"sms"`
	Email         string         `json:"email"`
	Proposal      string         `json:"proposal"`
	InternalNotes string         `json:"internalNotes"`
}

// QuoteSubmission saves a calculated quote against a lead.
type QuoteSubmission struct {
	Input  pricing.Input  `json:"input"`
	Output pricing.Output `json:"output"`
	LeadID int64          `json:"leadId,omitempty"`
}

// QuoteSummary is one row in the saved-quote history.
type QuoteSummary struct {
	ID              string        `json:"id"`
	CompanyName     string        `json:"companyName"`
	Industry        string        `json:"industry"`
	EmployeeCount   string        `json:"employeeCount"`
	RecommendedTier string        `json:"recommendedTier"`
	MonthlyTotal    float64       `json:"monthlyTotal"`
	SetupFee        float64       `json:"setupFee"`
	AnnualTotal     float64       `json:"annualTotal"`
	Input           pricing.Input `json:"input"`
	CreatedBy       string        `json:"createdBy"`
	CreatedAt       time.Time     `json:"createdAt"`
}

// Lead is one prospect, from the website form, the voice agent, or
// manual entry.
type Lead struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Company   string    `json:"company,omitempty"`
	Industry  string    `json:"industry,omitempty"`
	Status    string    `json:"status"` // hot, warm, cold
	Source    string    `json:"source"`
	Interest  string    `json:"interest,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"createdAt"`
}

// LeadForm is the public website submission.
type LeadForm struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Company  string `json:"company"`
	Industry string `json:"industry"`
	Goal     string `json:"goal"`
}

type Invoice struct {
	ID        int64     `json:"id"`
	LeadID    int64     `json:"leadId,omitempty"`
	Number    string    `json:"number"`
	Total     float64   `json:"total"`
	Status    string    `json:"status"` // pending, paid, void
	DueDate   string    `json:"dueDate,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type Booking struct {
	ID        int64     `json:"id"`
	LeadID    int64     `json:"leadId,omitempty"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Status    string    `json:"status"` // confirmed, cancelled
	CreatedAt time.Time `json:"createdAt"`
}

// Settings is the singleton business profile row edited from the console.
type Settings struct {
	CompanyName        string `json:"companyName" form:"company_name"`
	ContactEmail       string `json:"contactEmail" form:"contact_email"`
	Timezone           string `json:"timezone" form:"timezone"`
	BookingDurationMin int    `json:"bookingDurationMin" form:"booking_duration_min"`
}
