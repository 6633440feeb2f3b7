package models

// Member represents a person registered at the gym front desk.
type Member struct {
	ID             int64  `json:"id" db:"id"`
	Name           string `json:"name" db:"name"`
	Age            int    `json:"age" db:"age"`
	Gender         string `json:"gender" db:"gender"`
	Phone          string `json:"phone" db:"phone"`
	Address        string `json:"address" db:"address"`
	MembershipType string `json:"membership_type" db:"membership_type"`
	StartDate      string `json:"start_date" db:"start_date"` // YYYY-MM-DD
	EndDate        string `json:"end_date" db:"end_date"`     // YYYY-MM-DD
}

// Membership plans offered at the desk.
const (
	PlanMonthly   = "Monthly"
	PlanQuarterly = "Quarterly"
	PlanYearly    = "Yearly"
	PlanLifetime  = "Lifetime"

	// PlanAll is the directory filter value that matches every plan.
	PlanAll = "All"
)

// Genders accepted at registration.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// MemberFilter narrows a member listing after it has been read from the store.
type MemberFilter struct {
	Search string `form:"search"` // case-insensitive substring of the name
	Plan   string `form:"plan"`   // exact plan, "All" or empty matches everything
}
