package models

import "time"

// LoanStatus is the lifecycle stage of a loan application. Loans live
// independently of the admission pipeline.
type LoanStatus string

const (
	LoanApplied          LoanStatus = "applied"
	LoanUnderReview      LoanStatus = "under_review"
	LoanPendingReview    LoanStatus = "pending_review"
	LoanNeedsInformation LoanStatus = "needs_information"
	LoanApproved         LoanStatus = "approved"
	LoanRejected         LoanStatus = "rejected"
	LoanDisbursed        LoanStatus = "disbursed"
)

// LoanType names the loan products offered per eligibility tier.
type LoanType string

const (
	LoanFederal           LoanType = "federal"
	LoanPrivate           LoanType = "private"
	LoanScholarshipBacked LoanType = "scholarship_backed"
	LoanIncomeShare       LoanType = "income_share"
)

// LoanOption is one generated loan product offer.
type LoanOption struct {
	Type             LoanType `json:"type"`
	Amount           float64  `json:"amount"`
	InterestRate     float64  `json:"interest_rate"`
	TermYears        int      `json:"term_years"`
	MonthlyPayment   float64  `json:"monthly_payment,omitempty"`
	IncomePercentage float64  `json:"income_percentage,omitempty"`
	Details          string   `json:"details,omitempty"`
}

// RepaymentTerms summarizes an approved loan's schedule.
type RepaymentTerms struct {
	DurationMonths int     `json:"duration_months"`
	MonthlyPayment float64 `json:"monthly_payment"`
}

// LoanApplication is a financial aid request tied to a student and an
// admission. Credit signals feed the deterministic eligibility scorer.
type LoanApplication struct {
	ID                 string          `json:"id"`
	StudentID          string          `json:"student_id" binding:"required"`
	AdmissionID        string          `json:"admission_id" binding:"required"`
	Amount             float64         `json:"amount" binding:"required,gt=0"`
	Purpose            string          `json:"purpose"`
	Program            string          `json:"program"`
	CreditScore        int             `json:"credit_score"`
	IncomeVerification bool            `json:"income_verification"`
	Cosigner           bool            `json:"cosigner"`
	RequestedDate      time.Time       `json:"requested_date"`
	Status             LoanStatus      `json:"status"`
	EligibilityScore   float64         `json:"eligibility_score"`
	Qualified          bool            `json:"qualified"`
	LoanOptions        []LoanOption    `json:"loan_options,omitempty"`
	Feedback           string          `json:"feedback,omitempty"`
	ReviewDate         *time.Time      `json:"review_date,omitempty"`
	RejectionReason    string          `json:"rejection_reason,omitempty"`
	InterestRate       float64         `json:"interest_rate,omitempty"`
	RepaymentTerms     *RepaymentTerms `json:"repayment_terms,omitempty"`
}

// Validate checks the required fields on a stored loan record.
func (l *LoanApplication) Validate() error {
	if l.ID == "" || l.StudentID == "" || l.AdmissionID == "" {
		return errMissingRequiredFields("loan", "id", "student_id", "admission_id")
	}
	return nil
}
