package dto

import "github.com/selimd/admitflow/internal/app/models"

// CreateLoanRequest represents a new financial aid application
type CreateLoanRequest struct {
	StudentID          string  `json:"student_id" binding:"required"`
	AdmissionID        string  `json:"admission_id" binding:"required"`
	Amount             float64 `json:"amount" binding:"required,gt=0"`
	Purpose            string  `json:"purpose"`
	Program            string  `json:"program"`
	CreditScore        int     `json:"credit_score" binding:"gte=0,lte=850"`
	IncomeVerification bool    `json:"income_verification"`
	Cosigner           bool    `json:"cosigner"`
}

// UpdateLoanRequest represents a partial loan application update
type UpdateLoanRequest struct {
	Amount             *float64 `json:"amount,omitempty" binding:"omitempty,gt=0"`
	Purpose            *string  `json:"purpose,omitempty"`
	CreditScore        *int     `json:"credit_score,omitempty" binding:"omitempty,gte=0,lte=850"`
	IncomeVerification *bool    `json:"income_verification,omitempty"`
	Cosigner           *bool    `json:"cosigner,omitempty"`
}

// LoanEvaluationResponse is the outcome of a loan eligibility evaluation
type LoanEvaluationResponse struct {
	LoanID           string              `json:"loan_id"`
	Status           models.LoanStatus   `json:"status"`
	EligibilityScore float64             `json:"eligibility_score"`
	Qualified        bool                `json:"qualified"`
	LoanOptions      []models.LoanOption `json:"loan_options"`
	Feedback         string              `json:"feedback"`
}
