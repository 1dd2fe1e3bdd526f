package models

// Overview is the headline block of the replenishment dashboard.
type Overview struct {
	// Balance is total income minus total allocations.
	Balance float64 `json:"balance"`
	// PaymentPledgePercentage is payments as a share of pledges (0-100).
	PaymentPledgePercentage float64 `json:"payment_pledge_percentage"`
	// GainLoss is the exchange gain or loss.
	GainLoss float64 `json:"gain_loss"`
}

// Income summarises fund income by kind.
type Income struct {
	CashPayments        float64 `json:"cash_payments"`
	PromissoryNotes     float64 `json:"promissory_notes"`
	BilateralAssistance float64 `json:"bilateral_assistance"`
	InterestEarned      float64 `json:"interest_earned"`
	MiscellaneousIncome float64 `json:"miscellaneous_income"`
	Total               float64 `json:"total"`
}

// Allocations summarises fund allocations by agency and cost line.
type Allocations struct {
	UNDP                float64 `json:"undp"`
	UNEP                float64 `json:"unep"`
	UNIDO               float64 `json:"unido"`
	WorldBank           float64 `json:"world_bank"`
	StaffContracts      float64 `json:"staff_contracts"`
	TreasuryFees        float64 `json:"treasury_fees"`
	MonitoringFees      float64 `json:"monitoring_fees"`
	TechnicalAudit      float64 `json:"technical_audit"`
	InformationStrategy float64 `json:"information_strategy"`
	BilateralAssistance float64 `json:"bilateral_assistance"`
	Total               float64 `json:"total"`
}

// Dashboard is the view model for one dashboard fetch.
type Dashboard struct {
	Overview    Overview    `json:"overview"`
	Income      Income      `json:"income"`
	Allocations Allocations `json:"allocations"`
}
