// Package dashboard builds replenishment dashboard view models from API payloads.
package dashboard

import (
	"encoding/json"
	"io"

	"github.com/ukaji3/gridfill-go/pkg/gridfill/aggregate"
	"github.com/ukaji3/gridfill-go/pkg/gridfill/models"
	"github.com/ukaji3/gridfill-go/pkg/gridfill/parser"
)

// Payload is the dashboard response of the reporting API. Values may be numbers,
// numeric strings or null.
type Payload struct {
	Overview    map[string]any `json:"overview"`
	Income      map[string]any `json:"income"`
	Allocations map[string]any `json:"allocations"`
}

// Decode reads a payload from r.
func Decode(r io.Reader) (Payload, error) {
	var p Payload
	err := json.NewDecoder(r).Decode(&p)
	return p, err
}

// Build returns freshly constructed view models for one fetch. Missing or malformed
// values count as 0.
func Build(p Payload) models.Dashboard {
	income := models.Income{
		CashPayments:        value(p.Income, "cash_payments"),
		PromissoryNotes:     value(p.Income, "promissory_notes"),
		BilateralAssistance: value(p.Income, "bilateral_assistance"),
		InterestEarned:      value(p.Income, "interest_earned"),
		MiscellaneousIncome: value(p.Income, "miscellaneous_income"),
	}
	income.Total = aggregate.SumFloats([]float64{
		income.CashPayments,
		income.PromissoryNotes,
		income.BilateralAssistance,
		income.InterestEarned,
		income.MiscellaneousIncome,
	})

	alloc := models.Allocations{
		UNDP:                value(p.Allocations, "undp"),
		UNEP:                value(p.Allocations, "unep"),
		UNIDO:               value(p.Allocations, "unido"),
		WorldBank:           value(p.Allocations, "world_bank"),
		StaffContracts:      value(p.Allocations, "staff_contracts"),
		TreasuryFees:        value(p.Allocations, "treasury_fees"),
		MonitoringFees:      value(p.Allocations, "monitoring_fees"),
		TechnicalAudit:      value(p.Allocations, "technical_audit"),
		InformationStrategy: value(p.Allocations, "information_strategy"),
		BilateralAssistance: value(p.Allocations, "bilateral_assistance"),
	}
	alloc.Total = aggregate.SumFloats([]float64{
		alloc.UNDP,
		alloc.UNEP,
		alloc.UNIDO,
		alloc.WorldBank,
		alloc.StaffContracts,
		alloc.TreasuryFees,
		alloc.MonitoringFees,
		alloc.TechnicalAudit,
		alloc.InformationStrategy,
		alloc.BilateralAssistance,
	})

	overview := models.Overview{
		Balance:  income.Total - alloc.Total,
		GainLoss: value(p.Overview, "gain_loss"),
	}
	if pledges := value(p.Overview, "pledges"); pledges != 0 {
		overview.PaymentPledgePercentage = value(p.Overview, "payments") / pledges * 100
	}

	return models.Dashboard{Overview: overview, Income: income, Allocations: alloc}
}

func value(m map[string]any, key string) float64 {
	f, ok := parser.ParseNumber(m[key])
	if !ok {
		return 0
	}
	return f
}
