package cdm531

import "github.com/leapstack-labs/omopcdm/pkg/core"

func payerPlanPeriod() core.Entity {
	return core.Entity{
		Name:   "PayerPlanPeriod",
		Table:  "payer_plan_period",
		Schema: core.CDMSchema,
		Fields: []core.Field{
			{Name: "payer_plan_period_id", Type: core.Integer, Position: 100, PrimaryKey: true},
			{Name: "person_id", References: core.PersonID, Position: 200, Index: true},
			{Name: "payer_plan_period_start_date", Type: core.Date, Position: 300},
			{Name: "payer_plan_period_end_date", Type: core.Date, Position: 400},
			{Name: "payer_concept_id", References: core.ConceptID, Position: 500, Nullable: true},
			{Name: "payer_source_value", Type: core.Varchar(50), Position: 600, Nullable: true},
			{Name: "payer_source_concept_id", References: core.ConceptID, Position: 700, Nullable: true},
			{Name: "plan_concept_id", References: core.ConceptID, Position: 800, Nullable: true},
			{Name: "plan_source_value", Type: core.Varchar(50), Position: 900, Nullable: true},
			{Name: "plan_source_concept_id", References: core.ConceptID, Position: 1000, Nullable: true},
			{Name: "sponsor_concept_id", References: core.ConceptID, Position: 1100, Nullable: true},
			{Name: "sponsor_source_value", Type: core.Varchar(50), Position: 1200, Nullable: true},
			{Name: "sponsor_source_concept_id", References: core.ConceptID, Position: 1300, Nullable: true},
			{Name: "family_source_value", Type: core.Varchar(50), Position: 1400, Nullable: true},
			{Name: "stop_reason_concept_id", References: core.ConceptID, Position: 1500, Nullable: true},
			{Name: "stop_reason_source_value", Type: core.Varchar(50), Position: 1600, Nullable: true},
			{Name: "stop_reason_source_concept_id", References: core.ConceptID, Position: 1700, Nullable: true},
		},
		Relationships: []core.Relationship{
			{Name: "payer_concept", Field: "payer_concept_id", Target: "Concept"},
			{Name: "payer_source_concept", Field: "payer_source_concept_id", Target: "Concept"},
			{Name: "person", Field: "person_id", Target: "Person"},
			{Name: "plan_concept", Field: "plan_concept_id", Target: "Concept"},
			{Name: "plan_source_concept", Field: "plan_source_concept_id", Target: "Concept"},
			{Name: "sponsor_concept", Field: "sponsor_concept_id", Target: "Concept"},
			{Name: "sponsor_source_concept", Field: "sponsor_source_concept_id", Target: "Concept"},
			{Name: "stop_reason_concept", Field: "stop_reason_concept_id", Target: "Concept"},
			{Name: "stop_reason_source_concept", Field: "stop_reason_source_concept_id", Target: "Concept"},
		},
	}
}

func cost() core.Entity {
	return core.Entity{
		Name:   "Cost",
		Table:  "cost",
		Schema: core.CDMSchema,
		Fields: []core.Field{
			{Name: "cost_id", Type: core.Integer, Position: 100, PrimaryKey: true},
			{Name: "cost_event_id", Type: core.Integer, Position: 200},
			{Name: "cost_domain_id", References: core.DomainID, Position: 300},
			{Name: "cost_type_concept_id", References: core.ConceptID, Position: 400},
			{Name: "currency_concept_id", References: core.ConceptID, Position: 500, Nullable: true},
			{Name: "total_charge", Type: core.Numeric, Position: 600, Nullable: true},
			{Name: "total_cost", Type: core.Numeric, Position: 700, Nullable: true},
			{Name: "total_paid", Type: core.Numeric, Position: 800, Nullable: true},
			{Name: "paid_by_payer", Type: core.Numeric, Position: 900, Nullable: true},
			{Name: "paid_by_patient", Type: core.Numeric, Position: 1000, Nullable: true},
			{Name: "paid_patient_copay", Type: core.Numeric, Position: 1100, Nullable: true},
			{Name: "paid_patient_coinsurance", Type: core.Numeric, Position: 1200, Nullable: true},
			{Name: "paid_patient_deductible", Type: core.Numeric, Position: 1300, Nullable: true},
			{Name: "paid_by_primary", Type: core.Numeric, Position: 1400, Nullable: true},
			{Name: "paid_ingredient_cost", Type: core.Numeric, Position: 1500, Nullable: true},
			{Name: "paid_dispensing_fee", Type: core.Numeric, Position: 1600, Nullable: true},
			{Name: "payer_plan_period_id", References: core.Ref(core.CDMSchema, "payer_plan_period", "payer_plan_period_id"), Position: 1700, Nullable: true},
			{Name: "amount_allowed", Type: core.Numeric, Position: 1800, Nullable: true},
			{Name: "revenue_code_concept_id", References: core.ConceptID, Position: 1900, Nullable: true},
			{Name: "revenue_code_source_value", Type: core.Varchar(50), Position: 2000, Nullable: true},
			{Name: "drg_concept_id", References: core.ConceptID, Position: 2100, Nullable: true},
			{Name: "drg_source_value", Type: core.Varchar(3), Position: 2200, Nullable: true},
		},
		Relationships: []core.Relationship{
			{Name: "cost_domain", Field: "cost_domain_id", Target: "Domain"},
			{Name: "cost_type_concept", Field: "cost_type_concept_id", Target: "Concept"},
			{Name: "currency_concept", Field: "currency_concept_id", Target: "Concept"},
			{Name: "drg_concept", Field: "drg_concept_id", Target: "Concept"},
			{Name: "payer_plan_period", Field: "payer_plan_period_id", Target: "PayerPlanPeriod"},
			{Name: "revenue_code_concept", Field: "revenue_code_concept_id", Target: "Concept"},
		},
	}
}
