package cdm600

import "github.com/leapstack-labs/omopcdm/pkg/core"

func payerPlanPeriod() core.Entity {
	return core.Entity{
		Name:   "PayerPlanPeriod",
		Table:  "payer_plan_period",
		Schema: core.CDMSchema,
		Fields: []core.Field{
			{Name: "payer_plan_period_id", Type: core.BigInteger, Position: 100, PrimaryKey: true},
			{Name: "person_id", References: core.PersonID, Position: 200, Index: true},
			{Name: "contract_person_id", References: core.PersonID, Position: 300, Nullable: true},
			{Name: "payer_plan_period_start_date", Type: core.Date, Position: 400},
			{Name: "payer_plan_period_end_date", Type: core.Date, Position: 500},
			{Name: "payer_concept_id", References: core.ConceptID, Position: 600},
			{Name: "plan_concept_id", References: core.ConceptID, Position: 700},
			{Name: "contract_concept_id", References: core.ConceptID, Position: 800},
			{Name: "sponsor_concept_id", References: core.ConceptID, Position: 900},
			{Name: "stop_reason_concept_id", References: core.ConceptID, Position: 1000},
			{Name: "payer_source_value", Type: core.Varchar(50), Position: 1100, Nullable: true},
			{Name: "payer_source_concept_id", References: core.ConceptID, Position: 1200},
			{Name: "plan_source_value", Type: core.Varchar(50), Position: 1300, Nullable: true},
			{Name: "plan_source_concept_id", References: core.ConceptID, Position: 1400},
			{Name: "contract_source_value", Type: core.Varchar(50), Position: 1500, Nullable: true},
			{Name: "contract_source_concept_id", References: core.ConceptID, Position: 1600},
			{Name: "sponsor_source_value", Type: core.Varchar(50), Position: 1700, Nullable: true},
			{Name: "sponsor_source_concept_id", References: core.ConceptID, Position: 1800},
			{Name: "family_source_value", Type: core.Varchar(50), Position: 1900, Nullable: true},
			{Name: "stop_reason_source_value", Type: core.Varchar(50), Position: 2000, Nullable: true},
			{Name: "stop_reason_source_concept_id", References: core.ConceptID, Position: 2100},
		},
		Relationships: []core.Relationship{
			{Name: "contract_concept", Field: "contract_concept_id", Target: "Concept"},
			{Name: "contract_person", Field: "contract_person_id", Target: "Person"},
			{Name: "contract_source_concept", Field: "contract_source_concept_id", Target: "Concept"},
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
			{Name: "cost_id", Type: core.BigInteger, Position: 100, PrimaryKey: true},
			{Name: "person_id", References: core.PersonID, Position: 200, Index: true},
			{Name: "cost_event_id", Type: core.BigInteger, Position: 300},
			{Name: "cost_event_field_concept_id", Type: core.Integer, Position: 400},
			{Name: "cost_concept_id", References: core.ConceptID, Position: 500},
			{Name: "cost_type_concept_id", References: core.ConceptID, Position: 600},
			{Name: "currency_concept_id", References: core.ConceptID, Position: 700},
			{Name: "cost", Type: core.Numeric, Position: 800, Nullable: true},
			{Name: "incurred_date", Type: core.Date, Position: 900},
			{Name: "billed_date", Type: core.Date, Position: 1000, Nullable: true},
			{Name: "paid_date", Type: core.Date, Position: 1100, Nullable: true},
			{Name: "revenue_code_concept_id", References: core.ConceptID, Position: 1200},
			{Name: "drg_concept_id", References: core.ConceptID, Position: 1300},
			{Name: "cost_source_value", Type: core.Varchar(50), Position: 1400, Nullable: true},
			{Name: "cost_source_concept_id", References: core.ConceptID, Position: 1500},
			{Name: "revenue_code_source_value", Type: core.Varchar(50), Position: 1600, Nullable: true},
			{Name: "drg_source_value", Type: core.Varchar(3), Position: 1700, Nullable: true},
			{Name: "payer_plan_period_id", References: core.Ref(core.CDMSchema, "payer_plan_period", "payer_plan_period_id"), Position: 1800, Nullable: true},
		},
		Relationships: []core.Relationship{
			{Name: "cost_concept", Field: "cost_concept_id", Target: "Concept"},
			{Name: "cost_source_concept", Field: "cost_source_concept_id", Target: "Concept"},
			{Name: "cost_type_concept", Field: "cost_type_concept_id", Target: "Concept"},
			{Name: "currency_concept", Field: "currency_concept_id", Target: "Concept"},
			{Name: "drg_concept", Field: "drg_concept_id", Target: "Concept"},
			{Name: "payer_plan_period", Field: "payer_plan_period_id", Target: "PayerPlanPeriod"},
			{Name: "person", Field: "person_id", Target: "Person"},
			{Name: "revenue_code_concept", Field: "revenue_code_concept_id", Target: "Concept"},
		},
	}
}
