package cdm54

import "github.com/leapstack-labs/omopcdm/pkg/core"

func concept() core.Entity {
	return core.Entity{
		Name:   "Concept",
		Table:  "concept",
		Schema: core.VocabularySchema,
		Fields: []core.Field{
			{Name: "concept_id", Type: core.Integer, Position: 100, PrimaryKey: true, Index: true},
			{Name: "concept_name", Type: core.Varchar(255), Position: 200},
			{Name: "domain_id", References: core.DomainID, Position: 300, Index: true},
			{Name: "vocabulary_id", References: core.VocabularyID, Position: 400, Index: true},
			{Name: "concept_class_id", References: core.ConceptClassID, Position: 500, Index: true},
			{Name: "standard_concept", Type: core.Varchar(1), Position: 600, Nullable: true},
			{Name: "concept_code", Type: core.Varchar(50), Position: 700, Index: true},
			{Name: "valid_start_date", Type: core.Date, Position: 800},
			{Name: "valid_end_date", Type: core.Date, Position: 900},
			{Name: "invalid_reason", Type: core.Varchar(1), Position: 1000, Nullable: true},
		},
		Relationships: []core.Relationship{
			{Name: "concept_class", Field: "concept_class_id", Target: "ConceptClass"},
			{Name: "domain", Field: "domain_id", Target: "Domain"},
			{Name: "vocabulary", Field: "vocabulary_id", Target: "Vocabulary"},
		},
	}
}

func conceptClass() core.Entity {
	return core.Entity{
		Name:   "ConceptClass",
		Table:  "concept_class",
		Schema: core.VocabularySchema,
		Fields: []core.Field{
			{Name: "concept_class_id", Type: core.Varchar(20), Position: 100, PrimaryKey: true, Index: true},
			{Name: "concept_class_name", Type: core.Varchar(255), Position: 200},
			{Name: "concept_class_concept_id", References: core.ConceptID, Position: 300},
		},
		Relationships: []core.Relationship{
			{Name: "concept_class_concept", Field: "concept_class_concept_id", Target: "Concept"},
		},
	}
}

func domain() core.Entity {
	return core.Entity{
		Name:   "Domain",
		Table:  "domain",
		Schema: core.VocabularySchema,
		Fields: []core.Field{
			{Name: "domain_id", Type: core.Varchar(20), Position: 100, PrimaryKey: true, Index: true},
			{Name: "domain_name", Type: core.Varchar(255), Position: 200},
			{Name: "domain_concept_id", References: core.ConceptID, Position: 300},
		},
		Relationships: []core.Relationship{
			{Name: "domain_concept", Field: "domain_concept_id", Target: "Concept"},
		},
	}
}

func vocabulary() core.Entity {
	return core.Entity{
		Name:   "Vocabulary",
		Table:  "vocabulary",
		Schema: core.VocabularySchema,
		Fields: []core.Field{
			{Name: "vocabulary_id", Type: core.Varchar(20), Position: 100, PrimaryKey: true, Index: true},
			{Name: "vocabulary_name", Type: core.Varchar(255), Position: 200},
			{Name: "vocabulary_reference", Type: core.Varchar(255), Position: 300, Nullable: true},
			{Name: "vocabulary_version", Type: core.Varchar(255), Position: 400, Nullable: true},
			{Name: "vocabulary_concept_id", References: core.ConceptID, Position: 500},
		},
		Relationships: []core.Relationship{
			{Name: "vocabulary_concept", Field: "vocabulary_concept_id", Target: "Concept"},
		},
	}
}

func conceptAncestor() core.Entity {
	return core.Entity{
		Name:   "ConceptAncestor",
		Table:  "concept_ancestor",
		Schema: core.VocabularySchema,
		Fields: []core.Field{
			{Name: "ancestor_concept_id", References: core.ConceptID, Position: 100, PrimaryKey: true, Index: true},
			{Name: "descendant_concept_id", References: core.ConceptID, Position: 200, PrimaryKey: true, Index: true},
			{Name: "min_levels_of_separation", Type: core.Integer, Position: 300},
			{Name: "max_levels_of_separation", Type: core.Integer, Position: 400},
		},
		Relationships: []core.Relationship{
			{Name: "ancestor_concept", Field: "ancestor_concept_id", Target: "Concept"},
			{Name: "descendant_concept", Field: "descendant_concept_id", Target: "Concept"},
		},
	}
}

func conceptSynonym() core.Entity {
	return core.Entity{
		Name:   "ConceptSynonym",
		Table:  "concept_synonym",
		Schema: core.VocabularySchema,
		Fields: []core.Field{
			{Name: "concept_id", References: core.ConceptID, Position: 100, PrimaryKey: true, Index: true},
			{Name: "concept_synonym_name", Type: core.Varchar(1000), Position: 200, PrimaryKey: true},
			{Name: "language_concept_id", References: core.ConceptID, Position: 300, PrimaryKey: true},
		},
		Relationships: []core.Relationship{
			{Name: "concept", Field: "concept_id", Target: "Concept"},
			{Name: "language_concept", Field: "language_concept_id", Target: "Concept"},
		},
	}
}

func drugStrength() core.Entity {
	return core.Entity{
		Name:   "DrugStrength",
		Table:  "drug_strength",
		Schema: core.VocabularySchema,
		Fields: []core.Field{
			{Name: "drug_concept_id", References: core.ConceptID, Position: 100, PrimaryKey: true, Index: true},
			{Name: "ingredient_concept_id", References: core.ConceptID, Position: 200, PrimaryKey: true, Index: true},
			{Name: "amount_value", Type: core.Numeric, Position: 300, Nullable: true},
			{Name: "amount_unit_concept_id", References: core.ConceptID, Position: 400, Nullable: true},
			{Name: "numerator_value", Type: core.Numeric, Position: 500, Nullable: true},
			{Name: "numerator_unit_concept_id", References: core.ConceptID, Position: 600, Nullable: true},
			{Name: "denominator_value", Type: core.Numeric, Position: 700, Nullable: true},
			{Name: "denominator_unit_concept_id", References: core.ConceptID, Position: 800, Nullable: true},
			{Name: "box_size", Type: core.Integer, Position: 900, Nullable: true},
			{Name: "valid_start_date", Type: core.Date, Position: 1000},
			{Name: "valid_end_date", Type: core.Date, Position: 1100},
			{Name: "invalid_reason", Type: core.Varchar(1), Position: 1200, Nullable: true},
		},
		Relationships: []core.Relationship{
			{Name: "amount_unit_concept", Field: "amount_unit_concept_id", Target: "Concept"},
			{Name: "denominator_unit_concept", Field: "denominator_unit_concept_id", Target: "Concept"},
			{Name: "drug_concept", Field: "drug_concept_id", Target: "Concept"},
			{Name: "ingredient_concept", Field: "ingredient_concept_id", Target: "Concept"},
			{Name: "numerator_unit_concept", Field: "numerator_unit_concept_id", Target: "Concept"},
		},
	}
}

func relationship() core.Entity {
	return core.Entity{
		Name:   "Relationship",
		Table:  "relationship",
		Schema: core.VocabularySchema,
		Fields: []core.Field{
			{Name: "relationship_id", Type: core.Varchar(20), Position: 100, PrimaryKey: true},
			{Name: "relationship_name", Type: core.Varchar(255), Position: 200},
			{Name: "is_hierarchical", Type: core.Varchar(1), Position: 300},
			{Name: "defines_ancestry", Type: core.Varchar(1), Position: 400},
			{Name: "reverse_relationship_id", References: core.Ref(core.VocabularySchema, "relationship", "relationship_id"), Position: 500},
			{Name: "relationship_concept_id", References: core.ConceptID, Position: 600},
		},
		Relationships: []core.Relationship{
			{Name: "relationship_concept", Field: "relationship_concept_id", Target: "Concept"},
			{Name: "reverse_relationship", Field: "reverse_relationship_id", Target: "Relationship"},
		},
	}
}

func conceptRelationship() core.Entity {
	return core.Entity{
		Name:   "ConceptRelationship",
		Table:  "concept_relationship",
		Schema: core.VocabularySchema,
		Fields: []core.Field{
			{Name: "concept_id_1", References: core.ConceptID, Position: 100, PrimaryKey: true, Index: true},
			{Name: "concept_id_2", References: core.ConceptID, Position: 200, PrimaryKey: true, Index: true},
			{Name: "relationship_id", References: core.Ref(core.VocabularySchema, "relationship", "relationship_id"), Position: 300, PrimaryKey: true, Index: true},
			{Name: "valid_start_date", Type: core.Date, Position: 400},
			{Name: "valid_end_date", Type: core.Date, Position: 500},
			{Name: "invalid_reason", Type: core.Varchar(1), Position: 600, Nullable: true},
		},
		Relationships: []core.Relationship{
			{Name: "concept_1", Field: "concept_id_1", Target: "Concept"},
			{Name: "concept_2", Field: "concept_id_2", Target: "Concept"},
			{Name: "relationship", Field: "relationship_id", Target: "Relationship"},
		},
	}
}

func sourceToConceptMap() core.Entity {
	return core.Entity{
		Name:   "SourceToConceptMap",
		Table:  "source_to_concept_map",
		Schema: core.CDMSchema,
		Fields: []core.Field{
			{Name: "source_code", Type: core.Varchar(1000), Position: 100, PrimaryKey: true, Index: true},
			{Name: "source_concept_id", References: core.ConceptID, Position: 200},
			{Name: "source_vocabulary_id", References: core.VocabularyID, Position: 300, PrimaryKey: true, Index: true},
			{Name: "source_code_description", Type: core.Varchar(255), Position: 400, Nullable: true},
			{Name: "target_concept_id", References: core.ConceptID, Position: 500, PrimaryKey: true, Index: true},
			{Name: "target_vocabulary_id", References: core.VocabularyID, Position: 600, Index: true},
			{Name: "valid_start_date", Type: core.Date, Position: 700},
			{Name: "valid_end_date", Type: core.Date, Position: 800, PrimaryKey: true},
			{Name: "invalid_reason", Type: core.Varchar(1), Position: 900, Nullable: true},
		},
		Relationships: []core.Relationship{
			{Name: "source_concept", Field: "source_concept_id", Target: "Concept"},
			{Name: "source_vocabulary", Field: "source_vocabulary_id", Target: "Vocabulary"},
			{Name: "target_concept", Field: "target_concept_id", Target: "Concept"},
			{Name: "target_vocabulary", Field: "target_vocabulary_id", Target: "Vocabulary"},
		},
	}
}
