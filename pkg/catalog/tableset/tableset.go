// Package tableset holds the expected table-name sets for each catalog.
// Verification compares a live database against these literal lists, so
// they are written out by hand rather than derived from the catalogs.
package tableset

import (
	"fmt"
	"slices"
)

// Set is a set of table names.
type Set map[string]struct{}

// Of builds a set from names.
func Of(names ...string) Set {
	s := make(Set, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Has reports whether name is in the set.
func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Union returns a new set holding the members of s and every other set.
func (s Set) Union(others ...Set) Set {
	out := make(Set, len(s))
	for n := range s {
		out[n] = struct{}{}
	}
	for _, o := range others {
		for n := range o {
			out[n] = struct{}{}
		}
	}
	return out
}

// Without returns a new set with names removed.
func (s Set) Without(names ...string) Set {
	out := s.Union()
	for _, n := range names {
		delete(out, n)
	}
	return out
}

// Sorted returns the members in sorted order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}

// Diff returns the names missing from got and the names got has in excess.
func (s Set) Diff(got []string) (missing, unexpected []string) {
	have := Of(got...)
	for n := range s {
		if !have.Has(n) {
			missing = append(missing, n)
		}
	}
	for n := range have {
		if !s.Has(n) {
			unexpected = append(unexpected, n)
		}
	}
	slices.Sort(missing)
	slices.Sort(unexpected)
	return missing, unexpected
}

var (
	// Vocabulary is shared by every release.
	Vocabulary = Of(
		"concept", "concept_ancestor", "concept_class", "concept_relationship",
		"concept_synonym", "domain", "drug_strength", "relationship", "vocabulary",
	)

	// CDM531 lists the non-vocabulary tables of CDM 5.3.1.
	CDM531 = Of(
		"care_site", "cdm_source", "condition_era", "condition_occurrence", "cost",
		"death", "device_exposure", "dose_era", "drug_era", "drug_exposure",
		"fact_relationship", "location", "measurement", "metadata", "note",
		"note_nlp", "observation", "observation_period", "payer_plan_period",
		"person", "procedure_occurrence", "provider", "specimen", "visit_detail",
		"visit_occurrence", "source_to_concept_map",
	)

	// CDM54 lists the non-vocabulary tables of CDM 5.4.
	CDM54 = Of(
		"care_site", "cdm_source", "condition_era", "condition_occurrence", "cost",
		"death", "device_exposure", "dose_era", "drug_era", "drug_exposure",
		"episode", "episode_event", "fact_relationship", "location", "measurement",
		"metadata", "note", "note_nlp", "observation", "observation_period",
		"payer_plan_period", "person", "procedure_occurrence", "provider",
		"specimen", "visit_detail", "visit_occurrence", "source_to_concept_map",
	)

	// CDM600 lists the non-vocabulary tables of CDM 6.0.0.
	CDM600 = CDM531.Without("death").Union(Of("location_history", "survey_conduct"))

	// Legacy lists the cohort tables of the legacy overlay.
	Legacy = Of("cohort", "cohort_definition", "cohort_attribute", "attribute_definition")

	// Extras lists the helper tables outside the official sets.
	Extras = Of("source_to_concept_map_version", "stem_table")

	// Custom lists the tables the custom example adds.
	Custom = Of("cloudspine")
)

var expected = map[string]func() Set{
	"5.3.1":        func() Set { return Vocabulary.Union(CDM531) },
	"5.3.1+extras": func() Set { return Vocabulary.Union(CDM531, Extras) },
	"5.4":          func() Set { return Vocabulary.Union(CDM54) },
	"5.4+extras":   func() Set { return Vocabulary.Union(CDM54, Extras) },
	"5.4+legacy":   func() Set { return Vocabulary.Union(CDM54, Legacy) },
	"5.4+custom":   func() Set { return Vocabulary.Union(CDM54, Custom) },
	"6.0.0":        func() Set { return Vocabulary.Union(CDM600) },
	"6.0.0+extras": func() Set { return Vocabulary.Union(CDM600, Extras) },
}

// For returns the full expected table set of a registered catalog.
func For(catalog string) (Set, error) {
	f, ok := expected[catalog]
	if !ok {
		return nil, fmt.Errorf("no expected table set for catalog %q", catalog)
	}
	return f(), nil
}

// NonVocabulary returns the expected set of a catalog without the vocabulary tables.
func NonVocabulary(catalog string) (Set, error) {
	s, err := For(catalog)
	if err != nil {
		return nil, err
	}
	return s.Without(Vocabulary.Sorted()...), nil
}
