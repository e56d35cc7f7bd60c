package migration

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapCategory(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"Waterproofing Chemicals", "waterproofing-chemicals"},
		{"Concrete Admixtures", "concrete-admixtures"},
		{"ADMIXTURE", "concrete-admixtures"},
		{"Epoxy Grouts", "grouts-anchors"},
		{"Epoxy Flooring Systems", "epoxy-systems"},
		{"Protective Coatings", "protective-coatings"},
		{"Industrial Paints", "protective-coatings"},
		{"PU Sealants", "sealants-adhesives"},
		{"Curing Compounds", "curing-compounds"},
		{"Repair Mortars", "repair-mortars"},
		{"Water Stoppers", "waterproofing-chemicals"},
		{"Something Entirely Unknown", FallbackCategoryID},
		{"", FallbackCategoryID},
		{"   ", FallbackCategoryID},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, MapCategory(tc.raw), "raw category %q", tc.raw)
	}
}

func TestMapCategorySpecificBeforeGeneric(t *testing.T) {
	// "waterproof" must win over the generic "water" substring, and every
	// category a rule points at must exist in the seeded set.
	require.Equal(t, "waterproofing-chemicals", MapCategory("Waterproof Coating Primer"))

	known := map[string]bool{}
	for _, c := range DefaultCategories() {
		known[c.Id] = true
	}
	for _, rule := range categoryRules {
		require.True(t, known[rule.id], "rule %q maps to unseeded category %q", rule.substring, rule.id)
	}
	require.True(t, known[FallbackCategoryID])
}

func TestDeriveProductCode(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"SuperPlast 400", "CC-SUPERPLAST40"},
		{"Aqua-Seal", "CC-AQUASEAL"},
		{"x", "CC-X"},
		{"", "CC-UNNAMED"},
		{"!!!", "CC-UNNAMED"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, DeriveProductCode(tc.name))
	}

	// Deterministic: the same name always yields the same code.
	require.Equal(t, DeriveProductCode("SuperPlast 400"), DeriveProductCode("SuperPlast 400"))
}

func TestSplitMultiValue(t *testing.T) {
	require.Equal(t,
		[]string{"Bridges", "Tunnels", "Basements"},
		SplitMultiValue("Bridges\nTunnels\nBasements"))
	require.Equal(t,
		[]string{"Bridges", "Tunnels"},
		SplitMultiValue("Bridges; Tunnels"))
	require.Equal(t,
		[]string{"One"},
		SplitMultiValue("\n  One  \n\n"))
	require.Empty(t, SplitMultiValue(""))
	require.Empty(t, SplitMultiValue("  \n ; \n "))
}

func TestEncodeJSONList(t *testing.T) {
	require.Equal(t, "[]", EncodeJSONList(nil))
	require.Equal(t, "[]", EncodeJSONList([]string{}))
	require.Equal(t, `["a","b"]`, EncodeJSONList([]string{"a", "b"}))
	require.True(t, isJSONStringArray(EncodeJSONList([]string{`quo"ted`})))
}

func TestClassifyIndustry(t *testing.T) {
	cases := []struct {
		company string
		want    string
	}{
		{"Gujarat Petrochemicals Ltd", "Petrochemicals"},
		{"Sun Pharma", "Pharmaceuticals"},
		{"Tata Chemicals", "Chemicals"},
		{"UltraTech Cement", "Cement & Concrete"},
		{"Ahmedabad Metro Corporation", "Infrastructure"},
		{"L&T Construction", "Construction"},
		{"Adani Power", "Energy & Utilities"},
		{"JSW Steel", "Steel & Metals"},
		{"Arvind Textiles", "Textiles"},
		{"Asian Paints", "Paints & Coatings"},
		{"Acme Widgets", DefaultIndustry},
		{"", DefaultIndustry},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, ClassifyIndustry(tc.company), "company %q", tc.company)
	}
}

func TestClassifyIndustryOrdering(t *testing.T) {
	// "petrochem" contains "chem"; the specific rule must be listed first or
	// petrochemical companies collapse into the generic bucket.
	require.Equal(t, "Petrochemicals", ClassifyIndustry("Reliance Petrochem"))

	seen := map[string]int{}
	for i, rule := range industryRules {
		seen[rule.keyword] = i
	}
	require.Less(t, seen["petrochem"], seen["chem"])
}

func TestProjectCategoryFromDir(t *testing.T) {
	cases := []struct {
		dir  string
		want string
	}{
		{"Metro Rail", "metro_rail"},
		{"Railway Stations", "metro_rail"},
		{"Roads & Bridges", "roads_bridges"},
		{"Highway Projects", "roads_bridges"},
		{"Buildings and Factories", "buildings_factories"},
		{"Water Treatment Plants", "water_treatment"},
		{"Miscellaneous", "other"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, ProjectCategoryFromDir(tc.dir), "dir %q", tc.dir)
	}
}

func TestDisplayNameFromFile(t *testing.T) {
	cases := []struct {
		file string
		want string
	}{
		{"1. Ahmedabad Station.jpg", "Ahmedabad Station"},
		{"12. Sabarmati Bridge.png", "Sabarmati Bridge"},
		{"3-Riverfront_Walkway.webp", "Riverfront Walkway"},
		{"tata_chemicals.svg", "tata chemicals"},
		{"Plain Name.jpeg", "Plain Name"},
		{"42.jpg", "42"},
		{"  spaced  out .png", "spaced out"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, DisplayNameFromFile(tc.file), "file %q", tc.file)
	}
}
