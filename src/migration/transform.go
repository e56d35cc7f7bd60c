package migration

import (
	"encoding/json"
	"strings"
	"unicode"
)

// FallbackCategoryID is where products land when their raw category name
// matches nothing in the mapping table.
const FallbackCategoryID = "other-products"

// categoryRule maps a lowercase substring of the raw spreadsheet category to
// a category slug. Rules are evaluated top to bottom and the first match
// wins, so more specific substrings must precede generic ones (e.g.
// "waterproof" before "water").
type categoryRule struct {
	substring string
	id        string
}

var categoryRules = []categoryRule{
	{"waterproof", "waterproofing-chemicals"},
	{"admixture", "concrete-admixtures"},
	{"concrete", "concrete-admixtures"},
	{"grout", "grouts-anchors"},
	{"anchor", "grouts-anchors"},
	{"epoxy", "epoxy-systems"},
	{"coating", "protective-coatings"},
	{"paint", "protective-coatings"},
	{"sealant", "sealants-adhesives"},
	{"adhesive", "sealants-adhesives"},
	{"curing", "curing-compounds"},
	{"repair", "repair-mortars"},
	{"mortar", "repair-mortars"},
	{"water", "waterproofing-chemicals"},
}

// MapCategory resolves a raw spreadsheet category name to a category slug.
// Total: unknown or empty input maps to FallbackCategoryID, never an error.
func MapCategory(raw string) string {
	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "" {
		return FallbackCategoryID
	}
	for _, rule := range categoryRules {
		if strings.Contains(name, rule.substring) {
			return rule.id
		}
	}
	return FallbackCategoryID
}

// DeriveProductCode builds a deterministic synthetic product code from the
// product name: uppercase alphanumerics only, truncated, with a fixed prefix.
// The same name always yields the same code, which makes the products loader
// idempotent across re-runs.
func DeriveProductCode(name string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	code := b.String()
	if len(code) > 12 {
		code = code[:12]
	}
	if code == "" {
		code = "UNNAMED"
	}
	return "CC-" + code
}

// SplitMultiValue splits newline-separated cell text into trimmed, non-empty
// entries. Semicolons are accepted as a secondary separator because some
// spreadsheet exports flatten newlines.
func SplitMultiValue(text string) []string {
	normalized := strings.ReplaceAll(text, ";", "\n")
	parts := strings.Split(normalized, "\n")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			values = append(values, v)
		}
	}
	return values
}

// EncodeJSONList serializes values as a JSON array for the text columns that
// hold multi-value fields. An empty input encodes as "[]", not null, so the
// validator's parseability check holds for every loaded row.
func EncodeJSONList(values []string) string {
	if values == nil {
		values = []string{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		// A []string cannot fail to marshal; keep the loader total anyway.
		return "[]"
	}
	return string(data)
}

// industryRule pairs a lowercase keyword with an industry label. Like
// categoryRules, evaluation is strictly top to bottom and first match wins:
// specific keywords ("petrochem") must precede generic ones ("chem"),
// otherwise company names match the wrong bucket. Company names containing
// several keywords are inherently ambiguous; table order is the only
// tie-break, and that is a documented limitation.
type industryRule struct {
	keyword string
	label   string
}

var industryRules = []industryRule{
	{"petrochem", "Petrochemicals"},
	{"pharma", "Pharmaceuticals"},
	{"chem", "Chemicals"},
	{"cement", "Cement & Concrete"},
	{"concrete", "Cement & Concrete"},
	{"metro", "Infrastructure"},
	{"rail", "Infrastructure"},
	{"infra", "Infrastructure"},
	{"construction", "Construction"},
	{"builder", "Construction"},
	{"engineer", "Engineering"},
	{"power", "Energy & Utilities"},
	{"energy", "Energy & Utilities"},
	{"steel", "Steel & Metals"},
	{"textile", "Textiles"},
	{"paint", "Paints & Coatings"},
}

// DefaultIndustry is assigned when no keyword matches a company name.
const DefaultIndustry = "Manufacturing"

// ClassifyIndustry derives an industry label from a company name by ordered
// keyword matching. Total: always returns a label.
func ClassifyIndustry(companyName string) string {
	name := strings.ToLower(companyName)
	for _, rule := range industryRules {
		if strings.Contains(name, rule.keyword) {
			return rule.label
		}
	}
	return DefaultIndustry
}

// projectDirRule maps a keyword in a project folder name to a project
// category code. Ordered, first match wins.
type projectDirRule struct {
	keyword  string
	category string
}

var projectDirRules = []projectDirRule{
	{"metro", "metro_rail"},
	{"rail", "metro_rail"},
	{"bridge", "roads_bridges"},
	{"road", "roads_bridges"},
	{"highway", "roads_bridges"},
	{"factor", "buildings_factories"},
	{"building", "buildings_factories"},
	{"water", "water_treatment"},
	{"treatment", "water_treatment"},
}

// ProjectCategoryFromDir maps a photo folder name ("Metro Rail") to a project
// category code ("metro_rail"). Unknown folders fall back to "other".
func ProjectCategoryFromDir(dirName string) string {
	name := strings.ToLower(dirName)
	for _, rule := range projectDirRules {
		if strings.Contains(name, rule.keyword) {
			return rule.category
		}
	}
	return "other"
}

// DisplayNameFromFile derives a human-readable name from an image filename:
// "1. Ahmedabad Station.jpg" -> "Ahmedabad Station". It strips the extension
// and any leading numeric ordering prefix, then normalizes separators to
// single spaces.
func DisplayNameFromFile(filename string) string {
	name := filename
	if idx := strings.LastIndex(name, "."); idx > 0 {
		name = name[:idx]
	}

	// Leading ordering prefix: digits followed by punctuation, e.g. "12. " or "3-".
	i := 0
	for i < len(name) && name[i] >= '0' && name[i] <= '9' {
		i++
	}
	if i > 0 && i < len(name) {
		rest := name[i:]
		trimmed := strings.TrimLeft(rest, ".-_) ")
		if trimmed != "" {
			name = trimmed
		}
	}

	name = strings.ReplaceAll(name, "_", " ")
	name = strings.ReplaceAll(name, "-", " ")
	return strings.Join(strings.Fields(name), " ")
}
