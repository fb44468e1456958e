package resolver

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/kubev2v/switch-inventory/internal/store/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FilterSet holds the constraints derived from a question.
// An empty list or an unset flag leaves its dimension unconstrained.
type FilterSet struct {
	Statuses       []string
	Locations      []string
	Vendors        []string
	WarrantyWindow bool
	MinValue       *float64
	FreePorts      bool
}

var (
	headquartersTokens = []string{"Sede", "SEDE", "Matriz"}
	branchTokens       = []string{"Filial", "Unidade"}

	vendorKeywords = []string{"cisco", "hp", "dlink", "d-link", "tp-link", "mikrotik", "juniper", "huawei"}

	minValuePattern = regexp.MustCompile(`(?:valor|value).*?(\d+[.,]?\d*)`)
)

// statusRules are evaluated first-match: the inactive family wins when both appear.
var statusRules = []rule[FilterSet]{
	{
		name: "inactive",
		when: anyOf("inativo", "manutenção", "parado", "inactive", "maintenance", "stopped"),
		effect: func(f *FilterSet) {
			f.Statuses = []string{model.StatusInactive, model.StatusMaintenance, model.StatusInactiveMaintenance}
		},
	},
	{
		name: "active",
		when: anyOf("ativo", "produção", "funcionando", "active", "production", "running"),
		effect: func(f *FilterSet) {
			f.Statuses = []string{model.StatusInProduction, model.StatusActive}
		},
	},
}

// locationRules are evaluated first-match, headquarters before branches.
var locationRules = []rule[FilterSet]{
	{
		name:   "headquarters",
		when:   anyOf("sede", "matriz", "headquarters", "main office"),
		effect: func(f *FilterSet) { f.Locations = slices.Clone(headquartersTokens) },
	},
	{
		name:   "branch",
		when:   anyOf("filial", "branch"),
		effect: func(f *FilterSet) { f.Locations = slices.Clone(branchTokens) },
	},
}

// flagRules are evaluated all-match.
var flagRules = []rule[FilterSet]{
	{
		name:   "warranty",
		when:   anyOf("garantia", "vencimento", "vencer", "warranty", "expiration", "expiring"),
		effect: func(f *FilterSet) { f.WarrantyWindow = true },
	},
	{
		name: "free-ports",
		when: allOf(
			anyOf("portas", "ports"),
			anyOf("livres", "disponíveis", "free", "available"),
		),
		effect: func(f *FilterSet) { f.FreePorts = true },
	},
}

// ResolveFilters derives the filter set of a question. It never fails: a question
// without any known keyword yields an unconstrained filter set.
func ResolveFilters(raw string) FilterSet {
	q := newQuestion(raw)

	var filters FilterSet
	firstMatch(statusRules, q, &filters)
	firstMatch(locationRules, q, &filters)
	allMatch(vendorRules, q, &filters)
	allMatch(flagRules, q, &filters)
	filters.MinValue = extractMinValue(q.text)

	return filters
}

// vendorRules are evaluated all-match, one rule per vendor keyword.
var vendorRules = newVendorRules()

func newVendorRules() []rule[FilterSet] {
	caser := cases.Title(language.Und)
	rules := make([]rule[FilterSet], 0, len(vendorKeywords))
	for _, keyword := range vendorKeywords {
		vendor := caser.String(keyword)
		rules = append(rules, rule[FilterSet]{
			name: keyword,
			when: anyOf(keyword),
			effect: func(f *FilterSet) {
				if !slices.Contains(f.Vendors, vendor) {
					f.Vendors = append(f.Vendors, vendor)
				}
			},
		})
	}
	return rules
}

// extractMinValue parses the first number following "valor" or "value".
// A number that does not parse is dropped.
func extractMinValue(text string) *float64 {
	match := minValuePattern.FindStringSubmatch(text)
	if match == nil {
		return nil
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(match[1], ",", "."), 64)
	if err != nil {
		return nil
	}
	return &v
}

// IsEmpty reports whether no dimension is constrained.
func (f FilterSet) IsEmpty() bool {
	return len(f.Statuses) == 0 &&
		len(f.Locations) == 0 &&
		len(f.Vendors) == 0 &&
		!f.WarrantyWindow &&
		f.MinValue == nil &&
		!f.FreePorts
}

// Summary renders the constrained dimensions, or "" when there is none.
func (f FilterSet) Summary() string {
	parts := []string{}
	if len(f.Statuses) > 0 {
		parts = append(parts, "Status: "+strings.Join(f.Statuses, ", "))
	}
	if len(f.Vendors) > 0 {
		parts = append(parts, "Fabricante: "+strings.Join(f.Vendors, ", "))
	}
	if len(f.Locations) > 0 {
		parts = append(parts, "Local: "+strings.Join(f.Locations, ", "))
	}
	if f.WarrantyWindow {
		parts = append(parts, fmt.Sprintf("Garantia: próximos %d dias", model.WarrantyWindowDays))
	}
	if f.MinValue != nil {
		parts = append(parts, "Valor mínimo: "+formatCurrency(*f.MinValue))
	}
	if f.FreePorts {
		parts = append(parts, "Portas livres: sim")
	}
	return strings.Join(parts, ", ")
}
