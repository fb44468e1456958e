package resolver

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/kubev2v/switch-inventory/internal/store/model"
)

const (
	dateLayout    = "02/01/2006"
	notAvailable  = "N/A"
	truncatedHint = "ℹ️ Mais de 10 switches encontrados; refine a pergunta para ver a lista."
)

// FormatReport renders the result of a question. now is only used for the
// remaining warranty days, which are shown when the warranty filter is set.
func FormatReport(question string, filters FilterSet, result *Result, now time.Time) string {
	if result.Empty {
		return fmt.Sprintf("📭 Nenhum switch encontrado para: '%s'", question)
	}

	r := &report{}
	r.add(fmt.Sprintf("🎯 **RESULTADO PARA: '%s'**", question), "")

	if summary := filters.Summary(); summary != "" {
		r.add("🔍 **Filtros aplicados**: " + summary)
	}

	agg := result.Aggregation
	if agg.Aggregates() {
		if agg.Count {
			r.add(fmt.Sprintf("📊 **Total de Switches**: %d", result.Total))
		}
		if agg.Sum {
			r.add("💰 **Valor Total**: " + formatCurrency(result.Sum))
		}
		if agg.GroupByVendor && len(result.Vendors) > 0 {
			r.add("", "🏭 **Distribuição por Fabricante:**")
			for _, group := range result.Vendors {
				line := fmt.Sprintf("   • **%s**: %d switches", group.Vendor, group.Count)
				if group.Total != 0 {
					line += " | 💰 " + formatCurrency(group.Total)
				}
				r.add(line)
			}
		}
		if len(result.Switches) > 0 {
			r.add("", "📋 **Switches Encontrados:**", "")
		}
	} else {
		r.add(fmt.Sprintf("📊 **Total encontrado: %d switches**", result.Total), "")
	}

	for _, sw := range result.Switches {
		r.addSwitch(sw, filters.WarrantyWindow, now)
	}

	if result.Truncated {
		r.add(truncatedHint)
	}

	return r.String()
}

type report struct {
	lines []string
}

func (r *report) add(lines ...string) {
	r.lines = append(r.lines, lines...)
}

func (r *report) addSwitch(sw model.Switch, warrantyWindow bool, now time.Time) {
	indicator := "🔴"
	if sw.IsActive() {
		indicator = "🟢"
	}

	warranty := notAvailable
	if sw.WarrantyEnd != nil {
		warranty = sw.WarrantyEnd.Format(dateLayout)
		if warrantyWindow {
			warranty += fmt.Sprintf(" (⚠️ %d dias)", model.DaysUntil(now, *sw.WarrantyEnd))
		}
	}

	r.add(
		fmt.Sprintf("%s **%s** - %s", indicator, sw.AssetID, sw.Name),
		fmt.Sprintf("   🏭 %s | 🏢 %s", sw.Vendor, stringOrNA(sw.Location)),
		fmt.Sprintf("   📍 %s | 🏷️ %s", sw.Site, sw.Criticality),
		fmt.Sprintf("   🔌 Portas: %d/%d | 💰 %s", intOrZero(sw.CopperPortsUsed), intOrZero(sw.CopperPorts), formatCurrency(floatOrZero(sw.AcquisitionValue))),
		"   📅 Garantia até: "+warranty,
		"",
	)
}

func (r *report) String() string {
	return strings.TrimRight(strings.Join(r.lines, "\n"), "\n")
}

// formatCurrency renders v as "R$ 1,234.56".
func formatCurrency(v float64) string {
	return "R$ " + humanize.FormatFloat("#,###.##", v)
}

func stringOrNA(s *string) string {
	if s == nil || *s == "" {
		return notAvailable
	}
	return *s
}

func intOrZero(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}

func floatOrZero(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
