package resolver

import (
	"fmt"

	"github.com/kubev2v/switch-inventory/internal/store/model"
)

// FormatStats renders the live inventory figures returned by the stats command.
func FormatStats(stats model.InventoryStats) string {
	r := &report{}
	r.add(
		"📊 **ESTATÍSTICAS DO SISTEMA - TEMPO REAL**",
		"",
		fmt.Sprintf("🔢 **Total de Switches**: %d", stats.Total),
		fmt.Sprintf("🟢 **Em Produção**: %d", stats.Active),
		fmt.Sprintf("🔴 **Inativos/Manutenção**: %d", stats.Inactive),
		fmt.Sprintf("🏷️ **Criticidade Alta**: %d", stats.HighCriticality),
		fmt.Sprintf("⚠️ **Garantias vencendo em %d dias**: %d", model.WarrantyWindowDays, stats.WarrantyExpiring),
		"💰 **Valor Total em Equipamentos**: "+formatCurrency(stats.TotalValue),
	)

	if len(stats.ByVendor) > 0 {
		r.add("", "🏭 **Distribuição por Fabricante:**")
		for _, group := range stats.ByVendor {
			r.add(fmt.Sprintf("   • %s: %d", group.Vendor, group.Count))
		}
	}

	return r.String()
}
