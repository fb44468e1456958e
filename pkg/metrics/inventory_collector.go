package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/kubev2v/switch-inventory/internal/store"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

type inventoryStatsCollector struct {
	store            store.Store
	totalSwitches    *prometheus.Desc
	activeSwitches   *prometheus.Desc
	inactiveSwitches *prometheus.Desc
	expiringWarranty *prometheus.Desc
	totalValue       *prometheus.Desc
	switchesByVendor *prometheus.Desc
}

func NewInventoryStatsCollector(s store.Store) prometheus.Collector {
	fqName := func(name string) string {
		return fmt.Sprintf("%s_inventory_%s", switchInventory, name)
	}

	return &inventoryStatsCollector{
		store: s,
		totalSwitches: prometheus.NewDesc(
			fqName("switches_total"),
			"Total number of switches.",
			nil,
			prometheus.Labels{},
		),
		activeSwitches: prometheus.NewDesc(
			fqName("active_switches_total"),
			"Number of switches in production or active.",
			nil,
			prometheus.Labels{},
		),
		inactiveSwitches: prometheus.NewDesc(
			fqName("inactive_switches_total"),
			"Number of inactive switches or switches in maintenance.",
			nil,
			prometheus.Labels{},
		),
		expiringWarranty: prometheus.NewDesc(
			fqName("warranty_expiring_total"),
			"Number of switches whose warranty ends within 30 days.",
			nil,
			prometheus.Labels{},
		),
		totalValue: prometheus.NewDesc(
			fqName("acquisition_value_total"),
			"Sum of the acquisition values.",
			nil,
			prometheus.Labels{},
		),
		switchesByVendor: prometheus.NewDesc(
			fqName("switches_by_vendor_total"),
			"Number of switches by vendor.",
			[]string{"vendor"},
			prometheus.Labels{},
		),
	}
}

func (c *inventoryStatsCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.totalSwitches
	ch <- c.activeSwitches
	ch <- c.inactiveSwitches
	ch <- c.expiringWarranty
	ch <- c.totalValue
	ch <- c.switchesByVendor
}

// Collect implements Collector.
func (c *inventoryStatsCollector) Collect(ch chan<- prometheus.Metric) {
	stats, err := c.store.Statistics(context.Background(), time.Now())
	if err != nil {
		zap.S().Named("inventory_collector").Errorf("failed to collect inventory statistics: %s", err)
		return
	}
	ch <- prometheus.MustNewConstMetric(c.totalSwitches, prometheus.GaugeValue, float64(stats.Total))
	ch <- prometheus.MustNewConstMetric(c.activeSwitches, prometheus.GaugeValue, float64(stats.Active))
	ch <- prometheus.MustNewConstMetric(c.inactiveSwitches, prometheus.GaugeValue, float64(stats.Inactive))
	ch <- prometheus.MustNewConstMetric(c.expiringWarranty, prometheus.GaugeValue, float64(stats.WarrantyExpiring))
	ch <- prometheus.MustNewConstMetric(c.totalValue, prometheus.GaugeValue, stats.TotalValue)

	for _, group := range stats.ByVendor {
		ch <- prometheus.MustNewConstMetric(c.switchesByVendor, prometheus.GaugeValue, float64(group.Count), group.Vendor)
	}
}
