package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	switchInventory = "switch_inventory"

	// Question metrics
	questionsTotal = "questions_total"

	// Import metrics
	importedSwitchesTotal = "imported_switches_total"

	// Labels
	commandLabel      = "command"
	failedLabel       = "failed"
	importResultLabel = "result"
)

var questionsTotalLabels = []string{
	commandLabel,
	failedLabel,
}

var importedSwitchesTotalLabels = []string{
	importResultLabel,
}

/**
* Metrics definition
**/
var questionsTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: switchInventory,
		Name:      questionsTotal,
		Help:      "number of questions answered, by command",
	},
	questionsTotalLabels,
)

var importedSwitchesTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: switchInventory,
		Name:      importedSwitchesTotal,
		Help:      "number of spreadsheet rows processed by the importer",
	},
	importedSwitchesTotalLabels,
)

func IncreaseQuestionsTotalMetric(command string, failed bool) {
	labels := prometheus.Labels{
		commandLabel: command,
		failedLabel:  strconv.FormatBool(failed),
	}
	questionsTotalMetric.With(labels).Inc()
}

func IncreaseImportedSwitchesMetric(imported, rejected int) {
	importedSwitchesTotalMetric.With(prometheus.Labels{importResultLabel: "imported"}).Add(float64(imported))
	importedSwitchesTotalMetric.With(prometheus.Labels{importResultLabel: "rejected"}).Add(float64(rejected))
}

func init() {
	registerMetrics()
}

func registerMetrics() {
	prometheus.MustRegister(questionsTotalMetric)
	prometheus.MustRegister(importedSwitchesTotalMetric)
	prometheus.MustRegister(totalUniqueCallersMetric)
}
