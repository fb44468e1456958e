package resolver

// Aggregation tells the executor which summaries to compute and whether to list records.
type Aggregation struct {
	Count         bool
	Sum           bool
	GroupByVendor bool
	ShowList      bool
}

func DefaultAggregation() Aggregation {
	return Aggregation{ShowList: true}
}

// Aggregates reports whether at least one summary was requested.
func (a Aggregation) Aggregates() bool {
	return a.Count || a.Sum || a.GroupByVendor
}

// aggregationRules are evaluated all-match in table order. A later rule may clear
// ShowList but none sets it back.
var aggregationRules = []rule[Aggregation]{
	{
		name: "count",
		when: func(q question) bool { return q.intent.Count && !q.intent.List },
		effect: func(a *Aggregation) {
			a.Count = true
			a.ShowList = false
		},
	},
	{
		name: "sum",
		when: allOf(
			func(q question) bool { return q.intent.Value },
			anyOf("total", "soma", "sum"),
		),
		effect: func(a *Aggregation) { a.Sum = true },
	},
	{
		name: "group-by-vendor",
		when: anyOf("por fabricante", "distribuição", "by vendor", "distribution"),
		effect: func(a *Aggregation) {
			a.GroupByVendor = true
			a.ShowList = false
		},
	},
}

// ResolveAggregation derives the aggregation directive from the question and its intent.
func ResolveAggregation(raw string, intent Intent) Aggregation {
	q := newQuestion(raw)
	q.intent = intent

	agg := DefaultAggregation()
	allMatch(aggregationRules, q, &agg)
	return agg
}
