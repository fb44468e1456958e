package resolver

import "strings"

// question is the input every rule is evaluated against.
type question struct {
	text   string // lower-cased and trimmed
	intent Intent
}

func newQuestion(raw string) question {
	return question{text: normalize(raw)}
}

func normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

type condition func(q question) bool

// rule applies its effect to T when its condition holds.
type rule[T any] struct {
	name   string
	when   condition
	effect func(*T)
}

// firstMatch applies the first rule whose condition holds and ignores the rest.
func firstMatch[T any](rules []rule[T], q question, target *T) {
	for _, r := range rules {
		if r.when(q) {
			r.effect(target)
			return
		}
	}
}

// allMatch applies every rule whose condition holds, in table order.
func allMatch[T any](rules []rule[T], q question, target *T) {
	for _, r := range rules {
		if r.when(q) {
			r.effect(target)
		}
	}
}

// anyOf holds when the text contains at least one of the keywords.
func anyOf(keywords ...string) condition {
	return func(q question) bool {
		for _, k := range keywords {
			if strings.Contains(q.text, k) {
				return true
			}
		}
		return false
	}
}

// allOf holds when every condition holds.
func allOf(conditions ...condition) condition {
	return func(q question) bool {
		for _, c := range conditions {
			if !c(q) {
				return false
			}
		}
		return true
	}
}
