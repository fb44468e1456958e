package resolver

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/kubev2v/switch-inventory/internal/store"
	"go.uber.org/zap"
	"k8s.io/utils/clock"
)

// Command is the route taken by a question.
type Command string

const (
	CommandHelp  Command = "help"
	CommandStats Command = "stats"
	CommandQuery Command = "query"
)

var (
	helpCommands  = []string{"ajuda", "help", "?", "como usar", "how to use"}
	statsCommands = []string{"estatísticas", "estatisticas", "statistics", "stats", "dashboard"}
)

// Classify returns the route of a question. Commands are matched literally,
// ignoring case and surrounding blanks.
func Classify(question string) Command {
	text := normalize(question)
	switch {
	case slices.Contains(helpCommands, text):
		return CommandHelp
	case slices.Contains(statsCommands, text):
		return CommandStats
	default:
		return CommandQuery
	}
}

// Resolver answers questions about the inventory. It holds no mutable state and
// is safe for concurrent use.
type Resolver struct {
	store     store.Store
	executor  *Executor
	clock     clock.PassiveClock
	startedAt time.Time
	log       *zap.SugaredLogger
}

type Option func(*Resolver)

// WithClock sets the clock used for the warranty window and the start time.
func WithClock(clk clock.PassiveClock) Option {
	return func(r *Resolver) {
		r.clock = clk
	}
}

func New(s store.Store, opts ...Option) *Resolver {
	r := &Resolver{
		store: s,
		clock: clock.RealClock{},
		log:   zap.S().Named("resolver"),
	}
	for _, opt := range opts {
		opt(r)
	}

	r.executor = NewExecutor(s.Switch(), r.clock)
	r.startedAt = r.clock.Now()

	return r
}

// StartedAt returns the time the resolver was built.
func (r *Resolver) StartedAt() time.Time {
	return r.startedAt
}

// Query answers a question. It never fails: errors are rendered as a report line.
func (r *Resolver) Query(ctx context.Context, question string, callerID string) (report string) {
	command := Classify(question)
	r.log.Debugw("resolving question", "question", question, "caller", callerID, "command", command)

	defer func() {
		if p := recover(); p != nil {
			r.log.Errorw("question panicked", "question", question, "panic", p)
			report = formatQueryError(fmt.Errorf("%v", p))
		}
	}()

	switch command {
	case CommandHelp:
		return helpText
	case CommandStats:
		return r.stats(ctx)
	default:
		return r.resolve(ctx, question)
	}
}

func (r *Resolver) resolve(ctx context.Context, question string) string {
	intent := ExtractIntent(question)
	filters := ResolveFilters(question)
	agg := ResolveAggregation(question, intent)

	result, err := r.executor.Execute(ctx, filters, agg)
	if err != nil {
		r.log.Errorw("failed to execute question", "question", question, "error", err)
		return formatQueryError(err)
	}

	return FormatReport(question, filters, result, r.clock.Now())
}

func (r *Resolver) stats(ctx context.Context) string {
	stats, err := r.store.Statistics(ctx, r.clock.Now())
	if err != nil {
		r.log.Errorw("failed to compute statistics", "error", err)
		return fmt.Sprintf("❌ Erro ao buscar estatísticas: %v", err)
	}
	return FormatStats(stats)
}

func formatQueryError(err error) string {
	return fmt.Sprintf("❌ Erro na consulta: %v", err)
}
