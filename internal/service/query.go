package service

import (
	"context"
	"strings"
	"time"

	"github.com/kubev2v/switch-inventory/internal/resolver"
	"github.com/kubev2v/switch-inventory/pkg/metrics"
	"go.uber.org/zap"
)

type QueryService struct {
	resolver *resolver.Resolver
}

func NewQueryService(r *resolver.Resolver) *QueryService {
	return &QueryService{resolver: r}
}

// Answer is the outcome of one question.
type Answer struct {
	Question string
	Response string
	// Timestamp is the time the resolver was started.
	Timestamp time.Time
}

// Ask answers a question on behalf of callerID. Only a blank question is an error:
// failures while resolving are part of the response text.
func (q *QueryService) Ask(ctx context.Context, question string, callerID string) (*Answer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, NewErrEmptyQuestion()
	}

	command := resolver.Classify(question)
	start := time.Now()
	response := q.resolver.Query(ctx, question, callerID)

	metrics.IncreaseQuestionsTotalMetric(string(command), strings.HasPrefix(response, "❌"))
	if callerID != "" {
		metrics.UniqueCallers.Observe(callerID)
	}

	zap.S().Named("query_service").Infow("question answered",
		"caller", callerID,
		"command", command,
		"duration", time.Since(start),
	)

	return &Answer{
		Question:  question,
		Response:  response,
		Timestamp: q.resolver.StartedAt(),
	}, nil
}

// Status describes the resolver backing the service.
type Status struct {
	Initialized bool
	StartedAt   time.Time
}

func (q *QueryService) Status() Status {
	return Status{
		Initialized: true,
		StartedAt:   q.resolver.StartedAt(),
	}
}
