package service

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

var (
	tracer = otel.Tracer("api.service")
	meter  = otel.Meter("api.service")
)

// matchMetrics counts match lifecycle events.
type matchMetrics struct {
	created  metric.Int64Counter
	moves    metric.Int64Counter
	finished metric.Int64Counter
}

func newMatchMetrics() (*matchMetrics, error) {
	created, err := meter.Int64Counter("matches.created", metric.WithDescription("Matches created by pairing two devices"))
	if err != nil {
		return nil, err
	}
	moves, err := meter.Int64Counter("moves.applied", metric.WithDescription("Moves accepted by the service"))
	if err != nil {
		return nil, err
	}
	finished, err := meter.Int64Counter("matches.finished", metric.WithDescription("Matches that ended in a win or a draw"))
	if err != nil {
		return nil, err
	}
	return &matchMetrics{created: created, moves: moves, finished: finished}, nil
}
