package search

import (
	"go.opentelemetry.io/otel/trace"
)

type Handler struct {
	tracer  trace.Tracer
	service SearchService
}

func New(
	tracer trace.Tracer,
	service SearchService,
) *Handler {
	return &Handler{
		tracer:  tracer,
		service: service,
	}
}
