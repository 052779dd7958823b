package app

import (
	"context"

	"truckhub/internal/service/orderevents"
	"truckhub/internal/transport/kafka"
)

func makeOrdersKafka(p *orderevents.Processor) kafka.HandleFunc {
	return func(ctx context.Context, event orderevents.Event) error {
		return p.Handle(ctx, event)
	}
}
