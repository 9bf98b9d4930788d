package event

import "context"

type nopPublisher struct{}

// NewNopPublisher drops every event. Used when no brokers are configured.
func NewNopPublisher() Publisher {
	return nopPublisher{}
}

func (nopPublisher) Publish(ctx context.Context, e Event) error { return nil }
func (nopPublisher) Close() error                             { return nil }
