package contracts

import "context"

type EventPublisher interface {
	Publish(ctx context.Context, queue string, payload interface{}) error
}
