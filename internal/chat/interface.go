package chat

import (
	"context"
)

// UseCase routes one chat message to a commerce action. Route never fails:
// every outcome, errors included, is a Response.
//
//go:generate mockery --name UseCase
type UseCase interface {
	Route(ctx context.Context, userID string, input Input) Response
}
