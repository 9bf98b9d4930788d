package intent

import (
	"context"
	"errors"
	"strings"
	"time"

	"chat-commerce/pkg/log"
)

// DefaultModelTimeout bounds a single model classification attempt.
const DefaultModelTimeout = 5 * time.Second

// FallbackClassifier tries the model first (when one is configured) and falls
// back to the keyword rules on any failure, decline or timeout.
type FallbackClassifier struct {
	model        Provider
	rules        Provider
	modelTimeout time.Duration
	l            log.Logger
}

var _ Classifier = (*FallbackClassifier)(nil)

// New creates a classifier. model may be nil, in which case only rules run.
func New(l log.Logger, model Provider, modelTimeout time.Duration) *FallbackClassifier {
	if modelTimeout <= 0 {
		modelTimeout = DefaultModelTimeout
	}
	return &FallbackClassifier{
		model:        model,
		rules:        NewRuleProvider(),
		modelTimeout: modelTimeout,
		l:            l,
	}
}

// Classify never fails: blank input is Unknown and every model failure is
// absorbed by the rules.
func (c *FallbackClassifier) Classify(ctx context.Context, message string, hint Context) Result {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return Result{Intent: Unknown}
	}

	if c.model != nil {
		if res, ok := c.classifyWithModel(ctx, trimmed, hint); ok {
			c.l.Debugf(ctx, "%s: "+LogMsgClassified, LogPrefixClassify, res.Intent, c.model.Name())
			return res
		}
	}

	res, _ := c.rules.Classify(ctx, trimmed, hint)
	c.l.Debugf(ctx, "%s: "+LogMsgClassified, LogPrefixClassify, res.Intent, c.rules.Name())
	return res
}

func (c *FallbackClassifier) classifyWithModel(ctx context.Context, message string, hint Context) (Result, bool) {
	mctx, cancel := context.WithTimeout(ctx, c.modelTimeout)
	defer cancel()

	res, err := c.model.Classify(mctx, message, hint)
	if err == nil {
		return res, true
	}

	if errors.Is(err, ErrDeclined) {
		c.l.Infof(ctx, "%s: %s", LogPrefixClassify, LogMsgModelDeclined)
	} else {
		c.l.Warnf(ctx, "%s: "+LogMsgModelFailed, LogPrefixClassify, err)
	}
	return Result{}, false
}
