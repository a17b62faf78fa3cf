package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotifyContext_Stop(t *testing.T) {
	ctx, stop := NotifyContext(context.Background())
	stop()

	<-ctx.Done()
	assert.ErrorIs(t, context.Cause(ctx), context.Canceled)
	assert.Nil(t, InterruptSignal(ctx))
}

func TestInterruptSignal_ParentCancelled(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	ctx, stop := NotifyContext(parent)
	defer stop()

	cancel()
	<-ctx.Done()
	assert.Nil(t, InterruptSignal(ctx))
}
