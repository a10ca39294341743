package mykafka

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNilProducerIsNoOp(t *testing.T) {
	t.Parallel()

	var p *Producer
	assert.NoError(t, p.PublishEvent(context.Background(), TopicSweetEvents, "key", map[string]any{"type": "sweet_created"}))
	assert.NoError(t, p.Close())
}
