package remote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"graffiti/pkg/device/virtual"
	"graffiti/pkg/envelope"
)

func TestServiceDraw(t *testing.T) {
	logger := zaptest.NewLogger(t)
	dev := virtual.Mock(logger)
	svc := NewService(dev, logger)

	doc, err := envelope.Marshal(make([]byte, 384))
	require.NoError(t, err)

	require.NoError(t, svc.Draw(&DrawRequest{Document: doc}, &EmptyResponse{}))
	assert.Len(t, dev.Drawn(), 1)

	assert.Error(t, svc.Draw(&DrawRequest{Document: []byte("nope")}, &EmptyResponse{}))
	assert.Len(t, dev.Drawn(), 1)
}
