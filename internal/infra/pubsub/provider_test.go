package pubsub

import (
	"context"
	"log/slog"
	"testing"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newParams(t *testing.T, cfg *config.PubSubConfig) PublisherParams {
	return PublisherParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{PubSub: cfg},
		Logger: slog.Default(),
	}
}

func TestNewEventPublisher_Noop(t *testing.T) {
	for _, cfg := range []*config.PubSubConfig{nil, {}, {Provider: ProviderNoop}} {
		publisher, err := NewEventPublisher(newParams(t, cfg))
		require.NoError(t, err)
		assert.IsType(t, &noopPublisher{}, publisher)
		assert.NoError(t, publisher.PublishCartEvent(context.Background(), &service.CartEvent{Type: service.CartEventCleared}))
	}
}

func TestNewEventPublisher_Local(t *testing.T) {
	publisher, err := NewEventPublisher(newParams(t, &config.PubSubConfig{
		Provider:      ProviderLocal,
		LocalEndpoint: "http://localhost:8081/push",
	}))
	require.NoError(t, err)
	assert.IsType(t, &localHTTPPublisher{}, publisher)
}

func TestNewEventPublisher_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.PubSubConfig
	}{
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: ProviderLocal}},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: ProviderGoogle, TopicID: "t"}},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: ProviderGoogle, ProjectID: "p"}},
		{name: "unknown provider", cfg: &config.PubSubConfig{Provider: "kafka"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := NewEventPublisher(newParams(t, tt.cfg))
			assert.Error(t, err)
			assert.Nil(t, publisher)
		})
	}
}
