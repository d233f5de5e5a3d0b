package httpclient

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/lazyext/registry"
)

func TestRegisteredOnDefault(t *testing.T) {
	val, err := registry.Default().Load(context.Background(), PackageID)
	require.NoError(t, err)

	_, ok := val.(*Namespace)
	assert.True(t, ok)
}

func TestNewClient(t *testing.T) {
	t.Parallel()

	ns := NewNamespace()
	client, err := ns.NewClient("30s")
	require.NoError(t, err)
	defer ns.Release(client)

	assert.Equal(t, 30*time.Second, client.Timeout)
}

func TestNewClient_InvalidTimeout(t *testing.T) {
	t.Parallel()

	ns := NewNamespace()
	_, err := ns.NewClient("soon")
	require.Error(t, err)
}
