package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClient struct{ name string }

func (s *stubClient) Complete(context.Context, string, Options) (string, error) {
	return s.name, nil
}

func TestNewClientUnknownProvider(t *testing.T) {
	_, err := NewClient(FactoryConfig{Provider: "no-such-provider"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-provider")
}

func TestRegisterProviderWithAliases(t *testing.T) {
	RegisterProvider("test-stub", func(FactoryConfig) (Client, error) {
		return &stubClient{name: "stub"}, nil
	}, "test-alias")

	for _, name := range []string{"test-stub", "TEST-STUB", "test-alias"} {
		client, err := NewClient(FactoryConfig{Provider: name})
		require.NoError(t, err, name)
		resp, err := client.Complete(context.Background(), "hi", Options{})
		require.NoError(t, err)
		assert.Equal(t, "stub", resp, name)
	}
}

func TestNewClientDefaultsToGemini(t *testing.T) {
	RegisterProvider("gemini", func(FactoryConfig) (Client, error) {
		return &stubClient{name: "gemini"}, nil
	})

	client, err := NewClient(FactoryConfig{})
	require.NoError(t, err)
	resp, _ := client.Complete(context.Background(), "hi", Options{})
	assert.Equal(t, "gemini", resp)
}
