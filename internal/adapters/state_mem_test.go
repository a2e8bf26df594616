package adapters

import (
	"context"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portview/internal/types"
)

func TestMemStoreEnumerate(t *testing.T) {
	store := NewMemStore()
	store.Set("PORT|Ethernet0", map[string]string{"alias": "etp1"})
	store.Set("PORT|Ethernet4", map[string]string{"alias": "etp2"})
	store.Set("BREAKOUT_CFG|Ethernet0", map[string]string{"brkout_mode": "4x25G"})

	keys, err := store.Enumerate(context.Background(), "PORT|*")
	require.NoError(t, err)
	assert.Equal(t, []string{"PORT|Ethernet0", "PORT|Ethernet4"}, keys)

	keys, err = store.Enumerate(context.Background(), "VLAN|*")
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestMemStoreGetField(t *testing.T) {
	store := NewMemStore()
	store.Set("PORT|Ethernet0", map[string]string{"speed": "25000"})

	value, ok, err := store.GetField(context.Background(), "PORT|Ethernet0", "speed")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "25000", value)

	_, ok, err = store.GetField(context.Background(), "PORT|Ethernet0", "mtu")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = store.GetField(context.Background(), "PORT|Ethernet99", "speed")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemStoreGetRecordCopies(t *testing.T) {
	store := NewMemStore()
	store.Set("PORT|Ethernet0", map[string]string{"alias": "etp1"})

	record, err := store.GetRecord(context.Background(), "PORT|Ethernet0")
	require.NoError(t, err)
	record["alias"] = "mutated"

	again, err := store.GetRecord(context.Background(), "PORT|Ethernet0")
	require.NoError(t, err)
	assert.Equal(t, "etp1", again["alias"])
}

func TestMemProviderConnect(t *testing.T) {
	provider := NewMemProvider()
	provider.Store("asic0", types.DatabaseConfig).Set("PORT|Ethernet0", map[string]string{})

	store, err := provider.Connect(context.Background(), "asic0", types.DatabaseConfig)
	require.NoError(t, err)
	keys, err := store.Enumerate(context.Background(), "*")
	require.NoError(t, err)
	assert.Len(t, keys, 1)
}

func TestMemProviderDownNamespace(t *testing.T) {
	provider := NewMemProvider()
	provider.SetDown("asic1")

	_, err := provider.Connect(context.Background(), "asic1", types.DatabaseAppl)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInternal, errbuilder.CodeOf(err))
}
