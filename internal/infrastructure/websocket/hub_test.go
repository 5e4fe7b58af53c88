package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, conn *Connection) []byte {
	t.Helper()
	select {
	case data, ok := <-conn.Send:
		require.True(t, ok, "连接不应被关闭")
		return data
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
		return nil
	}
}

func TestHub_BroadcastToAllClients(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	a, b := NewConnection(), NewConnection()
	require.True(t, hub.Register(a))
	require.True(t, hub.Register(b))

	require.NoError(t, hub.Broadcast(map[string]string{"type": "list.added"}))

	for _, conn := range []*Connection{a, b} {
		var msg map[string]string
		require.NoError(t, json.Unmarshal(receive(t, conn), &msg))
		assert.Equal(t, "list.added", msg["type"])
	}
	assert.Equal(t, 2, hub.ClientCount())
}

func TestHub_Unregister(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	conn := NewConnection()
	require.True(t, hub.Register(conn))
	hub.Unregister(conn)

	_, ok := <-conn.Send
	assert.False(t, ok, "注销后发送通道应关闭")
	assert.Equal(t, 0, hub.ClientCount())
}

func TestHub_Stop(t *testing.T) {
	hub := NewHub()
	hub.Start()

	conn := NewConnection()
	require.True(t, hub.Register(conn))
	hub.Stop()
	hub.Stop()

	_, ok := <-conn.Send
	assert.False(t, ok)
	assert.ErrorIs(t, hub.Broadcast("x"), ErrHubClosed)
	assert.False(t, hub.Register(NewConnection()))
}

func TestHub_BroadcastMarshalError(t *testing.T) {
	hub := NewHub()
	assert.Error(t, hub.Broadcast(make(chan int)))
}
