package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendToUserWithoutConnection(t *testing.T) {
	manager := NewWSManager()
	assert.NoError(t, manager.SendToUser("nobody", map[string]string{"type": "notification"}))
}

// Notification pushes and keepalive pings write the same connection
// from different goroutines; both must go through the write lock.
func TestConcurrentPushAndPing(t *testing.T) {
	manager := NewWSManager()
	registered := make(chan *wsConn, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sock, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		registered <- manager.Register("u-1", sock)
	}))
	defer srv.Close()

	client, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer client.Close()

	conn := <-registered

	const pushes = 40
	received := make(chan struct{})
	go func() {
		defer close(received)
		for i := 0; i < pushes; i++ {
			if _, _, err := client.ReadMessage(); err != nil {
				return
			}
		}
	}()

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < pushes/2; j++ {
				assert.NoError(t, manager.SendToUser("u-1", map[string]int{"seq": j}))
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < pushes; j++ {
			assert.NoError(t, conn.ping())
		}
	}()

	wg.Wait()
	<-received

	manager.Unregister("u-1", conn)
	assert.NoError(t, manager.SendToUser("u-1", map[string]string{"type": "notification"}))
}
