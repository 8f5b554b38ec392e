package mpv

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// fakeMpv answers get_property duration after emitting an unrelated event line.
func fakeMpv(t *testing.T, duration float64) string {
	t.Helper()
	dir, err := os.MkdirTemp("", "mpv")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })
	socket := filepath.Join(dir, "s.sock")

	ln, err := net.Listen("unix", socket)
	if err != nil {
		t.Skipf("unix sockets unavailable: %v", err)
	}
	t.Cleanup(func() { ln.Close() })

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		r := bufio.NewReader(conn)
		for {
			line, err := r.ReadBytes('\n')
			if err != nil {
				return
			}
			var req ipcRequest
			if err := json.Unmarshal(line, &req); err != nil {
				return
			}
			conn.Write([]byte(`{"event":"file-loaded"}` + "\n"))
			resp, _ := json.Marshal(ipcResponse{Data: duration, RequestID: req.RequestID, Error: "success"})
			conn.Write(append(resp, '\n'))
		}
	}()
	return socket
}

func TestClientGetDuration(t *testing.T) {
	socket := fakeMpv(t, 42.5)
	c := NewClient(socket)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := c.ConnectWait(ctx, 10*time.Millisecond); err != nil {
		t.Fatalf("ConnectWait: %v", err)
	}
	defer c.Close()

	d, err := c.GetDuration()
	if err != nil {
		t.Fatal(err)
	}
	if d != 42.5 {
		t.Errorf("duration = %v, want 42.5", d)
	}
}

func TestClientNotConnected(t *testing.T) {
	c := NewClient(filepath.Join(t.TempDir(), "none.sock"))
	if _, err := c.GetDuration(); !errors.Is(err, ErrNotConnected) {
		t.Errorf("err = %v, want ErrNotConnected", err)
	}
	if err := c.Connect(); !errors.Is(err, ErrSocketNotFound) {
		t.Errorf("Connect err = %v, want ErrSocketNotFound", err)
	}
}

func TestConnectWaitHonoursContext(t *testing.T) {
	c := NewClient(filepath.Join(t.TempDir(), "none.sock"))
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := c.ConnectWait(ctx, 10*time.Millisecond); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("err = %v, want deadline exceeded", err)
	}
}

func TestSocketPathUniquePerPreview(t *testing.T) {
	a, b := SocketPath(), SocketPath()
	if a == b {
		t.Fatalf("two previews share socket %q", a)
	}
	if filepath.Dir(a) != filepath.Clean(os.TempDir()) {
		t.Errorf("socket %q not under the temp dir", a)
	}
}
