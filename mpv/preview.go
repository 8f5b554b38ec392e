// Package mpv opens finished clips in the mpv player.
package mpv

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/user/crush-cli/deps"
)

var previews atomic.Uint64

// SocketPath returns a fresh IPC socket path. Each preview gets its own so a second
// mpv never takes over the first one's socket.
func SocketPath() string {
	n := previews.Add(1)
	return filepath.Join(os.TempDir(), fmt.Sprintf("crush-mpv-%d-%d.sock", os.Getpid(), n))
}

// Launch starts mpv on path with the IPC socket enabled and returns without
// waiting for playback to end. It fails with *deps.ToolNotFoundError when mpv is
// not installed.
func Launch(path, socket string) (*exec.Cmd, error) {
	if err := deps.CheckMpv(); err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("nothing to preview: %w", err)
	}

	cmd := exec.Command("mpv",
		"--input-ipc-server="+socket,
		"--keep-open=yes",
		path,
	)
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return cmd, nil
}

// Preview is a running mpv window.
type Preview struct {
	Cmd    *exec.Cmd
	Client *Client
}

// Open launches mpv on path and waits for its IPC socket, up to ctx's deadline.
// If the socket never appears the player is still left running and the
// returned Preview has a nil Client.
func Open(ctx context.Context, path string) (*Preview, error) {
	socket := SocketPath()
	cmd, err := Launch(path, socket)
	if err != nil {
		return nil, err
	}

	p := &Preview{Cmd: cmd}
	client := NewClient(socket)
	if err := client.ConnectWait(ctx, 100*time.Millisecond); err == nil {
		p.Client = client
	}
	return p, nil
}

// Duration asks the player for the clip length, for the "previewing" line.
func (p *Preview) Duration() (float64, bool) {
	if p.Client == nil {
		return 0, false
	}
	d, err := p.Client.GetDuration()
	if err != nil {
		return 0, false
	}
	return d, true
}

// Wait closes the IPC connection and blocks until mpv exits.
func (p *Preview) Wait() error {
	if p.Client != nil {
		p.Client.Close()
	}
	return p.Cmd.Wait()
}

// Release closes the IPC connection and lets mpv outlive the caller.
func (p *Preview) Release() error {
	if p.Client != nil {
		p.Client.Close()
	}
	return p.Cmd.Process.Release()
}
