// Package media turns catalog items into playable clip locations and
// hands them to the platform for playback.
package media

import (
	"context"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strconv"

	"github.com/abhisek/opusquiz/internal/catalog"
)

const (
	embedBase = "https://www.youtube.com/embed/"
	watchBase = "https://www.youtube.com/watch"
)

// EmbedURL returns the embeddable player URL for an item, autoplaying from
// its start offset.
func EmbedURL(it catalog.Item) string {
	u := embedBase + url.PathEscape(it.MediaRef) +
		"?autoplay=1&playsinline=1&controls=1&modestbranding=1&rel=0&iv_load_policy=3"
	if it.StartOffset > 0 {
		u += "&start=" + strconv.Itoa(it.StartOffset)
	}
	return u
}

// WatchURL returns a URL suitable for opening the clip in a browser tab.
func WatchURL(it catalog.Item) string {
	q := url.Values{}
	q.Set("v", it.MediaRef)
	if it.StartOffset > 0 {
		q.Set("t", strconv.Itoa(it.StartOffset)+"s")
	}
	return watchBase + "?" + q.Encode()
}

// Player starts playback of an item's clip.
type Player interface {
	Play(ctx context.Context, it catalog.Item) error
}

// NopPlayer ignores playback requests.
type NopPlayer struct{}

func (NopPlayer) Play(context.Context, catalog.Item) error { return nil }

// BrowserPlayer opens clips in the user's default browser.
type BrowserPlayer struct {
	// command builds the opener invocation; swapped in tests.
	command func(ctx context.Context, target string) *exec.Cmd
}

// NewBrowserPlayer returns a player using the platform's URL opener.
func NewBrowserPlayer() *BrowserPlayer {
	return &BrowserPlayer{command: openerCommand(runtime.GOOS)}
}

// Play opens the item's watch URL and waits for the opener to exit.
func (p *BrowserPlayer) Play(ctx context.Context, it catalog.Item) error {
	if p.command == nil {
		return fmt.Errorf("no URL opener for %s", runtime.GOOS)
	}
	target := WatchURL(it)
	if err := p.command(ctx, target).Run(); err != nil {
		return fmt.Errorf("open %s: %w", target, err)
	}
	return nil
}

// openerCommand returns the command that opens a URL on goos, or nil if
// the platform has none.
func openerCommand(goos string) func(ctx context.Context, target string) *exec.Cmd {
	switch goos {
	case "darwin":
		return func(ctx context.Context, target string) *exec.Cmd {
			return exec.CommandContext(ctx, "open", target)
		}
	case "windows":
		return func(ctx context.Context, target string) *exec.Cmd {
			return exec.CommandContext(ctx, "rundll32", "url.dll,FileProtocolHandler", target)
		}
	case "linux", "freebsd", "openbsd", "netbsd":
		return func(ctx context.Context, target string) *exec.Cmd {
			return exec.CommandContext(ctx, "xdg-open", target)
		}
	}
	return nil
}
