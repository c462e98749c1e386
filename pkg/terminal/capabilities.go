package terminal

import (
	"os"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Capabilities is the cached terminal capability summary for the current
// session. It aggregates terminal detection, color depth, and size query
// into a single struct.
type Capabilities struct {
	Term       Terminal // Detected terminal emulator
	Size       Size     // Terminal dimensions
	IsTTY      bool     // Stdout is an interactive terminal
	ColorDepth int      // Bits per color: 24, 8, 4, or 0 (no color)
	Mouse      bool     // SGR mouse tracking available
	SSH        bool     // Running over SSH
	Tmux       bool     // Inside tmux
	Mux        bool     // Inside any multiplexer (tmux, screen)
}

var (
	cached     *Capabilities
	detectOnce sync.Once
	capMu      sync.Mutex // guards ForceRefresh reset
)

// DetectCapabilities performs full terminal detection and caches the result.
// Safe to call from multiple goroutines; detection runs exactly once via
// sync.Once. Subsequent calls return the cached value.
func DetectCapabilities() *Capabilities {
	detectOnce.Do(func() {
		cached = detectCaps()
	})
	return cached
}

// ForceRefresh re-detects terminal capabilities, replacing the cached
// value. Use this after a terminal change (e.g., attaching/detaching
// from tmux).
func ForceRefresh() *Capabilities {
	capMu.Lock()
	defer capMu.Unlock()

	// Reset the Once so DetectCapabilities runs detection again on
	// its next call. We also run detection immediately here.
	detectOnce = sync.Once{}
	cached = detectCaps()
	return cached
}

// Cached returns the previously cached capabilities without re-detection.
// Returns nil if DetectCapabilities has not been called yet.
func Cached() *Capabilities {
	return cached
}

// detectCaps performs the actual detection work.
func detectCaps() *Capabilities {
	term := Detect()
	fd := os.Stdout.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	tmux := os.Getenv("TMUX") != ""
	screen := os.Getenv("STY") != ""

	return &Capabilities{
		Term:       term,
		Size:       GetSize(),
		IsTTY:      tty,
		ColorDepth: colorDepth(term, tty),
		Mouse:      term.SupportsMouseSGR(),
		SSH:        isSSH(),
		Tmux:       tmux,
		Mux:        tmux || screen,
	}
}

// colorDepth determines color support in bits per color. The termenv
// profile (which honors NO_COLOR, CLICOLOR_FORCE, COLORTERM, and TERM)
// is the primary signal; known-true-color terminals upgrade an ANSI256
// answer since many of them omit COLORTERM.
func colorDepth(term Terminal, tty bool) int {
	if !tty && os.Getenv("CLICOLOR_FORCE") == "" {
		return 0
	}

	switch termenv.EnvColorProfile() {
	case termenv.TrueColor:
		return 24
	case termenv.ANSI256:
		if term.SupportsTrueColor() {
			return 24
		}
		return 8
	case termenv.ANSI:
		return 4
	default:
		return 0
	}
}

// isSSH reports whether the current session is running over SSH.
func isSSH() bool {
	return os.Getenv("SSH_TTY") != "" ||
		os.Getenv("SSH_CONNECTION") != "" ||
		os.Getenv("SSH_CLIENT") != ""
}
