package terminal

import (
	"os"
	"testing"
)

// termEnvVars lists all environment variables inspected during detection.
// Tests clear these before each case to ensure isolation.
var termEnvVars = []string{
	"TERM_PROGRAM", "TERM", "COLORTERM",
	"KITTY_WINDOW_ID", "ITERM_SESSION_ID", "WEZTERM_EXECUTABLE",
	"TILIX_ID", "VTE_VERSION", "LC_TERMINAL",
	"INSIDE_EMACS", "TMUX", "STY",
	"SSH_TTY", "SSH_CONNECTION", "SSH_CLIENT",
	"COLUMNS", "LINES",
	"NO_COLOR", "CLICOLOR_FORCE",
}

// clearTermEnv unsets all terminal-related env vars for test isolation.
// Uses t.Setenv under the hood (via save/restore) so cleanup is automatic.
func clearTermEnv(t *testing.T) {
	t.Helper()
	for _, v := range termEnvVars {
		t.Setenv(v, "")
		os.Unsetenv(v)
	}
}

// --- Terminal Detection Tests ---

func TestDetect_Ghostty_TermProgram(t *testing.T) {
	clearTermEnv(t)
	t.Setenv("TERM_PROGRAM", "ghostty")

	got := Detect()
	if got != TermGhostty {
		t.Errorf("Detect() = %v, want %v", got, TermGhostty)
	}
}

func TestDetect_Ghostty_Term(t *testing.T) {
	clearTermEnv(t)
	t.Setenv("TERM", "xterm-ghostty")

	got := Detect()
	if got != TermGhostty {
		t.Errorf("Detect() = %v, want %v", got, TermGhostty)
	}
}

func TestDetect_Kitty_TermProgram(t *testing.T) {
	clearTermEnv(t)
	t.Setenv("TERM_PROGRAM", "kitty")

	got := Detect()
	if got != TermKitty {
		t.Errorf("Detect() = %v, want %v", got, TermKitty)
	}
}

func TestDetect_Kitty_WindowID(t *testing.T) {
	clearTermEnv(t)
	t.Setenv("KITTY_WINDOW_ID", "123")

	got := Detect()
	if got != TermKitty {
		t.Errorf("Detect() = %v, want %v", got, TermKitty)
	}
}

func TestDetect_WezTerm_TermProgram(t *testing.T) {
	clearTermEnv(t)
	t.Setenv("TERM_PROGRAM", "WezTerm")

	got := Detect()
	if got != TermWezTerm {
		t.Errorf("Detect() = %v, want %v", got, TermWezTerm)
	}
}

func TestDetect_ITerm2_TermProgram(t *testing.T) {
	clearTermEnv(t)
	t.Setenv("TERM_PROGRAM", "iTerm.app")

	got := Detect()
	if got != TermITerm2 {
		t.Errorf("Detect() = %v, want %v", got, TermITerm2)
	}
}

func TestDetect_ITerm2_LCTerminal(t *testing.T) {
	clearTermEnv(t)
	t.Setenv("LC_TERMINAL", "iTerm2")

	got := Detect()
	if got != TermITerm2 {
		t.Errorf("Detect() = %v, want %v", got, TermITerm2)
	}
}

func TestDetect_Alacritty_Term(t *testing.T) {
	clearTermEnv(t)
	t.Setenv("TERM", "alacritty")

	got := Detect()
	if got != TermAlacritty {
		t.Errorf("Detect() = %v, want %v", got, TermAlacritty)
	}
}

func TestDetect_VTE_GNOME(t *testing.T) {
	clearTermEnv(t)
	t.Setenv("VTE_VERSION", "6800")

	got := Detect()
	if got != TermGNOME {
		t.Errorf("Detect() = %v, want %v", got, TermGNOME)
	}
}

func TestDetect_VTE_Tilix(t *testing.T) {
	clearTermEnv(t)
	t.Setenv("VTE_VERSION", "6800")
	t.Setenv("TILIX_ID", "abc")

	got := Detect()
	if got != TermTilix {
		t.Errorf("Detect() = %v, want %v", got, TermTilix)
	}
}

func TestDetect_Tmux(t *testing.T) {
	clearTermEnv(t)
	t.Setenv("TMUX", "/tmp/tmux-1000/default,123,0")

	got := Detect()
	if got != TermTmux {
		t.Errorf("Detect() = %v, want %v", got, TermTmux)
	}
}

func TestDetect_Screen(t *testing.T) {
	clearTermEnv(t)
	t.Setenv("TERM", "screen-256color")
	t.Setenv("STY", "12345.pts-0.host")

	got := Detect()
	if got != TermScreen {
		t.Errorf("Detect() = %v, want %v", got, TermScreen)
	}
}

func TestDetect_TermProgramBeatsMultiplexer(t *testing.T) {
	// TERM_PROGRAM from the inner terminal wins over TMUX.
	clearTermEnv(t)
	t.Setenv("TERM_PROGRAM", "ghostty")
	t.Setenv("TMUX", "/tmp/tmux-1000/default,123,0")

	got := Detect()
	if got != TermGhostty {
		t.Errorf("Detect() = %v, want %v", got, TermGhostty)
	}
}

func TestDetect_Emacs(t *testing.T) {
	clearTermEnv(t)
	t.Setenv("INSIDE_EMACS", "vterm")

	got := Detect()
	if got != TermEmacs {
		t.Errorf("Detect() = %v, want %v", got, TermEmacs)
	}
}

func TestDetect_Generic(t *testing.T) {
	clearTermEnv(t)
	t.Setenv("TERM", "xterm-256color")

	got := Detect()
	if got != TermGeneric {
		t.Errorf("Detect() = %v, want %v", got, TermGeneric)
	}
}

// --- Capability method tests ---

func TestSupportsTrueColor(t *testing.T) {
	tests := []struct {
		term Terminal
		want bool
	}{
		{TermGhostty, true},
		{TermKitty, true},
		{TermWezTerm, true},
		{TermAlacritty, true},
		{TermVSCode, true},
		{TermTmux, false},
		{TermScreen, false},
		{TermGeneric, false},
	}
	for _, tt := range tests {
		t.Run(tt.term.String(), func(t *testing.T) {
			if got := tt.term.SupportsTrueColor(); got != tt.want {
				t.Errorf("%v.SupportsTrueColor() = %v, want %v", tt.term, got, tt.want)
			}
		})
	}
}

func TestSupportsMouseSGR(t *testing.T) {
	if !TermGhostty.SupportsMouseSGR() {
		t.Error("Ghostty should support SGR mouse")
	}
	if TermGeneric.SupportsMouseSGR() {
		t.Error("generic terminal should not claim SGR mouse support")
	}
	// VS Code's integrated terminal has spotty mouse behavior.
	if TermVSCode.SupportsMouseSGR() {
		t.Error("VSCode should not claim SGR mouse support")
	}
}

func TestTerminalString(t *testing.T) {
	if TermKitty.String() != "kitty" {
		t.Errorf("TermKitty.String() = %q", TermKitty.String())
	}
	if Terminal(999).String() != "unknown" {
		t.Errorf("out-of-range Terminal.String() = %q", Terminal(999).String())
	}
}

// --- Size tests ---

func TestGetSizeFromEnv(t *testing.T) {
	clearTermEnv(t)
	t.Setenv("COLUMNS", "120")
	t.Setenv("LINES", "40")

	s := getSizeFromEnv()
	if s.Cols != 120 || s.Rows != 40 {
		t.Errorf("getSizeFromEnv() = %dx%d, want 120x40", s.Cols, s.Rows)
	}
}

func TestGetSizeFromEnvFallback(t *testing.T) {
	clearTermEnv(t)

	s := getSizeFromEnv()
	if s.Cols != 80 || s.Rows != 24 {
		t.Errorf("getSizeFromEnv() fallback = %dx%d, want 80x24", s.Cols, s.Rows)
	}
}

func TestGetSizeFromEnvInvalid(t *testing.T) {
	clearTermEnv(t)
	t.Setenv("COLUMNS", "garbage")
	t.Setenv("LINES", "-3")

	s := getSizeFromEnv()
	if s.Cols != 80 || s.Rows != 24 {
		t.Errorf("getSizeFromEnv() with invalid values = %dx%d, want 80x24", s.Cols, s.Rows)
	}
}

// --- Capabilities tests ---

func TestDetectCapabilitiesCached(t *testing.T) {
	clearTermEnv(t)

	first := ForceRefresh()
	second := DetectCapabilities()
	if first != second {
		t.Error("DetectCapabilities() should return the cached pointer after ForceRefresh")
	}
	if Cached() != first {
		t.Error("Cached() should return the same pointer")
	}
}

func TestForceRefreshReplacesCache(t *testing.T) {
	clearTermEnv(t)

	first := ForceRefresh()
	second := ForceRefresh()
	if first == second {
		t.Error("ForceRefresh() should build a fresh Capabilities value")
	}
}

func TestCapabilitiesSSH(t *testing.T) {
	clearTermEnv(t)
	t.Setenv("SSH_CONNECTION", "10.0.0.1 50000 10.0.0.2 22")

	caps := ForceRefresh()
	if !caps.SSH {
		t.Error("Capabilities.SSH should be true with SSH_CONNECTION set")
	}
}

func TestCapabilitiesMux(t *testing.T) {
	clearTermEnv(t)
	t.Setenv("TMUX", "/tmp/tmux-1000/default,123,0")

	caps := ForceRefresh()
	if !caps.Tmux || !caps.Mux {
		t.Error("Capabilities should report tmux and mux with TMUX set")
	}
}

func TestColorDepthNonTTY(t *testing.T) {
	clearTermEnv(t)

	// Tests never run on a TTY stdout, so depth should be 0 unless forced.
	if d := colorDepth(TermGeneric, false); d != 0 {
		t.Errorf("colorDepth(non-tty) = %d, want 0", d)
	}
}

func TestColorDepthForcedTrueColor(t *testing.T) {
	clearTermEnv(t)
	t.Setenv("CLICOLOR_FORCE", "1")
	t.Setenv("COLORTERM", "truecolor")
	t.Setenv("TERM", "xterm-256color")

	if d := colorDepth(TermGeneric, true); d != 24 {
		t.Errorf("colorDepth(truecolor) = %d, want 24", d)
	}
}

func TestColorDepthUpgradesKnownTerminals(t *testing.T) {
	clearTermEnv(t)
	t.Setenv("TERM", "xterm-256color")

	// Ghostty is known to render true color even without COLORTERM.
	if d := colorDepth(TermGhostty, true); d != 24 {
		t.Errorf("colorDepth(ghostty, 256color TERM) = %d, want 24", d)
	}
	if d := colorDepth(TermGeneric, true); d != 8 {
		t.Errorf("colorDepth(generic, 256color TERM) = %d, want 8", d)
	}
}
