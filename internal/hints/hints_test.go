package hints

// Notes:
// - ForBrowserConnect tests cannot use t.Parallel() because they:
//   1. Use t.Setenv() which modifies process environment
//   2. Modify the package-level IsInContainer variable
// These are acceptable gaps: we test observable behavior through environment manipulation.

import (
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestForBrowserConnect - Environment detection
// ---------------------------------------------------------------------------

func TestForBrowserConnect(t *testing.T) {
	tests := []struct {
		name        string
		container   bool
		env         map[string]string
		wantSandbox bool
		wantBin     bool
	}{
		{
			name:        "in CI",
			env:         map[string]string{"CI": "true", "ROD_NO_SANDBOX": "", "ROD_BROWSER_BIN": ""},
			wantSandbox: true,
			wantBin:     true,
		},
		{
			name:        "in Docker",
			container:   true,
			env:         map[string]string{"CI": "", "ROD_NO_SANDBOX": "", "ROD_BROWSER_BIN": ""},
			wantSandbox: true,
			wantBin:     true,
		},
		{
			name:    "sandbox already disabled",
			env:     map[string]string{"CI": "true", "ROD_NO_SANDBOX": "1", "ROD_BROWSER_BIN": ""},
			wantBin: true,
		},
		{
			name: "all configured",
			env:  map[string]string{"CI": "true", "ROD_NO_SANDBOX": "1", "ROD_BROWSER_BIN": "/usr/bin/chromium"},
		},
		{
			name:    "local machine",
			env:     map[string]string{"CI": "", "GITHUB_ACTIONS": "", "GITLAB_CI": "", "JENKINS_URL": "", "ROD_NO_SANDBOX": "", "ROD_BROWSER_BIN": ""},
			wantBin: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := IsInContainer
			defer func() { IsInContainer = orig }()
			IsInContainer = func() bool { return tt.container }

			t.Setenv("GITHUB_ACTIONS", "")
			t.Setenv("GITLAB_CI", "")
			t.Setenv("JENKINS_URL", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			hint := ForBrowserConnect()

			if got := strings.Contains(hint, "ROD_NO_SANDBOX"); got != tt.wantSandbox {
				t.Errorf("ROD_NO_SANDBOX hint = %v, want %v (%q)", got, tt.wantSandbox, hint)
			}
			if got := strings.Contains(hint, "ROD_BROWSER_BIN"); got != tt.wantBin {
				t.Errorf("ROD_BROWSER_BIN hint = %v, want %v (%q)", got, tt.wantBin, hint)
			}
			if (tt.wantSandbox || tt.wantBin) != (hint != "") {
				t.Errorf("unexpected hint presence: %q", hint)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestForConfigNotFound
// ---------------------------------------------------------------------------

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		paths    []string
		wantPath string
	}{
		{
			name:     "suggests user config path",
			paths:    []string{"talk.yaml", "talk.yml", "/home/u/.config/go-md2slides/talk.yaml"},
			wantPath: "/home/u/.config/go-md2slides/talk.yaml",
		},
		{
			name:     "windows separators",
			paths:    []string{`C:\Users\u\AppData\Roaming\go-md2slides\talk.yaml`},
			wantPath: `C:\Users\u\AppData\Roaming\go-md2slides\talk.yaml`,
		},
		{
			name:  "local paths only",
			paths: []string{"talk.yaml"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hint := ForConfigNotFound(tt.paths)
			if !strings.Contains(hint, "--config") {
				t.Errorf("hint %q should mention --config", hint)
			}
			if tt.wantPath != "" && !strings.Contains(hint, "create "+tt.wantPath) {
				t.Errorf("hint %q should suggest %s", hint, tt.wantPath)
			}
			if tt.wantPath == "" && strings.Contains(hint, "create") {
				t.Errorf("hint %q should not suggest a path", hint)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestForMode
// ---------------------------------------------------------------------------

func TestForMode(t *testing.T) {
	t.Parallel()

	if got := ForMode(nil); got != "" {
		t.Errorf("ForMode(nil) = %q, want empty", got)
	}
	got := ForMode([]string{"simple", "complex"})
	if !strings.Contains(got, "simple, complex") {
		t.Errorf("ForMode() = %q", got)
	}
}

// ---------------------------------------------------------------------------
// TestFormat_Consistency
// ---------------------------------------------------------------------------

func TestFormat_Consistency(t *testing.T) {
	t.Parallel()

	hints := map[string]string{
		"ForPageLoad":        ForPageLoad(),
		"ForOutputDirectory": ForOutputDirectory(),
		"ForMissingHTML":     ForMissingHTML(),
		"ForNoSlides":        ForNoSlides(),
		"ForMode":            ForMode([]string{"simple"}),
		"ForConfigNotFound":  ForConfigNotFound(nil),
	}

	for name, hint := range hints {
		if !strings.HasPrefix(hint, "\n  hint: ") {
			t.Errorf("%s() = %q, want \"\\n  hint: \" prefix", name, hint)
		}
	}

	if format("") != "" {
		t.Error("format(\"\") should be empty")
	}
	if formatHints(nil) != "" {
		t.Error("formatHints(nil) should be empty")
	}
}
