package main

import (
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"

	xssh "golang.org/x/crypto/ssh"
)

func TestSessionTerm(t *testing.T) {
	tests := []struct {
		name    string
		ptyTerm string
		environ []string
		want    string
	}{
		{"pty term", "screen", nil, "screen"},
		{"pty wins over env", "tmux", []string{"TERM=linux"}, "tmux"},
		{"env fallback", "", []string{"LANG=C", "TERM=vt100"}, "vt100"},
		{"unknown pty term", "evil-term", []string{"TERM=xterm"}, "xterm"},
		{"path traversal", "../../etc/passwd", nil, defaultTerm},
		{"nothing set", "", nil, defaultTerm},
		{"unknown env term", "", []string{"TERM=xterm-kitty"}, defaultTerm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sessionTerm(tt.ptyTerm, tt.environ); got != tt.want {
				t.Errorf("sessionTerm(%q, %v) = %q, want %q", tt.ptyTerm, tt.environ, got, tt.want)
			}
		})
	}
}

func TestHostKeyPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host_key")

	first := hostKey(path)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("host key not written: %v", err)
	}
	if block, _ := pem.Decode(data); block == nil {
		t.Fatal("host key file is not PEM")
	}

	second := hostKey(path)
	a := first.PublicKey().Marshal()
	b := second.PublicKey().Marshal()
	if string(a) != string(b) {
		t.Error("reloaded host key differs from the generated one")
	}
	if _, err := xssh.ParsePrivateKey(data); err != nil {
		t.Errorf("ParsePrivateKey() error = %v", err)
	}
}

func TestEnvInt(t *testing.T) {
	t.Setenv("CAVEDASH_TEST_INT", "7")
	if got := envInt("CAVEDASH_TEST_INT", 1); got != 7 {
		t.Errorf("envInt() = %d, want 7", got)
	}
	t.Setenv("CAVEDASH_TEST_INT", "seven")
	if got := envInt("CAVEDASH_TEST_INT", 1); got != 1 {
		t.Errorf("envInt(invalid) = %d, want 1", got)
	}
	if got := envInt("CAVEDASH_TEST_UNSET", 3); got != 3 {
		t.Errorf("envInt(unset) = %d, want 3", got)
	}
}
