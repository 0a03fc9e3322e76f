// Command server serves cavedash over SSH. Every connection plays its own
// game on its own screen.
//
// Usage:
//
//	server [-port 2222] [-key host_key] [-cave intro] [-level 1]
//
// Then connect with:
//
//	ssh -t -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	"github.com/joho/godotenv"
	xssh "golang.org/x/crypto/ssh"

	"github.com/samdwyer/cavedash/internal/game"
	internalssh "github.com/samdwyer/cavedash/internal/ssh"
)

const defaultTerm = "xterm-256color"

// allowedTerms are the TERM values a client may select.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"rxvt-unicode-256color": true,
}

// termMu serializes TERM changes while a screen reads its terminfo entry.
var termMu sync.Mutex

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	port := flag.Int("port", envInt("CAVEDASH_SSH_PORT", 2222), "SSH listen port")
	keyFile := flag.String("key", "cavedash_host_key", "PEM host key path, generated if missing")
	caveID := flag.String("cave", os.Getenv("CAVEDASH_CAVE"), "cave id from the built-in library")
	level := flag.Int("level", envInt("CAVEDASH_LEVEL", 1), "difficulty level 1-5")
	flag.Parse()

	cfg := game.DefaultConfig()
	cfg.CaveID = *caveID
	cfg.Level = *level
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	srv := &gossh.Server{
		Addr:        fmt.Sprintf(":%d", *port),
		Handler:     func(s gossh.Session) { serve(s, cfg) },
		PtyCallback: func(gossh.Context, gossh.Pty) bool { return true },
		HostSigners: []gossh.Signer{hostKey(*keyFile)},
	}

	log.Printf("cavedash SSH server listening on :%d", *port)
	log.Fatal(srv.ListenAndServe())
}

// serve runs one game for the lifetime of an SSH session.
func serve(s gossh.Session, cfg game.Config) {
	pty, windows, ok := s.Pty()
	if !ok {
		fmt.Fprintln(s, "cavedash needs a terminal; connect with ssh -t")
		_ = s.Exit(1)
		return
	}

	screen, err := newScreen(internalssh.NewTty(s, pty, windows), sessionTerm(pty.Term, s.Environ()))
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		_ = s.Exit(1)
		return
	}

	g, err := game.NewWithScreen(cfg, screen)
	if err != nil {
		fmt.Fprintf(s, "Failed to start game: %v\n", err)
		_ = s.Exit(1)
		return
	}

	// A dropped connection interrupts the game so Run can return.
	ctx := s.Context()
	go func() {
		<-ctx.Done()
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
	}()

	log.Printf("session started: user=%s remote=%s", s.User(), s.RemoteAddr())
	if err := g.Run(ctx); err != nil {
		log.Printf("session %s: game error: %v", s.User(), err)
	}
	log.Printf("session ended: user=%s", s.User())
}

func newScreen(tty tcell.Tty, term string) (tcell.Screen, error) {
	termMu.Lock()
	defer termMu.Unlock()
	if err := os.Setenv("TERM", term); err != nil {
		return nil, err
	}
	return tcell.NewTerminfoScreenFromTty(tty)
}

// sessionTerm picks the client's terminal type, preferring the pty request
// over the session environment. Unknown values fall back to defaultTerm.
func sessionTerm(ptyTerm string, environ []string) string {
	if allowedTerms[ptyTerm] {
		return ptyTerm
	}
	for _, kv := range environ {
		if v, ok := strings.CutPrefix(kv, "TERM="); ok && allowedTerms[v] {
			return v
		}
	}
	return defaultTerm
}

// hostKey loads the PEM private key at path, creating and saving a new
// ed25519 key when the file is missing or unparsable.
func hostKey(path string) gossh.Signer {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Printf("Loaded host key from %s", path)
			return signer
		}
	}

	signer, block, err := newHostKey()
	if err != nil {
		log.Fatalf("Failed to create host key: %v", err)
	}
	if err := os.WriteFile(path, pem.EncodeToMemory(block), 0o600); err != nil {
		log.Printf("Warning: host key not saved: %v", err)
	} else {
		log.Printf("Generated host key %s", path)
	}
	return signer
}

func newHostKey() (gossh.Signer, *pem.Block, error) {
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, err
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, nil, err
	}
	block, err := xssh.MarshalPrivateKey(key, "cavedash host key")
	if err != nil {
		return nil, nil, err
	}
	return signer, block, nil
}

// envInt reads an integer environment variable, returning def when unset or invalid.
func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
