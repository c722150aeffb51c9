// yendor-server hosts the game over SSH. Every connection plays its own
// independent game. Build:
//
//	go build -o yendor-server ./cmd/server
//
// Usage:
//
//	./yendor-server [--port 2222] [--key server_host_key] [--log-level info]
//
// Connect:
//
//	ssh -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"

	"yendor/internal/config"
	"yendor/internal/game"
	internalssh "yendor/internal/ssh"
	"yendor/internal/tui"
)

func main() {
	cfg, err := config.Load("yendor-server", os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	level, _ := cfg.SlogLevel()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	signer, err := loadOrCreateHostKey(cfg.HostKey, logger)
	if err != nil {
		logger.Error("host key", "path", cfg.HostKey, "error", err)
		os.Exit(1)
	}

	srv := &gossh.Server{
		Addr: fmt.Sprintf(":%d", cfg.Port),
		Handler: func(s gossh.Session) {
			handleSession(s, cfg, logger)
		},
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// No authentication: anyone who can reach the port may play.
		HostSigners: []gossh.Signer{signer},
	}

	logger.Info("listening", "addr", srv.Addr)
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// handleSession runs one game for the connection and blocks until it ends.
func handleSession(s gossh.Session, cfg config.Config, logger *slog.Logger) {
	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintf(s, "This game requires a PTY. Connect with: ssh -t -p %d <host>\n", cfg.Port)
		return
	}
	log := logger.With("remote", s.RemoteAddr().String(), "user", sanitizeName(s.User()))

	screen, err := newSessionScreen(s, pty, winCh)
	if err != nil {
		log.Warn("terminal setup failed", "error", err)
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}
	defer screen.Fini()
	// Finalizing the screen makes PollEvent return nil, which ends tui.Run
	// when the client disconnects.
	go func() {
		<-s.Context().Done()
		screen.Fini()
	}()

	g, err := game.New(game.WithRand(cfg.NewRand()), game.WithLogger(log))
	if err != nil {
		log.Error("new game", "error", err)
		return
	}

	log.Info("session started")
	if err := tui.Run(screen, g, log); err != nil {
		log.Error("game aborted", "error", err)
	}
	log.Info("session ended", "floor", g.Floor, "turn", g.Turn, "over", g.Over())
}

// newSessionScreen creates and initializes a tcell screen drawing on s.
func newSessionScreen(s gossh.Session, pty gossh.Pty, winCh <-chan gossh.Window) (tcell.Screen, error) {
	term := terminalType(s.Environ())
	if pty.Term != "" && allowedTerms[pty.Term] {
		term = pty.Term
	}

	// TERM must be set in the process environment before
	// NewTerminfoScreenFromTty reads it.
	tty := internalssh.NewSessionTty(s, pty, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return screen, nil
}

// termMu serializes os.Setenv("TERM") around screen creation.
var termMu sync.Mutex

const defaultTerm = "xterm-256color"

// allowedTerms lists the TERM values a client may ask for. Anything else
// falls back to defaultTerm.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"vt220":                 true,
	"rxvt-unicode":          true,
	"rxvt-unicode-256color": true,
	"alacritty":             true,
}

// terminalType picks TERM from the session environment.
func terminalType(environ []string) string {
	for _, kv := range environ {
		if term, ok := strings.CutPrefix(kv, "TERM="); ok {
			if allowedTerms[term] {
				return term
			}
			break
		}
	}
	return defaultTerm
}

const maxNameBytes = 16

// sanitizeName makes an SSH user name safe to log: control characters are
// dropped and the result is cut to maxNameBytes on a rune boundary.
func sanitizeName(name string) string {
	var sb strings.Builder
	for _, r := range name {
		if unicode.IsControl(r) {
			continue
		}
		if sb.Len()+utf8.RuneLen(r) > maxNameBytes {
			break
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// ─── host key ───────────────────────────────────────────────────────────────

// loadOrCreateHostKey loads a PEM private key from path, or generates a new
// ed25519 key and tries to save it there when the file is missing or
// unreadable.
func loadOrCreateHostKey(path string, logger *slog.Logger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			logger.Info("loaded host key", "path", path)
			return signer, nil
		}
	}

	logger.Info("generating ed25519 host key", "path", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	pemBlock, err := xssh.MarshalPrivateKey(key, "yendor server")
	if err == nil {
		err = os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0o600)
	}
	if err != nil {
		logger.Warn("host key not saved", "path", path, "error", err)
	}
	return signer, nil
}
