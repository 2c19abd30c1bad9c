// space-trader-server serves the game over SSH. Every connection plays its
// own run. Build:
//
//	go build -o space-trader-server ./cmd/server
//
// Usage:
//
//	./space-trader-server [-port 2222] [-key server_host_key] [-config ships.yaml] [-seed 0]
//
// Connect with:
//
//	ssh -t -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"flag"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
	"unicode"
	"unicode/utf8"

	"space-trader/internal/config"
	"space-trader/internal/game"
	"space-trader/internal/logger"
	internalssh "space-trader/internal/ssh"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	"github.com/sirupsen/logrus"
	xssh "golang.org/x/crypto/ssh"
)

// maxNameBytes bounds the pilot name taken from the SSH user.
const maxNameBytes = 16

// allowedTerms are the TERM values a client may select. Anything else
// falls back to xterm-256color.
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

func main() {
	port := flag.Int("port", 2222, "SSH server port")
	keyFile := flag.String("key", "server_host_key", "PEM-encoded host key, generated if absent")
	cfgPath := flag.String("config", "", "YAML file overriding the built-in ship and map settings")
	seed := flag.Int64("seed", 0, "RNG seed for every run (0 picks one per connection)")
	flag.Parse()

	if _, err := logger.Init(logger.Options{Output: os.Stderr}); err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	log := logger.For("server")

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.WithError(err).Fatal("load config")
	}

	srv := &gossh.Server{
		Addr: fmt.Sprintf(":%d", *port),
		Handler: func(s gossh.Session) {
			handleSession(s, cfg, *seed)
		},
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// Any client may connect; this is meant for a private server.
		HostSigners: []gossh.Signer{loadOrCreateHostKey(*keyFile)},
	}

	log.WithField("port", *port).Info("listening")
	log.Fatal(srv.ListenAndServe())
}

// termMu serialises os.Setenv("TERM") with screen creation, since terminfo
// lookup reads the process environment.
var termMu sync.Mutex

// handleSession runs one game for the connection. It blocks until the
// player quits so the SSH session stays open.
func handleSession(s gossh.Session, cfg *config.Config, seed int64) {
	log := logger.For("server").WithFields(logrus.Fields{
		"user":   s.User(),
		"remote": s.RemoteAddr().String(),
	})

	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "This game needs a PTY. Connect with: ssh -t -p 2222 <host>")
		return
	}

	term := "xterm-256color"
	if allowedTerms[pty.Term] {
		term = pty.Term
	}

	tty := internalssh.NewSessionTty(s, pty, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		log.WithError(err).Warn("terminal setup")
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		log.WithError(err).Warn("screen init")
		return
	}
	screen.EnableMouse()

	opts := sessionOptions(cfg, s.User(), seed)
	g, err := game.New(screen, opts)
	if err != nil {
		screen.Fini()
		log.WithError(err).Error("new game")
		return
	}

	log.WithFields(logrus.Fields{"seed": opts.Seed, "pilot": opts.Pilot}).Info("session started")
	if err := g.Run(); err != nil {
		log.WithError(err).Error("session aborted")
		_ = s.Exit(1)
		return
	}
	log.Info("session ended")
}

// sessionOptions builds the game options for one connection. A zero seed
// picks a fresh one so concurrent players get different sectors.
func sessionOptions(cfg *config.Config, user string, seed int64) game.Options {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return game.Options{
		Config: cfg,
		Seed:   seed,
		Pilot:  sanitizeName(user),
	}
}

// sanitizeName drops non-printable runes and truncates to maxNameBytes on a
// rune boundary.
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if r == utf8.RuneError || !unicode.IsPrint(r) {
			continue
		}
		if b.Len()+utf8.RuneLen(r) > maxNameBytes {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// saves a new ed25519 key when the file is missing or unreadable.
func loadOrCreateHostKey(path string) gossh.Signer {
	log := logger.For("server").WithField("path", path)
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Info("loaded host key")
			return signer
		}
	}

	log.Info("generating ed25519 host key")
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		log.WithError(err).Fatal("generate host key")
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		log.WithError(err).Fatal("create signer")
	}
	if block, err := xssh.MarshalPrivateKey(key, "space-trader server"); err == nil {
		if err := os.WriteFile(path, pem.EncodeToMemory(block), 0o600); err != nil {
			log.WithError(err).Warn("host key not saved")
		}
	}
	return signer
}
