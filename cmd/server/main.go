// penguin-patrol-server hosts the arena over SSH. Every connection gets its
// own game. Build:
//
//	go build -o penguin-patrol-server ./cmd/server
//
// Usage:
//
//	./penguin-patrol-server [-port 2222] [-key server_host_key] [-config tune.json] [-level floe]
//
// Connect:
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
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"
	"unicode"

	"penguin-patrol/internal/config"
	"penguin-patrol/internal/game"
	internalssh "penguin-patrol/internal/ssh"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"
)

const maxNameBytes = 16

func main() {
	port := flag.Int("port", 2222, "SSH server port")
	keyFile := flag.String("key", "server_host_key", "Path to the PEM-encoded host key (auto-generated if absent)")
	cfgPath := flag.String("config", "", "JSON tuning file")
	level := flag.String("level", "", "first level: built-in name, level file or \"random\"")
	maxSessions := flag.Int("max", 16, "maximum concurrent players")
	flag.Parse()

	cfg, err := config.LoadOrDefault(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}

	h := &host{cfg: cfg, level: *level, slots: make(chan struct{}, *maxSessions)}
	srv := &gossh.Server{
		Addr:        fmt.Sprintf(":%d", *port),
		Handler:     h.handleSession,
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// No authentication: anyone who can reach the port may play.
		HostSigners: []gossh.Signer{loadOrCreateHostKey(*keyFile)},
	}

	log.Printf("penguin-patrol SSH server listening on :%d", *port)
	log.Printf("Connect with:  ssh -t -p %d localhost", *port)
	log.Fatal(srv.ListenAndServe())
}

// allowedTerms is the set of TERM values handed to terminfo. Anything else
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
	"vt220":                 true,
	"rxvt-unicode":          true,
	"rxvt-unicode-256color": true,
	"alacritty":             true,
}

// sanitizeName drops control characters from an SSH user name and cuts it
// to maxNameBytes without splitting a rune.
func sanitizeName(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsControl(r) || r == unicode.ReplacementChar {
			continue
		}
		if b.Len()+len(string(r)) > maxNameBytes {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// sessionTerm picks the terminal type from the client's environment.
func sessionTerm(environ []string) string {
	for _, env := range environ {
		if term, ok := strings.CutPrefix(env, "TERM="); ok && allowedTerms[term] {
			return term
		}
	}
	return "xterm-256color"
}

// host runs one game per SSH session, up to cap(slots) at a time.
type host struct {
	cfg   *config.Tunables
	level string
	slots chan struct{}
}

// termMu serialises the TERM swap around terminfo screen creation.
var termMu sync.Mutex

// handleSession blocks for the duration of the connection.
func (h *host) handleSession(s gossh.Session) {
	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "This game requires a PTY. Connect with: ssh -t -p 2222 <host>")
		return
	}
	select {
	case h.slots <- struct{}{}:
		defer func() { <-h.slots }()
	default:
		fmt.Fprintln(s, "The ice shelf is full. Try again later.")
		return
	}

	name := sanitizeName(s.User())
	logger := slog.Default().With("user", name, "remote", s.RemoteAddr().String())

	tty := internalssh.NewSessionTTY(s, pty, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", sessionTerm(s.Environ()))
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		return
	}

	g, err := game.NewWithScreen(screen, game.Options{
		Config: h.cfg,
		Level:  h.level,
		Seed:   time.Now().UnixNano(),
		Logger: logger,
		Host:   "ssh:" + name,
	})
	if err != nil {
		screen.Fini()
		fmt.Fprintf(s, "Level failed to load: %v\n", err)
		logger.Warn("session aborted", "error", err)
		return
	}
	logger.Info("session started")
	g.Run()
	logger.Info("session ended")
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string) gossh.Signer {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Printf("Loaded host key from %s", path)
			return signer
		}
	}

	log.Printf("Generating new ed25519 host key -> %s", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		log.Fatalf("generate host key: %v", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		log.Fatalf("create signer: %v", err)
	}
	if block, err := xssh.MarshalPrivateKey(key, "penguin-patrol server"); err == nil {
		if err := os.WriteFile(path, pem.EncodeToMemory(block), 0o600); err != nil {
			log.Printf("host key not saved: %v", err)
		}
	}
	return signer
}
