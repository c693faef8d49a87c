//go:build e2e && unix

package main

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
)

// keep at most this much output; older bytes are dropped
const maxOutput = 1 << 20

var (
	binPath = "qkart_e2e"
	baseURL string
)

const (
	testUser     = "e2e-shopper"
	testPassword = "hunter2-long"
)

const (
	KeyEnter  = "\r"
	KeyEsc    = "\x1b"
	KeyTab    = "\t"
	KeyCtrlC  = "\x03"
	KeyQuit   = "q"
	KeySearch = "/"
	KeyHelp   = "?"
	KeyLogin  = "L"
	KeyLogout = "O"
)

// CSI, OSC, charset and keypad sequences plus carriage returns
var ansiRe = regexp.MustCompile(
	`(?:\x1b\[[0-9;?]*[ -/]*[@-~])|` +
		`(?:\x1b\][^\x07]*\x07)|` +
		`(?:\x1b[\(\)][A-Za-z])|` +
		`(?:\x1b=|\x1b>)|` +
		`\r`,
)

// TUITestFramework runs one qkart process in a pty and records what it draws
type TUITestFramework struct {
	t         *testing.T
	pty       *os.File
	cmd       *exec.Cmd
	workspace string

	mu  sync.Mutex
	out bytes.Buffer
}

func NewTUITest(t *testing.T) *TUITestFramework {
	return &TUITestFramework{t: t}
}

// StartApp launches qkart against the shared mock backend. Config and log
// files live in a throwaway workspace.
func (tf *TUITestFramework) StartApp(args ...string) error {
	workspace, err := os.MkdirTemp("", "qkart-e2e-")
	if err != nil {
		return fmt.Errorf("failed to create workspace: %w", err)
	}
	tf.workspace = workspace

	cmdArgs := append([]string{
		"--config", filepath.Join(workspace, "config.toml"),
		"--log-file", filepath.Join(workspace, "qkart.log"),
		"--base-url", baseURL,
	}, args...)
	tf.cmd = exec.Command(binPath, cmdArgs...)
	tf.cmd.Env = append(os.Environ(),
		"TERM=xterm-256color",
		"LC_ALL=C",
		"LANG=C",
		"HOME="+workspace,
		"XDG_CONFIG_HOME="+workspace,
	)

	f, err := pty.StartWithSize(tf.cmd, &pty.Winsize{Rows: 40, Cols: 120})
	if err != nil {
		return fmt.Errorf("failed to start qkart: %w", err)
	}
	tf.pty = f

	go tf.capture()
	return nil
}

func (tf *TUITestFramework) capture() {
	chunk := make([]byte, 8192)
	for {
		n, err := tf.pty.Read(chunk)
		if n > 0 {
			tf.mu.Lock()
			tf.out.Write(chunk[:n])
			if over := tf.out.Len() - maxOutput; over > 0 {
				tf.out.Next(over)
			}
			tf.mu.Unlock()
		}
		if err != nil {
			return
		}
	}
}

func (tf *TUITestFramework) SendKeys(keys string) error {
	tf.t.Helper()
	_, err := tf.pty.Write([]byte(keys))
	return err
}

// SendSeq writes each chunk separately. A burst of printable bytes reaches
// the app as one multi-rune key, so mode keys must travel alone.
func (tf *TUITestFramework) SendSeq(chunks ...string) error {
	tf.t.Helper()
	for _, c := range chunks {
		if err := tf.SendKeys(c); err != nil {
			return err
		}
		time.Sleep(80 * time.Millisecond)
	}
	return nil
}

func (tf *TUITestFramework) SendCtrlC() error { return tf.SendKeys(KeyCtrlC) }
func (tf *TUITestFramework) Esc() error       { return tf.SendKeys(KeyEsc) }
func (tf *TUITestFramework) Quit() error      { return tf.SendKeys(KeyQuit) }

// Search focuses the search box and types a query
func (tf *TUITestFramework) Search(query string) error {
	tf.t.Helper()
	return tf.SendSeq(KeySearch, query)
}

// Login opens the login page, fills both fields and submits
func (tf *TUITestFramework) Login(username, password string) error {
	tf.t.Helper()
	return tf.SendSeq(KeyLogin, username, KeyTab, password, KeyEnter)
}

// Ready waits for the first frame with the catalog loaded
func (tf *TUITestFramework) Ready() bool {
	tf.t.Helper()
	return tf.waitPlain("QKart", 5*time.Second) && tf.waitPlain("Add to cart", 5*time.Second)
}

func (tf *TUITestFramework) SeePlain(text string) bool {
	tf.t.Helper()
	return tf.waitPlain(text, 3*time.Second)
}

func (tf *TUITestFramework) WaitForStatusMessage(message string, timeout time.Duration) bool {
	tf.t.Helper()
	return tf.waitPlain(message, timeout)
}

func (tf *TUITestFramework) waitPlain(text string, timeout time.Duration) bool {
	return tf.WaitForE(func(s string) bool {
		return strings.Contains(ansiRe.ReplaceAllString(s, ""), text)
	}, timeout, "") == nil
}

// WaitForE polls the output until pred holds; the error carries the tail of
// the normalized output.
func (tf *TUITestFramework) WaitForE(pred func(string) bool, timeout time.Duration, failMsg string) error {
	tf.t.Helper()
	deadline := time.Now().Add(timeout)
	for {
		if pred(tf.Snapshot()) {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("%s\n--- tail ---\n%s", failMsg, tail(tf.SnapshotPlain(), 4096))
		}
		time.Sleep(25 * time.Millisecond)
	}
}

func (tf *TUITestFramework) Snapshot() string {
	tf.mu.Lock()
	defer tf.mu.Unlock()
	return tf.out.String()
}

func (tf *TUITestFramework) SnapshotPlain() string {
	return ansiRe.ReplaceAllString(tf.Snapshot(), "")
}

// DumpTailOnFail saves the last n bytes of normalized output for debugging
func (tf *TUITestFramework) DumpTailOnFail(t *testing.T, name string, n int) {
	t.Helper()
	p := filepath.Join(t.TempDir(), name+".txt")
	_ = os.WriteFile(p, []byte(tail(tf.SnapshotPlain(), n)), 0o644)
	t.Logf("Saved tail to %s", p)
}

func tail(s string, n int) string {
	if len(s) > n {
		return s[len(s)-n:]
	}
	return s
}

// Cleanup closes the pty, which hangs up the child, then kills it if needed
func (tf *TUITestFramework) Cleanup() {
	if tf.pty != nil {
		_ = tf.pty.Close()
		tf.pty = nil
	}
	if tf.cmd != nil && tf.cmd.Process != nil {
		_ = tf.cmd.Process.Kill()
		_, _ = tf.cmd.Process.Wait()
		tf.cmd = nil
	}
	if tf.workspace != "" {
		_ = os.RemoveAll(tf.workspace)
		tf.workspace = ""
	}
}
