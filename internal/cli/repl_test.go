package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRunner records which commands the REPL dispatched.
type stubRunner struct {
	loggedIn bool
	calls    []string
}

func (s *stubRunner) isLoggedIn(ctx context.Context) bool { return s.loggedIn }
func (s *stubRunner) Login(ctx context.Context) error {
	s.calls = append(s.calls, "login")
	return nil
}
func (s *stubRunner) Logout(ctx context.Context) error {
	s.calls = append(s.calls, "logout")
	return nil
}
func (s *stubRunner) Whoami(ctx context.Context) error {
	s.calls = append(s.calls, "whoami")
	return nil
}
func (s *stubRunner) Call(ctx context.Context, method, path, rawBody string) error {
	s.calls = append(s.calls, fmt.Sprintf("%s %s %s", method, path, rawBody))
	return nil
}

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	orig := printlnFn
	t.Cleanup(func() { printlnFn = orig })

	var lines []string
	printlnFn = func(args ...any) {
		lines = append(lines, fmt.Sprintln(args...))
	}
	return &lines
}

func runScript(t *testing.T, app *stubRunner, script string) {
	t.Helper()
	runREPL(context.Background(), app, bufio.NewReader(strings.NewReader(script)))
}

func TestREPL_DispatchesCommands(t *testing.T) {
	_ = captureOutput(t)
	app := &stubRunner{}

	runScript(t, app, "login\nwhoami\nget /workers\ndelete /jobs/3\nlogout\nexit\n")

	assert.Equal(t, []string{
		"login",
		"whoami",
		"GET /workers ",
		"DELETE /jobs/3 ",
		"logout",
	}, app.calls)
}

func TestREPL_PostPassesBody(t *testing.T) {
	_ = captureOutput(t)
	app := &stubRunner{}

	runScript(t, app, `post /reports {"note":"ok"}`+"\nexit\n")

	require.Len(t, app.calls, 1)
	assert.Equal(t, `POST /reports {"note":"ok"}`, app.calls[0])
}

func TestREPL_UsageForMissingArgs(t *testing.T) {
	lines := captureOutput(t)
	app := &stubRunner{}

	runScript(t, app, "get\nexit\n")

	assert.Empty(t, app.calls)
	joined := strings.Join(*lines, "")
	assert.Contains(t, joined, "Usage: get <path>")
}

func TestREPL_HelpReflectsLoginState(t *testing.T) {
	lines := captureOutput(t)

	runScript(t, &stubRunner{loggedIn: false}, "help\nexit\n")
	assert.Contains(t, strings.Join(*lines, ""), "login, exit")

	lines2 := captureOutput(t)
	runScript(t, &stubRunner{loggedIn: true}, "help\nexit\n")
	assert.Contains(t, strings.Join(*lines2, ""), "whoami")
}

func TestREPL_UnknownCommand(t *testing.T) {
	lines := captureOutput(t)

	runScript(t, &stubRunner{}, "frobnicate\nexit\n")

	assert.Contains(t, strings.Join(*lines, ""), "Unknown command: frobnicate")
}

func TestREPL_EOFTerminates(t *testing.T) {
	_ = captureOutput(t)
	app := &stubRunner{}

	runScript(t, app, "whoami\n") // no exit; reader hits EOF

	assert.Equal(t, []string{"whoami"}, app.calls)
}
