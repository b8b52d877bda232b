package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portalesuite/portale-client/internal/api"
	"github.com/portalesuite/portale-client/internal/session"
)

// stubAuth implements auth.Service for command tests.
type stubAuth struct {
	user      *session.User
	loginErr  error
	lastEmail string
	lastPass  string
	loggedOut bool
}

func (s *stubAuth) Login(ctx context.Context, email, password string) (*session.User, error) {
	s.lastEmail, s.lastPass = email, password
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return s.user, nil
}

func (s *stubAuth) Logout(ctx context.Context) { s.loggedOut = true }

func (s *stubAuth) CurrentUser(ctx context.Context) *session.User { return s.user }

func testApp(t *testing.T, a *stubAuth, input string) (*App, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	return &App{
		auth:   a,
		api:    api.New("http://localhost:1", nil, nil, nil),
		store:  session.NewMemoryStore(),
		reader: bufio.NewReader(strings.NewReader(input)),
		out:    &out,
	}, &out
}

func TestAppLogin_PassesCredentials(t *testing.T) {
	lines := captureOutput(t)
	orig := getPassword
	t.Cleanup(func() { getPassword = orig })
	getPassword = func(w io.Writer) (string, error) { return "segreta", nil }

	stub := &stubAuth{user: &session.User{FirstName: "Anna", LastName: "Bianchi", Role: session.RoleOperator}}
	app, _ := testApp(t, stub, "anna@example.it\n")

	require.NoError(t, app.Login(context.Background()))
	assert.Equal(t, "anna@example.it", stub.lastEmail)
	assert.Equal(t, "segreta", stub.lastPass)
	assert.Contains(t, strings.Join(*lines, ""), "Logged in as Anna Bianchi (operator)")
}

func TestAppLogin_ErrorPropagates(t *testing.T) {
	_ = captureOutput(t)
	orig := getPassword
	t.Cleanup(func() { getPassword = orig })
	getPassword = func(w io.Writer) (string, error) { return "sbagliata", nil }

	stub := &stubAuth{loginErr: errors.New("Credenziali non valide")}
	app, _ := testApp(t, stub, "anna@example.it\n")

	require.Error(t, app.Login(context.Background()))
}

func TestAppWhoami(t *testing.T) {
	lines := captureOutput(t)
	stub := &stubAuth{user: &session.User{FirstName: "Anna", LastName: "Bianchi", Email: "anna@example.it", Role: session.RoleAdmin, Status: "active"}}
	app, _ := testApp(t, stub, "")

	require.NoError(t, app.Whoami(context.Background()))
	assert.Contains(t, strings.Join(*lines, ""), "anna@example.it")

	lines2 := captureOutput(t)
	app2, _ := testApp(t, &stubAuth{}, "")
	require.NoError(t, app2.Whoami(context.Background()))
	assert.Contains(t, strings.Join(*lines2, ""), "Not logged in")
}

func TestAppLogout(t *testing.T) {
	_ = captureOutput(t)
	stub := &stubAuth{}
	app, _ := testApp(t, stub, "")

	require.NoError(t, app.Logout(context.Background()))
	assert.True(t, stub.loggedOut)
}

func TestAppCall_RejectsInvalidJSONBody(t *testing.T) {
	lines := captureOutput(t)
	app, _ := testApp(t, &stubAuth{}, "")

	require.NoError(t, app.Call(context.Background(), "POST", "/reports", "{broken"))
	assert.Contains(t, strings.Join(*lines, ""), "not valid JSON")
}

func TestAppCall_PrintsUniformResult(t *testing.T) {
	lines := captureOutput(t)
	app, _ := testApp(t, &stubAuth{}, "")

	// Unreachable backend: the executor reports status 0 with a message.
	require.NoError(t, app.Call(context.Background(), "GET", "/workers", ""))

	joined := strings.Join(*lines, "")
	assert.Contains(t, joined, "HTTP 0 ok=false")
	assert.Contains(t, joined, "Errore di connessione")
}
