package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/portalesuite/portale-client/internal/api"
)

// Input seams, swappable in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// Login prompts for credentials and performs the login exchange. The session
// is persisted by the auth service on success.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	user, err := a.auth.Login(ctx, email, password)
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Logged in as %s %s (%s)", user.FirstName, user.LastName, user.Role))
	return nil
}

// Logout drops the local session.
func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout(ctx)
	printlnFn("Logged out")
	return nil
}

// Whoami prints the stored profile snapshot.
func (a *App) Whoami(ctx context.Context) error {
	user := a.auth.CurrentUser(ctx)
	if user == nil {
		printlnFn("Not logged in")
		return nil
	}
	printlnFn(fmt.Sprintf("%s %s <%s> role=%s status=%s", user.FirstName, user.LastName, user.Email, user.Role, user.Status))
	return nil
}

// Call issues one raw verb call against the backend and prints the uniform
// result. rawBody, when non-empty, must be valid JSON and is sent verbatim.
func (a *App) Call(ctx context.Context, method, path, rawBody string) error {
	var body any
	if rawBody != "" {
		if !json.Valid([]byte(rawBody)) {
			printlnFn("Body is not valid JSON")
			return nil
		}
		body = json.RawMessage(rawBody)
	}

	res := a.api.Do(ctx, path, api.RequestOptions{Method: method, Body: body})

	printlnFn(fmt.Sprintf("HTTP %d ok=%t", res.Status, res.OK))
	if res.Message != "" {
		printlnFn(res.Message)
	}
	if res.Data != nil {
		pretty, err := json.MarshalIndent(res.Data, "", "  ")
		if err == nil {
			printlnFn(string(pretty))
		}
	}
	return nil
}
