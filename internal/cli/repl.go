package cli

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/portalesuite/portale-client/internal/session"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = func(args ...any) { fmt.Println(args...) }

// commandRunner is the minimal command surface the REPL needs. App satisfies
// it; tests provide a stub.
type commandRunner interface {
	isLoggedIn(ctx context.Context) bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Call(ctx context.Context, method, path, rawBody string) error
}

func (a *App) repl(ctx context.Context) {
	if tok := a.store.Token(ctx); tok != "" && session.ParseHeaderValue(tok).Expired(time.Now()) {
		printlnFn("Stored session has expired; please login again")
	}
	runREPL(ctx, a, a.reader)
}

// runREPL reads commands line by line until exit or EOF.
func runREPL(ctx context.Context, app commandRunner, reader *bufio.Reader) {
	printlnFn("portale client (type 'help' for commands)")

	for {
		fmt.Print("portale> ")
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if app.isLoggedIn(ctx) {
				printlnFn("Available commands: whoami, get <path>, post <path> [json], put <path> [json], delete <path>, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}
		case "login":
			if err := app.Login(ctx); err != nil {
				printlnFn("Login failed:", err)
			}
		case "logout":
			_ = app.Logout(ctx)
		case "whoami":
			_ = app.Whoami(ctx)
		case "get", "delete":
			if len(args) != 1 {
				printlnFn("Usage:", cmd, "<path>")
				continue
			}
			_ = app.Call(ctx, verb(cmd), args[0], "")
		case "post", "put":
			if len(args) == 0 {
				printlnFn("Usage:", cmd, "<path> [json]")
				continue
			}
			_ = app.Call(ctx, verb(cmd), args[0], strings.Join(args[1:], " "))
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func verb(cmd string) string {
	switch cmd {
	case "post":
		return http.MethodPost
	case "put":
		return http.MethodPut
	case "delete":
		return http.MethodDelete
	default:
		return http.MethodGet
	}
}
