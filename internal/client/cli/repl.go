package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for REPL output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. App satisfies it;
// tests provide a recording stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	DeleteAccount(ctx context.Context) error

	Gallery(ctx context.Context, category string) error
	Search(ctx context.Context, query string) error
	Studio(ctx context.Context) error
	Collection(ctx context.Context) error
	Ranking(ctx context.Context) error
	Reload(ctx context.Context) error

	Preview(ctx context.Context, id string) error
	Buy(ctx context.Context) error
	Pay(ctx context.Context, path string) error
	Acknowledge(ctx context.Context) error
	Cancel(ctx context.Context) error

	Upload(ctx context.Context) error
	Edit(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error

	Users(ctx context.Context) error
	DeleteUser(ctx context.Context, email string) error
	Reset(ctx context.Context) error
}

const (
	helpGuest = "Commands: gallery [category|sold] [text], search <text>, ranking, preview <id>, reload, register, login, exit"
	helpUser  = "Commands: gallery [category|sold] [text], search <text>, ranking, preview <id>, buy, pay <slip image>, ok, cancel,\n" +
		"          studio, collection, upload, edit <id>, delete <id>, reload, whoami, logout, deleteaccount, exit"
	helpAdmin = "Admin:    users, deleteuser <email>, reset"
)

// runREPL reads commands line by line and dispatches them to a. The first
// word is the command; the rest of the line is its argument. The loop ends
// on EOF, "exit"/"quit" or once ctx is cancelled.
//
// Errors returned by handlers are ignored here: handlers report them to the
// user themselves.
//
// Commands share reader with the prompts they issue, so lines are consumed
// one at a time.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("artspace (%s)> ", statusFn()))
		raw, err := reader.ReadString('\n')
		if err != nil && raw == "" {
			return
		}
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		cmd, arg, _ := strings.Cut(line, " ")
		cmd = strings.ToLower(cmd)
		arg = strings.TrimSpace(arg)

		switch cmd {
		case "help", "?":
			if !a.isLoggedIn() {
				printlnFn(helpGuest)
				continue
			}
			printlnFn(helpUser)
			if a.isAdmin() {
				printlnFn(helpAdmin)
			}

		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "whoami":
			_ = a.Whoami(ctx)
		case "deleteaccount":
			_ = a.DeleteAccount(ctx)

		case "g", "gallery":
			_ = a.Gallery(ctx, arg)
		case "search":
			_ = a.Search(ctx, arg)
		case "studio":
			_ = a.Studio(ctx)
		case "collection":
			_ = a.Collection(ctx)
		case "ranking", "top":
			_ = a.Ranking(ctx)
		case "reload", "refresh":
			_ = a.Reload(ctx)

		case "p", "preview":
			if arg == "" {
				printlnFn("Usage: preview <id>")
				continue
			}
			_ = a.Preview(ctx, arg)
		case "buy":
			_ = a.Buy(ctx)
		case "pay":
			if arg == "" {
				printlnFn("Usage: pay <path to slip image>")
				continue
			}
			_ = a.Pay(ctx, arg)
		case "ok":
			_ = a.Acknowledge(ctx)
		case "cancel", "close":
			_ = a.Cancel(ctx)

		case "upload":
			_ = a.Upload(ctx)
		case "edit":
			if arg == "" {
				printlnFn("Usage: edit <id>")
				continue
			}
			_ = a.Edit(ctx, arg)
		case "delete":
			if arg == "" {
				printlnFn("Usage: delete <id>")
				continue
			}
			_ = a.Delete(ctx, arg)

		case "users":
			_ = a.Users(ctx)
		case "deleteuser":
			if arg == "" {
				printlnFn("Usage: deleteuser <email>")
				continue
			}
			_ = a.DeleteUser(ctx, arg)
		case "reset":
			_ = a.Reset(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
