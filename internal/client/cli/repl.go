package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL dispatches to.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Invited(ctx context.Context) error
	Show(ctx context.Context, args []string) error
	Create(ctx context.Context) error
	Join(ctx context.Context, args []string) error
	Decline(ctx context.Context, args []string) error
	Vote(ctx context.Context, args []string) error
	Prefer(ctx context.Context, args []string) error
	Invite(ctx context.Context, args []string) error
	CloseSurvey(ctx context.Context, args []string) error
	Remove(ctx context.Context, args []string) error
}

// usageError is returned by handlers called with the wrong arguments.
type usageError string

func (e usageError) Error() string { return "usage: " + string(e) }

// runREPL starts a read-eval-print loop for the survey CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a' with the remaining tokens as arguments. The
// loop exits on EOF, on ctx cancellation or when the user types "exit" or
// "quit".
//
// Prompt & Commands
//
//	Not logged in:
//	  - help                      - show available commands
//	  - register                  - create an account
//	  - login                     - authenticate
//	  - exit | quit               - leave the program
//
//	Logged in:
//	  - surveys | l               - list surveys you take part in
//	  - invited                   - list surveys you are invited to
//	  - show <id>                 - show a survey with ranked options
//	  - create                    - create a survey (interactive)
//	  - join <key> | decline <key>
//	  - vote <id> <n>             - toggle your vote on option n
//	  - prefer <id> <n>           - toggle your preferred option
//	  - invite <id> <username>    - invite a user (creator only)
//	  - close <id> | remove <id>  - close or delete a survey (creator only)
//	  - logout
//
// Handler errors are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}

		printlnFn(fmt.Sprintf("sos%s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if !a.isLoggedIn() && needsLogin(cmd) {
			printlnFn("Please login first")
			continue
		}

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: surveys, invited, show, create, join, decline, vote, prefer, invite, close, remove, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			cmdErr = a.Register(ctx)
		case "login":
			cmdErr = a.Login(ctx)
		case "logout":
			cmdErr = a.Logout(ctx)
		case "l", "surveys":
			cmdErr = a.List(ctx)
		case "invited":
			cmdErr = a.Invited(ctx)
		case "show":
			cmdErr = a.Show(ctx, args)
		case "create":
			cmdErr = a.Create(ctx)
		case "join":
			cmdErr = a.Join(ctx, args)
		case "decline":
			cmdErr = a.Decline(ctx, args)
		case "vote":
			cmdErr = a.Vote(ctx, args)
		case "prefer":
			cmdErr = a.Prefer(ctx, args)
		case "invite":
			cmdErr = a.Invite(ctx, args)
		case "close":
			cmdErr = a.CloseSurvey(ctx, args)
		case "remove":
			cmdErr = a.Remove(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("error:", cmdErr)
		}
	}
}

func needsLogin(cmd string) bool {
	switch cmd {
	case "help", "register", "login", "exit", "quit":
		return false
	}
	return true
}
