package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Setup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	ChangePassword(ctx context.Context) error
	AddEntry(ctx context.Context) error
	ListEntries(ctx context.Context) error
	AddGoal(ctx context.Context) error
	ListGoals(ctx context.Context) error
	Track(ctx context.Context) error
	Progress(ctx context.Context) error
	Settings(ctx context.Context) error
	Export(ctx context.Context) error
	Import(ctx context.Context) error
	Wipe(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the LifeTrack CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Locked:
//	  - help           — show available commands
//	  - setup          — create the account and unlock
//	  - login          — unlock with the master password
//	  - exit | quit    — leave the program
//
//	Unlocked:
//	  - help           — show available commands
//	  - add            — add a daily entry
//	  - list           — list entries (by date and/or category)
//	  - addgoal        — add a goal
//	  - goals          — list goals
//	  - track          — record progress against a goal
//	  - progress       — show progress and insights for a goal
//	  - settings       — show or update preferences
//	  - export         — write a JSON snapshot
//	  - import         — restore from a JSON snapshot
//	  - wipe           — erase the whole store
//	  - changepw       — change the master password
//	  - logout         — lock the store
//	  - exit | quit    — leave the program
//
// Errors returned by command handlers are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("lt %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: add, (l)ist, addgoal, goals, track, progress, settings, export, import, wipe, changepw, logout, exit")
			} else {
				printlnFn("Available commands: setup, login, exit")
			}

		case "setup":
			err = a.Setup(ctx)

		case "login":
			err = a.Login(ctx)

		case "changepw":
			err = a.ChangePassword(ctx)

		case "add":
			err = a.AddEntry(ctx)

		case "l", "list":
			err = a.ListEntries(ctx)

		case "addgoal":
			err = a.AddGoal(ctx)

		case "goals":
			err = a.ListGoals(ctx)

		case "track":
			err = a.Track(ctx)

		case "progress":
			err = a.Progress(ctx)

		case "settings":
			err = a.Settings(ctx)

		case "export":
			err = a.Export(ctx)

		case "import":
			err = a.Import(ctx)

		case "wipe":
			err = a.Wipe(ctx)

		case "logout":
			err = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("error:", err.Error())
		}
	}
}
