package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Setup(ctx context.Context) error {
	f.calls = append(f.calls, "setup")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) ChangePassword(ctx context.Context) error {
	f.calls = append(f.calls, "changepw")
	return nil
}
func (f *fakeExec) AddEntry(ctx context.Context) error {
	f.calls = append(f.calls, "add")
	return nil
}
func (f *fakeExec) ListEntries(ctx context.Context) error {
	f.calls = append(f.calls, "list")
	return nil
}
func (f *fakeExec) AddGoal(ctx context.Context) error {
	f.calls = append(f.calls, "addgoal")
	return nil
}
func (f *fakeExec) ListGoals(ctx context.Context) error {
	f.calls = append(f.calls, "goals")
	return nil
}
func (f *fakeExec) Track(ctx context.Context) error {
	f.calls = append(f.calls, "track")
	return nil
}
func (f *fakeExec) Progress(ctx context.Context) error {
	f.calls = append(f.calls, "progress")
	return nil
}
func (f *fakeExec) Settings(ctx context.Context) error {
	f.calls = append(f.calls, "settings")
	return nil
}
func (f *fakeExec) Export(ctx context.Context) error {
	f.calls = append(f.calls, "export")
	return nil
}
func (f *fakeExec) Import(ctx context.Context) error {
	f.calls = append(f.calls, "import")
	return nil
}
func (f *fakeExec) Wipe(ctx context.Context) error {
	f.calls = append(f.calls, "wipe")
	return nil
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"add",
		"list",
		"track",
		"progress",
		"export",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "add", "list", "track", "progress", "export"}
	if len(exec.calls) < len(wantOrder) {
		t.Fatalf("few calls: %+v", exec.calls)
	}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
}

func TestRunREPL_ShortAliasAndQuit(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("l\n\nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 1 || exec.calls[0] != "list" {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
