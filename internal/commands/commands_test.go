package commands_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"ttask/internal/commands"
	"ttask/internal/config"
	"ttask/internal/exitcode"
	"ttask/internal/service"
	"ttask/internal/session"
	"ttask/internal/testutil"
)

// testEnv bundles a command Env with its captured streams.
type testEnv struct {
	env *commands.Env
	out bytes.Buffer
	err bytes.Buffer
}

func newTestEnv(t *testing.T, svc *testutil.FakeService) *testEnv {
	t.Helper()
	te := &testEnv{}
	te.env = &commands.Env{
		Cfg:    &config.Config{Dir: t.TempDir(), APIURL: config.DefaultAPIURL},
		Store:  session.NewStore(t.TempDir()),
		In:     strings.NewReader(""),
		Out:    &te.out,
		ErrOut: &te.err,
		Color:  false,
	}
	if svc != nil {
		te.env.Service = svc
		te.env.Session = &service.Session{
			Token: "token-1",
			User:  service.User{ID: "1", Email: "a@x.com", Name: "A"},
		}
	}
	return te
}

func (te *testEnv) withInput(input string) *testEnv {
	te.env.In = strings.NewReader(input)
	return te
}

func run(te *testEnv, cmd commands.Command, args ...string) int {
	return cmd.Run(context.Background(), te.env, args)
}

func TestVersion(t *testing.T) {
	te := newTestEnv(t, nil)
	if code := run(te, &commands.VersionCmd{}); code != exitcode.Success {
		t.Fatalf("exit code = %d, want 0", code)
	}
	want := "ttask " + commands.Version + "\n"
	if te.out.String() != want {
		t.Errorf("output = %q, want %q", te.out.String(), want)
	}
}

func TestHelpGolden(t *testing.T) {
	te := newTestEnv(t, nil)
	if code := run(te, &commands.HelpCmd{}); code != exitcode.Success {
		t.Fatalf("exit code = %d, want 0", code)
	}
	testutil.GoldenString(t, "help", te.out.String())
}

func TestHelp(t *testing.T) {
	te := newTestEnv(t, nil)
	if code := run(te, &commands.HelpCmd{}); code != exitcode.Success {
		t.Fatalf("exit code = %d, want 0", code)
	}
	for _, want := range []string{"Usage:", "ttask list", "ttask login", "--no-color"} {
		if !strings.Contains(te.out.String(), want) {
			t.Errorf("help output missing %q", want)
		}
	}
}

func TestList(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("Buy milk", "", false)
	svc.AddTask("Ship release", "", true)

	te := newTestEnv(t, svc)
	if code := run(te, &commands.ListCmd{}); code != exitcode.Success {
		t.Fatalf("exit code = %d, want 0; stderr: %s", code, te.err.String())
	}

	want := "   2  [x]  Ship release\n   1  [ ]  Buy milk\n"
	if te.out.String() != want {
		t.Errorf("output = %q, want %q", te.out.String(), want)
	}
}

func TestListEmpty(t *testing.T) {
	te := newTestEnv(t, testutil.NewFakeService())
	if code := run(te, &commands.ListCmd{}); code != exitcode.Success {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if got := te.out.String(); got != "no tasks found\n" {
		t.Errorf("output = %q", got)
	}
}

func TestListEmptyQuiet(t *testing.T) {
	te := newTestEnv(t, testutil.NewFakeService())
	te.env.Cfg.Quiet = true
	if code := run(te, &commands.ListCmd{}); code != exitcode.Success {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if te.out.Len() != 0 {
		t.Errorf("quiet output = %q, want empty", te.out.String())
	}
}

func TestListFilter(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("Buy milk", "", false)
	svc.AddTask("Ship release", "", true)

	tests := []struct {
		name       string
		done, open bool
		want       string
	}{
		{"done", true, false, "   2  [x]  Ship release\n"},
		{"open", false, true, "   1  [ ]  Buy milk\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			te := newTestEnv(t, svc)
			cmd := &commands.ListCmd{}
			cmd.SetFilter(tt.done, tt.open)
			if code := run(te, cmd); code != exitcode.Success {
				t.Fatalf("exit code = %d, want 0", code)
			}
			if te.out.String() != tt.want {
				t.Errorf("output = %q, want %q", te.out.String(), tt.want)
			}
		})
	}
}

func TestListBothFilters(t *testing.T) {
	te := newTestEnv(t, testutil.NewFakeService())
	cmd := &commands.ListCmd{}
	cmd.SetFilter(true, true)
	if code := run(te, cmd); code != exitcode.UserError {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(te.err.String(), "cannot use both") {
		t.Errorf("stderr = %q", te.err.String())
	}
}

func TestListBackendError(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.ListTasksErr = io.ErrUnexpectedEOF

	te := newTestEnv(t, svc)
	if code := run(te, &commands.ListCmd{}); code != exitcode.BackendError {
		t.Fatalf("exit code = %d, want 3", code)
	}
}

func TestAdd(t *testing.T) {
	svc := testutil.NewFakeService()
	te := newTestEnv(t, svc)
	if code := run(te, &commands.AddCmd{}, "Buy", "milk"); code != exitcode.Success {
		t.Fatalf("exit code = %d, want 0; stderr: %s", code, te.err.String())
	}
	if got := te.out.String(); got != "created 1\n" {
		t.Errorf("output = %q", got)
	}

	tasks, _ := svc.ListTasks(context.Background(), nil)
	if len(tasks) != 1 || tasks[0].Title != "Buy milk" {
		t.Errorf("stored tasks = %+v", tasks)
	}
}

func TestAddEmptyTitle(t *testing.T) {
	svc := testutil.NewFakeService()
	te := newTestEnv(t, svc)
	if code := run(te, &commands.AddCmd{}, "   "); code != exitcode.UserError {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(te.err.String(), "title is required") {
		t.Errorf("stderr = %q", te.err.String())
	}
	if svc.CreateCalls != 0 {
		t.Errorf("CreateTask called %d times, want 0", svc.CreateCalls)
	}
}

func TestAddTitleTooLong(t *testing.T) {
	svc := testutil.NewFakeService()
	te := newTestEnv(t, svc)
	long := strings.Repeat("x", 201)
	if code := run(te, &commands.AddCmd{}, long); code != exitcode.UserError {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(te.err.String(), "200 characters or fewer") {
		t.Errorf("stderr = %q", te.err.String())
	}
	if svc.CreateCalls != 0 {
		t.Errorf("CreateTask called %d times, want 0", svc.CreateCalls)
	}
}

func TestShow(t *testing.T) {
	svc := testutil.NewFakeService()
	id := svc.AddTask("Buy milk", "2 liters", false)

	te := newTestEnv(t, svc)
	if code := run(te, &commands.ShowCmd{}, id); code != exitcode.Success {
		t.Fatalf("exit code = %d, want 0; stderr: %s", code, te.err.String())
	}
	for _, want := range []string{"Buy milk", "open", "2 liters"} {
		if !strings.Contains(te.out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, te.out.String())
		}
	}
}

func TestShowNotFound(t *testing.T) {
	te := newTestEnv(t, testutil.NewFakeService())
	if code := run(te, &commands.ShowCmd{}, "99"); code != exitcode.BackendError {
		t.Fatalf("exit code = %d, want 3", code)
	}
	if got := te.err.String(); got != "error: Task not found\n" {
		t.Errorf("stderr = %q", got)
	}
}

func TestShowInvalidID(t *testing.T) {
	te := newTestEnv(t, testutil.NewFakeService())
	if code := run(te, &commands.ShowCmd{}, "abc"); code != exitcode.UserError {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(te.err.String(), "invalid task id") {
		t.Errorf("stderr = %q", te.err.String())
	}
}

func TestEditPreservesCompleted(t *testing.T) {
	svc := testutil.NewFakeService()
	id := svc.AddTask("Buy milk", "2 liters", true)

	te := newTestEnv(t, svc)
	cmd := &commands.EditCmd{}
	cmd.SetFields("Buy oat milk", "", false)
	if code := run(te, cmd, id); code != exitcode.Success {
		t.Fatalf("exit code = %d, want 0; stderr: %s", code, te.err.String())
	}

	task, _ := svc.GetTask(context.Background(), id)
	if task.Title != "Buy oat milk" {
		t.Errorf("title = %q", task.Title)
	}
	if task.Description != "2 liters" {
		t.Errorf("description = %q, want untouched", task.Description)
	}
	if !task.Completed {
		t.Error("completed flag was reset by edit")
	}
}

func TestEditClearDescription(t *testing.T) {
	svc := testutil.NewFakeService()
	id := svc.AddTask("Buy milk", "2 liters", false)

	te := newTestEnv(t, svc)
	cmd := &commands.EditCmd{}
	cmd.SetFields("", "", true)
	if code := run(te, cmd, id); code != exitcode.Success {
		t.Fatalf("exit code = %d, want 0", code)
	}

	task, _ := svc.GetTask(context.Background(), id)
	if task.Description != "" {
		t.Errorf("description = %q, want cleared", task.Description)
	}
	if task.Title != "Buy milk" {
		t.Errorf("title = %q, want untouched", task.Title)
	}
}

func TestEditNothingToChange(t *testing.T) {
	te := newTestEnv(t, testutil.NewFakeService())
	if code := run(te, &commands.EditCmd{}, "1"); code != exitcode.UserError {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(te.err.String(), "nothing to change") {
		t.Errorf("stderr = %q", te.err.String())
	}
}

func TestDoneToggles(t *testing.T) {
	svc := testutil.NewFakeService()
	id := svc.AddTask("Buy milk", "", false)

	te := newTestEnv(t, svc)
	if code := run(te, &commands.DoneCmd{}, id); code != exitcode.Success {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if got := te.out.String(); got != "completed 1\n" {
		t.Errorf("output = %q", got)
	}

	te = newTestEnv(t, svc)
	if code := run(te, &commands.DoneCmd{}, id); code != exitcode.Success {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if got := te.out.String(); got != "reopened 1\n" {
		t.Errorf("output = %q", got)
	}
}

func TestRmForce(t *testing.T) {
	svc := testutil.NewFakeService()
	id := svc.AddTask("Buy milk", "", false)

	te := newTestEnv(t, svc)
	cmd := &commands.RmCmd{}
	cmd.SetForce(true)
	if code := run(te, cmd, id); code != exitcode.Success {
		t.Fatalf("exit code = %d, want 0; stderr: %s", code, te.err.String())
	}
	if got := te.out.String(); got != "deleted 1\n" {
		t.Errorf("output = %q", got)
	}

	tasks, _ := svc.ListTasks(context.Background(), nil)
	if len(tasks) != 0 {
		t.Errorf("tasks remaining = %d", len(tasks))
	}
}

func TestRmConfirm(t *testing.T) {
	svc := testutil.NewFakeService()
	id := svc.AddTask("Buy milk", "", false)

	te := newTestEnv(t, svc).withInput("y\n")
	if code := run(te, &commands.RmCmd{}, id); code != exitcode.Success {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if !strings.Contains(te.err.String(), "delete task 1?") {
		t.Errorf("prompt not shown: %q", te.err.String())
	}

	tasks, _ := svc.ListTasks(context.Background(), nil)
	if len(tasks) != 0 {
		t.Errorf("tasks remaining = %d", len(tasks))
	}
}

func TestRmAborted(t *testing.T) {
	svc := testutil.NewFakeService()
	id := svc.AddTask("Buy milk", "", false)

	te := newTestEnv(t, svc).withInput("n\n")
	if code := run(te, &commands.RmCmd{}, id); code != exitcode.Success {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if got := te.out.String(); got != "aborted\n" {
		t.Errorf("output = %q", got)
	}

	tasks, _ := svc.ListTasks(context.Background(), nil)
	if len(tasks) != 1 {
		t.Errorf("task was deleted despite abort")
	}
}

func TestUnauthorizedClearsSession(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.ListTasksErr = &testutil.StatusErr{Code: 401, Msg: "Invalid or expired token"}

	te := newTestEnv(t, svc)
	if err := te.env.Store.Set("stale-token", te.env.Session.User); err != nil {
		t.Fatal(err)
	}

	if code := run(te, &commands.ListCmd{}); code != exitcode.AuthError {
		t.Fatalf("exit code = %d, want 2", code)
	}
	if !strings.Contains(te.err.String(), "run: ttask login") {
		t.Errorf("stderr = %q", te.err.String())
	}
	if te.env.Store.IsAuthenticated() {
		t.Error("rejected session still stored")
	}
}

func TestDebugPrintsStatus(t *testing.T) {
	svc := testutil.NewFakeService()
	te := newTestEnv(t, svc)
	te.env.Cfg.Debug = true

	if code := run(te, &commands.ShowCmd{}, "99"); code != exitcode.BackendError {
		t.Fatalf("exit code = %d, want 3", code)
	}
	if !strings.Contains(te.err.String(), "debug: api status 404") {
		t.Errorf("stderr = %q", te.err.String())
	}
}

// TestTaskLifecycle walks the main flow end to end: an empty list, a new
// task, completing it, and deleting it.
func TestTaskLifecycle(t *testing.T) {
	svc := testutil.NewFakeService()

	te := newTestEnv(t, svc)
	if code := run(te, &commands.ListCmd{}); code != exitcode.Success {
		t.Fatalf("list: exit code = %d", code)
	}
	if te.out.String() != "no tasks found\n" {
		t.Fatalf("list output = %q", te.out.String())
	}

	te = newTestEnv(t, svc)
	if code := run(te, &commands.AddCmd{}, "Buy", "milk"); code != exitcode.Success {
		t.Fatalf("add: exit code = %d", code)
	}

	te = newTestEnv(t, svc)
	if code := run(te, &commands.DoneCmd{}, "1"); code != exitcode.Success {
		t.Fatalf("done: exit code = %d", code)
	}

	te = newTestEnv(t, svc)
	if code := run(te, &commands.ListCmd{}); code != exitcode.Success {
		t.Fatalf("list: exit code = %d", code)
	}
	if got := te.out.String(); got != "   1  [x]  Buy milk\n" {
		t.Fatalf("list output = %q", got)
	}

	te = newTestEnv(t, svc)
	cmd := &commands.RmCmd{}
	cmd.SetForce(true)
	if code := run(te, cmd, "1"); code != exitcode.Success {
		t.Fatalf("rm: exit code = %d", code)
	}

	tasks, _ := svc.ListTasks(context.Background(), nil)
	if len(tasks) != 0 {
		t.Errorf("tasks remaining = %d", len(tasks))
	}
}
