package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ccollicutt/minigrep/pkg/config"
)

type mapEnv map[string]string

func (m mapEnv) LookupEnv(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

const poem = `Rust:
safe, fast, productive.
Pick three.
Duct tape.
`

func writePoem(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "poem.txt")
	if err := os.WriteFile(path, []byte(poem), 0644); err != nil {
		t.Fatalf("Failed to create poem: %v", err)
	}
	return path
}

func run(t *testing.T, env mapEnv, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = Run(append([]string{"minigrep"}, args...), &out, &errOut, env)
	return code, out.String(), errOut.String()
}

func TestRun_CaseSensitive(t *testing.T) {
	code, stdout, stderr := run(t, mapEnv{}, "duct", writePoem(t))

	if code != 0 {
		t.Errorf("exit code = %d, want 0 (stderr: %s)", code, stderr)
	}
	if stdout != "safe, fast, productive.\n" {
		t.Errorf("stdout = %q", stdout)
	}
	if stderr != "" {
		t.Errorf("stderr = %q, want empty", stderr)
	}
}

func TestRun_IgnoreCase(t *testing.T) {
	code, stdout, _ := run(t, mapEnv{config.EnvIgnoreCase: ""}, "DUCT", writePoem(t))

	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if stdout != "safe, fast, productive.\nDuct tape.\n" {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestRun_NoMatches(t *testing.T) {
	code, stdout, stderr := run(t, mapEnv{}, "monomorphization", writePoem(t))

	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if stdout != "" || stderr != "" {
		t.Errorf("expected no output, got stdout=%q stderr=%q", stdout, stderr)
	}
}

func TestRun_MissingArguments(t *testing.T) {
	for _, args := range [][]string{nil, {"duct"}} {
		code, stdout, stderr := run(t, mapEnv{}, args...)

		if code != 1 {
			t.Errorf("args %v: exit code = %d, want 1", args, code)
		}
		if stdout != "" {
			t.Errorf("args %v: stdout = %q, want empty", args, stdout)
		}
		if stderr != "Problem parsing arguments: not enough arguments\n" {
			t.Errorf("args %v: stderr = %q", args, stderr)
		}
	}
}

func TestRun_EmptyArgv(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := Run(nil, &out, &errOut, mapEnv{}); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
}

func TestRun_FileNotFound(t *testing.T) {
	code, stdout, stderr := run(t, mapEnv{}, "duct", "/nonexistent/poem.txt")

	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want empty", stdout)
	}
	if !strings.HasPrefix(stderr, "Application error: ") {
		t.Errorf("stderr = %q, want Application error prefix", stderr)
	}
	if !strings.Contains(stderr, "no such file or directory") {
		t.Errorf("stderr = %q, want underlying cause", stderr)
	}
}

func TestRun_FlagLikeQueryIsLiteral(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flags.txt")
	if err := os.WriteFile(path, []byte("use --help for more\nplain\n-v is verbose\n"), 0644); err != nil {
		t.Fatal(err)
	}

	code, stdout, _ := run(t, mapEnv{}, "--help", path)
	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if stdout != "use --help for more\n" {
		t.Errorf("stdout = %q", stdout)
	}

	code, stdout, _ = run(t, mapEnv{}, "-v", path)
	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if stdout != "-v is verbose\n" {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestRun_ExtraArgumentsIgnored(t *testing.T) {
	code, stdout, _ := run(t, mapEnv{}, "Pick", writePoem(t), "ignored", "/also/ignored")

	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if stdout != "Pick three.\n" {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestRun_DebugLogging(t *testing.T) {
	code, stdout, stderr := run(t, mapEnv{config.EnvLogLevel: "debug"}, "Pick", writePoem(t))

	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if stdout != "Pick three.\n" {
		t.Errorf("stdout = %q", stdout)
	}
	if !strings.Contains(stderr, "search complete") {
		t.Errorf("stderr = %q, want debug log", stderr)
	}
}

func TestNewRootCommand(t *testing.T) {
	cmd := NewRootCommand(mapEnv{}, nil)

	if cmd.Name() != "minigrep" {
		t.Errorf("Name() = %q, want minigrep", cmd.Name())
	}
	if !cmd.SilenceErrors || !cmd.SilenceUsage {
		t.Error("root command should silence errors and usage")
	}
	if cmd.HasSubCommands() {
		t.Error("root command should have no subcommands")
	}
}
