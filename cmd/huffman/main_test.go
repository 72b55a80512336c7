package main

import (
	"context"
	"strings"
	"testing"
)

func runTest(t *testing.T, stdin string, environ map[string]string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr strings.Builder
	code := run(context.Background(), args, env{
		stdin:  strings.NewReader(stdin),
		stdout: &stdout,
		stderr: &stderr,
		getenv: func(key string) string { return environ[key] },
	})
	return code, stdout.String(), stderr.String()
}

func TestEncode(t *testing.T) {
	type testRow struct {
		args   []string
		expect string
	}

	testData := [...]testRow{
		{
			args:   []string{"encode", "aabbbcc"},
			expect: "c : 00\na : 01\nb : 1\n01011110000\n",
		},
		{
			args:   []string{"encode", "-right", "-order10", "aabbbcc"},
			expect: "b : 1\na : 01\nc : 00\n01011110000\n",
		},
		{
			args:   []string{"encode", "-json", "aabbbcc"},
			expect: "{\n  \"c\": \"00\",\n  \"a\": \"01\",\n  \"b\": \"1\"\n}\n01011110000\n",
		},
		{
			args:   []string{"encode", "-tree", "  aabbbcc  "},
			expect: "Tree{\n\t{\"cab\", 1.0000}\n\t{\"ca\", 0.5714} {\"b\", 0.4286}\n\t{\"c\", 0.2857} {\"a\", 0.2857}\n}\nc : 00\na : 01\nb : 1\n01011110000\n",
		},
	}
	for _, row := range testData {
		t.Run(strings.Join(row.args, " "), func(t *testing.T) {
			code, stdout, stderr := runTest(t, "", nil, row.args...)
			if code != exitOK {
				t.Fatalf("exit code %d, stderr: %s", code, stderr)
			}
			if row.expect != stdout {
				t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", row.expect, stdout)
			}
		})
	}
}

func TestEncode_ShardsFromEnv(t *testing.T) {
	code, stdout, stderr := runTest(t, "", map[string]string{shardsEnv: "3"}, "encode", "-v", "aabbbcc")
	if code != exitOK {
		t.Fatalf("exit code %d, stderr: %s", code, stderr)
	}
	if expect := "c : 00\na : 01\nb : 1\n01011110000\n"; expect != stdout {
		t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", expect, stdout)
	}
	if !strings.Contains(stderr, "3 shard(s)") {
		t.Errorf("expected shard count in log, got %q", stderr)
	}
}

func TestDecode(t *testing.T) {
	code, stdout, stderr := runTest(t, "c : 00\na : 01\nb : 1\n", nil, "decode", "01011110000")
	if code != exitOK {
		t.Fatalf("exit code %d, stderr: %s", code, stderr)
	}
	if expect := "aabbbcc\n"; expect != stdout {
		t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", expect, stdout)
	}
}

func TestDecode_JSON(t *testing.T) {
	code, stdout, stderr := runTest(t, `{"c":"00","a":"01","b":"1"}`, nil, "decode", "-json", "01011110000")
	if code != exitOK {
		t.Fatalf("exit code %d, stderr: %s", code, stderr)
	}
	if expect := "aabbbcc\n"; expect != stdout {
		t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", expect, stdout)
	}
}

func TestDecode_BadTable(t *testing.T) {
	code, _, stderr := runTest(t, "a 01\n", nil, "decode", "01")
	if code != exitError {
		t.Errorf("expected exit code %d, got %d", exitError, code)
	}
	if !strings.Contains(stderr, "[ERROR] invalid code table: line 1") {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

func TestStats(t *testing.T) {
	code, stdout, stderr := runTest(t, "", nil, "stats", strings.Repeat("ab", 600)+"b")
	if code != exitOK {
		t.Fatalf("exit code %d, stderr: %s", code, stderr)
	}
	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %q", stdout)
	}
	if expect := "1,201 symbols, 2 distinct"; expect != lines[0] {
		t.Errorf("wrong header:\n\texpect: %s\n\tactual: %s", expect, lines[0])
	}
	if !strings.HasPrefix(lines[1], `"b"`) || !strings.HasPrefix(lines[2], `"a"`) {
		t.Errorf("expected most frequent symbol first, got %q", stdout)
	}
}

func TestBlankInput(t *testing.T) {
	for _, args := range [][]string{
		{"encode"},
		{"encode", "   "},
		{"decode", "0101"},
		{"decode"},
		{"stats"},
	} {
		code, _, stderr := runTest(t, "  \n", nil, args...)
		if code != exitUsage {
			t.Errorf("%q: expected exit code %d, got %d", args, exitUsage, code)
		}
		if !strings.Contains(stderr, "cannot be blank") {
			t.Errorf("%q: unexpected stderr: %q", args, stderr)
		}
	}
}

func TestUsage(t *testing.T) {
	if code, _, _ := runTest(t, "", nil); code != exitUsage {
		t.Errorf("no args: expected exit code %d, got %d", exitUsage, code)
	}
	if code, _, _ := runTest(t, "", nil, "frobnicate"); code != exitUsage {
		t.Errorf("unknown command: expected exit code %d, got %d", exitUsage, code)
	}
	if code, _, _ := runTest(t, "", nil, "encode", "-nope", "x"); code != exitUsage {
		t.Errorf("bad flag: expected exit code %d, got %d", exitUsage, code)
	}
	if code, stdout, _ := runTest(t, "", nil, "help"); code != exitOK || !strings.Contains(stdout, "usage:") {
		t.Errorf("help: expected usage on stdout, got %d %q", code, stdout)
	}
}
