package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// run executes the root command with args against a throwaway config file
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("BRASSDECK_CONFIG", filepath.Join(t.TempDir(), "config.toml"))
	color.NoColor = true

	resetFlags(RootCmd)

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetArgs(args)

	err := RootCmd.Execute()
	return out.String(), err
}

// resetFlags restores every flag to its default between executions
func resetFlags(c *cobra.Command) {
	c.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func TestDeckList(t *testing.T) {
	out, err := run(t, "deck", "ls")
	if err != nil {
		t.Fatalf("deck ls: %v", err)
	}

	want := "* lancashire (兰开夏) 42 cards [DEFAULT]\n  birmingham (伯明翰) 0 cards\n"
	if out != want {
		t.Fatalf("deck ls output:\n%s\nwant:\n%s", out, want)
	}
}

func TestDeckShow(t *testing.T) {
	out, err := run(t, "deck", "show", "lancashire")
	if err != nil {
		t.Fatalf("deck show: %v", err)
	}

	for _, want := range []string{
		"兰开夏 (lancashire)",
		"/Lancashire-cards/",
		"large 15, small 10, common 17",
		"A 15, B 10, C 17",
		"rail 16, canal 26",
		"  42\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("deck show output missing %q:\n%s", want, out)
		}
	}

	out, err = run(t, "deck", "show", "birmingham")
	if err != nil {
		t.Fatalf("deck show birmingham: %v", err)
	}
	if !strings.Contains(out, "no cards yet") {
		t.Errorf("expected empty deck notice:\n%s", out)
	}
}

func TestDeckShowUnknown(t *testing.T) {
	if _, err := run(t, "deck", "show", "nonexistent"); err == nil || !strings.Contains(err.Error(), "deck not found") {
		t.Fatalf("expected deck not found, got %v", err)
	}
}

func TestDeckSetDefault(t *testing.T) {
	t.Setenv("BRASSDECK_CONFIG", filepath.Join(t.TempDir(), "config.toml"))
	color.NoColor = true

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)

	RootCmd.SetArgs([]string{"deck", "set-default", "birmingham"})
	if err := RootCmd.Execute(); err != nil {
		t.Fatalf("deck set-default: %v", err)
	}

	out.Reset()
	RootCmd.SetArgs([]string{"deck", "ls"})
	if err := RootCmd.Execute(); err != nil {
		t.Fatalf("deck ls: %v", err)
	}
	if !strings.Contains(out.String(), "* birmingham") {
		t.Fatalf("default not persisted:\n%s", out.String())
	}

	RootCmd.SetArgs([]string{"deck", "set-default", "nonexistent"})
	if err := RootCmd.Execute(); err == nil {
		t.Fatal("expected error for unknown deck")
	}
}

func TestCardShow(t *testing.T) {
	out, err := run(t, "card", "show", "1")
	if err != nil {
		t.Fatalf("card show: %v", err)
	}

	for _, want := range []string{
		"Card 1 - 兰开夏 (lancashire)",
		"Type:  large",
		"Group: C",
		"Era:   rail",
		"Front: /Lancashire-cards/1a.png",
		"Back:  /Lancashire-cards/1b.png",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("card show output missing %q:\n%s", want, out)
		}
	}
}

func TestCardShowErrors(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"card", "show", "9999"}, "card not found: 9999 in deck lancashire"},
		{[]string{"card", "show", "--deck", "birmingham", "1"}, "card not found: 1 in deck birmingham"},
		{[]string{"card", "show", "--deck", "nonexistent", "1"}, "deck not found: nonexistent"},
		{[]string{"card", "show", "one"}, "invalid card id"},
	}

	for _, tt := range tests {
		_, err := run(t, tt.args...)
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%v: got error %v, want %q", tt.args, err, tt.want)
		}
	}
}

func TestCardList(t *testing.T) {
	out, err := run(t, "card", "ls", "--type", "large", "--group", "C", "--era", "rail")
	if err != nil {
		t.Fatalf("card ls: %v", err)
	}

	want := "  1  large   C  rail\n  7  large   C  rail\n"
	if out != want {
		t.Fatalf("card ls output:\n%q\nwant:\n%q", out, want)
	}

	out, err = run(t, "card", "ls", "--deck", "birmingham")
	if err != nil {
		t.Fatalf("card ls birmingham: %v", err)
	}
	if !strings.Contains(out, "No matching cards") {
		t.Errorf("unexpected output: %q", out)
	}

	if _, err := run(t, "card", "ls", "--era", "steam"); err == nil {
		t.Error("expected invalid era error")
	}
	if _, err := run(t, "card", "ls", "--group", "D"); err == nil {
		t.Error("expected invalid group error")
	}
}

func TestValidate(t *testing.T) {
	out, err := run(t, "validate")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !strings.Contains(out, "is valid") || !strings.Contains(out, "deck birmingham: no cards defined") {
		t.Fatalf("unexpected validate output:\n%s", out)
	}
}
