package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli/v2"
)

func testApp(out *bytes.Buffer) *cli.App {
	app := newApp()
	app.Writer = out
	app.ErrWriter = out
	app.ExitErrHandler = func(*cli.Context, error) {}
	return app
}

func TestCrumbsCommand(t *testing.T) {
	var out bytes.Buffer
	err := testApp(&out).Run([]string{"modsite", "crumbs", "--format", "json", "/modules/foo/commands/bar/"})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	var got []struct {
		URL  string         `json:"url"`
		Data map[string]any `json:"data"`
	}
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out.String())
	}
	if len(got) != 1 || got[0].Data["module_name"] != "Foo" || got[0].Data["command_section"] != true {
		t.Errorf("crumbs output = %+v", got)
	}
}

func TestCrumbsCommand_NoArgs(t *testing.T) {
	var out bytes.Buffer
	err := testApp(&out).Run([]string{"modsite", "crumbs"})
	if err == nil {
		t.Fatal("Run() without URLs error = nil")
	}
	if coder, ok := err.(cli.ExitCoder); !ok || coder.ExitCode() != 1 {
		t.Errorf("error = %v, want exit code 1", err)
	}
}

func TestBuildAndPagesCommands(t *testing.T) {
	root := t.TempDir()
	contentDir := filepath.Join(root, "content")
	outDir := filepath.Join(root, "public")
	page := filepath.Join(contentDir, "modules", "az", "commands", "get-azvm.md")
	if err := os.MkdirAll(filepath.Dir(page), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(page, []byte("# Get-AzVM\n\nGets virtual machines.\n"), 0644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	err := testApp(&out).Run([]string{
		"modsite", "build",
		"--config", filepath.Join(root, "modsite.yaml"),
		"--source", contentDir,
		"--destination", outDir,
		"--quiet",
	})
	if err != nil {
		t.Fatalf("build error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(outDir, "modules", "az", "commands", "get-azvm", "index.html")); err != nil {
		t.Errorf("page not written: %v", err)
	}

	out.Reset()
	err = testApp(&out).Run([]string{
		"modsite", "pages",
		"--config", filepath.Join(root, "modsite.yaml"),
		"--destination", outDir,
		"--module", "Az",
	})
	if err != nil {
		t.Fatalf("pages error = %v", err)
	}
	if !strings.Contains(out.String(), "/modules/az/commands/get-azvm/") {
		t.Errorf("pages output = %q", out.String())
	}
}
