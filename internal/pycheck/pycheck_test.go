package pycheck

import (
	"os"
	"path/filepath"
	"testing"
)

var notebookVars = Rule{
	Pattern: "from PySDM_examples.utils import notebook_vars",
	Message: "Please use open-atmos-jupyter-utils package.",
}

func TestCheckFile(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "test_fig_3.py")
	good := filepath.Join(dir, "test_fig_4.py")
	skipped := filepath.Join(dir, "__init__.py")
	src := "from PySDM_examples.utils import notebook_vars\n"
	for path, content := range map[string]string{
		bad:     src,
		good:    "from open_atmos_jupyter_utils import notebook_vars\n",
		skipped: src,
	} {
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	c := &Checker{Rules: []Rule{notebookVars}, Skip: []string{"__init__.py"}}

	got, err := c.CheckFile(bad)
	if err != nil {
		t.Fatal(err)
	}
	want := `forbidden import "from PySDM_examples.utils import notebook_vars". Please use open-atmos-jupyter-utils package.`
	if len(got) != 1 || got[0].Reason != want || got[0].File != bad {
		t.Errorf("bad file findings = %+v", got)
	}

	for _, path := range []string{good, skipped} {
		got, err := c.CheckFile(path)
		if err != nil || len(got) != 0 {
			t.Errorf("%s: findings = %+v, err = %v", filepath.Base(path), got, err)
		}
	}

	if _, err := c.CheckFile(filepath.Join(dir, "missing.py")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestCheckWithoutMessage(t *testing.T) {
	c := &Checker{Rules: []Rule{{Pattern: "import pylab"}, {Pattern: ""}}}
	got := c.Check("x.py", "import pylab\n")
	if len(got) != 1 || got[0].Reason != `forbidden import "import pylab"` {
		t.Errorf("findings = %+v", got)
	}
}
