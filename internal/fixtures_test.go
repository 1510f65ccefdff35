package internal

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

// fixture is a whole program with its expected output, see testdata/*.yaml
type fixture struct {
	Name    string `yaml:"name"`
	Source  string `yaml:"source"`
	Stdout  string `yaml:"stdout"`
	Stderr  string `yaml:"stderr"`
	Outcome string `yaml:"outcome"`
}

var fixtureOutcomes = map[string]Outcome{
	"":        OutcomeOK,
	"ok":      OutcomeOK,
	"static":  OutcomeStaticError,
	"runtime": OutcomeRuntimeError,
}

func loadFixtures(t *testing.T) map[string][]fixture {
	t.Helper()
	paths, err := filepath.Glob(filepath.Join("testdata", "*.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) == 0 {
		t.Fatal("no fixtures found in testdata")
	}
	fixtures := make(map[string][]fixture, len(paths))
	for _, path := range paths {
		b, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		var cases []fixture
		if err := yaml.Unmarshal(b, &cases); err != nil {
			t.Fatalf("%s: %v", path, err)
		}
		fixtures[filepath.Base(path)] = cases
	}
	return fixtures
}

func TestFixtures(t *testing.T) {
	for file, cases := range loadFixtures(t) {
		for _, c := range cases {
			c := c
			t.Run(file+"/"+c.Name, func(t *testing.T) {
				expected, ok := fixtureOutcomes[c.Outcome]
				if !ok {
					t.Fatalf("unknown outcome %q", c.Outcome)
				}
				tp := &testPrinter{}
				outcome := RunSourceWithPrinter(c.Source, tp)
				if outcome != expected {
					t.Errorf("expected %s, got %s\n%s", expected, outcome, tp.errors)
				}
				if tp.printed != c.Stdout {
					t.Errorf("stdout:\nexpected:\n%s\nfound:\n%s", c.Stdout, tp.printed)
				}
				if c.Stderr != "" && tp.errors != c.Stderr {
					t.Errorf("stderr:\nexpected:\n%s\nfound:\n%s", c.Stderr, tp.errors)
				}
			})
		}
	}
}
