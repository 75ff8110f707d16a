package test_helper

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/tim-hardcastle/indexkit/source/hub"
	"github.com/tim-hardcastle/indexkit/source/report"
	"github.com/tim-hardcastle/indexkit/source/settings"
	"github.com/tim-hardcastle/indexkit/source/text"
)

// Auxiliary types and functions for testing the collections and the shell.

type TestItem struct {
	Input string
	Want  string
}

// NewHub returns a hub with plain output, and the buffer it writes to.
func NewHub(t *testing.T) (*hub.Hub, *bytes.Buffer) {
	cfg := settings.DefaultConfig()
	cfg.Display = "plain"
	var out bytes.Buffer
	hb := hub.New(strings.NewReader(""), &out, cfg)
	t.Cleanup(func() { hb.Close() })
	return hb, &out
}

// RunTest runs the setup lines on a fresh hub for each test, and then compares the output of the
// test's input with what we want, ignoring the final newline.
func RunTest(t *testing.T, setup []string, tests []TestItem) {
	for _, test := range tests {
		if settings.SHOW_TESTS {
			println(text.BULLET + "Running test " + text.Emph(test.Input))
		}
		hb, out := NewHub(t)
		for _, line := range setup {
			hb.Do(line)
		}
		out.Reset()
		hb.Do(test.Input)
		got := strings.TrimSuffix(out.String(), "\n")
		if !(test.Want == got) {
			t.Fatalf(`Test failed with input %s | Wanted : %s | Got : %s.`, test.Input, test.Want, got)
		}
	}
}

// ExpectViolation runs f and fails the test unless it breaks the contract with the given
// identifier.
func ExpectViolation(t *testing.T, errorId string, f func()) {
	t.Helper()
	v := report.Catch(f)
	if v == nil {
		t.Fatalf(`Test failed | Wanted : violation %s | Got : no violation.`, errorId)
	}
	if v.ErrorId != errorId {
		t.Fatalf(`Test failed | Wanted : violation %s | Got : %s.`, errorId, v.Error())
	}
}

// A Fixture is a scripted shell session, as stored in the YAML files in testdata.
type Fixture struct {
	Name     string   `yaml:"name"`
	Setup    []string `yaml:"setup"`
	Commands []struct {
		Input string `yaml:"input"`
		Want  string `yaml:"want"`
	} `yaml:"commands"`
}

// RunFixtures runs every session in the YAML file at path, each on a fresh hub, as a subtest.
func RunFixtures(t *testing.T, path string) {
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var fixtures []Fixture
	require.NoError(t, yaml.Unmarshal(data, &fixtures), "parsing %s", path)
	require.NotEmpty(t, fixtures, "%s has no fixtures", path)
	for _, fixture := range fixtures {
		t.Run(fixture.Name, func(t *testing.T) {
			hb, out := NewHub(t)
			for _, line := range fixture.Setup {
				hb.Do(line)
			}
			for _, command := range fixture.Commands {
				out.Reset()
				hb.Do(command.Input)
				require.Equal(t, command.Want, strings.TrimSuffix(out.String(), "\n"), "input %q", command.Input)
			}
		})
	}
}
