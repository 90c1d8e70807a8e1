// Package scenario loads terminal scenarios from YAML, runs them against a terminal
// session and reports the results.
//
// A scenario is a list of steps. Each step sends a command (run) or an answer to an
// interactive prompt (input), then optionally waits for text in the captured output,
// checks for a terminal closure and restarts the terminal. Cleanup steps run after the
// steps whatever their outcome.
package scenario

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"regexp"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate moq -out mocks/terminal.go -pkg mocks -skip-ensure -fmt goimports . Terminal

//go:embed builtin/*.yml
var builtinFS embed.FS

// await_close values.
const (
	AwaitOptional = "optional" // restart if the terminal closed, carry on otherwise
	AwaitRequired = "required" // the step fails if the terminal did not close
)

// Scenario is a named sequence of terminal steps.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Steps       []Step `yaml:"steps"`
	Cleanup     []Step `yaml:"cleanup"`

	Source string `yaml:"-"` // file path or "builtin:<name>"
}

// Step is a single interaction with the terminal.
type Step struct {
	Name       string        `yaml:"name"`
	Run        string        `yaml:"run"`   // command, redirected to the sentinel file
	Input      string        `yaml:"input"` // prompt answer, typed as is
	Expect     string        `yaml:"expect"`
	ExpectAll  []string      `yaml:"expect_all"` // checked against one output read after expect matched
	Timeout    time.Duration `yaml:"timeout"`
	AwaitClose string        `yaml:"await_close"`
	Restart    bool          `yaml:"restart"` // restart the terminal if await_close saw it close
}

// Label returns the step name, or what the step sends when the name is not set.
func (s Step) Label() string {
	switch {
	case s.Name != "":
		return s.Name
	case s.Run != "":
		return s.Run
	case s.Input != "":
		return "input " + s.Input
	default:
		return "await close"
	}
}

// Load reads and validates a scenario file.
func Load(file string) (*Scenario, error) {
	data, err := os.ReadFile(file) //nolint:gosec // path comes from cli flags
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	return Parse(data, file)
}

// Parse decodes and validates scenario YAML. Unknown fields are rejected.
func Parse(data []byte, source string) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var sc Scenario
	if err := dec.Decode(&sc); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", source, err)
	}
	sc.Source = source
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", source, err)
	}
	return &sc, nil
}

// Builtin returns one of the embedded scenarios by name.
func Builtin(name string) (*Scenario, error) {
	data, err := builtinFS.ReadFile(path.Join("builtin", name+".yml"))
	if err != nil {
		return nil, fmt.Errorf("unknown builtin scenario %q, available: %s", name, strings.Join(BuiltinNames(), ", "))
	}
	return Parse(data, "builtin:"+name)
}

// BuiltinNames lists the embedded scenarios, sorted.
func BuiltinNames() []string {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yml"))
	}
	slices.Sort(names)
	return names
}

// Validate checks every step and reports all problems at once.
func (sc *Scenario) Validate() error {
	var errs []error
	if strings.TrimSpace(sc.Name) == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if len(sc.Steps) == 0 {
		errs = append(errs, errors.New("at least one step is required"))
	}
	for i, st := range sc.Steps {
		if err := st.validate(); err != nil {
			errs = append(errs, fmt.Errorf("step %d: %w", i+1, err))
		}
	}
	for i, st := range sc.Cleanup {
		if err := st.validate(); err != nil {
			errs = append(errs, fmt.Errorf("cleanup step %d: %w", i+1, err))
		}
	}
	return errors.Join(errs...)
}

func (s Step) validate() error {
	switch {
	case s.Run != "" && s.Input != "":
		return errors.New("run and input are mutually exclusive")
	case s.Run == "" && s.Input == "" && s.AwaitClose == "":
		return errors.New("one of run or input is required")
	case s.Run == "" && s.Input == "" && (s.Expect != "" || len(s.ExpectAll) > 0):
		return errors.New("expect needs run or input")
	}
	if s.AwaitClose != "" && s.AwaitClose != AwaitOptional && s.AwaitClose != AwaitRequired {
		return fmt.Errorf("invalid await_close %q, must be %s or %s", s.AwaitClose, AwaitOptional, AwaitRequired)
	}
	if s.Restart && s.AwaitClose == "" {
		return errors.New("restart needs await_close")
	}
	if s.Timeout < 0 {
		return fmt.Errorf("invalid timeout %v", s.Timeout)
	}
	return nil
}

var varRe = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// expand replaces ${NAME} with vars[NAME]. Unknown names and plain $NAME are kept,
// so shell variables such as $SHELL reach the terminal untouched.
func expand(s string, vars map[string]string) string {
	if len(vars) == 0 || !strings.Contains(s, "${") {
		return s
	}
	return varRe.ReplaceAllStringFunc(s, func(m string) string {
		if v, ok := vars[m[2:len(m)-1]]; ok {
			return v
		}
		return m
	})
}

func (s Step) withVars(vars map[string]string) Step {
	s.Run = expand(s.Run, vars)
	s.Input = expand(s.Input, vars)
	s.Expect = expand(s.Expect, vars)
	if len(s.ExpectAll) > 0 {
		all := make([]string, len(s.ExpectAll))
		for i, e := range s.ExpectAll {
			all[i] = expand(e, vars)
		}
		s.ExpectAll = all
	}
	return s
}
