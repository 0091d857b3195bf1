package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalidStep = errors.New("invalid step")

// File is a parsed scenario file.
type File struct {
	Name      string            `yaml:"name"`
	Prompts   *Prompts          `yaml:"prompts,omitempty"`
	Fixtures  map[string]string `yaml:"fixtures,omitempty"`
	Scenarios []Scenario        `yaml:"scenarios"`
}

// Prompts overrides the window prompts. Both empty means the defaults.
type Prompts struct {
	Primary      string `yaml:"primary"`
	Continuation string `yaml:"continuation"`
}

type Scenario struct {
	Name    string   `yaml:"name"`
	Prompts *Prompts `yaml:"prompts,omitempty"`
	Setup   []Step   `yaml:"setup,omitempty"`
	Steps   []Step   `yaml:"steps"`
	Expect  *string  `yaml:"expect,omitempty"`
}

// Step is one action. Exactly one field is set.
type Step struct {
	Insert  *string `yaml:"insert,omitempty"`
	Fixture string  `yaml:"fixture,omitempty"`
	Submit  *string `yaml:"submit,omitempty"`
	Place   *Place  `yaml:"place,omitempty"`
	Keys    *string `yaml:"keys,omitempty"`
	Command string  `yaml:"command,omitempty"`
	Expect  *string `yaml:"expect,omitempty"`
}

// Place positions the caret relative to the first occurrence of Marker.
type Place struct {
	Marker string `yaml:"marker"`
	Offset int    `yaml:"offset"`
	Extend bool   `yaml:"extend,omitempty"`
	Block  bool   `yaml:"block,omitempty"`
}

func (s Step) actions() int {
	n := 0
	for _, set := range []bool{
		s.Insert != nil,
		s.Fixture != "",
		s.Submit != nil,
		s.Place != nil,
		s.Keys != nil,
		s.Command != "",
		s.Expect != nil,
	} {
		if set {
			n++
		}
	}
	return n
}

// Load reads and parses a scenario file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes a scenario file, rejecting unknown keys, validating every
// step and resolving fixtures.
func Parse(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode scenario file: %w", err)
	}

	for i := range f.Scenarios {
		sc := &f.Scenarios[i]
		if sc.Name == "" {
			return nil, fmt.Errorf("%w: scenario %d has no name", ErrInvalidStep, i+1)
		}
		if sc.Prompts == nil {
			sc.Prompts = f.Prompts
		}
		if err := f.resolve(sc.Name, sc.Setup); err != nil {
			return nil, err
		}
		if err := f.resolve(sc.Name, sc.Steps); err != nil {
			return nil, err
		}
	}
	return &f, nil
}

func (f *File) resolve(scenario string, steps []Step) error {
	for i := range steps {
		st := &steps[i]
		if n := st.actions(); n != 1 {
			return fmt.Errorf("%w: %s step %d sets %d actions", ErrInvalidStep, scenario, i+1, n)
		}
		if st.Place != nil && st.Place.Marker == "" {
			return fmt.Errorf("%w: %s step %d places at an empty marker", ErrInvalidStep, scenario, i+1)
		}
		if st.Fixture == "" {
			continue
		}
		text, ok := f.Fixtures[st.Fixture]
		if !ok {
			return fmt.Errorf("%w: %s step %d uses unknown fixture %q", ErrInvalidStep, scenario, i+1, st.Fixture)
		}
		st.Insert, st.Fixture = &text, ""
	}
	return nil
}
