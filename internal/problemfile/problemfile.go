// Package problemfile loads explicit state spaces from YAML or HCL files.
//
// Both formats describe the same thing:
//
//	name:    optional display name
//	initial: the start state (required)
//	goals:   goal states (optional; an unreachable or missing goal just fails the search)
//	states:  extra states with no transitions (optional)
//	transitions: from/to pairs with an optional label and cost (default 1)
//
// States named by transitions, initial or goals are created on first use.
package problemfile

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/avi3tal/treesearch/internal/statespace"
)

const defaultCost = 1.0

// ErrUnsupportedFormat is returned for files that are neither YAML nor HCL
var ErrUnsupportedFormat = errors.New("unsupported problem file format")

// Definition is the format-neutral content of a problem file
type Definition struct {
	Name        string
	Initial     string
	Goals       []string
	States      []string
	Transitions []TransitionDef
}

// TransitionDef is one transition of a Definition
type TransitionDef struct {
	From  string
	To    string
	Label string
	Cost  *float64
}

// Load reads path and builds a validated state space. The format follows the extension.
func Load(path string) (*statespace.Graph, error) {
	def, err := Read(path)
	if err != nil {
		return nil, err
	}
	g, err := def.Build()
	if err != nil {
		return nil, errors.Wrapf(err, "build %s", path)
	}
	return g, nil
}

// Read decodes path into a Definition without building it
func Read(path string) (*Definition, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "read %s", path)
		}
		return ParseYAML(data, path)
	case ".hcl":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "read %s", path)
		}
		return ParseHCL(data, path)
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%s", path)
	}
}

// Build turns the definition into a validated state space
func (d *Definition) Build() (*statespace.Graph, error) {
	name := d.Name
	if name == "" {
		name = "problem"
	}
	g := statespace.NewGraph(name)

	for _, s := range d.States {
		if err := g.EnsureState(s); err != nil {
			return nil, err
		}
	}
	if d.Initial != "" {
		if err := g.EnsureState(d.Initial); err != nil {
			return nil, err
		}
	}
	for _, t := range d.Transitions {
		if err := g.EnsureState(t.From); err != nil {
			return nil, err
		}
		if err := g.EnsureState(t.To); err != nil {
			return nil, err
		}
		cost := defaultCost
		if t.Cost != nil {
			cost = *t.Cost
		}
		if err := g.AddTransition(t.From, t.To, t.Label, cost); err != nil {
			return nil, err
		}
	}
	for _, goal := range d.Goals {
		if err := g.EnsureState(goal); err != nil {
			return nil, err
		}
		if err := g.AddGoal(goal); err != nil {
			return nil, err
		}
	}

	if d.Initial != "" {
		if err := g.SetInitial(d.Initial); err != nil {
			return nil, err
		}
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

type yamlFile struct {
	Name        string           `yaml:"name"`
	Initial     string           `yaml:"initial"`
	Goals       []string         `yaml:"goals"`
	States      []string         `yaml:"states"`
	Transitions []yamlTransition `yaml:"transitions"`
}

type yamlTransition struct {
	From  string   `yaml:"from"`
	To    string   `yaml:"to"`
	Label string   `yaml:"label"`
	Cost  *float64 `yaml:"cost"`
}

// ParseYAML decodes a YAML problem definition. filename is only used in errors.
func ParseYAML(data []byte, filename string) (*Definition, error) {
	var f yamlFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrapf(err, "parse %s", filename)
	}

	def := &Definition{
		Name:    f.Name,
		Initial: f.Initial,
		Goals:   f.Goals,
		States:  f.States,
	}
	for _, t := range f.Transitions {
		def.Transitions = append(def.Transitions, TransitionDef(t))
	}
	return def, nil
}

// hclFile represents the top-level structure of an HCL problem file for decoding
type hclFile struct {
	Name        string           `hcl:"name,optional"`
	Initial     string           `hcl:"initial"`
	Goals       []string         `hcl:"goals,optional"`
	States      []string         `hcl:"states,optional"`
	Transitions []*hclTransition `hcl:"transition,block"`
}

type hclTransition struct {
	From  string   `hcl:"from,label"`
	To    string   `hcl:"to,label"`
	Label string   `hcl:"label,optional"`
	Cost  *float64 `hcl:"cost,optional"`
}

// ParseHCL decodes an HCL problem definition:
//
//	initial = "A"
//	goals   = ["D"]
//	transition "A" "B" { cost = 2 }
func ParseHCL(data []byte, filename string) (*Definition, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, errors.Wrapf(diags, "parse %s", filename)
	}

	var f hclFile
	diags = gohcl.DecodeBody(file.Body, nil, &f)
	if diags.HasErrors() {
		return nil, errors.Wrapf(diags, "decode %s", filename)
	}

	def := &Definition{
		Name:    f.Name,
		Initial: f.Initial,
		Goals:   f.Goals,
		States:  f.States,
	}
	for _, t := range f.Transitions {
		def.Transitions = append(def.Transitions, TransitionDef{
			From:  t.From,
			To:    t.To,
			Label: t.Label,
			Cost:  t.Cost,
		})
	}
	return def, nil
}
