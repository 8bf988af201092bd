// Package scenario reads the teams and structures of a
// qualification forecast from YAML files.
package scenario

import (
	"errors"
	"fmt"
	"os"

	"github.com/ezBadminton/goqualifier/core"
	"github.com/ezBadminton/goqualifier/soccer"
	"gopkg.in/yaml.v3"
)

// Number of teams that qualify from a group when not set
const DefaultQualifiers = 2

var (
	ErrEmptyScenario    = errors.New("scenario contains no groups, brackets or paths")
	ErrMissingName      = errors.New("missing name")
	ErrMissingCode      = errors.New("team without code")
	ErrDuplicateCode    = errors.New("duplicate team code")
	ErrNonFiniteRating  = errors.New("rating is not a finite number")
	ErrInvalidQualifier = errors.New("qualifiers must be between 1 and the group size")
)

type Team struct {
	Code   string  `yaml:"code" validate:"required"`
	Name   string  `yaml:"name"`
	Rating float64 `yaml:"rating" validate:"finite"`
}

func (t Team) toCore() core.Team {
	return core.Team{Code: t.Code, Name: t.Name, Rating: t.Rating}
}

// A round robin group
type Group struct {
	Name       string `yaml:"name" validate:"required"`
	Qualifiers int    `yaml:"qualifiers"`
	Teams      []Team `yaml:"teams" validate:"min=2,unique=Code,dive"`
}

func (g Group) CoreTeams() []core.Team {
	return coreTeams(g.Teams)
}

// An intercontinental playoff bracket where the seeded team
// awaits the winner of the two unseeded teams in the final
type Bracket struct {
	Name     string `yaml:"name" validate:"required"`
	Seeded   Team   `yaml:"seeded"`
	Unseeded []Team `yaml:"unseeded" validate:"len=2,dive"`
}

func (b Bracket) CoreTeams() (seeded, unseededA, unseededB core.Team) {
	return b.Seeded.toCore(), b.Unseeded[0].toCore(), b.Unseeded[1].toCore()
}

// A playoff path of four teams seeded by rating
type Path struct {
	Name  string `yaml:"name" validate:"required"`
	Teams []Team `yaml:"teams" validate:"len=4,unique=Code,dive"`
}

func (p Path) CoreTeams() []core.Team {
	return coreTeams(p.Teams)
}

// Overrides of the calibrated draw model. Unset values
// keep the calibrated constant.
type DrawModel struct {
	Base  *float64 `yaml:"base"`
	Decay *float64 `yaml:"decay"`
	Floor *float64 `yaml:"floor"`
}

type Scenario struct {
	Name      string     `yaml:"name"`
	DrawModel *DrawModel `yaml:"draw_model"`
	Groups    []Group    `yaml:"groups"`
	Brackets  []Bracket  `yaml:"brackets"`
	Paths     []Path     `yaml:"paths"`
}

// Reads and validates the scenario file at path
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}

	for i := range s.Groups {
		if s.Groups[i].Qualifiers == 0 {
			s.Groups[i].Qualifiers = DefaultQualifiers
		}
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Returns the draw model with the scenario's overrides applied
func (s *Scenario) Model() (soccer.DrawModel, error) {
	model := soccer.Default
	if s.DrawModel == nil {
		return model, nil
	}
	if s.DrawModel.Base != nil {
		model.BaseDraw = *s.DrawModel.Base
	}
	if s.DrawModel.Decay != nil {
		model.DrawDecay = *s.DrawModel.Decay
	}
	if s.DrawModel.Floor != nil {
		model.MinDraw = *s.DrawModel.Floor
	}
	return soccer.NewDrawModel(model.BaseDraw, model.DrawDecay, model.MinDraw)
}

// Validates everything the engine leaves to its callers:
// ratings are finite, codes are present and unique within each
// structure and every structure has its required number of teams.
// The errors name the offending structure.
func (s *Scenario) Validate() error {
	if err := validate.Struct(s); err != nil {
		return translate(err)
	}
	if _, err := s.Model(); err != nil {
		return fmt.Errorf("draw model: %w", err)
	}

	for i, g := range s.Groups {
		if err := validate.Struct(g); err != nil {
			return fmt.Errorf("group %s: %w", label(g.Name, i), translate(err))
		}
	}
	for i, b := range s.Brackets {
		if err := validate.Struct(b); err != nil {
			return fmt.Errorf("bracket %s: %w", label(b.Name, i), translate(err))
		}
	}
	for i, p := range s.Paths {
		if err := validate.Struct(p); err != nil {
			return fmt.Errorf("path %s: %w", label(p.Name, i), translate(err))
		}
	}

	return nil
}

func label(name string, i int) string {
	if name == "" {
		return fmt.Sprint(i + 1)
	}
	return fmt.Sprintf("%q", name)
}

func coreTeams(teams []Team) []core.Team {
	converted := make([]core.Team, 0, len(teams))
	for _, t := range teams {
		converted = append(converted, t.toCore())
	}
	return converted
}
