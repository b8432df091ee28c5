package repositories

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"heavy-haul-service/internal/domain"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/trucks.yaml data/states.yaml
var embeddedData embed.FS

// Dataset is the versioned reference data: an ordered truck catalog and the
// permit rules of every covered state.
type Dataset struct {
	Trucks []domain.TruckType
	States []domain.StatePermitData
}

type truckFile struct {
	Trucks []domain.TruckType `yaml:"trucks"`
}

type stateFile struct {
	States []domain.StatePermitData `yaml:"states"`
}

// DefaultDataset returns the reference data compiled into the binary.
func DefaultDataset() (Dataset, error) {
	trucks, err := embeddedData.ReadFile("data/trucks.yaml")
	if err != nil {
		return Dataset{}, fmt.Errorf("default dataset: read trucks: %w", err)
	}
	states, err := embeddedData.ReadFile("data/states.yaml")
	if err != nil {
		return Dataset{}, fmt.Errorf("default dataset: read states: %w", err)
	}

	return ParseDataset(trucks, states)
}

// LoadDatasetFiles reads a dataset from YAML files on disk.
func LoadDatasetFiles(trucksPath, statesPath string) (Dataset, error) {
	trucks, err := os.ReadFile(trucksPath)
	if err != nil {
		return Dataset{}, fmt.Errorf("load dataset: read %q: %w", trucksPath, err)
	}
	states, err := os.ReadFile(statesPath)
	if err != nil {
		return Dataset{}, fmt.Errorf("load dataset: read %q: %w", statesPath, err)
	}

	return ParseDataset(trucks, states)
}

// ParseDataset decodes and validates the truck and state YAML documents.
func ParseDataset(trucksYAML, statesYAML []byte) (Dataset, error) {
	var tf truckFile
	if err := decodeStrict(trucksYAML, &tf); err != nil {
		return Dataset{}, fmt.Errorf("parse dataset: trucks: %w", err)
	}

	var sf stateFile
	if err := decodeStrict(statesYAML, &sf); err != nil {
		return Dataset{}, fmt.Errorf("parse dataset: states: %w", err)
	}

	ds := Dataset{Trucks: tf.Trucks, States: sf.States}
	for i := range ds.States {
		ds.States[i].StateCode = strings.ToUpper(strings.TrimSpace(ds.States[i].StateCode))
	}

	if err := ValidateDataset(ds); err != nil {
		return Dataset{}, err
	}
	return ds, nil
}

func decodeStrict(raw []byte, v any) error {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	return dec.Decode(v)
}

// ValidateDataset rejects reference data the engine cannot plan against.
func ValidateDataset(ds Dataset) error {
	if len(ds.Trucks) == 0 {
		return fmt.Errorf("validate dataset: %w", domain.ErrEmptyCatalog)
	}

	seenTrucks := make(map[string]struct{}, len(ds.Trucks))
	for i, t := range ds.Trucks {
		id := strings.TrimSpace(t.ID)
		if id == "" {
			return fmt.Errorf("validate dataset: truck at index %d: id must not be empty", i+1)
		}
		if _, ok := seenTrucks[id]; ok {
			return fmt.Errorf("validate dataset: duplicate truck id %q", id)
		}
		seenTrucks[id] = struct{}{}

		if t.DeckLength <= 0 || t.DeckWidth <= 0 || t.DeckHeight < 0 {
			return fmt.Errorf("validate dataset: truck %q: deck dimensions must be positive", id)
		}
		if t.MaxCargoWeight <= 0 {
			return fmt.Errorf("validate dataset: truck %q: max cargo weight must be positive", id)
		}
		if t.TareWeight < 0 || t.DayRate < 0 || t.FuelMPG < 0 {
			return fmt.Errorf("validate dataset: truck %q: tare weight, day rate and fuel economy must not be negative", id)
		}
	}

	seenStates := make(map[string]struct{}, len(ds.States))
	for i, s := range ds.States {
		if len(s.StateCode) != 2 {
			return fmt.Errorf("validate dataset: state at index %d: invalid state code %q", i+1, s.StateCode)
		}
		if _, ok := seenStates[s.StateCode]; ok {
			return fmt.Errorf("validate dataset: duplicate state %q", s.StateCode)
		}
		seenStates[s.StateCode] = struct{}{}

		l := s.LegalLimits
		if l.MaxWidth < 0 || l.MaxHeight < 0 || l.MaxLength < 0 || l.MaxWeight < 0 {
			return fmt.Errorf("validate dataset: state %s: legal limits must not be negative", s.StateCode)
		}
		for _, b := range s.OverweightPermits.WeightBrackets {
			if b.MaxWeight != 0 && b.MaxWeight < b.MinWeight {
				return fmt.Errorf("validate dataset: state %s: weight bracket %.0f-%.0f is inverted", s.StateCode, b.MinWeight, b.MaxWeight)
			}
		}
	}

	if len(ds.States) == 0 {
		return errors.New("validate dataset: no state permit data")
	}

	return nil
}
