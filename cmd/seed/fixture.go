package main

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// fixture описывает содержимое YAML-файла с тестами
type fixture struct {
	TestTypes []fixtureTestType `yaml:"test_types"`
}

type fixtureTestType struct {
	Name      string            `yaml:"name"`
	Published *bool             `yaml:"published"`
	Questions []fixtureQuestion `yaml:"questions"`
}

type fixtureQuestion struct {
	Text      string          `yaml:"text"`
	Published *bool           `yaml:"published"`
	Answers   []fixtureAnswer `yaml:"answers"`
}

type fixtureAnswer struct {
	Text  string `yaml:"text"`
	Right bool   `yaml:"right"`
}

// isPublished возвращает значение флага, по умолчанию true
func isPublished(flag *bool) bool {
	return flag == nil || *flag
}

func loadFixtureFile(path string) (*fixture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open fixture %s: %w", path, err)
	}
	defer f.Close()
	return decodeFixture(f)
}

func decodeFixture(r io.Reader) (*fixture, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var fx fixture
	if err := dec.Decode(&fx); err != nil {
		if err == io.EOF {
			return &fx, nil
		}
		return nil, fmt.Errorf("failed to decode fixture: %w", err)
	}

	for i, tt := range fx.TestTypes {
		if tt.Name == "" {
			return nil, fmt.Errorf("test_types[%d]: name is required", i)
		}
	}
	return &fx, nil
}
