// Package schema declares nominal kinds and list variants from YAML or JSON documents.
package schema

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/goccy/go-yaml"
	"github.com/inoxlang/typedlist/kind"
	"github.com/inoxlang/typedlist/typedlist"
	"github.com/rs/zerolog"
)

var (
	ErrEmptyName            = errors.New("empty name")
	ErrUnknownParentVariant = errors.New("unknown parent variant")
	ErrUnknownVariant       = errors.New("unknown variant")
)

// A Document lists the nominal kinds and the variants to declare. Since YAML is a superset of
// JSON a document can be written in both formats.
type Document struct {
	//optional version of the document format, see SUPPORTED_VERSIONS.
	Version string `yaml:"version"`

	Kinds    []KindDeclaration    `yaml:"kinds"`
	Variants []VariantDeclaration `yaml:"variants"`
}

type KindDeclaration struct {
	Name string `yaml:"name"`

	//generalizations of the kind, they can be declared after the kind.
	Parents []string `yaml:"parents"`
}

type VariantDeclaration struct {
	Name string `yaml:"name"`

	//optional, the parent should be declared before the variant.
	Parent string `yaml:"parent"`

	//kinds added to the allow-list, for a derived variant they are added to the kinds of the parent.
	Kinds []string `yaml:"kinds"`
}

// Parse parses a YAML or JSON document, the document is validated against DOCUMENT_JSON_SCHEMA.
func Parse(data []byte) (*Document, error) {
	if err := validateDocument(data); err != nil {
		return nil, err
	}

	var doc Document
	if err := yaml.UnmarshalWithOptions(data, &doc, yaml.DisallowUnknownField()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	return &doc, nil
}

func ReadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// A Schema is the result of loading a Document.
type Schema struct {
	registry *typedlist.Registry
	taxonomy *kind.Taxonomy
	universe *kind.Universe
	variants []*typedlist.Variant
}

type LoadConfig struct {
	//if nil a new registry is created with Logger.
	Registry *typedlist.Registry

	Logger zerolog.Logger
}

// Load declares the kinds of the document in a new taxonomy and then declares the variants in order.
// Kind names are resolved in a universe containing the builtin kinds and the kinds of the taxonomy.
func Load(doc *Document, config LoadConfig) (*Schema, error) {
	if err := checkVersion(doc.Version); err != nil {
		return nil, err
	}

	registry := config.Registry
	if registry == nil {
		registry = typedlist.NewRegistry(typedlist.RegistryConfig{Logger: config.Logger})
	}

	s := &Schema{
		registry: registry,
		taxonomy: kind.NewTaxonomy(),
		universe: kind.NewUniverse(),
	}

	if err := s.declareKinds(doc.Kinds); err != nil {
		return nil, err
	}

	if err := s.universe.DefineTaxonomy(s.taxonomy); err != nil {
		return nil, err
	}

	for _, decl := range doc.Variants {
		variant, err := s.declareVariant(decl)
		if err != nil {
			return nil, fmt.Errorf("variant %q: %w", decl.Name, err)
		}
		s.variants = append(s.variants, variant)
	}

	config.Logger.Debug().
		Str(typedlist.SOURCE_LOG_FIELD_NAME, "schema").
		Int("kinds", len(doc.Kinds)).
		Int("variants", len(s.variants)).
		Msg("schema loaded")

	return s, nil
}

func LoadFile(path string, config LoadConfig) (*Schema, error) {
	doc, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Load(doc, config)
}

func (s *Schema) declareKinds(decls []KindDeclaration) error {
	for _, decl := range decls {
		if _, err := s.taxonomy.Declare(decl.Name); err != nil {
			return fmt.Errorf("kind %q: %w", decl.Name, err)
		}
	}

	for _, decl := range decls {
		specialized, _ := s.taxonomy.Lookup(decl.Name)

		for _, parentName := range decl.Parents {
			general, ok := s.taxonomy.Lookup(parentName)
			if !ok {
				return fmt.Errorf("kind %q: %w: %q", decl.Name, kind.ErrUnknownKindName, parentName)
			}
			if err := s.taxonomy.AddGeneralization(specialized, general); err != nil {
				return fmt.Errorf("kind %q: %w", decl.Name, err)
			}
		}
	}
	return nil
}

func (s *Schema) declareVariant(decl VariantDeclaration) (*typedlist.Variant, error) {
	if decl.Name == "" {
		return nil, ErrEmptyName
	}

	kinds, err := s.universe.Resolve(decl.Kinds...)
	if err != nil {
		return nil, err
	}
	descriptors := make([]any, len(kinds))
	for i, k := range kinds {
		descriptors[i] = k
	}

	if decl.Parent == "" {
		return s.registry.Declare(decl.Name, descriptors...)
	}

	parent, ok := s.registry.Lookup(decl.Parent)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownParentVariant, decl.Parent)
	}

	variant, err := parent.Derive(decl.Name)
	if err != nil {
		return nil, err
	}

	//the kinds are added to the new variant only, not to its parent.
	if _, err := variant.Extend(descriptors...); err != nil {
		return nil, err
	}
	return variant, nil
}

func (s *Schema) Registry() *typedlist.Registry {
	return s.registry
}

func (s *Schema) Taxonomy() *kind.Taxonomy {
	return s.taxonomy
}

func (s *Schema) Universe() *kind.Universe {
	return s.universe
}

// Variants returns the variants declared by the schema, in declaration order.
func (s *Schema) Variants() []*typedlist.Variant {
	return slices.Clone(s.variants)
}

func (s *Schema) Variant(name string) (*typedlist.Variant, error) {
	for _, v := range s.variants {
		if v.Name() == name {
			return v, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}
