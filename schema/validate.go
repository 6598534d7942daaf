package schema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
	"github.com/santhosh-tekuri/jsonschema/v5"

	_ "embed"
)

const (
	SUPPORTED_VERSIONS = "1.x"
)

var (
	//go:embed document.schema.json
	DOCUMENT_JSON_SCHEMA string

	ErrInvalidDocument    = errors.New("invalid schema document")
	ErrUnsupportedVersion = errors.New("unsupported schema version")

	documentSchema    *jsonschema.Schema
	supportedVersions *semver.Constraints
)

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft7

	url := "document.schema.json"
	if err := compiler.AddResource(url, strings.NewReader(DOCUMENT_JSON_SCHEMA)); err != nil {
		panic(err)
	}
	documentSchema = compiler.MustCompile(url)

	constraints, err := semver.NewConstraint(SUPPORTED_VERSIONS)
	if err != nil {
		panic(err)
	}
	supportedVersions = constraints
}

// validateDocument checks the structure of a YAML or JSON document before it is decoded.
func validateDocument(data []byte) error {
	if err := checkFlowCollections(data); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	jsonData, err := yaml.YAMLToJSON(data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	var value any
	if err := json.Unmarshal(jsonData, &value); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	if err := documentSchema.Validate(value); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	return nil
}

// checkFlowCollections returns an error if a flow sequence ([...]) or a flow mapping ({...}) is not terminated,
// the YAML parser silently closes them at the end of the input.
func checkFlowCollections(data []byte) error {
	file, err := parser.ParseBytes(data, 0)
	if err != nil {
		return err
	}

	checker := &flowCollectionChecker{}
	for _, doc := range file.Docs {
		ast.Walk(checker, doc)
		if checker.unterminated != nil {
			pos := checker.unterminated.GetToken().Position
			return fmt.Errorf("unterminated flow collection starting at line %d, column %d", pos.Line, pos.Column)
		}
	}
	return nil
}

type flowCollectionChecker struct {
	unterminated ast.Node
}

func (c *flowCollectionChecker) Visit(node ast.Node) ast.Visitor {
	if c.unterminated != nil {
		return nil
	}

	switch n := node.(type) {
	case *ast.SequenceNode:
		if n.IsFlowStyle && n.End == nil {
			c.unterminated = n
			return nil
		}
	case *ast.MappingNode:
		if n.IsFlowStyle && n.End == nil {
			c.unterminated = n
			return nil
		}
	}
	return c
}

func checkVersion(version string) error {
	if version == "" {
		return nil
	}

	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrUnsupportedVersion, version, err)
	}
	if !supportedVersions.Check(v) {
		return fmt.Errorf("%w: %s, supported versions: %s", ErrUnsupportedVersion, version, SUPPORTED_VERSIONS)
	}
	return nil
}
