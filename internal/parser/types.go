package parser

import (
	"encoding/json"
	"fmt"
)

// SourceFile holds the documentation extracted from one input file.
type SourceFile struct {
	FilePath      string     `json:"filePath" yaml:"filePath"`
	Documentation []DocBlock `json:"documentation" yaml:"documentation"`
}

// DocBlock is one documented region: the comment description, the code
// that follows it and the tags found in the comment.
type DocBlock struct {
	Description string `json:"description" yaml:"description"`
	Code        string `json:"code" yaml:"code"`
	Tags        []Tag  `json:"tags" yaml:"tags"`
}

// TagKind identifies which variant a Tag holds.
type TagKind int

const (
	// KindGeneric is a `@name {type} ident - description` annotation.
	KindGeneric TagKind = iota
	// KindExample is a multi-line @example block.
	KindExample
)

// ExampleTagName is the tag name reserved for multi-line examples.
const ExampleTagName = "example"

// Tag is a parsed annotation. Example tags only carry Tag and Description;
// Type and Name are always empty for them.
type Tag struct {
	Kind        TagKind
	Tag         string
	Type        string
	Name        string
	Description string
}

// NewGenericTag builds a generic tag.
func NewGenericTag(tag, typ, name, description string) Tag {
	return Tag{Kind: KindGeneric, Tag: tag, Type: typ, Name: name, Description: description}
}

// NewExampleTag builds an example tag.
func NewExampleTag(description string) Tag {
	return Tag{Kind: KindExample, Tag: ExampleTagName, Description: description}
}

// IsExample reports whether the tag is the example variant.
func (t Tag) IsExample() bool {
	return t.Kind == KindExample
}

type genericTagFields struct {
	Tag         string `json:"tag" yaml:"tag"`
	Type        string `json:"type" yaml:"type"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

type exampleTagFields struct {
	Tag         string `json:"tag" yaml:"tag"`
	Description string `json:"description" yaml:"description"`
}

func (t Tag) fields() interface{} {
	if t.IsExample() {
		return exampleTagFields{Tag: ExampleTagName, Description: t.Description}
	}
	return genericTagFields{Tag: t.Tag, Type: t.Type, Name: t.Name, Description: t.Description}
}

// MarshalJSON emits {tag,type,name,description} for generic tags and
// {tag,description} for example tags.
func (t Tag) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.fields())
}

// MarshalYAML mirrors MarshalJSON.
func (t Tag) MarshalYAML() (interface{}, error) {
	return t.fields(), nil
}

// UnmarshalJSON restores either variant. An object without a "type" key
// whose tag is "example" is an example tag.
func (t *Tag) UnmarshalJSON(data []byte) error {
	var raw struct {
		Tag         string  `json:"tag"`
		Type        *string `json:"type"`
		Name        *string `json:"name"`
		Description string  `json:"description"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to decode tag: %w", err)
	}

	if raw.Tag == ExampleTagName && raw.Type == nil && raw.Name == nil {
		*t = NewExampleTag(raw.Description)
		return nil
	}

	*t = NewGenericTag(raw.Tag, deref(raw.Type), deref(raw.Name), raw.Description)
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
