package flags

import (
	"fmt"
	"github.com/goccy/go-yaml"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
	"path"
	"strings"
)

// YamlParser reads a YAML file and uses it as the defaults of a flags.Parser. Values given on the
// command line still win over the ones from the file.
type YamlParser struct {
	parser *flags.Parser
}

// NewYamlParser creates a new yaml parser for a given flags.Parser.
func NewYamlParser(p *flags.Parser) *YamlParser {
	return &YamlParser{
		parser: p,
	}
}

// ParseFile parses defaults from a yaml formatted file. The returned errors can be of the type
// flags.Error.
func (y *YamlParser) ParseFile(filename string) error {
	body, err := os.Open(filename)

	if err != nil {
		return errors.WithStack(err)
	}

	defer func() {
		if err := body.Close(); err != nil {
			log.Errorf("Could not close %s: %v", filename, err)
		}
	}()

	// References within the file are resolved relative to the file itself
	return y.Parse(body, yaml.ReferenceDirs(path.Dir(filename)), yaml.RecursiveDir(true))
}

// Parse reads YAML documents one after another. Multiple documents in one stream are separated
// by triple dashes (`---`); later documents override earlier ones.
func (y *YamlParser) Parse(config io.Reader, opts ...yaml.DecodeOption) error {
	decoder := yaml.NewDecoder(config, opts...)

	for i := 1; ; i++ {
		obj := make(map[string]interface{})
		err := decoder.Decode(&obj)
		if err == io.EOF {
			return nil
		} else if err != nil {
			return errors.Wrapf(err, "Could not decode element at position %v", i)
		}

		if err = y.parseSegment(obj); err != nil {
			return errors.WithStack(err)
		}
	}
}

// parseSegment matches every top level key to an option group (by its short description, e.g.
// "general") or a command (e.g. "encode") and sets the options below it.
func (y *YamlParser) parseSegment(obj map[string]interface{}) error {
	for name, val := range obj {
		group := y.findGroup(name)
		if group == nil {
			return errors.WithStack(&flags.Error{
				Type:    flags.ErrUnknownGroup,
				Message: fmt.Sprintf("could not find option group or command '%s'", name),
			})
		}

		if val == nil {
			continue
		}
		options, ok := val.(map[string]interface{})
		if !ok {
			return errors.WithStack(&flags.Error{
				Type:    flags.ErrInvalidTag,
				Message: fmt.Sprintf("expected a map of options for '%s', got: %v", name, val),
			})
		}

		for optionName, optionValue := range options {
			option := group.FindOptionByLongName(optionName)
			if option == nil {
				return errors.WithStack(&flags.Error{
					Type:    flags.ErrUnknownFlag,
					Message: fmt.Sprintf("unknown option '%s' in '%s'", optionName, name),
				})
			}
			option.Default = toDefaults(optionValue)
			log.Tracef("Config: %s.%s = %v", name, optionName, option.Default)
		}
	}
	return nil
}

func (y *YamlParser) findGroup(name string) *flags.Group {
	if command := y.parser.Find(name); command != nil {
		return command.Group
	}
	for _, group := range y.parser.Groups() {
		if strings.EqualFold(group.ShortDescription, name) {
			return group
		}
	}
	return nil
}

func toDefaults(value interface{}) []string {
	if list, ok := value.([]interface{}); ok {
		res := make([]string, 0, len(list))
		for _, v := range list {
			res = append(res, fmt.Sprint(v))
		}
		return res
	}
	return []string{fmt.Sprint(value)}
}
