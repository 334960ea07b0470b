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
	"reflect"
	"strings"
	"unsafe"
)

// YamlParser is an argument parser for flags package but takes a YAML file instead of a standard INI.
//
// Every top-level key of the YAML file names either a command (`encode:`) or an option group, matched
// case-insensitively against the group's short description (`general:`). The value is unmarshalled
// into the options struct of that command or group.
type YamlParser struct {
	parser *flags.Parser
}

// NewYamlParser creates a new yaml parser for a given flags.Parser.
func NewYamlParser(p *flags.Parser) *YamlParser {
	return &YamlParser{
		parser: p,
	}
}

// ParseFile parses flags from an yaml formatted file. The returned errors
// can be of the type flags.Error or wrapped yaml errors.
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

	// Tell the decoder where the file is, so it can resolve references to other files next to it
	return y.Parse(body, yaml.ReferenceDirs(path.Dir(filename)), yaml.RecursiveDir(true))
}

// ApplyFile loads the file into options that were already resolved by a parse of the command line. The
// library writes the `default` tags back after parsing, so the file has to be applied afterwards; options
// that were given explicitly on the command line are put back once the file is read, so they keep precedence.
func (y *YamlParser) ApplyFile(filename string) error {
	explicit := y.explicitOptions()
	if err := y.ParseFile(filename); err != nil {
		return err
	}
	for _, o := range explicit {
		o.target.Set(o.value)
	}
	return nil
}

// savedOption is a copy of an option value taken before the file is applied
type savedOption struct {
	target reflect.Value
	value  reflect.Value
}

// explicitOptions copies the values of all options set on the command line.
func (y *YamlParser) explicitOptions() []savedOption {
	saved := make([]savedOption, 0)
	for _, group := range y.groups() {
		data := groupData(group)
		if data == nil {
			continue
		}
		for _, option := range group.Options() {
			if !option.IsSet() || option.IsSetDefault() {
				continue
			}
			target := reflect.Indirect(reflect.ValueOf(data)).FieldByIndex(option.Field().Index)
			if !target.CanSet() {
				continue
			}
			value := reflect.New(target.Type()).Elem()
			value.Set(target)
			saved = append(saved, savedOption{target: target, value: value})
		}
	}
	return saved
}

// groups lists every option group of the parser and of its commands.
func (y *YamlParser) groups() []*flags.Group {
	var walk func(groups []*flags.Group) []*flags.Group
	walk = func(groups []*flags.Group) []*flags.Group {
		var all []*flags.Group
		for _, g := range groups {
			all = append(all, g)
			all = append(all, walk(g.Groups())...)
		}
		return all
	}

	var walkCommands func(commands []*flags.Command) []*flags.Group
	walkCommands = func(commands []*flags.Command) []*flags.Group {
		var all []*flags.Group
		for _, c := range commands {
			all = append(all, walk([]*flags.Group{c.Group})...)
			all = append(all, walkCommands(c.Commands())...)
		}
		return all
	}

	return append(walk(y.parser.Groups()), walkCommands(y.parser.Commands())...)
}

// Parse takes an input stream and parses YAML segments one after another, using the provided decode
// options. This allows you to have multiple individual YAML segments within one physical file / input
// stream, all separated by triple dashes (`---`).
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

// findGroup returns the options group for the given key: a command of the same name, or a top-level
// group with a matching short description.
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

// parseSegment will get the "segment" from our input stream and match every key to a command or a group.
func (y *YamlParser) parseSegment(obj map[string]interface{}) error {
	for name, val := range obj {
		group := y.findGroup(name)
		if group == nil {
			return errors.WithStack(&flags.Error{
				Type:    flags.ErrUnknownGroup,
				Message: fmt.Sprintf("could not find option command or group '%s'", name),
			})
		}

		target := groupData(group)
		if target == nil {
			return errors.WithStack(&flags.Error{
				Type:    flags.ErrUnknownGroup,
				Message: fmt.Sprintf("option command or group '%s' has no options", name),
			})
		}

		if conv, err := yaml.Marshal(val); err != nil {
			return errors.WithStack(err)
		} else if err := yaml.Unmarshal(conv, target); err != nil {
			return errors.Wrapf(err, "Could not read options of '%s'", name)
		}
	}
	return nil
}

// groupData returns the options struct pointer registered with the group. The flags library keeps it
// in an unexported field and does not offer an accessor, so it is read through reflection.
func groupData(group *flags.Group) interface{} {
	dataField := reflect.Indirect(reflect.ValueOf(group)).FieldByName("data")
	if !dataField.IsValid() {
		return nil
	}
	dataField = reflect.NewAt(dataField.Type(), unsafe.Pointer(dataField.UnsafeAddr())).Elem()
	if dataField.IsNil() {
		return nil
	}
	return dataField.Elem().Interface()
}
