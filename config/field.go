package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/gplay-cli/gplay/color"
	"github.com/gplay-cli/gplay/constant"
	"github.com/gplay-cli/gplay/style"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

var (
	ErrUnknownKey   = errors.New("unknown key")
	ErrInvalidValue = errors.New("invalid value")
)

// Field is one registered setting. Value is the default and fixes the setting's type.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Lookup returns the field registered under key. For unknown keys the error
// names the closest registered one.
func Lookup(key string) (Field, error) {
	if field, ok := Default[key]; ok {
		return field, nil
	}

	closest := lo.MinBy(Keys(), func(a, b string) bool {
		return levenshtein.Distance(key, a) < levenshtein.Distance(key, b)
	})
	return Field{}, fmt.Errorf(
		"%w %s, did you mean %s?",
		ErrUnknownKey,
		style.Fg(color.Red)(key),
		style.Fg(color.Yellow)(closest),
	)
}

// Parse converts command-line values into the field's type.
func (f *Field) Parse(values []string) (any, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: %s needs a value", ErrInvalidValue, f.Key)
	}

	switch f.Value.(type) {
	case string:
		return values[0], nil
	case int:
		n, err := strconv.Atoi(values[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %s expects an integer, got %q", ErrInvalidValue, f.Key, values[0])
		}
		return n, nil
	case bool:
		b, err := strconv.ParseBool(values[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %s expects a boolean, got %q", ErrInvalidValue, f.Key, values[0])
		}
		return b, nil
	case []string:
		return values, nil
	default:
		return nil, fmt.Errorf("%w: %s has unsupported type %T", ErrInvalidValue, f.Key, f.Value)
	}
}

// Env is the environment variable that overrides the field.
func (f *Field) Env() string {
	return strings.ToUpper(constant.App + "_" + EnvKeyReplacer.Replace(f.Key))
}

func (f *Field) typeName() string {
	if f.Value == nil {
		return "unknown"
	}
	return reflect.TypeOf(f.Value).String()
}

func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
		Env         string `json:"env"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
		Env:         f.Env(),
	})
}

// Pretty renders the field for config info.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

func highlight(v any) string {
	switch value := v.(type) {
	case bool:
		if value {
			return style.Fg(color.Green)("true")
		}
		return style.Fg(color.Red)("false")
	case string:
		if value == "" {
			return style.Faint(`""`)
		}
		return style.Fg(color.Yellow)(value)
	default:
		return fmt.Sprint(value)
	}
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":  style.Faint,
	"purple": style.Fg(color.Purple),
	"blue":   style.Fg(color.Blue),
	"value":  viper.Get,
	"hl":     highlight,
	"typename": func(f *Field) string {
		return f.typeName()
	},
}).Parse(`{{ purple .Key }} {{ faint (printf "(%s, $%s)" (typename .) .Env) }}
{{ faint .Description }}
{{ blue "current" }} {{ hl (value .Key) }}  {{ blue "default" }} {{ hl .Value }}`))
