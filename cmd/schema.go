package cmd

import (
	"encoding/json"
	"reflect"
	"strings"

	"github.com/gplay-cli/gplay/history"
	"github.com/gplay-cli/gplay/source"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(schemaCmd)

	schemaCmd.Flags().BoolP("listing", "l", false, "Generate the JSON Schema of videos-by-date output")
	schemaCmd.Flags().Bool("history", false, "Generate the JSON Schema of history --json output")
	schemaCmd.MarkFlagsMutuallyExclusive("listing", "history")
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print JSON schemas of the structured output",
	Long:  "Print the JSON Schema describing the json output of video (the default), videos-by-date or history.",
	Run: func(cmd *cobra.Command, args []string) {
		var target any

		switch {
		case lo.Must(cmd.Flags().GetBool("listing")):
			target = []source.DatedVideoItem{}
		case lo.Must(cmd.Flags().GetBool("history")):
			target = []*history.Record{}
		default:
			target = &source.VideoSession{}
		}

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(newReflector().Reflect(target)))
	},
}

var kindType = reflect.TypeOf(source.Kind(0))

func newReflector() *jsonschema.Reflector {
	reflector := &jsonschema.Reflector{
		Anonymous:      true,
		DoNotReference: true,
	}
	reflector.Mapper = func(t reflect.Type) *jsonschema.Schema {
		return mapType(reflector, t)
	}
	return reflector
}

// mapType overrides types whose JSON form differs from their Go structure.
func mapType(reflector *jsonschema.Reflector, t reflect.Type) *jsonschema.Schema {
	if t == kindType {
		return &jsonschema.Schema{
			Type: "string",
			Enum: []any{
				source.KindPrimary.String(),
				source.KindFallback.String(),
				source.KindUnknown.String(),
			},
		}
	}

	inner, ok := optionValueType(t)
	if !ok {
		return nil
	}

	value := reflector.ReflectFromType(inner)
	value.Version = ""
	value.ID = ""

	return &jsonschema.Schema{
		AnyOf: []*jsonschema.Schema{value, {Type: "null"}},
	}
}

// optionValueType reports T when t is mo.Option[T].
func optionValueType(t reflect.Type) (reflect.Type, bool) {
	if t.Kind() != reflect.Struct || !strings.HasPrefix(t.Name(), "Option[") {
		return nil, false
	}
	if !strings.HasSuffix(t.PkgPath(), "samber/mo") {
		return nil, false
	}

	method, ok := t.MethodByName("OrEmpty")
	if !ok {
		return nil, false
	}
	return method.Type.Out(0), true
}
