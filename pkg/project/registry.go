package project

import (
	"sort"

	"github.com/arthur-debert/stamp/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
)

// factory builds a Scaffold from resolved CLI options.
type factory func(opts map[string]interface{}) (Scaffold, error)

var registry = map[Kind]factory{
	KindInitCollection:          decodeInto[InitCollection](nil),
	KindInitPlaybook:            decodeInto[InitPlaybook](nil),
	KindInitExecutionEnv:        decodeInto[InitExecutionEnv](nil),
	KindAddDevfile:              decodeInto[AddDevfile](nil),
	KindAddDevcontainer:         decodeInto[AddDevcontainer](nil),
	KindAddExecutionEnvironment: decodeInto[AddExecutionEnvironment](nil),
	KindAddFilterPlugin:         decodeInto[AddPlugin](pluginDefaults(PluginFilter)),
	KindAddLookupPlugin:         decodeInto[AddPlugin](pluginDefaults(PluginLookup)),
	KindAddTestPlugin:           decodeInto[AddPlugin](pluginDefaults(PluginTest)),
	KindAddModule:               decodeInto[AddPlugin](pluginDefaults(PluginModule)),
	KindAddActionPlugin:         decodeInto[AddPlugin](pluginDefaults(PluginAction)),
}

func pluginDefaults(t PluginType) map[string]interface{} {
	return map[string]interface{}{"type": string(t), "name": DefaultPluginName}
}

// decodeInto decodes defaults then opts into a T and validates it.
func decodeInto[T Scaffold](defaults map[string]interface{}) factory {
	return func(opts map[string]interface{}) (Scaffold, error) {
		var s T
		merged := make(map[string]interface{}, len(defaults)+len(opts))
		for k, v := range defaults {
			merged[k] = v
		}
		for k, v := range opts {
			if v == nil || v == "" {
				continue
			}
			merged[k] = v
		}

		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:           &s,
			WeaklyTypedInput: true,
			ErrorUnused:      true,
		})
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to create options decoder")
		}
		if err := decoder.Decode(merged); err != nil {
			return nil, errors.Wrap(err, errors.ErrInvalidInput, "invalid options")
		}
		if err := validateStruct(s); err != nil {
			return nil, err
		}
		return s, nil
	}
}

// Resolve builds the Scaffold for kind from a flat set of options.
func Resolve(kind Kind, opts map[string]interface{}) (Scaffold, error) {
	build, ok := registry[kind]
	if !ok {
		return nil, errors.Newf(errors.ErrUnsupported, "unsupported scaffold %q", kind).
			WithDetail("kind", string(kind))
	}
	return build(opts)
}

// Kinds lists every registered scaffold kind, sorted.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(registry))
	for k := range registry {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
