package intl

import (
	"sync"

	"github.com/goccy/go-json"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

///////////////////////////////////////////////////////////////////////////////
// FORMAT REGISTRY
///////////////////////////////////////////////////////////////////////////////

// UnmarshalFunc decodes one locale file into a document tree.
type UnmarshalFunc func(data []byte, v any) error

var formatRegistry = map[string]UnmarshalFunc{}
var regMutex sync.RWMutex

// RegisterFormat binds a file extension (with leading dot, e.g. ".json") to
// a decoder. Built-in formats may be overridden; registering a new one lets
// LoadDir pick up additional file types.
func RegisterFormat(ext string, fn UnmarshalFunc) {
	regMutex.Lock()
	defer regMutex.Unlock()
	formatRegistry[ext] = fn
}

// formatFor returns the decoder registered for ext, if any.
func formatFor(ext string) (UnmarshalFunc, bool) {
	regMutex.RLock()
	defer regMutex.RUnlock()
	fn, ok := formatRegistry[ext]
	return fn, ok
}

///////////////////////////////////////////////////////////////////////////////
// DEFAULT FORMATS REGISTERED AT INIT
///////////////////////////////////////////////////////////////////////////////

func init() {
	RegisterFormat(".json", json.Unmarshal)
	RegisterFormat(".yaml", yaml.Unmarshal)
	RegisterFormat(".yml", yaml.Unmarshal)
	RegisterFormat(".toml", toml.Unmarshal)
}
