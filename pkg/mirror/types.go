package mirror

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/araddon/dateparse"
	"github.com/mitchellh/mapstructure"
)

// MirrorResponse is the decoded body of a context mirror request.
type MirrorResponse struct {
	// Raw is the decoded JSON object as returned by the server.
	Raw map[string]interface{} `json:"-" yaml:"-"`

	Nodes    []Node                 `json:"nodes" yaml:"nodes"`
	Metadata map[string]interface{} `json:"metadata" yaml:"metadata"`

	// Root and Timestamp are nil when the server omits them or sends a
	// value that cannot be interpreted.
	Root      *string    `json:"root,omitempty" yaml:"root,omitempty"`
	Timestamp *time.Time `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
}

// Node is one entry of a mirror. Fields the server omits are nil.
type Node struct {
	Name     *string  `mapstructure:"name" json:"name,omitempty" yaml:"name,omitempty"`
	Type     *string  `mapstructure:"type" json:"type,omitempty" yaml:"type,omitempty"`
	Size     *float64 `mapstructure:"size" json:"size,omitempty" yaml:"size,omitempty"`
	Children []string `mapstructure:"children" json:"children,omitempty" yaml:"children,omitempty"`
}

// MirrorResult holds either a mirror or the reason it is absent.
type MirrorResult struct {
	Mirror *MirrorResponse
	Err    error
}

// Ok reports whether the mirror is present.
func (r MirrorResult) Ok() bool {
	return r.Mirror != nil
}

// SyncResult is returned by SyncMapping.
type SyncResult struct {
	Status       string `json:"status" yaml:"status"`
	RulesApplied int    `json:"rules_applied" yaml:"rules_applied"`
}

// decodeResponse builds a MirrorResponse from a JSON object body.
func decodeResponse(body []byte) (*MirrorResponse, error) {
	var raw map[string]interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: body is not a JSON object", ErrDecode)
	}

	resp := &MirrorResponse{
		Raw:      raw,
		Nodes:    []Node{},
		Metadata: map[string]interface{}{},
	}

	switch v := raw["nodes"].(type) {
	case nil:
	case []interface{}:
		// Strict decoding: a value of the wrong type is an error, never
		// converted.
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result: &resp.Nodes,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create node decoder: %w", err)
		}
		if err := decoder.Decode(v); err != nil {
			return nil, fmt.Errorf("%w: nodes: %v", ErrDecode, err)
		}
	default:
		return nil, fmt.Errorf("%w: nodes is %T, not a list", ErrDecode, v)
	}

	switch v := raw["metadata"].(type) {
	case nil:
	case map[string]interface{}:
		resp.Metadata = v
	default:
		return nil, fmt.Errorf("%w: metadata is %T, not an object", ErrDecode, v)
	}

	if root, ok := raw["root"].(string); ok {
		resp.Root = &root
	}
	if ts, ok := raw["timestamp"].(string); ok {
		if t, err := dateparse.ParseAny(ts); err == nil {
			resp.Timestamp = &t
		}
	}

	return resp, nil
}
