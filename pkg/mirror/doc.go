// Package mirror is a client for the Axis context mirror API.
//
// # Overview
//
// A mirror is the remote representation of a filesystem path's context: a
// list of nodes (files and directories with their type and size) plus
// free-form metadata. The client fetches it with a single request:
//
//	GET {base_url}/context/mirror?path={path}
//	Authorization: Bearer {api_key}
//	Content-Type: application/json
//
// # Configuration
//
// The API key is resolved once, in NewClient: an explicit Config.APIKey,
// then the AXIS_API_KEY environment variable. When neither is set a warning
// is logged and the client still works, sending an empty Bearer token.
//
//	client, err := mirror.NewClient(&mirror.Config{
//	  BaseURL: "https://api.axis.sh/v1",
//	})
//
// # Error Handling
//
// GetMirror does not return an error. Transport failures, non-2xx statuses
// and malformed bodies are logged and carried in MirrorResult.Err with a nil
// Mirror:
//
//	res := client.GetMirror(ctx, ".")
//	if !res.Ok() {
//	  // res.Err says why
//	}
//
// Use errors.Is with ErrUnexpectedStatus or ErrDecode to classify failures.
//
// # Governance Mapping
//
// SyncMapping does not read the mapping file or contact the server yet. It
// logs the path and always reports {status: "synced", rules_applied: 12}.
package mirror
