package appidentityassets

import _ "embed"

// YAML holds the embedded app identity, so the binary behaves the same when
// no external `.fulmen/app.yaml` is discoverable.
//
//go:embed app.yaml
var YAML []byte
