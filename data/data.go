// Package data holds the reference city catalog shipped with the binaries.
package data

import _ "embed"

// Cities is the default catalog: a JSON object keyed by city code.
//
//go:embed cities.json
var Cities []byte
