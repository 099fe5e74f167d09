// Package templates holds the sample files written by "datecalc init".
package templates

import (
	_ "embed"
)

// ConfigYAML is the sample config.yaml with every key at its default value.
//
//go:embed config.template
var ConfigYAML []byte

// EnvFile is the sample .env listing the DATECALC_* overrides.
//
//go:embed env.template
var EnvFile []byte
