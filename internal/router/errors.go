package router

import "errors"

var (
	ErrInvalidRule  = errors.New("invalid phrase rule")
	ErrUnroutedRule = errors.New("phrase rule proposes a route missing from the catalog")
)
