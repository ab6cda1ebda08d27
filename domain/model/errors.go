package model

import "errors"

var (
	ErrProviderNotFound = errors.New("provider not found")
	ErrProviderInvalid  = errors.New("provider invalid")
)

var (
	ErrPlanNotFound = errors.New("plan not found")
	ErrPlanInvalid  = errors.New("plan invalid")
)

var (
	ErrRunNotFound = errors.New("run not found")
	ErrRunInvalid  = errors.New("run invalid")
)

var (
	ErrStepInvalid     = errors.New("step invalid")
	ErrStepUnknownKind = errors.New("unknown step kind")
)
