// Package provisionerdrv holds the provisioner driver registry.
//
// A driver executes individual provisioning steps against one cloud
// provider account. Implementations live under
// adapters/drivers/provisioner/<name> and register themselves from init().
package provisionerdrv

import (
	"context"

	"github.com/fedlearn/fedops/domain/model"
)

// Driver abstracts provider-specific step execution.
type Driver interface {
	// ID returns the driver identifier (e.g., "azure").
	ID() string

	// ApplyStep creates the resource the step describes. It blocks until
	// the provider call completes and performs no retries of its own.
	ApplyStep(ctx context.Context, step *model.Step) error

	// StepState reports whether the resource the step describes exists.
	StepState(ctx context.Context, step *model.Step) (*model.StepState, error)

	// DestroyResourceGroup deletes a resource group and everything in it.
	// Deleting a group that does not exist is not an error.
	DestroyResourceGroup(ctx context.Context, name string) error
}

// driverFactory is a constructor function for a provisioner driver.
type driverFactory func(settings map[string]string) (Driver, error)

// registry holds registered drivers by name.
var registry = map[string]driverFactory{}

// Register makes a driver available by the given name. Drivers should call
// this from their init() function.
func Register(name string, factory driverFactory) {
	registry[name] = factory
}

// GetDriverFactory returns the driver factory function for the given name.
func GetDriverFactory(name string) (driverFactory, bool) {
	factory, exists := registry[name]
	return factory, exists
}
