package provisionerdrv

import (
	"context"
	"fmt"

	"github.com/fedlearn/fedops/domain"
	"github.com/fedlearn/fedops/domain/model"
)

// portAdapter implements model.ProvisionerPort backed by registered drivers.
type portAdapter struct {
	providers  domain.ProviderRepository
	providerID string
}

func (a *portAdapter) driver(ctx context.Context) (Driver, error) {
	provider, err := a.providers.Get(ctx, a.providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get provider %s: %w", a.providerID, err)
	}
	factory, exists := GetDriverFactory(provider.Driver)
	if !exists {
		return nil, fmt.Errorf("unknown provisioner driver: %s", provider.Driver)
	}
	drv, err := factory(provider.Settings)
	if err != nil {
		return nil, fmt.Errorf("failed to create driver %s: %w", provider.Driver, err)
	}
	return drv, nil
}

func (a *portAdapter) ApplyStep(ctx context.Context, step *model.Step) error {
	drv, err := a.driver(ctx)
	if err != nil {
		return err
	}
	return drv.ApplyStep(ctx, step)
}

func (a *portAdapter) StepState(ctx context.Context, step *model.Step) (*model.StepState, error) {
	drv, err := a.driver(ctx)
	if err != nil {
		return nil, err
	}
	return drv.StepState(ctx, step)
}

func (a *portAdapter) DestroyResourceGroup(ctx context.Context, name string) error {
	drv, err := a.driver(ctx)
	if err != nil {
		return err
	}
	return drv.DestroyResourceGroup(ctx, name)
}

// GetProvisionerPort returns a model.ProvisionerPort bound to the provider
// with the given repository ID.
func GetProvisionerPort(providers domain.ProviderRepository, providerID string) model.ProvisionerPort {
	return &portAdapter{providers: providers, providerID: providerID}
}
