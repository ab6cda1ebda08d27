package provisionerdrv_test

import (
	"testing"

	provisionerdrv "github.com/fedlearn/fedops/adapters/drivers/provisioner"
	_ "github.com/fedlearn/fedops/adapters/drivers/provisioner/azure"
)

func TestAzureDriverRegistered(t *testing.T) {
	factory, ok := provisionerdrv.GetDriverFactory("azure")
	if !ok {
		t.Fatal("azure driver not registered")
	}

	t.Run("missing settings", func(t *testing.T) {
		if _, err := factory(nil); err == nil {
			t.Error("expected error for missing settings")
		}
	})

	t.Run("missing auth method", func(t *testing.T) {
		_, err := factory(map[string]string{
			"AZURE_SUBSCRIPTION_ID": "00000000-0000-0000-0000-000000000000",
			"AZURE_LOCATION":        "eastus",
		})
		if err == nil {
			t.Error("expected error for missing AZURE_AUTH_METHOD")
		}
	})

	t.Run("azure_cli auth", func(t *testing.T) {
		drv, err := factory(map[string]string{
			"AZURE_SUBSCRIPTION_ID": "00000000-0000-0000-0000-000000000000",
			"AZURE_LOCATION":        "eastus",
			"AZURE_AUTH_METHOD":     "azure_cli",
		})
		if err != nil {
			t.Fatalf("factory: %v", err)
		}
		if drv.ID() != "azure" {
			t.Errorf("ID = %s", drv.ID())
		}
	})

	t.Run("unsupported auth method", func(t *testing.T) {
		_, err := factory(map[string]string{
			"AZURE_SUBSCRIPTION_ID": "00000000-0000-0000-0000-000000000000",
			"AZURE_LOCATION":        "eastus",
			"AZURE_AUTH_METHOD":     "device_code",
		})
		if err == nil {
			t.Error("expected error for unsupported auth method")
		}
	})
}

func TestUnknownDriver(t *testing.T) {
	if _, ok := provisionerdrv.GetDriverFactory("gcp"); ok {
		t.Error("gcp driver should not be registered")
	}
}
