package azure

// Names of the networking resources created alongside a VM, derived from
// the VM name the way `az vm create` derives its defaults.
func vnetName(vm string) string   { return vm + "-vnet" }
func subnetName(vm string) string { return vm + "-subnet" }
func pipName(vm string) string    { return vm + "-pip" }
func nsgName(vm string) string    { return vm + "-nsg" }
func nicName(vm string) string    { return vm + "-nic" }
