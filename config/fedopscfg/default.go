package fedopscfg

// DefaultResourceGroup is applied when neither the config nor the CLI
// supplies a resource group.
const DefaultResourceGroup = "fedlearning-rg"

// defaultSteps is the built-in federated-learning sequence: one coordinator
// VM, one firewall rule opening the FL ports, and four managed-ML workspaces
// (server plus three clients). Used when fedops.yml lists no steps. The
// resource_group step carries no name so it always resolves to the plan's
// effective resource group, CLI override included.
func defaultSteps() []Step {
	return []Step{
		{Kind: "resource_group"},
		{Name: "fedserver", Kind: "vm", Params: map[string]string{
			"image":              "Canonical:0001-com-ubuntu-server-jammy:22_04-lts-gen2:latest",
			"size":               "Standard_B2ms",
			"admin_username":     "fedadmin",
			"admin_password_env": "FEDOPS_VM_ADMIN_PASSWORD",
		}},
		{Name: "allow-fl-ports", Kind: "firewall_rule", Params: map[string]string{
			"ports":    "8002-8003",
			"priority": "1001",
			"vm":       "fedserver",
		}},
		{Name: "fedsrv", Kind: "workspace"},
		{Name: "fedclient1", Kind: "workspace"},
		{Name: "fedclient2", Kind: "workspace"},
		{Name: "fedclient3", Kind: "workspace"},
	}
}
