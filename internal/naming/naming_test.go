package naming

import (
	"strings"
	"testing"
)

func TestValidateResourceGroupName(t *testing.T) {
	valid := []string{"fedlearning-rg", "rg_1", "a", "My.Group(2)"}
	for _, name := range valid {
		if err := ValidateResourceGroupName(name); err != nil {
			t.Errorf("ValidateResourceGroupName(%q) = %v", name, err)
		}
	}
	invalid := []string{"", "bad/name", "trailing.", strings.Repeat("x", 91), "with space"}
	for _, name := range invalid {
		if err := ValidateResourceGroupName(name); err == nil {
			t.Errorf("ValidateResourceGroupName(%q) = nil, want error", name)
		}
	}
}

func TestValidateWorkspaceName(t *testing.T) {
	if err := ValidateWorkspaceName("fedclient1"); err != nil {
		t.Errorf("fedclient1: %v", err)
	}
	invalid := []string{"", "Fed_Srv", "-leading", strings.Repeat("a", 34)}
	for _, name := range invalid {
		if err := ValidateWorkspaceName(name); err == nil {
			t.Errorf("ValidateWorkspaceName(%q) = nil, want error", name)
		}
	}
}

func TestValidateVMName(t *testing.T) {
	if err := ValidateVMName("fedserver"); err != nil {
		t.Errorf("fedserver: %v", err)
	}
	if err := ValidateVMName("fed server"); err == nil {
		t.Error("expected error for name with space")
	}
	if err := ValidateVMName(strings.Repeat("a", 64)); err == nil {
		t.Error("expected error for name over 63 characters")
	}
}

func TestValidateRuleName(t *testing.T) {
	valid := []string{"allow-fl-ports", "Allow_FL.Ports-1", "r", strings.Repeat("x", 80)}
	for _, name := range valid {
		if err := ValidateRuleName(name); err != nil {
			t.Errorf("ValidateRuleName(%q) = %v", name, err)
		}
	}
	invalid := []string{"", "-leading", "trailing.", "has space", strings.Repeat("x", 81)}
	for _, name := range invalid {
		if err := ValidateRuleName(name); err == nil {
			t.Errorf("ValidateRuleName(%q) = nil, want error", name)
		}
	}
}
