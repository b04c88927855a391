package usecase

import (
	"strings"

	"github.com/aalvaropc/commonmeta/internal/ports"
)

type InitWorkspace struct {
	initializer ports.WorkspaceInitializer
}

func NewInitWorkspace(initializer ports.WorkspaceInitializer) *InitWorkspace {
	return &InitWorkspace{initializer: initializer}
}

// Execute scaffolds root, filling the contact address into the config template.
func (uc *InitWorkspace) Execute(root, mailto string, force bool) ([]string, error) {
	return uc.initializer.Init(root, map[string]string{"MAILTO": strings.TrimSpace(mailto)}, force)
}
