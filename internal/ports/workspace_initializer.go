package ports

// WorkspaceInitializer scaffolds a directory with a default commonmeta.yaml.
type WorkspaceInitializer interface {
	Init(root string, vars map[string]string, force bool) (written []string, err error)
}
