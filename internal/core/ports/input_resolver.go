package ports

// InputResolver expands command line arguments into image paths.
//
//go:generate mockgen -source=input_resolver.go -destination=mocks/mock_input_resolver.go -package=mocks
type InputResolver interface {
	// ResolveInputs expands files, directories and glob patterns into an ordered list
	// of image paths. Directories are walked recursively when recursive is true.
	ResolveInputs(args []string, recursive bool) ([]string, error)
}
