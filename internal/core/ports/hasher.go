package ports

// ArtifactHasher computes content fingerprints for artifact files.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type ArtifactHasher interface {
	// SHA1 streams the file at path and returns the lowercase hex digest.
	SHA1(path string) (string, error)
}
