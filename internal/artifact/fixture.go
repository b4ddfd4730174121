package artifact

import (
	"context"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var fixtureYAML []byte

type fixtureFile struct {
	Folders map[string]Folder `yaml:"folders"`
}

// FixtureOracle serves a fixed table of artifact folders instead of a bucket listing
type FixtureOracle struct {
	bucket  string
	folders map[string]Folder
}

// NewFixtureOracle loads the embedded fixture table
func NewFixtureOracle(bucket string) (*FixtureOracle, error) {
	return NewFixtureOracleFromYAML(bucket, fixtureYAML)
}

// NewFixtureOracleFromYAML builds a fixture oracle from a YAML document of the form
// `folders: {<id>: {created_at, files}}`
func NewFixtureOracleFromYAML(bucket string, data []byte) (*FixtureOracle, error) {
	var file fixtureFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse artifact fixtures: %w", err)
	}
	if file.Folders == nil {
		file.Folders = map[string]Folder{}
	}
	return &FixtureOracle{bucket: bucket, folders: file.Folders}, nil
}

// Exists reports whether artifactID is one of the fixture folders
func (o *FixtureOracle) Exists(_ context.Context, artifactID string) (bool, error) {
	if !validID(artifactID) {
		return false, nil
	}
	_, ok := o.folders[artifactID]
	return ok, nil
}

// Folders returns a copy of the fixture table
func (o *FixtureOracle) Folders(_ context.Context) (map[string]Folder, error) {
	out := make(map[string]Folder, len(o.folders))
	for id, folder := range o.folders {
		files := make([]string, len(folder.Files))
		copy(files, folder.Files)
		out[id] = Folder{Files: files, CreatedAt: folder.CreatedAt}
	}
	return out, nil
}

// URI returns the bucket URI of an artifact folder
func (o *FixtureOracle) URI(artifactID string) string {
	return bucketURI(o.bucket, artifactID)
}
