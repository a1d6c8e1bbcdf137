package models

// Manifest lists the exported revisions
type Manifest struct {
	Latest    int                    `json:"latest" yaml:"latest"`
	Revisions map[string]RevisionRef `json:"revisions" yaml:"revisions"`
}

// RevisionRef is a reference to a revision file in the manifest
type RevisionRef struct {
	Count int    `json:"count" yaml:"count"`
	File  string `json:"file" yaml:"file"`
}

// ManifestResponse is the manifest sent to the client
type ManifestResponse struct {
	Latest    int         `json:"latest"`
	Revisions map[int]int `json:"revisions"` // number -> entry count
}
