package github

// Release is the subset of the GitHub release record this tool reads. The
// upload url is a URI template, everything from the first '{' is the
// templated part.
type Release struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Draft     bool   `json:"draft"`
	UploadURL string `json:"upload_url"`
	AssetsURL string `json:"assets_url"`
}

// Asset is a single binary file attached to a release.
type Asset struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Label string `json:"label"`
}

type CreateRelease struct {
	TagName string `json:"tag_name"`
	Name    string `json:"name"`
	Draft   bool   `json:"draft"`
}

type UpdateRelease struct {
	TargetCommitish string `json:"target_commitish"`
	Draft           bool   `json:"draft"`
}
