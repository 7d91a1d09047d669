package extension

// Record is one entry of index.json, describing the extension packaged in a single apk.
//
// Field order is the key order of the published index and must not change.
type Record struct {
	Name    string    `json:"name"`
	Pkg     string    `json:"pkg"`
	Apk     string    `json:"apk"`
	Lang    string    `json:"lang"`
	Code    int       `json:"code"`
	Version string    `json:"version"`
	NSFW    int       `json:"nsfw"`
	Sources []*Source `json:"sources"`
}

// Source is a content source shipped by an extension.
//
// ID is the durable identity clients key on, it never changes once published.
type Source struct {
	Name      string `json:"name"`
	Lang      string `json:"lang"`
	ID        string `json:"id"`
	BaseURL   string `json:"baseUrl"`
	VersionID int    `json:"versionId"`
}
