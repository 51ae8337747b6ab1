package types

// SourceEntry is a candidate document before retrieval. Entries originate
// from the static source list and are never mutated.
type SourceEntry struct {
	Title  string `yaml:"title" json:"title" validate:"required"`
	URL    string `yaml:"url" json:"url" validate:"required,url"`
	Source string `yaml:"source" json:"source" validate:"required"`
}

// RetrievedArtifact describes the bytes fetched for a SourceEntry. The
// SHA-256 digest over the full content is the deduplication key.
type RetrievedArtifact struct {
	Title       string `json:"title" validate:"required"`
	Filename    string `json:"filename" validate:"required"`
	Source      string `json:"source"`
	OriginalURL string `json:"original_url"`
	SHA256      string `json:"sha256" validate:"required,len=64,hexadecimal"`
	SizeBytes   int64  `json:"size_bytes" validate:"gte=0"`
}

// Failure records one source that could not be retrieved.
type Failure struct {
	Title  string `json:"title"`
	URL    string `json:"url"`
	Source string `json:"source"`
	Error  string `json:"error"`
}

// Manifest is the output of a retrieval pass and the input to
// classification. The core never writes manifest items; it only reads them.
type Manifest struct {
	RunID        string              `json:"run_id,omitempty"`
	DownloadDate string              `json:"download_date"`
	TotalURLs    int                 `json:"total_urls"`
	Successful   int                 `json:"successful"`
	Failed       int                 `json:"failed"`
	Duplicates   int                 `json:"duplicates"`
	Items        []RetrievedArtifact `json:"items" validate:"dive"`
	Failures     []Failure           `json:"failures"`
	DuplicateMap map[string]string   `json:"duplicate_map,omitempty"`
	TotalSizeMB  float64             `json:"total_size_mb,omitempty"`
}

// Exclusion records one document omitted from the catalog because its
// title or filename matched a disallowed-content phrase.
type Exclusion struct {
	Title   string `json:"title"`
	Matched string `json:"matched"`
}
