package mirna

// MiRNA is a single miRNA entry
type MiRNA struct {
	ID          string `json:"id" yaml:"id" jsonschema_description:"Stable identifier of the entry"`
	Name        string `json:"name" yaml:"name" jsonschema_description:"miRNA name, e.g. hsa-miR-21-5p"`
	Accession   string `json:"accession,omitempty" yaml:"accession" jsonschema_description:"miRBase accession"`
	Species     string `json:"species,omitempty" yaml:"species"`
	Sequence    string `json:"sequence,omitempty" yaml:"sequence" jsonschema_description:"Mature sequence"`
	Description string `json:"description,omitempty" yaml:"description"`
}

// Prediction is a predicted gene target of a miRNA
type Prediction struct {
	MiRNA  string  `json:"mirna" yaml:"mirna" jsonschema_description:"Name of the targeting miRNA"`
	Gene   string  `json:"gene" yaml:"gene" jsonschema_description:"Symbol of the target gene"`
	Score  float64 `json:"score" yaml:"score" jsonschema_description:"Prediction score reported by the source"`
	Source string  `json:"source,omitempty" yaml:"source" jsonschema_description:"Prediction database, e.g. TargetScan"`
}

// Pathway is a pathway a gene takes part in
type Pathway struct {
	ID     string `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Gene   string `json:"gene" yaml:"gene" jsonschema_description:"Symbol of the gene the pathway was looked up by"`
	Source string `json:"source,omitempty" yaml:"source" jsonschema_description:"Pathway database, e.g. KEGG"`
	URL    string `json:"url,omitempty" yaml:"url"`
}
