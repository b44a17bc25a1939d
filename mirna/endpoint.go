package mirna

// Endpoint describes one lookup route of the miRNA API. All routes are GET
// requests taking a single query parameter.
type Endpoint struct {
	// Name labels the endpoint in logs and metric names
	Name  string
	Path  string
	Param string
}

var (
	// MiRNAByName looks up miRNA entries by name
	MiRNAByName = Endpoint{Name: "mirna", Path: "/mirna", Param: "name"}

	// Predictions looks up gene-target predictions for a miRNA
	Predictions = Endpoint{Name: "predictions", Path: "/mirna/predictions", Param: "name"}

	// PathwaysByGene looks up pathways affected by a gene
	PathwaysByGene = Endpoint{Name: "pathways", Path: "/gene/pathways", Param: "name"}
)

// Endpoints lists every route the client knows about
var Endpoints = []Endpoint{MiRNAByName, Predictions, PathwaysByGene}
