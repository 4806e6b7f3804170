package mineral

// Depth is where a deposit sits in the planet crust. The set is fixed.
type Depth string

const (
	DepthSurface Depth = "surface"
	DepthShallow Depth = "shallow"
	DepthDeep    Depth = "deep"
	DepthCore    Depth = "core"
)

// Depths lists every depth in stable order.
var Depths = []Depth{DepthSurface, DepthShallow, DepthDeep, DepthCore}

// Deposit is one mineral occurrence on a planet.
type Deposit struct {
	Mineral  string  `json:"mineral"`
	Quantity int64   `json:"quantity"`
	Purity   float64 `json:"purity"`
	Depth    Depth   `json:"depth"`
}
