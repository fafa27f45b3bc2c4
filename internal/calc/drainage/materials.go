package drainage

type MaterialID string

const (
	MaterialPVC    MaterialID = "pvc"
	MaterialMetal  MaterialID = "metal"
	MaterialCopper MaterialID = "copper"
)

// DefaultMaterial is preselected in the form.
const DefaultMaterial = MaterialPVC

type CostTier int

const (
	CostLow CostTier = iota + 1
	CostMedium
	CostHigh
)

func (c CostTier) String() string {
	switch c {
	case CostLow:
		return "Низкая"
	case CostMedium:
		return "Средняя"
	case CostHigh:
		return "Высокая"
	default:
		return "-"
	}
}

type ComponentKind string

const (
	ComponentPipe      ComponentKind = "pipe"
	ComponentGutter    ComponentKind = "gutter"
	ComponentBracket   ComponentKind = "bracket"
	ComponentFunnel    ComponentKind = "funnel"
	ComponentElbow     ComponentKind = "elbow"
	ComponentConnector ComponentKind = "connector"
)

// PriceTable holds unit prices in roubles, per metre for pipe and gutter, per piece otherwise.
type PriceTable struct {
	Pipe      float64 `json:"pipe"`
	Gutter    float64 `json:"gutter"`
	Bracket   float64 `json:"bracket"`
	Funnel    float64 `json:"funnel"`
	Elbow     float64 `json:"elbow"`
	Connector float64 `json:"connector"`
}

func (p PriceTable) For(kind ComponentKind) float64 {
	switch kind {
	case ComponentPipe:
		return p.Pipe
	case ComponentGutter:
		return p.Gutter
	case ComponentBracket:
		return p.Bracket
	case ComponentFunnel:
		return p.Funnel
	case ComponentElbow:
		return p.Elbow
	case ComponentConnector:
		return p.Connector
	}
	return 0
}

type MaterialSpec struct {
	ID        MaterialID `json:"id"`
	Name      string     `json:"name"`
	Title     string     `json:"title"`
	Roughness float64    `json:"roughness"`
	Cost      CostTier   `json:"cost_tier"`
	CostLabel string     `json:"cost"`
	Prices    PriceTable `json:"prices"`
}

var materials = [...]MaterialSpec{
	{
		ID:        MaterialPVC,
		Name:      "ПВХ",
		Title:     "PVC",
		Roughness: 0.009,
		Cost:      CostLow,
		Prices:    PriceTable{Pipe: 450, Gutter: 380, Bracket: 85, Funnel: 120, Elbow: 95, Connector: 65},
	},
	{
		ID:        MaterialMetal,
		Name:      "Металл",
		Title:     "Galvanized steel",
		Roughness: 0.015,
		Cost:      CostMedium,
		Prices:    PriceTable{Pipe: 850, Gutter: 720, Bracket: 145, Funnel: 230, Elbow: 180, Connector: 110},
	},
	{
		ID:        MaterialCopper,
		Name:      "Медь",
		Title:     "Copper",
		Roughness: 0.012,
		Cost:      CostHigh,
		Prices:    PriceTable{Pipe: 2400, Gutter: 2100, Bracket: 340, Funnel: 680, Elbow: 520, Connector: 290},
	},
}

// Lookup returns a copy of the material spec for id.
func Lookup(id MaterialID) (MaterialSpec, bool) {
	for _, m := range materials {
		if m.ID == id {
			m.CostLabel = m.Cost.String()
			return m, true
		}
	}
	return MaterialSpec{}, false
}

// Materials lists every material in display order.
func Materials() []MaterialSpec {
	out := make([]MaterialSpec, 0, len(materials))
	for _, m := range materials {
		m.CostLabel = m.Cost.String()
		out = append(out, m)
	}
	return out
}
