package drainage

import (
	"errors"
	"fmt"
	"math"

	"Vodostok/internal/calc/plan"
)

const (
	Gravity = 9.81

	// Slopes are dimensionless (m/m).
	MinSlope         = 0.002
	RecommendedSlope = 0.005
	LongRunM         = 15.0

	MinVelocity = 0.7 // m/s
	MaxVelocity = 4.0 // m/s

	// ReserveFactor adds the recommended 10% stock on top of the estimate.
	ReserveFactor = 1.10
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnknownMaterial = errors.New("unknown material")
)

type Input struct {
	RoofAreaM2   float64           `json:"roof_area_m2" yaml:"roof_area_m2"`
	RainfallMMH  float64           `json:"rainfall_mm_h" yaml:"rainfall_mm_h"`
	DrainLengthM float64           `json:"drain_length_m" yaml:"drain_length_m"`
	Material     MaterialID        `json:"material" yaml:"material"`
	HouseLengthM float64           `json:"house_length_m" yaml:"house_length_m"`
	HouseWidthM  float64           `json:"house_width_m" yaml:"house_width_m"`
	HouseHeightM float64           `json:"house_height_m" yaml:"house_height_m"`
	DrainPoints  []plan.DrainPoint `json:"drain_points" yaml:"drain_points"`
	// Drains is the downpipe count used when no points are placed.
	Drains int `json:"drains,omitempty" yaml:"drains,omitempty"`
}

// Extended reports whether house dimensions were supplied, which turns on the materials bill.
func (in Input) Extended() bool {
	return in.HouseLengthM != 0 || in.HouseWidthM != 0 || in.HouseHeightM != 0
}

func (in Input) Perimeter() float64 {
	return (in.HouseLengthM + in.HouseWidthM) * 2
}

// PlacedDrains is the number of placed points, or Drains when none are placed.
func (in Input) PlacedDrains() int {
	if len(in.DrainPoints) > 0 {
		return len(in.DrainPoints)
	}
	return in.Drains
}

type Result struct {
	FlowRate         float64    `json:"flow_rate"`
	DiameterMM       int        `json:"diameter_mm"`
	SlopeMMPerM      float64    `json:"slope_mm_per_m"`
	Material         string     `json:"material"`
	MaterialID       MaterialID `json:"material_id"`
	Roughness        float64    `json:"roughness"`
	CostTier         string     `json:"cost_tier"`
	CapacityM3H      float64    `json:"capacity_m3_h"`
	VelocityMS       float64    `json:"velocity_m_s"`
	VelocityOK       bool       `json:"velocity_ok"`
	DrainCount       int        `json:"drain_count"`
	Materials        []LineItem `json:"materials,omitempty"`
	TotalCost        float64    `json:"total_cost"`
	TotalWithReserve float64    `json:"total_with_reserve"`
	Notes            string     `json:"notes"`
}

func FlowRate(roofArea, rainfallIntensity float64) float64 {
	return roofArea * rainfallIntensity / 10000
}

// SelectDiameter picks the downpipe size in mm; boundary values fall to the lower tier.
func SelectDiameter(flowRate float64) int {
	if flowRate > 1.5 {
		return 100
	} else if flowRate > 0.8 {
		return 75
	}
	return 50
}

func SelectSlope(runLength float64) float64 {
	if runLength > LongRunM {
		return MinSlope
	}
	return RecommendedSlope
}

// Velocity is a simplified gravity-flow estimate for a pipe of the given diameter (mm).
func Velocity(diameterMM int, slope, roughness float64) float64 {
	return math.Sqrt((2 * Gravity * float64(diameterMM) / 1000 * slope) / roughness)
}

// Capacity returns m³/h through a full pipe section, rounded to 2 decimals.
func Capacity(diameterMM int, velocity float64) float64 {
	r := float64(diameterMM) / 2000
	return round2(math.Pi * r * r * velocity * 3600)
}

func Calculate(in Input) (Result, error) {
	if in.Material == "" {
		in.Material = DefaultMaterial
	}
	mat, ok := Lookup(in.Material)
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownMaterial, in.Material)
	}
	if err := validate(in); err != nil {
		return Result{}, err
	}
	in.DrainPoints = plan.Normalize(in.DrainPoints)
	placed := in.PlacedDrains()
	drains := placed
	if drains < plan.MinDrains {
		drains = plan.MinDrains
	}

	flow := FlowRate(in.RoofAreaM2, in.RainfallMMH)
	diameter := SelectDiameter(flow)
	slope := SelectSlope(in.DrainLengthM)
	velocity := Velocity(diameter, slope, mat.Roughness)

	res := Result{
		FlowRate:    flow,
		DiameterMM:  diameter,
		SlopeMMPerM: slope * 1000,
		Material:    mat.Name,
		MaterialID:  mat.ID,
		Roughness:   mat.Roughness,
		CostTier:    mat.CostLabel,
		CapacityM3H: Capacity(diameter, velocity),
		VelocityMS:  round2(velocity),
		VelocityOK:  velocity >= MinVelocity && velocity <= MaxVelocity,
		DrainCount:  drains,
		Notes:       "Simplified gravity-flow sizing for roof drainage.",
	}

	if in.Extended() {
		res.Materials = BuildMaterialsBill(in.HouseLengthM, in.HouseWidthM, in.HouseHeightM,
			diameter, in.Perimeter(), placed, mat.Prices)
		res.TotalCost = TotalCost(res.Materials)
		res.TotalWithReserve = math.Ceil(res.TotalCost * ReserveFactor)
	}
	return res, nil
}

type field struct {
	name  string
	value float64
}

func validate(in Input) error {
	fields := []field{
		{"roof_area_m2", in.RoofAreaM2},
		{"rainfall_mm_h", in.RainfallMMH},
		{"drain_length_m", in.DrainLengthM},
	}
	if in.Extended() {
		fields = append(fields,
			field{"house_length_m", in.HouseLengthM},
			field{"house_width_m", in.HouseWidthM},
			field{"house_height_m", in.HouseHeightM},
		)
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) || f.value < 0 {
			return fmt.Errorf("%w: %s must be a non-negative number", ErrInvalidInput, f.name)
		}
	}
	if in.Drains < 0 || in.PlacedDrains() > plan.MaxDrains {
		return fmt.Errorf("%w: drains must be between 0 and %d", ErrInvalidInput, plan.MaxDrains)
	}
	return nil
}

// SchemeGeometry describes the slope drawing of the horizontal run.
type SchemeGeometry struct {
	RunLengthM  float64 `json:"run_length_m"`
	DropMM      float64 `json:"drop_mm"`
	AngleDeg    float64 `json:"angle_deg"`
	DiameterMM  int     `json:"diameter_mm"`
	SlopeMMPerM float64 `json:"slope_mm_per_m"`
}

func Scheme(in Input, res Result) SchemeGeometry {
	return SchemeGeometry{
		RunLengthM:  in.DrainLengthM,
		DropMM:      math.Round(in.DrainLengthM * res.SlopeMMPerM),
		AngleDeg:    math.Atan(res.SlopeMMPerM/1000) * 180 / math.Pi,
		DiameterMM:  res.DiameterMM,
		SlopeMMPerM: res.SlopeMMPerM,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
