package domain

import "time"

// PatternType enumerates the geometric chart patterns the detector knows.
type PatternType string

const (
	PatternHeadAndShoulders        PatternType = "head_and_shoulders"
	PatternInverseHeadAndShoulders PatternType = "inverse_head_and_shoulders"
	PatternDoubleTop               PatternType = "double_top"
	PatternDoubleBottom            PatternType = "double_bottom"
	PatternAscendingTriangle       PatternType = "ascending_triangle"
	PatternDescendingTriangle      PatternType = "descending_triangle"
	PatternSymmetricalTriangle     PatternType = "symmetrical_triangle"
	PatternCupAndHandle            PatternType = "cup_and_handle"
	PatternRisingWedge             PatternType = "rising_wedge"
	PatternFallingWedge            PatternType = "falling_wedge"
)

// Bias is the directional implication of a pattern or projection.
type Bias string

const (
	BiasBullish Bias = "bullish"
	BiasBearish Bias = "bearish"
	BiasNeutral Bias = "neutral"
)

// BoundaryPoint is a vertex of a detected pattern, for charting.
type BoundaryPoint struct {
	Time  time.Time `json:"time"`
	Price float64   `json:"price"`
}

// ChartPattern is one detected geometric pattern instance.
// TargetPrice is zero when the pattern has no measured-move target
// (symmetrical triangles).
type ChartPattern struct {
	PatternType    PatternType     `json:"patternType"`
	Confidence     float64         `json:"confidence"` // 0-1
	TargetPrice    float64         `json:"targetPrice,omitempty"`
	Bias           Bias            `json:"bias"`
	BoundaryPoints []BoundaryPoint `json:"boundaryPoints"`
	Description    string          `json:"description"`
}

// TrendType is the direction of a fitted trendline.
type TrendType string

const (
	TrendUp   TrendType = "uptrend"
	TrendDown TrendType = "downtrend"
)

// ProjectionPoint is one future point of an extrapolated trendline.
type ProjectionPoint struct {
	Time  time.Time `json:"time"`
	Price float64   `json:"price"`
}

// TrendLine is a line fitted through two pivots of the same kind and
// validated against all pivots for touch count.
type TrendLine struct {
	StartIdx   int               `json:"startIdx"`
	EndIdx     int               `json:"endIdx"`
	StartPrice float64           `json:"startPrice"`
	EndPrice   float64           `json:"endPrice"`
	StartTime  time.Time         `json:"startTime"`
	EndTime    time.Time         `json:"endTime"`
	Slope      float64           `json:"slope"`
	Intercept  float64           `json:"intercept"`
	Touches    int               `json:"touches"`
	TrendType  TrendType         `json:"trendType"`
	Projection []ProjectionPoint `json:"projection,omitempty"`
}

// TrendAnalysis is the full trendline report for one symbol.
type TrendAnalysis struct {
	Uptrends      []TrendLine `json:"uptrends"`
	Downtrends    []TrendLine `json:"downtrends"`
	DominantTrend Bias        `json:"dominantTrend"`
}

// LevelType distinguishes support from resistance zones.
type LevelType string

const (
	LevelSupport    LevelType = "support"
	LevelResistance LevelType = "resistance"
)

// Level is a clustered support/resistance zone.
type Level struct {
	Price      float64   `json:"price"` // cluster centroid
	Touches    int       `json:"touches"`
	ZoneTop    float64   `json:"zoneTop"`
	ZoneBottom float64   `json:"zoneBottom"`
	Strength   float64   `json:"strength"`
	LevelType  LevelType `json:"levelType"`
}

// SRLevels groups the strongest support and resistance zones.
type SRLevels struct {
	Support    []Level `json:"support"`
	Resistance []Level `json:"resistance"`
}

// PriceProjection is one merged price target with its provenance.
type PriceProjection struct {
	Price          float64 `json:"price"`
	Confidence     float64 `json:"confidence"` // 0-1
	Reason         string  `json:"reason"`
	ProjectionType Bias    `json:"projectionType"` // bullish or bearish
	EstimatedDays  int     `json:"estimatedDays,omitempty"`
}
