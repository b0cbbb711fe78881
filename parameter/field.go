package parameter

import "math"

// Coulomb field computation
const (
	// CoulombK is Coulomb's constant in N·m²/C²
	CoulombK = 8.99e9

	// NanoCoulomb converts charge values (nC) to coulombs
	NanoCoulomb = 1e-9

	// FieldVisualMultiplier lifts raw field magnitudes into the range the arrow policies expect
	FieldVisualMultiplier = 1e7

	// SingularityEpsilon is the distance below which a charge contribution is skipped
	SingularityEpsilon = 1e-10

	// CancellationRatio is the resultant/mean-contribution ratio under which a point counts as cancelled
	CancellationRatio = 0.2

	// CancellationMinSources is the minimum number of positive sources that can cancel
	CancellationMinSources = 2
)

// Grid arrow policy
const (
	// GridSpacing is the lattice step for field arrows and background lines, in canvas units
	GridSpacing = 40.0

	// GridSpacingMin is the smallest configurable spacing, one terminal cell wide
	GridSpacingMin = 8.0

	// GridMaxSamples caps lattice points per frame, denser lattices draw nothing
	GridMaxSamples = 1 << 20

	// GridMagnitudeNorm is the magnitude mapped to a full-length grid arrow at scale 1
	GridMagnitudeNorm = 50000.0

	// GridArrowMinFactor and GridArrowMaxFactor bound the interpolated length as fractions of spacing
	GridArrowMinFactor = 0.2
	GridArrowMaxFactor = 0.7

	// GridArrowFloorFactor is the visibility floor as a fraction of spacing
	GridArrowFloorFactor = 0.15

	// GridArrowDirectionFactor is the fixed length in direction-only mode
	GridArrowDirectionFactor = 0.5

	// GridArrowHeadSize is the arrowhead side for grid arrows
	GridArrowHeadSize = 6.0
)

// Sensor arrow policy
const (
	// SensorArrowMin and SensorArrowMax bound sensor readout arrows
	SensorArrowMin = 20.0
	SensorArrowMax = 200.0

	// SensorFalloffNumerator and SensorFalloffOffset shape base = max*num/(d+offset)
	SensorFalloffNumerator = 100.0
	SensorFalloffOffset    = 10.0

	// SensorNegativeDampingDistance is the distance at which negative-charge damping fades out
	SensorNegativeDampingDistance = 200.0

	// SensorArrowFloorFactor is the lower bound as a fraction of SensorArrowMin
	SensorArrowFloorFactor = 0.5

	// SensorArrowHeadSize is the arrowhead side for sensor arrows
	SensorArrowHeadSize = 15.0
)

// Arrowhead geometry
const (
	// ArrowHeadHalfAngle is the angle between shaft and each back vertex (30°)
	ArrowHeadHalfAngle = math.Pi / 6
)

// Entity glyph radii in canvas units
const (
	ChargeRadius = 12.0
	SensorRadius = 5.0

	// GridExclusionFactor multiplies ChargeRadius for lattice points skipped around charges
	GridExclusionFactor = 2.0

	// ChargeHitFactor and SensorHitFactor scale radii for hit testing
	ChargeHitFactor = 1.5
	SensorHitFactor = 2.0
)
