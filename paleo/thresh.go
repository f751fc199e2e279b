package paleo

// Threshold constants from spec.md §6. Names match the spec's lettering so
// the per-tester comments ("fails if LSE >= G") can be cross-referenced
// directly against the spec without a separate mapping table.
const (
	threshA = 0.5     // Tail-removing threshold (unused directly; kept for parity with the source's naming).
	threshB = 5.0     // Minimum point count for tail removal.
	threshC = 70.0    // Minimum px_length (px) for tail removal.
	threshD = 1.31    // Overtraced revolution threshold.
	threshE = 0.16    // Closedness endpoint-distance / px_length ratio.
	threshF = 0.75    // Closedness minimum revolutions.
	threshG = 2.0     // Line segment LSE bound.
	threshH = 10.25   // Line FA/length bound.
	threshI = 0.0036  // Poly-line average LSE bound.
	threshJ = 6.0     // Minimum DCR for poly-line/arc/curve preconditions.
	threshK = 0.8     // Minimum NDDE for ellipse/arc/spiral preconditions.
	threshL = 30.0    // Minimum major-axis length (px) for ellipse.
	threshM = 0.33    // Max FAE for ellipse.
	threshN = 16.0    // Minimum radius (px) for circle/arc.
	threshO = 0.425   // Ellipse/circle tie-breaker (unused directly in the 15-step hierarchy; reserved per spec.md §6).
	threshP = 0.35    // Max FAE for circle.
	threshQ = 0.4     // Max FAE for arc.
	threshR = 0.37    // Max LSE for Bézier curve.
	threshS = 0.9     // Spiral mean-radius / bbox-radius bound.
	threshT = 0.25    // Spiral sub-center drift bound.
	threshU = 0.2     // Spiral endpoint-distance / px_length bound (vs. helix).
	threshV = 0.1     // Reserved per spec.md §6; no tester in the 15-step hierarchy consumes it directly.
	threshW = 9.0     // High-DCR poly-line shortcut threshold.
	threshX = 10      // Low-corner-count poly-line shortcut threshold.
	threshY = 0.99    // Corner detection distance threshold.
	threshZ = 0.06    // Corner merge/replace neighborhood fraction.

	yuWindowK = 3 // Half-window used for Yu curvature (spec.md §4.3 step 4).
)

// Fixed shape-rank constants. Line and composite compute their own rank;
// every other shape kind uses a fixed value, per spec.md §4.6.
const (
	rankCircle  = 3
	rankEllipse = 4
	rankArc     = 5
	rankCurve   = 6
	rankSpiral  = 7
	rankHelix   = 8
)
