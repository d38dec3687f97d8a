package delaunay

// Test bridge: compiled only with tests, visible to package delaunay_test.

var (
	FrameCorners   = frameCorners
	CavityBoundary = cavityBoundary
	CheckClosed    = checkClosed
)
