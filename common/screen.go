package common

// Reference resolution UI panels are sized against.
const (
	BaseWidth  = 1280
	BaseHeight = 720
)
