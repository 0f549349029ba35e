package core

// Color is the role of a screen cell. Renderers decide the actual terminal
// color for each role.
type Color uint8

const (
	ColorFloor Color = iota
	ColorWall
	ColorTrail
	ColorDust
	ColorCleaned
	ColorStart
	ColorRobot
)
