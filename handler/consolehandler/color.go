package consolehandler

import (
	"github.com/fatih/color"

	"github.com/philipp01105/runlog/core"
)

var levelColors = map[core.Level]*color.Color{
	core.InfoLevel:    newColor(color.FgGreen),
	core.WarningLevel: newColor(color.FgYellow),
	core.SevereLevel:  newColor(color.FgMagenta),
	core.ErrorLevel:   newColor(color.FgRed, color.Bold),
}

// newColor forces color output on, so the choice is made by
// ConsoleConfig.Color rather than by terminal detection.
func newColor(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

func colorizeLevel(level core.Level, name string) string {
	if c, ok := levelColors[level]; ok {
		return c.Sprint(name)
	}
	return name
}
