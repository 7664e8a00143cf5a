package sceneload

// sampleScene is loaded when no scene file is configured, so the binary is
// usable out of the box
const sampleScene = `name = "sample yard"

[camera]
origin = [0.0, 0.0]
cells_per_unit = 1.0

[[entities]]
name = "crate"
kind = "model"
position = [10.0, 6.0]
size = [8.0, 4.0]
glyph = "#"
color = "#d7875f"

[[entities]]
name = "lamp"
kind = "light"
position = [24.0, 5.0]
size = [4.0, 3.0]
glyph = "*"
color = "#ffd75f"

[[entities]]
name = "drone"
kind = "model"
position = [36.0, 8.0]
size = [6.0, 3.0]
glyph = "%"
color = "#87afd7"

[[entities]]
name = "beacon"
kind = "sensor"
position = [14.0, 14.0]
size = [4.0, 3.0]
glyph = "@"
color = "#af87ff"

[[decorations]]
name = "fence"
position = [32.0, 15.0]
size = [10.0, 1.0]
glyph = "="
`
