package widgets

import (
	"github.com/go-facet/facet/pkg/foreign"
)

// Container is the base of the box layout widgets.
type Container struct {
	Handle
}

// Append adds child to the end of the container.
func (c *Container) Append(child Widget) {
	c.must(c.rt.Call(c.obj, "append", child.Foreign()))
}

// VBox lays out its children vertically.
type VBox struct {
	Container
}

// NewVBox creates an empty vertical box.
func NewVBox(rt foreign.Runtime) *VBox {
	return &VBox{Container{construct(rt, "VBox", nil)}}
}

// HBox lays out its children horizontally.
type HBox struct {
	Container
}

// NewHBox creates an empty horizontal box.
func NewHBox(rt foreign.Runtime) *HBox {
	return &HBox{Container{construct(rt, "HBox", nil)}}
}
