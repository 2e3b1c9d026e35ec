package app

import (
	"github.com/go-facet/facet/pkg/foreign"
	"github.com/go-facet/facet/pkg/widgets"
)

// welcome builds the default layout served when a delegate declares no
// widgets or returns no root.
func welcome(rt foreign.Runtime, title string) widgets.Widget {
	box := widgets.NewVBox(rt)
	box.SetSize(widgets.Fraction(100), widgets.Fraction(100))

	heading := widgets.NewLabel(rt, "Welcome to "+title)
	body := widgets.NewLabel(rt, "This application has not built a UI yet.")
	box.Append(heading)
	box.Append(body)
	return box
}
