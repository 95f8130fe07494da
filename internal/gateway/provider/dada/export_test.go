package dada

import "time"

func (g *Gateway) SetClock(now func() time.Time) {
	g.now = now
}

var Sign = sign
