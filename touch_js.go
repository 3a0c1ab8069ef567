//go:build js

package folio

import "syscall/js"

func touchDevice() bool {
	g := js.Global()
	if !g.Get("ontouchstart").IsUndefined() {
		return true
	}
	nav := g.Get("navigator")
	if nav.IsUndefined() || nav.IsNull() {
		return false
	}
	mtp := nav.Get("maxTouchPoints")
	return mtp.Type() == js.TypeNumber && mtp.Int() > 0
}
