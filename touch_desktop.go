//go:build !js && !android && !ios

package folio

func touchDevice() bool { return false }
