//go:build android || ios

package folio

func touchDevice() bool { return true }
