package sprechpass

import (
	"strings"
	"sync"
)

var germanModel = sync.OnceValue(func() *Model {
	m, err := DecodeModel(strings.NewReader(germanModelData))
	if err != nil {
		panic("sprechpass: built-in german model: " + err.Error())
	}
	return m
})

// German returns the built-in German model. The returned model is shared
// across callers and must be treated as read-only. Supporting another
// language means supplying a full replacement model (all four tables plus
// both alphabets), either built with Builder or decoded from a model file.
func German() *Model {
	return germanModel()
}
