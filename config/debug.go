//go:build handledebug

package config

func init() {
	AdoptCheck = true
}
