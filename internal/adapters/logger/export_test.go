// export_test.go exports private functions for white-box testing.
package logger

// ErrorChain renders err the way Logger.Error does in pretty mode.
func ErrorChain(err error) string {
	return formatErrorEntries(collectErrorEntries(err))
}
