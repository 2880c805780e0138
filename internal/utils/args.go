package utils

// OptionalArg returns the first element of a variadic argument slice,
// or defaultValue when the caller passed nothing.
func OptionalArg[T any](args []T, defaultValue T) T {
	if len(args) == 0 {
		return defaultValue
	}
	return args[0]
}
