package sanitizer

// Apply runs value through transforms in order.
func Apply[T any](value T, transforms ...func(T) T) T {
	result := value

	for _, transform := range transforms {
		result = transform(result)
	}

	return result
}

// Compose creates a reusable pipeline out of transforms.
// Preferred over repeated Apply calls when the same chain is used multiple times.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}

// UntilStable repeats transform until its output stops changing or maxPasses
// is reached.
func UntilStable[T comparable](transform func(T) T, maxPasses int) func(T) T {
	return func(value T) T {
		for range maxPasses {
			next := transform(value)
			if next == value {
				return next
			}
			value = next
		}
		return value
	}
}
